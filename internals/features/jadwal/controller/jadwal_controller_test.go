package controller

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// DB sengaja nil: cabang yang diuji harus selesai sebelum menyentuh store.
func newMendatangApp() *fiber.App {
	app := fiber.New()
	ctrl := NewJadwalController(nil)
	app.Get("/jadwal/mendatang", ctrl.GetJadwalMendatang)
	return app
}

func TestGetJadwalMendatangLimitNol(t *testing.T) {
	app := newMendatangApp()

	req := httptest.NewRequest("GET", "/jadwal/mendatang?limit=0", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body struct {
		Success bool  `json:"success"`
		Data    []any `json:"data"`
	}
	require.NoError(t, sonic.Unmarshal(raw, &body))
	assert.True(t, body.Success)
	assert.Empty(t, body.Data, "limit=0 harus mengembalikan list kosong tanpa query")
}

func TestGetJadwalMendatangLimitBukanAngka(t *testing.T) {
	app := newMendatangApp()

	req := httptest.NewRequest("GET", "/jadwal/mendatang?limit=abc", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetJadwalMendatangLimitNegatif(t *testing.T) {
	app := newMendatangApp()

	req := httptest.NewRequest("GET", "/jadwal/mendatang?limit=-1", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
