package dto

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDonasiRequestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := DonasiRequest{DonasiNama: "Hamba Allah", DonasiJumlah: 100000}
		assert.NoError(t, req.Validate())
	})

	t.Run("nama kosong", func(t *testing.T) {
		req := DonasiRequest{DonasiNama: " ", DonasiJumlah: 100000}
		err := req.Validate()
		require.Error(t, err)
		assert.Equal(t, "Nama wajib diisi.", err.(*fiber.Error).Message)
	})

	t.Run("jumlah nol", func(t *testing.T) {
		req := DonasiRequest{DonasiNama: "Hamba Allah", DonasiJumlah: 0}
		err := req.Validate()
		require.Error(t, err)
		assert.Equal(t, "Jumlah harus lebih dari 0.", err.(*fiber.Error).Message)
	})
}

func TestDonasiRequestToModel(t *testing.T) {
	req := DonasiRequest{
		DonasiNama:   "  Hamba Allah  ",
		DonasiJumlah: 250000,
		DonasiPesan:  " Semoga berkah ",
	}
	m := req.ToModel()

	assert.Equal(t, "Hamba Allah", m.DonasiNama)
	assert.Equal(t, 250000, m.DonasiJumlah)
	assert.Equal(t, "Semoga berkah", m.DonasiPesan)
	assert.Equal(t, "pending", m.DonasiStatus)
}
