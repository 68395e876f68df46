package dto

import (
	"encoding/json"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"alhidayah_backend/internals/features/home/model"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }
func rawPtr(s string) *json.RawMessage {
	raw := json.RawMessage(s)
	return &raw
}

func TestProfilUpdateRequestValidate(t *testing.T) {
	t.Run("kosong lolos", func(t *testing.T) {
		req := ProfilUpdateRequest{}
		assert.NoError(t, req.Validate())
	})

	t.Run("nama dikirim kosong ditolak", func(t *testing.T) {
		req := ProfilUpdateRequest{MasjidProfileNama: strPtr("  ")}
		err := req.Validate()
		require.Error(t, err)
		assert.Equal(t, "Nama wajib diisi.", err.(*fiber.Error).Message)
	})

	t.Run("latitude di luar batas", func(t *testing.T) {
		req := ProfilUpdateRequest{MasjidProfileLatitude: f64Ptr(120)}
		err := req.Validate()
		require.Error(t, err)
		assert.Equal(t, "Latitude tidak valid.", err.(*fiber.Error).Message)
	})

	t.Run("longitude di luar batas", func(t *testing.T) {
		req := ProfilUpdateRequest{MasjidProfileLongitude: f64Ptr(-200)}
		assert.Error(t, req.Validate())
	})

	t.Run("rekening bukan json", func(t *testing.T) {
		req := ProfilUpdateRequest{MasjidProfileRekening: rawPtr("{bukan json")}
		err := req.Validate()
		require.Error(t, err)
		assert.Equal(t, "Data rekening tidak valid.", err.(*fiber.Error).Message)
	})
}

func TestProfilUpdateRequestToUpdates(t *testing.T) {
	req := ProfilUpdateRequest{
		MasjidProfileNama:     strPtr("  Masjid Al-Hidayah  "),
		MasjidProfileRekening: rawPtr(`[{"bank":"BSI","nomor":"7100100200"}]`),
	}
	updates := req.ToUpdates()

	require.Len(t, updates, 2)
	assert.Equal(t, "Masjid Al-Hidayah", updates["masjid_profile_nama"])
	assert.Equal(t, datatypes.JSON(`[{"bank":"BSI","nomor":"7100100200"}]`), updates["masjid_profile_rekening"])
}

func TestToProfilResponseJSONKosong(t *testing.T) {
	resp := ToProfilResponse(&model.MasjidProfileModel{})
	assert.JSONEq(t, `[]`, string(resp.MasjidProfileRekening))
	assert.JSONEq(t, `{}`, string(resp.MasjidProfileSosmed))
}
