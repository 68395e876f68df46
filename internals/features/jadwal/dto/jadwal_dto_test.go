package dto

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alhidayah_backend/internals/features/jadwal/model"
	khatibModel "alhidayah_backend/internals/features/khatib/model"
)

func TestJadwalRequestValidate(t *testing.T) {
	valid := JadwalRequest{
		JadwalTanggal:       "2025-03-07",
		JadwalWaktu:         "19:30",
		JadwalJenisKegiatan: "Khutbah Jumat",
		JadwalTopik:         "Keutamaan Sedekah",
	}
	assert.NoError(t, valid.Validate())

	t.Run("tanggal kosong", func(t *testing.T) {
		req := valid
		req.JadwalTanggal = ""
		err := req.Validate()
		require.Error(t, err)
		assert.Equal(t, "Tanggal wajib diisi.", err.(*fiber.Error).Message)
	})

	t.Run("topik kosong", func(t *testing.T) {
		req := valid
		req.JadwalTopik = "  "
		err := req.Validate()
		require.Error(t, err)
		assert.Equal(t, "Topik wajib diisi.", err.(*fiber.Error).Message)
	})

	t.Run("jenis kegiatan di luar daftar", func(t *testing.T) {
		req := valid
		req.JadwalJenisKegiatan = "Rapat RT"
		err := req.Validate()
		require.Error(t, err)
		assert.Equal(t, "Jenis kegiatan tidak valid.", err.(*fiber.Error).Message)
	})
}

func TestJadwalUpdateRequestValidate(t *testing.T) {
	t.Run("kosong lolos", func(t *testing.T) {
		req := JadwalUpdateRequest{}
		assert.NoError(t, req.Validate())
	})

	t.Run("jenis dikirim dan salah ditolak", func(t *testing.T) {
		jenis := "Arisan"
		req := JadwalUpdateRequest{JadwalJenisKegiatan: &jenis}
		err := req.Validate()
		require.Error(t, err)
		assert.Equal(t, "Jenis kegiatan tidak valid.", err.(*fiber.Error).Message)
	})
}

func TestJadwalToUpdatesKhatibNilMelepasKhatib(t *testing.T) {
	nihil := uuid.Nil
	req := JadwalUpdateRequest{JadwalKhatibID: &nihil}
	updates := req.ToUpdates()

	require.Contains(t, updates, "jadwal_khatib_id")
	assert.Nil(t, updates["jadwal_khatib_id"])
}

func TestJadwalToResponseNamaKhatibDariJoin(t *testing.T) {
	khatibID := uuid.New()
	m := model.JadwalModel{
		JadwalID:            uuid.New(),
		JadwalTanggal:       "2025-03-07",
		JadwalJenisKegiatan: "Khutbah Jumat",
		JadwalTopik:         "Keutamaan Sedekah",
		JadwalKhatibID:      &khatibID,
		Khatib:              &khatibModel.KhatibModel{KhatibID: khatibID, KhatibNama: "Ust. Ahmad Fauzi"},
	}

	resp := ToResponse(&m)
	assert.Equal(t, "Ust. Ahmad Fauzi", resp.JadwalKhatibNama)

	// tanpa khatib, nama kosong
	m.Khatib = nil
	m.JadwalKhatibID = nil
	resp = ToResponse(&m)
	assert.Empty(t, resp.JadwalKhatibNama)
	assert.Nil(t, resp.JadwalKhatibID)
}
