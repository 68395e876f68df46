package dto

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alhidayah_backend/internals/constants"
	"alhidayah_backend/internals/features/keuangan/model"
)

type TransaksiRequest struct {
	TransaksiTanggal    string `json:"transaksi_tanggal"`
	TransaksiKeterangan string `json:"transaksi_keterangan"`
	TransaksiKategori   string `json:"transaksi_kategori"`
	TransaksiJenis      string `json:"transaksi_jenis"`
	TransaksiJumlah     int    `json:"transaksi_jumlah"`
}

type TransaksiUpdateRequest struct {
	TransaksiTanggal    *string `json:"transaksi_tanggal,omitempty"`
	TransaksiKeterangan *string `json:"transaksi_keterangan,omitempty"`
	TransaksiKategori   *string `json:"transaksi_kategori,omitempty"`
	TransaksiJenis      *string `json:"transaksi_jenis,omitempty"`
	TransaksiJumlah     *int    `json:"transaksi_jumlah,omitempty"`
}

type TransaksiResponse struct {
	TransaksiID         uuid.UUID `json:"transaksi_id"`
	TransaksiTanggal    string    `json:"transaksi_tanggal"`
	TransaksiKeterangan string    `json:"transaksi_keterangan"`
	TransaksiKategori   string    `json:"transaksi_kategori"`
	TransaksiJenis      string    `json:"transaksi_jenis"`
	TransaksiJumlah     int       `json:"transaksi_jumlah"`
}

// RingkasanResponse: agregat turunan, tidak pernah disimpan.
type RingkasanResponse struct {
	Masuk  int `json:"masuk"`
	Keluar int `json:"keluar"`
	Saldo  int `json:"saldo"`
}

/* ===============================
   Validasi
=================================*/

// ValidateTransaksiFields: SATU predicate untuk create maupun update.
// Update memanggilnya dengan nilai hasil merge record lama + field baru,
// sehingga pasangan jenis+kategori selalu tervalidasi ulang.
func ValidateTransaksiFields(tanggal, keterangan, kategori, jenis string, jumlah int) error {
	if strings.TrimSpace(keterangan) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Keterangan wajib diisi.")
	}
	if strings.TrimSpace(tanggal) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Tanggal wajib diisi.")
	}
	if jumlah <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Jumlah harus lebih dari 0.")
	}
	if jenis != constants.JenisMasuk && jenis != constants.JenisKeluar {
		return fiber.NewError(fiber.StatusBadRequest, "Jenis tidak valid.")
	}
	if !constants.IsValidKategori(jenis, kategori) {
		return fiber.NewError(fiber.StatusBadRequest, "Kategori tidak valid.")
	}
	return nil
}

func (r *TransaksiRequest) Validate() error {
	return ValidateTransaksiFields(
		r.TransaksiTanggal, r.TransaksiKeterangan, r.TransaksiKategori, r.TransaksiJenis, r.TransaksiJumlah,
	)
}

// ApplyTo menggabungkan field yang dikirim ke salinan record lama dan
// mengembalikan map kolom yang berubah.
func (r *TransaksiUpdateRequest) ApplyTo(m *model.TransaksiModel) map[string]interface{} {
	updates := map[string]interface{}{}
	if r.TransaksiTanggal != nil {
		m.TransaksiTanggal = strings.TrimSpace(*r.TransaksiTanggal)
		updates["transaksi_tanggal"] = m.TransaksiTanggal
	}
	if r.TransaksiKeterangan != nil {
		m.TransaksiKeterangan = strings.TrimSpace(*r.TransaksiKeterangan)
		updates["transaksi_keterangan"] = m.TransaksiKeterangan
	}
	if r.TransaksiKategori != nil {
		m.TransaksiKategori = *r.TransaksiKategori
		updates["transaksi_kategori"] = m.TransaksiKategori
	}
	if r.TransaksiJenis != nil {
		m.TransaksiJenis = *r.TransaksiJenis
		updates["transaksi_jenis"] = m.TransaksiJenis
	}
	if r.TransaksiJumlah != nil {
		m.TransaksiJumlah = *r.TransaksiJumlah
		updates["transaksi_jumlah"] = m.TransaksiJumlah
	}
	return updates
}

/* ===============================
   Konversi & agregasi
=================================*/

func (r *TransaksiRequest) ToModel() *model.TransaksiModel {
	return &model.TransaksiModel{
		TransaksiTanggal:    strings.TrimSpace(r.TransaksiTanggal),
		TransaksiKeterangan: strings.TrimSpace(r.TransaksiKeterangan),
		TransaksiKategori:   r.TransaksiKategori,
		TransaksiJenis:      r.TransaksiJenis,
		TransaksiJumlah:     r.TransaksiJumlah,
	}
}

func ToResponse(m *model.TransaksiModel) TransaksiResponse {
	return TransaksiResponse{
		TransaksiID:         m.TransaksiID,
		TransaksiTanggal:    m.TransaksiTanggal,
		TransaksiKeterangan: m.TransaksiKeterangan,
		TransaksiKategori:   m.TransaksiKategori,
		TransaksiJenis:      m.TransaksiJenis,
		TransaksiJumlah:     m.TransaksiJumlah,
	}
}

func ToResponseList(models []model.TransaksiModel) []TransaksiResponse {
	out := make([]TransaksiResponse, 0, len(models))
	for i := range models {
		out = append(out, ToResponse(&models[i]))
	}
	return out
}

// HitungRingkasan mereduksi semua transaksi jadi tiga total dalam satu pass.
// Urutan input tidak berpengaruh; himpunan kosong menghasilkan nol semua.
func HitungRingkasan(rows []model.TransaksiModel) RingkasanResponse {
	var r RingkasanResponse
	for i := range rows {
		if rows[i].TransaksiJenis == constants.JenisMasuk {
			r.Masuk += rows[i].TransaksiJumlah
		} else {
			r.Keluar += rows[i].TransaksiJumlah
		}
	}
	r.Saldo = r.Masuk - r.Keluar
	return r
}
