package dto

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alhidayah_backend/internals/constants"
	"alhidayah_backend/internals/features/jadwal/model"
)

type JadwalRequest struct {
	JadwalTanggal       string     `json:"jadwal_tanggal"`
	JadwalWaktu         string     `json:"jadwal_waktu"`
	JadwalJenisKegiatan string     `json:"jadwal_jenis_kegiatan"`
	JadwalTopik         string     `json:"jadwal_topik"`
	JadwalKeterangan    string     `json:"jadwal_keterangan"`
	JadwalKhatibID      *uuid.UUID `json:"jadwal_khatib_id,omitempty"`
}

type JadwalUpdateRequest struct {
	JadwalTanggal       *string    `json:"jadwal_tanggal,omitempty"`
	JadwalWaktu         *string    `json:"jadwal_waktu,omitempty"`
	JadwalJenisKegiatan *string    `json:"jadwal_jenis_kegiatan,omitempty"`
	JadwalTopik         *string    `json:"jadwal_topik,omitempty"`
	JadwalKeterangan    *string    `json:"jadwal_keterangan,omitempty"`
	JadwalKhatibID      *uuid.UUID `json:"jadwal_khatib_id,omitempty"`
}

type JadwalResponse struct {
	JadwalID            uuid.UUID  `json:"jadwal_id"`
	JadwalTanggal       string     `json:"jadwal_tanggal"`
	JadwalWaktu         string     `json:"jadwal_waktu"`
	JadwalJenisKegiatan string     `json:"jadwal_jenis_kegiatan"`
	JadwalTopik         string     `json:"jadwal_topik"`
	JadwalKeterangan    string     `json:"jadwal_keterangan"`
	JadwalKhatibID      *uuid.UUID `json:"jadwal_khatib_id"`
	JadwalKhatibNama    string     `json:"jadwal_khatib_nama"` // hasil join, bukan kolom
}

/* ===============================
   Validasi (create & update satu predicate)
=================================*/

func (r *JadwalRequest) Validate() error {
	if err := validateTanggal(r.JadwalTanggal); err != nil {
		return err
	}
	if err := validateTopik(r.JadwalTopik); err != nil {
		return err
	}
	return validateJenisKegiatan(r.JadwalJenisKegiatan)
}

func (r *JadwalUpdateRequest) Validate() error {
	if r.JadwalTanggal != nil {
		if err := validateTanggal(*r.JadwalTanggal); err != nil {
			return err
		}
	}
	if r.JadwalTopik != nil {
		if err := validateTopik(*r.JadwalTopik); err != nil {
			return err
		}
	}
	if r.JadwalJenisKegiatan != nil {
		if err := validateJenisKegiatan(*r.JadwalJenisKegiatan); err != nil {
			return err
		}
	}
	return nil
}

func validateTanggal(tanggal string) error {
	if strings.TrimSpace(tanggal) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Tanggal wajib diisi.")
	}
	return nil
}

func validateTopik(topik string) error {
	if strings.TrimSpace(topik) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Topik wajib diisi.")
	}
	return nil
}

func validateJenisKegiatan(jenis string) error {
	if !constants.IsValidJenisKegiatan(jenis) {
		return fiber.NewError(fiber.StatusBadRequest, "Jenis kegiatan tidak valid.")
	}
	return nil
}

/* ===============================
   Konversi model ↔ dto
=================================*/

func (r *JadwalRequest) ToModel() *model.JadwalModel {
	return &model.JadwalModel{
		JadwalTanggal:       strings.TrimSpace(r.JadwalTanggal),
		JadwalWaktu:         strings.TrimSpace(r.JadwalWaktu),
		JadwalJenisKegiatan: r.JadwalJenisKegiatan,
		JadwalTopik:         strings.TrimSpace(r.JadwalTopik),
		JadwalKeterangan:    strings.TrimSpace(r.JadwalKeterangan),
		JadwalKhatibID:      r.JadwalKhatibID,
	}
}

func (r *JadwalUpdateRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.JadwalTanggal != nil {
		updates["jadwal_tanggal"] = strings.TrimSpace(*r.JadwalTanggal)
	}
	if r.JadwalWaktu != nil {
		updates["jadwal_waktu"] = strings.TrimSpace(*r.JadwalWaktu)
	}
	if r.JadwalJenisKegiatan != nil {
		updates["jadwal_jenis_kegiatan"] = *r.JadwalJenisKegiatan
	}
	if r.JadwalTopik != nil {
		updates["jadwal_topik"] = strings.TrimSpace(*r.JadwalTopik)
	}
	if r.JadwalKeterangan != nil {
		updates["jadwal_keterangan"] = strings.TrimSpace(*r.JadwalKeterangan)
	}
	if r.JadwalKhatibID != nil {
		if *r.JadwalKhatibID == uuid.Nil {
			updates["jadwal_khatib_id"] = nil
		} else {
			updates["jadwal_khatib_id"] = *r.JadwalKhatibID
		}
	}
	return updates
}

func ToResponse(m *model.JadwalModel) JadwalResponse {
	khatibNama := ""
	if m.Khatib != nil {
		khatibNama = m.Khatib.KhatibNama
	}
	return JadwalResponse{
		JadwalID:            m.JadwalID,
		JadwalTanggal:       m.JadwalTanggal,
		JadwalWaktu:         m.JadwalWaktu,
		JadwalJenisKegiatan: m.JadwalJenisKegiatan,
		JadwalTopik:         m.JadwalTopik,
		JadwalKeterangan:    m.JadwalKeterangan,
		JadwalKhatibID:      m.JadwalKhatibID,
		JadwalKhatibNama:    khatibNama,
	}
}

func ToResponseList(models []model.JadwalModel) []JadwalResponse {
	out := make([]JadwalResponse, 0, len(models))
	for i := range models {
		out = append(out, ToResponse(&models[i]))
	}
	return out
}
