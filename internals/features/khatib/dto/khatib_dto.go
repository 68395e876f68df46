package dto

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alhidayah_backend/internals/features/khatib/model"
)

type KhatibRequest struct {
	KhatibNama         string  `json:"khatib_nama"`
	KhatibGelar        string  `json:"khatib_gelar"`
	KhatibSpesialisasi string  `json:"khatib_spesialisasi"`
	KhatibNoHp         string  `json:"khatib_no_hp"`
	KhatibEmail        string  `json:"khatib_email"`
	KhatibAktif        *bool   `json:"khatib_aktif,omitempty"`
	KhatibFotoURL      *string `json:"khatib_foto_url,omitempty"`
}

// KhatibUpdateRequest: semua field pointer supaya partial update bisa
// membedakan "tidak dikirim" dari "dikirim kosong".
type KhatibUpdateRequest struct {
	KhatibNama         *string `json:"khatib_nama,omitempty"`
	KhatibGelar        *string `json:"khatib_gelar,omitempty"`
	KhatibSpesialisasi *string `json:"khatib_spesialisasi,omitempty"`
	KhatibNoHp         *string `json:"khatib_no_hp,omitempty"`
	KhatibEmail        *string `json:"khatib_email,omitempty"`
	KhatibAktif        *bool   `json:"khatib_aktif,omitempty"`
	KhatibFotoURL      *string `json:"khatib_foto_url,omitempty"`
}

type KhatibResponse struct {
	KhatibID           uuid.UUID `json:"khatib_id"`
	KhatibNama         string    `json:"khatib_nama"`
	KhatibGelar        string    `json:"khatib_gelar"`
	KhatibSpesialisasi string    `json:"khatib_spesialisasi"`
	KhatibNoHp         string    `json:"khatib_no_hp"`
	KhatibEmail        string    `json:"khatib_email"`
	KhatibAktif        bool      `json:"khatib_aktif"`
	KhatibFotoURL      *string   `json:"khatib_foto_url"`
	KhatibCreatedAt    time.Time `json:"khatib_created_at"`
}

/* ===============================
   Validasi (dipakai create & update)
=================================*/

// Validate memeriksa field wajib untuk create.
func (r *KhatibRequest) Validate() error {
	if err := validateNama(r.KhatibNama); err != nil {
		return err
	}
	return validateSpesialisasi(r.KhatibSpesialisasi)
}

// Validate memeriksa field yang DIKIRIM pada partial update.
// Predicate-nya sama dengan create: field wajib tidak boleh jadi kosong.
func (r *KhatibUpdateRequest) Validate() error {
	if r.KhatibNama != nil {
		if err := validateNama(*r.KhatibNama); err != nil {
			return err
		}
	}
	if r.KhatibSpesialisasi != nil {
		if err := validateSpesialisasi(*r.KhatibSpesialisasi); err != nil {
			return err
		}
	}
	return nil
}

func validateNama(nama string) error {
	if strings.TrimSpace(nama) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Nama wajib diisi.")
	}
	return nil
}

func validateSpesialisasi(s string) error {
	if strings.TrimSpace(s) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Spesialisasi wajib diisi.")
	}
	return nil
}

/* ===============================
   Konversi model ↔ dto
=================================*/

func (r *KhatibRequest) ToModel() *model.KhatibModel {
	aktif := true
	if r.KhatibAktif != nil {
		aktif = *r.KhatibAktif
	}
	return &model.KhatibModel{
		KhatibNama:         strings.TrimSpace(r.KhatibNama),
		KhatibGelar:        strings.TrimSpace(r.KhatibGelar),
		KhatibSpesialisasi: strings.TrimSpace(r.KhatibSpesialisasi),
		KhatibNoHp:         strings.TrimSpace(r.KhatibNoHp),
		KhatibEmail:        strings.TrimSpace(r.KhatibEmail),
		KhatibAktif:        aktif,
		KhatibFotoURL:      r.KhatibFotoURL,
	}
}

// ToUpdates membangun map partial update: hanya field yang dikirim.
// Foto dengan string kosong berarti hapus foto (set NULL).
func (r *KhatibUpdateRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.KhatibNama != nil {
		updates["khatib_nama"] = strings.TrimSpace(*r.KhatibNama)
	}
	if r.KhatibGelar != nil {
		updates["khatib_gelar"] = strings.TrimSpace(*r.KhatibGelar)
	}
	if r.KhatibSpesialisasi != nil {
		updates["khatib_spesialisasi"] = strings.TrimSpace(*r.KhatibSpesialisasi)
	}
	if r.KhatibNoHp != nil {
		updates["khatib_no_hp"] = strings.TrimSpace(*r.KhatibNoHp)
	}
	if r.KhatibEmail != nil {
		updates["khatib_email"] = strings.TrimSpace(*r.KhatibEmail)
	}
	if r.KhatibAktif != nil {
		updates["khatib_aktif"] = *r.KhatibAktif
	}
	if r.KhatibFotoURL != nil {
		if strings.TrimSpace(*r.KhatibFotoURL) == "" {
			updates["khatib_foto_url"] = nil
		} else {
			updates["khatib_foto_url"] = strings.TrimSpace(*r.KhatibFotoURL)
		}
	}
	return updates
}

func ToResponse(m *model.KhatibModel) KhatibResponse {
	return KhatibResponse{
		KhatibID:           m.KhatibID,
		KhatibNama:         m.KhatibNama,
		KhatibGelar:        m.KhatibGelar,
		KhatibSpesialisasi: m.KhatibSpesialisasi,
		KhatibNoHp:         m.KhatibNoHp,
		KhatibEmail:        m.KhatibEmail,
		KhatibAktif:        m.KhatibAktif,
		KhatibFotoURL:      m.KhatibFotoURL,
		KhatibCreatedAt:    m.KhatibCreatedAt,
	}
}

func ToResponseList(models []model.KhatibModel) []KhatibResponse {
	out := make([]KhatibResponse, 0, len(models))
	for i := range models {
		out = append(out, ToResponse(&models[i]))
	}
	return out
}
