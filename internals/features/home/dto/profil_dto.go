package dto

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	"alhidayah_backend/internals/features/home/model"
)

// =============================
// Request & Response
// =============================

type ProfilUpdateRequest struct {
	MasjidProfileNama      *string          `json:"masjid_profile_nama,omitempty"`
	MasjidProfileAlamat    *string          `json:"masjid_profile_alamat,omitempty"`
	MasjidProfileSambutan  *string          `json:"masjid_profile_sambutan,omitempty"`
	MasjidProfileLatitude  *float64         `json:"masjid_profile_latitude,omitempty"`
	MasjidProfileLongitude *float64         `json:"masjid_profile_longitude,omitempty"`
	MasjidProfileRekening  *json.RawMessage `json:"masjid_profile_rekening,omitempty"`
	MasjidProfileSosmed    *json.RawMessage `json:"masjid_profile_sosmed,omitempty"`
}

type ProfilResponse struct {
	MasjidProfileNama      string          `json:"masjid_profile_nama"`
	MasjidProfileAlamat    string          `json:"masjid_profile_alamat"`
	MasjidProfileSambutan  string          `json:"masjid_profile_sambutan"`
	MasjidProfileLatitude  float64         `json:"masjid_profile_latitude"`
	MasjidProfileLongitude float64         `json:"masjid_profile_longitude"`
	MasjidProfileRekening  json.RawMessage `json:"masjid_profile_rekening"`
	MasjidProfileSosmed    json.RawMessage `json:"masjid_profile_sosmed"`
}

func (r *ProfilUpdateRequest) Validate() error {
	if r.MasjidProfileNama != nil && strings.TrimSpace(*r.MasjidProfileNama) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Nama wajib diisi.")
	}
	if r.MasjidProfileLatitude != nil && (*r.MasjidProfileLatitude < -90 || *r.MasjidProfileLatitude > 90) {
		return fiber.NewError(fiber.StatusBadRequest, "Latitude tidak valid.")
	}
	if r.MasjidProfileLongitude != nil && (*r.MasjidProfileLongitude < -180 || *r.MasjidProfileLongitude > 180) {
		return fiber.NewError(fiber.StatusBadRequest, "Longitude tidak valid.")
	}
	if r.MasjidProfileRekening != nil && !json.Valid(*r.MasjidProfileRekening) {
		return fiber.NewError(fiber.StatusBadRequest, "Data rekening tidak valid.")
	}
	if r.MasjidProfileSosmed != nil && !json.Valid(*r.MasjidProfileSosmed) {
		return fiber.NewError(fiber.StatusBadRequest, "Data sosmed tidak valid.")
	}
	return nil
}

// ToUpdates membangun map untuk partial update (hanya field yang dikirim).
func (r *ProfilUpdateRequest) ToUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.MasjidProfileNama != nil {
		updates["masjid_profile_nama"] = strings.TrimSpace(*r.MasjidProfileNama)
	}
	if r.MasjidProfileAlamat != nil {
		updates["masjid_profile_alamat"] = strings.TrimSpace(*r.MasjidProfileAlamat)
	}
	if r.MasjidProfileSambutan != nil {
		updates["masjid_profile_sambutan"] = strings.TrimSpace(*r.MasjidProfileSambutan)
	}
	if r.MasjidProfileLatitude != nil {
		updates["masjid_profile_latitude"] = *r.MasjidProfileLatitude
	}
	if r.MasjidProfileLongitude != nil {
		updates["masjid_profile_longitude"] = *r.MasjidProfileLongitude
	}
	if r.MasjidProfileRekening != nil {
		updates["masjid_profile_rekening"] = datatypes.JSON(*r.MasjidProfileRekening)
	}
	if r.MasjidProfileSosmed != nil {
		updates["masjid_profile_sosmed"] = datatypes.JSON(*r.MasjidProfileSosmed)
	}
	return updates
}

func ToProfilResponse(m *model.MasjidProfileModel) ProfilResponse {
	resp := ProfilResponse{
		MasjidProfileNama:      m.MasjidProfileNama,
		MasjidProfileAlamat:    m.MasjidProfileAlamat,
		MasjidProfileSambutan:  m.MasjidProfileSambutan,
		MasjidProfileLatitude:  m.MasjidProfileLatitude,
		MasjidProfileLongitude: m.MasjidProfileLongitude,
		MasjidProfileRekening:  json.RawMessage(`[]`),
		MasjidProfileSosmed:    json.RawMessage(`{}`),
	}
	if len(m.MasjidProfileRekening) > 0 {
		resp.MasjidProfileRekening = json.RawMessage(m.MasjidProfileRekening)
	}
	if len(m.MasjidProfileSosmed) > 0 {
		resp.MasjidProfileSosmed = json.RawMessage(m.MasjidProfileSosmed)
	}
	return resp
}
