package dto

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"alhidayah_backend/internals/features/donasi/model"
)

// =============================
// Request & Response
// =============================

type DonasiRequest struct {
	DonasiNama   string `json:"donasi_nama"`
	DonasiJumlah int    `json:"donasi_jumlah"`
	DonasiPesan  string `json:"donasi_pesan"`
}

type DonasiResponse struct {
	DonasiID      string `json:"donasi_id"`
	DonasiNama    string `json:"donasi_nama"`
	DonasiJumlah  int    `json:"donasi_jumlah"`
	DonasiPesan   string `json:"donasi_pesan"`
	DonasiStatus  string `json:"donasi_status"`
	DonasiOrderID string `json:"donasi_order_id"`
	DonasiPaidAt  string `json:"donasi_paid_at,omitempty"`
	CreatedAt     string `json:"created_at"`
}

// CreateDonasiResponse dikirim balik ke frontend untuk membuka Snap popup.
type CreateDonasiResponse struct {
	DonasiOrderID string `json:"donasi_order_id"`
	SnapToken     string `json:"snap_token"`
	RedirectURL   string `json:"redirect_url"`
}

func (r *DonasiRequest) Validate() error {
	if strings.TrimSpace(r.DonasiNama) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Nama wajib diisi.")
	}
	if r.DonasiJumlah <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Jumlah harus lebih dari 0.")
	}
	return nil
}

func (r *DonasiRequest) ToModel() *model.DonasiModel {
	return &model.DonasiModel{
		DonasiNama:   strings.TrimSpace(r.DonasiNama),
		DonasiJumlah: r.DonasiJumlah,
		DonasiPesan:  strings.TrimSpace(r.DonasiPesan),
		DonasiStatus: "pending",
	}
}

func ToResponse(m *model.DonasiModel) DonasiResponse {
	resp := DonasiResponse{
		DonasiID:      m.DonasiID.String(),
		DonasiNama:    m.DonasiNama,
		DonasiJumlah:  m.DonasiJumlah,
		DonasiPesan:   m.DonasiPesan,
		DonasiStatus:  m.DonasiStatus,
		DonasiOrderID: m.DonasiOrderID,
		CreatedAt:     m.DonasiCreatedAt.Format("2006-01-02 15:04:05"),
	}
	if m.DonasiPaidAt != nil {
		resp.DonasiPaidAt = m.DonasiPaidAt.Format("2006-01-02 15:04:05")
	}
	return resp
}

func ToResponseList(models []model.DonasiModel) []DonasiResponse {
	out := make([]DonasiResponse, 0, len(models))
	for i := range models {
		out = append(out, ToResponse(&models[i]))
	}
	return out
}
