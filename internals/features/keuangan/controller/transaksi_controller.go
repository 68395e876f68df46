package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"alhidayah_backend/internals/features/keuangan/dto"
	"alhidayah_backend/internals/features/keuangan/model"
	helper "alhidayah_backend/internals/helpers"
)

type TransaksiController struct {
	DB *gorm.DB
}

func NewTransaksiController(db *gorm.DB) *TransaksiController {
	return &TransaksiController{DB: db}
}

// ===============================
// LIST (terbaru dulu)
// ===============================
// GET /api/public/transaksi
func (ctrl *TransaksiController) GetAllTransaksi(c *fiber.Ctx) error {
	var transaksi []model.TransaksiModel
	if err := ctrl.DB.WithContext(c.Context()).
		Order("transaksi_tanggal DESC").
		Find(&transaksi).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data transaksi.")
	}

	return helper.JsonList(c, "Berhasil mengambil data transaksi", dto.ToResponseList(transaksi))
}

// ===============================
// RINGKASAN (masuk/keluar/saldo)
// ===============================
// GET /api/public/transaksi/ringkasan
func (ctrl *TransaksiController) GetRingkasan(c *fiber.Ctx) error {
	var rows []model.TransaksiModel
	if err := ctrl.DB.WithContext(c.Context()).
		Select("transaksi_jenis", "transaksi_jumlah").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil ringkasan.")
	}

	return helper.JsonOK(c, "Berhasil mengambil ringkasan", dto.HitungRingkasan(rows))
}

// ===============================
// CREATE
// ===============================
// POST /api/a/transaksi
func (ctrl *TransaksiController) CreateTransaksi(c *fiber.Ctx) error {
	var body dto.TransaksiRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Input tidak valid")
	}
	if err := body.Validate(); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	transaksi := body.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).
		Create(transaksi).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan transaksi.")
	}

	return helper.JsonCreated(c, "Transaksi berhasil ditambahkan", dto.ToResponse(transaksi))
}

// ===============================
// UPDATE (partial + re-validasi pasangan jenis/kategori)
// ===============================
// PUT /api/a/transaksi/:id
func (ctrl *TransaksiController) UpdateTransaksi(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter ID wajib dikirim")
	}

	var body dto.TransaksiUpdateRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Input tidak valid")
	}

	var existing model.TransaksiModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("transaksi_id = ?", id).
		First(&existing).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Transaksi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data transaksi.")
	}

	// merge field yang dikirim, lalu validasi record hasil merge dengan
	// predicate yang sama seperti create
	merged := existing
	updates := body.ApplyTo(&merged)
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", dto.ToResponse(&existing))
	}
	if err := dto.ValidateTransaksiFields(
		merged.TransaksiTanggal, merged.TransaksiKeterangan,
		merged.TransaksiKategori, merged.TransaksiJenis, merged.TransaksiJumlah,
	); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Model(&existing).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update transaksi.")
	}

	merged.TransaksiID = existing.TransaksiID
	return helper.JsonUpdated(c, "Transaksi berhasil diupdate", dto.ToResponse(&merged))
}

// ===============================
// DELETE
// ===============================
// DELETE /api/a/transaksi/:id
func (ctrl *TransaksiController) DeleteTransaksi(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter ID wajib dikirim")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Where("transaksi_id = ?", id).
		Delete(&model.TransaksiModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus transaksi.")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Transaksi tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Transaksi berhasil dihapus", fiber.Map{
		"transaksi_id": id,
	})
}
