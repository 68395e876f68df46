package controller

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"alhidayah_backend/internals/features/jadwal/dto"
	"alhidayah_backend/internals/features/jadwal/model"
	helper "alhidayah_backend/internals/helpers"
)

type JadwalController struct {
	DB *gorm.DB
}

func NewJadwalController(db *gorm.DB) *JadwalController {
	return &JadwalController{DB: db}
}

// ===============================
// LIST (semua, join nama khatib)
// ===============================
// GET /api/public/jadwal
func (ctrl *JadwalController) GetAllJadwal(c *fiber.Ctx) error {
	var jadwal []model.JadwalModel
	if err := ctrl.DB.WithContext(c.Context()).
		Preload("Khatib").
		Order("jadwal_tanggal ASC").
		Find(&jadwal).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data jadwal.")
	}

	return helper.JsonList(c, "Berhasil mengambil data jadwal", dto.ToResponseList(jadwal))
}

// ===============================
// LIST MENDATANG
// ===============================
// GET /api/public/jadwal/mendatang?limit=6
// "Hari ini" dipatok WIB (helper.TodayJakarta), bukan timezone host.
func (ctrl *JadwalController) GetJadwalMendatang(c *fiber.Ctx) error {
	limit := 6
	if v := strings.TrimSpace(c.Query("limit")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Parameter limit tidak valid")
		}
		limit = n
	}
	if limit == 0 {
		return helper.JsonList(c, "Berhasil mengambil jadwal mendatang", []dto.JadwalResponse{})
	}

	var jadwal []model.JadwalModel
	if err := ctrl.DB.WithContext(c.Context()).
		Preload("Khatib").
		Where("jadwal_tanggal >= ?", helper.TodayJakarta()).
		Order("jadwal_tanggal ASC").
		Limit(limit).
		Find(&jadwal).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jadwal mendatang.")
	}

	return helper.JsonList(c, "Berhasil mengambil jadwal mendatang", dto.ToResponseList(jadwal))
}

// ===============================
// CREATE
// ===============================
// POST /api/a/jadwal
func (ctrl *JadwalController) CreateJadwal(c *fiber.Ctx) error {
	var body dto.JadwalRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Input tidak valid")
	}
	if err := body.Validate(); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	jadwal := body.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).
		Create(jadwal).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan jadwal.")
	}

	// muat ulang dengan join supaya nama khatib ikut terkirim
	if err := ctrl.DB.WithContext(c.Context()).
		Preload("Khatib").
		Where("jadwal_id = ?", jadwal.JadwalID).
		First(jadwal).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat ulang jadwal.")
	}

	return helper.JsonCreated(c, "Jadwal berhasil ditambahkan", dto.ToResponse(jadwal))
}

// ===============================
// UPDATE (partial)
// ===============================
// PUT /api/a/jadwal/:id
func (ctrl *JadwalController) UpdateJadwal(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter ID wajib dikirim")
	}

	var body dto.JadwalUpdateRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Input tidak valid")
	}
	if err := body.Validate(); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var existing model.JadwalModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("jadwal_id = ?", id).
		First(&existing).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Jadwal tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data jadwal.")
	}

	updates := body.ToUpdates()
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", dto.ToResponse(&existing))
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Model(&existing).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update jadwal.")
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Preload("Khatib").
		Where("jadwal_id = ?", id).
		First(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat ulang jadwal.")
	}

	return helper.JsonUpdated(c, "Jadwal berhasil diupdate", dto.ToResponse(&existing))
}

// ===============================
// DELETE
// ===============================
// DELETE /api/a/jadwal/:id
func (ctrl *JadwalController) DeleteJadwal(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter ID wajib dikirim")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Where("jadwal_id = ?", id).
		Delete(&model.JadwalModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus jadwal.")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Jadwal tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Jadwal berhasil dihapus", fiber.Map{
		"jadwal_id": id,
	})
}
