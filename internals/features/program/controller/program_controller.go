package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"alhidayah_backend/internals/constants"
	"alhidayah_backend/internals/features/program/dto"
	"alhidayah_backend/internals/features/program/model"
	helper "alhidayah_backend/internals/helpers"
	ossHelper "alhidayah_backend/internals/helpers/oss"
)

type ProgramImageController struct {
	DB *gorm.DB
}

func NewProgramImageController(db *gorm.DB) *ProgramImageController {
	return &ProgramImageController{DB: db}
}

// ===============================
// LIST (semua slot, termasuk yang kosong)
// ===============================
// GET /api/public/program-images
func (ctrl *ProgramImageController) GetAllProgramImages(c *fiber.Ctx) error {
	var rows []model.ProgramImageModel
	if err := ctrl.DB.WithContext(c.Context()).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil gambar program.")
	}

	return helper.JsonList(c, "Berhasil mengambil gambar program", dto.MaterializeAll(rows))
}

// ===============================
// UPSERT URL
// ===============================
// PATCH /api/a/program-images/:key
// Key divalidasi terhadap daftar slot yang dikenal.
func (ctrl *ProgramImageController) UpsertProgramImage(c *fiber.Ctx) error {
	key := c.Params("key")
	if !constants.IsValidProgramKey(key) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Key program tidak dikenal.")
	}

	var body dto.ProgramImageUpsertRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Input tidak valid")
	}
	url := strings.TrimSpace(body.ProgramImageURL)
	if url == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "URL gambar wajib diisi.")
	}

	row := model.ProgramImageModel{
		ProgramImageKey: key,
		ProgramImageURL: &url,
	}
	if err := ctrl.DB.WithContext(c.Context()).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "program_image_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"program_image_url", "program_image_updated_at"}),
		}).
		Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan gambar program.")
	}

	return helper.JsonUpdated(c, "Gambar program berhasil disimpan", dto.ProgramImageResponse{
		ProgramImageKey: key,
		ProgramImageURL: &url,
	})
}

// ===============================
// UPLOAD (multipart) lalu upsert
// ===============================
// POST /api/a/program-images/:key/upload
func (ctrl *ProgramImageController) UploadProgramImage(c *fiber.Ctx) error {
	key := c.Params("key")
	if !constants.IsValidProgramKey(key) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Key program tidak dikenal.")
	}

	fh, err := c.FormFile("image")
	if err != nil || fh == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File gambar wajib dikirim (field: image)")
	}

	// cek URL lama dulu untuk cleanup setelah replace
	var old model.ProgramImageModel
	var oldURL *string
	if err := ctrl.DB.WithContext(c.Context()).
		Where("program_image_key = ?", key).
		First(&old).Error; err == nil {
		oldURL = old.ProgramImageURL
	}

	svc, err := ossHelper.NewOSSServiceFromEnv("program")
	if err != nil {
		log.Printf("[ERROR] OSS init: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Storage tidak tersedia.")
	}

	publicURL, err := svc.UploadAsWebP(c.Context(), fh)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		log.Printf("[ERROR] upload gambar program: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal upload gambar.")
	}

	row := model.ProgramImageModel{
		ProgramImageKey: key,
		ProgramImageURL: &publicURL,
	}
	if err := ctrl.DB.WithContext(c.Context()).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "program_image_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"program_image_url", "program_image_updated_at"}),
		}).
		Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan gambar program.")
	}

	if oldURL != nil && *oldURL != publicURL {
		ossHelper.CleanupByPublicURLBestEffort(*oldURL)
	}

	return helper.JsonUpdated(c, "Gambar program berhasil diupload", dto.ProgramImageResponse{
		ProgramImageKey: key,
		ProgramImageURL: &publicURL,
	})
}
