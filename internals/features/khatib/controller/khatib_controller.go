package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"alhidayah_backend/internals/features/khatib/dto"
	"alhidayah_backend/internals/features/khatib/model"
	helper "alhidayah_backend/internals/helpers"
	ossHelper "alhidayah_backend/internals/helpers/oss"
)

type KhatibController struct {
	DB *gorm.DB
}

func NewKhatibController(db *gorm.DB) *KhatibController {
	return &KhatibController{DB: db}
}

// ===============================
// LIST
// ===============================
// GET /api/public/khatib?aktif=true
func (ctrl *KhatibController) GetAllKhatib(c *fiber.Ctx) error {
	tx := ctrl.DB.WithContext(c.Context()).
		Model(&model.KhatibModel{}).
		Order("khatib_nama ASC")

	if c.Query("aktif") == "true" {
		tx = tx.Where("khatib_aktif = ?", true)
	}

	var khatib []model.KhatibModel
	if err := tx.Find(&khatib).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data khatib.")
	}

	return helper.JsonList(c, "Berhasil mengambil data khatib", dto.ToResponseList(khatib))
}

// ===============================
// READ BY ID
// ===============================
// GET /api/public/khatib/:id
func (ctrl *KhatibController) GetKhatibByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter ID wajib dikirim")
	}

	var khatib model.KhatibModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("khatib_id = ?", id).
		First(&khatib).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Khatib tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data khatib.")
	}

	return helper.JsonOK(c, "Berhasil mengambil data khatib", dto.ToResponse(&khatib))
}

// ===============================
// CREATE
// ===============================
// POST /api/a/khatib
func (ctrl *KhatibController) CreateKhatib(c *fiber.Ctx) error {
	var body dto.KhatibRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Input tidak valid")
	}
	if err := body.Validate(); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	khatib := body.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).
		Create(khatib).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan data khatib.")
	}

	return helper.JsonCreated(c, "Khatib berhasil ditambahkan", dto.ToResponse(khatib))
}

// ===============================
// UPDATE (partial)
// ===============================
// PUT /api/a/khatib/:id
func (ctrl *KhatibController) UpdateKhatib(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter ID wajib dikirim")
	}

	var body dto.KhatibUpdateRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Input tidak valid")
	}
	if err := body.Validate(); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var existing model.KhatibModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("khatib_id = ?", id).
		First(&existing).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Khatib tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data khatib.")
	}

	updates := body.ToUpdates()
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", dto.ToResponse(&existing))
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Model(&existing).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update khatib.")
	}

	// reload agar nilai tersimpan terbaru ikut terkirim
	if err := ctrl.DB.WithContext(c.Context()).
		Where("khatib_id = ?", id).
		First(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat ulang data khatib.")
	}

	return helper.JsonUpdated(c, "Khatib berhasil diupdate", dto.ToResponse(&existing))
}

// ===============================
// TOGGLE AKTIF
// ===============================
// PATCH /api/a/khatib/:id  body {"khatib_aktif": bool}
func (ctrl *KhatibController) ToggleAktif(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter ID wajib dikirim")
	}

	var body struct {
		KhatibAktif *bool `json:"khatib_aktif"`
	}
	if err := c.BodyParser(&body); err != nil || body.KhatibAktif == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Field khatib_aktif wajib dikirim")
	}

	var existing model.KhatibModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("khatib_id = ?", id).
		First(&existing).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Khatib tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data khatib.")
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Model(&existing).
		Update("khatib_aktif", *body.KhatibAktif).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal toggle status.")
	}

	existing.KhatibAktif = *body.KhatibAktif
	return helper.JsonUpdated(c, "Status khatib berhasil diubah", dto.ToResponse(&existing))
}

// ===============================
// DELETE
// ===============================
// DELETE /api/a/khatib/:id
// Foto di blob store ikut dibersihkan best-effort: gagal hapus blob hanya
// dicatat karena row utamanya sudah terhapus.
func (ctrl *KhatibController) DeleteKhatib(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter ID wajib dikirim")
	}

	var existing model.KhatibModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("khatib_id = ?", id).
		First(&existing).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Khatib tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data khatib.")
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Where("khatib_id = ?", id).
		Delete(&model.KhatibModel{}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus khatib.")
	}

	if existing.KhatibFotoURL != nil {
		ossHelper.CleanupByPublicURLBestEffort(*existing.KhatibFotoURL)
	}

	return helper.JsonDeleted(c, "Khatib berhasil dihapus", fiber.Map{
		"khatib_id": id,
	})
}

// ===============================
// UPLOAD FOTO (multipart)
// ===============================
// POST /api/a/khatib/:id/foto
// Dua langkah non-atomik: upload blob dulu, baru simpan URL. Blob lama
// dihapus best-effort setelah URL baru tersimpan.
func (ctrl *KhatibController) UploadFoto(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter ID wajib dikirim")
	}

	var existing model.KhatibModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("khatib_id = ?", id).
		First(&existing).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Khatib tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data khatib.")
	}

	fh, err := c.FormFile("foto")
	if err != nil || fh == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File foto wajib dikirim (field: foto)")
	}

	svc, err := ossHelper.NewOSSServiceFromEnv("khatib")
	if err != nil {
		log.Printf("[ERROR] OSS init: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Storage tidak tersedia.")
	}

	publicURL, err := svc.UploadAsWebP(c.Context(), fh)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		log.Printf("[ERROR] upload foto: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal upload foto.")
	}

	oldURL := existing.KhatibFotoURL
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&existing).
		Update("khatib_foto_url", publicURL).Error; err != nil {
		// URL gagal tersimpan; blob yang barusan naik jadi yatim dan
		// diterima sebagai leakage (lihat kebijakan dua-langkah).
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan URL foto.")
	}

	if oldURL != nil && *oldURL != publicURL {
		ossHelper.CleanupByPublicURLBestEffort(*oldURL)
	}

	existing.KhatibFotoURL = &publicURL
	return helper.JsonUpdated(c, "Foto khatib berhasil diupload", dto.ToResponse(&existing))
}
