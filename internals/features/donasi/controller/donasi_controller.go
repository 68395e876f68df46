package controller

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"alhidayah_backend/internals/features/donasi/dto"
	"alhidayah_backend/internals/features/donasi/model"
	donasiService "alhidayah_backend/internals/features/donasi/service"
	helper "alhidayah_backend/internals/helpers"
)

type DonasiController struct {
	DB *gorm.DB
}

func NewDonasiController(db *gorm.DB) *DonasiController {
	return &DonasiController{DB: db}
}

// 🟢 CREATE DONASI: Buat donasi baru & simpan snap token Midtrans (tanpa login)
func (ctrl *DonasiController) CreateDonasi(c *fiber.Ctx) error {
	var body dto.DonasiRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := body.Validate(); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	donasi := body.ToModel()
	donasi.DonasiOrderID = fmt.Sprintf("DONASI-%s", uuid.NewString())
	donasi.DonasiPaymentGateway = "midtrans"

	if err := ctrl.DB.WithContext(c.Context()).Create(donasi).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan donasi")
	}

	token, redirectURL, err := donasiService.GenerateSnapToken(donasi)
	if err != nil {
		log.Println("[ERROR] gagal membuat snap token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token pembayaran")
	}

	donasi.DonasiPaymentToken = token
	if err := ctrl.DB.WithContext(c.Context()).
		Model(donasi).
		Update("donasi_payment_token", token).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan token pembayaran")
	}

	return helper.JsonCreated(c, "Donasi berhasil dibuat. Silakan lanjutkan pembayaran.", dto.CreateDonasiResponse{
		DonasiOrderID: donasi.DonasiOrderID,
		SnapToken:     token,
		RedirectURL:   redirectURL,
	})
}

// 🟢 HANDLE MIDTRANS WEBHOOK: Update status donasi berdasarkan notifikasi Midtrans
func (ctrl *DonasiController) HandleMidtransNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload webhook tidak valid")
	}

	if err := donasiService.HandleDonasiStatusWebhook(ctrl.DB.WithContext(c.Context()), body); err != nil {
		log.Println("[ERROR] webhook donasi gagal:", err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	// Midtrans hanya butuh status 200 agar tidak mengirim ulang
	return c.SendStatus(fiber.StatusOK)
}

// 🟢 GET ALL DONASI: Ambil seluruh data donasi (admin)
func (ctrl *DonasiController) GetAllDonasi(c *fiber.Ctx) error {
	var list []model.DonasiModel
	if err := ctrl.DB.WithContext(c.Context()).
		Order("donasi_created_at DESC").
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data donasi")
	}
	return helper.JsonList(c, "Data donasi berhasil diambil", dto.ToResponseList(list))
}
