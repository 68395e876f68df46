package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"alhidayah_backend/internals/features/donasi/controller"
)

// DonasiRoutes: endpoint publik untuk donatur (tanpa login).
func DonasiRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDonasiController(db)

	donasi := router.Group("/donasi")
	donasi.Post("/", ctrl.CreateDonasi)
}

// DonasiWebhookRoutes: endpoint notifikasi pembayaran dari Midtrans.
// Dipasang di luar grup admin karena dipanggil server-to-server.
func DonasiWebhookRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDonasiController(db)

	router.Post("/donasi/notification", ctrl.HandleMidtransNotification)
}
