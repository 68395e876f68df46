package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"alhidayah_backend/internals/features/keuangan/controller"
)

// Halaman laporan keuangan publik: list + ringkasan.
func AllTransaksiRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTransaksiController(db)

	transaksi := router.Group("/transaksi")
	transaksi.Get("/", ctrl.GetAllTransaksi)
	transaksi.Get("/ringkasan", ctrl.GetRingkasan)
}
