package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"alhidayah_backend/internals/features/keuangan/controller"
)

func AdminTransaksiRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTransaksiController(db)

	transaksi := router.Group("/transaksi")
	transaksi.Post("/", ctrl.CreateTransaksi)
	transaksi.Put("/:id", ctrl.UpdateTransaksi)
	transaksi.Delete("/:id", ctrl.DeleteTransaksi)
}
