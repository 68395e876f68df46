package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"alhidayah_backend/internals/features/jadwal/controller"
)

func AllJadwalRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewJadwalController(db)

	jadwal := router.Group("/jadwal")
	jadwal.Get("/", ctrl.GetAllJadwal)
	jadwal.Get("/mendatang", ctrl.GetJadwalMendatang)
}
