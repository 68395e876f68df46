package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"alhidayah_backend/internals/features/jadwal/controller"
)

func AdminJadwalRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewJadwalController(db)

	jadwal := router.Group("/jadwal")
	jadwal.Post("/", ctrl.CreateJadwal)
	jadwal.Put("/:id", ctrl.UpdateJadwal)
	jadwal.Delete("/:id", ctrl.DeleteJadwal)
}
