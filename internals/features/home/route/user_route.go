package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"alhidayah_backend/internals/features/home/controller"
)

func HomeRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewHomeController(db)

	router.Get("/profil", ctrl.GetProfil)
	router.Get("/jadwal-sholat", ctrl.GetJadwalSholat)
}
