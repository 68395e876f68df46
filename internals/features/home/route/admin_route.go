package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"alhidayah_backend/internals/features/home/controller"
)

func AdminHomeRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewHomeController(db)

	router.Put("/profil", ctrl.UpdateProfil)
}
