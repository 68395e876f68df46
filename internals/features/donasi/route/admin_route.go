package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"alhidayah_backend/internals/features/donasi/controller"
)

func AdminDonasiRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDonasiController(db)

	donasi := router.Group("/donasi")
	donasi.Get("/", ctrl.GetAllDonasi)
}
