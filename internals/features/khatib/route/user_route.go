package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"alhidayah_backend/internals/features/khatib/controller"
)

// Endpoint publik: baca saja.
func AllKhatibRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewKhatibController(db)

	khatib := router.Group("/khatib")
	khatib.Get("/", ctrl.GetAllKhatib)
	khatib.Get("/:id", ctrl.GetKhatibByID)
}
