package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"alhidayah_backend/internals/features/khatib/controller"
)

func AdminKhatibRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewKhatibController(db)

	khatib := router.Group("/khatib")
	khatib.Post("/", ctrl.CreateKhatib)
	khatib.Put("/:id", ctrl.UpdateKhatib)
	khatib.Patch("/:id", ctrl.ToggleAktif)
	khatib.Delete("/:id", ctrl.DeleteKhatib)
	khatib.Post("/:id/foto", ctrl.UploadFoto)
}
