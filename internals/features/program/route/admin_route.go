package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"alhidayah_backend/internals/features/program/controller"
)

func AdminProgramRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewProgramImageController(db)

	program := router.Group("/program-images")
	program.Patch("/:key", ctrl.UpsertProgramImage)
	program.Post("/:key/upload", ctrl.UploadProgramImage)
}
