package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startTime = time.Now()

// BaseRoutes: health check untuk monitoring & anti cold-start.
func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "ok"
		if sqlDB, err := db.DB(); err != nil {
			dbStatus = "error"
		} else if err := sqlDB.Ping(); err != nil {
			dbStatus = "error"
		}

		return c.JSON(fiber.Map{
			"status":   "ok",
			"database": dbStatus,
			"uptime":   time.Since(startTime).Round(time.Second).String(),
		})
	})
}
