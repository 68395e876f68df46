// file: internals/route/index.go
package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "alhidayah_backend/internals/features/auth/route"
	donasiRoute "alhidayah_backend/internals/features/donasi/route"
	homeRoute "alhidayah_backend/internals/features/home/route"
	jadwalRoute "alhidayah_backend/internals/features/jadwal/route"
	transaksiRoute "alhidayah_backend/internals/features/keuangan/route"
	khatibRoute "alhidayah_backend/internals/features/khatib/route"
	programRoute "alhidayah_backend/internals/features/program/route"
	authMiddleware "alhidayah_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== BASE =====================
	BaseRoutes(app, db)

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	homeRoute.HomeRoutes(public, db)
	khatibRoute.AllKhatibRoutes(public, db)
	jadwalRoute.AllJadwalRoutes(public, db)
	transaksiRoute.AllTransaksiRoutes(public, db)
	programRoute.AllProgramRoutes(public, db)
	donasiRoute.DonasiRoutes(public, db)

	// Webhook Midtrans: server-to-server, tanpa JWT
	donasiRoute.DonasiWebhookRoutes(app.Group("/api"), db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (JWT)...")
	admin := app.Group("/api/a",
		authMiddleware.AdminAuth(authMiddleware.AdminAuthOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)

	homeRoute.AdminHomeRoutes(admin, db)
	khatibRoute.AdminKhatibRoutes(admin, db)
	jadwalRoute.AdminJadwalRoutes(admin, db)
	transaksiRoute.AdminTransaksiRoutes(admin, db)
	programRoute.AdminProgramRoutes(admin, db)
	donasiRoute.AdminDonasiRoutes(admin, db)
}
