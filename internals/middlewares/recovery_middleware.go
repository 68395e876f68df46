package middlewares

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// RecoveryMiddleware mengubah panic menjadi 500 alih-alih mematikan server.
// Stack trace dicatat bersama request id supaya bisa dilacak di log [REQ].
func RecoveryMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			log.Printf("[PANIC] reqid=%v %s %s: %v", c.Locals("reqid"), c.Method(), c.Path(), e)
		},
	})
}
