package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"absensi_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware dasar dengan urutan:
// recovery → cors → logger → global rate limiter.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
