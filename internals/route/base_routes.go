package routes

import (
	"time"

	"absensi_backend/internals/configs"

	"github.com/gofiber/fiber/v2"
)

func BaseRoutes(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Absensi backend up 🚀")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		status := "OK"
		httpStatus := fiber.StatusOK
		if configs.SpreadsheetID == "" || configs.JWTSecret == "" {
			status = "DEGRADED"
			httpStatus = fiber.StatusServiceUnavailable
		}

		uptime := time.Since(startTime).Seconds()

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         status,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(uptime),
			"environment":    configs.AppEnv,
		})
	})
}
