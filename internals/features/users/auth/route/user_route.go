package route

import (
	"absensi_backend/internals/features/users/auth/controller"
	"absensi_backend/internals/features/users/auth/service"
	middlewares "absensi_backend/internals/middlewares"
	authMiddleware "absensi_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(app *fiber.App, svc *service.AuthService) {
	ctrl := controller.NewAuthController(svc)

	auth := app.Group("/api/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Get("/me", authMiddleware.AuthMiddleware(), ctrl.Me)
}
