// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	attendanceRoute "absensi_backend/internals/features/attendance/route"
	attendanceService "absensi_backend/internals/features/attendance/service"
	authRoute "absensi_backend/internals/features/users/auth/route"
	authService "absensi_backend/internals/features/users/auth/service"
	authMiddleware "absensi_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, authSvc *authService.AuthService, attSvc *attendanceService.AttendanceService) {
	startTime = time.Now()

	BaseRoutes(app)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, authSvc)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u", authMiddleware.AuthMiddleware())
	attendanceRoute.AttendanceRoutes(private, attSvc)
}
