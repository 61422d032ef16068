package route

import (
	"absensi_backend/internals/features/attendance/controller"
	"absensi_backend/internals/features/attendance/service"

	"github.com/gofiber/fiber/v2"
)

// AttendanceRoutes: semua endpoint absensi, di-mount di bawah group
// yang sudah dilindungi middleware auth.
func AttendanceRoutes(api fiber.Router, svc *service.AttendanceService) {
	ctrl := controller.NewAttendanceController(svc)

	att := api.Group("/attendance")
	att.Post("/checkin", ctrl.CheckIn)
	att.Post("/checkout", ctrl.CheckOut)
	att.Get("/status", ctrl.StatusToday)
	att.Get("/history", ctrl.History)
	att.Delete("/", ctrl.Delete)
}
