package controller

import (
	"errors"
	"log"

	"absensi_backend/internals/configs"
	"absensi_backend/internals/databases/sheets"
	"absensi_backend/internals/features/attendance/dto"
	"absensi_backend/internals/features/attendance/service"
	helper "absensi_backend/internals/helpers"
	imgcompress "absensi_backend/internals/helpers/compress"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validateAttendance = validator.New()

type AttendanceController struct {
	Service *service.AttendanceService
}

func NewAttendanceController(svc *service.AttendanceService) *AttendanceController {
	return &AttendanceController{Service: svc}
}

// =======================
// ➕ Absen Masuk
// =======================
func (ctrl *AttendanceController) CheckIn(c *fiber.Ctx) error {
	var body dto.CheckInRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAttendance.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	userID := helper.GetUserID(c)
	if userID == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User ID not found in token")
	}
	nama, _ := c.Locals("user_name").(string)

	rec, err := ctrl.Service.CheckIn(c.UserContext(), service.CheckInInput{
		UserID:      userID,
		Nama:        nama,
		Pekerjaan:   body.Pekerjaan,
		Dokumentasi: body.Dokumentasi,
		Latitude:    body.Latitude,
		Longitude:   body.Longitude,
	})
	if err != nil {
		return attendanceError(c, err, "Gagal menyimpan absensi masuk")
	}
	return helper.JsonCreated(c, "Absensi masuk berhasil disimpan!", dto.ToAttendanceDTO(rec))
}

// =======================
// 🏁 Absen Pulang
// =======================
func (ctrl *AttendanceController) CheckOut(c *fiber.Ctx) error {
	var body dto.CheckOutRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAttendance.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	userID := helper.GetUserID(c)
	if userID == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	found, err := ctrl.Service.CheckOut(c.UserContext(), userID, body.Latitude, body.Longitude)
	if err != nil {
		return attendanceError(c, err, "Gagal menyimpan absensi pulang")
	}
	if !found {
		return helper.JsonNotFoundResult(c, "Data absensi masuk tidak ditemukan")
	}
	return helper.JsonOK(c, "Absensi pulang berhasil disimpan!", nil)
}

// =======================
// 📊 Status Hari Ini
// =======================
func (ctrl *AttendanceController) StatusToday(c *fiber.Ctx) error {
	userID := helper.GetUserID(c)
	if userID == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User ID not found in token")
	}
	st, err := ctrl.Service.StatusToday(c.UserContext(), userID)
	if err != nil {
		return attendanceError(c, err, "Gagal memeriksa status absensi")
	}
	return helper.JsonOK(c, "ok", st)
}

// =======================
// 📄 Riwayat
// =======================
func (ctrl *AttendanceController) History(c *fiber.Ctx) error {
	userID := helper.GetUserID(c)
	if userID == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User ID not found in token")
	}
	records, err := ctrl.Service.History(c.UserContext(), userID)
	if err != nil {
		return attendanceError(c, err, "Gagal mengambil riwayat absensi")
	}
	resp := make([]dto.AttendanceRecordDTO, 0, len(records))
	for _, r := range records {
		resp = append(resp, dto.ToAttendanceDTO(r))
	}
	return helper.JsonList(c, "ok", resp)
}

// =======================
// 🗑 Hapus Record
// =======================
func (ctrl *AttendanceController) Delete(c *fiber.Ctx) error {
	var body dto.DeleteRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAttendance.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	userID := helper.GetUserID(c)
	if userID == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User ID not found in token")
	}

	found, err := ctrl.Service.Delete(c.UserContext(), userID, body.Tanggal)
	if err != nil {
		return attendanceError(c, err, "Gagal menghapus data")
	}
	if !found {
		return helper.JsonNotFoundResult(c, "Data tidak ditemukan")
	}
	return helper.JsonOK(c, "Data berhasil dihapus!", nil)
}

// attendanceError memetakan error service ke respons HTTP. Error store
// ditampilkan verbatim hanya di non-production.
func attendanceError(c *fiber.Ctx, err error, genericMsg string) error {
	switch {
	case errors.Is(err, service.ErrBusy):
		return helper.JsonError(c, fiber.StatusTooManyRequests, err.Error())
	case errors.Is(err, service.ErrMissingDokumentasi):
		return helper.JsonError(c, fiber.StatusBadRequest, "Silakan ambil foto dokumentasi terlebih dahulu")
	case errors.Is(err, service.ErrAlreadyCheckedIn):
		return helper.JsonError(c, fiber.StatusConflict, "Anda sudah absen masuk hari ini")
	case errors.Is(err, service.ErrLocation):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, imgcompress.ErrDecode):
		return helper.JsonError(c, fiber.StatusBadRequest, "Foto dokumentasi tidak valid")
	case errors.Is(err, sheets.ErrStoreRead), errors.Is(err, sheets.ErrStoreWrite):
		log.Printf("[ATTENDANCE] store error: %v", err)
		if configs.IsProduction() {
			return helper.JsonError(c, fiber.StatusInternalServerError, genericMsg)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	default:
		log.Printf("[ATTENDANCE] error: %v", err)
		if configs.IsProduction() {
			return helper.JsonError(c, fiber.StatusInternalServerError, genericMsg)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
}
