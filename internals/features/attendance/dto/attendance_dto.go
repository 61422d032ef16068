package dto

import "absensi_backend/internals/features/attendance/model"

type CheckInRequest struct {
	Pekerjaan   string   `json:"pekerjaan"`
	Dokumentasi string   `json:"dokumentasi" validate:"required"`
	Latitude    *float64 `json:"latitude" validate:"required"`
	Longitude   *float64 `json:"longitude" validate:"required"`
}

type CheckOutRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required"`
	Longitude *float64 `json:"longitude" validate:"required"`
}

type DeleteRequest struct {
	Tanggal string `json:"tanggal" validate:"required"` // DD/MM/YYYY
}

type AttendanceRecordDTO struct {
	ID          string `json:"id"`
	Nama        string `json:"nama"`
	JamMasuk    string `json:"jam_masuk"`
	JamPulang   string `json:"jam_pulang"`
	Hari        string `json:"hari"`
	Tanggal     string `json:"tanggal"`
	Pekerjaan   string `json:"pekerjaan"`
	Status      string `json:"status"`
	Dokumentasi string `json:"dokumentasi"`
	Location    string `json:"location"`
}

func ToAttendanceDTO(r model.AttendanceRecord) AttendanceRecordDTO {
	return AttendanceRecordDTO{
		ID:          r.ID,
		Nama:        r.Nama,
		JamMasuk:    r.JamMasuk,
		JamPulang:   r.JamPulang,
		Hari:        r.Hari,
		Tanggal:     r.Tanggal,
		Pekerjaan:   r.Pekerjaan,
		Status:      r.Status,
		Dokumentasi: r.Dokumentasi,
		Location:    r.Location,
	}
}
