package model

import (
	"time"

	"absensi_backend/internals/constants"
	"absensi_backend/internals/databases/sheets"
)

// Kolom sheet PRESENSI, sesuai urutan header.
const (
	ColID          = "id"
	ColNama        = "nama"
	ColJamMasuk    = "jam_masuk"
	ColJamPulang   = "jam_pulang"
	ColHari        = "hari"
	ColTanggal     = "tanggal"
	ColPekerjaan   = "pekerjaan"
	ColStatus      = "status"
	ColDokumentasi = "dokumentasi"
	ColLocation    = "location"
)

// AttendanceRecord: satu baris absensi. Dibuat saat absen masuk, diubah
// sekali saat absen pulang (isi jam_pulang), atau dihapus eksplisit.
// Tidak ada field status turunan yang disimpan — status harian selalu
// dihitung ulang dari record (lihat service.DeriveStatus).
type AttendanceRecord struct {
	ID          string `json:"id"`
	Nama        string `json:"nama"`
	JamMasuk    string `json:"jam_masuk"`
	JamPulang   string `json:"jam_pulang"`
	Hari        string `json:"hari"`
	Tanggal     string `json:"tanggal"` // DD/MM/YYYY
	Pekerjaan   string `json:"pekerjaan"`
	Status      string `json:"status"`
	Dokumentasi string `json:"dokumentasi"` // data URI atau URL file eksternal
	Location    string `json:"location"`
}

// IsOpen: sudah absen masuk, belum absen pulang.
func (r AttendanceRecord) IsOpen() bool {
	return r.JamMasuk != "" && r.JamPulang == ""
}

func RecordFromRow(row sheets.Row) AttendanceRecord {
	return AttendanceRecord{
		ID:          row.Get(ColID),
		Nama:        row.Get(ColNama),
		JamMasuk:    row.Get(ColJamMasuk),
		JamPulang:   row.Get(ColJamPulang),
		Hari:        row.Get(ColHari),
		Tanggal:     row.Get(ColTanggal),
		Pekerjaan:   row.Get(ColPekerjaan),
		Status:      row.Get(ColStatus),
		Dokumentasi: row.Get(ColDokumentasi),
		Location:    row.Get(ColLocation),
	}
}

func (r AttendanceRecord) ToRow() map[string]string {
	return map[string]string{
		ColID:          r.ID,
		ColNama:        r.Nama,
		ColJamMasuk:    r.JamMasuk,
		ColJamPulang:   r.JamPulang,
		ColHari:        r.Hari,
		ColTanggal:     r.Tanggal,
		ColPekerjaan:   r.Pekerjaan,
		ColStatus:      r.Status,
		ColDokumentasi: r.Dokumentasi,
		ColLocation:    r.Location,
	}
}

// ParseTanggal memparse date key DD/MM/YYYY untuk sorting riwayat.
// Fallback: coba parse langsung YYYY-MM-DD; kalau tetap gagal kembalikan
// zero time, sehingga record tak terparse jatuh ke urutan paling bawah
// pada listing descending. Quirk lama, sengaja tidak "dibetulkan".
func ParseTanggal(s string) time.Time {
	if t, err := time.Parse(constants.DateKeyLayout, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	return time.Time{}
}
