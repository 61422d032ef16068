package model

import (
	"testing"
	"time"

	"absensi_backend/internals/databases/sheets"
)

func TestParseTanggal(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"01/05/2024", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{"31/12/1999", time.Date(1999, 12, 31, 0, 0, 0, 0, time.UTC)},
		{"2024-05-01", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)}, // fallback ISO
		{"tanggal-rusak", time.Time{}},
		{"", time.Time{}},
	}
	for _, tt := range tests {
		if got := ParseTanggal(tt.in); !got.Equal(tt.want) {
			t.Errorf("ParseTanggal(%q) = %v, harus %v", tt.in, got, tt.want)
		}
	}
}

func TestIsOpen(t *testing.T) {
	tests := []struct {
		name string
		rec  AttendanceRecord
		want bool
	}{
		{"masuk tanpa pulang", AttendanceRecord{JamMasuk: "08:00:00"}, true},
		{"sudah pulang", AttendanceRecord{JamMasuk: "08:00:00", JamPulang: "17:00:00"}, false},
		{"belum masuk", AttendanceRecord{}, false},
	}
	for _, tt := range tests {
		if got := tt.rec.IsOpen(); got != tt.want {
			t.Errorf("%s: IsOpen = %v, harus %v", tt.name, got, tt.want)
		}
	}
}

func TestRowRoundTrip(t *testing.T) {
	rec := AttendanceRecord{
		ID:          "u1",
		Nama:        "Budi",
		JamMasuk:    "08:00:00",
		JamPulang:   "17:00:00",
		Hari:        "Rabu",
		Tanggal:     "01/05/2024",
		Pekerjaan:   "Instalasi jaringan",
		Status:      "Hadir",
		Dokumentasi: "data:image/jpeg;base64,AAAA",
		Location:    "Jl. Merdeka No. 10",
	}
	got := RecordFromRow(sheets.Row{Index: 2, Values: rec.ToRow()})
	if got != rec {
		t.Errorf("round trip berubah:\n got %+v\nharus %+v", got, rec)
	}
}
