package service

import (
	"testing"

	"absensi_backend/internals/features/attendance/model"
)

func rec(id, tanggal, jamMasuk, jamPulang string) model.AttendanceRecord {
	return model.AttendanceRecord{
		ID:        id,
		Tanggal:   tanggal,
		JamMasuk:  jamMasuk,
		JamPulang: jamPulang,
	}
}

func TestDeriveStatus(t *testing.T) {
	const today = "01/05/2024"

	tests := []struct {
		name    string
		records []model.AttendanceRecord
		want    Status
	}{
		{
			name:    "tanpa record",
			records: nil,
			want:    Status{false, false},
		},
		{
			name:    "record open hari ini",
			records: []model.AttendanceRecord{rec("u1", today, "08:00:00", "")},
			want:    Status{true, true},
		},
		{
			name:    "record sudah closed",
			records: []model.AttendanceRecord{rec("u1", today, "08:00:00", "17:00:00")},
			want:    Status{true, false},
		},
		{
			name:    "record user lain diabaikan",
			records: []model.AttendanceRecord{rec("u2", today, "08:00:00", "")},
			want:    Status{false, false},
		},
		{
			name:    "record tanggal lain diabaikan",
			records: []model.AttendanceRecord{rec("u1", "30/04/2024", "08:00:00", "")},
			want:    Status{false, false},
		},
		{
			name:    "jam_masuk kosong tidak dihitung",
			records: []model.AttendanceRecord{rec("u1", today, "", "")},
			want:    Status{false, false},
		},
		{
			name: "closed kemarin plus open hari ini",
			records: []model.AttendanceRecord{
				rec("u1", "30/04/2024", "08:00:00", "17:00:00"),
				rec("u1", today, "08:05:00", ""),
			},
			want: Status{true, true},
		},
		{
			name: "baris open ganda tetap {true,true}",
			records: []model.AttendanceRecord{
				rec("u1", today, "08:00:00", "17:00:00"),
				rec("u1", today, "08:00:00", ""),
			},
			want: Status{true, true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveStatus(tt.records, "u1", today)
			if got != tt.want {
				t.Errorf("DeriveStatus = %+v, harus %+v", got, tt.want)
			}
		})
	}
}

// Sorting riwayat harus date-aware: "01/05/2024" lebih baru dari
// "15/04/2024" walau secara leksikografis lebih kecil.
func TestSortHistoryDesc(t *testing.T) {
	records := []model.AttendanceRecord{
		rec("u1", "15/04/2024", "08:00:00", "17:00:00"),
		rec("u1", "01/05/2024", "08:00:00", ""),
		rec("u1", "28/04/2024", "08:00:00", "17:00:00"),
	}
	SortHistoryDesc(records)

	want := []string{"01/05/2024", "28/04/2024", "15/04/2024"}
	for i, w := range want {
		if records[i].Tanggal != w {
			t.Errorf("urutan[%d] = %s, harus %s", i, records[i].Tanggal, w)
		}
	}
}

func TestSortHistoryDesc_UnparsableGoesLast(t *testing.T) {
	records := []model.AttendanceRecord{
		rec("u1", "tanggal-rusak", "08:00:00", ""),
		rec("u1", "01/05/2024", "08:00:00", ""),
	}
	SortHistoryDesc(records)
	if records[len(records)-1].Tanggal != "tanggal-rusak" {
		t.Error("tanggal tak terparse harus jatuh ke urutan paling bawah")
	}
}

func TestSortHistoryDesc_ISOFallback(t *testing.T) {
	records := []model.AttendanceRecord{
		rec("u1", "2024-04-20", "08:00:00", "17:00:00"),
		rec("u1", "01/05/2024", "08:00:00", ""),
	}
	SortHistoryDesc(records)
	if records[0].Tanggal != "01/05/2024" {
		t.Errorf("urutan[0] = %s, harus 01/05/2024", records[0].Tanggal)
	}
}
