package service

import (
	"sort"

	"absensi_backend/internals/features/attendance/model"
)

// Status harian user, diturunkan murni dari record — tidak pernah disimpan.
// Dua predikat dihitung independen (bukan enum), supaya baris open ganda
// tetap terjawab tanpa ambigu:
//   - {false, false} = belum absen masuk
//   - {true, true}   = sudah masuk, belum pulang
//   - {true, false}  = sudah masuk dan sudah pulang
type Status struct {
	HasCheckedInToday bool `json:"has_checked_in_today"`
	CanCheckOutToday  bool `json:"can_check_out_today"`
}

// DeriveStatus menghitung status "hari ini" dari snapshot record.
// todayKey dibandingkan exact string equality dengan kolom tanggal.
func DeriveStatus(records []model.AttendanceRecord, userID, todayKey string) Status {
	var st Status
	for _, r := range records {
		if r.ID != userID || r.Tanggal != todayKey {
			continue
		}
		if r.JamMasuk == "" {
			continue
		}
		st.HasCheckedInToday = true
		if r.JamPulang == "" {
			st.CanCheckOutToday = true
		}
	}
	return st
}

// SortHistoryDesc mengurutkan riwayat dari tanggal terbaru (date-aware,
// bukan leksikografis). Record dengan tanggal tak terparse ikut urutan
// hasil parse fallback (zero time → paling bawah).
func SortHistoryDesc(records []model.AttendanceRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return model.ParseTanggal(records[i].Tanggal).After(model.ParseTanggal(records[j].Tanggal))
	})
}
