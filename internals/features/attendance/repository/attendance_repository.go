package repository

import (
	"context"

	"absensi_backend/internals/databases/sheets"
	"absensi_backend/internals/features/attendance/model"
)

// RowStore adalah kontrak minimum ke backing sheet (dipenuhi *sheets.Client).
type RowStore interface {
	GetRows(ctx context.Context, sheet string) ([]sheets.Row, error)
	AppendRow(ctx context.Context, sheet string, record map[string]string) error
	UpdateRow(ctx context.Context, sheet string, rowIndex int, fields map[string]string) error
	DeleteRow(ctx context.Context, sheet string, rowIndex int) error
}

// AttendanceRepository menerjemahkan intent absensi ke operasi row store.
// Semua pencarian memuat seluruh sheet lalu filter exact-match di klien —
// batas skalabilitas yang disadari, bukan bug.
type AttendanceRepository struct {
	store RowStore
	sheet string
}

func NewAttendanceRepository(store RowStore, sheet string) *AttendanceRepository {
	return &AttendanceRepository{store: store, sheet: sheet}
}

// AppendCheckIn menulis satu baris baru dengan jam_pulang kosong.
// Sengaja tidak mengecek record open duplikat — guard idempoten ada di
// orchestrator, yang menurunkan status dulu dari snapshot segar.
func (r *AttendanceRepository) AppendCheckIn(ctx context.Context, rec model.AttendanceRecord) error {
	rec.JamPulang = ""
	return r.store.AppendRow(ctx, r.sheet, rec.ToRow())
}

// UpdateCheckOut mengisi jam_pulang pada baris PERTAMA yang match
// (id, tanggal, jam_pulang kosong). found=false kalau tidak ada yang match —
// hasil logis, bukan error sistem.
func (r *AttendanceRepository) UpdateCheckOut(ctx context.Context, userID, tanggal, jamPulang string) (found bool, err error) {
	rows, err := r.store.GetRows(ctx, r.sheet)
	if err != nil {
		return false, err
	}
	for _, row := range rows {
		if row.Get(model.ColID) == userID &&
			row.Get(model.ColTanggal) == tanggal &&
			row.Get(model.ColJamPulang) == "" {
			fields := map[string]string{model.ColJamPulang: jamPulang}
			if err := r.store.UpdateRow(ctx, r.sheet, row.Index, fields); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// DeleteRecord menghapus baris PERTAMA yang match (id, tanggal),
// open ataupun sudah ditutup. Not-found diperlakukan sama seperti di atas.
func (r *AttendanceRepository) DeleteRecord(ctx context.Context, userID, tanggal string) (found bool, err error) {
	rows, err := r.store.GetRows(ctx, r.sheet)
	if err != nil {
		return false, err
	}
	for _, row := range rows {
		if row.Get(model.ColID) == userID && row.Get(model.ColTanggal) == tanggal {
			if err := r.store.DeleteRow(ctx, r.sheet, row.Index); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// ListByUser mengembalikan semua record milik user, urutan apa adanya.
func (r *AttendanceRepository) ListByUser(ctx context.Context, userID string) ([]model.AttendanceRecord, error) {
	rows, err := r.store.GetRows(ctx, r.sheet)
	if err != nil {
		return nil, err
	}
	records := make([]model.AttendanceRecord, 0)
	for _, row := range rows {
		if row.Get(model.ColID) == userID {
			records = append(records, model.RecordFromRow(row))
		}
	}
	return records, nil
}
