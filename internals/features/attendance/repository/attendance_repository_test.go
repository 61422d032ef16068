package repository

import (
	"context"
	"errors"
	"testing"

	"absensi_backend/internals/databases/sheets"
	"absensi_backend/internals/features/attendance/model"
)

type fakeRowStore struct {
	rows    []sheets.Row
	readErr error

	appended []map[string]string
	updated  map[int]map[string]string
	deleted  []int
}

func (f *fakeRowStore) GetRows(_ context.Context, _ string) ([]sheets.Row, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	return f.rows, nil
}

func (f *fakeRowStore) AppendRow(_ context.Context, _ string, record map[string]string) error {
	f.appended = append(f.appended, record)
	return nil
}

func (f *fakeRowStore) UpdateRow(_ context.Context, _ string, rowIndex int, fields map[string]string) error {
	if f.updated == nil {
		f.updated = make(map[int]map[string]string)
	}
	f.updated[rowIndex] = fields
	return nil
}

func (f *fakeRowStore) DeleteRow(_ context.Context, _ string, rowIndex int) error {
	f.deleted = append(f.deleted, rowIndex)
	return nil
}

func sheetRow(index int, id, tanggal, jamMasuk, jamPulang string) sheets.Row {
	return sheets.Row{Index: index, Values: map[string]string{
		model.ColID:        id,
		model.ColTanggal:   tanggal,
		model.ColJamMasuk:  jamMasuk,
		model.ColJamPulang: jamPulang,
	}}
}

func TestAppendCheckIn_ForcesEmptyJamPulang(t *testing.T) {
	store := &fakeRowStore{}
	repo := NewAttendanceRepository(store, "PRESENSI")

	rec := model.AttendanceRecord{
		ID:        "u1",
		Tanggal:   "01/05/2024",
		JamMasuk:  "08:00:00",
		JamPulang: "17:00:00", // harus di-zero-kan oleh repo
	}
	if err := repo.AppendCheckIn(context.Background(), rec); err != nil {
		t.Fatalf("AppendCheckIn: %v", err)
	}
	if len(store.appended) != 1 {
		t.Fatalf("appended = %d baris", len(store.appended))
	}
	if got := store.appended[0][model.ColJamPulang]; got != "" {
		t.Errorf("jam_pulang = %q, harus kosong", got)
	}
}

func TestUpdateCheckOut_PicksFirstOpenMatch(t *testing.T) {
	store := &fakeRowStore{rows: []sheets.Row{
		sheetRow(2, "u1", "30/04/2024", "08:00:00", "17:00:00"),
		sheetRow(3, "u2", "01/05/2024", "08:00:00", ""),
		sheetRow(4, "u1", "01/05/2024", "08:00:00", "17:00:00"), // closed, skip
		sheetRow(5, "u1", "01/05/2024", "08:05:00", ""),         // target
		sheetRow(6, "u1", "01/05/2024", "08:10:00", ""),         // bukan yang pertama
	}}
	repo := NewAttendanceRepository(store, "PRESENSI")

	found, err := repo.UpdateCheckOut(context.Background(), "u1", "01/05/2024", "17:30:00")
	if err != nil {
		t.Fatalf("UpdateCheckOut: %v", err)
	}
	if !found {
		t.Fatal("harus found")
	}
	if len(store.updated) != 1 {
		t.Fatalf("updated %d baris, harus 1", len(store.updated))
	}
	fields, ok := store.updated[5]
	if !ok {
		t.Fatalf("baris yang diupdate = %v, harus baris 5", store.updated)
	}
	if fields[model.ColJamPulang] != "17:30:00" {
		t.Errorf("jam_pulang = %q", fields[model.ColJamPulang])
	}
}

func TestUpdateCheckOut_NotFound(t *testing.T) {
	store := &fakeRowStore{rows: []sheets.Row{
		sheetRow(2, "u1", "01/05/2024", "08:00:00", "17:00:00"),
	}}
	repo := NewAttendanceRepository(store, "PRESENSI")

	found, err := repo.UpdateCheckOut(context.Background(), "u1", "01/05/2024", "18:00:00")
	if err != nil {
		t.Fatalf("UpdateCheckOut: %v", err)
	}
	if found {
		t.Error("record closed tidak boleh dianggap open")
	}
	if len(store.updated) != 0 {
		t.Error("tidak boleh ada update")
	}
}

func TestUpdateCheckOut_ReadErrorPropagates(t *testing.T) {
	wantErr := errors.New("transport putus")
	repo := NewAttendanceRepository(&fakeRowStore{readErr: wantErr}, "PRESENSI")

	if _, err := repo.UpdateCheckOut(context.Background(), "u1", "01/05/2024", "18:00:00"); !errors.Is(err, wantErr) {
		t.Fatalf("error = %v, harus dipropagasi", err)
	}
}

func TestDeleteRecord_MatchesClosedToo(t *testing.T) {
	store := &fakeRowStore{rows: []sheets.Row{
		sheetRow(2, "u2", "01/05/2024", "08:00:00", ""),
		sheetRow(3, "u1", "01/05/2024", "08:00:00", "17:00:00"),
	}}
	repo := NewAttendanceRepository(store, "PRESENSI")

	found, err := repo.DeleteRecord(context.Background(), "u1", "01/05/2024")
	if err != nil || !found {
		t.Fatalf("DeleteRecord = (%v, %v)", found, err)
	}
	if len(store.deleted) != 1 || store.deleted[0] != 3 {
		t.Errorf("deleted = %v, harus [3]", store.deleted)
	}
}

func TestDeleteRecord_NotFound(t *testing.T) {
	repo := NewAttendanceRepository(&fakeRowStore{}, "PRESENSI")
	found, err := repo.DeleteRecord(context.Background(), "u1", "01/05/2024")
	if err != nil {
		t.Fatalf("DeleteRecord: %v", err)
	}
	if found {
		t.Error("sheet kosong, found harus false")
	}
}

func TestListByUser_FiltersExactID(t *testing.T) {
	store := &fakeRowStore{rows: []sheets.Row{
		sheetRow(2, "u1", "30/04/2024", "08:00:00", "17:00:00"),
		sheetRow(3, "u10", "01/05/2024", "08:00:00", ""),
		sheetRow(4, "u1", "01/05/2024", "08:00:00", ""),
	}}
	repo := NewAttendanceRepository(store, "PRESENSI")

	got, err := repo.ListByUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, harus 2 (u10 bukan u1)", len(got))
	}
	for _, r := range got {
		if r.ID != "u1" {
			t.Errorf("record user lain ikut: %+v", r)
		}
	}
}
