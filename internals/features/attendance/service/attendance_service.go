package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"absensi_backend/internals/constants"
	"absensi_backend/internals/features/attendance/model"
	helper "absensi_backend/internals/helpers"
	imgcompress "absensi_backend/internals/helpers/compress"
)

var (
	// ErrBusy: masih ada aksi absensi in-flight untuk user yang sama.
	ErrBusy = errors.New("masih ada proses absensi yang berjalan, coba lagi")
	// ErrMissingDokumentasi: absen masuk wajib menyertakan foto.
	ErrMissingDokumentasi = errors.New("silakan ambil foto dokumentasi terlebih dahulu")
	// ErrAlreadyCheckedIn: sudah ada record open untuk hari ini.
	ErrAlreadyCheckedIn = errors.New("anda sudah absen masuk hari ini")
	// ErrLocation: koordinat tidak tersedia — record tidak boleh ditulis.
	ErrLocation = errors.New("lokasi tidak tersedia, aktifkan GPS lalu coba lagi")
)

// Repository: operasi record store yang dibutuhkan orchestrator.
type Repository interface {
	AppendCheckIn(ctx context.Context, rec model.AttendanceRecord) error
	UpdateCheckOut(ctx context.Context, userID, tanggal, jamPulang string) (bool, error)
	DeleteRecord(ctx context.Context, userID, tanggal string) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]model.AttendanceRecord, error)
}

// BlobStore: arsip foto (dipenuhi *oss helper.OSSService).
type BlobStore interface {
	UploadPhoto(ctx context.Context, data []byte, fileName, contentType string) (string, error)
}

// AddressResolver: reverse geocoding best-effort.
type AddressResolver interface {
	ResolveAddress(ctx context.Context, lat, lon float64) string
}

// AttendanceService menjalankan pipeline per aksi secara sekuensial:
// check-in = foto → kompres → arsip → lokasi → tulis record.
// Satu user maksimal satu aksi in-flight; aksi kedua ditolak ErrBusy.
type AttendanceService struct {
	repo       Repository
	blob       BlobStore
	geo        AddressResolver
	compressor *imgcompress.Compressor

	loc *time.Location
	now func() time.Time

	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewAttendanceService(repo Repository, blob BlobStore, geo AddressResolver, compressor *imgcompress.Compressor, loc *time.Location) *AttendanceService {
	if loc == nil {
		loc = time.UTC
	}
	return &AttendanceService{
		repo:       repo,
		blob:       blob,
		geo:        geo,
		compressor: compressor,
		loc:        loc,
		now:        time.Now,
		inflight:   make(map[string]struct{}),
	}
}

type CheckInInput struct {
	UserID      string
	Nama        string
	Pekerjaan   string
	Dokumentasi string // data URI foto dari kamera
	Latitude    *float64
	Longitude   *float64
}

// CheckIn menjalankan pipeline absen masuk. Kegagalan step manapun
// menghentikan sisa pipeline — tidak ada record parsial.
func (s *AttendanceService) CheckIn(ctx context.Context, in CheckInInput) (model.AttendanceRecord, error) {
	if !s.acquire(in.UserID) {
		return model.AttendanceRecord{}, ErrBusy
	}
	defer s.release(in.UserID)

	if in.Dokumentasi == "" {
		return model.AttendanceRecord{}, ErrMissingDokumentasi
	}
	if in.Latitude == nil || in.Longitude == nil {
		return model.AttendanceRecord{}, ErrLocation
	}

	nowLocal := s.now().In(s.loc)
	todayKey := helper.DateKey(nowLocal)

	// Guard idempoten: tolak check-in kedua selama masih ada record open.
	snapshot, err := s.repo.ListByUser(ctx, in.UserID)
	if err != nil {
		return model.AttendanceRecord{}, err
	}
	if DeriveStatus(snapshot, in.UserID, todayKey).CanCheckOutToday {
		return model.AttendanceRecord{}, ErrAlreadyCheckedIn
	}

	// Kompres sampai muat batas cell sheet. Error codec = abort total.
	compressed, err := s.compressor.FitLimit(in.Dokumentasi)
	if err != nil {
		return model.AttendanceRecord{}, err
	}

	// Arsipkan foto ke blob store. Gagal upload = tidak ada record.
	mime, payload, err := imgcompress.ParseDataURI(compressed)
	if err != nil {
		return model.AttendanceRecord{}, err
	}
	fileName := fmt.Sprintf("absensi-%s-%s.jpg", in.UserID, nowLocal.Format("20060102-150405"))
	if _, err := s.blob.UploadPhoto(ctx, payload, fileName, mime); err != nil {
		return model.AttendanceRecord{}, err
	}

	// Alamat wajib ada sebagai field record; lookup-nya sendiri best-effort
	// (placeholder saat gagal), koordinatnya yang wajib.
	address := s.geo.ResolveAddress(ctx, *in.Latitude, *in.Longitude)

	pekerjaan := in.Pekerjaan
	if pekerjaan == "" {
		pekerjaan = constants.PekerjaanKosong
	}

	rec := model.AttendanceRecord{
		ID:          in.UserID,
		Nama:        in.Nama,
		JamMasuk:    helper.JamString(nowLocal),
		JamPulang:   "",
		Hari:        helper.HariName(nowLocal),
		Tanggal:     todayKey,
		Pekerjaan:   pekerjaan,
		Status:      constants.StatusHadir,
		Dokumentasi: compressed,
		Location:    address,
	}
	if err := s.repo.AppendCheckIn(ctx, rec); err != nil {
		return model.AttendanceRecord{}, err
	}
	return rec, nil
}

// CheckOut mengisi jam_pulang pada record open hari ini.
// found=false berarti tidak ada record open — pesan user, bukan failure.
func (s *AttendanceService) CheckOut(ctx context.Context, userID string, lat, lon *float64) (found bool, err error) {
	if !s.acquire(userID) {
		return false, ErrBusy
	}
	defer s.release(userID)

	if lat == nil || lon == nil {
		return false, ErrLocation
	}
	// Lokasi diminta dulu (paritas dengan check-in); hasil alamatnya tidak
	// disimpan di record pulang, hanya memastikan user memang di lokasi.
	_ = s.geo.ResolveAddress(ctx, *lat, *lon)

	nowLocal := s.now().In(s.loc)
	return s.repo.UpdateCheckOut(ctx, userID, helper.DateKey(nowLocal), helper.JamString(nowLocal))
}

// StatusToday menurunkan status harian dari snapshot segar — tidak pernah
// di-cache, supaya tidak ada staleness.
func (s *AttendanceService) StatusToday(ctx context.Context, userID string) (Status, error) {
	records, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return Status{}, err
	}
	todayKey := helper.DateKey(s.now().In(s.loc))
	return DeriveStatus(records, userID, todayKey), nil
}

// History mengembalikan seluruh record user, terbaru dulu.
func (s *AttendanceService) History(ctx context.Context, userID string) ([]model.AttendanceRecord, error) {
	records, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	SortHistoryDesc(records)
	return records, nil
}

// Delete menghapus record (id, tanggal) pertama yang match.
func (s *AttendanceService) Delete(ctx context.Context, userID, tanggal string) (bool, error) {
	return s.repo.DeleteRecord(ctx, userID, tanggal)
}

func (s *AttendanceService) acquire(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inflight[userID]; busy {
		return false
	}
	s.inflight[userID] = struct{}{}
	return true
}

func (s *AttendanceService) release(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, userID)
}
