package constants

// Nilai baku yang disimpan di sheet PRESENSI.
const (
	StatusHadir     = "Hadir"
	PekerjaanKosong = "-"

	// Placeholder saat reverse geocoding gagal (cosmetic, bukan blocking).
	AlamatTidakDiketahui = "Lokasi tidak diketahui"
)

// Format tanggal/jam mengikuti locale id-ID yang dipakai sheet.
const (
	DateKeyLayout = "02/01/2006" // DD/MM/YYYY — partition key harian
	JamLayout     = "15:04:05"
)

// Batas ukuran string dokumentasi (kontrak dengan Google Sheets).
// Satu cell maksimal 50000 karakter; target 45000 sebagai safety margin.
// Jangan diubah diam-diam — hanya via IMAGE_TARGET_LIMIT di env.
const (
	SheetCellLimit     = 50000
	ImageTargetDefault = 45000
)

// Nama sheet default (bisa dioverride via env SHEET_LOGIN / SHEET_PRESENSI).
const (
	SheetLoginDefault    = "LOGIN"
	SheetPresensiDefault = "PRESENSI"
)

// Nama hari bahasa Indonesia, indeks sesuai time.Weekday (Minggu = 0).
var HariIndonesia = [7]string{
	"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu",
}
