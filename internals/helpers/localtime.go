// helpers/localtime.go — jam/tanggal/hari mengikuti format sheet (id-ID).
package helper

import (
	"log"
	"time"

	"absensi_backend/internals/constants"
)

// LoadAppLocation memuat timezone aplikasi (default Asia/Jakarta).
// Fallback ke UTC kalau nama zona tidak dikenali.
func LoadAppLocation(name string) *time.Location {
	if name == "" {
		name = "Asia/Jakarta"
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("⚠️ Timezone %q tidak dikenal, pakai UTC: %v", name, err)
		return time.UTC
	}
	return loc
}

// DateKey memformat tanggal sebagai DD/MM/YYYY — partition key harian.
// Perbandingan "hari ini" selalu exact string equality pada key ini.
func DateKey(t time.Time) string {
	return t.Format(constants.DateKeyLayout)
}

// JamString memformat jam sebagai HH:MM:SS.
func JamString(t time.Time) string {
	return t.Format(constants.JamLayout)
}

// HariName mengembalikan nama hari bahasa Indonesia.
func HariName(t time.Time) string {
	return constants.HariIndonesia[int(t.Weekday())]
}
