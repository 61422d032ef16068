package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"absensi_backend/internals/constants"
)

var (
	JWTSecret     string
	SpreadsheetID string
	SheetLogin    string
	SheetPresensi string
	AppEnv        string
	AppTimezone   string

	// Target ukuran string dokumentasi (karakter). Default 45000,
	// override via IMAGE_TARGET_LIMIT — jangan diubah di kode.
	ImageTargetLimit int
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	SpreadsheetID = GetEnv("SPREADSHEET_ID")
	SheetLogin = GetEnv("SHEET_LOGIN", constants.SheetLoginDefault)
	SheetPresensi = GetEnv("SHEET_PRESENSI", constants.SheetPresensiDefault)
	AppEnv = GetEnv("APP_ENV", "development")
	AppTimezone = GetEnv("APP_TIMEZONE", "Asia/Jakarta")
	ImageTargetLimit = GetEnvInt("IMAGE_TARGET_LIMIT", constants.ImageTargetDefault)

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}

	if SpreadsheetID == "" {
		log.Println("❌ SPREADSHEET_ID belum diset!")
	} else {
		log.Println("✅ SPREADSHEET_ID berhasil dimuat.")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
		log.Printf("⚠️ %s tidak valid (%q), pakai default %d", key, v, def)
	}
	return def
}

// IsProduction menentukan apakah pesan error store ditampilkan generik.
func IsProduction() bool {
	return AppEnv == "production"
}
