package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/google/uuid"

	"absensi_backend/internals/configs"
	"absensi_backend/internals/databases/sheets"
	attendanceRepository "absensi_backend/internals/features/attendance/repository"
	attendanceService "absensi_backend/internals/features/attendance/service"
	authService "absensi_backend/internals/features/users/auth/service"
	helper "absensi_backend/internals/helpers"
	imgcompress "absensi_backend/internals/helpers/compress"
	helperGeo "absensi_backend/internals/helpers/geo"
	helperOSS "absensi_backend/internals/helpers/oss"
	middlewares "absensi_backend/internals/middlewares"
	routes "absensi_backend/internals/route"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		BodyLimit:             10 * 1024 * 1024, // foto base64 bisa besar sebelum dikompres
		ProxyHeader:           fiber.HeaderXForwardedFor,
	})

	// ⚙️ middleware dasar + performa
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	// 🔎 Request-ID + timing (observability ringan)
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		err := c.Next()
		dur := time.Since(start)
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), dur)
		return err
	})

	middlewares.SetupMiddlewares(app)

	// 🔌 Kolaborator eksternal
	ctx := context.Background()

	sheetsClient, err := sheets.NewClientFromEnv(ctx, configs.SpreadsheetID)
	if err != nil {
		log.Fatalf("❌ Gagal inisialisasi Sheets client: %v", err)
	}

	ossSvc, err := helperOSS.NewOSSServiceFromEnv("absensi")
	if err != nil {
		log.Fatalf("❌ Gagal inisialisasi OSS: %v", err)
	}

	geoResolver := helperGeo.NewResolverFromEnv()
	compressor := imgcompress.NewCompressor(configs.ImageTargetLimit)
	loc := helper.LoadAppLocation(configs.AppTimezone)

	repo := attendanceRepository.NewAttendanceRepository(sheetsClient, configs.SheetPresensi)
	attSvc := attendanceService.NewAttendanceService(repo, ossSvc, geoResolver, compressor, loc)
	authSvc := authService.NewAuthService(sheetsClient, configs.SheetLogin, configs.JWTSecret)

	// ✅ Routes
	routes.SetupRoutes(app, authSvc, attSvc)

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	// Start server non-blocking
	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(shutdownCtx)
}
