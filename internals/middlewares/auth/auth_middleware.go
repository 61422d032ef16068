// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"absensi_backend/internals/configs"
	helper "absensi_backend/internals/helpers"
)

// AuthMiddleware memverifikasi JWT (header Bearer atau cookie access_token)
// dan menyimpan klaim user ke Locals. Tidak ada blacklist server-side —
// session stateless, logout = buang token di klien.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] Gagal parse token:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			log.Println("[ERROR] Exp validation:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		sub, _ := claims["sub"].(string)
		if strings.TrimSpace(sub) == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}
		c.Locals("user_id", sub)
		if nip, ok := claims["nip"].(string); ok {
			c.Locals("nip", nip)
		}
		if nama, ok := claims["user_name"].(string); ok {
			c.Locals("user_name", nama)
		}
		helper.SetRawAccessToken(c, tokenString)

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	if raw := helper.GetRawAccessToken(c); raw != "" {
		return raw, nil
	}
	return "", fmt.Errorf("Unauthorized - Missing token")
}

// validateTokenExpiry memvalidasi exp manual dengan sedikit leeway.
func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expVal, ok := claims["exp"]
	if !ok {
		return fmt.Errorf("token tanpa exp")
	}
	expFloat, ok := expVal.(float64)
	if !ok {
		return fmt.Errorf("exp bukan angka")
	}
	expTime := time.Unix(int64(expFloat), 0)
	if time.Now().After(expTime.Add(leeway)) {
		return fmt.Errorf("token expired pada %s", expTime)
	}
	return nil
}
