package controller

import (
	"errors"
	"log"

	"absensi_backend/internals/configs"
	"absensi_backend/internals/features/users/auth/dto"
	"absensi_backend/internals/features/users/auth/service"
	helper "absensi_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validateAuth = validator.New()

type AuthController struct {
	Service *service.AuthService
}

func NewAuthController(svc *service.AuthService) *AuthController {
	return &AuthController{Service: svc}
}

// =======================
// 🔐 Login
// =======================
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	resp, err := ctrl.Service.Login(c.UserContext(), body.NIP, body.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		log.Printf("[AUTH] login error: %v", err)
		if configs.IsProduction() {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Login berhasil", resp)
}

// =======================
// 👤 Me — echo klaim token
// =======================
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID := helper.GetUserID(c)
	if userID == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User ID not found in token")
	}
	nip, _ := c.Locals("nip").(string)
	nama, _ := c.Locals("user_name").(string)
	return helper.JsonOK(c, "ok", dto.UserDTO{ID: userID, NIP: nip, Nama: nama})
}
