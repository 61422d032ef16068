package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"absensi_backend/internals/databases/sheets"
	"absensi_backend/internals/features/users/auth/dto"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials: nip/password tidak cocok dengan sheet LOGIN.
var ErrInvalidCredentials = errors.New("Invalid credentials")

// Kolom sheet LOGIN.
const (
	colID       = "id"
	colNIP      = "nip"
	colNama     = "nama"
	colPassword = "password"
)

// RowReader: akses baca ke sheet LOGIN (dipenuhi *sheets.Client).
type RowReader interface {
	GetRows(ctx context.Context, sheet string) ([]sheets.Row, error)
}

// AuthService memvalidasi kredensial terhadap sheet LOGIN dan menerbitkan
// JWT sebagai session eksplisit — menggantikan session ambient di storage
// browser. Token berlaku TokenTTL; logout = buang token di klien.
type AuthService struct {
	store    RowReader
	sheet    string
	secret   string
	TokenTTL time.Duration
}

func NewAuthService(store RowReader, sheet, secret string) *AuthService {
	return &AuthService{
		store:    store,
		sheet:    sheet,
		secret:   secret,
		TokenTTL: 24 * time.Hour,
	}
}

// Login mencari baris LOGIN dengan nip yang sama lalu mencocokkan password.
// Sheet lama menyimpan password plaintext; baris yang sudah di-bcrypt
// (prefix "$2") juga diterima.
func (s *AuthService) Login(ctx context.Context, nip, password string) (dto.LoginResponse, error) {
	rows, err := s.store.GetRows(ctx, s.sheet)
	if err != nil {
		return dto.LoginResponse{}, err
	}

	for _, row := range rows {
		if row.Get(colNIP) != nip {
			continue
		}
		if !passwordMatches(row.Get(colPassword), password) {
			break
		}
		user := dto.UserDTO{
			ID:   row.Get(colID),
			NIP:  row.Get(colNIP),
			Nama: row.Get(colNama),
		}
		token, err := s.issueToken(user)
		if err != nil {
			return dto.LoginResponse{}, err
		}
		return dto.LoginResponse{Token: token, User: user}, nil
	}
	return dto.LoginResponse{}, ErrInvalidCredentials
}

func passwordMatches(stored, given string) bool {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}

func (s *AuthService) issueToken(user dto.UserDTO) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":       user.ID,
		"nip":       user.NIP,
		"user_name": user.Nama,
		"iat":       now.Unix(),
		"exp":       now.Add(s.TokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secret))
}
