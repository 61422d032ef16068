package service

import (
	"context"
	"errors"
	"testing"

	"absensi_backend/internals/databases/sheets"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

type fakeLoginSheet struct {
	rows []sheets.Row
	err  error
}

func (f *fakeLoginSheet) GetRows(context.Context, string) ([]sheets.Row, error) {
	return f.rows, f.err
}

func loginRow(id, nip, nama, password string) sheets.Row {
	return sheets.Row{Values: map[string]string{
		"id":       id,
		"nip":      nip,
		"nama":     nama,
		"password": password,
	}}
}

const testSecret = "rahasia-test"

func TestLogin_PlaintextPassword(t *testing.T) {
	store := &fakeLoginSheet{rows: []sheets.Row{
		loginRow("u1", "198001012005011001", "Budi Santoso", "katasandi"),
	}}
	svc := NewAuthService(store, "LOGIN", testSecret)

	resp, err := svc.Login(context.Background(), "198001012005011001", "katasandi")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.User.ID != "u1" || resp.User.Nama != "Budi Santoso" {
		t.Errorf("user = %+v", resp.User)
	}
	if resp.Token == "" {
		t.Fatal("token kosong")
	}

	// Token harus bisa diverifikasi dengan secret yang sama dan membawa sub.
	parsed, err := jwt.Parse(resp.Token, func(tok *jwt.Token) (any, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("method salah")
		}
		return []byte(testSecret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("parse token: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if claims["sub"] != "u1" {
		t.Errorf("sub = %v, harus u1", claims["sub"])
	}
	if claims["nip"] != "198001012005011001" {
		t.Errorf("nip = %v", claims["nip"])
	}
}

func TestLogin_BcryptPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("katasandi"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	store := &fakeLoginSheet{rows: []sheets.Row{
		loginRow("u1", "123", "Budi", string(hash)),
	}}
	svc := NewAuthService(store, "LOGIN", testSecret)

	if _, err := svc.Login(context.Background(), "123", "katasandi"); err != nil {
		t.Fatalf("Login dengan hash bcrypt: %v", err)
	}
	if _, err := svc.Login(context.Background(), "123", "salah"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("password salah: error = %v", err)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	store := &fakeLoginSheet{rows: []sheets.Row{
		loginRow("u1", "123", "Budi", "katasandi"),
	}}
	svc := NewAuthService(store, "LOGIN", testSecret)

	tests := []struct {
		name, nip, password string
	}{
		{"nip tidak terdaftar", "999", "katasandi"},
		{"password salah", "123", "bukan-itu"},
		{"dua-duanya kosong", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Login(context.Background(), tt.nip, tt.password); !errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("error = %v, harus ErrInvalidCredentials", err)
			}
		})
	}
}

func TestLogin_StoreErrorPropagates(t *testing.T) {
	wantErr := errors.New("sheet tidak bisa dibaca")
	svc := NewAuthService(&fakeLoginSheet{err: wantErr}, "LOGIN", testSecret)

	if _, err := svc.Login(context.Background(), "123", "katasandi"); !errors.Is(err, wantErr) {
		t.Fatalf("error = %v, harus dipropagasi apa adanya", err)
	}
}
