package helper

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"
)

func pngDataURI(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{uint8(x % 256), uint8(y % 256), 120, 255})
		}
	}
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		t.Fatalf("png encode: %v", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func decodeResult(t *testing.T, out string) image.Image {
	t.Helper()
	mime, data, err := ParseDataURI(out)
	if err != nil {
		t.Fatalf("ParseDataURI hasil encode: %v", err)
	}
	if mime != "image/jpeg" {
		t.Fatalf("mime hasil = %q, harus image/jpeg", mime)
	}
	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("jpeg decode hasil: %v", err)
	}
	return img
}

func TestEncode_ResizesLongestDimension(t *testing.T) {
	tests := []struct {
		name           string
		w, h, maxWidth int
		wantW, wantH   int
	}{
		{"landscape", 1000, 600, 400, 400, 240},
		{"portrait", 600, 1000, 400, 240, 400},
		{"sudah muat", 300, 200, 800, 300, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Encode(pngDataURI(t, tt.w, tt.h), tt.maxWidth, 0.8)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			b := decodeResult(t, out).Bounds()
			if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("dimensi = %dx%d, harus %dx%d", b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestEncode_OutputIsJPEGDataURI(t *testing.T) {
	out, err := Encode(pngDataURI(t, 100, 100), 800, 0.8)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.HasPrefix(out, "data:image/jpeg;base64,") {
		t.Errorf("hasil harus data URI jpeg, dapat prefix %q", out[:30])
	}
}

func TestEncode_LowerQualityShrinks(t *testing.T) {
	raw := pngDataURI(t, 640, 480)
	high, err := Encode(raw, 640, 0.9)
	if err != nil {
		t.Fatalf("Encode q=0.9: %v", err)
	}
	low, err := Encode(raw, 640, 0.2)
	if err != nil {
		t.Fatalf("Encode q=0.2: %v", err)
	}
	if len(low) >= len(high) {
		t.Errorf("q=0.2 (%d char) harus lebih kecil dari q=0.9 (%d char)", len(low), len(high))
	}
}

func TestEncode_InvalidPayload(t *testing.T) {
	garbage := base64.StdEncoding.EncodeToString([]byte("bukan gambar sama sekali"))
	tests := []struct {
		name string
		raw  string
	}{
		{"bukan data URI", "hello world"},
		{"tanpa marker base64", "data:image/png,abc"},
		{"base64 rusak", "data:image/png;base64,!!!!"},
		{"byte bukan gambar", "data:image/png;base64," + garbage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Encode(tt.raw, 800, 0.8); !errors.Is(err, ErrDecode) {
				t.Errorf("error = %v, harus ErrDecode", err)
			}
		})
	}
}

func TestParseDataURI_RoundTrip(t *testing.T) {
	payload := []byte{0x01, 0x02, 0xff, 0x00}
	raw := "data:application/octet-stream;base64," + base64.StdEncoding.EncodeToString(payload)
	mime, data, err := ParseDataURI(raw)
	if err != nil {
		t.Fatalf("ParseDataURI: %v", err)
	}
	if mime != "application/octet-stream" {
		t.Errorf("mime = %q", mime)
	}
	if !bytes.Equal(data, payload) {
		t.Errorf("data = %v, harus %v", data, payload)
	}
}
