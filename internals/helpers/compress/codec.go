// internals/helpers/compress/codec.go
package helper

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"math"
	"net/http"
	"strings"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

// ErrDecode: payload tidak bisa dibaca sebagai gambar. Fatal untuk attempt
// tersebut — pipeline check-in harus abort, bukan menulis record parsial.
var ErrDecode = errors.New("gambar tidak valid atau format tidak didukung")

const dataURIMarker = ";base64,"

// ParseDataURI membongkar data URI ("data:image/jpeg;base64,....")
// menjadi MIME type + byte mentah.
func ParseDataURI(s string) (mime string, data []byte, err error) {
	if !strings.HasPrefix(s, "data:") {
		return "", nil, fmt.Errorf("%w: bukan data URI", ErrDecode)
	}
	idx := strings.Index(s, dataURIMarker)
	if idx < 0 {
		return "", nil, fmt.Errorf("%w: bukan base64 data URI", ErrDecode)
	}
	mime = s[len("data:"):idx]
	raw, decErr := base64.StdEncoding.DecodeString(s[idx+len(dataURIMarker):])
	if decErr != nil {
		return "", nil, fmt.Errorf("%w: base64 rusak", ErrDecode)
	}
	if len(raw) == 0 {
		return "", nil, fmt.Errorf("%w: payload kosong", ErrDecode)
	}
	return mime, raw, nil
}

// decodeImage membaca jpeg/png/webp dari []byte dengan sniff MIME.
func decodeImage(all []byte) (image.Image, error) {
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	var (
		img image.Image
		err error
	)
	switch {
	case strings.Contains(ct, "jpeg"):
		img, err = jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		img, err = png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		img, err = webp.Decode(bytes.NewReader(all))
	default:
		return nil, fmt.Errorf("%w: %s", ErrDecode, ct)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return img, nil
}

// downscaleIfNeeded resize keep-aspect sehingga dimensi terpanjang <= maxWidth.
// Kalau sudah muat, gambar dikembalikan apa adanya. Pakai CatmullRom.
func downscaleIfNeeded(src image.Image, maxWidth int) image.Image {
	if maxWidth <= 0 {
		return src
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	longest := w
	if h > longest {
		longest = h
	}
	if longest <= maxWidth {
		return src
	}
	scale := float64(maxWidth) / float64(longest)
	nw := int(math.Round(float64(w) * scale))
	nh := int(math.Round(float64(h) * scale))
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

// Encode: decode raw data URI → resize (dimensi terpanjang <= maxWidth) →
// re-encode JPEG lossy pada quality 0..1 → data URI baru. Panjang string
// hasil adalah metrik ukuran yang dipakai kompresi di atasnya.
func Encode(raw string, maxWidth int, quality float64) (string, error) {
	_, data, err := ParseDataURI(raw)
	if err != nil {
		return "", err
	}
	img, err := decodeImage(data)
	if err != nil {
		return "", err
	}
	img = downscaleIfNeeded(img, maxWidth)

	q := int(math.Round(quality * 100))
	if q < 1 {
		q = 1
	}
	if q > 100 {
		q = 100
	}
	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: q}); err != nil {
		return "", fmt.Errorf("encode jpeg: %w", err)
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
