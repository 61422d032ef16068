// internals/helpers/compress/compress.go
package helper

// EncodeFunc re-encode gambar pada (maxWidth, quality) tertentu.
type EncodeFunc func(raw string, maxWidth int, quality float64) (string, error)

// Compressor menekan string dokumentasi sampai (best-effort) <= TargetLimit
// karakter, lewat jadwal (maxWidth, quality) menurun yang fixed.
//
// Jadwal: mulai (800, 0.8), tiap iterasi quality -0.1 dan maxWidth -160
// (mentok di 320), selalu re-encode dari gambar ASLI (bukan hasil iterasi
// sebelumnya — menghindari compounding artifacts). Loop berhenti saat muat
// atau quality <= 0.2, lalu dua fallback fixed: (320, 0.4) dan (240, 0.3).
// Total maksimal 8 kali encode. Hasil terakhir tetap dikembalikan meskipun
// masih di atas target — fungsi ini tidak pernah gagal karena ukuran.
type Compressor struct {
	TargetLimit int
	Encode      EncodeFunc
}

func NewCompressor(targetLimit int) *Compressor {
	return &Compressor{
		TargetLimit: targetLimit,
		Encode:      Encode,
	}
}

// FitLimit mengembalikan payload apa adanya kalau sudah muat (identity,
// byte-identical, tanpa re-encode). Error hanya dari codec (ErrDecode dsb.),
// bukan dari ukuran.
func (cp *Compressor) FitLimit(raw string) (string, error) {
	if len(raw) <= cp.TargetLimit {
		return raw, nil
	}

	current := raw
	// quality dalam persen supaya jadwalnya eksak (tanpa drift float).
	quality := 80
	maxWidth := 800

	for quality > 20 && len(current) > cp.TargetLimit {
		out, err := cp.Encode(raw, maxWidth, float64(quality)/100)
		if err != nil {
			return "", err
		}
		current = out
		quality -= 10
		maxWidth -= 160
		if maxWidth < 320 {
			maxWidth = 320
		}
	}

	// Masih kegedean → perkecil lebar lebih agresif.
	if len(current) > cp.TargetLimit {
		out, err := cp.Encode(raw, 320, 0.4)
		if err != nil {
			return "", err
		}
		current = out
	}

	// Fallback terakhir: kompresi paling agresif.
	if len(current) > cp.TargetLimit {
		out, err := cp.Encode(raw, 240, 0.3)
		if err != nil {
			return "", err
		}
		current = out
	}

	return current, nil
}
