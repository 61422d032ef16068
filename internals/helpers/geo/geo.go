// internals/helpers/geo/geo.go — reverse geocoding via Nominatim.
package helper

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"absensi_backend/internals/constants"
)

// Resolver menerjemahkan koordinat jadi alamat. Best-effort: kegagalan
// lookup TIDAK menggagalkan absensi — cukup placeholder. Wait dibatasi
// (default 30 detik) supaya tidak menggantung pipeline.
type Resolver struct {
	BaseURL string
	HTTP    *http.Client
}

func NewResolverFromEnv() *Resolver {
	base := strings.TrimSpace(os.Getenv("NOMINATIM_BASE_URL"))
	if base == "" {
		base = "https://nominatim.openstreetmap.org"
	}
	return &Resolver{
		BaseURL: strings.TrimRight(base, "/"),
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

// ResolveAddress mengembalikan display_name dari Nominatim, atau placeholder
// "Lokasi tidak diketahui" kalau lookup gagal/timeout.
func (r *Resolver) ResolveAddress(ctx context.Context, lat, lon float64) string {
	q := url.Values{}
	q.Set("format", "json")
	q.Set("lat", fmt.Sprintf("%f", lat))
	q.Set("lon", fmt.Sprintf("%f", lon))
	q.Set("zoom", "18")
	q.Set("addressdetails", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.BaseURL+"/reverse?"+q.Encode(), nil)
	if err != nil {
		return constants.AlamatTidakDiketahui
	}
	req.Header.Set("User-Agent", "absensi-backend/1.0")

	resp, err := r.HTTP.Do(req)
	if err != nil {
		log.Printf("[GEO] reverse geocoding gagal: %v", err)
		return constants.AlamatTidakDiketahui
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[GEO] reverse geocoding status %d", resp.StatusCode)
		return constants.AlamatTidakDiketahui
	}

	var body struct {
		DisplayName string `json:"display_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		log.Printf("[GEO] decode response gagal: %v", err)
		return constants.AlamatTidakDiketahui
	}
	if strings.TrimSpace(body.DisplayName) == "" {
		return constants.AlamatTidakDiketahui
	}
	return body.DisplayName
}
