// internals/databases/sheets/client.go
//
// Klien Google Sheets v4 (REST) — backing row store aplikasi absensi.
// Semua operasi memuat seluruh isi sheet lalu difilter di sisi klien;
// itu kontraknya (exact-match per kolom) sekaligus batas skalabilitasnya.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"sync"
)

var (
	// ErrStoreRead: transport/backing store gagal saat baca.
	ErrStoreRead = errors.New("gagal membaca data dari spreadsheet")
	// ErrStoreWrite: transport/backing store gagal saat tulis.
	ErrStoreWrite = errors.New("gagal menulis data ke spreadsheet")
)

const defaultBaseURL = "https://sheets.googleapis.com"

// Row adalah satu baris sheet: nomor baris (1-based, header = baris 1)
// plus nilai per nama kolom.
type Row struct {
	Index  int
	Values map[string]string
}

func (r Row) Get(col string) string { return r.Values[col] }

type Client struct {
	httpc         *http.Client
	baseURL       string
	spreadsheetID string

	mu       sync.Mutex
	sheetIDs map[string]int64 // title → sheetId, untuk deleteDimension
}

// NewClient dipakai langsung di test (httpc + baseURL bisa diarahkan ke mock).
func NewClient(httpc *http.Client, baseURL, spreadsheetID string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpc:         httpc,
		baseURL:       baseURL,
		spreadsheetID: spreadsheetID,
		sheetIDs:      make(map[string]int64),
	}
}

// NewClientFromEnv membuat klien dengan service-account JWT.
// Kredensial dari GOOGLE_SERVICE_ACCOUNT_JSON, atau file
// SERVICE_ACCOUNT_FILE (default ./service-account.json).
func NewClientFromEnv(ctx context.Context, spreadsheetID string) (*Client, error) {
	raw := os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON")
	if raw == "" {
		path := os.Getenv("SERVICE_ACCOUNT_FILE")
		if path == "" {
			path = "service-account.json"
		}
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("load service account %s: %w", path, err)
		}
		raw = string(b)
	}

	conf, err := jwtConfigFromJSON([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("parse service account: %w", err)
	}
	return NewClient(conf.Client(ctx), defaultBaseURL, spreadsheetID), nil
}

/* =======================================================================
   Operasi row store
======================================================================= */

// GetRows memuat seluruh baris sheet (baris 1 = header).
func (c *Client) GetRows(ctx context.Context, sheet string) ([]Row, error) {
	var out struct {
		Values [][]any `json:"values"`
	}
	path := fmt.Sprintf("/v4/spreadsheets/%s/values/%s?majorDimension=ROWS",
		c.spreadsheetID, url.PathEscape(sheet))
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreRead, err)
	}
	return rowsFromValues(toStrings(out.Values)), nil
}

// AppendRow menambah satu baris baru, kolom diurutkan mengikuti header sheet.
// Tidak ada pengecekan duplikat di level ini — itu urusan pemanggil.
func (c *Client) AppendRow(ctx context.Context, sheet string, record map[string]string) error {
	header, err := c.header(ctx, sheet)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreWrite, err)
	}
	row := make([]any, len(header))
	for i, col := range header {
		row[i] = record[col]
	}
	body := map[string]any{"values": [][]any{row}}
	path := fmt.Sprintf("/v4/spreadsheets/%s/values/%s:append?valueInputOption=RAW&insertDataOption=INSERT_ROWS",
		c.spreadsheetID, url.PathEscape(sheet))
	if err := c.do(ctx, http.MethodPost, path, body, nil); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreWrite, err)
	}
	return nil
}

// UpdateRow menulis ulang field tertentu pada baris rowIndex (1-based).
func (c *Client) UpdateRow(ctx context.Context, sheet string, rowIndex int, fields map[string]string) error {
	header, err := c.header(ctx, sheet)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreWrite, err)
	}
	colOf := make(map[string]int, len(header))
	for i, col := range header {
		colOf[col] = i
	}

	type valueRange struct {
		Range  string  `json:"range"`
		Values [][]any `json:"values"`
	}
	var data []valueRange
	for col, v := range fields {
		i, ok := colOf[col]
		if !ok {
			return fmt.Errorf("%w: kolom %q tidak ada di sheet %s", ErrStoreWrite, col, sheet)
		}
		data = append(data, valueRange{
			Range:  fmt.Sprintf("%s!%s%d", sheet, columnLetter(i), rowIndex),
			Values: [][]any{{v}},
		})
	}
	body := map[string]any{"valueInputOption": "RAW", "data": data}
	path := fmt.Sprintf("/v4/spreadsheets/%s/values:batchUpdate", c.spreadsheetID)
	if err := c.do(ctx, http.MethodPost, path, body, nil); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreWrite, err)
	}
	return nil
}

// DeleteRow menghapus baris rowIndex (1-based) via deleteDimension.
func (c *Client) DeleteRow(ctx context.Context, sheet string, rowIndex int) error {
	sheetID, err := c.sheetID(ctx, sheet)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreWrite, err)
	}
	body := map[string]any{
		"requests": []any{
			map[string]any{
				"deleteDimension": map[string]any{
					"range": map[string]any{
						"sheetId":    sheetID,
						"dimension":  "ROWS",
						"startIndex": rowIndex - 1,
						"endIndex":   rowIndex,
					},
				},
			},
		},
	}
	path := fmt.Sprintf("/v4/spreadsheets/%s:batchUpdate", c.spreadsheetID)
	if err := c.do(ctx, http.MethodPost, path, body, nil); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreWrite, err)
	}
	return nil
}

/* =======================================================================
   Internals
======================================================================= */

func (c *Client) header(ctx context.Context, sheet string) ([]string, error) {
	var out struct {
		Values [][]any `json:"values"`
	}
	path := fmt.Sprintf("/v4/spreadsheets/%s/values/%s?majorDimension=ROWS",
		c.spreadsheetID, url.PathEscape(sheet+"!1:1"))
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	vals := toStrings(out.Values)
	if len(vals) == 0 {
		return nil, fmt.Errorf("sheet %s tidak punya header", sheet)
	}
	return vals[0], nil
}

func (c *Client) sheetID(ctx context.Context, sheet string) (int64, error) {
	c.mu.Lock()
	if id, ok := c.sheetIDs[sheet]; ok {
		c.mu.Unlock()
		return id, nil
	}
	c.mu.Unlock()

	var out struct {
		Sheets []struct {
			Properties struct {
				SheetID int64  `json:"sheetId"`
				Title   string `json:"title"`
			} `json:"properties"`
		} `json:"sheets"`
	}
	path := fmt.Sprintf("/v4/spreadsheets/%s?fields=sheets.properties", c.spreadsheetID)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, s := range out.Sheets {
		c.sheetIDs[s.Properties.Title] = s.Properties.SheetID
	}
	id, ok := c.sheetIDs[sheet]
	if !ok {
		return 0, fmt.Errorf("sheet %q tidak ditemukan di spreadsheet", sheet)
	}
	return id, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("status %d: %s", resp.StatusCode, string(b))
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// rowsFromValues memetakan values mentah (baris 1 = header) ke []Row.
// Index baris data dimulai dari 2 — nomor baris sheet yang sebenarnya.
func rowsFromValues(values [][]string) []Row {
	if len(values) < 2 {
		return nil
	}
	header := values[0]
	rows := make([]Row, 0, len(values)-1)
	for i, raw := range values[1:] {
		m := make(map[string]string, len(header))
		for j, col := range header {
			if j < len(raw) {
				m[col] = raw[j]
			} else {
				m[col] = ""
			}
		}
		rows = append(rows, Row{Index: i + 2, Values: m})
	}
	return rows
}

func toStrings(values [][]any) [][]string {
	out := make([][]string, len(values))
	for i, row := range values {
		out[i] = make([]string, len(row))
		for j, v := range row {
			if v == nil {
				continue
			}
			if s, ok := v.(string); ok {
				out[i][j] = s
			} else {
				out[i][j] = fmt.Sprint(v)
			}
		}
	}
	return out
}

// columnLetter: indeks kolom 0-based → notasi A1 (A, B, …, Z, AA, AB, …).
func columnLetter(i int) string {
	letters := ""
	n := i
	for n >= 0 {
		letters = string(rune('A'+n%26)) + letters
		n = n/26 - 1
	}
	return letters
}
