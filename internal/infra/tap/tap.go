// Package tap is the HTTP adapter for the exoplanet archive's Table Access
// Protocol service. One Service handle is built at startup and shared
// across calls: it is read-only endpoint configuration, so concurrent
// submissions are safe without locking.
//
// Endpoints used:
//   - POST /sync         — synchronous query (REQUEST=doQuery, LANG=ADQL, FORMAT=json)
//   - GET  /capabilities — VOSI capabilities document, used as health probe
//
// The adapter performs no retries: a single failed submission surfaces
// immediately as a classified error.
package tap

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lucasferreyra/astroexplorer/internal/domain/catalog"
)

// DefaultBaseURL is the NASA Exoplanet Archive TAP endpoint. Override with
// TAP_BASE_URL.
const DefaultBaseURL = "https://exoplanetarchive.ipac.caltech.edu/TAP"

const (
	headerContentType = "Content-Type"
	mimeForm          = "application/x-www-form-urlencoded"

	// maxResponseBytes caps how much of a response is read; the largest
	// legitimate result (500 full rows) is far below this.
	maxResponseBytes = 32 << 20

	snippetLen = 200
)

var (
	// ErrService marks a failure reported by or reaching the TAP service:
	// transport errors, non-2xx statuses and query rejections.
	ErrService = errors.New("error del servicio TAP")

	// ErrUnknown marks any other failure while submitting or decoding the
	// tabular result.
	ErrUnknown = errors.New("error desconocido")
)

// Service submits ADQL statements to a single TAP endpoint.
type Service struct {
	baseURL    string
	httpClient *http.Client
}

// NewService creates a Service against baseURL with the given round-trip
// timeout.
func NewService(baseURL string, timeout time.Duration) *Service {
	return &Service{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Submit runs one query through /sync and decodes the JSON row set. Errors
// are always classified as ErrService or ErrUnknown.
func (s *Service) Submit(ctx context.Context, query string) ([]catalog.Row, error) {
	form := url.Values{
		"REQUEST": {"doQuery"},
		"LANG":    {"ADQL"},
		"FORMAT":  {"json"},
		"QUERY":   {query},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/sync", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrUnknown, err)
	}
	req.Header.Set(headerContentType, mimeForm)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrService, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrUnknown, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d: %s", ErrService, resp.StatusCode, snippet(body))
	}

	// The archive reports query errors as VOTable documents even when JSON
	// output was requested.
	if trimmed := bytes.TrimSpace(body); len(trimmed) > 0 && trimmed[0] == '<' {
		return nil, fmt.Errorf("%w: consulta rechazada: %s", ErrService, snippet(trimmed))
	}

	var rows []catalog.Row
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("%w: decode result: %v", ErrUnknown, err)
	}
	return rows, nil
}

// Health fetches the VOSI capabilities document; nil means the archive is
// reachable.
func (s *Service) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/capabilities", nil)
	if err != nil {
		return fmt.Errorf("tap healthcheck: build request: %w", err)
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("tap healthcheck: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("tap healthcheck: status %d", resp.StatusCode)
	}
	return nil
}

// snippet flattens body into a short single-line excerpt for error
// messages.
func snippet(body []byte) string {
	s := strings.Join(strings.Fields(string(body)), " ")
	if len(s) > snippetLen {
		return s[:snippetLen] + "..."
	}
	return s
}
