package catalogsrc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"travel_reco/internal/adapters/observability"
	"travel_reco/internal/domain"
)

// maxDocumentBytes bounds the dataset body read from a remote source.
const maxDocumentBytes = 8 << 20

var (
	ErrUnauthorized = errors.New("catalog source: unauthorized")
	ErrForbidden    = errors.New("catalog source: forbidden")
	ErrTooLarge     = errors.New("catalog source: document too large")
)

// HTTP fetches the dataset document with a single GET per call.
type HTTP struct {
	url string
	hc  *http.Client
	rl  *rate.Limiter
}

var _ domain.CatalogSource = (*HTTP)(nil)

func NewHTTP(rawURL string, timeout time.Duration, rps int) (*HTTP, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("catalog source: invalid URL %q", rawURL)
	}
	if rps <= 0 {
		rps = 5
	}
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &HTTP{
		url: rawURL,
		hc:  &http.Client{Timeout: timeout},
		rl:  rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

func (h *HTTP) Fetch(ctx context.Context) ([]byte, error) {
	if err := h.rl.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "travel-reco/1.0")

	start := time.Now()
	resp, err := h.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("catalog", req.URL.Host, 0, time.Since(start))
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}
	defer resp.Body.Close()
	observability.ObserveExternal("catalog", req.URL.Host, resp.StatusCode, time.Since(start))

	switch resp.StatusCode {
	case http.StatusOK:
		b, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes+1))
		if err != nil {
			return nil, err
		}
		if len(b) > maxDocumentBytes {
			return nil, fmt.Errorf("GET %s: %w (limit %d bytes)", h.url, ErrTooLarge, maxDocumentBytes)
		}
		return b, nil
	case http.StatusNotFound:
		return nil, fmt.Errorf("GET %s: %w", h.url, domain.ErrNotFound)
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case http.StatusForbidden:
		return nil, ErrForbidden
	default:
		// read a small error body for diagnostics
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
}
