package fetcher

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"nbu-dashboard/internal/domain/entity"
	"nbu-dashboard/internal/usecase/dataset"
)

// JSONFetcher implements dataset.TableFetcher over HTTP. It issues one
// synchronous GET per call, decodes the JSON body, and normalizes it
// into tabular records. There is no retry and no cache: a failed fetch
// is reported and re-fetching is a new explicit call.
//
// Thread safety: JSONFetcher is safe for concurrent use.
type JSONFetcher struct {
	client *http.Client
	config Config
}

// NewJSONFetcher creates a JSONFetcher with the given configuration.
// The HTTP client enforces the timeout, validates every redirect
// target, and requires TLS 1.2+.
func NewJSONFetcher(cfg Config) *JSONFetcher {
	f := &JSONFetcher{config: cfg}

	f.client = &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 2,
			IdleConnTimeout:     90 * time.Second,
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= f.config.MaxRedirects {
				return fmt.Errorf("%w: stopped after %d redirects", dataset.ErrNetwork, len(via))
			}
			if err := validateURL(req.URL.String(), f.config.DenyPrivateIPs); err != nil {
				return fmt.Errorf("redirect target rejected: %w", err)
			}
			return nil
		},
	}
	return f
}

// FetchTable fetches the URL and returns the normalized field order and
// records. The URL is validated before any network I/O, so a malformed
// custom endpoint never dials. Errors wrap the dataset sentinel errors.
func (f *JSONFetcher) FetchTable(ctx context.Context, urlStr string) ([]string, []entity.Record, error) {
	if err := validateURL(urlStr, f.config.DenyPrivateIPs); err != nil {
		return nil, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", dataset.ErrInvalidURL, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", f.config.UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		// Redirect callback errors arrive wrapped in *url.Error; keep
		// their classification instead of reporting a network failure.
		if errors.Is(err, dataset.ErrInvalidURL) {
			return nil, nil, fmt.Errorf("%w: %v", dataset.ErrInvalidURL, err)
		}
		return nil, nil, fmt.Errorf("%w: %v", dataset.ErrNetwork, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, nil, fmt.Errorf("%w: %d %s", dataset.ErrHTTPStatus, resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	// Enforce the size limit while reading; one extra byte detects overflow.
	body, err := io.ReadAll(io.LimitReader(resp.Body, f.config.MaxBodySize+1))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: read body: %v", dataset.ErrNetwork, err)
	}
	if int64(len(body)) > f.config.MaxBodySize {
		return nil, nil, fmt.Errorf("%w: response exceeds %d bytes", dataset.ErrNetwork, f.config.MaxBodySize)
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", dataset.ErrParse, err)
	}

	fields, records, err := Normalize(payload)
	if err != nil {
		return nil, nil, err
	}
	return fields, records, nil
}
