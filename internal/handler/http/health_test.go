package http_test

import (
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nbu-dashboard/internal/catalog"
	hhttp "nbu-dashboard/internal/handler/http"
)

func loadCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("catalog.Load() error: %v", err)
	}
	return cat
}

func TestHealthHandlerHealthy(t *testing.T) {
	h := &hhttp.HealthHandler{
		Catalog:      loadCatalog(t),
		FetchTimeout: 30 * time.Second,
		Version:      "test",
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/health", nil))

	if rec.Code != nethttp.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var resp hhttp.HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "healthy" {
		t.Errorf("status = %q", resp.Status)
	}
	if resp.Version != "test" {
		t.Errorf("version = %q", resp.Version)
	}
	for _, check := range []string{"catalog", "fetcher"} {
		if resp.Checks[check].Status != "healthy" {
			t.Errorf("check %q = %+v", check, resp.Checks[check])
		}
	}
}

func TestHealthHandlerUnhealthy(t *testing.T) {
	tests := []struct {
		name string
		h    *hhttp.HealthHandler
	}{
		{"missing catalog", &hhttp.HealthHandler{FetchTimeout: 30 * time.Second}},
		{"missing fetch timeout", &hhttp.HealthHandler{Catalog: loadCatalog(t)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.h.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/health", nil))

			if rec.Code != nethttp.StatusServiceUnavailable {
				t.Errorf("status = %d, want 503", rec.Code)
			}

			var resp hhttp.HealthResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if resp.Status != "unhealthy" {
				t.Errorf("status = %q", resp.Status)
			}
		})
	}
}

func TestReadyHandler(t *testing.T) {
	ready := &hhttp.ReadyHandler{Catalog: loadCatalog(t)}
	rec := httptest.NewRecorder()
	ready.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/ready", nil))
	if rec.Code != nethttp.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}

	notReady := &hhttp.ReadyHandler{}
	rec = httptest.NewRecorder()
	notReady.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/ready", nil))
	if rec.Code != nethttp.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}

func TestLiveHandler(t *testing.T) {
	h := &hhttp.LiveHandler{}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/live", nil))

	if rec.Code != nethttp.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "alive" {
		t.Errorf("body = %q", rec.Body.String())
	}
}
