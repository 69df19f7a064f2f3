package http

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"nbu-dashboard/internal/catalog"
)

// HealthResponse represents the JSON response for health check endpoints.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy" or "unhealthy"
	Timestamp string                 `json:"timestamp"` // ISO 8601 format
	Checks    map[string]CheckStatus `json:"checks"`    // Status of each check item
	Version   string                 `json:"version"`   // Application version
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string         `json:"status"`            // "healthy" or "unhealthy"
	Message string         `json:"message,omitempty"` // Optional status message
	Details map[string]any `json:"details,omitempty"` // Optional additional details
}

// HealthHandler handles health check endpoint requests. The dashboard
// holds no connections or state, so health reduces to the catalog being
// loaded and the fetch timeout being configured.
type HealthHandler struct {
	Catalog      *catalog.Catalog
	FetchTimeout time.Duration
	Version      string
}

// ServeHTTP reports the application health status.
// Returns 200 OK if healthy, or 503 Service Unavailable if any check fails.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]CheckStatus)
	allHealthy := true

	checks["catalog"] = h.checkCatalog()
	if checks["catalog"].Status == "unhealthy" {
		allHealthy = false
	}

	checks["fetcher"] = h.checkFetcher()
	if checks["fetcher"].Status == "unhealthy" {
		allHealthy = false
	}

	status := "healthy"
	statusCode := http.StatusOK
	if !allHealthy {
		status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	response := HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("health: failed to encode response: %v", err)
	}
}

// checkCatalog verifies the predefined feed catalog is loaded.
func (h *HealthHandler) checkCatalog() CheckStatus {
	if h.Catalog == nil {
		return CheckStatus{
			Status:  "unhealthy",
			Message: "not configured",
		}
	}
	return CheckStatus{
		Status: "healthy",
		Details: map[string]any{
			"categories": len(h.Catalog.Categories()),
			"datasets":   h.Catalog.DatasetCount(),
		},
	}
}

// checkFetcher verifies the fetch configuration is sane.
func (h *HealthHandler) checkFetcher() CheckStatus {
	if h.FetchTimeout <= 0 {
		return CheckStatus{
			Status:  "unhealthy",
			Message: "fetch timeout not configured",
		}
	}
	return CheckStatus{
		Status: "healthy",
		Details: map[string]any{
			"timeout_ms": h.FetchTimeout.Milliseconds(),
		},
	}
}

// ReadyHandler handles readiness probe requests. The server is ready as
// soon as the catalog is loaded; there are no external connections to
// establish.
type ReadyHandler struct {
	Catalog *catalog.Catalog
}

// ServeHTTP returns 200 OK if ready, or 503 Service Unavailable otherwise.
func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.Catalog == nil || len(h.Catalog.Categories()) == 0 {
		http.Error(w, "catalog not loaded", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ready")); err != nil {
		log.Printf("ready: failed to write response: %v", err)
	}
}

// LiveHandler handles liveness probe requests.
// It performs a lightweight check to verify the application is responsive.
type LiveHandler struct{}

// ServeHTTP performs a simple liveness check and always returns 200 OK
// if the application is running and able to respond.
func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("alive")); err != nil {
		log.Printf("alive: failed to write response: %v", err)
	}
}
