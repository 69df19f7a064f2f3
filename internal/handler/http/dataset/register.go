package dataset

import (
	"net/http"

	"nbu-dashboard/internal/catalog"
	dsUC "nbu-dashboard/internal/usecase/dataset"
)

// Register registers the dataset API handlers with the given mux.
func Register(mux *http.ServeMux, cat *catalog.Catalog, svc *dsUC.Service) {
	mux.Handle("GET /api/catalog", CatalogHandler{Catalog: cat})
	mux.Handle("GET /api/dataset", FetchHandler{Svc: svc})
}
