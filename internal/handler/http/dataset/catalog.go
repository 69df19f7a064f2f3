package dataset

import (
	"net/http"

	"nbu-dashboard/internal/catalog"
	"nbu-dashboard/internal/handler/http/respond"
)

// CatalogHandler serves the predefined feed catalog.
type CatalogHandler struct{ Catalog *catalog.Catalog }

func (h CatalogHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cats := h.Catalog.Categories()
	out := make([]CategoryDTO, 0, len(cats))
	for _, cat := range cats {
		dto := CategoryDTO{Key: cat.Key, Name: cat.Name}
		for _, ds := range cat.Datasets {
			dto.Datasets = append(dto.Datasets, DatasetDTO{
				Key: ds.Key, Name: ds.Name, URL: ds.URL,
			})
		}
		out = append(out, dto)
	}
	respond.JSON(w, http.StatusOK, out)
}
