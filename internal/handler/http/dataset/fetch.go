// Package dataset provides the JSON API handlers: catalog listing and
// dataset fetching.
package dataset

import (
	"errors"
	"net/http"

	"nbu-dashboard/internal/domain/entity"
	"nbu-dashboard/internal/handler/http/respond"
	dsUC "nbu-dashboard/internal/usecase/dataset"
)

// FetchHandler performs one synchronous dataset fetch per request.
//
// Query parameters: either category+dataset (predefined) or url with an
// optional name (custom endpoint). A fetch failure is still a 200
// response; the failure DataSet is the payload, not a transport error.
// Only a malformed query is a 400.
type FetchHandler struct{ Svc *dsUC.Service }

func (h FetchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ep, err := endpointFromQuery(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	ds := h.Svc.Fetch(r.Context(), ep)
	respond.JSON(w, http.StatusOK, toDTO(ds))
}

// endpointFromQuery builds the Endpoint from query parameters, rejecting
// ambiguous or empty selections.
func endpointFromQuery(r *http.Request) (entity.Endpoint, error) {
	q := r.URL.Query()
	ep := entity.Endpoint{
		Category: q.Get("category"),
		Dataset:  q.Get("dataset"),
		URL:      q.Get("url"),
		Name:     q.Get("name"),
	}

	if ep.URL == "" && ep.Category == "" && ep.Dataset == "" {
		return entity.Endpoint{}, errors.New("category and dataset, or url, are required")
	}
	if err := ep.Validate(); err != nil {
		return entity.Endpoint{}, err
	}
	return ep, nil
}
