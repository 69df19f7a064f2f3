package dataset

import (
	"context"
	"errors"
	"time"

	"nbu-dashboard/internal/catalog"
	"nbu-dashboard/internal/domain/entity"
	"nbu-dashboard/internal/observability/metrics"
	"nbu-dashboard/internal/observability/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// TableFetcher fetches a JSON feed and normalizes it into tabular form.
// Implementations wrap failures in the package sentinel errors
// (ErrInvalidURL, ErrNetwork, ErrHTTPStatus, ErrParse, ErrShape).
type TableFetcher interface {
	FetchTable(ctx context.Context, url string) (fields []string, records []entity.Record, err error)
}

// Service provides dataset fetch use cases. It resolves predefined
// endpoints through the catalog and delegates the network work to the
// fetcher. It is safe for concurrent use.
type Service struct {
	Catalog *catalog.Catalog
	Fetcher TableFetcher
}

// Fetch resolves the endpoint and performs one synchronous fetch.
// It never returns a Go error: every failure is classified into a
// failure DataSet so callers render it instead of crashing. Each call
// is an independent fetch; nothing is cached between interactions.
func (s *Service) Fetch(ctx context.Context, ep entity.Endpoint) *entity.DataSet {
	name, url, category, ok := s.resolve(ep)
	if !ok {
		return entity.NewFailedDataSet(ep.DisplayName(), ep.URL,
			entity.FailureInvalidURL, "unknown category or dataset selection")
	}

	if err := ep.Validate(); err != nil {
		return entity.NewFailedDataSet(name, url, entity.FailureInvalidURL, err.Error())
	}
	if ep.IsCustom() {
		if err := entity.ValidateURL(url); err != nil {
			// Rejected before any network call.
			metrics.RecordDatasetFetchError(category, string(entity.FailureInvalidURL))
			return entity.NewFailedDataSet(name, url, entity.FailureInvalidURL, err.Error())
		}
	}

	ctx, span := tracing.GetTracer().Start(ctx, "dataset.fetch")
	span.SetAttributes(
		attribute.String("dataset.name", name),
		attribute.String("dataset.category", category),
	)
	defer span.End()

	start := time.Now()
	fields, records, err := s.Fetcher.FetchTable(ctx, url)
	duration := time.Since(start)

	if err != nil {
		kind := classify(err)
		span.SetStatus(codes.Error, string(kind))
		metrics.RecordDatasetFetch(category, "failure", duration, 0)
		metrics.RecordDatasetFetchError(category, string(kind))
		return entity.NewFailedDataSet(name, url, kind, err.Error())
	}

	metrics.RecordDatasetFetch(category, "success", duration, len(records))
	return entity.NewDataSet(name, url, fields, records)
}

// resolve maps the endpoint to its display name, URL, and metrics
// category label. Custom endpoints resolve without catalog access.
func (s *Service) resolve(ep entity.Endpoint) (name, url, category string, ok bool) {
	if ep.IsCustom() {
		return ep.DisplayName(), ep.URL, "custom", true
	}
	_, ds, err := s.Catalog.Lookup(ep.Category, ep.Dataset)
	if err != nil {
		return "", "", ep.Category, false
	}
	return ds.Name, ds.URL, ep.Category, true
}

// classify maps a fetcher error to the DataSet failure taxonomy.
// Unrecognized errors are reported as network failures, the broadest
// recoverable kind.
func classify(err error) entity.FailureKind {
	switch {
	case errors.Is(err, ErrInvalidURL):
		return entity.FailureInvalidURL
	case errors.Is(err, ErrHTTPStatus):
		return entity.FailureHTTPStatus
	case errors.Is(err, ErrParse):
		return entity.FailureParse
	case errors.Is(err, ErrShape):
		return entity.FailureShape
	default:
		return entity.FailureNetwork
	}
}
