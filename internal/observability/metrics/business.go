package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Business metrics track dataset fetch operations
var (
	// DatasetFetchTotal counts dataset fetches by category and result
	DatasetFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_fetch_total",
			Help: "Total number of dataset fetch attempts",
		},
		[]string{"category", "result"}, // result: success, failure
	)

	// DatasetFetchErrors counts fetch failures by category and failure kind
	DatasetFetchErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_fetch_errors_total",
			Help: "Total number of dataset fetch failures",
		},
		[]string{"category", "kind"}, // kind: network, http_status, parse, shape, invalid_url
	)

	// DatasetFetchDuration measures end-to-end fetch duration per category
	DatasetFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dataset_fetch_duration_seconds",
			Help:    "Time taken to fetch and normalize a dataset",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
		},
		[]string{"category"},
	)

	// DatasetRecords measures the number of records per successful fetch
	DatasetRecords = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dataset_records",
			Help:    "Number of records in a successfully fetched dataset",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		},
	)
)

// RecordDatasetFetch records one fetch attempt. Result should be
// "success" or "failure"; record counts are observed only for successes.
func RecordDatasetFetch(category, result string, duration time.Duration, records int) {
	DatasetFetchTotal.WithLabelValues(category, result).Inc()
	DatasetFetchDuration.WithLabelValues(category).Observe(duration.Seconds())
	if result == "success" {
		DatasetRecords.Observe(float64(records))
	}
}

// RecordDatasetFetchError records a classified fetch failure.
func RecordDatasetFetchError(category, kind string) {
	DatasetFetchErrors.WithLabelValues(category, kind).Inc()
}
