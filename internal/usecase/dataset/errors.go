// Package dataset provides the fetch use case: resolving an endpoint,
// fetching its JSON feed, and normalizing the response into a DataSet.
// Every failure mode is recovered here and classified into a failure
// DataSet; nothing propagates as an uncaught error.
package dataset

import "errors"

// Sentinel errors for the fetch boundary. Fetcher implementations wrap
// their failures in exactly one of these so the service can classify
// them into a DataSet failure kind.
var (
	// ErrInvalidURL indicates the endpoint URL was rejected before any
	// network call was attempted.
	ErrInvalidURL = errors.New("invalid endpoint URL")

	// ErrNetwork indicates a transport-level failure: unreachable host,
	// DNS error, or timeout.
	ErrNetwork = errors.New("network error")

	// ErrHTTPStatus indicates the upstream responded with a non-2xx status.
	ErrHTTPStatus = errors.New("unexpected HTTP status")

	// ErrParse indicates the response body was not valid JSON.
	ErrParse = errors.New("response is not valid JSON")

	// ErrShape indicates the JSON was valid but not tabular-convertible.
	ErrShape = errors.New("JSON shape is not tabular")
)
