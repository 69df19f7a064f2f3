// Package entity defines the core domain model of the dashboard:
// endpoints that identify open-data feeds and the tabular DataSets
// produced by fetching them.
package entity

import (
	"time"
)

// Record is one row of a DataSet, a mapping from field name to value.
// Values are limited to the decoded JSON scalar types: string, float64,
// bool, and nil.
type Record map[string]any

// DataSet is the normalized result of a single fetch.
// It is either fully populated (Success is true, Records and Fields set)
// or carries a failure description (Success is false, FailureKind and
// ErrorMessage set, Records empty), never a partial state.
//
// A DataSet lives only in the response of the interaction that produced
// it; nothing is persisted or cached across requests.
type DataSet struct {
	// Name is the human-readable dataset name (catalog name or the
	// user-provided label for a custom endpoint).
	Name string

	// SourceURL is the URL the data was fetched from.
	SourceURL string

	// FetchedAt is the UTC timestamp of the fetch attempt.
	FetchedAt time.Time

	// Fields holds the column names in stable render order.
	Fields []string

	// Records holds the normalized rows. Empty on failure.
	Records []Record

	// Success reports whether fetch and normalization both succeeded.
	Success bool

	// FailureKind classifies the failure. Empty on success.
	FailureKind FailureKind

	// ErrorMessage is a human-readable failure description. Empty on success.
	ErrorMessage string
}

// NewDataSet constructs a populated DataSet for a successful fetch.
func NewDataSet(name, sourceURL string, fields []string, records []Record) *DataSet {
	return &DataSet{
		Name:      name,
		SourceURL: sourceURL,
		FetchedAt: time.Now().UTC(),
		Fields:    fields,
		Records:   records,
		Success:   true,
	}
}

// NewFailedDataSet constructs a DataSet in failure state.
func NewFailedDataSet(name, sourceURL string, kind FailureKind, msg string) *DataSet {
	return &DataSet{
		Name:         name,
		SourceURL:    sourceURL,
		FetchedAt:    time.Now().UTC(),
		Success:      false,
		FailureKind:  kind,
		ErrorMessage: msg,
	}
}

// Validate checks the populated-XOR-failed invariant of the DataSet.
func (d *DataSet) Validate() error {
	if d.Success {
		if d.FailureKind != "" || d.ErrorMessage != "" {
			return &ValidationError{Field: "failure_kind", Message: "must be empty on a successful DataSet"}
		}
		return nil
	}
	if d.FailureKind == "" {
		return &ValidationError{Field: "failure_kind", Message: "is required on a failed DataSet"}
	}
	if !d.FailureKind.Valid() {
		return &ValidationError{Field: "failure_kind", Message: "unknown kind " + string(d.FailureKind)}
	}
	if d.ErrorMessage == "" {
		return &ValidationError{Field: "error_message", Message: "is required on a failed DataSet"}
	}
	if len(d.Records) > 0 {
		return &ValidationError{Field: "records", Message: "must be empty on a failed DataSet"}
	}
	return nil
}
