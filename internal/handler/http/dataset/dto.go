package dataset

import (
	"time"

	"github.com/shopspring/decimal"

	"nbu-dashboard/internal/domain/entity"
	dsUC "nbu-dashboard/internal/usecase/dataset"
)

// DTO is the JSON representation of one fetched DataSet, success or
// failure. Failures carry the kind and message with no records.
type DTO struct {
	Name         string          `json:"name"`
	SourceURL    string          `json:"source_url"`
	FetchedAt    time.Time       `json:"fetched_at"`
	Success      bool            `json:"success"`
	FailureKind  string          `json:"failure_kind,omitempty"`
	ErrorMessage string          `json:"error,omitempty"`
	Fields       []string        `json:"fields,omitempty"`
	Records      []entity.Record `json:"records,omitempty"`
	Summary      *SummaryDTO     `json:"summary,omitempty"`
}

// SummaryDTO carries the descriptive statistics of a successful fetch.
type SummaryDTO struct {
	RecordCount  int             `json:"record_count"`
	FieldCount   int             `json:"field_count"`
	DateField    string          `json:"date_field,omitempty"`
	NumericStats []FieldStatsDTO `json:"numeric_stats,omitempty"`
}

// FieldStatsDTO holds statistics for one numeric field. Decimal values
// serialize as JSON strings to preserve precision.
type FieldStatsDTO struct {
	Field string          `json:"field"`
	Count int             `json:"count"`
	Min   decimal.Decimal `json:"min"`
	Max   decimal.Decimal `json:"max"`
	Mean  decimal.Decimal `json:"mean"`
	Sum   decimal.Decimal `json:"sum"`
}

// toDTO converts a DataSet and its summary into the wire representation.
func toDTO(ds *entity.DataSet) DTO {
	out := DTO{
		Name:         ds.Name,
		SourceURL:    ds.SourceURL,
		FetchedAt:    ds.FetchedAt,
		Success:      ds.Success,
		FailureKind:  string(ds.FailureKind),
		ErrorMessage: ds.ErrorMessage,
		Fields:       ds.Fields,
		Records:      ds.Records,
	}
	if !ds.Success {
		return out
	}

	sum := dsUC.Summarize(ds)
	sumDTO := &SummaryDTO{
		RecordCount: sum.RecordCount,
		FieldCount:  sum.FieldCount,
		DateField:   sum.DateField,
	}
	for _, st := range sum.NumericStats {
		sumDTO.NumericStats = append(sumDTO.NumericStats, FieldStatsDTO{
			Field: st.Field,
			Count: st.Count,
			Min:   st.Min,
			Max:   st.Max,
			Mean:  st.Mean,
			Sum:   st.Sum,
		})
	}
	out.Summary = sumDTO
	return out
}

// CategoryDTO is the JSON representation of one catalog category.
type CategoryDTO struct {
	Key      string       `json:"key"`
	Name     string       `json:"name"`
	Datasets []DatasetDTO `json:"datasets"`
}

// DatasetDTO is the JSON representation of one predefined dataset.
type DatasetDTO struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	URL  string `json:"url"`
}
