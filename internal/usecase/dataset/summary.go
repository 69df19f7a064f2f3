package dataset

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"nbu-dashboard/internal/domain/entity"
)

// FieldStats holds descriptive statistics for one numeric field,
// computed over the records that carry a numeric value for it.
type FieldStats struct {
	Field string
	Count int
	Min   decimal.Decimal
	Max   decimal.Decimal
	Mean  decimal.Decimal
	Sum   decimal.Decimal
}

// Summary describes a successful DataSet: its dimensions, the detected
// date-like field (if any), and per-field numeric statistics.
type Summary struct {
	RecordCount  int
	FieldCount   int
	DateField    string
	NumericStats []FieldStats
}

// dateLayouts are the accepted date/time value formats. The NBU
// statdirectory publishes dates as "23.08.2026"; ISO layouts cover
// custom endpoints.
var dateLayouts = []string{
	"02.01.2006",
	"2006-01-02",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
}

// Summarize computes the Summary of a DataSet. Failed or empty DataSets
// yield a zero-valued Summary.
func Summarize(ds *entity.DataSet) Summary {
	sum := Summary{
		RecordCount: len(ds.Records),
		FieldCount:  len(ds.Fields),
	}
	if !ds.Success || len(ds.Records) == 0 {
		return sum
	}

	sum.DateField = DetectDateField(ds)
	for _, field := range ds.Fields {
		if stats, ok := numericStats(ds.Records, field); ok {
			sum.NumericStats = append(sum.NumericStats, stats)
		}
	}
	return sum
}

// DetectDateField returns the first field whose name looks date-like
// ("date" substring or "dt" suffix, case-insensitive) and whose first
// non-empty value parses with one of the accepted layouts. Returns ""
// when no field qualifies.
func DetectDateField(ds *entity.DataSet) string {
	for _, field := range ds.Fields {
		lower := strings.ToLower(field)
		if !strings.Contains(lower, "date") && !strings.HasSuffix(lower, "dt") {
			continue
		}
		if _, ok := firstParsedDate(ds.Records, field); ok {
			return field
		}
	}
	return ""
}

// ParseDate parses a record value as a date using the accepted layouts.
func ParseDate(v any) (time.Time, bool) {
	s, ok := v.(string)
	if !ok || s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// NumericValue converts a record value to a decimal if it is numeric:
// a JSON number, or a string that parses as a decimal.
func NumericValue(v any) (decimal.Decimal, bool) {
	switch val := v.(type) {
	case float64:
		return decimal.NewFromFloat(val), true
	case string:
		trimmed := strings.TrimSpace(val)
		if trimmed == "" {
			return decimal.Decimal{}, false
		}
		d, err := decimal.NewFromString(trimmed)
		if err != nil {
			return decimal.Decimal{}, false
		}
		return d, true
	default:
		return decimal.Decimal{}, false
	}
}

// NumericFields returns the fields that hold a JSON number in at least
// one record, in the DataSet's field order. String-encoded numbers do
// not qualify: a field is charted only when the feed publishes it as a
// number, mirroring how a typed table would infer the column.
func NumericFields(ds *entity.DataSet) []string {
	var out []string
	for _, field := range ds.Fields {
		for _, rec := range ds.Records {
			if _, isNum := rec[field].(float64); isNum {
				out = append(out, field)
				break
			}
		}
	}
	return out
}

func firstParsedDate(records []entity.Record, field string) (time.Time, bool) {
	for _, rec := range records {
		if t, ok := ParseDate(rec[field]); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

// numericStats aggregates a field over the records where it is a JSON
// number. Sums and means are computed with decimals so long feeds do
// not accumulate float error.
func numericStats(records []entity.Record, field string) (FieldStats, bool) {
	stats := FieldStats{Field: field}
	for _, rec := range records {
		num, isNum := rec[field].(float64)
		if !isNum {
			continue
		}
		d := decimal.NewFromFloat(num)
		if stats.Count == 0 {
			stats.Min, stats.Max = d, d
		} else {
			if d.LessThan(stats.Min) {
				stats.Min = d
			}
			if d.GreaterThan(stats.Max) {
				stats.Max = d
			}
		}
		stats.Sum = stats.Sum.Add(d)
		stats.Count++
	}
	if stats.Count == 0 {
		return FieldStats{}, false
	}
	stats.Mean = stats.Sum.Div(decimal.NewFromInt(int64(stats.Count))).Round(6)
	return stats, true
}
