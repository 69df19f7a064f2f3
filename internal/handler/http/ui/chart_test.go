package ui_test

import (
	"strings"
	"testing"

	"nbu-dashboard/internal/domain/entity"
	"nbu-dashboard/internal/handler/http/ui"
)

func TestBuildChartLine(t *testing.T) {
	ds := entity.NewDataSet("test", "https://example.com",
		[]string{"exchangedate", "rate"},
		[]entity.Record{
			{"exchangedate": "21.08.2026", "rate": 41.0},
			{"exchangedate": "23.08.2026", "rate": 43.0},
			{"exchangedate": "22.08.2026", "rate": 42.0},
		})

	chart := ui.BuildChart(ds, "exchangedate", "rate")
	if chart == nil {
		t.Fatal("BuildChart() = nil")
	}
	if chart.Kind != "line" {
		t.Errorf("Kind = %q, want line", chart.Kind)
	}
	if chart.Metric != "rate" {
		t.Errorf("Metric = %q", chart.Metric)
	}

	svg := string(chart.SVG)
	if !strings.Contains(svg, "<polyline") {
		t.Error("line chart has no polyline")
	}
	// Points are sorted by date, so the axis labels span the date range.
	if !strings.Contains(svg, "2026-08-21") || !strings.Contains(svg, "2026-08-23") {
		t.Error("date axis labels missing")
	}
}

func TestBuildChartBarWithoutDateField(t *testing.T) {
	ds := entity.NewDataSet("test", "https://example.com",
		[]string{"amount"},
		[]entity.Record{
			{"amount": 100.0},
			{"amount": 250.0},
			{"amount": 175.0},
		})

	chart := ui.BuildChart(ds, "", "amount")
	if chart == nil {
		t.Fatal("BuildChart() = nil")
	}
	if chart.Kind != "bar" {
		t.Errorf("Kind = %q, want bar", chart.Kind)
	}
	// Three values spread over three bins, one bar each.
	if got := strings.Count(string(chart.SVG), "<rect"); got != 3 {
		t.Errorf("got %d bars, want 3", got)
	}
	// Range labels sit on the x axis.
	svg := string(chart.SVG)
	if !strings.Contains(svg, ">100<") || !strings.Contains(svg, ">250<") {
		t.Error("value range labels missing from the x axis")
	}
}

// A single dated point cannot make a line; the chart falls back to bars.
func TestBuildChartSinglePointFallsBackToBar(t *testing.T) {
	ds := entity.NewDataSet("test", "https://example.com",
		[]string{"date", "v"},
		[]entity.Record{{"date": "23.08.2026", "v": 1.0}})

	chart := ui.BuildChart(ds, "date", "v")
	if chart == nil {
		t.Fatal("BuildChart() = nil")
	}
	if chart.Kind != "bar" {
		t.Errorf("Kind = %q, want bar", chart.Kind)
	}
}

// The histogram bins values rather than drawing one bar per record:
// 100 evenly spread values collapse into ten equal-width bins.
func TestBuildChartHistogramBins(t *testing.T) {
	records := make([]entity.Record, 100)
	for i := range records {
		records[i] = entity.Record{"v": float64(i)}
	}
	ds := entity.NewDataSet("test", "https://example.com", []string{"v"}, records)

	chart := ui.BuildChart(ds, "", "v")
	if chart == nil {
		t.Fatal("BuildChart() = nil")
	}
	if got := strings.Count(string(chart.SVG), "<rect"); got != 10 {
		t.Errorf("got %d bars, want 10 bins", got)
	}
}

// All-equal values fill a single bin.
func TestBuildChartHistogramConstantValues(t *testing.T) {
	ds := entity.NewDataSet("test", "https://example.com",
		[]string{"v"},
		[]entity.Record{{"v": 5.0}, {"v": 5.0}, {"v": 5.0}})

	chart := ui.BuildChart(ds, "", "v")
	if chart == nil {
		t.Fatal("BuildChart() = nil")
	}
	if got := strings.Count(string(chart.SVG), "<rect"); got != 1 {
		t.Errorf("got %d bars, want 1", got)
	}
}

func TestBuildChartNil(t *testing.T) {
	success := entity.NewDataSet("test", "https://example.com",
		[]string{"name"}, []entity.Record{{"name": "x"}})
	failed := entity.NewFailedDataSet("test", "https://example.com", entity.FailureNetwork, "boom")

	tests := []struct {
		name   string
		ds     *entity.DataSet
		metric string
	}{
		{"no metric", success, ""},
		{"failed dataset", failed, "v"},
		{"metric with no numeric values", success, "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if chart := ui.BuildChart(tt.ds, "", tt.metric); chart != nil {
				t.Errorf("BuildChart() = %+v, want nil", chart)
			}
		})
	}
}

func TestBuildChartEscapesLabels(t *testing.T) {
	ds := entity.NewDataSet("test", "https://example.com",
		[]string{"v"},
		[]entity.Record{{"v": 1.0}, {"v": 2.0}})

	chart := ui.BuildChart(ds, "", "v")
	if chart == nil {
		t.Fatal("BuildChart() = nil")
	}
	if strings.Contains(string(chart.SVG), "<script") {
		t.Error("unexpected script element in SVG")
	}
}
