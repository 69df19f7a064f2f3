// Package ui serves the server-rendered dashboard page: endpoint
// selection, the fetched table, descriptive statistics, and an inline
// SVG chart. One page load is one interaction: with a selection
// present the handler fetches synchronously and renders the terminal
// state (table or error banner); without one it renders the idle page.
package ui

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"nbu-dashboard/internal/catalog"
	"nbu-dashboard/internal/domain/entity"
	dsUC "nbu-dashboard/internal/usecase/dataset"
	"nbu-dashboard/pkg/security/csp"
)

//go:embed templates/dashboard.html.tmpl
var templateFS embed.FS

var dashboardTmpl = template.Must(template.ParseFS(templateFS, "templates/dashboard.html.tmpl"))

// maxSampleRows caps the rendered sample table, as the original
// dashboard showed the first 50 rows.
const maxSampleRows = 50

// DashboardHandler renders the dashboard page.
type DashboardHandler struct {
	Catalog *catalog.Catalog
	Svc     *dsUC.Service
	Logger  *slog.Logger
}

// pageData is the template view model for one page render.
type pageData struct {
	Categories []catalog.Category
	Pick       string // "category/dataset" of the current selection
	CustomURL  string
	CustomName string
	Result     *resultView
}

// resultView is the rendered form of one DataSet, success or failure.
type resultView struct {
	Name         string
	SourceURL    string
	FetchedAt    string
	Failed       bool
	FailureKind  string
	ErrorMessage string
	RecordCount  int
	FieldCount   int
	DateField    string
	Metric       string
	Metrics      []string
	Chart        *Chart
	Stats        []statRow
	Fields       []string
	Rows         [][]string
	Truncated    bool
}

type statRow struct {
	Field string
	Count int
	Min   string
	Max   string
	Mean  string
	Sum   string
}

func (h DashboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Routes like "/favicon.ico" fall through the "/" pattern.
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Security-Policy", csp.DashboardPolicy().Build())
	w.Header().Set("X-Content-Type-Options", "nosniff")

	data := pageData{Categories: h.Catalog.Categories()}

	q := r.URL.Query()
	data.Pick = q.Get("pick")
	data.CustomURL = strings.TrimSpace(q.Get("url"))
	data.CustomName = strings.TrimSpace(q.Get("name"))

	if ep, ok := h.endpointFromQuery(&data); ok {
		ds := h.Svc.Fetch(r.Context(), ep)
		data.Result = buildResultView(ds, q.Get("metric"))

		if !ds.Success {
			h.Logger.Warn("dataset fetch failed",
				slog.String("name", ds.Name),
				slog.String("url", ds.SourceURL),
				slog.String("kind", string(ds.FailureKind)),
				slog.String("error", ds.ErrorMessage))
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboardTmpl.Execute(w, data); err != nil {
		h.Logger.Error("failed to render dashboard", slog.Any("error", err))
	}
}

// endpointFromQuery resolves the page's query into an Endpoint. A
// custom URL takes precedence over a lingering catalog selection so
// the free-text field always wins when filled in.
func (h DashboardHandler) endpointFromQuery(data *pageData) (entity.Endpoint, bool) {
	if data.CustomURL != "" {
		data.Pick = ""
		return entity.Endpoint{URL: data.CustomURL, Name: data.CustomName}, true
	}
	if data.Pick == "" {
		return entity.Endpoint{}, false
	}
	categoryKey, datasetKey, found := strings.Cut(data.Pick, "/")
	if !found {
		return entity.Endpoint{}, false
	}
	return entity.Endpoint{Category: categoryKey, Dataset: datasetKey}, true
}

// buildResultView converts a DataSet into its render model: summary,
// chart for the requested (or first) numeric metric, statistics rows,
// and a capped sample table.
func buildResultView(ds *entity.DataSet, requestedMetric string) *resultView {
	rv := &resultView{
		Name:      ds.Name,
		SourceURL: ds.SourceURL,
		FetchedAt: ds.FetchedAt.Format("2006-01-02 15:04 UTC"),
	}
	if !ds.Success {
		rv.Failed = true
		rv.FailureKind = string(ds.FailureKind)
		rv.ErrorMessage = ds.ErrorMessage
		return rv
	}

	sum := dsUC.Summarize(ds)
	rv.RecordCount = sum.RecordCount
	rv.FieldCount = sum.FieldCount
	rv.DateField = sum.DateField
	rv.Metrics = dsUC.NumericFields(ds)
	rv.Metric = pickMetric(rv.Metrics, requestedMetric)
	rv.Chart = BuildChart(ds, sum.DateField, rv.Metric)

	for _, st := range sum.NumericStats {
		rv.Stats = append(rv.Stats, statRow{
			Field: st.Field,
			Count: st.Count,
			Min:   st.Min.String(),
			Max:   st.Max.String(),
			Mean:  st.Mean.String(),
			Sum:   st.Sum.String(),
		})
	}

	rv.Fields = ds.Fields
	limit := len(ds.Records)
	if limit > maxSampleRows {
		limit = maxSampleRows
		rv.Truncated = true
	}
	for _, rec := range ds.Records[:limit] {
		row := make([]string, 0, len(ds.Fields))
		for _, field := range ds.Fields {
			row = append(row, cellString(rec[field]))
		}
		rv.Rows = append(rv.Rows, row)
	}
	return rv
}

// pickMetric returns the requested metric if it is one of the numeric
// fields, otherwise the first numeric field.
func pickMetric(metrics []string, requested string) string {
	if len(metrics) == 0 {
		return ""
	}
	for _, m := range metrics {
		if m == requested {
			return m
		}
	}
	return metrics[0]
}

// cellString renders a record value for the sample table.
func cellString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}
