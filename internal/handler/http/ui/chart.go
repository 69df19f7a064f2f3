package ui

import (
	"fmt"
	"html/template"
	"sort"
	"strings"
	"time"

	"nbu-dashboard/internal/domain/entity"
	dsUC "nbu-dashboard/internal/usecase/dataset"
)

// Chart is a rendered inline-SVG chart for one metric of a DataSet.
type Chart struct {
	Kind   string // "line" or "bar"
	Metric string
	SVG    template.HTML
}

const (
	chartWidth  = 640
	chartHeight = 260
	chartPad    = 36
	maxBins     = 10
)

// BuildChart renders a chart for the DataSet per the display rule:
// a date-like field plus a numeric metric yields a line chart of the
// metric over time; a numeric metric alone yields a histogram of the
// metric's distribution. Returns nil when the records carry no numeric
// field or too few plottable points.
func BuildChart(ds *entity.DataSet, dateField, metric string) *Chart {
	if !ds.Success || metric == "" {
		return nil
	}

	if dateField != "" {
		if svg, ok := lineChart(ds.Records, dateField, metric); ok {
			return &Chart{Kind: "line", Metric: metric, SVG: svg}
		}
	}
	if svg, ok := barChart(ds.Records, metric); ok {
		return &Chart{Kind: "bar", Metric: metric, SVG: svg}
	}
	return nil
}

type point struct {
	t time.Time
	v float64
}

// lineChart plots metric over the date field for every record where
// both values parse, sorted by date. At least two points are required.
func lineChart(records []entity.Record, dateField, metric string) (template.HTML, bool) {
	var pts []point
	for _, rec := range records {
		t, tok := dsUC.ParseDate(rec[dateField])
		d, dok := dsUC.NumericValue(rec[metric])
		if !tok || !dok {
			continue
		}
		v, _ := d.Float64()
		pts = append(pts, point{t: t, v: v})
	}
	if len(pts) < 2 {
		return "", false
	}
	sort.Slice(pts, func(i, j int) bool { return pts[i].t.Before(pts[j].t) })

	minT, maxT := pts[0].t, pts[len(pts)-1].t
	minV, maxV := pts[0].v, pts[0].v
	for _, p := range pts {
		if p.v < minV {
			minV = p.v
		}
		if p.v > maxV {
			maxV = p.v
		}
	}

	var sb strings.Builder
	openSVG(&sb)
	spanT := maxT.Sub(minT).Seconds()
	spanV := maxV - minV

	var coords []string
	for _, p := range pts {
		x := float64(chartPad)
		if spanT > 0 {
			x += p.t.Sub(minT).Seconds() / spanT * float64(chartWidth-2*chartPad)
		}
		y := scaleY(p.v, minV, spanV)
		coords = append(coords, fmt.Sprintf("%.1f,%.1f", x, y))
	}
	fmt.Fprintf(&sb, `<polyline fill="none" stroke="#1f77b4" stroke-width="2" points="%s"/>`, strings.Join(coords, " "))
	axes(&sb, minV, maxV, minT.Format("2006-01-02"), maxT.Format("2006-01-02"))
	sb.WriteString("</svg>")
	// Output is built from numeric coordinates and escaped labels only.
	return template.HTML(sb.String()), true
}

// barChart draws a histogram of the metric's values: the value range
// splits into at most maxBins equal-width bins and each bar's height is
// the bin's record count.
func barChart(records []entity.Record, metric string) (template.HTML, bool) {
	var vals []float64
	for _, rec := range records {
		if d, ok := dsUC.NumericValue(rec[metric]); ok {
			v, _ := d.Float64()
			vals = append(vals, v)
		}
	}
	if len(vals) == 0 {
		return "", false
	}

	minV, maxV := vals[0], vals[0]
	for _, v := range vals {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	spanV := maxV - minV

	bins := maxBins
	if len(vals) < bins {
		bins = len(vals)
	}
	if spanV <= 0 {
		bins = 1 // all values equal: one bin holds everything
	}
	counts := make([]int, bins)
	for _, v := range vals {
		i := 0
		if spanV > 0 {
			i = int(float64(bins) * (v - minV) / spanV)
			if i == bins {
				i = bins - 1 // maxV lands in the last bin
			}
		}
		counts[i]++
	}
	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	var sb strings.Builder
	openSVG(&sb)
	binSpace := float64(chartWidth-2*chartPad) / float64(bins)
	barWidth := binSpace * 0.9
	baseY := float64(chartHeight - chartPad)
	plotH := float64(chartHeight - 2*chartPad)
	for i, c := range counts {
		if c == 0 {
			continue
		}
		height := float64(c) / float64(maxCount) * plotH
		x := float64(chartPad) + float64(i)*binSpace
		fmt.Fprintf(&sb, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="#1f77b4"/>`, x, baseY-height, barWidth, height)
	}
	axes(&sb, 0, float64(maxCount), trimNum(minV), trimNum(maxV))
	sb.WriteString("</svg>")
	return template.HTML(sb.String()), true
}

func openSVG(sb *strings.Builder) {
	fmt.Fprintf(sb, `<svg viewBox="0 0 %d %d" width="100%%" role="img" xmlns="http://www.w3.org/2000/svg">`, chartWidth, chartHeight)
}

// scaleY maps a value to SVG y-coordinates (inverted axis).
func scaleY(v, minV, spanV float64) float64 {
	if spanV <= 0 {
		return chartHeight / 2
	}
	return float64(chartHeight-chartPad) - (v-minV)/spanV*float64(chartHeight-2*chartPad)
}

// axes draws the frame and min/max labels for both axes.
func axes(sb *strings.Builder, minV, maxV float64, leftLabel, rightLabel string) {
	fmt.Fprintf(sb, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#999"/>`,
		chartPad, chartHeight-chartPad, chartWidth-chartPad, chartHeight-chartPad)
	fmt.Fprintf(sb, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#999"/>`,
		chartPad, chartPad, chartPad, chartHeight-chartPad)
	fmt.Fprintf(sb, `<text x="%d" y="%d" font-size="10" fill="#555">%s</text>`,
		4, chartHeight-chartPad, trimNum(minV))
	fmt.Fprintf(sb, `<text x="%d" y="%d" font-size="10" fill="#555">%s</text>`,
		4, chartPad, trimNum(maxV))
	fmt.Fprintf(sb, `<text x="%d" y="%d" font-size="10" fill="#555">%s</text>`,
		chartPad, chartHeight-chartPad+14, template.HTMLEscapeString(leftLabel))
	fmt.Fprintf(sb, `<text x="%d" y="%d" font-size="10" fill="#555" text-anchor="end">%s</text>`,
		chartWidth-chartPad, chartHeight-chartPad+14, template.HTMLEscapeString(rightLabel))
}

func trimNum(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
