// Package charts renders the dashboard views as PNG images.
package charts

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/rogerio-castellano/ecommerce-dashboard/internal/metrics"
)

const (
	width  = 1024
	height = 512
)

// ErrNotEnoughData is returned when a view has nothing to plot.
var ErrNotEnoughData = errors.New("not enough data to render chart")

type Kind string

const (
	TopProducts    Kind = "products"
	TopCities      Kind = "cities"
	OrdersByMonth  Kind = "orders-by-month"
	RevenueByMonth Kind = "revenue-by-month"
	RecencyHist    Kind = "recency"
	FrequencyHist  Kind = "frequency"
	MonetaryHist   Kind = "monetary"
)

var ErrUnknownChart = errors.New("unknown chart")

func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case TopProducts, TopCities, OrdersByMonth, RevenueByMonth, RecencyHist, FrequencyHist, MonetaryHist:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownChart, s)
}

// Render draws one view of the bundle as a PNG.
func Render(w io.Writer, kind Kind, b metrics.Bundle) error {
	switch kind {
	case TopProducts:
		return renderRanking(w, "Top 10 Products With the Most Orders", b.TopProducts)
	case TopCities:
		return renderRanking(w, "Top 10 Cities With the Most Orders", b.TopCities)
	case OrdersByMonth:
		xs := make([]time.Time, len(b.OrdersByMonth))
		ys := make([]float64, len(b.OrdersByMonth))
		for i, m := range b.OrdersByMonth {
			xs[i], ys[i] = m.Month, float64(m.Orders)
		}
		return renderMonthly(w, "Total Order per Month", "Total Order", xs, ys)
	case RevenueByMonth:
		xs := make([]time.Time, len(b.RevenueByMonth))
		ys := make([]float64, len(b.RevenueByMonth))
		for i, m := range b.RevenueByMonth {
			xs[i], ys[i] = m.Month, m.Revenue.Float64()
		}
		return renderMonthly(w, "Total Revenue per Month", "Total Revenue", xs, ys)
	case RecencyHist:
		return renderHistogram(w, "Recency Distribution", metrics.RFMValues(b.RFM, metrics.Recency), metrics.DefaultBins)
	case FrequencyHist:
		return renderHistogram(w, "Frequency Distribution", metrics.RFMValues(b.RFM, metrics.Frequency), metrics.DefaultBins)
	case MonetaryHist:
		return renderHistogram(w, "Monetary Distribution", metrics.RFMValues(b.RFM, metrics.Monetary), metrics.DefaultBins)
	}
	return fmt.Errorf("%w: %q", ErrUnknownChart, kind)
}

func renderRanking(w io.Writer, title string, groups []metrics.GroupCount) error {
	if len(groups) == 0 {
		return ErrNotEnoughData
	}

	bars := make([]chart.Value, len(groups))
	top := 0.0
	for i, g := range groups {
		bars[i] = chart.Value{Label: g.Key, Value: float64(g.Orders)}
		top = math.Max(top, float64(g.Orders))
	}

	return renderBars(w, title, bars, top, 60)
}

func renderHistogram(w io.Writer, title string, values []float64, bins int) error {
	hist := metrics.Histogram(values, bins)
	if len(hist) == 0 {
		return ErrNotEnoughData
	}

	bars := make([]chart.Value, len(hist))
	top := 0.0
	for i, b := range hist {
		bars[i] = chart.Value{Label: formatEdge(b.Lower), Value: float64(b.Count)}
		top = math.Max(top, float64(b.Count))
	}

	return renderBars(w, title, bars, top, 12)
}

func renderBars(w io.Writer, title string, bars []chart.Value, top float64, barWidth int) error {
	spacing := barWidth / 3
	bc := chart.BarChart{
		Title:      title,
		Width:      max(width, len(bars)*(barWidth+spacing)+120),
		Height:     height,
		BarWidth:   barWidth,
		BarSpacing: spacing,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: niceCeiling(top)},
		},
		Bars: bars,
	}
	if err := bc.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render %q: %w", title, err)
	}
	return nil
}

func renderMonthly(w io.Writer, title, yName string, xs []time.Time, ys []float64) error {
	if len(xs) == 0 {
		return ErrNotEnoughData
	}
	// go-chart needs two distinct x values to build a range.
	if len(xs) == 1 {
		xs = append(xs, xs[0].AddDate(0, 1, 0))
		ys = append(ys, ys[0])
	}

	top := 0.0
	for _, y := range ys {
		top = math.Max(top, y)
	}

	graph := chart.Chart{
		Title:      title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:           "Order Date",
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01"),
		},
		YAxis: chart.YAxis{
			Name:  yName,
			Range: &chart.ContinuousRange{Min: 0, Max: niceCeiling(top)},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    title,
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: drawing.ColorFromHex("1f77b4"),
					StrokeWidth: 2,
					DotColor:    drawing.ColorFromHex("1f77b4"),
					DotWidth:    3,
				},
			},
		},
	}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render %q: %w", title, err)
	}
	return nil
}

// niceCeiling leaves headroom above the tallest value and never returns 0,
// which go-chart cannot scale.
func niceCeiling(top float64) float64 {
	if top <= 0 {
		return 1
	}
	return top * 1.1
}

func formatEdge(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
