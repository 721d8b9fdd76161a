package render

import (
	"bytes"
	"fmt"
	"strconv"

	"sheetviz/domain/chart"
	"sheetviz/domain/table"

	gochart "github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/gonum/floats"
)

func (r *Renderer) renderHistogram(spec chart.Spec, t *table.Table) ([]byte, error) {
	col, ok := t.Column(spec.X)
	if !ok {
		return nil, fmt.Errorf("column %q not found", spec.X)
	}

	values := make([]float64, 0, len(col.Values))
	for i, raw := range col.Values {
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("non-numeric value %q in column %q at row %d", raw, spec.X, i)
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("no plottable rows for %s", spec.X)
	}

	bars := binValues(values, spec.BinCount)

	barWidth := (r.config.Width - 120) / len(bars)
	if barWidth < 4 {
		barWidth = 4
	}
	if barWidth > 60 {
		barWidth = 60
	}

	graph := gochart.BarChart{
		Title:    spec.Title,
		Width:    r.config.Width,
		Height:   r.config.Height,
		BarWidth: barWidth,
		Bars:     bars,
		YAxis: gochart.YAxis{
			Name: "Frequency",
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(gochart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("histogram render failed: %w", err)
	}
	return buf.Bytes(), nil
}

// binValues distributes values into binCount equal-width bins over
// [min, max] and returns one bar per non-degenerate bin, labeled with
// the bin's lower edge. A constant column collapses to a single bar.
func binValues(values []float64, binCount int) []gochart.Value {
	lo := floats.Min(values)
	hi := floats.Max(values)

	if hi == lo {
		return []gochart.Value{{
			Label: formatEdge(lo),
			Value: float64(len(values)),
		}}
	}

	width := (hi - lo) / float64(binCount)
	counts := make([]int, binCount)
	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= binCount {
			// The max value lands on the upper edge of the last bin.
			idx = binCount - 1
		}
		counts[idx]++
	}

	bars := make([]gochart.Value, binCount)
	for i, count := range counts {
		bars[i] = gochart.Value{
			Label: formatEdge(lo + float64(i)*width),
			Value: float64(count),
		}
	}
	return bars
}

func formatEdge(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}
