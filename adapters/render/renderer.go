package render

import (
	"bytes"
	"fmt"
	"strconv"

	"sheetviz/domain/chart"
	"sheetviz/domain/table"

	gochart "github.com/wcharczuk/go-chart/v2"
)

// Config holds render output settings
type Config struct {
	Width  int
	Height int
}

// DefaultConfig returns the standard chart dimensions
func DefaultConfig() Config {
	return Config{Width: 1024, Height: 512}
}

// Renderer turns a validated chart.Spec plus the table it was resolved
// against into a PNG image. The renderer trusts the spec: column
// existence and kinds were checked by the resolver, so parse failures
// here are reported as internal errors, not selection errors.
type Renderer struct {
	config Config
}

// New creates a renderer
func New(config Config) *Renderer {
	if config.Width <= 0 {
		config.Width = DefaultConfig().Width
	}
	if config.Height <= 0 {
		config.Height = DefaultConfig().Height
	}
	return &Renderer{config: config}
}

// Render produces a PNG for the spec
func (r *Renderer) Render(spec chart.Spec, t *table.Table) ([]byte, error) {
	switch spec.Kind {
	case chart.KindBar:
		return r.renderBar(spec, t)
	case chart.KindLine:
		return r.renderLine(spec, t)
	case chart.KindPie:
		return r.renderPie(spec, t)
	case chart.KindScatter:
		return r.renderScatter(spec, t)
	case chart.KindHistogram:
		return r.renderHistogram(spec, t)
	default:
		return nil, fmt.Errorf("unsupported chart kind %q", spec.Kind)
	}
}

func (r *Renderer) renderBar(spec chart.Spec, t *table.Table) ([]byte, error) {
	labels, values, err := labelValuePairs(t, spec.X, spec.Y)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("no plottable rows for %s/%s", spec.X, spec.Y)
	}

	bars := make([]gochart.Value, len(values))
	for i := range values {
		bars[i] = gochart.Value{Label: labels[i], Value: values[i]}
	}

	barWidth := (r.config.Width - 120) / len(bars)
	if barWidth < 8 {
		barWidth = 8
	}
	if barWidth > 80 {
		barWidth = 80
	}

	graph := gochart.BarChart{
		Title:    spec.Title,
		Width:    r.config.Width,
		Height:   r.config.Height,
		BarWidth: barWidth,
		Bars:     bars,
		YAxis: gochart.YAxis{
			Name: spec.Y,
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(gochart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("bar chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) renderLine(spec chart.Spec, t *table.Table) ([]byte, error) {
	xCol, _ := t.Column(spec.X)
	xs, ticks := xPositions(xCol.Values)

	var series []gochart.Series
	if spec.Group != "" {
		groupCol, _ := t.Column(spec.Group)
		for gi, group := range distinctValues(groupCol.Values) {
			gxs, gys, err := groupedPoints(t, spec.Y, xs, groupCol.Values, group)
			if err != nil {
				return nil, err
			}
			if len(gxs) == 0 {
				continue
			}
			series = append(series, gochart.ContinuousSeries{
				Name:    group,
				XValues: gxs,
				YValues: gys,
				Style: gochart.Style{
					StrokeColor: gochart.GetDefaultColor(gi),
				},
			})
		}
	} else {
		pxs, pys, err := alignedPoints(t, spec.Y, xs)
		if err != nil {
			return nil, err
		}
		if len(pxs) == 0 {
			return nil, fmt.Errorf("no plottable rows for %s/%s", spec.X, spec.Y)
		}
		series = append(series, gochart.ContinuousSeries{
			XValues: pxs,
			YValues: pys,
		})
	}

	graph := gochart.Chart{
		Title:  spec.Title,
		Width:  r.config.Width,
		Height: r.config.Height,
		XAxis: gochart.XAxis{
			Name:  spec.X,
			Ticks: ticks,
		},
		YAxis: gochart.YAxis{
			Name: spec.Y,
		},
		Series: series,
	}
	if spec.Group != "" {
		graph.Elements = []gochart.Renderable{gochart.Legend(&graph)}
	}

	var buf bytes.Buffer
	if err := graph.Render(gochart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("line chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) renderPie(spec chart.Spec, t *table.Table) ([]byte, error) {
	data := t
	if spec.Aggregation == chart.AggregationSum {
		grouped, err := table.GroupSum(t, spec.X, spec.Y)
		if err != nil {
			return nil, fmt.Errorf("pie aggregation failed: %w", err)
		}
		data = grouped
	}

	labels, values, err := labelValuePairs(data, spec.X, spec.Y)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("no plottable rows for %s/%s", spec.X, spec.Y)
	}

	slices := make([]gochart.Value, len(values))
	for i := range values {
		slices[i] = gochart.Value{Label: labels[i], Value: values[i]}
	}

	graph := gochart.PieChart{
		Title:  spec.Title,
		Width:  r.config.Width,
		Height: r.config.Height,
		Values: slices,
	}

	var buf bytes.Buffer
	if err := graph.Render(gochart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("pie chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}

// labelValuePairs collects (label, numeric value) pairs from two
// columns, skipping rows with an empty value cell.
func labelValuePairs(t *table.Table, labelCol, valueCol string) ([]string, []float64, error) {
	labels, ok := t.Column(labelCol)
	if !ok {
		return nil, nil, fmt.Errorf("column %q not found", labelCol)
	}
	values, ok := t.Column(valueCol)
	if !ok {
		return nil, nil, fmt.Errorf("column %q not found", valueCol)
	}

	outLabels := make([]string, 0, t.RowCount())
	outValues := make([]float64, 0, t.RowCount())
	for i, raw := range values.Values {
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("non-numeric value %q in column %q at row %d", raw, valueCol, i)
		}
		outLabels = append(outLabels, labels.Values[i])
		outValues = append(outValues, v)
	}
	return outLabels, outValues, nil
}

// xPositions maps an x column to plot positions. A fully numeric column
// plots at its own values; anything else plots at row indices with one
// tick per label.
func xPositions(values []string) ([]float64, []gochart.Tick) {
	numeric := true
	parsed := make([]float64, len(values))
	for i, raw := range values {
		if raw == "" {
			numeric = false
			break
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			numeric = false
			break
		}
		parsed[i] = v
	}
	if numeric {
		return parsed, nil
	}

	xs := make([]float64, len(values))
	ticks := make([]gochart.Tick, len(values))
	for i, raw := range values {
		xs[i] = float64(i)
		ticks[i] = gochart.Tick{Value: float64(i), Label: raw}
	}
	return xs, ticks
}

// alignedPoints pairs x positions with parsed y values, skipping rows
// whose y cell is empty.
func alignedPoints(t *table.Table, yCol string, xs []float64) ([]float64, []float64, error) {
	ys, ok := t.Column(yCol)
	if !ok {
		return nil, nil, fmt.Errorf("column %q not found", yCol)
	}

	outX := make([]float64, 0, len(xs))
	outY := make([]float64, 0, len(xs))
	for i, raw := range ys.Values {
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("non-numeric value %q in column %q at row %d", raw, yCol, i)
		}
		outX = append(outX, xs[i])
		outY = append(outY, v)
	}
	return outX, outY, nil
}

// groupedPoints is alignedPoints restricted to rows whose group cell
// equals group.
func groupedPoints(t *table.Table, yCol string, xs []float64, groups []string, group string) ([]float64, []float64, error) {
	ys, ok := t.Column(yCol)
	if !ok {
		return nil, nil, fmt.Errorf("column %q not found", yCol)
	}

	var outX, outY []float64
	for i, raw := range ys.Values {
		if groups[i] != group || raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("non-numeric value %q in column %q at row %d", raw, yCol, i)
		}
		outX = append(outX, xs[i])
		outY = append(outY, v)
	}
	return outX, outY, nil
}

// distinctValues returns the distinct values of a column in first-seen order
func distinctValues(values []string) []string {
	seen := make(map[string]bool, len(values))
	var out []string
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
