package render

import (
	"bytes"
	"fmt"
	"strconv"

	"sheetviz/domain/chart"
	"sheetviz/domain/table"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"gonum.org/v1/gonum/floats"
)

const (
	minDotWidth  = 4.0
	maxDotWidth  = 16.0
	baseDotWidth = 5.0
)

// scatterPoint is one plottable row with its optional color and size cells
type scatterPoint struct {
	x, y  float64
	color string
	size  string
}

func (r *Renderer) renderScatter(spec chart.Spec, t *table.Table) ([]byte, error) {
	points, err := scatterPoints(spec, t)
	if err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("no plottable rows for %s/%s", spec.X, spec.Y)
	}

	var series []gochart.Series
	legend := false

	if spec.Color != "" && !allNumeric(columnValues(t, spec.Color)) {
		// Categorical color: one series per color value.
		for gi, group := range distinctPointColors(points) {
			sub := filterPoints(points, group)
			s, err := r.scatterSeries(sub, spec)
			if err != nil {
				return nil, err
			}
			s.Name = group
			s.Style.DotColor = gochart.GetDefaultColor(gi)
			series = append(series, s)
		}
		legend = true
	} else {
		s, err := r.scatterSeries(points, spec)
		if err != nil {
			return nil, err
		}
		if spec.Color != "" {
			// Numeric color: map values onto the viridis ramp.
			colorVals, err := pointFloats(points, func(p scatterPoint) string { return p.color }, spec.Color)
			if err != nil {
				return nil, err
			}
			cmin, cmax := floats.Min(colorVals), floats.Max(colorVals)
			s.Style.DotColorProvider = func(_, _ gochart.Range, index int, _, _ float64) drawing.Color {
				return gochart.Viridis(colorVals[index], cmin, cmax)
			}
		}
		series = append(series, s)
	}

	graph := gochart.Chart{
		Title:  spec.Title,
		Width:  r.config.Width,
		Height: r.config.Height,
		XAxis: gochart.XAxis{
			Name: spec.X,
		},
		YAxis: gochart.YAxis{
			Name: spec.Y,
		},
		Series: series,
	}
	if legend {
		graph.Elements = []gochart.Renderable{gochart.Legend(&graph)}
	}

	var buf bytes.Buffer
	if err := graph.Render(gochart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("scatter chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}

// scatterSeries builds one dot-only series, wiring the size column into
// a per-point dot width when the spec selects one.
func (r *Renderer) scatterSeries(points []scatterPoint, spec chart.Spec) (gochart.ContinuousSeries, error) {
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.x
		ys[i] = p.y
	}

	s := gochart.ContinuousSeries{
		XValues: xs,
		YValues: ys,
		Style: gochart.Style{
			StrokeWidth: gochart.Disabled,
			DotWidth:    baseDotWidth,
		},
	}

	if spec.Size != "" {
		sizeVals, err := pointFloats(points, func(p scatterPoint) string { return p.size }, spec.Size)
		if err != nil {
			return s, err
		}
		smin, smax := floats.Min(sizeVals), floats.Max(sizeVals)
		s.Style.DotWidthProvider = func(_, _ gochart.Range, index int, _, _ float64) float64 {
			if smax == smin {
				return baseDotWidth
			}
			ratio := (sizeVals[index] - smin) / (smax - smin)
			return minDotWidth + ratio*(maxDotWidth-minDotWidth)
		}
	}

	return s, nil
}

// scatterPoints collects rows where both x and y parse, carrying along
// the raw color and size cells for the selected optional roles.
func scatterPoints(spec chart.Spec, t *table.Table) ([]scatterPoint, error) {
	xCol, ok := t.Column(spec.X)
	if !ok {
		return nil, fmt.Errorf("column %q not found", spec.X)
	}
	yCol, ok := t.Column(spec.Y)
	if !ok {
		return nil, fmt.Errorf("column %q not found", spec.Y)
	}
	colorVals := columnValues(t, spec.Color)
	sizeVals := columnValues(t, spec.Size)

	points := make([]scatterPoint, 0, t.RowCount())
	for i := range xCol.Values {
		rawX, rawY := xCol.Values[i], yCol.Values[i]
		if rawX == "" || rawY == "" {
			continue
		}
		x, err := strconv.ParseFloat(rawX, 64)
		if err != nil {
			return nil, fmt.Errorf("non-numeric value %q in column %q at row %d", rawX, spec.X, i)
		}
		y, err := strconv.ParseFloat(rawY, 64)
		if err != nil {
			return nil, fmt.Errorf("non-numeric value %q in column %q at row %d", rawY, spec.Y, i)
		}
		p := scatterPoint{x: x, y: y}
		if colorVals != nil {
			p.color = colorVals[i]
		}
		if sizeVals != nil {
			p.size = sizeVals[i]
		}
		points = append(points, p)
	}
	return points, nil
}

func pointFloats(points []scatterPoint, field func(scatterPoint) string, column string) ([]float64, error) {
	out := make([]float64, len(points))
	for i, p := range points {
		raw := field(p)
		if raw == "" {
			// Missing optional cells fall back to zero rather than
			// dropping the point, which would desync x/y.
			out[i] = 0
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("non-numeric value %q in column %q", raw, column)
		}
		out[i] = v
	}
	return out, nil
}

func columnValues(t *table.Table, name string) []string {
	if name == "" {
		return nil
	}
	col, ok := t.Column(name)
	if !ok {
		return nil
	}
	return col.Values
}

func allNumeric(values []string) bool {
	if values == nil {
		return false
	}
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			return false
		}
	}
	return true
}

func distinctPointColors(points []scatterPoint) []string {
	seen := make(map[string]bool, len(points))
	var out []string
	for _, p := range points {
		if !seen[p.color] {
			seen[p.color] = true
			out = append(out, p.color)
		}
	}
	return out
}

func filterPoints(points []scatterPoint, color string) []scatterPoint {
	var out []scatterPoint
	for _, p := range points {
		if p.color == color {
			out = append(out, p)
		}
	}
	return out
}
