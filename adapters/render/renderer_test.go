package render

import (
	"testing"

	"sheetviz/adapters/classify"
	"sheetviz/app"
	"sheetviz/domain/chart"
	"sheetviz/domain/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func resolveSample(t *testing.T, sel chart.Selection) (chart.Spec, *table.Table) {
	t.Helper()
	tbl := table.Sample()
	cl := classify.NewDefault().Classify(tbl)
	spec, err := app.NewChartResolver().Resolve(tbl, cl, sel)
	require.NoError(t, err)
	return spec, tbl
}

func assertPNG(t *testing.T, data []byte) {
	t.Helper()
	require.Greater(t, len(data), len(pngMagic))
	assert.Equal(t, pngMagic, data[:len(pngMagic)])
}

func TestRender_Bar(t *testing.T) {
	spec, tbl := resolveSample(t, chart.Selection{Kind: chart.KindBar, X: "Category", Y: "Sales"})

	png, err := New(DefaultConfig()).Render(spec, tbl)
	require.NoError(t, err)
	assertPNG(t, png)
}

func TestRender_Line(t *testing.T) {
	r := New(DefaultConfig())

	spec, tbl := resolveSample(t, chart.Selection{Kind: chart.KindLine, X: "Month", Y: "Sales"})
	png, err := r.Render(spec, tbl)
	require.NoError(t, err)
	assertPNG(t, png)

	// Grouped variant draws one series per region.
	spec, tbl = resolveSample(t, chart.Selection{Kind: chart.KindLine, X: "Month", Y: "Sales", Group: "Region"})
	png, err = r.Render(spec, tbl)
	require.NoError(t, err)
	assertPNG(t, png)
}

func TestRender_PieAggregated(t *testing.T) {
	// Region has duplicates, so the resolver marks sum aggregation and
	// the renderer must group before plotting.
	spec, tbl := resolveSample(t, chart.Selection{Kind: chart.KindPie, Names: "Region", Values: "Sales"})
	require.Equal(t, chart.AggregationSum, spec.Aggregation)

	png, err := New(DefaultConfig()).Render(spec, tbl)
	require.NoError(t, err)
	assertPNG(t, png)
}

func TestRender_Scatter(t *testing.T) {
	r := New(DefaultConfig())

	spec, tbl := resolveSample(t, chart.Selection{Kind: chart.KindScatter, X: "Sales", Y: "Profit"})
	png, err := r.Render(spec, tbl)
	require.NoError(t, err)
	assertPNG(t, png)

	// Categorical color, numeric size.
	spec, tbl = resolveSample(t, chart.Selection{
		Kind: chart.KindScatter, X: "Sales", Y: "Profit", Color: "Region", Size: "Growth_Rate",
	})
	png, err = r.Render(spec, tbl)
	require.NoError(t, err)
	assertPNG(t, png)

	// Numeric color uses the viridis ramp.
	spec, tbl = resolveSample(t, chart.Selection{
		Kind: chart.KindScatter, X: "Sales", Y: "Profit", Color: "Growth_Rate",
	})
	png, err = r.Render(spec, tbl)
	require.NoError(t, err)
	assertPNG(t, png)
}

func TestRender_Histogram(t *testing.T) {
	bins := 5
	spec, tbl := resolveSample(t, chart.Selection{Kind: chart.KindHistogram, Column: "Sales", BinCount: &bins})

	png, err := New(DefaultConfig()).Render(spec, tbl)
	require.NoError(t, err)
	assertPNG(t, png)
}

func TestBinValues(t *testing.T) {
	bars := binValues([]float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 5)
	require.Len(t, bars, 5)

	total := 0.0
	for _, bar := range bars {
		total += bar.Value
	}
	assert.Equal(t, 11.0, total, "every value lands in exactly one bin")
	assert.Equal(t, 3.0, bars[4].Value, "max value belongs to the last bin")
}

func TestBinValues_ConstantColumn(t *testing.T) {
	bars := binValues([]float64{5, 5, 5}, 10)
	require.Len(t, bars, 1)
	assert.Equal(t, 3.0, bars[0].Value)
}

func TestRender_UnknownKind(t *testing.T) {
	_, err := New(DefaultConfig()).Render(chart.Spec{Kind: "sunburst"}, table.Sample())
	assert.Error(t, err)
}
