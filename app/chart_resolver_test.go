package app

import (
	"testing"

	"sheetviz/adapters/classify"
	"sheetviz/domain/chart"
	"sheetviz/domain/core"
	"sheetviz/domain/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInputs(t *testing.T) (*table.Table, classify.Classification) {
	t.Helper()
	tbl := table.Sample()
	return tbl, classify.NewDefault().Classify(tbl)
}

func TestResolveBar_Valid(t *testing.T) {
	tbl, cl := sampleInputs(t)

	spec, err := NewChartResolver().ResolveBar(tbl, cl, "Category", "Sales")
	require.NoError(t, err)

	assert.Equal(t, chart.KindBar, spec.Kind)
	assert.Equal(t, "Category", spec.X)
	assert.Equal(t, "Sales", spec.Y)
	assert.Equal(t, chart.AggregationNone, spec.Aggregation)
	assert.Equal(t, "Sales by Category", spec.Title)
}

func TestResolveBar_NumericX(t *testing.T) {
	tbl, cl := sampleInputs(t)

	_, err := NewChartResolver().ResolveBar(tbl, cl, "Sales", "Profit")
	assert.True(t, core.IsInvalidSelection(err), "numeric x must be rejected, got %v", err)
}

func TestResolveBar_UnknownColumn(t *testing.T) {
	tbl, cl := sampleInputs(t)

	_, err := NewChartResolver().ResolveBar(tbl, cl, "Nope", "Sales")
	assert.True(t, core.IsInvalidSelection(err))
}

func TestResolveBar_MissingSelection(t *testing.T) {
	tbl, cl := sampleInputs(t)

	_, err := NewChartResolver().ResolveBar(tbl, cl, "", "Sales")
	assert.True(t, core.IsEmptySelection(err))

	_, err = NewChartResolver().ResolveBar(tbl, cl, "Category", "")
	assert.True(t, core.IsEmptySelection(err))
}

func TestResolveLine(t *testing.T) {
	tbl, cl := sampleInputs(t)
	r := NewChartResolver()

	// Categorical x.
	spec, err := r.ResolveLine(tbl, cl, "Month", "Sales", "")
	require.NoError(t, err)
	assert.Equal(t, chart.KindLine, spec.Kind)
	assert.Empty(t, spec.Group)

	// Numeric x is also allowed.
	_, err = r.ResolveLine(tbl, cl, "Sales", "Profit", "")
	assert.NoError(t, err)

	// Optional categorical group.
	spec, err = r.ResolveLine(tbl, cl, "Month", "Sales", "Region")
	require.NoError(t, err)
	assert.Equal(t, "Region", spec.Group)

	// Numeric group is rejected.
	_, err = r.ResolveLine(tbl, cl, "Month", "Sales", "Profit")
	assert.True(t, core.IsInvalidSelection(err))
}

func TestResolvePie_DuplicatesTriggerSum(t *testing.T) {
	tbl, cl := sampleInputs(t)

	// Region repeats (North, South, East appear twice).
	spec, err := NewChartResolver().ResolvePie(tbl, cl, "Region", "Sales")
	require.NoError(t, err)
	assert.Equal(t, chart.AggregationSum, spec.Aggregation)

	// Category values are all distinct.
	spec, err = NewChartResolver().ResolvePie(tbl, cl, "Category", "Sales")
	require.NoError(t, err)
	assert.Equal(t, chart.AggregationNone, spec.Aggregation)
}

func TestResolvePie_GroupedData(t *testing.T) {
	tbl, err := table.New([]table.Column{
		{Name: "names", Values: []string{"A", "A", "B"}},
		{Name: "values", Values: []string{"10", "5", "7"}},
	})
	require.NoError(t, err)
	cl := classify.NewDefault().Classify(tbl)

	spec, err := NewChartResolver().ResolvePie(tbl, cl, "names", "values")
	require.NoError(t, err)
	require.Equal(t, chart.AggregationSum, spec.Aggregation)

	grouped, err := table.GroupSum(tbl, spec.X, spec.Y)
	require.NoError(t, err)
	values, _ := grouped.Column("values")
	assert.Equal(t, []string{"15", "7"}, values.Values)
}

func TestResolveScatter(t *testing.T) {
	tbl, cl := sampleInputs(t)
	r := NewChartResolver()

	spec, err := r.ResolveScatter(tbl, cl, "Sales", "Profit", "", "")
	require.NoError(t, err)
	assert.Equal(t, chart.KindScatter, spec.Kind)
	assert.Equal(t, "Profit vs Sales", spec.Title)

	// Color may be categorical or numeric.
	_, err = r.ResolveScatter(tbl, cl, "Sales", "Profit", "Region", "")
	assert.NoError(t, err)
	_, err = r.ResolveScatter(tbl, cl, "Sales", "Profit", "Growth_Rate", "")
	assert.NoError(t, err)

	// Size must be numeric.
	_, err = r.ResolveScatter(tbl, cl, "Sales", "Profit", "", "Region")
	assert.True(t, core.IsInvalidSelection(err))

	// Categorical axes are rejected.
	_, err = r.ResolveScatter(tbl, cl, "Category", "Profit", "", "")
	assert.True(t, core.IsInvalidSelection(err))
}

func TestResolveHistogram_BinBounds(t *testing.T) {
	tbl, cl := sampleInputs(t)
	r := NewChartResolver()

	spec, err := r.ResolveHistogram(tbl, cl, "Sales", 30)
	require.NoError(t, err)
	assert.Equal(t, chart.KindHistogram, spec.Kind)
	assert.Equal(t, 30, spec.BinCount)
	assert.Empty(t, spec.Y)

	for _, bins := range []int{1, 4, 101, 200} {
		_, err := r.ResolveHistogram(tbl, cl, "Sales", bins)
		assert.True(t, core.IsInvalidSelection(err), "bin count %d must be rejected", bins)
	}

	// Bounds are inclusive.
	_, err = r.ResolveHistogram(tbl, cl, "Sales", MinBinCount)
	assert.NoError(t, err)
	_, err = r.ResolveHistogram(tbl, cl, "Sales", MaxBinCount)
	assert.NoError(t, err)

	_, err = r.ResolveHistogram(tbl, cl, "Category", 20)
	assert.True(t, core.IsInvalidSelection(err))
}

func TestResolve_Dispatch(t *testing.T) {
	tbl, cl := sampleInputs(t)
	r := NewChartResolver()

	spec, err := r.Resolve(tbl, cl, chart.Selection{Kind: chart.KindBar, X: "Category", Y: "Sales"})
	require.NoError(t, err)
	assert.Equal(t, chart.KindBar, spec.Kind)

	// Histogram defaults to 20 bins when the user leaves the control unset.
	spec, err = r.Resolve(tbl, cl, chart.Selection{Kind: chart.KindHistogram, Column: "Sales"})
	require.NoError(t, err)
	assert.Equal(t, DefaultBinCount, spec.BinCount)

	// An explicit out-of-range bin count is still rejected.
	bins := 200
	_, err = r.Resolve(tbl, cl, chart.Selection{Kind: chart.KindHistogram, Column: "Sales", BinCount: &bins})
	assert.True(t, core.IsInvalidSelection(err))

	_, err = r.Resolve(tbl, cl, chart.Selection{Kind: "sunburst"})
	assert.True(t, core.IsInvalidSelection(err))

	_, err = r.Resolve(nil, cl, chart.Selection{Kind: chart.KindBar, X: "Category", Y: "Sales"})
	assert.ErrorIs(t, err, core.ErrNoTable)
}
