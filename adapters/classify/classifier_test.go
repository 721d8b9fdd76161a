package classify

import (
	"testing"

	"sheetviz/domain/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTable(t *testing.T, cols ...table.Column) *table.Table {
	t.Helper()
	tbl, err := table.New(cols)
	require.NoError(t, err)
	return tbl
}

func TestClassify_NumericBeforeTemporal(t *testing.T) {
	// Year-like strings parse as both numbers and (unix) dates; the
	// numeric trial runs first so they must stay numeric.
	tbl := newTable(t, table.Column{Name: "year", Values: []string{"2020", "2021", "2022"}})

	cl := NewDefault().Classify(tbl)
	assert.Equal(t, table.KindNumeric, cl.Kind("year"))
}

func TestClassify_Temporal(t *testing.T) {
	tbl := newTable(t, table.Column{Name: "date", Values: []string{"2024-01-01", "2024-02-01"}})

	cl := NewDefault().Classify(tbl)
	assert.Equal(t, table.KindTemporal, cl.Kind("date"))
}

func TestClassify_Categorical(t *testing.T) {
	tbl := newTable(t, table.Column{Name: "region", Values: []string{"North", "South", "East"}})

	cl := NewDefault().Classify(tbl)
	assert.Equal(t, table.KindCategorical, cl.Kind("region"))
}

func TestClassify_MixedColumnIsCategorical(t *testing.T) {
	// One non-numeric value is enough to drop the whole column out of
	// numeric, even if most values parse.
	tbl := newTable(t, table.Column{Name: "mixed", Values: []string{"1", "2", "n/a"}})

	cl := NewDefault().Classify(tbl)
	assert.Equal(t, table.KindCategorical, cl.Kind("mixed"))
}

func TestClassify_EmptyColumnIsUnknown(t *testing.T) {
	tbl := newTable(t, table.Column{Name: "blank", Values: []string{"", "", ""}})

	cl := NewDefault().Classify(tbl)
	assert.Equal(t, table.KindUnknown, cl.Kind("blank"))
}

func TestClassify_SkipsEmptyCells(t *testing.T) {
	tbl := newTable(t, table.Column{Name: "sparse", Values: []string{"1.5", "", "2.5"}})

	cl := NewDefault().Classify(tbl)
	assert.Equal(t, table.KindNumeric, cl.Kind("sparse"))
}

func TestClassify_TotalAndIdempotent(t *testing.T) {
	tbl := table.Sample()
	classifier := NewDefault()

	first := classifier.Classify(tbl)
	second := classifier.Classify(tbl)

	// Every column gets exactly one kind.
	assert.Equal(t, tbl.ColumnCount(), first.Len())
	for _, name := range tbl.ColumnNames() {
		assert.True(t, first.Has(name), "column %s must be classified", name)
		assert.NotEqual(t, table.KindUnknown, first.Kind(name))
	}

	// Same table, same result.
	assert.Equal(t, first.Kinds(), second.Kinds())
}

func TestClassify_SampleTableKinds(t *testing.T) {
	cl := NewDefault().Classify(table.Sample())

	assert.Equal(t, []string{"Sales", "Profit", "Growth_Rate"}, cl.Numeric())
	assert.Equal(t, []string{"Category", "Month", "Region"}, cl.Categorical())
	assert.Empty(t, cl.Temporal())
}

func TestClassify_NilTable(t *testing.T) {
	cl := NewDefault().Classify(nil)

	assert.Zero(t, cl.Len())
	assert.Empty(t, cl.Numeric())
	assert.Empty(t, cl.Categorical())
	assert.Equal(t, table.KindUnknown, cl.Kind("anything"))
}

func TestClassification_OrderFollowsTable(t *testing.T) {
	tbl := newTable(t,
		table.Column{Name: "b_num", Values: []string{"1"}},
		table.Column{Name: "cat", Values: []string{"x"}},
		table.Column{Name: "a_num", Values: []string{"2"}},
	)

	cl := NewDefault().Classify(tbl)
	assert.Equal(t, []string{"b_num", "a_num"}, cl.Numeric())
}
