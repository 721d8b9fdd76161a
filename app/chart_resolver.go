package app

import (
	"fmt"

	"sheetviz/adapters/classify"
	"sheetviz/domain/chart"
	"sheetviz/domain/core"
	"sheetviz/domain/table"
)

const (
	// Bin bounds match the original histogram control.
	MinBinCount     = 5
	MaxBinCount     = 100
	DefaultBinCount = 20
)

// ChartResolver validates a user's chart-parameter selection against the
// current column classification and builds an immutable chart.Spec, or
// rejects the selection. Each resolution is a stateless, single-shot
// step: the table and classification are read-only inputs and nothing
// is retained between calls.
type ChartResolver struct{}

// NewChartResolver creates a resolver
func NewChartResolver() *ChartResolver {
	return &ChartResolver{}
}

// Resolve dispatches to the per-kind resolution based on the selection
func (r *ChartResolver) Resolve(t *table.Table, cl classify.Classification, sel chart.Selection) (chart.Spec, error) {
	if t.RowCount() == 0 {
		return chart.Spec{}, core.ErrNoTable
	}

	switch sel.Kind {
	case chart.KindBar:
		return r.ResolveBar(t, cl, sel.X, sel.Y)
	case chart.KindLine:
		return r.ResolveLine(t, cl, sel.X, sel.Y, sel.Group)
	case chart.KindPie:
		return r.ResolvePie(t, cl, sel.Names, sel.Values)
	case chart.KindScatter:
		return r.ResolveScatter(t, cl, sel.X, sel.Y, sel.Color, sel.Size)
	case chart.KindHistogram:
		bins := DefaultBinCount
		if sel.BinCount != nil {
			bins = *sel.BinCount
		}
		return r.ResolveHistogram(t, cl, sel.Column, bins)
	default:
		return chart.Spec{}, core.NewInvalidSelectionError(sel.Kind.String(), "is not a supported chart kind")
	}
}

// ResolveBar requires a categorical x and a numeric y
func (r *ChartResolver) ResolveBar(t *table.Table, cl classify.Classification, x, y string) (chart.Spec, error) {
	if err := requireColumn(t, cl, x, "x-axis", table.KindCategorical); err != nil {
		return chart.Spec{}, err
	}
	if err := requireColumn(t, cl, y, "y-axis", table.KindNumeric); err != nil {
		return chart.Spec{}, err
	}

	return chart.Spec{
		Kind:        chart.KindBar,
		Title:       fmt.Sprintf("%s by %s", y, x),
		X:           x,
		Y:           y,
		Aggregation: chart.AggregationNone,
	}, nil
}

// ResolveLine requires a categorical or numeric x and a numeric y; the
// optional group column must be categorical.
func (r *ChartResolver) ResolveLine(t *table.Table, cl classify.Classification, x, y, group string) (chart.Spec, error) {
	if err := requireColumn(t, cl, x, "x-axis", table.KindCategorical, table.KindNumeric); err != nil {
		return chart.Spec{}, err
	}
	if err := requireColumn(t, cl, y, "y-axis", table.KindNumeric); err != nil {
		return chart.Spec{}, err
	}
	if err := optionalColumn(t, cl, group, table.KindCategorical); err != nil {
		return chart.Spec{}, err
	}

	return chart.Spec{
		Kind:        chart.KindLine,
		Title:       fmt.Sprintf("%s Trend by %s", y, x),
		X:           x,
		Y:           y,
		Group:       group,
		Aggregation: chart.AggregationNone,
	}, nil
}

// ResolvePie requires a categorical names column and a numeric values
// column. When the names column contains duplicates the spec is marked
// AggregationSum, telling the renderer to sum values per name before
// plotting; the duplicate scan always covers the full column.
func (r *ChartResolver) ResolvePie(t *table.Table, cl classify.Classification, names, values string) (chart.Spec, error) {
	if err := requireColumn(t, cl, names, "categories", table.KindCategorical); err != nil {
		return chart.Spec{}, err
	}
	if err := requireColumn(t, cl, values, "values", table.KindNumeric); err != nil {
		return chart.Spec{}, err
	}

	aggregation := chart.AggregationNone
	if table.HasDuplicates(t, names) {
		aggregation = chart.AggregationSum
	}

	return chart.Spec{
		Kind:        chart.KindPie,
		Title:       fmt.Sprintf("Distribution of %s by %s", values, names),
		X:           names,
		Y:           values,
		Aggregation: aggregation,
	}, nil
}

// ResolveScatter requires numeric x and y; color may be categorical or
// numeric, size must be numeric.
func (r *ChartResolver) ResolveScatter(t *table.Table, cl classify.Classification, x, y, color, size string) (chart.Spec, error) {
	if err := requireColumn(t, cl, x, "x-axis", table.KindNumeric); err != nil {
		return chart.Spec{}, err
	}
	if err := requireColumn(t, cl, y, "y-axis", table.KindNumeric); err != nil {
		return chart.Spec{}, err
	}
	if err := optionalColumn(t, cl, color, table.KindCategorical, table.KindNumeric); err != nil {
		return chart.Spec{}, err
	}
	if err := optionalColumn(t, cl, size, table.KindNumeric); err != nil {
		return chart.Spec{}, err
	}

	return chart.Spec{
		Kind:        chart.KindScatter,
		Title:       fmt.Sprintf("%s vs %s", y, x),
		X:           x,
		Y:           y,
		Color:       color,
		Size:        size,
		Aggregation: chart.AggregationNone,
	}, nil
}

// ResolveHistogram requires a numeric column and a bin count within
// [MinBinCount, MaxBinCount].
func (r *ChartResolver) ResolveHistogram(t *table.Table, cl classify.Classification, column string, binCount int) (chart.Spec, error) {
	if err := requireColumn(t, cl, column, "column", table.KindNumeric); err != nil {
		return chart.Spec{}, err
	}
	if binCount < MinBinCount || binCount > MaxBinCount {
		return chart.Spec{}, fmt.Errorf("%w: bin count %d outside [%d, %d]",
			core.ErrInvalidSelection, binCount, MinBinCount, MaxBinCount)
	}

	return chart.Spec{
		Kind:        chart.KindHistogram,
		Title:       fmt.Sprintf("Distribution of %s", column),
		X:           column,
		Aggregation: chart.AggregationNone,
		BinCount:    binCount,
	}, nil
}

// requireColumn rejects an unset name with EmptySelection, an unknown
// name or a kind outside wantKinds with InvalidSelection.
func requireColumn(t *table.Table, cl classify.Classification, name, role string, wantKinds ...table.ColumnKind) error {
	if name == "" {
		return core.NewEmptySelectionError(role)
	}
	return checkColumn(t, cl, name, wantKinds)
}

// optionalColumn accepts an unset name and otherwise applies the same
// checks as requireColumn.
func optionalColumn(t *table.Table, cl classify.Classification, name string, wantKinds ...table.ColumnKind) error {
	if name == "" {
		return nil
	}
	return checkColumn(t, cl, name, wantKinds)
}

func checkColumn(t *table.Table, cl classify.Classification, name string, wantKinds []table.ColumnKind) error {
	if !t.HasColumn(name) {
		return core.NewInvalidSelectionError(name, "does not exist in the table")
	}
	kind := cl.Kind(name)
	for _, want := range wantKinds {
		if kind == want {
			return nil
		}
	}
	return core.NewInvalidSelectionError(name, fmt.Sprintf("is %s, expected %s", kind, kindList(wantKinds)))
}

func kindList(kinds []table.ColumnKind) string {
	out := ""
	for i, k := range kinds {
		if i > 0 {
			out += " or "
		}
		out += k.String()
	}
	return out
}
