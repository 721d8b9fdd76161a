package table

import (
	"fmt"
	"strconv"
)

// GroupSum groups rows by the names column and sums the values column
// within each group, returning a new two-column table. Groups keep
// first-seen order so repeated aggregation of the same table is stable.
//
// Values that fail to parse as numbers are an error: callers are expected
// to have validated the values column as numeric first.
func GroupSum(t *Table, namesCol, valuesCol string) (*Table, error) {
	names, ok := t.Column(namesCol)
	if !ok {
		return nil, fmt.Errorf("names column %q not found", namesCol)
	}
	values, ok := t.Column(valuesCol)
	if !ok {
		return nil, fmt.Errorf("values column %q not found", valuesCol)
	}

	sums := make(map[string]float64)
	order := make([]string, 0)

	for i, name := range names.Values {
		raw := values.Values[i]
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("non-numeric value %q in column %q at row %d", raw, valuesCol, i)
		}
		if _, seen := sums[name]; !seen {
			order = append(order, name)
		}
		sums[name] += v
	}

	groupedNames := make([]string, len(order))
	groupedValues := make([]string, len(order))
	for i, name := range order {
		groupedNames[i] = name
		groupedValues[i] = strconv.FormatFloat(sums[name], 'f', -1, 64)
	}

	return New([]Column{
		{Name: namesCol, Values: groupedNames},
		{Name: valuesCol, Values: groupedValues},
	})
}

// HasDuplicates reports whether the named column contains any repeated
// value. The scan always covers the full column, not a sample.
func HasDuplicates(t *Table, name string) bool {
	col, ok := t.Column(name)
	if !ok {
		return false
	}
	seen := make(map[string]bool, len(col.Values))
	for _, v := range col.Values {
		if seen[v] {
			return true
		}
		seen[v] = true
	}
	return false
}
