package table

import (
	"fmt"

	"sheetviz/domain/core"
)

// Column is an ordered sequence of raw cell values under a unique name.
// Values are kept as the loader produced them (trimmed strings); kind
// inference happens later and never mutates the column.
type Column struct {
	Name   string
	Values []string
}

// Table is an in-memory snapshot of uploaded or sample data: an ordered
// sequence of named columns of equal length. A Table is immutable after
// construction; new uploads replace it wholesale.
type Table struct {
	columns  []Column
	byName   map[string]int
	rowCount int
}

// New builds a Table from columns, enforcing the snapshot invariants:
// unique column names and equal column lengths.
func New(columns []Column) (*Table, error) {
	t := &Table{
		columns: columns,
		byName:  make(map[string]int, len(columns)),
	}

	for i, col := range columns {
		if col.Name == "" {
			return nil, core.NewLoadError(fmt.Sprintf("column %d has an empty name", i), nil)
		}
		if _, exists := t.byName[col.Name]; exists {
			return nil, core.NewLoadError(fmt.Sprintf("duplicate column name %q", col.Name), nil)
		}
		t.byName[col.Name] = i

		if i == 0 {
			t.rowCount = len(col.Values)
		} else if len(col.Values) != t.rowCount {
			return nil, core.NewLoadError(
				fmt.Sprintf("column %q has %d rows, expected %d", col.Name, len(col.Values), t.rowCount), nil)
		}
	}

	return t, nil
}

// MustNew builds a Table and panics on invariant violation. For fixtures
// and the sample table, where the shape is known at compile time.
func MustNew(columns []Column) *Table {
	t, err := New(columns)
	if err != nil {
		panic(err)
	}
	return t
}

// RowCount returns the number of data rows
func (t *Table) RowCount() int {
	if t == nil {
		return 0
	}
	return t.rowCount
}

// ColumnCount returns the number of columns
func (t *Table) ColumnCount() int {
	if t == nil {
		return 0
	}
	return len(t.columns)
}

// ColumnNames returns the column names in table order
func (t *Table) ColumnNames() []string {
	if t == nil {
		return nil
	}
	names := make([]string, len(t.columns))
	for i, col := range t.columns {
		names[i] = col.Name
	}
	return names
}

// Column looks up a column by name
func (t *Table) Column(name string) (Column, bool) {
	if t == nil {
		return Column{}, false
	}
	idx, ok := t.byName[name]
	if !ok {
		return Column{}, false
	}
	return t.columns[idx], true
}

// HasColumn reports whether a column with the given name exists
func (t *Table) HasColumn(name string) bool {
	_, ok := t.Column(name)
	return ok
}

// Columns returns the columns in table order
func (t *Table) Columns() []Column {
	if t == nil {
		return nil
	}
	return t.columns
}

// Records returns up to limit rows as name->value maps, in row order.
// limit <= 0 means all rows.
func (t *Table) Records(limit int) []map[string]string {
	if t == nil {
		return nil
	}
	n := t.rowCount
	if limit > 0 && limit < n {
		n = limit
	}

	records := make([]map[string]string, n)
	for i := 0; i < n; i++ {
		row := make(map[string]string, len(t.columns))
		for _, col := range t.columns {
			row[col.Name] = col.Values[i]
		}
		records[i] = row
	}
	return records
}
