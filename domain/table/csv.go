package table

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV serializes the table as comma-delimited text: header row
// followed by data rows, columns in table order.
func (t *Table) WriteCSV(w io.Writer) error {
	if t == nil {
		return fmt.Errorf("cannot export a nil table")
	}

	cw := csv.NewWriter(w)

	if err := cw.Write(t.ColumnNames()); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	row := make([]string, len(t.columns))
	for i := 0; i < t.rowCount; i++ {
		for j, col := range t.columns {
			row[j] = col.Values[i]
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
