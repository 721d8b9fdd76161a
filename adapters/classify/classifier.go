package classify

import (
	"strconv"
	"strings"
	"time"

	"sheetviz/domain/table"
)

// Config defines the classification rules
type Config struct {
	// DateLayouts are tried in order when deciding whether a column is
	// temporal. A value counts as temporal if any layout parses it.
	DateLayouts []string
	// TrimSpace normalizes cell values before parsing.
	TrimSpace bool
}

// DefaultConfig returns the standard rule set
func DefaultConfig() Config {
	return Config{
		DateLayouts: []string{
			time.RFC3339,
			"2006-01-02T15:04:05",
			"2006-01-02 15:04:05",
			"2006-01-02",
			"01/02/2006",
			"2006/01/02",
			"02-Jan-2006",
		},
		TrimSpace: true,
	}
}

// Classifier derives a ColumnKind for every column of a table by
// sequential trial: numeric first, then temporal, then categorical.
// Numeric is deliberately tested before temporal so numeric strings
// like "2024" never come back as dates.
type Classifier struct {
	config Config
}

// New creates a classifier with the given config
func New(config Config) *Classifier {
	return &Classifier{config: config}
}

// NewDefault creates a classifier with the default rule set
func NewDefault() *Classifier {
	return New(DefaultConfig())
}

// Classify derives the kind of every column. It is a pure function of
// the table snapshot: no side effects, same result on every call. A nil
// or column-less table yields an empty classification.
func (c *Classifier) Classify(t *table.Table) Classification {
	cols := t.Columns()
	cl := Classification{
		kinds: make(map[string]table.ColumnKind, len(cols)),
		order: make([]string, 0, len(cols)),
	}

	for _, col := range cols {
		cl.kinds[col.Name] = c.classifyColumn(col)
		cl.order = append(cl.order, col.Name)
	}
	return cl
}

// classifyColumn decides exactly one kind for a column. Empty cells are
// skipped during the trials; a column with no non-empty cells at all is
// Unknown.
func (c *Classifier) classifyColumn(col table.Column) table.ColumnKind {
	sampled := 0
	allNumeric := true
	allTemporal := true

	for _, raw := range col.Values {
		v := raw
		if c.config.TrimSpace {
			v = strings.TrimSpace(v)
		}
		if v == "" {
			continue
		}
		sampled++

		if allNumeric && !c.isNumeric(v) {
			allNumeric = false
		}
		// Temporal only matters once numeric is ruled out, but the flag
		// is cheap to keep while scanning.
		if allTemporal && !c.isTemporal(v) {
			allTemporal = false
		}
		if !allNumeric && !allTemporal {
			break
		}
	}

	if sampled == 0 {
		return table.KindUnknown
	}
	if allNumeric {
		return table.KindNumeric
	}
	if allTemporal {
		return table.KindTemporal
	}
	return table.KindCategorical
}

func (c *Classifier) isNumeric(v string) bool {
	_, err := strconv.ParseFloat(v, 64)
	return err == nil
}

func (c *Classifier) isTemporal(v string) bool {
	for _, layout := range c.config.DateLayouts {
		if _, err := time.Parse(layout, v); err == nil {
			return true
		}
	}
	return false
}
