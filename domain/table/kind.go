package table

// ColumnKind is the inferred semantic type of a column. It is derived
// from the values, never stored with them, and is recomputed whenever
// the table is replaced.
type ColumnKind string

const (
	KindNumeric     ColumnKind = "numeric"
	KindCategorical ColumnKind = "categorical"
	KindTemporal    ColumnKind = "temporal"
	KindUnknown     ColumnKind = "unknown"
)

// String returns the string representation
func (k ColumnKind) String() string {
	return string(k)
}
