package classify

import "sheetviz/domain/table"

// Classification is the result of classifying one table snapshot. It
// maps every column name to exactly one kind and remembers table column
// order so the query methods return names in a stable, presentable order.
type Classification struct {
	kinds map[string]table.ColumnKind
	order []string
}

// Kind returns the classified kind of a column, or KindUnknown for a
// name that is not part of the classified table.
func (cl Classification) Kind(name string) table.ColumnKind {
	if k, ok := cl.kinds[name]; ok {
		return k
	}
	return table.KindUnknown
}

// Has reports whether the column was part of the classified table
func (cl Classification) Has(name string) bool {
	_, ok := cl.kinds[name]
	return ok
}

// Len returns the number of classified columns
func (cl Classification) Len() int {
	return len(cl.order)
}

// Kinds returns a copy of the name -> kind mapping
func (cl Classification) Kinds() map[string]table.ColumnKind {
	out := make(map[string]table.ColumnKind, len(cl.kinds))
	for name, kind := range cl.kinds {
		out[name] = kind
	}
	return out
}

// Numeric returns the numeric column names in table order
func (cl Classification) Numeric() []string {
	return cl.filter(table.KindNumeric)
}

// Categorical returns the categorical column names in table order
func (cl Classification) Categorical() []string {
	return cl.filter(table.KindCategorical)
}

// Temporal returns the temporal column names in table order
func (cl Classification) Temporal() []string {
	return cl.filter(table.KindTemporal)
}

func (cl Classification) filter(kind table.ColumnKind) []string {
	names := make([]string, 0, len(cl.order))
	for _, name := range cl.order {
		if cl.kinds[name] == kind {
			names = append(names, name)
		}
	}
	return names
}
