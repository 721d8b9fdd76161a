package chart

// Kind identifies one of the supported chart types
type Kind string

const (
	KindBar       Kind = "bar"
	KindLine      Kind = "line"
	KindPie       Kind = "pie"
	KindScatter   Kind = "scatter"
	KindHistogram Kind = "histogram"
)

// String returns the string representation
func (k Kind) String() string {
	return string(k)
}

// Valid reports whether the kind is one of the supported chart types
func (k Kind) Valid() bool {
	switch k {
	case KindBar, KindLine, KindPie, KindScatter, KindHistogram:
		return true
	}
	return false
}

// Aggregation describes how the renderer must pre-aggregate rows
// before plotting.
type Aggregation string

const (
	// AggregationNone plots rows as-is.
	AggregationNone Aggregation = "none"
	// AggregationSum groups rows by the X column and sums Y per group.
	AggregationSum Aggregation = "sum"
)

// Spec is a validated, immutable description of one chart to render.
// It is constructed only by the resolver, after every referenced column
// has been checked against the current classification; a Spec is never
// partially valid.
type Spec struct {
	Kind  Kind   `json:"kind"`
	Title string `json:"title"`

	// X is the primary column: the category/x axis for bar, line and
	// scatter, the names column for pie, the histogram column.
	X string `json:"x"`
	// Y is the value column; empty for histograms.
	Y string `json:"y,omitempty"`

	// Optional roles. Empty string means the role was not selected.
	Group string `json:"group,omitempty"`
	Color string `json:"color,omitempty"`
	Size  string `json:"size,omitempty"`

	Aggregation Aggregation `json:"aggregation"`

	// BinCount is set only for histograms, always within [5, 100].
	BinCount int `json:"bin_count,omitempty"`
}

// Selection carries the user's raw chart parameters before validation.
// Empty strings mean "not selected"; BinCount nil means the user left
// the bin control untouched.
type Selection struct {
	Kind Kind `json:"kind"`

	X      string `json:"x"`
	Y      string `json:"y"`
	Group  string `json:"group"`
	Color  string `json:"color"`
	Size   string `json:"size"`
	Names  string `json:"names"`
	Values string `json:"values"`
	Column string `json:"column"`

	BinCount *int `json:"bin_count"`
}
