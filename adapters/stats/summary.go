package stats

import (
	"fmt"
	"strconv"

	"sheetviz/adapters/classify"
	"sheetviz/domain/table"

	"github.com/montanaflynn/stats"
)

// ColumnSummary holds descriptive statistics for one numeric column
type ColumnSummary struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Missing int     `json:"missing"`
	Mean    float64 `json:"mean"`
	Median  float64 `json:"median"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	StdDev  float64 `json:"std_dev"`
	Q1      float64 `json:"q1"`
	Q3      float64 `json:"q3"`
}

// Summarizer computes describe()-style statistics for the numeric
// columns of a table snapshot.
type Summarizer struct{}

// NewSummarizer creates a summarizer
func NewSummarizer() *Summarizer {
	return &Summarizer{}
}

// Summarize returns one summary per numeric column, in table order.
// Non-numeric columns are skipped; a table with no numeric columns
// yields an empty slice.
func (s *Summarizer) Summarize(t *table.Table, cl classify.Classification) ([]ColumnSummary, error) {
	numeric := cl.Numeric()
	summaries := make([]ColumnSummary, 0, len(numeric))

	for _, name := range numeric {
		col, ok := t.Column(name)
		if !ok {
			continue
		}
		summary, err := s.summarizeColumn(col)
		if err != nil {
			return nil, fmt.Errorf("failed to summarize column %q: %w", name, err)
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *Summarizer) summarizeColumn(col table.Column) (ColumnSummary, error) {
	summary := ColumnSummary{Name: col.Name}

	data := make([]float64, 0, len(col.Values))
	for _, raw := range col.Values {
		if raw == "" {
			summary.Missing++
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return summary, fmt.Errorf("non-numeric value %q", raw)
		}
		data = append(data, v)
	}
	summary.Count = len(data)
	if summary.Count == 0 {
		return summary, nil
	}

	mean, err := stats.Mean(data)
	if err != nil {
		return summary, err
	}
	median, err := stats.Median(data)
	if err != nil {
		return summary, err
	}
	min, err := stats.Min(data)
	if err != nil {
		return summary, err
	}
	max, err := stats.Max(data)
	if err != nil {
		return summary, err
	}

	summary.Mean = mean
	summary.Median = median
	summary.Min = min
	summary.Max = max

	// StandardDeviation and Percentile need at least two points to say
	// anything useful; a single observation keeps the zero values.
	if summary.Count > 1 {
		stdDev, err := stats.StandardDeviation(data)
		if err != nil {
			return summary, err
		}
		q1, err := stats.Percentile(data, 25)
		if err != nil {
			return summary, err
		}
		q3, err := stats.Percentile(data, 75)
		if err != nil {
			return summary, err
		}
		summary.StdDev = stdDev
		summary.Q1 = q1
		summary.Q3 = q3
	}

	return summary, nil
}
