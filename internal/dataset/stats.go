package dataset

import (
	"github.com/montanaflynn/stats"

	"contactdesk/domain/table"
)

// FollowerSummary describes the followers column of a dataset, used to
// seed the range filter bounds on the page.
type FollowerSummary struct {
	Present bool
	Min     float64
	Max     float64
	Mean    float64
}

// SummarizeFollowers computes min/max/mean over the followers column with
// missing values counted as zero. Present is false when the table has no
// followers column or no rows.
func SummarizeFollowers(t *table.Table) FollowerSummary {
	if !t.HasColumn(FollowersColumn) || t.Len() == 0 {
		return FollowerSummary{}
	}

	values := make([]float64, t.Len())
	for i, row := range t.Rows {
		values[i] = FollowerValue(row)
	}

	min, err := stats.Min(values)
	if err != nil {
		return FollowerSummary{}
	}
	max, _ := stats.Max(values)
	mean, _ := stats.Mean(values)

	return FollowerSummary{Present: true, Min: min, Max: max, Mean: mean}
}
