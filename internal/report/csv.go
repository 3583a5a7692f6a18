package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

var aggregateHeader = []string{
	"benchmark", "total_instances",
	"solved_count", "solved_pct",
	"timeout_count", "timeout_pct",
	"verified_count", "verified_pct",
	"avg_bound_width", "avg_lower_bound", "avg_upper_bound", "avg_runtime",
}

// WriteAggregateCSV writes one row per benchmark. Percentages carry two
// decimals, bound statistics six, runtimes four; missing averages
// render as "--".
func WriteAggregateCSV(rows []AggregateRow, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(aggregateHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i := range rows {
		a := &rows[i]
		rec := []string{
			a.Benchmark,
			strconv.Itoa(a.Total),
			strconv.Itoa(a.SolvedCount),
			strconv.FormatFloat(a.SolvedPct, 'f', 2, 64),
			strconv.Itoa(a.TimeoutCount),
			strconv.FormatFloat(a.TimeoutPct, 'f', 2, 64),
			strconv.Itoa(a.VerifiedCount),
			strconv.FormatFloat(a.VerifiedPct, 'f', 2, 64),
			avgCell(a.AvgBoundWidth, 6),
			avgCell(a.AvgLowerBound, 6),
			avgCell(a.AvgUpperBound, 6),
			avgCell(a.AvgRuntime, 4),
		}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

func avgCell(v *float64, prec int) string {
	if v == nil {
		return "--"
	}
	return strconv.FormatFloat(*v, 'f', prec, 64)
}
