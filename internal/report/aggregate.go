// Package report computes per-benchmark aggregates and renders them as
// CSV tables and a stdout summary.
package report

import (
	"sort"

	"github.com/hlecates/artifact-ijcar26-luna/internal/result"
)

// AggregateRow is one benchmark's totals for one tool. The averages are
// computed over the comparable-subset keys only, so the two tools'
// numbers describe the same instances.
type AggregateRow struct {
	Benchmark     string
	Total         int
	SolvedCount   int
	SolvedPct     float64
	TimeoutCount  int
	TimeoutPct    float64
	VerifiedCount int
	VerifiedPct   float64
	AvgBoundWidth *float64
	AvgLowerBound *float64
	AvgUpperBound *float64
	AvgRuntime    *float64
}

// Aggregate groups records by benchmark and computes one row each,
// sorted by benchmark name. boundsKeys gates the bound averages and
// finishedKeys gates the runtime average; records outside those sets
// still count toward the totals and percentages.
func Aggregate(records []result.Record, boundsKeys, finishedKeys map[result.Key]bool) []AggregateRow {
	byBenchmark := make(map[string][]*result.Record)
	for i := range records {
		r := &records[i]
		byBenchmark[r.Benchmark] = append(byBenchmark[r.Benchmark], r)
	}

	benchmarks := make([]string, 0, len(byBenchmark))
	for b := range byBenchmark {
		benchmarks = append(benchmarks, b)
	}
	sort.Strings(benchmarks)

	rows := make([]AggregateRow, 0, len(benchmarks))
	for _, benchmark := range benchmarks {
		rows = append(rows, aggregateBenchmark(benchmark, byBenchmark[benchmark], boundsKeys, finishedKeys))
	}
	return rows
}

func aggregateBenchmark(benchmark string, instances []*result.Record, boundsKeys, finishedKeys map[result.Key]bool) AggregateRow {
	row := AggregateRow{Benchmark: benchmark, Total: len(instances)}

	for _, r := range instances {
		if r.BoundWidth != nil {
			row.SolvedCount++
		} else {
			row.TimeoutCount++
		}
		if r.Status == result.StatusVerified {
			row.VerifiedCount++
		}
	}
	if row.Total > 0 {
		row.SolvedPct = float64(row.SolvedCount) / float64(row.Total) * 100
		row.TimeoutPct = float64(row.TimeoutCount) / float64(row.Total) * 100
		row.VerifiedPct = float64(row.VerifiedCount) / float64(row.Total) * 100
	}

	var widths, lowers, uppers, times []float64
	for _, r := range instances {
		if boundsKeys[r.Key()] {
			if r.BoundWidth != nil {
				widths = append(widths, *r.BoundWidth)
			}
			if m := r.MeanLower(); m != nil {
				lowers = append(lowers, *m)
			}
			if m := r.MeanUpper(); m != nil {
				uppers = append(uppers, *m)
			}
		}
		if finishedKeys[r.Key()] && r.WallTime != nil {
			times = append(times, *r.WallTime)
		}
	}
	row.AvgBoundWidth = meanOrNil(widths)
	row.AvgLowerBound = meanOrNil(lowers)
	row.AvgUpperBound = meanOrNil(uppers)
	row.AvgRuntime = meanOrNil(times)
	return row
}

func meanOrNil(vals []float64) *float64 {
	if len(vals) == 0 {
		return nil
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	m := sum / float64(len(vals))
	return &m
}
