package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/hlecates/artifact-ijcar26-luna/internal/result"
)

// WriteSummary renders one tool's aggregate rows as an aligned table
// for the terminal.
func WriteSummary(tool result.Tool, rows []AggregateRow, w io.Writer) error {
	fmt.Fprintf(w, "\n%s\n", strings.ToUpper(string(tool)))
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "BENCHMARK\tTOTAL\tSOLVED\tTIMEOUT\tVERIFIED\tAVG WIDTH\tAVG TIME")
	fmt.Fprintln(tw, strings.Repeat("-", 80))
	for i := range rows {
		a := &rows[i]
		fmt.Fprintf(tw, "%s\t%d\t%d (%.2f%%)\t%d (%.2f%%)\t%d (%.2f%%)\t%s\t%s\n",
			a.Benchmark, a.Total,
			a.SolvedCount, a.SolvedPct,
			a.TimeoutCount, a.TimeoutPct,
			a.VerifiedCount, a.VerifiedPct,
			avgCell(a.AvgBoundWidth, 6),
			avgCell(a.AvgRuntime, 4))
	}
	return tw.Flush()
}
