package result

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

var instanceHeader = []string{
	"tool", "benchmark", "slurm_id", "onnx_file", "vnnlib_file",
	"status", "timed_out", "wall_time", "bound_width",
	"lower_bounds", "upper_bounds",
}

// WriteInstanceCSV writes one row per record. The column formats are
// frozen: downstream diffs against earlier runs depend on "--" for
// missing numerics, "TO" for timeouts, and the fixed precisions.
func WriteInstanceCSV(records []Record, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(instanceHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i := range records {
		r := &records[i]
		row := []string{
			string(r.Tool),
			r.Benchmark,
			r.JobID,
			r.OnnxFile,
			r.VnnlibFile,
			r.Status,
			timedOutCell(r.TimedOut),
			floatCell(r.WallTime, 4, ""),
			floatCell(r.BoundWidth, 6, "--"),
			boundsCell(r.LowerBounds),
			boundsCell(r.UpperBounds),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

func timedOutCell(timedOut bool) string {
	if timedOut {
		return "TO"
	}
	return ""
}

func floatCell(v *float64, prec int, missing string) string {
	if v == nil {
		return missing
	}
	return strconv.FormatFloat(*v, 'f', prec, 64)
}

func boundsCell(bounds []float64) string {
	if len(bounds) == 0 {
		return "--"
	}
	parts := make([]string, len(bounds))
	for i, b := range bounds {
		parts[i] = strconv.FormatFloat(b, 'g', -1, 64)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// InstanceRow is a per-instance CSV row read back verbatim. Numeric
// cells stay strings: the joiner copies them through unchanged, so
// reparsing would only lose the frozen formatting.
type InstanceRow struct {
	Tool       string
	Benchmark  string
	JobID      string
	OnnxFile   string
	VnnlibFile string
	Status     string
	TimedOut   string
	WallTime   string
	BoundWidth string
}

// ReadInstanceCSV parses a per-instance CSV written by WriteInstanceCSV.
func ReadInstanceCSV(path string) ([]InstanceRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	recs, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(recs) == 0 {
		return nil, nil
	}

	col := make(map[string]int, len(recs[0]))
	for i, name := range recs[0] {
		col[name] = i
	}
	cell := func(rec []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return rec[i]
	}

	var rows []InstanceRow
	for _, rec := range recs[1:] {
		rows = append(rows, InstanceRow{
			Tool:       cell(rec, "tool"),
			Benchmark:  cell(rec, "benchmark"),
			JobID:      cell(rec, "slurm_id"),
			OnnxFile:   cell(rec, "onnx_file"),
			VnnlibFile: cell(rec, "vnnlib_file"),
			Status:     cell(rec, "status"),
			TimedOut:   cell(rec, "timed_out"),
			WallTime:   cell(rec, "wall_time"),
			BoundWidth: cell(rec, "bound_width"),
		})
	}
	return rows, nil
}
