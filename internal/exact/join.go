// Package exact joins the two tools' per-instance tables into one CSV
// per benchmark, pairing bound widths and runtimes by instance.
package exact

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/hlecates/artifact-ijcar26-luna/internal/result"
)

type instanceKey struct {
	Benchmark  string
	OnnxFile   string
	VnnlibFile string
}

var joinedHeader = []string{
	"onnx_file", "vnnlib_file",
	"abcrown_bound_width", "luna_bound_width",
	"abcrown_runtime", "luna_runtime",
}

// Join reads <outputDir>/{abcrown,luna}_instances.csv and writes one
// <benchmark>_results.csv per benchmark into exactDir. Missing inputs
// are fatal: they mean the compile stage never ran. The instance files
// are filtered to common instances at compile time, so a key present
// for only one tool signals inconsistent inputs and is reported rather
// than papered over.
func Join(outputDir, exactDir string) error {
	abcrown, err := loadInstances(filepath.Join(outputDir, "abcrown_instances.csv"))
	if err != nil {
		return err
	}
	fmt.Printf("Parsed %d AB-CROWN instances\n", len(abcrown))

	luna, err := loadInstances(filepath.Join(outputDir, "luna_instances.csv"))
	if err != nil {
		return err
	}
	fmt.Printf("Parsed %d Luna instances\n", len(luna))

	if err := os.MkdirAll(exactDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", exactDir, err)
	}

	for _, benchmark := range benchmarks(abcrown, luna) {
		path := filepath.Join(exactDir, benchmark+"_results.csv")
		n, err := writeBenchmark(benchmark, abcrown, luna, path)
		if err != nil {
			return err
		}
		fmt.Printf("Created %s with %d instances\n", path, n)
	}
	return nil
}

func loadInstances(path string) (map[instanceKey]result.InstanceRow, error) {
	rows, err := result.ReadInstanceCSV(path)
	if err != nil {
		return nil, err
	}
	instances := make(map[instanceKey]result.InstanceRow, len(rows))
	for _, row := range rows {
		key := instanceKey{row.Benchmark, row.OnnxFile, row.VnnlibFile}
		instances[key] = row
	}
	return instances, nil
}

func benchmarks(maps ...map[instanceKey]result.InstanceRow) []string {
	seen := make(map[string]bool)
	for _, m := range maps {
		for k := range m {
			seen[k.Benchmark] = true
		}
	}
	names := make([]string, 0, len(seen))
	for b := range seen {
		names = append(names, b)
	}
	sort.Strings(names)
	return names
}

func writeBenchmark(benchmark string, abcrown, luna map[instanceKey]result.InstanceRow, path string) (int, error) {
	type pair struct{ onnx, vnnlib string }
	seen := make(map[pair]bool)
	for _, m := range []map[instanceKey]result.InstanceRow{abcrown, luna} {
		for k := range m {
			if k.Benchmark == benchmark {
				seen[pair{k.OnnxFile, k.VnnlibFile}] = true
			}
		}
	}
	pairs := make([]pair, 0, len(seen))
	for p := range seen {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].onnx != pairs[j].onnx {
			return pairs[i].onnx < pairs[j].onnx
		}
		return pairs[i].vnnlib < pairs[j].vnnlib
	})

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(joinedHeader); err != nil {
		return 0, fmt.Errorf("writing header: %w", err)
	}
	for _, p := range pairs {
		key := instanceKey{benchmark, p.onnx, p.vnnlib}
		a, aok := abcrown[key]
		l, lok := luna[key]
		if !aok || !lok {
			fmt.Printf("Warning: %s/%s/%s present for only one tool\n", benchmark, p.onnx, p.vnnlib)
		}
		rec := []string{
			p.onnx, p.vnnlib,
			a.BoundWidth, l.BoundWidth,
			a.WallTime, l.WallTime,
		}
		if err := w.Write(rec); err != nil {
			return 0, fmt.Errorf("writing row: %w", err)
		}
	}
	w.Flush()
	return len(pairs), w.Error()
}
