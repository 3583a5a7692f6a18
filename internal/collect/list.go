package collect

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hlecates/artifact-ijcar26-luna/internal/config"
)

type BenchmarkInfo struct {
	Name string
	Jobs int
}

// Benchmarks scans a results root without parsing any logs and reports
// each benchmark with the number of job directories it holds.
func Benchmarks(root string, layout config.Layout) ([]BenchmarkInfo, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", root, err)
	}
	var infos []BenchmarkInfo
	for _, entry := range entries {
		if !entry.IsDir() || skipDir(entry.Name(), layout.SkipDirs) {
			continue
		}
		jobs := jobDirs(filepath.Join(root, entry.Name()), layout.JobPrefix)
		infos = append(infos, BenchmarkInfo{Name: entry.Name(), Jobs: len(jobs)})
	}
	return infos, nil
}
