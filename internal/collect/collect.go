// Package collect walks a tool's results tree and turns each job
// directory into one result.Record.
package collect

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/hlecates/artifact-ijcar26-luna/internal/config"
	"github.com/hlecates/artifact-ijcar26-luna/internal/parse"
	"github.com/hlecates/artifact-ijcar26-luna/internal/result"
)

// Tool collects all records under root for the named tool. The tree is
// <root>/<benchmark>/<prefix><id>/ with benchmarks visited in lexical
// order and jobs in ascending numeric-id order, so repeated runs over
// the same tree produce byte-identical output. A missing root warns
// and yields no records.
func Tool(tool result.Tool, root string, layout config.Layout) []result.Record {
	var records []result.Record

	if _, err := os.Stat(root); err != nil {
		fmt.Printf("Warning: %s does not exist\n", root)
		return records
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		fmt.Printf("Warning: reading %s: %v\n", root, err)
		return records
	}

	for _, entry := range entries {
		if !entry.IsDir() || skipDir(entry.Name(), layout.SkipDirs) {
			continue
		}
		benchmark := entry.Name()
		benchDir := filepath.Join(root, benchmark)
		for _, jobName := range jobDirs(benchDir, layout.JobPrefix) {
			rec := collectJob(tool, benchmark, filepath.Join(benchDir, jobName), jobName, layout)
			if rec != nil {
				records = append(records, *rec)
			}
		}
	}
	return records
}

func skipDir(name string, skip []string) bool {
	for _, s := range skip {
		if name == s {
			return true
		}
	}
	return false
}

// jobDirs lists the job subdirectories of benchDir in ascending numeric
// id order. Ids that do not parse sort as 0, keeping their lexical
// order among themselves.
func jobDirs(benchDir, prefix string) []string {
	entries, err := os.ReadDir(benchDir)
	if err != nil {
		fmt.Printf("Warning: reading %s: %v\n", benchDir, err)
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() && strings.HasPrefix(e.Name(), prefix) {
			names = append(names, e.Name())
		}
	}
	sort.SliceStable(names, func(i, j int) bool {
		return jobSortKey(names[i], prefix) < jobSortKey(names[j], prefix)
	})
	return names
}

func jobSortKey(name, prefix string) int {
	n, err := strconv.Atoi(jobID(name, prefix))
	if err != nil {
		return 0
	}
	return n
}

// jobID is the first dash-separated segment after the prefix, so
// "slurm-123" and "slurm-123-retry" both map to id "123".
func jobID(name, prefix string) string {
	rest := strings.TrimPrefix(name, prefix)
	if i := strings.Index(rest, "-"); i >= 0 {
		rest = rest[:i]
	}
	return rest
}

// collectJob builds the record for one job directory, or nil when the
// primary log is missing entirely. An unreadable primary log still
// yields a record: the timing wrapper's log may carry a timeout signal
// on its own.
func collectJob(tool result.Tool, benchmark, jobDir, jobName string, layout config.Layout) *result.Record {
	primary := filepath.Join(jobDir, layout.PrimaryLog)
	if _, err := os.Stat(primary); err != nil {
		return nil
	}

	var data parse.RunData
	if content, err := os.ReadFile(primary); err == nil {
		if tool == result.ToolABCrown {
			data = parse.ABCrownRun(string(content))
		} else {
			data = parse.LunaRun(string(content))
		}
	}

	var wallTime *float64
	var timedOut bool
	if content, err := os.ReadFile(filepath.Join(jobDir, layout.SecondaryLog)); err == nil {
		wallTime, timedOut = parse.RunlimLog(string(content))
	}

	rec := &result.Record{
		Tool:        tool,
		Benchmark:   benchmark,
		JobID:       jobID(jobName, layout.JobPrefix),
		OnnxFile:    data.OnnxFile,
		VnnlibFile:  data.VnnlibFile,
		Status:      data.Status,
		WallTime:    wallTime,
		TimedOut:    timedOut,
		LowerBounds: data.LowerBounds,
		UpperBounds: data.UpperBounds,
	}
	rec.Derive()
	return rec
}
