package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeJob(t *testing.T, root, benchmark, job, runOut, outputLog string) {
	t.Helper()
	dir := filepath.Join(root, benchmark, job)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "run.out"), []byte(runOut), 0o644); err != nil {
		t.Fatal(err)
	}
	if outputLog != "" {
		if err := os.WriteFile(filepath.Join(dir, "output.log"), []byte(outputLog), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func runlim(seconds float64, timedOut bool) string {
	status := "ok"
	if timedOut {
		status = "out of time"
	}
	return fmt.Sprintf("[runlim] real:\t\t%.2f seconds\n[runlim] status:\t\t%s\n", seconds, status)
}

func abcrownOut(onnx, vnnlib, result, bounds string) string {
	return fmt.Sprintf("c args: --onnx /nets/%s --vnnlib /props/%s\nResult: %s\n%s", onnx, vnnlib, result, bounds)
}

func lunaOut(onnx, vnnlib, result, bounds string) string {
	return fmt.Sprintf("c args: /nets/%s /props/%s\nResult: %s\n%s", onnx, vnnlib, result, bounds)
}

// Drives both stages end to end over a fixture tree covering the three
// comparison cases: both solved, one timed out, one with no result.
func TestCompileAndExactPipeline(t *testing.T) {
	base := t.TempDir()
	abcrownRoot := filepath.Join(base, "abcrown")
	lunaRoot := filepath.Join(base, "luna")
	outputDir := filepath.Join(base, "output")
	exactDir := filepath.Join(base, "exact_results")

	abcrownBounds := "initial alpha-crown lower bounds: [0.1, 0.2]\ninitial alpha-crown upper bounds: [0.3, 0.5]\n"
	lunaBounds := "Output Bounds:\n[0.05, 0.35] [0.15, 0.55]\n"

	// Job 1: both tools solve.
	writeJob(t, abcrownRoot, "B1", "slurm-1", abcrownOut("net1.onnx", "p1.vnnlib", "unsat", abcrownBounds), runlim(2.0, false))
	writeJob(t, lunaRoot, "B1", "slurm-1", lunaOut("net1.onnx", "p1.vnnlib", "unsat", lunaBounds), runlim(1.5, false))

	// Job 2: abcrown times out, luna solves. Retained, but excluded
	// from both tools' bound and runtime averages.
	writeJob(t, abcrownRoot, "B1", "slurm-2", abcrownOut("net2.onnx", "p2.vnnlib", "timeout", ""), runlim(300.0, true))
	writeJob(t, lunaRoot, "B1", "slurm-2", lunaOut("net2.onnx", "p2.vnnlib", "sat", lunaBounds), runlim(3.0, false))

	// Job 3: abcrown crashed with nothing usable; excluded entirely.
	writeJob(t, abcrownRoot, "B1", "slurm-3", "garbled\n", "")
	writeJob(t, lunaRoot, "B1", "slurm-3", lunaOut("net3.onnx", "p3.vnnlib", "unsat", lunaBounds), runlim(1.0, false))

	root := NewRootCmd()
	root.SetArgs([]string{"compile", lunaRoot, abcrownRoot, "-o", outputDir})
	if err := root.Execute(); err != nil {
		t.Fatalf("compile: %v", err)
	}

	for _, tool := range []string{"abcrown", "luna"} {
		data, err := os.ReadFile(filepath.Join(outputDir, tool+"_instances.csv"))
		if err != nil {
			t.Fatalf("reading %s instances: %v", tool, err)
		}
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		if len(lines) != 3 {
			t.Errorf("%s: got %d instance rows, want 2", tool, len(lines)-1)
		}
		if strings.Contains(string(data), "net3.onnx") {
			t.Errorf("%s: job 3 should be filtered out", tool)
		}
	}

	agg, err := os.ReadFile(filepath.Join(outputDir, "abcrown_aggregated.csv"))
	if err != nil {
		t.Fatalf("reading aggregates: %v", err)
	}
	aggLines := strings.Split(strings.TrimSpace(string(agg)), "\n")
	if len(aggLines) != 2 {
		t.Fatalf("got %d aggregate rows, want 1", len(aggLines)-1)
	}
	// Averages cover job 1 only: width 0.25, runtime 2.0.
	if !strings.Contains(aggLines[1], "0.250000") {
		t.Errorf("avg bound width should be 0.250000: %s", aggLines[1])
	}
	if !strings.Contains(aggLines[1], "2.0000") {
		t.Errorf("avg runtime should be 2.0000: %s", aggLines[1])
	}
	if strings.Contains(aggLines[1], "300.0000") {
		t.Errorf("timed-out runtime must not enter the average: %s", aggLines[1])
	}

	root = NewRootCmd()
	root.SetArgs([]string{"exact", "--output", outputDir, "--results", exactDir})
	if err := root.Execute(); err != nil {
		t.Fatalf("exact: %v", err)
	}

	joined, err := os.ReadFile(filepath.Join(exactDir, "B1_results.csv"))
	if err != nil {
		t.Fatalf("reading joined csv: %v", err)
	}
	joinedLines := strings.Split(strings.TrimSpace(string(joined)), "\n")
	if len(joinedLines) != 3 {
		t.Fatalf("got %d joined rows, want 2", len(joinedLines)-1)
	}
	if !strings.HasPrefix(joinedLines[1], "net1.onnx,p1.vnnlib,") {
		t.Errorf("unexpected first joined row: %s", joinedLines[1])
	}
	// Job 2: abcrown has no bound width ("--" carried through), luna does.
	if !strings.Contains(joinedLines[2], "--") {
		t.Errorf("abcrown's missing width should carry through: %s", joinedLines[2])
	}
}
