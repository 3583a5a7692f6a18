// Package parse extracts fields from verifier log text. Every extractor
// is independent: a field that does not match, or matches with a
// malformed number, is simply absent. Nothing in here returns an error.
package parse

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// RunData holds the fields extracted from a primary log (run.out).
// Zero values mean the field was not found.
type RunData struct {
	OnnxFile    string
	VnnlibFile  string
	Status      string
	Time        *float64
	LowerBounds []float64
	UpperBounds []float64
}

var (
	argsRe   = regexp.MustCompile(`(?m)^c args:\s+(.+)$`)
	resultRe = regexp.MustCompile(`(?m)^Result:\s*(\w+)`)
	timeRe   = regexp.MustCompile(`(?m)^Time:\s*([\d.]+)`)
)

// ArgsLine pulls the model and property filenames out of the recorded
// invocation line, recognized by extension and reduced to basenames.
func ArgsLine(content string) (onnx, vnnlib string) {
	m := argsRe.FindStringSubmatch(content)
	if m == nil {
		return "", ""
	}
	for _, arg := range strings.Fields(strings.TrimSpace(m[1])) {
		switch {
		case strings.HasSuffix(arg, ".onnx"):
			onnx = filepath.Base(arg)
		case strings.HasSuffix(arg, ".vnnlib"):
			vnnlib = filepath.Base(arg)
		}
	}
	return onnx, vnnlib
}

func parseFloat(s string) *float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// parseFloatList parses a comma-separated numeric list. Any malformed
// element discards the whole list, matching all-or-nothing bound
// extraction.
func parseFloatList(s string) []float64 {
	parts := strings.Split(s, ",")
	vals := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil
		}
		vals = append(vals, v)
	}
	return vals
}
