package parse

import (
	"regexp"
	"strings"
)

var (
	propStatusRe   = regexp.MustCompile(`(?m)^Property status:\s*(\w+)`)
	outputBoundsRe = regexp.MustCompile(`(?m)^Output Bounds:\s*\n(.+)`)
	boundPairRe    = regexp.MustCompile(`\[([-\d.]+),\s*([-\d.]+)\]`)
)

// LunaRun extracts status, invocation filenames and output bounds from
// a Luna run.out. Luna reports no in-log time; runtime comes solely
// from the runlim wrapper.
func LunaRun(content string) RunData {
	var d RunData
	d.OnnxFile, d.VnnlibFile = ArgsLine(content)

	if m := resultRe.FindStringSubmatch(content); m != nil {
		// unsat proves the property, sat disproves it with a
		// counterexample. Either way the instance was resolved.
		switch strings.ToLower(m[1]) {
		case "unsat", "sat":
			d.Status = "verified"
		default:
			d.Status = "unknown"
		}
	}

	// Older Luna builds reported "Property status:" instead.
	if d.Status == "" {
		if m := propStatusRe.FindStringSubmatch(content); m != nil {
			switch strings.ToUpper(m[1]) {
			case "VERIFIED", "VIOLATED":
				d.Status = "verified"
			default:
				d.Status = "unknown"
			}
		}
	}

	// One line of space-separated [lower, upper] pairs, one per output.
	if m := outputBoundsRe.FindStringSubmatch(content); m != nil {
		pairs := boundPairRe.FindAllStringSubmatch(strings.TrimSpace(m[1]), -1)
		for _, p := range pairs {
			lo := parseFloat(p[1])
			hi := parseFloat(p[2])
			if lo == nil || hi == nil {
				d.LowerBounds, d.UpperBounds = nil, nil
				break
			}
			d.LowerBounds = append(d.LowerBounds, *lo)
			d.UpperBounds = append(d.UpperBounds, *hi)
		}
	}
	return d
}
