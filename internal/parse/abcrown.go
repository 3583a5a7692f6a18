package parse

import (
	"regexp"
	"strings"
)

var (
	alphaLowerRe = regexp.MustCompile(`initial alpha-crown lower bounds:\s*\[([-\d.,\s]+)\]`)
	alphaUpperRe = regexp.MustCompile(`initial alpha-crown upper bounds:\s*\[([-\d.,\s]+)\]`)
	crownLowerRe = regexp.MustCompile(`initial CROWN lower bounds:\s*\[([-\d.,\s]+)\]`)
	crownUpperRe = regexp.MustCompile(`initial CROWN upper bounds:\s*\[([-\d.,\s]+)\]`)
)

// ABCrownRun extracts status, time, invocation filenames and output
// bounds from an alpha-beta-CROWN run.out. The refined alpha-crown
// bounds are preferred; the coarser initial CROWN bounds are a
// fallback.
func ABCrownRun(content string) RunData {
	var d RunData
	d.OnnxFile, d.VnnlibFile = ArgsLine(content)

	if m := resultRe.FindStringSubmatch(content); m != nil {
		status := strings.ToLower(m[1])
		if status == "unsat" {
			d.Status = "verified"
		} else {
			// timeout, unknown, ... kept verbatim
			d.Status = status
		}
	}

	if m := timeRe.FindStringSubmatch(content); m != nil {
		d.Time = parseFloat(m[1])
	}

	d.LowerBounds = boundList(content, alphaLowerRe, crownLowerRe)
	d.UpperBounds = boundList(content, alphaUpperRe, crownUpperRe)
	return d
}

func boundList(content string, preferred, fallback *regexp.Regexp) []float64 {
	m := preferred.FindStringSubmatch(content)
	if m == nil {
		m = fallback.FindStringSubmatch(content)
	}
	if m == nil {
		return nil
	}
	return parseFloatList(m[1])
}
