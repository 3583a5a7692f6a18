package parse

import (
	"regexp"
	"strings"
)

var (
	runlimRealRe   = regexp.MustCompile(`\[runlim\]\s*real:\s*([\d.]+)\s*seconds`)
	runlimStatusRe = regexp.MustCompile(`\[runlim\]\s*status:\s*(.+)`)
)

// RunlimLog extracts the wall-clock time and timeout verdict from a
// runlim output.log. The verdict is independent of whatever the tool
// itself printed.
func RunlimLog(content string) (wallTime *float64, timedOut bool) {
	if m := runlimRealRe.FindStringSubmatch(content); m != nil {
		wallTime = parseFloat(m[1])
	}
	if m := runlimStatusRe.FindStringSubmatch(content); m != nil {
		timedOut = strings.ToLower(strings.TrimSpace(m[1])) == "out of time"
	}
	return wallTime, timedOut
}
