package result

import "fmt"

// FilterCommon restricts both tools' record lists to the instances
// where both produced a usable result (a timeout counts; a job that
// crashed before the timing wrapper reported anything does not). Input
// order is preserved.
func FilterCommon(abcrown, luna []Record) (fa, fl []Record) {
	abcrownValid := validKeys(abcrown)
	lunaValid := validKeys(luna)

	common := make(map[Key]bool)
	for k := range abcrownValid {
		if lunaValid[k] {
			common[k] = true
		}
	}

	fmt.Printf("ABCrown instances with results: %d\n", len(abcrownValid))
	fmt.Printf("Luna instances with results: %d\n", len(lunaValid))
	fmt.Printf("Common instances (both tools have results): %d\n", len(common))

	return restrict(abcrown, common), restrict(luna, common)
}

func validKeys(records []Record) map[Key]bool {
	keys := make(map[Key]bool)
	for i := range records {
		if records[i].HasResult {
			keys[records[i].Key()] = true
		}
	}
	return keys
}

func restrict(records []Record, keep map[Key]bool) []Record {
	var out []Record
	for i := range records {
		if keep[records[i].Key()] {
			out = append(out, records[i])
		}
	}
	return out
}

// CommonBoundsKeys is the set of instances where both tools computed
// bounds. Bound-width and bound averages are restricted to this set so
// a tool that times out on hard instances does not look artificially
// tight on the easy remainder.
func CommonBoundsKeys(abcrown, luna []Record) map[Key]bool {
	return commonSolved(abcrown, luna)
}

// CommonFinishedKeys gates the runtime averages. It is deliberately the
// same set as CommonBoundsKeys: "finished" here means solved, not
// merely terminated.
func CommonFinishedKeys(abcrown, luna []Record) map[Key]bool {
	return commonSolved(abcrown, luna)
}

func commonSolved(abcrown, luna []Record) map[Key]bool {
	solved := func(records []Record) map[Key]bool {
		keys := make(map[Key]bool)
		for i := range records {
			if records[i].BoundWidth != nil {
				keys[records[i].Key()] = true
			}
		}
		return keys
	}
	a := solved(abcrown)
	l := solved(luna)
	common := make(map[Key]bool)
	for k := range a {
		if l[k] {
			common[k] = true
		}
	}
	return common
}
