package result

// Tool identifies which verifier produced a record.
type Tool string

const (
	ToolABCrown Tool = "abcrown"
	ToolLuna    Tool = "luna"
)

// Status values after normalization. Tool A passes unrecognized raw
// tokens through lowercased, so Status is a plain string rather than a
// closed enum.
const (
	StatusVerified = "verified"
	StatusTimeout  = "timeout"
	StatusUnknown  = "unknown"
)

// Record is one verification attempt of one model/property pair by one
// tool. Pointer fields are nil when the corresponding value could not
// be parsed from the logs.
type Record struct {
	Tool        Tool
	Benchmark   string
	JobID       string
	OnnxFile    string
	VnnlibFile  string
	Status      string
	WallTime    *float64
	TimedOut    bool
	LowerBounds []float64
	UpperBounds []float64

	// Derived at collection time, never recomputed afterwards.
	BoundWidth *float64
	HasResult  bool
}

// Key identifies an instance across tools within one run.
type Key struct {
	Benchmark string
	JobID     string
}

func (r *Record) Key() Key {
	return Key{Benchmark: r.Benchmark, JobID: r.JobID}
}

// Derive fills BoundWidth and HasResult from the parsed fields.
func (r *Record) Derive() {
	r.BoundWidth = BoundWidth(r.LowerBounds, r.UpperBounds)
	r.HasResult = r.TimedOut || r.BoundWidth != nil
}

// BoundWidth is the mean of the per-output interval widths. It is
// defined only when both bound lists are present and of equal length.
func BoundWidth(lower, upper []float64) *float64 {
	if len(lower) == 0 || len(upper) == 0 {
		return nil
	}
	if len(lower) != len(upper) {
		return nil
	}
	var sum float64
	for i := range lower {
		sum += upper[i] - lower[i]
	}
	w := sum / float64(len(lower))
	return &w
}

func mean(vals []float64) float64 {
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

// MeanLower is the mean of the record's own lower bounds, or nil when
// no bounds were parsed.
func (r *Record) MeanLower() *float64 {
	if len(r.LowerBounds) == 0 {
		return nil
	}
	m := mean(r.LowerBounds)
	return &m
}

func (r *Record) MeanUpper() *float64 {
	if len(r.UpperBounds) == 0 {
		return nil
	}
	m := mean(r.UpperBounds)
	return &m
}
