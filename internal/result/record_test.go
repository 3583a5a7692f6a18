package result_test

import (
	"math"
	"testing"

	"github.com/hlecates/artifact-ijcar26-luna/internal/result"
)

func TestBoundWidth(t *testing.T) {
	tests := []struct {
		name  string
		lower []float64
		upper []float64
		want  *float64
	}{
		{"both present", []float64{0.1, 0.2}, []float64{0.3, 0.5}, f(0.25)},
		{"luna scenario", []float64{0.05, 0.15}, []float64{0.35, 0.55}, f(0.35)},
		{"lower missing", nil, []float64{0.3}, nil},
		{"upper missing", []float64{0.1}, nil, nil},
		{"both missing", nil, nil, nil},
		{"length mismatch", []float64{0.1, 0.2}, []float64{0.3}, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := result.BoundWidth(tc.lower, tc.upper)
			if (got == nil) != (tc.want == nil) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			if got != nil && math.Abs(*got-*tc.want) > 1e-9 {
				t.Errorf("got %v, want %v", *got, *tc.want)
			}
		})
	}
}

func TestDerive(t *testing.T) {
	solved := result.Record{LowerBounds: []float64{0}, UpperBounds: []float64{1}}
	solved.Derive()
	if solved.BoundWidth == nil || !solved.HasResult {
		t.Errorf("solved record: BoundWidth=%v HasResult=%v", solved.BoundWidth, solved.HasResult)
	}

	timedOut := result.Record{TimedOut: true}
	timedOut.Derive()
	if timedOut.BoundWidth != nil {
		t.Errorf("timed-out record: BoundWidth=%v, want nil", timedOut.BoundWidth)
	}
	if !timedOut.HasResult {
		t.Error("timed-out record should have a result")
	}

	empty := result.Record{}
	empty.Derive()
	if empty.HasResult {
		t.Error("record with no bounds and no timeout should have no result")
	}
}

func TestRecordMeans(t *testing.T) {
	r := result.Record{LowerBounds: []float64{0.05, 0.15}, UpperBounds: []float64{0.35, 0.55}}
	if m := r.MeanLower(); m == nil || math.Abs(*m-0.1) > 1e-9 {
		t.Errorf("mean lower: got %v, want 0.1", m)
	}
	if m := r.MeanUpper(); m == nil || math.Abs(*m-0.45) > 1e-9 {
		t.Errorf("mean upper: got %v, want 0.45", m)
	}
	var none result.Record
	if none.MeanLower() != nil || none.MeanUpper() != nil {
		t.Error("expected nil means for a record without bounds")
	}
}

func f(v float64) *float64 { return &v }
