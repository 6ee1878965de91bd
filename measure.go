package intersect

import (
	"time"

	"github.com/rs/xid"
)

// Report describes one timed intersection call.
type Report struct {
	ID        string        `json:"id"`
	Strategy  string        `json:"strategy"`
	LenA      int           `json:"len_a"`
	LenB      int           `json:"len_b"`
	ResultLen int           `json:"result_len"`
	Elapsed   time.Duration `json:"elapsed"`
	Result    []int32       `json:"result,omitempty"`
}

// Milliseconds returns the elapsed wall-clock time in whole milliseconds.
func (r Report) Milliseconds() int64 {
	return int64(r.Elapsed / time.Millisecond)
}

// Measure times a single call of the named strategy.
// Only the in-place strategy reorders a and b.
func Measure(strategy string, a, b []int32) (*Report, error) {
	fn, err := FindStrategy(strategy)
	if err != nil {
		return nil, err
	}
	lenA, lenB := len(a), len(b)
	start := time.Now()
	result := fn(a, b)
	elapsed := time.Since(start)
	return &Report{
		ID:        xid.New().String(),
		Strategy:  strategy,
		LenA:      lenA,
		LenB:      lenB,
		ResultLen: len(result),
		Elapsed:   elapsed,
		Result:    result,
	}, nil
}

// MeasureWorkload runs every named strategy against fresh copies of w's arrays,
// so an in-place strategy can't affect the ones after it.
func MeasureWorkload(w *Workload, strategies ...string) ([]*Report, error) {
	if len(strategies) == 0 {
		strategies = Strategies()
	}
	reports := make([]*Report, 0, len(strategies))
	errs := &CombinedError{Message: "measure workload"}
	for _, strategy := range strategies {
		report, err := Measure(strategy, clone(w.A), clone(w.B))
		if err != nil {
			errs.append(err)
			continue
		}
		reports = append(reports, report)
	}
	return reports, errs.errorOrNil()
}
