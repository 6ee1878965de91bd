package intersect

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeasure(t *testing.T) {
	a := []int32{1, 2, 2, 1}
	b := []int32{2, 2}
	report, err := Measure(StrategySortMerge, a, b)
	assert.Nil(t, err)
	assert.NotEmpty(t, report.ID)
	assert.Equal(t, StrategySortMerge, report.Strategy)
	assert.Equal(t, 4, report.LenA)
	assert.Equal(t, 2, report.LenB)
	assert.Equal(t, 2, report.ResultLen)
	assert.Equal(t, []int32{2, 2}, report.Result)
	assert.GreaterOrEqual(t, report.Milliseconds(), int64(0))
	assert.Equal(t, []int32{1, 2, 2, 1}, a)

	other, err := Measure(StrategySortMerge, a, b)
	assert.Nil(t, err)
	assert.NotEqual(t, report.ID, other.ID)
}

func TestMeasure_UnknownStrategy(t *testing.T) {
	report, err := Measure("bogo", nil, nil)
	assert.Nil(t, report)
	assert.True(t, errors.Is(err, ErrUnknownStrategy))
}

func TestMeasureWorkload(t *testing.T) {
	w, err := NewWorkload(context.Background(), WorkloadOption{
		Length: 2000,
		Seed:   5,
	})
	assert.Nil(t, err)
	a, b := clone(w.A), clone(w.B)

	reports, err := MeasureWorkload(w)
	assert.Nil(t, err)
	assert.Len(t, reports, len(Strategies()))
	for _, report := range reports {
		assert.Equal(t, reports[0].ResultLen, report.ResultLen, report.Strategy)
	}
	assert.Equal(t, a, w.A)
	assert.Equal(t, b, w.B)
}

func TestMeasureWorkload_PartialFailure(t *testing.T) {
	w := &Workload{A: []int32{1, 2}, B: []int32{2}}
	reports, err := MeasureWorkload(w, StrategyHash, "bogo")
	assert.Len(t, reports, 1)
	assert.True(t, errors.Is(err, ErrUnknownStrategy))
}
