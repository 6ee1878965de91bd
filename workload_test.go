package intersect

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWorkload_RandomVsEven(t *testing.T) {
	w, err := NewWorkload(context.Background(), WorkloadOption{
		Length: 1000,
		Seed:   3,
	})
	assert.Nil(t, err)
	assert.Equal(t, LayoutRandomVsEven, w.Option.Layout)
	assert.Equal(t, int32(1000), w.Option.Max)
	assert.Len(t, w.A, 1000)
	assert.Len(t, w.B, 1000)
	for i, value := range w.A {
		assert.GreaterOrEqual(t, value, int32(0))
		assert.Less(t, value, int32(1000))
		assert.Equal(t, int32(i*2), w.B[i])
	}
}

func TestNewWorkload_RandomVsRandom(t *testing.T) {
	option := WorkloadOption{
		Length: 500,
		Layout: LayoutRandomVsRandom,
		Min:    -20,
		Max:    20,
		Seed:   11,
	}
	first, err := NewWorkload(context.Background(), option)
	assert.Nil(t, err)
	second, err := NewWorkload(context.Background(), option)
	assert.Nil(t, err)

	assert.Equal(t, first.A, second.A)
	assert.Equal(t, first.B, second.B)
	assert.NotEqual(t, first.A, first.B)
	for _, value := range append(first.A, first.B...) {
		assert.GreaterOrEqual(t, value, int32(-20))
		assert.Less(t, value, int32(20))
	}
}

func TestNewWorkload_Defaults(t *testing.T) {
	option, err := initWorkloadOpt()
	assert.Nil(t, err)
	assert.Equal(t, DefaultLength, option.Length)
	assert.Equal(t, LayoutRandomVsEven, option.Layout)
	assert.Equal(t, int32(DefaultLength), option.Max)
	assert.NotZero(t, option.Seed)
}

func TestNewWorkload_InvalidOption(t *testing.T) {
	testcases := []struct {
		name   string
		option WorkloadOption
		errors int
	}{
		{
			name:   "negative length",
			option: WorkloadOption{Length: -1},
			errors: 1,
		},
		{
			name:   "too long",
			option: WorkloadOption{Length: MaxLength + 1},
			errors: 1,
		},
		{
			name:   "inverted range",
			option: WorkloadOption{Length: 10, Min: 5, Max: 1},
			errors: 1,
		},
		{
			name:   "everything wrong",
			option: WorkloadOption{Length: -1, Min: 5, Max: 1, Layout: "zigzag"},
			errors: 3,
		},
	}
	for _, testcase := range testcases {
		t.Run(testcase.name, func(t *testing.T) {
			w, err := NewWorkload(context.Background(), testcase.option)
			assert.Nil(t, w)
			assert.True(t, errors.Is(err, ErrInvalidArgument))
			var combined *CombinedError
			if assert.True(t, errors.As(err, &combined)) {
				assert.Len(t, combined.Errors, testcase.errors)
			}
		})
	}
}

func TestNewWorkload_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w, err := NewWorkload(ctx, WorkloadOption{Length: 10, Seed: 1})
	assert.Nil(t, w)
	assert.True(t, errors.Is(err, context.Canceled))
}
