package intersect

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

type Layout string

const (
	// LayoutRandomVsEven fills A with random values and B with 0, 2, 4, ...
	LayoutRandomVsEven Layout = "random-vs-even"
	// LayoutRandomVsRandom fills both arrays with random values.
	LayoutRandomVsRandom Layout = "random-vs-random"

	DefaultLength = 1000000
	// MaxLength keeps 2*i of the even layout inside int32.
	MaxLength = 1 << 30
)

// Layouts lists the accepted Layout values.
var Layouts = []Layout{LayoutRandomVsEven, LayoutRandomVsRandom}

type WorkloadOption struct {
	Length int
	Layout Layout
	// Min and Max bound the random values. Both zero means [0, Length).
	Min  int32
	Max  int32
	Seed int64
}

// Workload holds the two input arrays of one benchmark run.
type Workload struct {
	A      []int32
	B      []int32
	Option WorkloadOption
}

func initWorkloadOpt(opt ...WorkloadOption) (WorkloadOption, error) {
	var option WorkloadOption
	if len(opt) > 0 {
		option = opt[0]
	}
	if option.Length == 0 {
		option.Length = DefaultLength
	}
	if option.Layout == "" {
		option.Layout = LayoutRandomVsEven
	}
	if option.Seed == 0 {
		option.Seed = time.Now().UnixNano()
	}
	errs := &CombinedError{Message: "invalid workload option"}
	if option.Length < 0 {
		errs.append(invalidArgument("length must not be negative: %d", option.Length))
	} else if option.Length > MaxLength {
		errs.append(invalidArgument("length %d exceeds %d", option.Length, MaxLength))
	} else if option.Min == 0 && option.Max == 0 {
		option.Max = int32(option.Length)
	}
	if option.Max < option.Min {
		errs.append(invalidArgument("max %d is less than min %d", option.Max, option.Min))
	}
	errs.appendIfError(checkLayout(option.Layout))
	return option, errs.errorOrNil()
}

func checkLayout(layout Layout) error {
	for _, known := range Layouts {
		if layout == known {
			return nil
		}
	}
	return invalidArgument("unknown layout '%s'", layout)
}

// NewWorkload builds both input arrays at the same time. Each array gets its own
// generator, seeded from Seed and Seed+1, so equal seeds give equal workloads.
func NewWorkload(ctx context.Context, opt ...WorkloadOption) (*Workload, error) {
	option, err := initWorkloadOpt(opt...)
	if err != nil {
		return nil, err
	}
	result := &Workload{
		Option: option,
	}

	errGroup, ctx := errgroup.WithContext(ctx)

	errGroup.Go(func() (err error) {
		if err := ctx.Err(); err != nil {
			return err
		}
		g := NewGenerator(option.Seed)
		result.A, err = g.RandomArray(option.Length, option.Min, option.Max)
		return
	})

	errGroup.Go(func() (err error) {
		if err := ctx.Err(); err != nil {
			return err
		}
		g := NewGenerator(option.Seed + 1)
		if option.Layout == LayoutRandomVsRandom {
			result.B, err = g.RandomArray(option.Length, option.Min, option.Max)
			return
		}
		result.B, err = g.GenerateArrayFunc(option.Length, func(i int) int32 {
			return int32(i * 2)
		})
		return
	})

	err = errGroup.Wait()
	if err != nil {
		return nil, err
	}
	return result, nil
}
