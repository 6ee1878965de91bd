package intersect

import (
	"fmt"
	"sort"
)

const (
	StrategySortMerge        = "sort-merge"
	StrategySortMergeInPlace = "sort-merge-inplace"
	StrategyHash             = "hash"
)

// Func computes the multiset intersection of two arrays.
type Func func(a, b []int32) []int32

var strategies = make(map[string]Func)

func init() {
	RegisterStrategy(StrategySortMerge, Intersect)
	RegisterStrategy(StrategySortMergeInPlace, IntersectInPlace)
	RegisterStrategy(StrategyHash, IntersectHash)
}

// RegisterStrategy makes fn available to FindStrategy and Measure under name.
// It is meant to be called from init functions.
func RegisterStrategy(name string, fn Func) {
	strategies[name] = fn
}

func FindStrategy(name string) (Func, error) {
	fn, ok := strategies[name]
	if !ok {
		return nil, fmt.Errorf("can't find intersection strategy '%s': %w", name, ErrUnknownStrategy)
	}
	return fn, nil
}

// Strategies returns the registered names in sorted order.
func Strategies() []string {
	names := make([]string, 0, len(strategies))
	for name := range strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
