package intersect

import (
	"math/rand"
	"time"
)

// Generator produces benchmark input arrays.
// A Generator is not safe for concurrent use; give each goroutine its own.
type Generator struct {
	rnd *rand.Rand
}

// NewGenerator returns a generator with a deterministic seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		rnd: rand.New(rand.NewSource(seed)),
	}
}

// NewTimeSeededGenerator returns a generator seeded from the wall clock.
func NewTimeSeededGenerator() *Generator {
	return NewGenerator(time.Now().UnixNano())
}

// GenerateArray returns a zero-initialized array of the given length.
func (g *Generator) GenerateArray(length int) ([]int32, error) {
	if length < 0 {
		return nil, invalidArgument("array length must not be negative: %d", length)
	}
	return make([]int32, length), nil
}

// GenerateArrayFunc returns an array whose i-th element is fn(i).
func (g *Generator) GenerateArrayFunc(length int, fn func(i int) int32) ([]int32, error) {
	result, err := g.GenerateArray(length)
	if err != nil {
		return nil, err
	}
	for i := range result {
		result[i] = fn(i)
	}
	return result, nil
}

// RandomArray returns an array filled with RandomInt(start, end) values.
func (g *Generator) RandomArray(length int, start, end int32) ([]int32, error) {
	if end < start {
		return nil, invalidArgument("range end %d is less than start %d", end, start)
	}
	return g.GenerateArrayFunc(length, func(int) int32 {
		value, _ := g.RandomInt(start, end)
		return value
	})
}

// Random returns start + u*(end-start) with u uniform in [0, 1).
func (g *Generator) Random(start, end int32) (float64, error) {
	if end < start {
		return 0, invalidArgument("range end %d is less than start %d", end, start)
	}
	return float64(start) + g.rnd.Float64()*(float64(end)-float64(start)), nil
}

// RandomInt truncates Random toward zero. The result lies in [start, end)
// unless start == end, in which case start is returned.
func (g *Generator) RandomInt(start, end int32) (int32, error) {
	value, err := g.Random(start, end)
	if err != nil {
		return 0, err
	}
	result := int32(value)
	// float rounding can reach end for very wide ranges
	if end > start && result >= end {
		result = end - 1
	}
	return result, nil
}
