package intersect

import (
	"sort"
)

// Intersect returns the multiset intersection of a and b in ascending order.
// Each common value appears as many times as the smaller of its two counts.
// a and b are copied before sorting, so callers keep their original order.
func Intersect(a, b []int32) []int32 {
	if len(a) == 0 || len(b) == 0 {
		return []int32{}
	}
	return IntersectInPlace(clone(a), clone(b))
}

// IntersectInPlace works like Intersect but sorts a and b themselves.
// Callers must accept that the input order is destroyed.
func IntersectInPlace(a, b []int32) []int32 {
	if len(a) == 0 || len(b) == 0 {
		return []int32{}
	}
	sortInt32s(a)
	sortInt32s(b)
	return IntersectSorted(a, b)
}

// IntersectSorted runs the two-pointer merge over already sorted slices.
func IntersectSorted(a, b []int32) []int32 {
	capacity := len(a)
	if len(b) < capacity {
		capacity = len(b)
	}
	result := make([]int32, capacity)
	i, j, k := 0, 0, 0
	for i < len(a) && j < len(b) {
		if a[i] == b[j] {
			result[k] = a[i]
			k++
			i++
			j++
		} else if a[i] < b[j] {
			i++
		} else {
			j++
		}
	}
	return result[:k]
}

// IntersectAll returns the multiset intersection of all given arrays.
// Inputs are copied before sorting.
func IntersectAll(arrays ...[]int32) []int32 {
	sorted := make([][]int32, len(arrays))
	for i, array := range arrays {
		if len(array) == 0 {
			return []int32{}
		}
		sorted[i] = clone(array)
		sortInt32s(sorted[i])
	}
	return IntersectAllSorted(sorted...)
}

// IntersectAllSorted walks the shortest list and keeps one cursor per other list.
// Every list must be sorted ascending.
func IntersectAllSorted(sorted ...[]int32) []int32 {
	result := []int32{}
	if len(sorted) == 0 {
		return result
	}
	lists := make([][]int32, len(sorted))
	copy(lists, sorted)
	sort.Slice(lists, func(i, j int) bool {
		return len(lists[i]) < len(lists[j])
	})
	if len(lists[0]) == 0 {
		return result
	}
	cursors := make([]int, len(lists))
	for _, value := range lists[0] {
		matched := true
		for i := 1; i < len(lists); i++ {
			list := lists[i]
			for cursors[i] < len(list) && list[cursors[i]] < value {
				cursors[i]++
			}
			if cursors[i] == len(list) {
				return result
			}
			if list[cursors[i]] != value {
				matched = false
				break
			}
		}
		if !matched {
			continue
		}
		// consume one occurrence from every other list
		for i := 1; i < len(lists); i++ {
			cursors[i]++
		}
		result = append(result, value)
	}
	return result
}

// IntersectHash counts the values of a and then walks b.
// Neither input is modified; the result follows the order of b.
func IntersectHash(a, b []int32) []int32 {
	result := []int32{}
	if len(a) == 0 || len(b) == 0 {
		return result
	}
	counts := make(map[int32]int, len(a))
	for _, value := range a {
		counts[value]++
	}
	for _, value := range b {
		if counts[value] > 0 {
			result = append(result, value)
			counts[value]--
		}
	}
	return result
}

func clone(src []int32) []int32 {
	dst := make([]int32, len(src))
	copy(dst, src)
	return dst
}

func sortInt32s(values []int32) {
	sort.Slice(values, func(i, j int) bool {
		return values[i] < values[j]
	})
}
