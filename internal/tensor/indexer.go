package tensor

import "iter"

// indices yields every coordinate of the given size vector in row-major
// order: the most-significant dimension varies slowest. It is the single
// mechanism used wherever a strided or broadcast view must be walked.
// The sequence is restartable; the yielded slice is reused between
// iterations and must be copied by callers that retain it.
func indices(sizes []int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if len(sizes) == 0 {
			return
		}
		for _, size := range sizes {
			if size < 1 {
				return
			}
		}
		index := make([]int, len(sizes))
		for {
			if !yield(index) {
				return
			}
			d := len(sizes) - 1
			for ; d >= 0; d-- {
				index[d]++
				if index[d] < sizes[d] {
					break
				}
				index[d] = 0
			}
			if d < 0 {
				return
			}
		}
	}
}

// reduceSlices yields one pin vector per coordinate of the non-reduced
// dimensions, in row-major order. Reduced dimensions stay at -1 (full
// extent) so Reduce can cut a sub-view per combination via singleSlice.
// The yielded slice is reused between iterations.
func reduceSlices(sizes []int, dimensions []int) iter.Seq[[]int] {
	reduced := make([]bool, len(sizes))
	for _, d := range dimensions {
		reduced[d] = true
	}
	outer := make([]int, 0, len(sizes))
	for d, size := range sizes {
		if !reduced[d] {
			outer = append(outer, size)
		}
	}
	return func(yield func([]int) bool) {
		pins := make([]int, len(sizes))
		if len(outer) == 0 {
			// Every dimension is reduced: one slice spanning the whole tensor.
			for d := range pins {
				pins[d] = -1
			}
			yield(pins)
			return
		}
		for index := range indices(outer) {
			i := 0
			for d := range sizes {
				if reduced[d] {
					pins[d] = -1
				} else {
					pins[d] = index[i]
					i++
				}
			}
			if !yield(pins) {
				return
			}
		}
	}
}
