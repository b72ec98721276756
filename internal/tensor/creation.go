package tensor

import (
	"fmt"
	"slices"
)

// New builds a tensor from elements and dimension sizes. The elements are
// copied, so the caller keeps ownership of its slice.
func New[T DType](data []T, sizes []int) (*Tensor[T], error) {
	shape, err := newShape(sizes, 0)
	if err != nil {
		return nil, err
	}
	if len(data) != shape.numel() {
		return nil, fmt.Errorf("%w: %d elements for tensor of size %d", ErrDataLength, len(data), shape.numel())
	}
	return &Tensor[T]{data: slices.Clone(data), shape: shape}, nil
}

// New1D builds a rank-1 tensor over a copy of data.
func New1D[T DType](data []T) (*Tensor[T], error) {
	return New(data, []int{len(data)})
}

// Scalar wraps a single element as a size-1 tensor.
func Scalar[T DType](value T) *Tensor[T] {
	t, err := New([]T{value}, []int{1})
	if err != nil {
		panic(err) // a one-element shape cannot fail validation
	}
	return t
}

// Same builds a rank-1 tensor repeating one element.
func Same[T DType](element T, size int) (*Tensor[T], error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: size %d must be at least 1", ErrRangeOutOfBounds, size)
	}
	data := make([]T, size)
	for i := range data {
		data[i] = element
	}
	return New1D(data)
}

// Zeros builds a rank-1 tensor of zero values (false for bool).
func Zeros[T DType](size int) (*Tensor[T], error) {
	var zero T
	return Same(zero, size)
}

// Ones builds a rank-1 tensor of ones (true for bool).
func Ones[T DType](size int) (*Tensor[T], error) {
	return Same(one[T](), size)
}

// Arange builds the ascending sequence start, start+step, ... bounded by end
// (exclusive). The first element is always produced, matching NumPy's
// behavior for a non-empty range.
func Arange[T Numeric](start, end, step T) (*Tensor[T], error) {
	var zero T
	if step <= zero {
		return nil, fmt.Errorf("%w: arange step %v must be positive", ErrRangeOutOfBounds, step)
	}
	data := []T{start}
	for current := start + step; current < end; current += step {
		if current <= data[len(data)-1] {
			// Wraparound or a step below the element spacing: the sequence
			// stopped ascending.
			break
		}
		data = append(data, current)
	}
	return newOwned(data, []int{len(data)})
}

// Linspace builds num evenly spaced points over [start, end], inclusive of
// both ends when num > 1.
func Linspace[T Float](start, end T, num int) (*Tensor[T], error) {
	if num < 1 {
		return nil, fmt.Errorf("%w: linspace needs at least one point, got %d", ErrRangeOutOfBounds, num)
	}
	if num == 1 {
		return New1D([]T{start})
	}
	step := (end - start) / T(num-1)
	data := make([]T, num)
	for i := range data {
		data[i] = start + step*T(i)
	}
	return newOwned(data, []int{num})
}

// Eye builds the size×size identity matrix.
func Eye[T DType](size int) (*Tensor[T], error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: size %d must be at least 1", ErrRangeOutOfBounds, size)
	}
	data := make([]T, size*size)
	diagonal := size + 1
	for i := range data {
		if i%diagonal == 0 {
			data[i] = one[T]()
		}
	}
	return newOwned(data, []int{size, size})
}
