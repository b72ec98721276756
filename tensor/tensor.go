// Copyright 2025 The Loom Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for loom's vectorized
// N-dimensional arrays.
//
// A Tensor is a logical view over a flat, shared, immutable element buffer.
// Shape transforms (View, Permute, Slice, Flip, Expand, ...) are zero-copy:
// they return a new tensor sharing the same buffer under a freshly computed
// shape. Data-producing operations pick a direct linear scan when the
// layout is contiguous and fall back to a strided walk otherwise.
//
// Example:
//
//	x, _ := tensor.Arange[float32](0, 6, 1) // [0 1 2 3 4 5]
//	m, _ := x.View([]int{2, 3})             // zero-copy 2×3 view
//	mt, _ := m.Transpose(0, 1)              // zero-copy 3×2 view
//	sum, _ := tensor.Reduce(mt, []int{1}, func(row *tensor.Tensor[float32]) (float32, error) {
//		var s float32
//		for _, v := range row.Data() {
//			s += v
//		}
//		return s, nil
//	}, false) // sizes [3]
package tensor

import (
	"github.com/loom-ml/loom/internal/tensor"
)

// Type aliases for the public API.

// DType is the constraint for tensor element types.
// Supported types: float32, float64, int32, int64, uint8, bool.
type DType = tensor.DType

// Numeric is the subset of DType supporting arithmetic.
type Numeric = tensor.Numeric

// Float is the subset of DType with fractional arithmetic.
type Float = tensor.Float

// Tensor is a shared immutable buffer plus a shape describing how logical
// coordinates map onto it.
type Tensor[T DType] = tensor.Tensor[T]

// Stride is a per-dimension step magnitude plus direction; magnitude 0
// denotes a broadcast dimension.
type Stride = tensor.Stride

// NewStride builds a stride from a magnitude and a direction flag.
func NewStride(magnitude int, positive bool) Stride {
	return tensor.NewStride(magnitude, positive)
}

// Error kinds. Match with errors.Is.
var (
	ErrDataLength         = tensor.ErrDataLength
	ErrDimensionCount     = tensor.ErrDimensionCount
	ErrIndexOutOfRange    = tensor.ErrIndexOutOfRange
	ErrRangeOutOfBounds   = tensor.ErrRangeOutOfBounds
	ErrDuplicateDimension = tensor.ErrDuplicateDimension
	ErrReshape            = tensor.ErrReshape
	ErrExpand             = tensor.ErrExpand
	ErrBroadcast          = tensor.ErrBroadcast
)

// Creation functions.

// New builds a tensor from elements and dimension sizes.
//
// Example:
//
//	t, err := tensor.New([]float32{1, 2, 3, 4, 5, 6}, []int{2, 3})
func New[T DType](data []T, sizes []int) (*Tensor[T], error) {
	return tensor.New(data, sizes)
}

// New1D builds a rank-1 tensor over a copy of data.
func New1D[T DType](data []T) (*Tensor[T], error) {
	return tensor.New1D(data)
}

// Scalar wraps a single element as a size-1 tensor.
func Scalar[T DType](value T) *Tensor[T] {
	return tensor.Scalar(value)
}

// Same builds a rank-1 tensor repeating one element.
func Same[T DType](element T, size int) (*Tensor[T], error) {
	return tensor.Same(element, size)
}

// Zeros builds a rank-1 tensor of zero values.
func Zeros[T DType](size int) (*Tensor[T], error) {
	return tensor.Zeros[T](size)
}

// Ones builds a rank-1 tensor of ones.
func Ones[T DType](size int) (*Tensor[T], error) {
	return tensor.Ones[T](size)
}

// Arange builds the ascending sequence start, start+step, ... bounded by
// end (exclusive).
//
// Example:
//
//	t, err := tensor.Arange[int32](0, 10, 1) // [0 1 2 ... 9]
func Arange[T Numeric](start, end, step T) (*Tensor[T], error) {
	return tensor.Arange(start, end, step)
}

// Linspace builds num evenly spaced points over [start, end], inclusive of
// both ends when num > 1.
func Linspace[T Float](start, end T, num int) (*Tensor[T], error) {
	return tensor.Linspace(start, end, num)
}

// Eye builds the size×size identity matrix.
func Eye[T DType](size int) (*Tensor[T], error) {
	return tensor.Eye[T](size)
}

// Elementwise and reduction primitives. These are free functions so the
// result element type can differ from the input's; they are the hook point
// by which numeric layers implement arithmetic and comparisons without the
// core knowing about element semantics.

// UnaryMap applies f to every element.
func UnaryMap[T, R DType](t *Tensor[T], f func(T) R) (*Tensor[R], error) {
	return tensor.UnaryMap(t, f)
}

// ScalarMap applies f(element, rhs) to every element.
func ScalarMap[T, R DType](t *Tensor[T], rhs T, f func(T, T) R) (*Tensor[R], error) {
	return tensor.ScalarMap(t, rhs, f)
}

// Zip pairs two tensors element by element, broadcasting unequal shapes.
//
// Example:
//
//	col, _ := tensor.Arange[int32](0, 3, 1) // sizes [3]
//	c, _ := col.View([]int{3, 1})
//	r, _ := tensor.Arange[int32](0, 4, 1)   // sizes [4]
//	grid, err := tensor.Zip(c, r, func(a, b int32) int32 { return a + b }) // sizes [3, 4]
func Zip[T, R DType](lhs, rhs *Tensor[T], f func(T, T) R) (*Tensor[R], error) {
	return tensor.Zip(lhs, rhs, f)
}

// ZipSlice pairs the tensor's logical element sequence with a plain slice.
func ZipSlice[T, R DType](t *Tensor[T], rhs []T, f func(T, T) R) (*Tensor[R], error) {
	return tensor.ZipSlice(t, rhs, f)
}

// Reduce collapses the listed dimensions, applying f to one sub-view per
// combination of the remaining coordinates.
func Reduce[T, R DType](t *Tensor[T], dimensions []int, f func(*Tensor[T]) (R, error), keepdims bool) (*Tensor[R], error) {
	return tensor.Reduce(t, dimensions, f, keepdims)
}

// Utility functions.

// BroadcastSizes computes the broadcast result sizes for two size vectors
// following NumPy broadcasting rules.
//
// Example:
//
//	sizes, err := tensor.BroadcastSizes([]int{3, 1}, []int{1, 4}) // [3, 4]
func BroadcastSizes(lhs, rhs []int) ([]int, error) {
	return tensor.BroadcastSizes(lhs, rhs)
}
