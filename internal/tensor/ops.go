package tensor

import (
	"fmt"
	"slices"

	"github.com/loom-ml/loom/internal/parallel"
)

// Elementwise and reduction primitives. These are package-level generic
// functions rather than methods so the result element type can differ from
// the input's. Each picks a direct linear scan when the contiguity
// preconditions hold and falls back to the index generator otherwise.

// UnaryMap applies f to every element, producing a new tensor of the same
// sizes.
func UnaryMap[T, R DType](t *Tensor[T], f func(T) R) (*Tensor[R], error) {
	if t.IsContiguous() {
		in := t.dataContiguous()
		out := make([]R, len(in))
		parallel.For(len(in), parallel.DefaultConfig(), func(i int) {
			out[i] = f(in[i])
		})
		return &Tensor[R]{data: out, shape: fastPathShape(t.shape)}, nil
	}
	out := make([]R, 0, t.Numel())
	for index := range indices(t.shape.sizes) {
		out = append(out, f(t.data[t.shape.offsetAt(index)]))
	}
	return newOwned(out, t.shape.sizes)
}

// ScalarMap applies f(element, rhs) to every element.
func ScalarMap[T, R DType](t *Tensor[T], rhs T, f func(T, T) R) (*Tensor[R], error) {
	return UnaryMap(t, func(elem T) R { return f(elem, rhs) })
}

// Zip pairs two tensors element by element. Equal shapes pair directly;
// unequal shapes are broadcast together first via stride-0 expansion, with
// no copying of either operand.
func Zip[T, R DType](lhs, rhs *Tensor[T], f func(T, T) R) (*Tensor[R], error) {
	if lhs.shape.equal(rhs.shape) {
		return equalZip(lhs, rhs, f)
	}
	return broadcastZip(lhs, rhs, f)
}

func equalZip[T, R DType](lhs, rhs *Tensor[T], f func(T, T) R) (*Tensor[R], error) {
	if lhs.IsContiguous() && rhs.IsContiguous() {
		lhsData := lhs.dataContiguous()
		rhsData := rhs.dataContiguous()
		out := make([]R, len(lhsData))
		parallel.For(len(lhsData), parallel.DefaultConfig(), func(i int) {
			out[i] = f(lhsData[i], rhsData[i])
		})
		return &Tensor[R]{data: out, shape: fastPathShape(lhs.shape)}, nil
	}
	out := make([]R, 0, lhs.Numel())
	for index := range indices(lhs.shape.sizes) {
		out = append(out, f(lhs.data[lhs.shape.offsetAt(index)], rhs.data[rhs.shape.offsetAt(index)]))
	}
	return newOwned(out, lhs.shape.sizes)
}

func broadcastZip[T, R DType](lhs, rhs *Tensor[T], f func(T, T) R) (*Tensor[R], error) {
	sizes, err := BroadcastSizes(lhs.shape.sizes, rhs.shape.sizes)
	if err != nil {
		return nil, err
	}

	lhsB, err := lhs.Unsqueeze(len(sizes))
	if err != nil {
		return nil, err
	}
	lhsB, err = lhsB.Expand(sizes)
	if err != nil {
		return nil, err
	}
	rhsB, err := rhs.Unsqueeze(len(sizes))
	if err != nil {
		return nil, err
	}
	rhsB, err = rhsB.Expand(sizes)
	if err != nil {
		return nil, err
	}

	out := make([]R, 0, product(sizes))
	for index := range indices(sizes) {
		out = append(out, f(lhsB.data[lhsB.shape.offsetAt(index)], rhsB.data[rhsB.shape.offsetAt(index)]))
	}
	return newOwned(out, sizes)
}

// ZipSlice pairs the tensor's logical element sequence with a plain slice of
// the same length.
func ZipSlice[T, R DType](t *Tensor[T], rhs []T, f func(T, T) R) (*Tensor[R], error) {
	if len(rhs) != t.Numel() {
		return nil, fmt.Errorf("%w: %d elements for tensor of size %d", ErrDataLength, len(rhs), t.Numel())
	}
	out := make([]R, 0, t.Numel())
	i := 0
	for index := range indices(t.shape.sizes) {
		out = append(out, f(t.data[t.shape.offsetAt(index)], rhs[i]))
		i++
	}
	return newOwned(out, t.shape.sizes)
}

// Reduce collapses the listed dimensions. For every combination of the
// remaining coordinates it builds a zero-copy sub-view holding the reduced
// dimensions at full extent and applies f to produce one output element.
// Reduced dimensions become size 1 when keepdims is set and are dropped
// entirely otherwise; a full reduction without keepdims yields a size-1
// tensor.
func Reduce[T, R DType](t *Tensor[T], dimensions []int, f func(*Tensor[T]) (R, error), keepdims bool) (*Tensor[R], error) {
	if err := validDimensions(dimensions, t.Ndims()); err != nil {
		return nil, err
	}

	out := make([]R, 0, t.Numel()/reducedNumel(t.shape.sizes, dimensions))
	for pins := range reduceSlices(t.shape.sizes, dimensions) {
		shape, err := t.shape.singleSlice(pins)
		if err != nil {
			return nil, err
		}
		value, err := f(&Tensor[T]{data: t.data, shape: shape})
		if err != nil {
			return nil, err
		}
		out = append(out, value)
	}

	sizes := make([]int, 0, t.Ndims())
	for d, size := range t.shape.sizes {
		switch {
		case !slices.Contains(dimensions, d):
			sizes = append(sizes, size)
		case keepdims:
			sizes = append(sizes, 1)
		}
	}
	if len(sizes) == 0 {
		sizes = []int{1}
	}
	return newOwned(out, sizes)
}

func reducedNumel(sizes []int, dimensions []int) int {
	n := 1
	for _, d := range dimensions {
		n *= sizes[d]
	}
	return n
}

// fastPathShape keeps a contiguous source's sizes and strides but resets the
// offset: fast-path results always live at the start of a fresh buffer.
func fastPathShape(s Shape) Shape {
	return Shape{
		sizes:   slices.Clone(s.sizes),
		strides: slices.Clone(s.strides),
		offset:  0,
	}
}
