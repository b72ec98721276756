package tensor

import "slices"

// Tensor pairs a shared, immutable backing buffer with a Shape. Any number
// of tensors may reference the same buffer concurrently; no operation ever
// mutates a buffer another tensor might observe. Operations that need
// localized mutation first produce a private copy of the logical contents.
type Tensor[T DType] struct {
	data  []T
	shape Shape
}

// newOwned wraps a buffer the caller guarantees is private and already laid
// out canonically for sizes.
func newOwned[T DType](data []T, sizes []int) (*Tensor[T], error) {
	shape, err := newShape(sizes, 0)
	if err != nil {
		return nil, err
	}
	return &Tensor[T]{data: data, shape: shape}, nil
}

// Numel returns the total number of elements.
func (t *Tensor[T]) Numel() int { return t.shape.numel() }

// Ndims returns the rank.
func (t *Tensor[T]) Ndims() int { return t.shape.ndims() }

// Sizes returns a copy of the dimension sizes.
func (t *Tensor[T]) Sizes() []int { return slices.Clone(t.shape.sizes) }

// Strides returns a copy of the per-dimension strides.
func (t *Tensor[T]) Strides() []Stride { return slices.Clone(t.shape.strides) }

// Offset returns the base offset into the backing buffer.
func (t *Tensor[T]) Offset() int { return t.shape.offset }

// IsContiguous reports whether the strides match the canonical row-major
// derivation from the sizes, enabling direct linear scanning.
func (t *Tensor[T]) IsContiguous() bool { return t.shape.isContiguous() }

// Equal reports whether two tensors hold the same logical contents under
// equal shapes.
func (t *Tensor[T]) Equal(rhs *Tensor[T]) bool {
	return t.shape.equal(rhs.shape) && slices.Equal(t.Data(), rhs.Data())
}

// ToContiguous materializes the logical contents into a fresh buffer with a
// canonical row-major shape at offset 0.
func (t *Tensor[T]) ToContiguous() *Tensor[T] {
	shape, err := newShape(t.shape.sizes, 0)
	if err != nil {
		// Sizes were validated when the receiver was built.
		panic(err)
	}
	return &Tensor[T]{data: t.dataNonContiguous(), shape: shape}
}

// IntoContiguous returns the receiver unchanged when it is already
// contiguous, otherwise materializes.
func (t *Tensor[T]) IntoContiguous() *Tensor[T] {
	if t.IsContiguous() {
		return t
	}
	return t.ToContiguous()
}

// materializeOwned returns a private copy of the logical contents together
// with a shape that addresses that copy: the receiver's sizes and strides at
// offset 0 when contiguous, the canonical row-major layout otherwise. This
// is the entry point for every copy-on-write mutation.
func (t *Tensor[T]) materializeOwned() ([]T, Shape) {
	if t.IsContiguous() {
		return slices.Clone(t.dataContiguous()), Shape{
			sizes:   slices.Clone(t.shape.sizes),
			strides: slices.Clone(t.shape.strides),
			offset:  0,
		}
	}
	shape, err := newShape(t.shape.sizes, 0)
	if err != nil {
		panic(err)
	}
	return t.dataNonContiguous(), shape
}
