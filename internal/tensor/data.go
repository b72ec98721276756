package tensor

import "slices"

// Data returns the logical element sequence in row-major order. Canonical
// layouts copy the backing sub-range directly; everything else, including
// contiguous-but-flipped layouts whose buffer order is not the logical
// order, walks the index generator. The result is always a private copy.
func (t *Tensor[T]) Data() []T {
	if t.shape.isCanonical() {
		return slices.Clone(t.dataContiguous())
	}
	return t.dataNonContiguous()
}

// dataContiguous returns the exact backing sub-range [offset, offset+numel)
// without copying. Valid only when the layout is contiguous.
func (t *Tensor[T]) dataContiguous() []T {
	start := t.shape.offset
	return t.data[start : start+t.Numel()]
}

// dataNonContiguous reads every logical position through the shape, in
// row-major order.
func (t *Tensor[T]) dataNonContiguous() []T {
	out := make([]T, 0, t.Numel())
	for index := range indices(t.shape.sizes) {
		out = append(out, t.data[t.shape.offsetAt(index)])
	}
	return out
}

// Index reads the element at the given coordinates.
func (t *Tensor[T]) Index(indices []int) (T, error) {
	offset, err := t.shape.element(indices)
	if err != nil {
		var zero T
		return zero, err
	}
	return t.data[offset], nil
}

// IndexDims reads the element whose listed dimensions are pinned to the
// given coordinates; unlisted dimensions read at coordinate 0.
func (t *Tensor[T]) IndexDims(dimensions, indices []int) (T, error) {
	offset, err := t.shape.elementDims(dimensions, indices)
	if err != nil {
		var zero T
		return zero, err
	}
	return t.data[offset], nil
}
