package tensor

import "fmt"

// Copy-on-write mutation. Every operation here first materializes a private
// copy of the logical contents, mutates only the addressed positions, and
// wraps the result in a new tensor; tensors sharing the old buffer are never
// affected.

// IndexMap applies f to the single element at the given coordinates.
func (t *Tensor[T]) IndexMap(f func(T) T, indices []int) (*Tensor[T], error) {
	data, shape := t.materializeOwned()
	offset, err := shape.element(indices)
	if err != nil {
		return nil, err
	}
	data[offset] = f(data[offset])
	return &Tensor[T]{data: data, shape: shape}, nil
}

// IndexMapDims applies f to the element whose listed dimensions are pinned
// to the given coordinates; unlisted dimensions address coordinate 0.
func (t *Tensor[T]) IndexMapDims(f func(T) T, dimensions, indices []int) (*Tensor[T], error) {
	data, shape := t.materializeOwned()
	offset, err := shape.elementDims(dimensions, indices)
	if err != nil {
		return nil, err
	}
	data[offset] = f(data[offset])
	return &Tensor[T]{data: data, shape: shape}, nil
}

// SliceMap applies f to every element inside the sliced region.
func (t *Tensor[T]) SliceMap(f func(T) T, ranges [][2]int) (*Tensor[T], error) {
	data, shape := t.materializeOwned()
	region, err := shape.slice(ranges)
	if err != nil {
		return nil, err
	}
	for index := range indices(region.sizes) {
		offset := region.offsetAt(index)
		data[offset] = f(data[offset])
	}
	return &Tensor[T]{data: data, shape: shape}, nil
}

// SliceMapDims applies f inside a region restricted on the listed
// dimensions only.
func (t *Tensor[T]) SliceMapDims(f func(T) T, dimensions []int, ranges [][2]int) (*Tensor[T], error) {
	data, shape := t.materializeOwned()
	region, err := shape.sliceDims(dimensions, ranges)
	if err != nil {
		return nil, err
	}
	for index := range indices(region.sizes) {
		offset := region.offsetAt(index)
		data[offset] = f(data[offset])
	}
	return &Tensor[T]{data: data, shape: shape}, nil
}

// SliceZip combines the sliced region with rhs element by element, writing
// f(current, incoming) back into the region. rhs supplies the region's
// logical row-major sequence.
func (t *Tensor[T]) SliceZip(rhs []T, f func(T, T) T, ranges [][2]int) (*Tensor[T], error) {
	data, shape := t.materializeOwned()
	region, err := shape.slice(ranges)
	if err != nil {
		return nil, err
	}
	if err := validRegionLength(len(rhs), region.numel()); err != nil {
		return nil, err
	}
	i := 0
	for index := range indices(region.sizes) {
		offset := region.offsetAt(index)
		data[offset] = f(data[offset], rhs[i])
		i++
	}
	return &Tensor[T]{data: data, shape: shape}, nil
}

// SliceZipDims is SliceZip with the region restricted on the listed
// dimensions only.
func (t *Tensor[T]) SliceZipDims(rhs []T, f func(T, T) T, dimensions []int, ranges [][2]int) (*Tensor[T], error) {
	data, shape := t.materializeOwned()
	region, err := shape.sliceDims(dimensions, ranges)
	if err != nil {
		return nil, err
	}
	if err := validRegionLength(len(rhs), region.numel()); err != nil {
		return nil, err
	}
	i := 0
	for index := range indices(region.sizes) {
		offset := region.offsetAt(index)
		data[offset] = f(data[offset], rhs[i])
		i++
	}
	return &Tensor[T]{data: data, shape: shape}, nil
}

func validRegionLength(got, want int) error {
	if got != want {
		return fmt.Errorf("%w: %d elements for region of size %d", ErrDataLength, got, want)
	}
	return nil
}

// Pad grows every dimension by (before, after) elements filled with a
// constant, copying the original contents into the interior region.
func (t *Tensor[T]) Pad(constant T, padding [][2]int) (*Tensor[T], error) {
	shape, err := t.shape.pad(padding)
	if err != nil {
		return nil, err
	}
	base := filled[T](constant, shape)

	ranges := make([][2]int, t.Ndims())
	for d, p := range padding {
		ranges[d] = [2]int{p[0], p[0] + t.shape.sizes[d]}
	}
	return base.SliceZip(t.Data(), takeIncoming[T], ranges)
}

// PadDims pads the listed dimensions only.
func (t *Tensor[T]) PadDims(constant T, dimensions []int, padding [][2]int) (*Tensor[T], error) {
	shape, err := t.shape.padDims(dimensions, padding)
	if err != nil {
		return nil, err
	}
	base := filled[T](constant, shape)

	ranges := make([][2]int, len(dimensions))
	for i, d := range dimensions {
		ranges[i] = [2]int{padding[i][0], padding[i][0] + t.shape.sizes[d]}
	}
	return base.SliceZipDims(t.Data(), takeIncoming[T], dimensions, ranges)
}

func filled[T DType](constant T, shape Shape) *Tensor[T] {
	data := make([]T, shape.numel())
	for i := range data {
		data[i] = constant
	}
	return &Tensor[T]{data: data, shape: shape}
}

func takeIncoming[T DType](_, incoming T) T { return incoming }
