package tensor

// Zero-copy shape transforms. Each returns a new tensor sharing the backing
// buffer with a freshly computed shape; cost is O(rank) regardless of buffer
// size. Reshape and Flatten are the exceptions: they always materialize.

// View reinterprets the same element sequence under new sizes. Fails when
// the element count differs or the source layout is not contiguous; use
// ViewElseReshape when a copy is an acceptable fallback.
func (t *Tensor[T]) View(sizes []int) (*Tensor[T], error) {
	shape, err := t.shape.view(sizes)
	if err != nil {
		return nil, err
	}
	return &Tensor[T]{data: t.data, shape: shape}, nil
}

// Ravel views the tensor as rank 1.
func (t *Tensor[T]) Ravel() (*Tensor[T], error) {
	return t.View([]int{t.Numel()})
}

// Reshape materializes the logical contents into a canonical buffer under
// new sizes. It succeeds for any strided, flipped or broadcast source as
// long as the element count matches.
func (t *Tensor[T]) Reshape(sizes []int) (*Tensor[T], error) {
	if err := t.shape.validReshape(sizes); err != nil {
		return nil, err
	}
	return newOwned(t.dataNonContiguous(), sizes)
}

// Flatten reshapes to rank 1, materializing.
func (t *Tensor[T]) Flatten() (*Tensor[T], error) {
	return t.Reshape([]int{t.Numel()})
}

// ViewElseReshape attempts the zero-copy View first and falls back to a full
// materializing Reshape. This is the general-purpose reshape for callers
// that do not care whether the buffer is shared.
func (t *Tensor[T]) ViewElseReshape(sizes []int) (*Tensor[T], error) {
	if viewed, err := t.View(sizes); err == nil {
		return viewed, nil
	}
	return t.Reshape(sizes)
}

// Squeeze drops every size-1 dimension; a single-element tensor keeps one
// size-1 dimension.
func (t *Tensor[T]) Squeeze() *Tensor[T] {
	return &Tensor[T]{data: t.data, shape: t.shape.squeeze()}
}

// Unsqueeze pads with leading size-1 dimensions until the rank reaches n.
func (t *Tensor[T]) Unsqueeze(n int) (*Tensor[T], error) {
	shape, err := t.shape.unsqueeze(n)
	if err != nil {
		return nil, err
	}
	return &Tensor[T]{data: t.data, shape: shape}, nil
}

// Permute reorders dimensions by the given permutation.
func (t *Tensor[T]) Permute(permutation []int) (*Tensor[T], error) {
	shape, err := t.shape.permute(permutation)
	if err != nil {
		return nil, err
	}
	return &Tensor[T]{data: t.data, shape: shape}, nil
}

// Transpose swaps two dimensions.
func (t *Tensor[T]) Transpose(dim1, dim2 int) (*Tensor[T], error) {
	shape, err := t.shape.transpose(dim1, dim2)
	if err != nil {
		return nil, err
	}
	return &Tensor[T]{data: t.data, shape: shape}, nil
}

// Expand broadcasts size-1 dimensions to the requested sizes via
// zero-magnitude strides.
func (t *Tensor[T]) Expand(expansions []int) (*Tensor[T], error) {
	shape, err := t.shape.expand(expansions)
	if err != nil {
		return nil, err
	}
	return &Tensor[T]{data: t.data, shape: shape}, nil
}

// Flip reverses the listed dimensions by inverting their stride directions.
func (t *Tensor[T]) Flip(dimensions []int) (*Tensor[T], error) {
	shape, err := t.shape.flip(dimensions)
	if err != nil {
		return nil, err
	}
	return &Tensor[T]{data: t.data, shape: shape}, nil
}

// FlipAll reverses every dimension.
func (t *Tensor[T]) FlipAll() (*Tensor[T], error) {
	dimensions := make([]int, t.Ndims())
	for d := range dimensions {
		dimensions[d] = d
	}
	return t.Flip(dimensions)
}

// Slice restricts dimensions to half-open [start, end) ranges. An end of 0
// means "through the current size"; missing trailing ranges are full-extent.
func (t *Tensor[T]) Slice(ranges [][2]int) (*Tensor[T], error) {
	shape, err := t.shape.slice(ranges)
	if err != nil {
		return nil, err
	}
	return &Tensor[T]{data: t.data, shape: shape}, nil
}

// SliceDims slices the listed dimensions only.
func (t *Tensor[T]) SliceDims(dimensions []int, ranges [][2]int) (*Tensor[T], error) {
	shape, err := t.shape.sliceDims(dimensions, ranges)
	if err != nil {
		return nil, err
	}
	return &Tensor[T]{data: t.data, shape: shape}, nil
}
