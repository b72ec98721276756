package tensor

import (
	"fmt"
	"slices"
)

// Shape describes how logical coordinates map onto a flat buffer: a size and
// a directional stride per dimension, plus a base offset. The mapping is
//
//	offset = base + Σ strides[d].Offset(index[d], sizes[d])
//
// Shapes are immutable values; every transform returns a fresh Shape and
// never touches element data.
type Shape struct {
	sizes   []int
	strides []Stride
	offset  int
}

// newShape derives the canonical row-major layout for sizes: scanning
// dimensions last to first, each positive stride magnitude is the running
// product of the sizes after it.
func newShape(sizes []int, offset int) (Shape, error) {
	if err := validSizes(sizes); err != nil {
		return Shape{}, err
	}
	return Shape{
		sizes:   slices.Clone(sizes),
		strides: rowMajorStrides(sizes, true),
		offset:  offset,
	}, nil
}

func rowMajorStrides(sizes []int, positive bool) []Stride {
	strides := make([]Stride, len(sizes))
	current := 1
	for i := len(sizes) - 1; i >= 0; i-- {
		strides[i] = NewStride(current, positive)
		current *= sizes[i]
	}
	return strides
}

func validSizes(sizes []int) error {
	if len(sizes) == 0 {
		return fmt.Errorf("%w: shape needs at least one dimension", ErrRangeOutOfBounds)
	}
	for d, size := range sizes {
		if size < 1 {
			return fmt.Errorf("%w: size %d of dimension %d must be at least 1", ErrRangeOutOfBounds, size, d)
		}
	}
	return nil
}

func product(sizes []int) int {
	n := 1
	for _, size := range sizes {
		n *= size
	}
	return n
}

// validDimensions checks that every listed dimension exists and none repeat.
func validDimensions(dimensions []int, ndims int) error {
	seen := make(map[int]struct{}, len(dimensions))
	for _, d := range dimensions {
		if d < 0 || d >= ndims {
			return fmt.Errorf("%w: dimension %d of a %d-dimensional tensor", ErrIndexOutOfRange, d, ndims)
		}
		if _, ok := seen[d]; ok {
			return fmt.Errorf("%w: dimension %d repeats", ErrDuplicateDimension, d)
		}
		seen[d] = struct{}{}
	}
	return nil
}

func (s Shape) ndims() int { return len(s.sizes) }

func (s Shape) numel() int { return product(s.sizes) }

// equal compares sizes and strides; the base offset is a placement detail
// and does not participate.
func (s Shape) equal(other Shape) bool {
	if len(s.sizes) != len(other.sizes) {
		return false
	}
	for d := range s.sizes {
		if s.sizes[d] != other.sizes[d] || !s.strides[d].Equal(other.strides[d]) {
			return false
		}
	}
	return true
}

// isContiguous reports whether the elements occupy the dense buffer range
// [offset, offset+numel): stride[i] == stride[i+1] * size[i+1] for every
// adjacent pair, and no repeated dimension reads the same element twice.
// Stride equality is direction-sensitive except at magnitude 0, so a tensor
// flipped in every dimension stays contiguous (relative ordering is
// preserved) while a partial flip of a non-last dimension does not.
func (s Shape) isContiguous() bool {
	for d, size := range s.sizes {
		if size > 1 && s.strides[d].Magnitude() == 0 {
			return false
		}
	}
	for i := 0; i+1 < len(s.sizes); i++ {
		if !s.strides[i].Equal(s.strides[i+1].Mul(s.sizes[i+1])) {
			return false
		}
	}
	return true
}

// isCanonical reports whether the layout reads the dense buffer range in
// logical row-major order: contiguous, with every dimension of size above 1
// pointing in the positive direction. Only then is the backing sub-range
// itself the logical element sequence.
func (s Shape) isCanonical() bool {
	current := 1
	for i := len(s.sizes) - 1; i >= 0; i-- {
		if s.sizes[i] == 1 {
			continue
		}
		if !s.strides[i].IsPositive() || s.strides[i].Magnitude() != current {
			return false
		}
		current *= s.sizes[i]
	}
	return true
}

// view reinterprets the same element sequence under new sizes. Only
// contiguous layouts can be reinterpreted without copying; the first
// dimension's direction is preserved in the derived strides.
func (s Shape) view(sizes []int) (Shape, error) {
	if err := validSizes(sizes); err != nil {
		return Shape{}, err
	}
	if err := s.validReshape(sizes); err != nil {
		return Shape{}, err
	}
	if !s.isContiguous() {
		return Shape{}, fmt.Errorf("%w: non-contiguous layout %v cannot be viewed as %v without copying",
			ErrReshape, s.sizes, sizes)
	}
	return Shape{
		sizes:   slices.Clone(sizes),
		strides: rowMajorStrides(sizes, s.strides[0].IsPositive()),
		offset:  s.offset,
	}, nil
}

func (s Shape) validReshape(sizes []int) error {
	if s.numel() != product(sizes) {
		return fmt.Errorf("%w: %v (%d elements) cannot be reshaped to %v (%d elements)",
			ErrReshape, s.sizes, s.numel(), sizes, product(sizes))
	}
	return nil
}

// squeeze drops every size-1 dimension. A shape holding a single element
// collapses to one size-1 dimension, never to zero dimensions.
func (s Shape) squeeze() Shape {
	if s.numel() == 1 {
		return Shape{sizes: []int{1}, strides: []Stride{NewStride(1, true)}, offset: s.offset}
	}
	sizes := make([]int, 0, len(s.sizes))
	strides := make([]Stride, 0, len(s.strides))
	for d, size := range s.sizes {
		if size != 1 {
			sizes = append(sizes, size)
			strides = append(strides, s.strides[d])
		}
	}
	return Shape{sizes: sizes, strides: strides, offset: s.offset}
}

// unsqueeze pads with leading size-1 dimensions until the rank reaches n.
// The inserted strides scale the first dimension's stride by its size so the
// result stays contiguous when the source was.
func (s Shape) unsqueeze(n int) (Shape, error) {
	if n < s.ndims() {
		return Shape{}, fmt.Errorf("%w: cannot unsqueeze %d dimensions down to %d", ErrDimensionCount, s.ndims(), n)
	}
	if n == s.ndims() {
		return s, nil
	}
	sizes := make([]int, 0, n)
	strides := make([]Stride, 0, n)
	leading := s.strides[0].Mul(s.sizes[0])
	for i := s.ndims(); i < n; i++ {
		sizes = append(sizes, 1)
		strides = append(strides, leading)
	}
	sizes = append(sizes, s.sizes...)
	strides = append(strides, s.strides...)
	return Shape{sizes: sizes, strides: strides, offset: s.offset}, nil
}

// permute reorders the (size, stride) pairs by the given permutation.
func (s Shape) permute(permutation []int) (Shape, error) {
	if len(permutation) != s.ndims() {
		return Shape{}, fmt.Errorf("%w: permutation of length %d for %d dimensions",
			ErrDimensionCount, len(permutation), s.ndims())
	}
	if err := validDimensions(permutation, s.ndims()); err != nil {
		return Shape{}, err
	}
	sizes := make([]int, len(permutation))
	strides := make([]Stride, len(permutation))
	for i, d := range permutation {
		sizes[i] = s.sizes[d]
		strides[i] = s.strides[d]
	}
	return Shape{sizes: sizes, strides: strides, offset: s.offset}, nil
}

// transpose swaps two dimensions.
func (s Shape) transpose(dim1, dim2 int) (Shape, error) {
	if err := validDimensions([]int{dim1, dim2}, s.ndims()); err != nil {
		return Shape{}, err
	}
	permutation := make([]int, s.ndims())
	for i := range permutation {
		permutation[i] = i
	}
	permutation[dim1], permutation[dim2] = dim2, dim1
	return s.permute(permutation)
}

// flip inverts the direction of each listed dimension's stride.
func (s Shape) flip(dimensions []int) (Shape, error) {
	if err := validDimensions(dimensions, s.ndims()); err != nil {
		return Shape{}, err
	}
	strides := slices.Clone(s.strides)
	for _, d := range dimensions {
		strides[d] = strides[d].Flipped()
	}
	return Shape{sizes: slices.Clone(s.sizes), strides: strides, offset: s.offset}, nil
}

// expand stretches size-1 dimensions to the requested sizes with
// zero-magnitude strides. Dimensions already at the target size pass
// through unchanged.
func (s Shape) expand(expansions []int) (Shape, error) {
	if slices.Equal(s.sizes, expansions) {
		return s, nil
	}
	if len(expansions) != s.ndims() {
		return Shape{}, fmt.Errorf("%w: %d expansion sizes for %d dimensions",
			ErrDimensionCount, len(expansions), s.ndims())
	}
	sizes := make([]int, s.ndims())
	strides := make([]Stride, s.ndims())
	for d, expansion := range expansions {
		switch {
		case expansion == s.sizes[d]:
			sizes[d] = s.sizes[d]
			strides[d] = s.strides[d]
		case s.sizes[d] == 1 && expansion > 0:
			sizes[d] = expansion
			strides[d] = NewStride(0, true)
		default:
			return Shape{}, fmt.Errorf("%w: size %d of dimension %d cannot be expanded to %d",
				ErrExpand, s.sizes[d], d, expansion)
		}
	}
	return Shape{sizes: sizes, strides: strides, offset: s.offset}, nil
}

// BroadcastSizes computes the broadcast result sizes for two size vectors,
// right-aligned: equal sizes pass through, a 1 adopts the other side's size,
// and unpaired leading dimensions of the longer vector pass through.
func BroadcastSizes(lhs, rhs []int) ([]int, error) {
	n := max(len(lhs), len(rhs))
	result := make([]int, n)
	for i := 0; i < n; i++ {
		l, r := 1, 1
		if i < len(lhs) {
			l = lhs[len(lhs)-1-i]
		}
		if i < len(rhs) {
			r = rhs[len(rhs)-1-i]
		}
		switch {
		case l == r:
			result[n-1-i] = l
		case l == 1:
			result[n-1-i] = r
		case r == 1:
			result[n-1-i] = l
		default:
			return nil, fmt.Errorf("%w: sizes %v and %v cannot be broadcast together", ErrBroadcast, lhs, rhs)
		}
	}
	return result, nil
}

// element validates the coordinates and returns the linear buffer offset.
func (s Shape) element(indices []int) (int, error) {
	if len(indices) != s.ndims() {
		return 0, fmt.Errorf("%w: %d indices for %d dimensions", ErrDimensionCount, len(indices), s.ndims())
	}
	for d, index := range indices {
		if index < 0 || index >= s.sizes[d] {
			return 0, fmt.Errorf("%w: index %d of dimension %d (size %d)",
				ErrIndexOutOfRange, index, d, s.sizes[d])
		}
	}
	return s.offsetAt(indices), nil
}

// offsetAt computes the offset for coordinates already known to be valid,
// e.g. coordinates produced by the index generator.
func (s Shape) offsetAt(indices []int) int {
	offset := s.offset
	for d, index := range indices {
		offset += s.strides[d].Offset(index, s.sizes[d])
	}
	return offset
}

// elementDims returns the offset of the element whose listed dimensions are
// pinned to the given coordinates; unlisted dimensions read at coordinate 0.
func (s Shape) elementDims(dimensions, indices []int) (int, error) {
	if len(dimensions) != len(indices) {
		return 0, fmt.Errorf("%w: %d dimensions for %d indices", ErrDimensionCount, len(dimensions), len(indices))
	}
	if err := validDimensions(dimensions, s.ndims()); err != nil {
		return 0, err
	}
	full := make([]int, s.ndims())
	for i, d := range dimensions {
		full[d] = indices[i]
	}
	return s.element(full)
}

// slice restricts each dimension to a half-open [start, end) range. An end
// of 0 means "through the current size", and missing trailing ranges are
// implicitly full-extent. The buffer's linear ordering is fixed, so a
// negative-direction dimension folds its far-end remainder into the base
// offset where a positive-direction one folds in its start.
func (s Shape) slice(ranges [][2]int) (Shape, error) {
	if len(ranges) > s.ndims() {
		return Shape{}, fmt.Errorf("%w: %d ranges for %d dimensions", ErrDimensionCount, len(ranges), s.ndims())
	}
	full := make([][2]int, s.ndims())
	copy(full, ranges)

	offset := s.offset
	sizes := make([]int, s.ndims())
	for d, r := range full {
		start, end := r[0], r[1]
		if end == 0 {
			end = s.sizes[d]
		}
		if start > end {
			return Shape{}, fmt.Errorf("%w: range start %d is greater than range end %d", ErrRangeOutOfBounds, start, r[1])
		}
		if start < 0 || start > s.sizes[d] || end > s.sizes[d] {
			return Shape{}, fmt.Errorf("%w: range (%d, %d) for dimension %d (size %d)",
				ErrRangeOutOfBounds, r[0], r[1], d, s.sizes[d])
		}
		if start == end {
			return Shape{}, fmt.Errorf("%w: range (%d, %d) of dimension %d selects no elements",
				ErrRangeOutOfBounds, r[0], r[1], d)
		}
		if s.strides[d].IsPositive() {
			offset += start * s.strides[d].Magnitude()
		} else {
			offset += (s.sizes[d] - end) * s.strides[d].Magnitude()
		}
		sizes[d] = end - start
	}
	return Shape{sizes: sizes, strides: slices.Clone(s.strides), offset: offset}, nil
}

// sliceDims applies ranges to the listed dimensions only, leaving every
// other dimension at full extent.
func (s Shape) sliceDims(dimensions []int, ranges [][2]int) (Shape, error) {
	if len(dimensions) != len(ranges) {
		return Shape{}, fmt.Errorf("%w: %d dimensions for %d ranges", ErrDimensionCount, len(dimensions), len(ranges))
	}
	if err := validDimensions(dimensions, s.ndims()); err != nil {
		return Shape{}, err
	}
	full := make([][2]int, s.ndims())
	for d := range full {
		full[d] = [2]int{0, s.sizes[d]}
	}
	for i, d := range dimensions {
		full[d] = ranges[i]
	}
	return s.slice(full)
}

// singleSlice pins dimensions to fixed coordinates: a pin of -1 leaves the
// dimension at full extent, any other value collapses it to size 1 and
// folds its offset contribution into the base offset. This is the basis for
// reduction sub-views and scalar extraction.
func (s Shape) singleSlice(pins []int) (Shape, error) {
	if len(pins) != s.ndims() {
		return Shape{}, fmt.Errorf("%w: %d pins for %d dimensions", ErrDimensionCount, len(pins), s.ndims())
	}
	offset := s.offset
	sizes := make([]int, s.ndims())
	for d, pin := range pins {
		if pin < 0 {
			sizes[d] = s.sizes[d]
			continue
		}
		if pin >= s.sizes[d] {
			return Shape{}, fmt.Errorf("%w: index %d of dimension %d (size %d)",
				ErrIndexOutOfRange, pin, d, s.sizes[d])
		}
		offset += s.strides[d].Offset(pin, s.sizes[d])
		sizes[d] = 1
	}
	return Shape{sizes: sizes, strides: slices.Clone(s.strides), offset: offset}, nil
}

// pad returns the canonical shape of this shape grown by (before, after)
// elements per dimension, placed at offset 0 in a fresh buffer.
func (s Shape) pad(padding [][2]int) (Shape, error) {
	if len(padding) != s.ndims() {
		return Shape{}, fmt.Errorf("%w: %d paddings for %d dimensions", ErrDimensionCount, len(padding), s.ndims())
	}
	sizes := make([]int, s.ndims())
	for d, p := range padding {
		if p[0] < 0 || p[1] < 0 {
			return Shape{}, fmt.Errorf("%w: padding (%d, %d) of dimension %d must be non-negative",
				ErrRangeOutOfBounds, p[0], p[1], d)
		}
		sizes[d] = p[0] + s.sizes[d] + p[1]
	}
	return newShape(sizes, 0)
}

// padDims pads the listed dimensions only.
func (s Shape) padDims(dimensions []int, padding [][2]int) (Shape, error) {
	if len(dimensions) != len(padding) {
		return Shape{}, fmt.Errorf("%w: %d dimensions for %d paddings", ErrDimensionCount, len(dimensions), len(padding))
	}
	if err := validDimensions(dimensions, s.ndims()); err != nil {
		return Shape{}, err
	}
	full := make([][2]int, s.ndims())
	for i, d := range dimensions {
		full[d] = padding[i]
	}
	return s.pad(full)
}

// String renders the shape for diagnostics, e.g. "sizes [2 3] strides [+3 +1] offset 0".
func (s Shape) String() string {
	return fmt.Sprintf("sizes %v strides %v offset %d", s.sizes, s.strides, s.offset)
}
