package tensor

import "errors"

// Error kinds returned by shape and tensor operations. Each failure wraps
// one of these sentinels with the offending sizes or indices; callers match
// with errors.Is. No operation panics on a precondition violation, and a
// failed call leaves every existing tensor untouched.
var (
	// ErrDataLength reports an element count that disagrees with the
	// declared size product.
	ErrDataLength = errors.New("data length mismatch")

	// ErrDimensionCount reports an index, range or permutation list whose
	// length disagrees with the tensor's rank.
	ErrDimensionCount = errors.New("dimension count mismatch")

	// ErrIndexOutOfRange reports a coordinate or dimension number outside a
	// valid range.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrRangeOutOfBounds reports a slice range exceeding a dimension's
	// size, or a range whose start exceeds its end.
	ErrRangeOutOfBounds = errors.New("range out of bounds")

	// ErrDuplicateDimension reports a dimension listed more than once in a
	// permutation, flip or reduction list.
	ErrDuplicateDimension = errors.New("duplicate dimension")

	// ErrReshape reports a view or reshape whose size product disagrees
	// with the source, or a layout that cannot be reinterpreted without
	// copying.
	ErrReshape = errors.New("reshape mismatch")

	// ErrExpand reports a non-1 dimension that cannot be stretched to a
	// requested size.
	ErrExpand = errors.New("incompatible expansion")

	// ErrBroadcast reports two size vectors that cannot be broadcast
	// together.
	ErrBroadcast = errors.New("incompatible broadcast")
)
