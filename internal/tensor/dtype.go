// Package tensor implements loom's N-dimensional array core: a stride/shape
// algebra over a flat, shared, immutable element buffer, plus the view,
// elementwise and reduction operations built on it.
package tensor

// DType is a constraint for supported tensor element types.
// It uses Go generics to ensure compile-time type safety.
type DType interface {
	float32 | float64 | int32 | int64 | uint8 | bool
}

// Numeric is the subset of DType supporting arithmetic, used by generators
// like Arange.
type Numeric interface {
	float32 | float64 | int32 | int64 | uint8
}

// Float is the subset of DType with fractional arithmetic, used by Linspace.
type Float interface {
	float32 | float64
}

// one returns the multiplicative identity for T; true for bool.
func one[T DType]() T {
	var v T
	switch p := any(&v).(type) {
	case *float32:
		*p = 1
	case *float64:
		*p = 1
	case *int32:
		*p = 1
	case *int64:
		*p = 1
	case *uint8:
		*p = 1
	case *bool:
		*p = true
	}
	return v
}
