package tensor

import "fmt"

// Stride is one dimension's step through the backing buffer: a non-negative
// magnitude plus a direction. A negative direction expresses a flipped
// dimension without touching buffer contents. Magnitude 0 marks a broadcast
// dimension, which is directionless.
type Stride struct {
	magnitude int
	positive  bool
}

// NewStride builds a stride from a magnitude and a direction flag.
func NewStride(magnitude int, positive bool) Stride {
	return Stride{magnitude: magnitude, positive: positive}
}

// Offset returns the linear-offset contribution of the given logical index
// within a dimension of the given size. A negative-direction stride counts
// down from the dimension's far end.
func (s Stride) Offset(index, size int) int {
	if s.positive {
		return index * s.magnitude
	}
	return (size - 1 - index) * s.magnitude
}

// Mul scales the magnitude by a positive factor, preserving direction.
func (s Stride) Mul(factor int) Stride {
	return Stride{magnitude: s.magnitude * factor, positive: s.positive}
}

// Flipped returns the stride with its direction inverted.
func (s Stride) Flipped() Stride {
	return Stride{magnitude: s.magnitude, positive: !s.positive}
}

// Magnitude returns the step size in buffer elements.
func (s Stride) Magnitude() int { return s.magnitude }

// IsPositive reports whether increasing the logical index increases the
// linear offset.
func (s Stride) IsPositive() bool { return s.positive }

// Equal reports stride equality. Two zero-magnitude strides are equal
// regardless of direction: a broadcast axis never moves the offset.
func (s Stride) Equal(other Stride) bool {
	if s.magnitude == 0 && other.magnitude == 0 {
		return true
	}
	return s == other
}

// String renders the stride as a signed magnitude, e.g. "+3" or "-3".
func (s Stride) String() string {
	if s.positive {
		return fmt.Sprintf("+%d", s.magnitude)
	}
	return fmt.Sprintf("-%d", s.magnitude)
}
