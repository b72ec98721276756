package tensor

import "testing"

// Stride low-level tests

func TestStrideOffsetPositive(t *testing.T) {
	s := NewStride(3, true)

	for index, want := range []int{0, 3, 6, 9} {
		if got := s.Offset(index, 4); got != want {
			t.Errorf("Offset(%d, 4) = %d, want %d", index, got, want)
		}
	}
}

func TestStrideOffsetNegative(t *testing.T) {
	s := NewStride(3, false)

	// A negative stride counts down from the far end of the dimension.
	for index, want := range []int{9, 6, 3, 0} {
		if got := s.Offset(index, 4); got != want {
			t.Errorf("Offset(%d, 4) = %d, want %d", index, got, want)
		}
	}
}

func TestStrideMulPreservesDirection(t *testing.T) {
	pos := NewStride(2, true).Mul(3)
	if pos.Magnitude() != 6 || !pos.IsPositive() {
		t.Errorf("Mul = %v, want +6", pos)
	}

	neg := NewStride(2, false).Mul(3)
	if neg.Magnitude() != 6 || neg.IsPositive() {
		t.Errorf("Mul = %v, want -6", neg)
	}
}

func TestStrideFlipped(t *testing.T) {
	s := NewStride(5, true).Flipped()
	if s.IsPositive() || s.Magnitude() != 5 {
		t.Errorf("Flipped = %v, want -5", s)
	}
	if !s.Flipped().IsPositive() {
		t.Error("double flip should restore direction")
	}
}

func TestStrideEqualZeroMagnitude(t *testing.T) {
	// Broadcast strides are directionless.
	if !NewStride(0, true).Equal(NewStride(0, false)) {
		t.Error("zero-magnitude strides must compare equal across directions")
	}
	if NewStride(2, true).Equal(NewStride(2, false)) {
		t.Error("non-zero strides with opposite directions must not compare equal")
	}
	if !NewStride(2, false).Equal(NewStride(2, false)) {
		t.Error("identical strides must compare equal")
	}
}

func TestStrideString(t *testing.T) {
	if got := NewStride(3, true).String(); got != "+3" {
		t.Errorf("String = %q, want %q", got, "+3")
	}
	if got := NewStride(3, false).String(); got != "-3" {
		t.Errorf("String = %q, want %q", got, "-3")
	}
}
