package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidatesDataLength(t *testing.T) {
	_, err := New([]int32{1, 2, 3}, []int{2, 2})
	assert.ErrorIs(t, err, ErrDataLength)

	_, err = New([]int32{1, 2, 3, 4}, []int{2, 2})
	assert.NoError(t, err)
}

func TestNewCopiesInput(t *testing.T) {
	data := []int32{1, 2, 3}
	a, err := New1D(data)
	require.NoError(t, err)

	data[0] = 99
	v, err := a.Index([]int{0})
	require.NoError(t, err)
	assert.Equal(t, int32(1), v, "the constructor must copy the caller's slice")
}

func TestScalar(t *testing.T) {
	s := Scalar[float64](3.5)
	assert.Equal(t, []int{1}, s.Sizes())
	assert.Equal(t, []float64{3.5}, s.Data())
}

func TestSameZerosOnes(t *testing.T) {
	same, err := Same[int32](7, 3)
	require.NoError(t, err)
	assert.Equal(t, []int32{7, 7, 7}, same.Data())

	zeros, err := Zeros[float32](2)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 0}, zeros.Data())

	ones, err := Ones[float32](2)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 1}, ones.Data())

	flags, err := Ones[bool](2)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true}, flags.Data())

	_, err = Same[int32](0, 0)
	assert.ErrorIs(t, err, ErrRangeOutOfBounds)
}

func TestArange(t *testing.T) {
	a, err := Arange[int32](0, 10, 3)
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 3, 6, 9}, a.Data())

	// End is exclusive.
	b, err := Arange[int32](0, 9, 3)
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 3, 6}, b.Data())

	// The first element is always produced.
	c, err := Arange[int32](5, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, []int32{5}, c.Data())

	_, err = Arange[int32](0, 10, 0)
	assert.ErrorIs(t, err, ErrRangeOutOfBounds)
}

func TestArangeTerminatesWithoutProgress(t *testing.T) {
	// Unsigned addition wraps back into the valid range; the sequence must
	// stop once it no longer ascends.
	wrapped, err := Arange[uint8](0, 255, 4)
	require.NoError(t, err)
	data := wrapped.Data()
	assert.Len(t, data, 64)
	assert.Equal(t, uint8(0), data[0])
	assert.Equal(t, uint8(252), data[len(data)-1])

	// A step below the element spacing at this magnitude stalls the
	// accumulator: float32(1<<24) + 0.5 rounds back to 1<<24.
	stalled, err := Arange[float32](1<<24, 1<<24+2, 0.5)
	require.NoError(t, err)
	assert.Equal(t, []float32{1 << 24}, stalled.Data())
}

func TestLinspace(t *testing.T) {
	a, err := Linspace[float64](0, 1, 5)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0.25, 0.5, 0.75, 1}, a.Data(), 1e-12)

	single, err := Linspace[float64](2, 9, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2}, single.Data())

	_, err = Linspace[float64](0, 1, 0)
	assert.ErrorIs(t, err, ErrRangeOutOfBounds)
}

func TestEye(t *testing.T) {
	eye, err := Eye[float32](3)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 3}, eye.Sizes())
	assert.Equal(t, []float32{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}, eye.Data())

	_, err = Eye[float32](0)
	assert.ErrorIs(t, err, ErrRangeOutOfBounds)
}
