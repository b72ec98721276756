package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addHundred(v int32) int32 { return v + 100 }

func TestIndexMapCopyOnWriteIsolation(t *testing.T) {
	a := arange2x3(t)
	b, err := a.View([]int{3, 2})
	require.NoError(t, err)
	require.True(t, sameBuffer(a, b))

	c, err := b.IndexMap(addHundred, []int{0, 0})
	require.NoError(t, err)

	assert.False(t, sameBuffer(a, c), "the mutated tensor must own a private buffer")
	assert.Equal(t, []int32{0, 1, 2, 3, 4, 5}, a.Data(), "the original must be unaffected")
	assert.Equal(t, []int32{0, 1, 2, 3, 4, 5}, b.Data(), "the sharing view must be unaffected")
	assert.Equal(t, []int32{100, 1, 2, 3, 4, 5}, c.Data())
	assert.Equal(t, b.Sizes(), c.Sizes())
}

func TestIndexMapOnOffsetView(t *testing.T) {
	a := arange2x3(t)
	row, err := a.Slice([][2]int{{1, 2}}) // sizes [1, 3], base offset 3
	require.NoError(t, err)

	mutated, err := row.IndexMap(addHundred, []int{0, 1})
	require.NoError(t, err)

	assert.Equal(t, []int32{3, 104, 5}, mutated.Data())
	assert.Equal(t, []int32{0, 1, 2, 3, 4, 5}, a.Data())
}

func TestIndexMapOnNonContiguousView(t *testing.T) {
	a := arange2x3(t)
	transposed, err := a.Transpose(0, 1) // logical [[0,3],[1,4],[2,5]]
	require.NoError(t, err)

	mutated, err := transposed.IndexMap(addHundred, []int{2, 0})
	require.NoError(t, err)

	assert.Equal(t, []int32{0, 3, 1, 4, 102, 5}, mutated.Data())
	assert.Equal(t, []int32{0, 1, 2, 3, 4, 5}, a.Data())
}

func TestIndexMapValidates(t *testing.T) {
	a := arange2x3(t)

	_, err := a.IndexMap(addHundred, []int{0, 3})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = a.IndexMap(addHundred, []int{0})
	assert.ErrorIs(t, err, ErrDimensionCount)
}

func TestIndexMapDims(t *testing.T) {
	a := arange2x3(t)

	// Pin dimension 1 only; dimension 0 addresses coordinate 0.
	mutated, err := a.IndexMapDims(addHundred, []int{1}, []int{2})
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 1, 102, 3, 4, 5}, mutated.Data())
}

func TestSliceMap(t *testing.T) {
	a := arange2x3(t)

	mutated, err := a.SliceMap(addHundred, [][2]int{{0, 2}, {1, 2}})
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 101, 2, 3, 104, 5}, mutated.Data())
	assert.Equal(t, []int32{0, 1, 2, 3, 4, 5}, a.Data())
}

func TestSliceMapDims(t *testing.T) {
	a := arange2x3(t)

	mutated, err := a.SliceMapDims(addHundred, []int{1}, [][2]int{{0, 1}})
	require.NoError(t, err)
	assert.Equal(t, []int32{100, 1, 2, 103, 4, 5}, mutated.Data())
}

func TestSliceZip(t *testing.T) {
	a := arange2x3(t)

	mutated, err := a.SliceZip([]int32{10, 20}, func(old, incoming int32) int32 { return old + incoming }, [][2]int{{0, 2}, {2, 3}})
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 1, 12, 3, 4, 25}, mutated.Data())

	_, err = a.SliceZip([]int32{10}, func(_, incoming int32) int32 { return incoming }, [][2]int{{0, 2}, {2, 3}})
	assert.ErrorIs(t, err, ErrDataLength)
}

func TestSliceZipDims(t *testing.T) {
	a := arange2x3(t)

	mutated, err := a.SliceZipDims([]int32{10, 20, 30}, takeIncoming[int32], []int{0}, [][2]int{{1, 2}})
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 1, 2, 10, 20, 30}, mutated.Data())
}

func TestPad(t *testing.T) {
	a, err := New([]int32{1, 2, 3, 4}, []int{2, 2})
	require.NoError(t, err)

	padded, err := a.Pad(0, [][2]int{{1, 1}, {1, 1}})
	require.NoError(t, err)
	assert.Equal(t, []int{4, 4}, padded.Sizes())
	assert.Equal(t, []int32{
		0, 0, 0, 0,
		0, 1, 2, 0,
		0, 3, 4, 0,
		0, 0, 0, 0,
	}, padded.Data())
}

func TestPadAsymmetric(t *testing.T) {
	a, err := New1D([]int32{1, 2})
	require.NoError(t, err)

	padded, err := a.Pad(9, [][2]int{{2, 1}})
	require.NoError(t, err)
	assert.Equal(t, []int32{9, 9, 1, 2, 9}, padded.Data())

	_, err = a.Pad(9, [][2]int{{-1, 0}})
	assert.ErrorIs(t, err, ErrRangeOutOfBounds)
}

func TestPadDims(t *testing.T) {
	a, err := New([]int32{1, 2, 3, 4}, []int{2, 2})
	require.NoError(t, err)

	padded, err := a.PadDims(7, []int{1}, [][2]int{{1, 0}})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, padded.Sizes())
	assert.Equal(t, []int32{
		7, 1, 2,
		7, 3, 4,
	}, padded.Data())
}

func TestPadOnView(t *testing.T) {
	a := arange2x3(t)
	flipped, err := a.Flip([]int{1}) // logical [[2,1,0],[5,4,3]]
	require.NoError(t, err)

	padded, err := flipped.Pad(0, [][2]int{{0, 0}, {1, 1}})
	require.NoError(t, err)
	assert.Equal(t, []int32{
		0, 2, 1, 0, 0,
		0, 5, 4, 3, 0,
	}, padded.Data())
}

func TestSliceMapOnFlippedView(t *testing.T) {
	a, err := New1D([]int32{0, 1, 2, 3, 4})
	require.NoError(t, err)
	flipped, err := a.Flip([]int{0}) // logical [4,3,2,1,0]
	require.NoError(t, err)

	// Mutating logical positions [0,2) touches logical elements 4 and 3.
	mutated, err := flipped.SliceMap(addHundred, [][2]int{{0, 2}})
	require.NoError(t, err)
	assert.Equal(t, []int32{104, 103, 2, 1, 0}, mutated.Data())
	assert.Equal(t, []int32{0, 1, 2, 3, 4}, a.Data())
}
