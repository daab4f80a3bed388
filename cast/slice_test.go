package cast

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSlice(t *testing.T) {
	got, ok := ToSlice[uint8]([]int32{0, 1, 255})
	require.True(t, ok)
	assert.Equal(t, []uint8{0, 1, 255}, got)

	got, ok = ToSlice[uint8]([]int32{0, 256})
	assert.False(t, ok)
	assert.Nil(t, got)

	empty, ok := ToSlice[float32]([]float64{})
	assert.True(t, ok)
	assert.Empty(t, empty)
}

func TestTrySlice(t *testing.T) {
	got, err := TrySlice[int8]([]float32{-1.5, 2})
	require.NoError(t, err)
	assert.Equal(t, []int8{-1, 2}, got)

	_, err = TrySlice[int8]([]float32{1, 200})
	assert.True(t, errors.Is(err, ErrOutOfRange))
}

func TestClampingSlice(t *testing.T) {
	dst := make([]uint8, 3)
	n := ClampingSlice(dst, []int16{-5, 300, 42, 7})
	assert.Equal(t, 3, n)
	assert.Equal(t, []uint8{0, 255, 42}, dst)
}

func TestClampedSlice(t *testing.T) {
	dst := make([]uint16, 5)
	n := ClampedSlice(dst, []float32{-3, 8, 3, 5.5}, Inclusive[uint16](0, 5))
	assert.Equal(t, 4, n)
	assert.Equal(t, []uint16{0, 5, 3, 5, 0}, dst)
}
