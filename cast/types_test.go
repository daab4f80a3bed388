package cast

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainOf(t *testing.T) {
	tests := []struct {
		name string
		got  Domain
		want Domain
	}{
		{"int8", DomainOf[int8](), Domain{Signed, 8}},
		{"int16", DomainOf[int16](), Domain{Signed, 16}},
		{"int32", DomainOf[int32](), Domain{Signed, 32}},
		{"int64", DomainOf[int64](), Domain{Signed, 64}},
		{"int", DomainOf[int](), Domain{Signed, strconv.IntSize}},
		{"uint8", DomainOf[uint8](), Domain{Unsigned, 8}},
		{"uint16", DomainOf[uint16](), Domain{Unsigned, 16}},
		{"uint32", DomainOf[uint32](), Domain{Unsigned, 32}},
		{"uint64", DomainOf[uint64](), Domain{Unsigned, 64}},
		{"uint", DomainOf[uint](), Domain{Unsigned, strconv.IntSize}},
		{"uintptr", DomainOf[uintptr](), Domain{Unsigned, strconv.IntSize}},
		{"float32", DomainOf[float32](), Domain{Float, 32}},
		{"float64", DomainOf[float64](), Domain{Float, 64}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestDomainString(t *testing.T) {
	assert.Equal(t, "u8", DomainOf[uint8]().String())
	assert.Equal(t, "i32", DomainOf[int32]().String())
	assert.Equal(t, "f64", DomainOf[float64]().String())
	assert.Equal(t, "float", Float.String())
}

func TestDomainContains(t *testing.T) {
	u8, u16, i8, i16 := DomainOf[uint8](), DomainOf[uint16](), DomainOf[int8](), DomainOf[int16]()
	f32, f64 := DomainOf[float32](), DomainOf[float64]()
	i64, u64 := DomainOf[int64](), DomainOf[uint64]()

	assert.True(t, u16.Contains(u8))
	assert.True(t, i16.Contains(u8))
	assert.True(t, u8.Contains(u8))
	assert.False(t, u8.Contains(u16))
	assert.False(t, i8.Contains(u8))
	assert.False(t, u16.Contains(i8))
	assert.True(t, f32.Contains(i64))
	assert.True(t, f32.Contains(u64))
	assert.True(t, f64.Contains(f32))
	assert.False(t, f32.Contains(f64))
	assert.False(t, i64.Contains(f32))
}

func TestBounds(t *testing.T) {
	assert.Equal(t, int8(math.MaxInt8), MaxOf[int8]())
	assert.Equal(t, int8(math.MinInt8), MinOf[int8]())
	assert.Equal(t, int64(math.MaxInt64), MaxOf[int64]())
	assert.Equal(t, int64(math.MinInt64), MinOf[int64]())
	assert.Equal(t, uint8(math.MaxUint8), MaxOf[uint8]())
	assert.Equal(t, uint8(0), MinOf[uint8]())
	assert.Equal(t, uint64(math.MaxUint64), MaxOf[uint64]())
	assert.Equal(t, uint(math.MaxUint), MaxOf[uint]())
	assert.Equal(t, float32(math.MaxFloat32), MaxOf[float32]())
	assert.Equal(t, float32(-math.MaxFloat32), MinOf[float32]())
	assert.Equal(t, math.MaxFloat64, MaxOf[float64]())
}

func TestRange(t *testing.T) {
	r := Inclusive[uint16](0, 5)
	assert.False(t, r.Empty())
	assert.True(t, r.Contains(0))
	assert.True(t, r.Contains(5))
	assert.False(t, r.Contains(6))
	assert.Equal(t, "[0, 5]", r.String())

	single := Inclusive[int8](3, 3)
	assert.False(t, single.Empty())
	assert.True(t, single.Contains(3))

	assert.True(t, Inclusive[int8](4, 3).Empty())

	full := Full[int16]()
	assert.Equal(t, int16(math.MinInt16), full.Start)
	assert.Equal(t, int16(math.MaxInt16), full.End)
}
