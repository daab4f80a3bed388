// Package cast provides explicit conversions between fixed-width numeric types
// with well-defined boundary semantics.
//
// Every pair of numeric domains supports four conversion policies:
//
//	t, ok := cast.To[uint8](v)                            // exact or nothing
//	t, ok := cast.Clipped(v, cast.Inclusive[uint16](0, 5)) // exact and inside a range
//	t := cast.Clamped(v, cast.Inclusive[uint16](0, 5))     // saturate into a range
//	t := cast.Clamping[uint8](v)                          // saturate into the target domain
//
// The conversion strategy for a pair (widening, narrowing or equal-width
// signedness flip) is derived from static domain metadata, so no pair is
// spelled out by hand.
package cast

import (
	"fmt"
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Number is a constraint for the numeric domains conversions are defined
// between. Pointer-sized integers behave like the fixed-width integer of the
// build target's pointer width.
type Number interface {
	constraints.Integer | constraints.Float
}

// Kind is the family of a numeric domain.
type Kind uint8

const (
	// Unsigned integers: uint8 .. uint64, uint, uintptr.
	Unsigned Kind = iota

	// Signed integers: int8 .. int64, int.
	Signed

	// Float is an IEEE 754 binary floating-point domain.
	Float
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case Unsigned:
		return "unsigned"
	case Signed:
		return "signed"
	case Float:
		return "float"
	default:
		return "unknown"
	}
}

// Domain describes the representable range of a numeric type.
type Domain struct {
	Kind Kind
	Bits int
}

// DomainOf returns the domain of T.
func DomainOf[T Number]() Domain {
	var zero T
	bits := int(unsafe.Sizeof(zero)) * 8
	var one T = 1
	switch {
	case one/2 != zero:
		return Domain{Kind: Float, Bits: bits}
	case zero-one < zero:
		return Domain{Kind: Signed, Bits: bits}
	default:
		return Domain{Kind: Unsigned, Bits: bits}
	}
}

// String returns the conventional short name, e.g. "u8", "i32" or "f64".
func (d Domain) String() string {
	switch d.Kind {
	case Unsigned:
		return fmt.Sprintf("u%d", d.Bits)
	case Signed:
		return fmt.Sprintf("i%d", d.Bits)
	case Float:
		return fmt.Sprintf("f%d", d.Bits)
	default:
		return "unknown"
	}
}

// Contains reports whether every value of o is inside d's range.
// Integer domains are always inside float domains: the float may round, but
// never overflows.
func (d Domain) Contains(o Domain) bool {
	switch {
	case d.Kind == Float:
		return o.Kind != Float || d.Bits >= o.Bits
	case o.Kind == Float:
		return false
	case d.Kind == o.Kind:
		return d.Bits >= o.Bits
	case d.Kind == Signed:
		return d.Bits > o.Bits
	default:
		return false
	}
}

// MaxOf returns the largest finite value of T.
func MaxOf[T Number]() T {
	d := DomainOf[T]()
	switch d.Kind {
	case Float:
		f := math.MaxFloat64
		if d.Bits == 32 {
			f = math.MaxFloat32
		}
		return T(f)
	case Signed:
		i := int64(^uint64(0) >> (65 - d.Bits))
		return T(i)
	default:
		u := ^uint64(0) >> (64 - d.Bits)
		return T(u)
	}
}

// MinOf returns the smallest finite value of T.
func MinOf[T Number]() T {
	d := DomainOf[T]()
	switch d.Kind {
	case Float:
		f := -math.MaxFloat64
		if d.Bits == 32 {
			f = -math.MaxFloat32
		}
		return T(f)
	case Signed:
		i := -int64(^uint64(0)>>(65-d.Bits)) - 1
		return T(i)
	default:
		return 0
	}
}

// Range is an inclusive range [Start, End] in the target domain.
type Range[T Number] struct {
	Start T
	End   T
}

// Inclusive returns the range [start, end].
func Inclusive[T Number](start, end T) Range[T] {
	return Range[T]{Start: start, End: end}
}

// Full returns the range spanning T's finite domain.
func Full[T Number]() Range[T] {
	return Range[T]{Start: MinOf[T](), End: MaxOf[T]()}
}

// Empty reports whether the range holds no value (Start > End).
func (r Range[T]) Empty() bool {
	return r.Start > r.End
}

// Contains reports whether Start <= v <= End.
func (r Range[T]) Contains(v T) bool {
	return v >= r.Start && v <= r.End
}

// String formats the range as "[start, end]".
func (r Range[T]) String() string {
	return fmt.Sprintf("[%v, %v]", r.Start, r.End)
}

func isNaN[T Number](v T) bool {
	return v != v
}
