// Copyright 2025 go-real Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package real

import (
	"errors"
	"iter"

	"golang.org/x/exp/constraints"
)

// Float is the constraint for the leaf scalar domain of a Real type.
type Float interface {
	constraints.Float
}

// ErrUnsupported is wrapped by the panic value of operations a
// representation does not implement, such as Pow on lane groups.
var ErrUnsupported = errors.New("real: operation not supported")

// Rand is the random source consumed by Uniform01. *math/rand/v2.Rand
// satisfies it.
type Rand interface {
	// Float64 returns a uniform sample in [0, 1).
	Float64() float64
}

// Real is implemented by every representation of a real number: the scalars
// F32 and F64, the lane groups F32x4, F32x8, F64x2 and F64x4, and the
// composites Vec2, Vec3 and Vec4 of any Real type.
//
// R is the implementing type itself, B is the result type of comparisons
// (bool, a lane mask or a composite of masks) and S is the leaf scalar type.
// Generic algorithms are written as
//
//	func Lerp[R real.Real[R, B, S], B any, S real.Float](a, b, t R) R {
//		return b.Sub(a).MulAdd(t, a)
//	}
//
// Every lane-wise operation treats lanes independently. Comparisons are
// evaluated on every lane and Select never branches on lane values.
type Real[R any, B any, S Float] interface {
	Add(o R) R
	Sub(o R) R
	Mul(o R) R
	Div(o R) R
	Neg() R

	// MulAdd returns v*b + c. It is fused when the platform supports it,
	// so results may differ from Mul followed by Add in the last bit.
	MulAdd(b, c R) R

	// Inv returns Int(1) / v.
	Inv() R
	Abs() R
	Sqrt() R

	// Pow raises v to e. Lane groups panic with ErrUnsupported.
	Pow(e R) R
	Floor() R
	Ceil() R

	// Wrap returns v - span where v > at and v elsewhere.
	Wrap(at, span R) R

	// Clamp returns lo where v < lo, hi where v > hi and v elsewhere.
	Clamp(lo, hi R) R

	Lt(o R) B
	Le(o R) B
	Gt(o R) B
	Ge(o R) B
	Eq(o R) B

	// Select returns v where cond holds and o elsewhere.
	Select(o R, cond B) R

	Min(o R) R
	Max(o R) R

	// Values yields one scalar per lane in lane order. The sequence is
	// finite and may be ranged over any number of times.
	Values() iter.Seq[S]

	// Lanes returns the number of scalars Values yields.
	Lanes() int

	// The constructors ignore the receiver's value; it only selects the
	// representation: var p real.F32x8; p = p.Splat(2).

	Int(i int16) R
	Float(f float64) R
	Frac(num int16, den uint16) R
	Splat(s S) R
	Uniform01(r Rand) R
	Pi() R
}

// sample32 draws a float32 in [0, 1). Rounding a float64 sample to float32
// can produce 1, so the sample is quantized to 24 bits instead.
func sample32(r Rand) float32 {
	return float32(uint32(r.Float64()*(1<<24))) / (1 << 24)
}

func sample64(r Rand) float64 {
	return r.Float64()
}
