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

package cast

import "math"

// Strategy is the conversion rule selected for a (source, target) pair.
type Strategy uint8

const (
	// Unchecked is used when the target domain contains the source domain.
	// The native conversion cannot leave the target range, so no bounds
	// check is done. Integer to float may round.
	Unchecked Strategy = iota

	// SignFlip is used between a signed and an unsigned integer of equal
	// width. A value converts only if it is non-negative and, for unsigned
	// sources, not above the signed maximum.
	SignFlip

	// Checked is used for every other pair: the source value is compared
	// against the target's bounds before converting.
	Checked
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case Unchecked:
		return "unchecked"
	case SignFlip:
		return "signflip"
	case Checked:
		return "checked"
	default:
		return "unknown"
	}
}

// StrategyOf returns the strategy used to convert S values to T.
func StrategyOf[T, S Number]() Strategy {
	return strategyFor(DomainOf[T](), DomainOf[S]())
}

func strategyFor(dst, src Domain) Strategy {
	switch {
	case dst.Contains(src):
		return Unchecked
	case dst.Kind != Float && src.Kind != Float && dst.Kind != src.Kind && dst.Bits == src.Bits:
		return SignFlip
	default:
		return Checked
	}
}

// fits reports whether v lies in T's domain. Float sources are compared
// before truncation, so fractional values just outside a bound do not fit.
func fits[T, S Number](v S) bool {
	dst, src := DomainOf[T](), DomainOf[S]()
	if dst.Contains(src) {
		return !isNaN(v)
	}
	switch src.Kind {
	case Float:
		f := float64(v)
		if f != f {
			return false
		}
		if dst.Kind == Float {
			return f >= float64(MinOf[T]()) && f <= float64(MaxOf[T]())
		}
		// Integer maxima above 2^24 (float32) or 2^53 (float64) round up
		// to a power of two that itself does not fit.
		limit := math.Ldexp(1, dst.Bits)
		if dst.Kind == Signed {
			limit = math.Ldexp(1, dst.Bits-1)
		}
		return f >= float64(MinOf[T]()) && f <= float64(MaxOf[T]()) && f < limit
	case Signed:
		i := int64(v)
		if dst.Kind == Unsigned {
			return i >= 0 && uint64(i) <= uint64(MaxOf[T]())
		}
		return i >= int64(MinOf[T]()) && i <= int64(MaxOf[T]())
	default:
		return uint64(v) <= uint64(MaxOf[T]())
	}
}
