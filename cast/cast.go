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

// To converts v to T if v lies in T's domain. Float sources truncate toward
// zero once they are known to be in range. NaN never converts.
func To[T, S Number](v S) (T, bool) {
	switch StrategyOf[T, S]() {
	case Unchecked:
		if isNaN(v) {
			return 0, false
		}
		return T(v), true
	case SignFlip:
		t := T(v)
		// Exactly one side can be negative after reinterpretation.
		if v < 0 || t < 0 {
			return 0, false
		}
		return t, true
	default:
		if !fits[T](v) {
			return 0, false
		}
		return T(v), true
	}
}

// Clipped converts v to T if v lies in T's domain and inside r. An empty
// range (Start > End) never matches.
func Clipped[T, S Number](v S, r Range[T]) (T, bool) {
	if r.Empty() {
		return 0, false
	}
	t, ok := To[T](v)
	if !ok {
		return 0, false
	}
	if DomainOf[S]().Kind == Float && DomainOf[T]().Kind != Float {
		// Compare before truncation: 5.5 is not inside [0, 5].
		f := float64(v)
		if f < float64(r.Start) || f > float64(r.End) {
			return 0, false
		}
		return t, true
	}
	if !r.Contains(t) {
		return 0, false
	}
	return t, true
}

// Clamped converts v to T and saturates the result into r: values below
// r.Start yield r.Start, values above r.End yield r.End. A reversed range is
// treated as its swapped form. NaN yields the lower bound.
func Clamped[T, S Number](v S, r Range[T]) T {
	lo, hi := r.Start, r.End
	if lo > hi {
		lo, hi = hi, lo
	}
	if isNaN(v) {
		return lo
	}
	// Saturation into T's domain and then into [lo, hi] composes because
	// both the native conversion and the clamps are monotonic.
	t := Clamping[T](v)
	switch {
	case t < lo:
		return lo
	case t > hi:
		return hi
	default:
		return t
	}
}

// Clamping converts v to T, saturating into T's finite domain
// [MinOf[T](), MaxOf[T]()]. NaN yields 0 for integer targets and NaN for
// float targets.
func Clamping[T, S Number](v S) T {
	switch StrategyOf[T, S]() {
	case Unchecked:
		return T(v)
	case SignFlip:
		if v < 0 {
			return 0
		}
		t := T(v)
		if t < 0 {
			return MaxOf[T]()
		}
		return t
	default:
		if fits[T](v) {
			return T(v)
		}
		if isNaN(v) {
			if DomainOf[T]().Kind == Float {
				return T(v)
			}
			return 0
		}
		// A value outside a domain that straddles zero is below it exactly
		// when it is negative.
		if v < 0 {
			return MinOf[T]()
		}
		return MaxOf[T]()
	}
}

// Try is To with the failure reported as a *RangeError.
func Try[T, S Number](v S) (T, error) {
	t, ok := To[T](v)
	if !ok {
		return 0, &RangeError{Value: v, Source: DomainOf[S](), Target: DomainOf[T]()}
	}
	return t, nil
}
