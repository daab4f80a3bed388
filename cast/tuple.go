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

// Tuples convert elementwise. To and Clipped succeed only if every element
// does and stop at the first failing element; Clamped and Clamping always
// succeed because each element saturates on its own.

// Tuple2 is a pair of possibly different numeric domains.
type Tuple2[A, B Number] struct {
	V0 A
	V1 B
}

// Tuple3 is a triple of possibly different numeric domains.
type Tuple3[A, B, C Number] struct {
	V0 A
	V1 B
	V2 C
}

// Tuple4 is a quadruple of possibly different numeric domains.
type Tuple4[A, B, C, D Number] struct {
	V0 A
	V1 B
	V2 C
	V3 D
}

// Tuple2To converts each element of v with To.
func Tuple2To[TA, TB, SA, SB Number](v Tuple2[SA, SB]) (Tuple2[TA, TB], bool) {
	var r Tuple2[TA, TB]
	var ok bool
	if r.V0, ok = To[TA](v.V0); !ok {
		return Tuple2[TA, TB]{}, false
	}
	if r.V1, ok = To[TB](v.V1); !ok {
		return Tuple2[TA, TB]{}, false
	}
	return r, true
}

// Tuple2Clipped converts each element of v with Clipped against the matching
// elements of start and end.
func Tuple2Clipped[TA, TB, SA, SB Number](v Tuple2[SA, SB], start, end Tuple2[TA, TB]) (Tuple2[TA, TB], bool) {
	var r Tuple2[TA, TB]
	var ok bool
	if r.V0, ok = Clipped(v.V0, Inclusive(start.V0, end.V0)); !ok {
		return Tuple2[TA, TB]{}, false
	}
	if r.V1, ok = Clipped(v.V1, Inclusive(start.V1, end.V1)); !ok {
		return Tuple2[TA, TB]{}, false
	}
	return r, true
}

// Tuple2Clamped converts each element of v with Clamped.
func Tuple2Clamped[TA, TB, SA, SB Number](v Tuple2[SA, SB], start, end Tuple2[TA, TB]) Tuple2[TA, TB] {
	return Tuple2[TA, TB]{
		V0: Clamped(v.V0, Inclusive(start.V0, end.V0)),
		V1: Clamped(v.V1, Inclusive(start.V1, end.V1)),
	}
}

// Tuple2Clamping converts each element of v with Clamping.
func Tuple2Clamping[TA, TB, SA, SB Number](v Tuple2[SA, SB]) Tuple2[TA, TB] {
	return Tuple2[TA, TB]{
		V0: Clamping[TA](v.V0),
		V1: Clamping[TB](v.V1),
	}
}

// Tuple3To converts each element of v with To.
func Tuple3To[TA, TB, TC, SA, SB, SC Number](v Tuple3[SA, SB, SC]) (Tuple3[TA, TB, TC], bool) {
	var r Tuple3[TA, TB, TC]
	var ok bool
	if r.V0, ok = To[TA](v.V0); !ok {
		return Tuple3[TA, TB, TC]{}, false
	}
	if r.V1, ok = To[TB](v.V1); !ok {
		return Tuple3[TA, TB, TC]{}, false
	}
	if r.V2, ok = To[TC](v.V2); !ok {
		return Tuple3[TA, TB, TC]{}, false
	}
	return r, true
}

// Tuple3Clipped converts each element of v with Clipped.
func Tuple3Clipped[TA, TB, TC, SA, SB, SC Number](v Tuple3[SA, SB, SC], start, end Tuple3[TA, TB, TC]) (Tuple3[TA, TB, TC], bool) {
	var r Tuple3[TA, TB, TC]
	var ok bool
	if r.V0, ok = Clipped(v.V0, Inclusive(start.V0, end.V0)); !ok {
		return Tuple3[TA, TB, TC]{}, false
	}
	if r.V1, ok = Clipped(v.V1, Inclusive(start.V1, end.V1)); !ok {
		return Tuple3[TA, TB, TC]{}, false
	}
	if r.V2, ok = Clipped(v.V2, Inclusive(start.V2, end.V2)); !ok {
		return Tuple3[TA, TB, TC]{}, false
	}
	return r, true
}

// Tuple3Clamped converts each element of v with Clamped.
func Tuple3Clamped[TA, TB, TC, SA, SB, SC Number](v Tuple3[SA, SB, SC], start, end Tuple3[TA, TB, TC]) Tuple3[TA, TB, TC] {
	return Tuple3[TA, TB, TC]{
		V0: Clamped(v.V0, Inclusive(start.V0, end.V0)),
		V1: Clamped(v.V1, Inclusive(start.V1, end.V1)),
		V2: Clamped(v.V2, Inclusive(start.V2, end.V2)),
	}
}

// Tuple3Clamping converts each element of v with Clamping.
func Tuple3Clamping[TA, TB, TC, SA, SB, SC Number](v Tuple3[SA, SB, SC]) Tuple3[TA, TB, TC] {
	return Tuple3[TA, TB, TC]{
		V0: Clamping[TA](v.V0),
		V1: Clamping[TB](v.V1),
		V2: Clamping[TC](v.V2),
	}
}

// Tuple4To converts each element of v with To.
func Tuple4To[TA, TB, TC, TD, SA, SB, SC, SD Number](v Tuple4[SA, SB, SC, SD]) (Tuple4[TA, TB, TC, TD], bool) {
	var r Tuple4[TA, TB, TC, TD]
	var ok bool
	if r.V0, ok = To[TA](v.V0); !ok {
		return Tuple4[TA, TB, TC, TD]{}, false
	}
	if r.V1, ok = To[TB](v.V1); !ok {
		return Tuple4[TA, TB, TC, TD]{}, false
	}
	if r.V2, ok = To[TC](v.V2); !ok {
		return Tuple4[TA, TB, TC, TD]{}, false
	}
	if r.V3, ok = To[TD](v.V3); !ok {
		return Tuple4[TA, TB, TC, TD]{}, false
	}
	return r, true
}

// Tuple4Clipped converts each element of v with Clipped.
func Tuple4Clipped[TA, TB, TC, TD, SA, SB, SC, SD Number](v Tuple4[SA, SB, SC, SD], start, end Tuple4[TA, TB, TC, TD]) (Tuple4[TA, TB, TC, TD], bool) {
	var r Tuple4[TA, TB, TC, TD]
	var ok bool
	if r.V0, ok = Clipped(v.V0, Inclusive(start.V0, end.V0)); !ok {
		return Tuple4[TA, TB, TC, TD]{}, false
	}
	if r.V1, ok = Clipped(v.V1, Inclusive(start.V1, end.V1)); !ok {
		return Tuple4[TA, TB, TC, TD]{}, false
	}
	if r.V2, ok = Clipped(v.V2, Inclusive(start.V2, end.V2)); !ok {
		return Tuple4[TA, TB, TC, TD]{}, false
	}
	if r.V3, ok = Clipped(v.V3, Inclusive(start.V3, end.V3)); !ok {
		return Tuple4[TA, TB, TC, TD]{}, false
	}
	return r, true
}

// Tuple4Clamped converts each element of v with Clamped.
func Tuple4Clamped[TA, TB, TC, TD, SA, SB, SC, SD Number](v Tuple4[SA, SB, SC, SD], start, end Tuple4[TA, TB, TC, TD]) Tuple4[TA, TB, TC, TD] {
	return Tuple4[TA, TB, TC, TD]{
		V0: Clamped(v.V0, Inclusive(start.V0, end.V0)),
		V1: Clamped(v.V1, Inclusive(start.V1, end.V1)),
		V2: Clamped(v.V2, Inclusive(start.V2, end.V2)),
		V3: Clamped(v.V3, Inclusive(start.V3, end.V3)),
	}
}

// Tuple4Clamping converts each element of v with Clamping.
func Tuple4Clamping[TA, TB, TC, TD, SA, SB, SC, SD Number](v Tuple4[SA, SB, SC, SD]) Tuple4[TA, TB, TC, TD] {
	return Tuple4[TA, TB, TC, TD]{
		V0: Clamping[TA](v.V0),
		V1: Clamping[TB](v.V1),
		V2: Clamping[TC](v.V2),
		V3: Clamping[TD](v.V3),
	}
}
