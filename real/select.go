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

// Operations derived from Select and the comparisons. Every representation
// routes through these, so a new representation only has to get Select and
// the comparisons right.

// clampBySelect clamps v into [lo, hi] with two selects. Lanes where lo > hi
// are clamped into [hi, lo].
func clampBySelect[R Real[R, B, S], B any, S Float](v, lo, hi R) R {
	ordered := lo.Le(hi)
	lo, hi = lo.Select(hi, ordered), hi.Select(lo, ordered)
	low := lo.Select(v, v.Lt(lo))
	return hi.Select(low, v.Gt(hi))
}

func wrapBySelect[R Real[R, B, S], B any, S Float](v, at, span R) R {
	return v.Sub(span).Select(v, v.Gt(at))
}

// absBySelect negates lanes that are <= 0, which also turns -0 into +0.
func absBySelect[R Real[R, B, S], B any, S Float](v R) R {
	return v.Neg().Select(v, v.Le(v.Int(0)))
}

// minBySelect returns o where either side is NaN.
func minBySelect[R Real[R, B, S], B any, S Float](v, o R) R {
	return v.Select(o, v.Lt(o))
}

// maxBySelect returns o where either side is NaN.
func maxBySelect[R Real[R, B, S], B any, S Float](v, o R) R {
	return v.Select(o, v.Gt(o))
}

func invByDiv[R Real[R, B, S], B any, S Float](v R) R {
	return v.Int(1).Div(v)
}
