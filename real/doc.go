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

// Package real provides one algebraic interface over three shapes of real
// numbers, so a numeric algorithm is written once and instantiated for each:
//
//   - scalars: F32 and F64, compared into bool
//   - lane groups: F32x4, F32x8, F64x2 and F64x4, compared into the masks
//     M32x4, M32x8, M64x2 and M64x4
//   - composites: Vec2, Vec3 and Vec4 of any Real type, compared into
//     Bool2, Bool3 and Bool4 of the element's comparison type
//
// Composites nest, so a Vec3[F32x8, M32x8, float32] is a 3D point whose
// coordinates each hold 8 lanes, 24 lanes in total.
//
// # Writing generic code
//
// Algorithms take the representation R, its comparison type B and its
// scalar S as type parameters:
//
//	func Smoothstep[R real.Real[R, B, S], B any, S real.Float](x R) R {
//		x = x.Clamp(x.Int(0), x.Int(1))
//		return x.Mul(x).Mul(x.Int(3).Sub(x.Int(2).Mul(x)))
//	}
//
//	y := Smoothstep[real.F32xN, real.M32xN, float32](x)
//
// Branches are expressed with comparisons and Select, which evaluate every
// lane:
//
//	y := a.Select(b, a.Gt(b)) // per lane: a > b ? a : b
//
// # Lane width
//
// F32xN and F64xN alias the lane groups that fill one native register:
// 256 bits on amd64 and 128 bits elsewhere. CurrentName reports the
// instruction set detected at startup and HasFMA whether MulAdd is fused.
//
// On amd64, building with GOEXPERIMENT=simd routes arithmetic, comparisons
// and Select of the lane groups through simd/archsimd; HasSIMD reports
// whether that path is active. Other builds compute lane by lane.
//
// # Environment Variables
//
//   - REAL_NO_SIMD=1: report the scalar dispatch level and disable fused
//     multiply-add
//   - REAL_NO_FMA=1: compute MulAdd as a rounded multiply followed by an add
//
// # Unsupported operations
//
// Pow on a lane group panics with an error wrapping ErrUnsupported. Sqrt and
// Pow are available on scalars and on composites of scalars.
package real
