package real_test

import (
	"fmt"

	"github.com/ajroetker/go-real/real"
)

// smoothstep is written once and runs on scalars, lanes and composites.
func smoothstep[R real.Real[R, B, S], B any, S real.Float](x R) R {
	x = x.Clamp(x.Int(0), x.Int(1))
	return x.Mul(x).Mul(x.Int(3).Sub(x.Int(2).Mul(x)))
}

func Example() {
	fmt.Println(smoothstep[real.F64, bool, float64](0.5))
	fmt.Println(smoothstep[real.F32x4, real.M32x4, float32](real.F32x4{-1, 0.25, 0.5, 2}))
	fmt.Println(smoothstep[real.Vec2F64, real.Bool2[bool], float64](real.Vec2F64{0, 0.75}))
	// Output:
	// 0.5
	// [0 0.15625 0.5 1]
	// [0 0.84375]
}

func ExampleF32x4_Select() {
	var v real.F32x4
	five, three, one := v.Splat(5), v.Splat(3), v.Splat(1)
	mask := five.Gt(three)
	fmt.Println(mask.AllTrue(), five.Select(one, mask))
	// Output: true [5 5 5 5]
}

func ExampleVec3_Wrap() {
	var p real.Vec3F32
	fmt.Println(real.Vec3F32{1, 5, -2}.Wrap(p.Splat(3), p.Splat(10)))
	// Output: [1 -5 -2]
}
