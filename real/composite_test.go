package real

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"
)

func TestCompositeWrap(t *testing.T) {
	var p Vec3F32
	got := Vec3F32{1, 5, -2}.Wrap(p.Splat(3), p.Splat(10))
	want := Vec3F32{1, -5, -2}
	if got != want {
		t.Errorf("Wrap: got %v, want %v", got, want)
	}
}

func TestCompositeArithmetic(t *testing.T) {
	a := Vec2F64{3, -4}
	b := Vec2F64{1, 2}
	tests := []struct {
		name string
		got  Vec2F64
		want Vec2F64
	}{
		{"Add", a.Add(b), Vec2F64{4, -2}},
		{"Sub", a.Sub(b), Vec2F64{2, -6}},
		{"Mul", a.Mul(b), Vec2F64{3, -8}},
		{"Div", a.Div(b), Vec2F64{3, -2}},
		{"Neg", a.Neg(), Vec2F64{-3, 4}},
		{"Abs", a.Abs(), Vec2F64{3, 4}},
		{"Inv", b.Inv(), Vec2F64{1, 0.5}},
		{"Min", a.Min(b), Vec2F64{1, -4}},
		{"Max", a.Max(b), Vec2F64{3, 2}},
		{"MulAdd", a.MulAdd(b, b), Vec2F64{4, -6}},
		{"Sqrt", Vec2F64{9, 16}.Sqrt(), Vec2F64{3, 4}},
		{"Pow", Vec2F64{2, 3}.Pow(Vec2F64{3, 2}), Vec2F64{8, 9}},
		{"Floor", Vec2F64{1.5, -1.5}.Floor(), Vec2F64{1, -2}},
		{"Ceil", Vec2F64{1.5, -1.5}.Ceil(), Vec2F64{2, -1}},
		{"Clamp", a.Clamp(Vec2F64{0, 0}, Vec2F64{2, 2}), Vec2F64{2, 0}},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestCompositeBool(t *testing.T) {
	a := Vec3F32{1, 2, 3}
	b := Vec3F32{2, 2, 2}
	if got, want := a.Lt(b), (Bool3[bool]{true, false, false}); got != want {
		t.Errorf("Lt: got %v, want %v", got, want)
	}
	if got, want := a.Le(b), (Bool3[bool]{true, true, false}); got != want {
		t.Errorf("Le: got %v, want %v", got, want)
	}
	if got, want := a.Gt(b), (Bool3[bool]{false, false, true}); got != want {
		t.Errorf("Gt: got %v, want %v", got, want)
	}
	if got, want := a.Ge(b), (Bool3[bool]{false, true, true}); got != want {
		t.Errorf("Ge: got %v, want %v", got, want)
	}
	if got, want := a.Eq(b), (Bool3[bool]{false, true, false}); got != want {
		t.Errorf("Eq: got %v, want %v", got, want)
	}
	if got, want := a.Select(b, a.Gt(b)), (Vec3F32{2, 2, 3}); got != want {
		t.Errorf("Select: got %v, want %v", got, want)
	}
}

func TestCompositeOfLanes(t *testing.T) {
	type V = Vec3[F32x4, M32x4, float32]
	v := V{{0, 1, 2, 3}, {4, 5, 6, 7}, {8, 9, 10, 11}}

	if v.Lanes() != 12 {
		t.Errorf("Lanes: got %d, want 12", v.Lanes())
	}
	got := slices.Collect(v.Values())
	for i, s := range got {
		if s != float32(i) {
			t.Errorf("Values: lane %d: got %v, want %v", i, s, i)
		}
	}
	if len(got) != 12 {
		t.Errorf("Values: got %d lanes, want 12", len(got))
	}

	m := v.Gt(v.Splat(5))
	if m[0].AnyTrue() || m[1].CountTrue() != 2 || !m[2].AllTrue() {
		t.Errorf("Gt: got %v %v %v", m[0].Bools(), m[1].Bools(), m[2].Bools())
	}
	sel := v.Select(v.Splat(-1), m)
	want := V{{-1, -1, -1, -1}, {-1, -1, 6, 7}, {8, 9, 10, 11}}
	if sel != want {
		t.Errorf("Select: got %v, want %v", sel, want)
	}
}

func TestNestedComposite(t *testing.T) {
	type Inner = Vec3F64
	type Outer = Vec2[Inner, Bool3[bool], float64]
	v := Outer{{1, 2, 3}, {4, 5, 6}}

	if v.Lanes() != 6 {
		t.Errorf("Lanes: got %d, want 6", v.Lanes())
	}
	if got, want := slices.Collect(v.Values()), []float64{1, 2, 3, 4, 5, 6}; !slices.Equal(got, want) {
		t.Errorf("Values: got %v, want %v", got, want)
	}

	var zero Outer
	if got := zero.Int(2); got != (Outer{{2, 2, 2}, {2, 2, 2}}) {
		t.Errorf("Int: got %v", got)
	}
	if got := zero.Frac(1, 4); got != (Outer{{0.25, 0.25, 0.25}, {0.25, 0.25, 0.25}}) {
		t.Errorf("Frac: got %v", got)
	}

	m := v.Ge(zero.Float(3.5))
	want := Bool2[Bool3[bool]]{{false, false, false}, {true, true, true}}
	if m != want {
		t.Errorf("Ge: got %v, want %v", m, want)
	}

	w := v.Wrap(zero.Splat(3), zero.Splat(10))
	if got, want := w, (Outer{{1, 2, 3}, {-6, -5, -4}}); got != want {
		t.Errorf("Wrap: got %v, want %v", got, want)
	}
}

func TestCompositeConstructors(t *testing.T) {
	var p Vec4F32xN
	pi := p.Pi()
	for s := range pi.Values() {
		if s != float32(math.Pi) {
			t.Fatalf("Pi: got %v, want %v", s, float32(math.Pi))
		}
	}
	if got, want := pi.Lanes(), 4*NativeLanes32(); got != want {
		t.Errorf("Lanes: got %d, want %d", got, want)
	}

	r := rand.New(rand.NewPCG(5, 6))
	u := p.Uniform01(r)
	seen := make(map[float32]bool)
	for s := range u.Values() {
		if s < 0 || s >= 1 {
			t.Fatalf("Uniform01: got %v, want [0, 1)", s)
		}
		seen[s] = true
	}
	if len(seen) < 2 {
		t.Errorf("Uniform01: elements share one sample")
	}
}

func TestCompositeValuesEarlyBreak(t *testing.T) {
	v := Vec4F64{1, 2, 3, 4}
	var got []float64
	for s := range v.Values() {
		got = append(got, s)
		if s == 2 {
			break
		}
	}
	if !slices.Equal(got, []float64{1, 2}) {
		t.Errorf("Values: got %v, want [1 2]", got)
	}
}
