package real

import (
	"errors"
	"math"
	"math/rand/v2"
	"slices"
	"testing"
)

func TestLoadStore(t *testing.T) {
	data := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9}
	v := LoadF32x8(data)
	for i := 0; i < v.Lanes(); i++ {
		if v.Get(i) != data[i] {
			t.Errorf("LoadF32x8: lane %d: got %v, want %v", i, v.Get(i), data[i])
		}
	}

	out := make([]float32, 8)
	v.StoreSlice(out)
	if !slices.Equal(out, data[:8]) {
		t.Errorf("StoreSlice: got %v, want %v", out, data[:8])
	}
	if got := v.Store(); got != [8]float32(data[:8]) {
		t.Errorf("Store: got %v, want %v", got, data[:8])
	}

	defer func() {
		if recover() == nil {
			t.Error("LoadF64x4 of a short slice did not panic")
		}
	}()
	LoadF64x4([]float64{1, 2, 3})
}

func TestBroadcast(t *testing.T) {
	v := BroadcastF64x2(42)
	for i := 0; i < v.Lanes(); i++ {
		if v[i] != 42 {
			t.Errorf("BroadcastF64x2: lane %d: got %v, want 42", i, v[i])
		}
	}
}

func TestLaneArithmetic(t *testing.T) {
	a := F32x4{1, 2, 3, 4}
	b := F32x4{4, 3, 2, 1}

	tests := []struct {
		name string
		got  F32x4
		want F32x4
	}{
		{"Add", a.Add(b), F32x4{5, 5, 5, 5}},
		{"Sub", a.Sub(b), F32x4{-3, -1, 1, 3}},
		{"Mul", a.Mul(b), F32x4{4, 6, 6, 4}},
		{"Div", a.Div(b), F32x4{0.25, 2.0 / 3, 1.5, 4}},
		{"Neg", a.Neg(), F32x4{-1, -2, -3, -4}},
		{"Inv", F32x4{1, 2, 4, 8}.Inv(), F32x4{1, 0.5, 0.25, 0.125}},
		{"Sqrt", F32x4{1, 4, 9, 16}.Sqrt(), F32x4{1, 2, 3, 4}},
		{"Floor", F32x4{-1.5, -0.5, 0.5, 1.5}.Floor(), F32x4{-2, -1, 0, 1}},
		{"Ceil", F32x4{-1.5, -0.5, 0.5, 1.5}.Ceil(), F32x4{-1, 0, 1, 2}},
		{"Abs", F32x4{-1.5, -0.5, 0.5, 1.5}.Abs(), F32x4{1.5, 0.5, 0.5, 1.5}},
		{"Min", a.Min(b), F32x4{1, 2, 2, 1}},
		{"Max", a.Max(b), F32x4{4, 3, 3, 4}},
		{"MulAdd", a.MulAdd(b, a), F32x4{5, 8, 9, 8}},
		{"Wrap", F32x4{1, 5, -2, 3}.Wrap(BroadcastF32x4(3), BroadcastF32x4(10)), F32x4{1, -5, -2, 3}},
		{"Clamp", F32x4{-5, 0, 0.5, 5}.Clamp(BroadcastF32x4(0), BroadcastF32x4(1)), F32x4{0, 0, 0.5, 1}},
	}
	for _, tt := range tests {
		for i := range tt.want {
			if tt.got[i] != tt.want[i] {
				t.Errorf("%s: lane %d: got %v, want %v", tt.name, i, tt.got[i], tt.want[i])
			}
		}
	}
}

func TestLaneComparisons(t *testing.T) {
	a := F64x4{1, 2, 3, math.NaN()}
	b := F64x4{2, 2, 2, 2}

	tests := []struct {
		name string
		got  M64x4
		want [4]bool
	}{
		{"Lt", a.Lt(b), [4]bool{true, false, false, false}},
		{"Le", a.Le(b), [4]bool{true, true, false, false}},
		{"Gt", a.Gt(b), [4]bool{false, false, true, false}},
		{"Ge", a.Ge(b), [4]bool{false, true, true, false}},
		{"Eq", a.Eq(b), [4]bool{false, true, false, false}},
	}
	for _, tt := range tests {
		for i, want := range tt.want {
			if tt.got.Lane(i) != want {
				t.Errorf("%s: lane %d: got %v, want %v", tt.name, i, tt.got.Lane(i), want)
			}
			if want && tt.got[i] != ^uint64(0) {
				t.Errorf("%s: lane %d: got bits %#x, want all ones", tt.name, i, tt.got[i])
			}
		}
	}
}

func TestSplatCompareSelect(t *testing.T) {
	var v F32x4
	five, three, one := v.Splat(5), v.Splat(3), v.Splat(1)

	mask := five.Gt(three)
	if !mask.AllTrue() {
		t.Fatalf("Gt: got %v, want all true", mask.Bools())
	}
	if got := five.Select(one, mask); got != five {
		t.Errorf("Select: got %v, want %v", got, five)
	}
	if got := five.Select(one, mask.Not()); got != one {
		t.Errorf("Select(Not): got %v, want %v", got, one)
	}

	var n F32xN
	if !n.Splat(5).Gt(n.Splat(3)).AllTrue() {
		t.Errorf("F32xN Gt: want all true")
	}
}

func TestLaneSelect(t *testing.T) {
	a := F32x8{0, 1, 2, 3, 4, 5, 6, 7}
	b := F32x8{10, 11, 12, 13, 14, 15, 16, 17}
	cond := M32x8FromBools([8]bool{true, false, true, false, false, true, true, false})
	want := F32x8{0, 11, 2, 13, 14, 5, 6, 17}
	if got := a.Select(b, cond); got != want {
		t.Errorf("Select: got %v, want %v", got, want)
	}

	// Select moves bits, so NaN payloads and signed zeros pass through.
	neg0 := float32(math.Copysign(0, -1))
	c := F32x4{neg0, float32(math.NaN()), 1, 2}
	got := c.Select(F32x4{}, M32x4FromBools([4]bool{true, true, false, false}))
	if !math.Signbit(float64(got[0])) {
		t.Errorf("Select: lane 0: got %v, want -0", got[0])
	}
	if !math.IsNaN(float64(got[1])) {
		t.Errorf("Select: lane 1: got %v, want NaN", got[1])
	}
}

func TestMaskHelpers(t *testing.T) {
	m := M32x4FromBools([4]bool{true, false, true, false})
	o := M32x4FromBools([4]bool{true, true, false, false})

	if m.AllTrue() || !m.AnyTrue() {
		t.Errorf("AllTrue/AnyTrue: got %v/%v, want false/true", m.AllTrue(), m.AnyTrue())
	}
	if m.CountTrue() != 2 {
		t.Errorf("CountTrue: got %d, want 2", m.CountTrue())
	}
	if got, want := m.And(o).Bools(), [4]bool{true, false, false, false}; got != want {
		t.Errorf("And: got %v, want %v", got, want)
	}
	if got, want := m.Or(o).Bools(), [4]bool{true, true, true, false}; got != want {
		t.Errorf("Or: got %v, want %v", got, want)
	}
	if got, want := m.Not().Bools(), [4]bool{false, true, false, true}; got != want {
		t.Errorf("Not: got %v, want %v", got, want)
	}
	var none M64x2
	if none.AnyTrue() || !none.Not().AllTrue() {
		t.Errorf("zero mask: AnyTrue must be false and Not().AllTrue() true")
	}
}

// Min and Max pick o unless the comparison holds, so a NaN on either side
// yields o, like x86 MINPS and MAXPS.
func TestLaneMinMaxNaN(t *testing.T) {
	nan := math.NaN()
	a := F64x2{nan, 1}
	b := F64x2{1, nan}
	tests := []struct {
		name string
		got  F64x2
		want F64x2
	}{
		{"a.Min(b)", a.Min(b), b},
		{"a.Max(b)", a.Max(b), b},
		{"b.Min(a)", b.Min(a), a},
		{"b.Max(a)", b.Max(a), a},
	}
	for _, tt := range tests {
		for i := range tt.want {
			if !sameBits(float64(tt.got[i]), float64(tt.want[i])) {
				t.Errorf("%s: lane %d: got %v, want %v", tt.name, i, tt.got[i], tt.want[i])
			}
		}
	}
}

// Lane groups and scalars agree on Min and Max for signed zeros and NaN.
func TestLaneMinMaxMatchesScalar(t *testing.T) {
	negZero := math.Copysign(0, -1)
	pairs := [][2]float64{
		{negZero, 0}, {0, negZero}, {math.NaN(), 1}, {1, math.NaN()}, {2, 3}, {-3, -2},
	}
	for _, p := range pairs {
		v, o := p[0], p[1]
		if got, want := BroadcastF32x4(float32(v)).Min(BroadcastF32x4(float32(o)))[0], F32(v).Min(F32(o)); !sameBits(float64(got), float64(want)) {
			t.Errorf("F32x4.Min(%v, %v): got %v, want %v", v, o, got, want)
		}
		if got, want := BroadcastF32x4(float32(v)).Max(BroadcastF32x4(float32(o)))[0], F32(v).Max(F32(o)); !sameBits(float64(got), float64(want)) {
			t.Errorf("F32x4.Max(%v, %v): got %v, want %v", v, o, got, want)
		}
		if got, want := BroadcastF64x4(v).Min(BroadcastF64x4(o))[3], F64(v).Min(F64(o)); !sameBits(got, float64(want)) {
			t.Errorf("F64x4.Min(%v, %v): got %v, want %v", v, o, got, want)
		}
		if got, want := BroadcastF64x4(v).Max(BroadcastF64x4(o))[3], F64(v).Max(F64(o)); !sameBits(got, float64(want)) {
			t.Errorf("F64x4.Max(%v, %v): got %v, want %v", v, o, got, want)
		}
	}
}

// sameBits reports whether a and b are the same value, telling -0 from +0
// and treating any two NaNs as equal.
func sameBits(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	return math.Float64bits(a) == math.Float64bits(b)
}

// laneKernels are the per-lane loops behind the routed lane group methods.
type laneKernels[R, M any] interface {
	addLanes(o R) R
	subLanes(o R) R
	mulLanes(o R) R
	divLanes(o R) R
	mulAddLanes(b, c R) R
	sqrtLanes() R
	floorLanes() R
	ceilLanes() R
	ltLanes(o R) M
	leLanes(o R) M
	gtLanes(o R) M
	geLanes(o R) M
	eqLanes(o R) M
	selectLanes(o R, cond M) R
}

// checkRoutedMatchesKernels compares every routed method with its per-lane
// kernel. With GOEXPERIMENT=simd on amd64 this checks the archsimd path.
func checkRoutedMatchesKernels[R interface {
	Real[R, M, S]
	laneKernels[R, M]
}, M comparable, S Float](t *testing.T, load func([]S) R) {
	t.Helper()
	specials := []float64{
		math.Copysign(0, -1), 0, 1, -1, 1.5, -2.5, math.NaN(), math.Inf(1),
		math.Inf(-1), 3, 1e-3, 7, -0.5, 2.5, 1e30, -1e-30,
	}
	values := func(shift int) R {
		var zero R
		buf := make([]S, zero.Lanes())
		for i := range buf {
			buf[i] = S(specials[(i*3+shift)%len(specials)])
		}
		return load(buf)
	}
	for shift := range specials {
		a, b, c := values(shift), values(shift+1), values(shift+5)

		ops := []struct {
			name      string
			got, want R
		}{
			{"Add", a.Add(b), a.addLanes(b)},
			{"Sub", a.Sub(b), a.subLanes(b)},
			{"Mul", a.Mul(b), a.mulLanes(b)},
			{"Div", a.Div(b), a.divLanes(b)},
			{"MulAdd", a.MulAdd(b, c), a.mulAddLanes(b, c)},
			{"Sqrt", a.Sqrt(), a.sqrtLanes()},
			{"Floor", a.Floor(), a.floorLanes()},
			{"Ceil", a.Ceil(), a.ceilLanes()},
			{"Select", a.Select(b, a.ltLanes(c)), a.selectLanes(b, a.ltLanes(c))},
			{"Min", a.Min(b), a.selectLanes(b, a.ltLanes(b))},
			{"Max", a.Max(b), a.selectLanes(b, a.gtLanes(b))},
		}
		for _, op := range ops {
			got, want := slices.Collect(op.got.Values()), slices.Collect(op.want.Values())
			for i := range want {
				if !sameBits(float64(got[i]), float64(want[i])) {
					t.Errorf("%s: lane %d: got %v, want %v", op.name, i, got[i], want[i])
				}
			}
		}

		masks := []struct {
			name      string
			got, want M
		}{
			{"Lt", a.Lt(b), a.ltLanes(b)},
			{"Le", a.Le(b), a.leLanes(b)},
			{"Gt", a.Gt(b), a.gtLanes(b)},
			{"Ge", a.Ge(b), a.geLanes(b)},
			{"Eq", a.Eq(b), a.eqLanes(b)},
		}
		for _, m := range masks {
			if m.got != m.want {
				t.Errorf("%s: got %v, want %v", m.name, m.got, m.want)
			}
		}
	}
}

func TestRoutedMatchesKernels(t *testing.T) {
	t.Logf("vector instructions: %v", HasSIMD())
	t.Run("F32x4", func(t *testing.T) { checkRoutedMatchesKernels[F32x4, M32x4, float32](t, LoadF32x4) })
	t.Run("F32x8", func(t *testing.T) { checkRoutedMatchesKernels[F32x8, M32x8, float32](t, LoadF32x8) })
	t.Run("F64x2", func(t *testing.T) { checkRoutedMatchesKernels[F64x2, M64x2, float64](t, LoadF64x2) })
	t.Run("F64x4", func(t *testing.T) { checkRoutedMatchesKernels[F64x4, M64x4, float64](t, LoadF64x4) })
}

func TestLaneConstructors(t *testing.T) {
	var v F64x4
	checks := []struct {
		name string
		got  F64x4
		want float64
	}{
		{"Int", v.Int(-3), -3},
		{"Float", v.Float(0.125), 0.125},
		{"Frac", v.Frac(3, 4), 0.75},
		{"Splat", v.Splat(9), 9},
		{"Pi", v.Pi(), math.Pi},
	}
	for _, c := range checks {
		for i, got := range c.got {
			if got != c.want {
				t.Errorf("%s: lane %d: got %v, want %v", c.name, i, got, c.want)
			}
		}
	}

	var w F32x4
	if got := w.Float(-1e300); got != BroadcastF32x4(-math.MaxFloat32) {
		t.Errorf("Float(-1e300): got %v, want -MaxFloat32", got)
	}
}

func TestLaneValues(t *testing.T) {
	v := F32x8{7, 6, 5, 4, 3, 2, 1, 0}
	want := []float32{7, 6, 5, 4, 3, 2, 1, 0}
	if got := slices.Collect(v.Values()); !slices.Equal(got, want) {
		t.Errorf("Values: got %v, want %v", got, want)
	}
	// Restartable.
	if got := slices.Collect(v.Values()); !slices.Equal(got, want) {
		t.Errorf("Values (second pass): got %v, want %v", got, want)
	}
	n := 0
	for range v.Values() {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("Values: early break visited %d lanes, want 3", n)
	}

	// Values reads a copy; the source keeps its lanes.
	seq := v.Values()
	v[0] = 100
	if first := slices.Collect(seq)[0]; first != 7 {
		t.Errorf("Values: got first lane %v after mutation, want 7", first)
	}
}

func TestLaneUniform01(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	var v F32x8
	distinct := false
	for n := 0; n < 200; n++ {
		u := v.Uniform01(r)
		for i, s := range u {
			if s < 0 || s >= 1 {
				t.Fatalf("Uniform01: lane %d: got %v, want [0, 1)", i, s)
			}
			if s != u[0] {
				distinct = true
			}
		}
	}
	if !distinct {
		t.Errorf("Uniform01: lanes are never independent")
	}
}

func expectUnsupported(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrUnsupported) {
			t.Errorf("%s: got panic %v, want ErrUnsupported", name, r)
		}
	}()
	f()
}

func TestPowUnsupported(t *testing.T) {
	expectUnsupported(t, "F32x4.Pow", func() { F32x4{}.Pow(F32x4{}) })
	expectUnsupported(t, "F32x8.Pow", func() { F32x8{}.Pow(F32x8{}) })
	expectUnsupported(t, "F64x2.Pow", func() { F64x2{}.Pow(F64x2{}) })
	expectUnsupported(t, "F64x4.Pow", func() { F64x4{}.Pow(F64x4{}) })
	expectUnsupported(t, "Vec3F32xN.Pow", func() { Vec3F32xN{}.Pow(Vec3F32xN{}) })
}
