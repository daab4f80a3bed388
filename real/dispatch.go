package real

import (
	"os"
	"strconv"
)

// DispatchLevel is the instruction set the lane groups are sized for.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, or SIMD disabled with REAL_NO_SIMD.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit SIMD).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions (512-bit SIMD).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Set by init() in dispatch_*.go files.
var (
	currentLevel DispatchLevel
	currentWidth int
	currentName  string

	// useFMA makes MulAdd round once. Cleared by REAL_NO_SIMD and
	// REAL_NO_FMA.
	useFMA bool

	// simdAVX2 and simdAVX512 route lane groups of up to 256 and of 512
	// bits through simd/archsimd. Only builds with GOEXPERIMENT=simd on
	// amd64 set them.
	simdAVX2   bool
	simdAVX512 bool
)

// CurrentLevel returns the detected SIMD instruction set.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the SIMD register width in bytes, 16 in scalar mode.
// It never exceeds the width of F32xN, so wider registers that the native
// lane groups do not fill are not reported.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current SIMD target.
// For example: "avx2", "neon", "scalar".
func CurrentName() string {
	return currentName
}

// HasSIMD reports whether lane group arithmetic, comparisons and selects run
// on vector instructions rather than per-lane loops.
func HasSIMD() bool {
	return simdAVX2
}

// HasFMA reports whether MulAdd is fused.
func HasFMA() bool {
	return useFMA
}

// NativeLanes32 returns the number of float32 lanes in F32xN.
func NativeLanes32() int {
	var v F32xN
	return len(v)
}

// NativeLanes64 returns the number of float64 lanes in F64xN.
func NativeLanes64() int {
	var v F64xN
	return len(v)
}

// NoSimdEnv checks if the REAL_NO_SIMD environment variable is set.
// When set, the scalar dispatch level is reported and MulAdd is not fused.
func NoSimdEnv() bool {
	return envFlag("REAL_NO_SIMD")
}

// NoFMAEnv checks if the REAL_NO_FMA environment variable is set.
func NoFMAEnv() bool {
	return envFlag("REAL_NO_FMA")
}

func envFlag(name string) bool {
	val := os.Getenv(name)
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16
	currentName = "scalar"
	useFMA = false
	simdAVX2 = false
	simdAVX512 = false
}
