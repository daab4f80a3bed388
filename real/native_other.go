//go:build !amd64

package real

// Native lane groups fill a 128-bit register (NEON on arm64).
type (
	F32xN = F32x4
	F64xN = F64x2
	M32xN = M32x4
	M64xN = M64x2
)
