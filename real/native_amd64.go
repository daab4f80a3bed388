//go:build amd64

package real

// Native lane groups fill a 256-bit AVX register.
type (
	F32xN = F32x8
	F64xN = F64x4
	M32xN = M32x8
	M64xN = M64x4
)
