package real

// Composites of the scalar types.
type (
	Vec2F32 = Vec2[F32, bool, float32]
	Vec3F32 = Vec3[F32, bool, float32]
	Vec4F32 = Vec4[F32, bool, float32]
	Vec2F64 = Vec2[F64, bool, float64]
	Vec3F64 = Vec3[F64, bool, float64]
	Vec4F64 = Vec4[F64, bool, float64]
)

// Composites of the native lane groups.
type (
	Vec2F32xN = Vec2[F32xN, M32xN, float32]
	Vec3F32xN = Vec3[F32xN, M32xN, float32]
	Vec4F32xN = Vec4[F32xN, M32xN, float32]
	Vec2F64xN = Vec2[F64xN, M64xN, float64]
	Vec3F64xN = Vec3[F64xN, M64xN, float64]
	Vec4F64xN = Vec4[F64xN, M64xN, float64]
)

var (
	_ Real[F32, bool, float32] = F32(0)
	_ Real[F64, bool, float64] = F64(0)

	_ Real[F32x4, M32x4, float32] = F32x4{}
	_ Real[F32x8, M32x8, float32] = F32x8{}
	_ Real[F64x2, M64x2, float64] = F64x2{}
	_ Real[F64x4, M64x4, float64] = F64x4{}

	_ Real[Vec2F32, Bool2[bool], float32] = Vec2F32{}

	_ Real[Vec3F64, Bool3[bool], float64] = Vec3F64{}

	_ Real[Vec4F32xN, Bool4[M32xN], float32] = Vec4F32xN{}

	_ Real[Vec2[Vec3F64, Bool3[bool], float64], Bool2[Bool3[bool]], float64] = Vec2[Vec3F64, Bool3[bool], float64]{}
)
