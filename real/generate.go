package real

//go:generate go run ../cmd/realgen -types F32,F64,F32x4,F32x8,F64x2,F64x4,Vec2,Vec3,Vec4 -output . -pkg real
