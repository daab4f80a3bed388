//go:build !amd64 && !arm64

package real

func init() {
	// Lane groups are plain arrays here; math.FMA is still exact in
	// software, so only the environment switches turn it off.
	setScalarMode()
	useFMA = !NoSimdEnv() && !NoFMAEnv()
}
