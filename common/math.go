package common

// Logical screen size. The window scales this to its real size.
const (
	BaseWidth  = 1280
	BaseHeight = 720
)

const TPS = 60

func Clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
