package expr

import "math"

const twoPow32 = 4294967296.0

// ToInt32 converts v the way bitwise operators see their operands:
// truncate toward zero, wrap modulo 2^32, reinterpret as signed.
// NaN and the infinities become 0.
func ToInt32(v float64) int32 {
	return int32(ToUint32(v))
}

// ToUint32 is the unsigned counterpart of ToInt32, used by ">>>".
func ToUint32(v float64) uint32 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	v = math.Trunc(v)
	if v >= 0 && v < twoPow32 {
		return uint32(v)
	}
	m := math.Mod(v, twoPow32)
	if m < 0 {
		m += twoPow32
	}
	return uint32(m)
}

func truthy(v float64) bool { return v != 0 && !math.IsNaN(v) }

func boolNum(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// round matches Math.round: halves go toward +Inf.
func round(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	return math.Floor(x + 0.5)
}

func sign(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return x
}

// pow follows Math.pow where it differs from math.Pow: any base with a NaN
// exponent is NaN, and (+-1)**(+-Inf) is NaN.
func pow(x, y float64) float64 {
	if math.IsNaN(y) {
		return math.NaN()
	}
	if (x == 1 || x == -1) && math.IsInf(y, 0) {
		return math.NaN()
	}
	return math.Pow(x, y)
}
