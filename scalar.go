package spatial

import "github.com/chewxy/math32"

// Epsilon is the machine epsilon of float32, the difference between 1 and the
// next representable value. It is the threshold used by IsInvertible.
const Epsilon float32 = 1.0 / (1 << 23)

func isInf(fs ...float32) bool {
	for _, f := range fs {
		if math32.IsInf(f, 0) {
			return true
		}
	}
	return false
}

func isNaN(fs ...float32) bool {
	for _, f := range fs {
		if math32.IsNaN(f) {
			return true
		}
	}
	return false
}

func near(a, b, epsilon float32) bool {
	return math32.Abs(a-b) <= epsilon
}

func clamp(f, lo, hi float32) float32 {
	return min(max(f, lo), hi)
}
