package shared

type Number interface {
	int | int8 | int16 | int32 | int64 |
		float32 | float64 |
		uint | uint8 | uint16 | uint32 | uint64
}

// Clamp returns the value of x clamped to the range [min, max].
// The min bound is checked first; if min > max the result follows from that
// order, no consistency between the bounds is enforced.
func Clamp[N Number](x, min, max N) N {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
