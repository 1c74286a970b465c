package utils

// Easing functions.
//
// Inputs are linear progress values t in [0, 1]. Back easing overshoots,
// so its output is not bounded to [0, 1].
//
// Reference: https://easings.net/

const (
	backC1 = 1.70158
	backC2 = backC1 * 1.525
)

// EaseInOutBack pulls back below 0 before starting and overshoots above 1
// before settling.
//
//	t < 0.5:  ((2t)² × ((C2+1)·2t − C2)) / 2
//	t >= 0.5: ((2t−2)² × ((C2+1)·(2t−2) + C2) + 2) / 2
func EaseInOutBack(t float64) float64 {
	if t < 0.5 {
		u := 2 * t
		return (u * u * ((backC2+1)*u - backC2)) / 2
	}
	u := 2*t - 2
	return (u*u*((backC2+1)*u+backC2) + 2) / 2
}

// Lerp interpolates between a and b.
// t=0 returns a, t=1 returns b. t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 limits v to [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
