package utils

import "math"

// Easing functions take a progress value t in [0, 1] and return the eased
// value in [0, 1].
//
// See https://easings.net/

// EaseLinear returns t unchanged.
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutQuad starts fast and slows down: f(t) = 1 - (1-t)².
// Close to the CSS "ease-out" curve.
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// EaseOutCubic decelerates harder than EaseOutQuad: f(t) = 1 - (1-t)³.
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutSine is a gentle symmetric curve, used for looping bobs.
func EaseInOutSine(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// Lerp 线性插值
// t=0 returns a, t=1 returns b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 limits t to [0, 1].
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
