package utils

// Tween eases a value toward a target over a fixed duration. Retargeting
// mid-flight starts a new transition from the current value, the way a CSS
// transition does.
type Tween struct {
	from, to float64
	elapsed  float64
	duration float64 // seconds; <= 0 means jump straight to the target
	ease     func(float64) float64
}

// NewTween creates a tween resting at value.
func NewTween(value, duration float64, ease func(float64) float64) *Tween {
	if ease == nil {
		ease = EaseLinear
	}
	return &Tween{
		from:     value,
		to:       value,
		elapsed:  duration,
		duration: duration,
		ease:     ease,
	}
}

// Value returns the current eased value.
func (tw *Tween) Value() float64 {
	if tw.duration <= 0 || tw.elapsed >= tw.duration {
		return tw.to
	}
	return Lerp(tw.from, tw.to, tw.ease(Clamp01(tw.elapsed/tw.duration)))
}

// Target returns the value the tween is heading to.
func (tw *Tween) Target() float64 {
	return tw.to
}

// SetTarget retargets the tween. Setting the current target is a no-op.
func (tw *Tween) SetTarget(target float64) {
	if target == tw.to {
		return
	}
	tw.from = tw.Value()
	tw.to = target
	tw.elapsed = 0
}

// Update advances the tween by dt seconds.
func (tw *Tween) Update(dt float64) {
	if tw.elapsed < tw.duration {
		tw.elapsed += dt
	}
}
