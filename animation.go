package popup

import (
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// AnimatingPosition reports where an Animator came to rest.
type AnimatingPosition uint8

const (
	AnimatingEnd   AnimatingPosition = iota // ran forward to completion
	AnimatingStart                          // was reversed back to the beginning
)

type animatorState uint8

const (
	animatorInactive animatorState = iota
	animatorRunning
	animatorPaused
	animatorStopped
)

// Animator is a one-shot, scrubbable animation over a fixed duration. Its
// timeline runs from fraction 0 to 1 and each frame the current progress is
// handed to every animation block.
//
// A fresh run follows the easing curve. While paused, SetFractionComplete
// scrubs linearly; ContinueAnimation then eases from wherever the scrub left
// the progress to the chosen end over the remaining share of the duration.
//
// There is no global animation manager. The owner calls Update each frame.
type Animator struct {
	duration float32
	easing   ease.TweenFunc
	tween    *gween.Tween
	segment  *gween.Tween

	fraction float64
	value    float64
	reversed bool
	state    animatorState

	animations  []func(progress float64)
	completions []func(AnimatingPosition)
	completed   bool
}

// NewAnimator creates an inactive animator. apply receives progress in
// [0, 1]; it may be nil when blocks are added later.
func NewAnimator(duration time.Duration, fn ease.TweenFunc, apply func(progress float64)) *Animator {
	if fn == nil {
		fn = ease.Linear
	}
	d := float32(max(duration.Seconds(), 0))
	a := &Animator{
		duration: d,
		easing:   fn,
	}
	if d > 0 {
		a.tween = gween.New(0, 1, d, fn)
	}
	if apply != nil {
		a.animations = append(a.animations, apply)
	}
	return a
}

// AddAnimations adds a block driven alongside the existing ones.
func (a *Animator) AddAnimations(fn func(progress float64)) {
	a.animations = append(a.animations, fn)
}

// AddCompletion adds a block called exactly once when the animator stops at
// either end of its timeline.
func (a *Animator) AddCompletion(fn func(AnimatingPosition)) {
	a.completions = append(a.completions, fn)
}

// Start runs the animator forward. A paused animator resumes as with
// ContinueAnimation(false). No-op once completed.
func (a *Animator) Start() {
	switch {
	case a.completed:
	case a.state == animatorPaused:
		a.ContinueAnimation(false)
	default:
		a.apply()
		a.state = animatorRunning
	}
}

// Pause freezes the animator at its current fraction.
func (a *Animator) Pause() {
	if a.completed {
		return
	}
	if a.state == animatorInactive {
		a.apply()
	}
	a.state = animatorPaused
}

// IsRunning reports whether Update advances the timeline.
func (a *Animator) IsRunning() bool {
	return a.state == animatorRunning
}

// IsReversed reports whether the animator runs back toward the start.
func (a *Animator) IsReversed() bool {
	return a.reversed
}

// Done reports whether the completion blocks have fired.
func (a *Animator) Done() bool {
	return a.completed
}

// Duration returns the full timeline length.
func (a *Animator) Duration() time.Duration {
	return time.Duration(float64(a.duration) * float64(time.Second))
}

// FractionComplete is the linear timeline position in [0, 1].
func (a *Animator) FractionComplete() float64 {
	return a.fraction
}

// Value is the progress last applied to the animation blocks.
func (a *Animator) Value() float64 {
	return a.value
}

// SetFractionComplete scrubs a paused or inactive animator to f, clamped to
// [0, 1], and applies the visual state immediately.
func (a *Animator) SetFractionComplete(f float64) {
	if a.completed || a.state == animatorRunning {
		return
	}
	a.fraction = clamp01(f)
	a.value = a.fraction
	a.segment = nil
	a.applyValue()
}

// ContinueAnimation resumes toward the end, or toward the start when
// reversed is true, over the remaining share of the duration.
func (a *Animator) ContinueAnimation(reversed bool) {
	if a.completed {
		return
	}
	a.reversed = reversed
	a.state = animatorRunning
	target := a.target()
	remaining := float32(math.Abs(target-a.fraction)) * a.duration
	if remaining <= 0 {
		a.fraction = target
		a.value = target
		a.applyValue()
		a.stop()
		return
	}
	a.segment = gween.New(float32(a.value), float32(target), remaining, a.easing)
}

// Update advances a running animator by dt seconds.
func (a *Animator) Update(dt float32) {
	if a.state != animatorRunning || a.completed {
		return
	}
	target := a.target()
	if a.duration <= 0 {
		a.fraction = target
		a.value = target
		a.applyValue()
		a.stop()
		return
	}

	step := float64(dt / a.duration)
	if a.reversed {
		step = -step
	}

	if a.segment != nil {
		v, done := a.segment.Update(dt)
		a.value = float64(v)
		a.fraction = clamp01(a.fraction + step)
		if done {
			a.fraction = target
			a.value = target
		}
		a.applyValue()
		if done {
			a.stop()
		}
		return
	}

	a.fraction = clamp01(a.fraction + step)
	a.apply()
	if a.fraction == target {
		a.stop()
	}
}

func (a *Animator) target() float64 {
	if a.reversed {
		return 0
	}
	return 1
}

// apply computes the eased value of the current fraction and applies it.
func (a *Animator) apply() {
	if a.tween == nil {
		a.value = a.fraction
	} else {
		v, _ := a.tween.Set(float32(a.fraction) * a.duration)
		a.value = float64(v)
	}
	a.applyValue()
}

func (a *Animator) applyValue() {
	for _, fn := range a.animations {
		fn(a.value)
	}
}

func (a *Animator) stop() {
	a.state = animatorStopped
	a.completed = true
	pos := AnimatingEnd
	if a.reversed {
		pos = AnimatingStart
	}
	for _, fn := range a.completions {
		fn(pos)
	}
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
