package popup

import (
	"time"

	"github.com/tanema/gween/ease"
)

const zoomMinScale = 0.1

// ZoomAnimator fades and scales the surface around its center.
type ZoomAnimator struct {
	duration time.Duration
	phase    Phase
}

// NewZoomAnimator creates a zoom animator for one phase.
func NewZoomAnimator(duration time.Duration, phase Phase) ZoomAnimator {
	return ZoomAnimator{duration: duration, phase: phase}
}

// Duration implements TransitionAnimator.
func (a ZoomAnimator) Duration() time.Duration {
	return a.duration
}

// Animator implements TransitionAnimator. When presenting, the surface
// starts fully transparent at a tenth of its size.
func (a ZoomAnimator) Animator(ctx *TransitionContext) *Animator {
	view := ctx.Surface()
	presenting := a.phase == PhasePresenting
	if view != nil {
		view.AnchorX, view.AnchorY = 0.5, 0.5
		if presenting {
			view.SetFrame(ctx.FinalFrame())
			view.SetAlpha(0)
			view.SetScale(zoomMinScale, zoomMinScale)
		}
	}

	anim := NewAnimator(a.duration, ease.OutQuad, func(p float64) {
		if view == nil || view.disposed {
			return
		}
		if !presenting {
			p = 1 - p
		}
		view.SetAlpha(p)
		s := lerp(zoomMinScale, 1, p)
		view.SetScale(s, s)
	})
	anim.AddCompletion(func(AnimatingPosition) {
		ctx.CompleteTransition(!ctx.WasCancelled())
	})
	return anim
}
