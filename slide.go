package popup

import (
	"time"

	"github.com/tanema/gween/ease"
)

// SlideAnimator moves the surface between its resting frame and an
// off-screen frame above (Top) or below (Bottom, Center) the container.
type SlideAnimator struct {
	duration time.Duration
	phase    Phase
	position Position
	insets   EdgeInsets
}

// NewSlideAnimator creates a slide animator for one phase.
func NewSlideAnimator(duration time.Duration, phase Phase, position Position, insets EdgeInsets) SlideAnimator {
	return SlideAnimator{duration: duration, phase: phase, position: position, insets: insets}
}

// Duration implements TransitionAnimator.
func (a SlideAnimator) Duration() time.Duration {
	return a.duration
}

// Animator implements TransitionAnimator. When presenting, the surface is
// moved off screen before the first frame.
func (a SlideAnimator) Animator(ctx *TransitionContext) *Animator {
	view := ctx.Surface()
	frame := ctx.RestingFrame()
	offset := slideOffset(a.position, frame.Height, ctx.ContainerBounds().Height, a.insets)
	offscreen := frame.Offset(0, offset)

	from, to := frame, offscreen
	if a.phase == PhasePresenting {
		from, to = offscreen, frame
		if view != nil {
			view.SetFrame(offscreen)
		}
	}

	anim := NewAnimator(a.duration, ease.OutQuad, func(p float64) {
		if view == nil || view.disposed {
			return
		}
		view.SetPosition(lerp(from.X, to.X, p), lerp(from.Y, to.Y, p))
	})
	anim.AddCompletion(func(AnimatingPosition) {
		ctx.CompleteTransition(!ctx.WasCancelled())
	})
	return anim
}

// slideDistance is how far the surface travels between resting and
// off-screen: its height plus vertical insets at the edges, or half the
// container plus half the surface when sliding out of the center.
func slideDistance(pos Position, frameHeight, containerHeight float64, insets EdgeInsets) float64 {
	switch pos {
	case PositionCenter:
		return (containerHeight + frameHeight) / 2
	default:
		return frameHeight + insets.Top + insets.Bottom
	}
}

// slideOffset is slideDistance signed toward the edge the surface leaves by.
func slideOffset(pos Position, frameHeight, containerHeight float64, insets EdgeInsets) float64 {
	d := slideDistance(pos, frameHeight, containerHeight, insets)
	if pos == PositionTop {
		return -d
	}
	return d
}
