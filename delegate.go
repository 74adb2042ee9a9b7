package popup

import (
	"fmt"
	"time"
)

// Default transition durations.
const (
	DefaultPresentDuration = 300 * time.Millisecond
	DefaultDismissDuration = 300 * time.Millisecond
)

// TransitioningDelegate picks the presentation controller, animators and
// interaction controller for a surface presented at a fixed Position.
// Create one with NewTransitioningDelegate; the zero value is unusable.
type TransitioningDelegate struct {
	presentDuration time.Duration
	dismissDuration time.Duration
	position        Position
	insets          EdgeInsets
	dimming         DimmingViewFactory

	interaction *InteractionController
	configured  bool
}

// NewTransitioningDelegate creates a delegate from cfg. Zero durations fall
// back to the defaults. It panics on an invalid position or a negative
// duration.
func NewTransitioningDelegate(cfg TransitionConfig) *TransitioningDelegate {
	if !cfg.Position.valid() {
		panic(fmt.Sprintf("popup: invalid presentation position %d", cfg.Position))
	}
	if cfg.PresentDuration < 0 || cfg.DismissDuration < 0 {
		panic("popup: transition durations must not be negative")
	}
	d := &TransitioningDelegate{
		presentDuration: cfg.PresentDuration,
		dismissDuration: cfg.DismissDuration,
		position:        cfg.Position,
		insets:          cfg.Insets,
		dimming:         cfg.DimmingView,
		configured:      true,
	}
	if d.presentDuration == 0 {
		d.presentDuration = DefaultPresentDuration
	}
	if d.dismissDuration == 0 {
		d.dismissDuration = DefaultDismissDuration
	}
	if d.dimming == nil {
		d.dimming = DefaultDimmingView
	}
	return d
}

// Position returns the presentation position.
func (d *TransitioningDelegate) Position() Position { return d.position }

// Insets returns the surface edge insets.
func (d *TransitioningDelegate) Insets() EdgeInsets { return d.insets }

// PresentDuration returns the non-interactive presentation length.
func (d *TransitioningDelegate) PresentDuration() time.Duration { return d.presentDuration }

// DismissDuration returns the non-interactive dismissal length.
func (d *TransitioningDelegate) DismissDuration() time.Duration { return d.dismissDuration }

// Interaction returns the interaction controller of the current
// presentation, or nil before the first Present.
func (d *TransitioningDelegate) Interaction() *InteractionController { return d.interaction }

func (d *TransitioningDelegate) mustBeConfigured() {
	if d == nil || !d.configured {
		panic("popup: TransitioningDelegate must be created with NewTransitioningDelegate")
	}
}

// presentationController binds a fresh interaction controller to content and
// wraps both in a presentation controller.
func (d *TransitioningDelegate) presentationController(s *Scene, content Presentable) *PresentationController {
	ic := newInteractionController(s, d.position, d.insets)
	ic.bind(content)
	d.interaction = ic
	return &PresentationController{
		scene:          s,
		delegate:       d,
		content:        content,
		surfaceID:      content.View().ID,
		position:       d.position,
		insets:         d.insets,
		interaction:    ic,
		dimmingFactory: d.dimming,
	}
}

func (d *TransitioningDelegate) animatorFor(phase Phase) TransitionAnimator {
	started := d.interaction != nil && d.interaction.HasStarted()
	return selectAnimator(d.position, phase, started, d.durationFor(phase), d.insets)
}

func (d *TransitioningDelegate) interactionFor(phase Phase) *InteractionController {
	if !offersInteraction(d.position, phase) {
		return nil
	}
	return d.interaction
}

func (d *TransitioningDelegate) durationFor(phase Phase) time.Duration {
	if phase == PhasePresenting {
		return d.presentDuration
	}
	return d.dismissDuration
}

// selectAnimator picks the animation family: Top and Bottom always slide;
// Center zooms unless a dismissal drag is already moving the surface.
func selectAnimator(pos Position, phase Phase, started bool, duration time.Duration, insets EdgeInsets) TransitionAnimator {
	if pos == PositionCenter && (phase == PhasePresenting || !started) {
		return NewZoomAnimator(duration, phase)
	}
	return NewSlideAnimator(duration, phase, pos, insets)
}

// offersInteraction reports whether a transition can be driven by the pan.
// Center has no interactive presentation.
func offersInteraction(pos Position, phase Phase) bool {
	return phase == PhaseDismissing || pos != PositionCenter
}
