package popup

import (
	"errors"
	"time"
)

// Errors returned by the transition runtime.
var (
	ErrAlreadyPresenting    = errors.New("popup: a surface is already presented")
	ErrNotPresenting        = errors.New("popup: no surface is presented")
	ErrTransitionInProgress = errors.New("popup: a transition is already running")
)

// TransitionAnimator builds the time-driven animation for one transition.
type TransitionAnimator interface {
	// Duration is the full length of the non-interactive run.
	Duration() time.Duration
	// Animator creates a fresh, inactive animator for ctx. It must report
	// completion through ctx.CompleteTransition exactly once.
	Animator(ctx *TransitionContext) *Animator
}

// TransitionContext describes a transition in flight. Animators read frames
// from it and report completion through it.
type TransitionContext struct {
	phase     Phase
	scene     *Scene
	surfaceID uint32
	container Rect

	initialFrame Rect
	finalFrame   Rect

	interactive bool
	cancelled   bool
	finished    bool

	onComplete func(completed bool)
}

// Phase reports whether the surface is being presented or dismissed.
func (c *TransitionContext) Phase() Phase {
	return c.phase
}

// Surface resolves the presented surface, or nil if it is gone.
func (c *TransitionContext) Surface() *View {
	return findView(c.scene.root, c.surfaceID)
}

// ContainerBounds is the rectangle the surface is presented in.
func (c *TransitionContext) ContainerBounds() Rect {
	return c.container
}

// InitialFrame is the surface frame before the transition. Only meaningful
// when dismissing.
func (c *TransitionContext) InitialFrame() Rect {
	return c.initialFrame
}

// FinalFrame is the surface frame after the transition. Only meaningful when
// presenting.
func (c *TransitionContext) FinalFrame() Rect {
	return c.finalFrame
}

// RestingFrame is the on-screen frame the transition moves from or to.
func (c *TransitionContext) RestingFrame() Rect {
	if c.phase == PhasePresenting {
		return c.finalFrame
	}
	return c.initialFrame
}

// IsInteractive reports whether an interaction controller drives progress.
func (c *TransitionContext) IsInteractive() bool {
	return c.interactive
}

// WasCancelled reports whether the interaction controller cancelled the
// transition.
func (c *TransitionContext) WasCancelled() bool {
	return c.cancelled
}

// CompleteTransition finalizes the transition. didComplete false reverts it.
// Calls after the first are ignored.
func (c *TransitionContext) CompleteTransition(didComplete bool) {
	if c.finished {
		return
	}
	c.finished = true
	if c.onComplete != nil {
		c.onComplete(didComplete)
	}
}

// activeTransition is the transition the scene is currently ticking.
type activeTransition struct {
	ctx         *TransitionContext
	animator    *Animator
	interaction *InteractionController
}

// Present presents content modally using delegate's presentation controller,
// animators and interaction controller.
func (s *Scene) Present(content Presentable, delegate *TransitioningDelegate) (*PresentationController, error) {
	if content == nil || content.View() == nil {
		panic("popup: cannot present nil content")
	}
	delegate.mustBeConfigured()
	if s.presentation != nil {
		return nil, ErrAlreadyPresenting
	}
	if s.transition != nil {
		return nil, ErrTransitionInProgress
	}

	pc := delegate.presentationController(s, content)
	s.presentation = pc

	ctx := &TransitionContext{
		phase:     PhasePresenting,
		scene:     s,
		surfaceID: content.View().ID,
	}
	pc.presentationWillBegin()
	ctx.container = s.bounds
	ctx.finalFrame = pc.FrameOfPresentedView()

	animator := delegate.animatorFor(PhasePresenting)
	interaction := delegate.interactionFor(PhasePresenting)
	ctx.onComplete = func(completed bool) {
		s.finishTransition(completed)
	}
	s.startTransition(ctx, animator, interaction)
	return pc, nil
}

// Dismiss dismisses the presented surface with its delegate's animators. If the
// surface no longer resolves, the presentation is cleared and ErrNotPresenting
// is returned.
func (s *Scene) Dismiss() error {
	pc := s.presentation
	if pc == nil {
		return ErrNotPresenting
	}
	if s.transition != nil {
		return ErrTransitionInProgress
	}
	surface := pc.Surface()
	if surface == nil {
		// The host disposed or detached the surface.
		s.logger.Debug().Msg("presented surface lost, clearing presentation")
		s.removePresentation()
		return ErrNotPresenting
	}

	ctx := &TransitionContext{
		phase:        PhaseDismissing,
		scene:        s,
		surfaceID:    surface.ID,
		container:    s.bounds,
		initialFrame: surface.Frame(),
	}
	pc.dismissalWillBegin()

	animator := pc.delegate.animatorFor(PhaseDismissing)
	interaction := pc.delegate.interactionFor(PhaseDismissing)
	ctx.onComplete = func(completed bool) {
		s.finishTransition(completed)
	}
	s.startTransition(ctx, animator, interaction)
	return nil
}

func (s *Scene) startTransition(ctx *TransitionContext, ta TransitionAnimator, ic *InteractionController) {
	anim := ta.Animator(ctx)
	if pc := s.presentation; pc != nil {
		pc.animateAlongside(ctx.phase, anim)
	}
	s.transition = &activeTransition{ctx: ctx, animator: anim, interaction: ic}
	s.logger.Debug().
		Str("phase", ctx.phase.String()).
		Bool("interactive", ic != nil && ic.WantsInteractiveStart()).
		Dur("duration", ta.Duration()).
		Msg("transition started")

	if ic != nil {
		ic.startInteractiveTransition(ctx, anim)
		return
	}
	anim.Start()
}

// finishTransition runs once the animator has reported completion.
func (s *Scene) finishTransition(completed bool) {
	t := s.transition
	if t == nil {
		return
	}
	s.transition = nil
	if t.interaction != nil {
		t.interaction.transitionDidEnd(t.ctx)
	}
	pc := s.presentation

	s.logger.Debug().
		Str("phase", t.ctx.phase.String()).
		Bool("completed", completed).
		Msg("transition finished")

	switch t.ctx.phase {
	case PhasePresenting:
		if pc != nil {
			pc.presentationDidEnd(completed)
		}
		if !completed {
			s.removePresentation()
		}
	case PhaseDismissing:
		if pc != nil {
			pc.dismissalDidEnd(completed)
		}
		if completed {
			s.removePresentation()
		}
	}
}

func (s *Scene) removePresentation() {
	pc := s.presentation
	if pc == nil {
		return
	}
	s.presentation = nil
	pc.teardown()
}

// updateTransition ticks the active animator.
func (s *Scene) updateTransition(dt float32) {
	if s.transition == nil {
		return
	}
	s.transition.animator.Update(dt)
}

// Transitioning reports whether a present or dismiss transition is running.
func (s *Scene) Transitioning() bool {
	return s.transition != nil
}

// Presentation returns the active presentation controller, or nil.
func (s *Scene) Presentation() *PresentationController {
	return s.presentation
}
