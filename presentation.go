package popup

// PresentationController owns the geometry of one presented surface: its
// resting frame, keyboard avoidance, orientation changes and the dimming
// background. It is created by a TransitioningDelegate for each Present call
// and torn down when the surface leaves the scene.
type PresentationController struct {
	scene       *Scene
	delegate    *TransitioningDelegate
	content     Presentable
	surfaceID   uint32
	position    Position
	insets      EdgeInsets
	interaction *InteractionController

	dimmingFactory DimmingViewFactory
	dimming        DimmingView

	keyboardShown  bool
	keyboardHeight float64

	dismissInProgress bool
	needsLayout       bool

	observers []CallbackHandle
}

// Content returns the presented content.
func (pc *PresentationController) Content() Presentable {
	return pc.content
}

// Surface resolves the presented surface, or nil once it has left the scene.
func (pc *PresentationController) Surface() *View {
	return findView(pc.scene.root, pc.surfaceID)
}

// Position returns the presentation position.
func (pc *PresentationController) Position() Position {
	return pc.position
}

// Interaction returns the interaction controller bound to the surface.
func (pc *PresentationController) Interaction() *InteractionController {
	return pc.interaction
}

// DimmingView returns the dimming background, or nil when the delegate's
// factory declined to create one (see NoDimmingView).
func (pc *PresentationController) DimmingView() DimmingView {
	return pc.dimming
}

// KeyboardVisible reports whether the controller believes the keyboard is shown.
func (pc *PresentationController) KeyboardVisible() bool {
	return pc.keyboardShown
}

// KeyboardHeight is the last keyboard height received.
func (pc *PresentationController) KeyboardHeight() float64 {
	return pc.keyboardHeight
}

// Dismiss dismisses the surface. Equivalent to Scene.Dismiss.
func (pc *PresentationController) Dismiss() error {
	if pc.scene.presentation != pc {
		return ErrNotPresenting
	}
	return pc.scene.Dismiss()
}

// GeometrySpec captures the current layout inputs.
func (pc *PresentationController) GeometrySpec() GeometrySpec {
	bounds := pc.scene.bounds
	return GeometrySpec{
		Position:        pc.position,
		Insets:          pc.insets,
		ContentHeight:   contentHeightOf(pc.content, fittingWidth(bounds, pc.insets)),
		Container:       bounds,
		KeyboardVisible: pc.keyboardShown,
		KeyboardHeight:  pc.keyboardHeight,
	}
}

// FrameOfPresentedView is the surface's resting frame for the current
// container bounds, content size and keyboard state.
func (pc *PresentationController) FrameOfPresentedView() Rect {
	return TargetRect(pc.GeometrySpec())
}

// SetNeedsLayout schedules a layout pass. Call it when the content's size
// changes; orientation and keyboard changes schedule one automatically.
func (pc *PresentationController) SetNeedsLayout() {
	pc.needsLayout = true
}

// layoutIfNeeded applies the resting frame unless a transition animator
// currently owns the surface frame, in which case the pass waits.
func (pc *PresentationController) layoutIfNeeded() {
	if !pc.needsLayout || pc.dismissInProgress || pc.scene.transition != nil {
		return
	}
	surface := pc.Surface()
	if surface == nil {
		return
	}
	pc.needsLayout = false
	frame := pc.FrameOfPresentedView()
	surface.SetFrame(frame)
	pc.scene.logger.Debug().
		Float64("y", frame.Y).
		Float64("height", frame.Height).
		Bool("keyboard", pc.keyboardShown).
		Msg("surface laid out")
}

// --- Transition callbacks ---

func (pc *PresentationController) presentationWillBegin() {
	s := pc.scene
	surface := pc.content.View()
	s.root.AddChild(surface)
	if s.debug {
		s.debugCheckTreeDepth(surface)
		s.debugCheckChildCount(s.root)
	}

	if pc.dimmingFactory != nil {
		pc.dimming = pc.dimmingFactory(s.bounds)
	}
	// A factory may decline by returning nil or a dimming view without a view.
	if pc.dimming != nil {
		if dv := pc.dimming.View(); dv != nil {
			s.root.InsertChildAt(dv, s.root.NumChildren()-1)
			pc.interaction.bindDimming(dv)
		} else {
			pc.dimming = nil
		}
	}

	pc.observers = append(pc.observers,
		s.notifications.Observe(NotificationOrientationChanged, pc.orientationChanged))
	if shouldRegisterKeyboard(pc.content) {
		pc.keyboardShown = s.keyboardHeight > 0
		pc.keyboardHeight = s.keyboardHeight
		pc.observers = append(pc.observers,
			s.notifications.Observe(NotificationKeyboardWillShow, pc.willShowKeyboard),
			s.notifications.Observe(NotificationKeyboardWillHide, pc.willHideKeyboard),
			s.notifications.Observe(NotificationKeyboardFrameChanged, pc.willChangeKeyboardFrame),
		)
	}
}

func (pc *PresentationController) presentationDidEnd(completed bool) {
	pc.interaction.presentationDidEnd(completed)
	if completed {
		pc.layoutIfNeeded()
	}
}

func (pc *PresentationController) dismissalWillBegin() {
	pc.dismissInProgress = true
	pc.interaction.dismissalWillBegin()
}

func (pc *PresentationController) dismissalDidEnd(completed bool) {
	pc.dismissInProgress = false
	pc.interaction.dismissalDidEnd(completed)
	if !completed {
		pc.layoutIfNeeded()
	}
}

// animateAlongside drives the dimming view with the transition's progress.
func (pc *PresentationController) animateAlongside(phase Phase, anim *Animator) {
	if pc.dimming == nil {
		return
	}
	d := pc.dimming
	anim.AddAnimations(func(p float64) {
		d.ApplyTransition(phase, p)
	})
}

// teardown releases everything the presentation added to the scene.
func (pc *PresentationController) teardown() {
	for _, h := range pc.observers {
		h.Remove()
	}
	pc.observers = nil
	if pc.dimming != nil {
		if dv := pc.dimming.View(); dv != nil {
			dv.OnClick = nil
			dv.RemoveFromParent()
		}
	}
	if surface := pc.Surface(); surface != nil {
		surface.RemoveFromParent()
	}
	pc.interaction.unbind()
}

// --- Notifications ---

func (pc *PresentationController) orientationChanged(n Notification) {
	pc.keyboardHeight = n.KeyboardHeight
	if pc.dimming != nil {
		if dv := pc.dimming.View(); dv != nil {
			dv.SetFrame(n.Bounds)
		}
	}
	pc.SetNeedsLayout()
	pc.layoutIfNeeded()
}

func (pc *PresentationController) willShowKeyboard(n Notification) {
	pc.keyboardShown = true
	pc.keyboardHeight = n.KeyboardHeight
	pc.keyboardChangeState()
}

func (pc *PresentationController) willHideKeyboard(n Notification) {
	pc.keyboardShown = false
	pc.keyboardHeight = n.KeyboardHeight
	pc.keyboardChangeState()
}

func (pc *PresentationController) willChangeKeyboardFrame(n Notification) {
	pc.keyboardHeight = n.KeyboardHeight
	pc.keyboardChangeState()
}

func (pc *PresentationController) keyboardChangeState() {
	pc.SetNeedsLayout()
	pc.layoutIfNeeded()
}
