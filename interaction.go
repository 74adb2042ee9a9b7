package popup

// InteractionState is the lifecycle stage of an InteractionController.
type InteractionState uint8

const (
	InteractionIdle       InteractionState = iota // not bound to a surface
	InteractionPresenting                         // presentation transition pending
	InteractionPresented                          // surface at rest
	InteractionDismissing                         // dismissal transition pending
	InteractionTerminated                         // surface gone; controller discarded
)

var interactionStateNames = [...]string{"idle", "presenting", "presented", "dismissing", "terminated"}

func (s InteractionState) String() string {
	if int(s) < len(interactionStateNames) {
		return interactionStateNames[s]
	}
	return "unknown"
}

// InteractionController turns a pan on the presented surface into
// percent-driven control of the active transition. While presenting, a drag
// scrubs the presentation; once presented, a drag starts an interactive
// dismissal that is finished or cancelled on release from the projected
// resting point of the fling.
//
// One controller exists per presented surface. It holds the surface by
// handle and is discarded when the surface is dismissed.
type InteractionController struct {
	scene    *Scene
	position Position
	insets   EdgeInsets

	content   Presentable
	surfaceID uint32
	pan       *PanGesture
	dimming   *View

	state                 InteractionState
	presentationEnded     bool
	hasStarted            bool
	touchInRegisteredView bool

	ctx  *TransitionContext
	anim *Animator
}

func newInteractionController(s *Scene, pos Position, insets EdgeInsets) *InteractionController {
	return &InteractionController{scene: s, position: pos, insets: insets}
}

// State returns the controller's lifecycle stage.
func (ic *InteractionController) State() InteractionState {
	return ic.state
}

// Pan returns the dismissal recognizer, or nil when unbound.
func (ic *InteractionController) Pan() *PanGesture {
	return ic.pan
}

// HasStarted reports whether a dismissal drag is in progress.
func (ic *InteractionController) HasStarted() bool {
	return ic.hasStarted
}

// PresentationEnded reports whether the presentation transition completed.
func (ic *InteractionController) PresentationEnded() bool {
	return ic.presentationEnded
}

// WantsInteractiveStart reports whether the next transition should start
// paused under gesture control: the surface is fully presented and the pan
// has just been recognized.
func (ic *InteractionController) WantsInteractiveStart() bool {
	return ic.presentationEnded && ic.pan != nil && ic.pan.State == GestureBegan
}

// PercentComplete is the attached transition's fraction complete, or 0.
func (ic *InteractionController) PercentComplete() float64 {
	if ic.anim == nil {
		return 0
	}
	return ic.anim.FractionComplete()
}

// --- Binding ---

// bind attaches the dismissal pan to content's surface. The surface's scroll
// region stays disabled until the presentation ends.
func (ic *InteractionController) bind(content Presentable) {
	surface := content.View()
	ic.content = content
	ic.surfaceID = surface.ID
	ic.presentationEnded = false
	ic.hasStarted = false
	ic.pan = ic.scene.AddPanGesture(surface, ic.handlePan)
	ic.pan.ShouldReceive = ic.shouldReceive
	if sv := scrollViewOf(content); sv != nil {
		sv.Scroll.Enabled = false
	}
	ic.setState(InteractionPresenting)
}

// bindDimming makes a tap on the dimming view dismiss the surface.
func (ic *InteractionController) bindDimming(v *View) {
	ic.dimming = v
	v.OnClick = func(ClickContext) {
		ic.dimmingViewDidTap()
	}
}

func (ic *InteractionController) unbind() {
	if ic.pan != nil {
		ic.scene.RemovePanGesture(ic.pan)
		ic.pan = nil
	}
	if ic.dimming != nil {
		ic.dimming.OnClick = nil
		ic.dimming = nil
	}
	ic.ctx, ic.anim = nil, nil
	ic.setState(InteractionTerminated)
}

func (ic *InteractionController) setState(st InteractionState) {
	if ic.state == st {
		return
	}
	ic.scene.logger.Debug().
		Str("from", ic.state.String()).
		Str("to", st.String()).
		Msg("interaction state")
	ic.state = st
}

// --- Transition hooks ---

// startInteractiveTransition attaches anim. The transition starts paused at
// zero when a recognized pan is waiting to drive it, otherwise it runs.
func (ic *InteractionController) startInteractiveTransition(ctx *TransitionContext, anim *Animator) {
	ic.ctx = ctx
	ic.anim = anim
	if ic.WantsInteractiveStart() {
		ctx.interactive = true
		anim.Pause()
		return
	}
	anim.Start()
}

func (ic *InteractionController) transitionDidEnd(ctx *TransitionContext) {
	if ic.ctx == ctx {
		ic.ctx, ic.anim = nil, nil
	}
}

func (ic *InteractionController) presentationDidEnd(completed bool) {
	if !completed {
		ic.setState(InteractionTerminated)
		return
	}
	ic.presentationEnded = true
	if sv := scrollViewOf(ic.content); sv != nil {
		sv.Scroll.Enabled = true
	}
	ic.setState(InteractionPresented)
}

func (ic *InteractionController) dismissalWillBegin() {
	ic.setState(InteractionDismissing)
}

func (ic *InteractionController) dismissalDidEnd(completed bool) {
	if completed {
		ic.setState(InteractionTerminated)
		return
	}
	ic.setState(InteractionPresented)
}

// --- Percent-driven control ---

func (ic *InteractionController) pause() {
	if ic.anim == nil {
		return
	}
	ic.ctx.interactive = true
	ic.anim.Pause()
}

func (ic *InteractionController) update(percent float64) {
	if ic.anim == nil {
		return
	}
	ic.anim.SetFractionComplete(percent)
}

func (ic *InteractionController) finish() {
	if ic.anim == nil {
		return
	}
	ic.scene.logger.Debug().
		Str("phase", ic.ctx.phase.String()).
		Float64("percent", ic.PercentComplete()).
		Msg("interactive transition finished")
	ic.anim.ContinueAnimation(false)
}

func (ic *InteractionController) cancel() {
	if ic.anim == nil {
		return
	}
	ic.scene.logger.Debug().
		Str("phase", ic.ctx.phase.String()).
		Float64("percent", ic.PercentComplete()).
		Msg("interactive transition cancelled")
	ic.ctx.cancelled = true
	ic.anim.ContinueAnimation(true)
}

// --- Geometry ---

func (ic *InteractionController) surface() *View {
	return findView(ic.scene.root, ic.surfaceID)
}

// maxExtent is the full travel of the surface between resting and
// off screen.
func (ic *InteractionController) maxExtent() float64 {
	var h float64
	if ic.ctx != nil {
		h = ic.ctx.RestingFrame().Height
	} else if v := ic.surface(); v != nil {
		h = v.Height
	}
	return slideDistance(ic.position, h, ic.scene.bounds.Height, ic.insets)
}

// travelLocation is the pointer location with Y replaced by the surface's
// distance from its off-screen frame along the direction of travel.
func (ic *InteractionController) travelLocation(g *PanGesture, maxExtent float64) Vec2 {
	loc := Vec2{X: g.Location().X}
	v := ic.surface()
	if ic.ctx == nil || v == nil {
		return loc
	}
	offscreen := ic.ctx.RestingFrame().Y + maxExtent
	if ic.position == PositionTop {
		offscreen = ic.ctx.RestingFrame().Y - maxExtent
	}
	loc.Y = v.Y - offscreen
	return loc
}

// --- Gates ---

// dismissGateOpen reports whether a drag may move the dismissal: the scroll
// region rests at its edge, or the touch began in an always-interactive view.
// The region bounces only away from that edge.
func (ic *InteractionController) dismissGateOpen() bool {
	atEdge := true
	if sv := scrollViewOf(ic.content); sv != nil {
		if ic.position == PositionTop {
			atEdge = sv.AtBottom()
		} else {
			atEdge = sv.AtTop()
		}
		sv.Scroll.Bounces = !atEdge
	}
	return atEdge || ic.touchInRegisteredView
}

// shouldReceive rejects touches in excluded views and records whether the
// touch landed in an always-interactive view.
func (ic *InteractionController) shouldReceive(touched *View) bool {
	if touchInAny(touched, excludedViews(ic.content)) {
		return false
	}
	ic.touchInRegisteredView = touchInAny(touched, alwaysInteractiveViews(ic.content))
	return true
}

// --- Handlers ---

func (ic *InteractionController) dimmingViewDidTap() {
	if !canDismissInteractively(ic.content) {
		return
	}
	if err := ic.scene.Dismiss(); err != nil {
		ic.scene.logger.Debug().Err(err).Msg("background tap ignored")
	}
}

func (ic *InteractionController) handlePan(g *PanGesture) {
	if !canDismissInteractively(ic.content) {
		return
	}
	if ic.presentationEnded {
		ic.handleDismiss(g)
		return
	}
	ic.handlePresentation(g)
}

func (ic *InteractionController) handlePresentation(g *PanGesture) {
	switch g.State {
	case GestureBegan:
		ic.pause()
	case GestureChanged:
		increment := -g.consumeProgress(ic.maxExtent())
		ic.update(ic.PercentComplete() + increment)
	case GestureEnded, GestureCancelled:
		m := ic.maxExtent()
		projected := ProjectedStopPoint(g.Velocity(), ic.travelLocation(g, m), DecelerationRateFast, 0)
		if ShouldDismiss(ic.position, projected, m, 1-ic.PercentComplete()) {
			ic.cancel()
		} else {
			ic.finish()
		}
	case GestureFailed:
		ic.cancel()
	}
}

func (ic *InteractionController) handleDismiss(g *PanGesture) {
	switch g.State {
	case GestureBegan:
		ic.pause()
		ic.hasStarted = true
		if ic.PercentComplete() == 0 {
			if err := ic.scene.Dismiss(); err != nil {
				ic.scene.logger.Debug().Err(err).Msg("pan dismissal not started")
			}
		}
	case GestureChanged:
		if !ic.dismissGateOpen() {
			g.SetTranslation(Vec2{})
			return
		}
		progress := ic.position.dismissSign() * g.consumeProgress(ic.maxExtent())
		ic.update(ic.PercentComplete() + progress)
	case GestureEnded, GestureCancelled:
		ic.hasStarted = false
		m := ic.maxExtent()
		var yOffset float64
		if ic.position != PositionTop {
			yOffset = m
		}
		projected := ProjectedStopPoint(g.Velocity(), ic.travelLocation(g, m), DecelerationRateFast, yOffset)
		if ShouldDismiss(ic.position, projected, m, ic.PercentComplete()) {
			ic.finish()
		} else {
			ic.cancel()
		}
	case GestureFailed:
		ic.hasStarted = false
		ic.cancel()
	}
}
