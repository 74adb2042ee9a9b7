package popup

// DimmingView is the background placed behind a presented surface. It is
// animated alongside the transition and dismisses the surface when tapped.
type DimmingView interface {
	View() *View
	// ApplyTransition sets the visual state for progress in [0, 1] of the
	// given phase: 0 is the start of the phase, 1 its end.
	ApplyTransition(phase Phase, progress float64)
}

// DimmingViewFactory creates a dimming view covering bounds.
type DimmingViewFactory func(bounds Rect) DimmingView

// DefaultDimmingAlpha is the opacity of the default dimming view once the
// surface is fully presented.
const DefaultDimmingAlpha = 0.4

type solidDimmingView struct {
	view     *View
	maxAlpha float64
}

// NewDimmingView creates a solid dimming view that fades between 0 and
// alpha.
func NewDimmingView(bounds Rect, color Color, alpha float64) DimmingView {
	v := NewView("dimming", bounds, color)
	v.SetAlpha(0)
	return &solidDimmingView{view: v, maxAlpha: alpha}
}

// DefaultDimmingView is the factory used when TransitionConfig leaves
// DimmingView unset: black at DefaultDimmingAlpha.
func DefaultDimmingView(bounds Rect) DimmingView {
	return NewDimmingView(bounds, ColorBlack, DefaultDimmingAlpha)
}

// NoDimmingView is a factory for presentations without a dimming
// background. The area around the surface stays visible and does not
// respond to taps.
func NoDimmingView(Rect) DimmingView {
	return nil
}

func (d *solidDimmingView) View() *View {
	return d.view
}

func (d *solidDimmingView) ApplyTransition(phase Phase, progress float64) {
	if phase == PhaseDismissing {
		progress = 1 - progress
	}
	d.view.SetAlpha(d.maxAlpha * clamp01(progress))
}
