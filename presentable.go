package popup

// Presentable is content that can be presented modally. Its View becomes
// the presented surface. Everything else a surface may declare is an optional
// capability interface below; implement only the ones you need.
type Presentable interface {
	View() *View
}

// PreferredHeighter declares an explicit surface height, bypassing fitting.
type PreferredHeighter interface {
	PreferredContentHeight() float64
}

// HeightFitter measures the surface's best-fit height for a given width.
// Without it (and without PreferredHeighter) the view's current height is used.
type HeightFitter interface {
	FittingHeight(width float64) float64
}

// InteractiveDismisser controls whether gestures (pan or background tap) may
// dismiss the surface. Defaults to true.
type InteractiveDismisser interface {
	CanDismissInteractively() bool
}

// InteractiveViewsProvider lists views that start a dismissal drag
// regardless of the scroll region's position.
type InteractiveViewsProvider interface {
	AlwaysInteractiveViews() []*View
}

// ExcludedViewsProvider lists views whose touches never reach the dismissal
// gesture.
type ExcludedViewsProvider interface {
	ExcludedViews() []*View
}

// KeyboardRegistrar controls whether the presentation tracks keyboard
// notifications. Defaults to true.
type KeyboardRegistrar interface {
	ShouldRegisterKeyboard() bool
}

// ScrollViewProvider exposes the surface's scroll region so dismissal can
// wait for it to reach its resting edge. Returning nil keeps the gate open.
type ScrollViewProvider interface {
	ScrollView() *View
}

// --- Capability lookups with documented defaults ---

func contentHeightOf(p Presentable, width float64) float64 {
	if ph, ok := p.(PreferredHeighter); ok {
		return ph.PreferredContentHeight()
	}
	if hf, ok := p.(HeightFitter); ok {
		return hf.FittingHeight(width)
	}
	if v := p.View(); v != nil {
		return v.Height
	}
	return 0
}

func canDismissInteractively(p Presentable) bool {
	if d, ok := p.(InteractiveDismisser); ok {
		return d.CanDismissInteractively()
	}
	return true
}

func alwaysInteractiveViews(p Presentable) []*View {
	if ip, ok := p.(InteractiveViewsProvider); ok {
		return ip.AlwaysInteractiveViews()
	}
	return nil
}

func excludedViews(p Presentable) []*View {
	if ep, ok := p.(ExcludedViewsProvider); ok {
		return ep.ExcludedViews()
	}
	return nil
}

func shouldRegisterKeyboard(p Presentable) bool {
	if kr, ok := p.(KeyboardRegistrar); ok {
		return kr.ShouldRegisterKeyboard()
	}
	return true
}

func scrollViewOf(p Presentable) *View {
	if sp, ok := p.(ScrollViewProvider); ok {
		if v := sp.ScrollView(); v != nil && v.Scroll != nil {
			return v
		}
	}
	return nil
}

// touchInAny reports whether touched is one of views or a descendant of one.
func touchInAny(touched *View, views []*View) bool {
	if touched == nil {
		return false
	}
	for _, v := range views {
		if v != nil && touched.IsDescendantOf(v) {
			return true
		}
	}
	return false
}
