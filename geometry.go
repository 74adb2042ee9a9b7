package popup

// GeometrySpec holds every input the presented surface's frame depends on.
// It has no identity; build a fresh one on each layout pass.
type GeometrySpec struct {
	Position Position
	Insets   EdgeInsets
	// ContentHeight is the surface's preferred height if it declares one,
	// otherwise its best-fit height for the available width.
	ContentHeight   float64
	Container       Rect
	KeyboardVisible bool
	KeyboardHeight  float64
}

// ContentHeight returns the surface height plus vertical insets, clamped to
// the container height.
func ContentHeight(spec GeometrySpec) float64 {
	h := spec.ContentHeight + spec.Insets.Top + spec.Insets.Bottom
	return max(min(h, spec.Container.Height), 0)
}

// TargetRect computes the resting frame of the presented surface inside the
// container, in the container's coordinate space.
//
// With the keyboard visible the surface is lifted just enough to clear it; it
// is never pushed below its keyboard-less position.
func TargetRect(spec GeometrySpec) Rect {
	content := ContentHeight(spec)
	boundsH := spec.Container.Height

	var y float64
	switch spec.Position {
	case PositionTop:
		y = 0
	case PositionBottom:
		y = boundsH - content
	case PositionCenter:
		y = (boundsH - content) / 2
	}

	if spec.KeyboardVisible {
		keyboardY := boundsH - (spec.KeyboardHeight + spec.ContentHeight + spec.Insets.Top)
		y = min(y, keyboardY)
	}

	r := Rect{
		X:      spec.Container.X,
		Y:      spec.Container.Y + y,
		Width:  spec.Container.Width,
		Height: content,
	}
	return r.Inset(spec.Insets)
}

// fittingWidth is the width offered to a surface when measuring its height.
func fittingWidth(container Rect, insets EdgeInsets) float64 {
	return max(container.Width-insets.Left-insets.Right, 0)
}
