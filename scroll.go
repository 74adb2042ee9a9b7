package popup

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// settleDuration is how long an overscrolled region takes to spring back.
const settleDuration = 0.2

// ScrollState is the vertical scroll position of a ViewTypeScroll view.
type ScrollState struct {
	OffsetY       float64
	ContentHeight float64
	// Enabled gates user scrolling. Presentations keep it off until the
	// surface has finished appearing.
	Enabled bool
	// Bounces allows dragging past the content edges; the offset springs
	// back when the pointer is released.
	Bounces bool

	settle *gween.Tween
}

// maxOffset is the largest resting offset for a region of the given height.
func (s *ScrollState) maxOffset(viewHeight float64) float64 {
	return max(s.ContentHeight-viewHeight, 0)
}

// AtTop reports whether the content rests at (or above) its top edge.
func (v *View) AtTop() bool {
	return v.Scroll != nil && v.Scroll.OffsetY <= 0
}

// AtBottom reports whether the content rests at (or past) its bottom edge.
func (v *View) AtBottom() bool {
	return v.Scroll != nil && v.Scroll.OffsetY >= v.Scroll.maxOffset(v.Height)
}

// SetScrollOffset moves the content to offset, clamped to the scrollable range.
func (v *View) SetScrollOffset(offset float64) {
	if v.Scroll == nil {
		return
	}
	v.Scroll.settle = nil
	v.Scroll.OffsetY = min(max(offset, 0), v.Scroll.maxOffset(v.Height))
	markSubtreeDirty(v)
}

// scrollBy applies a drag of dy (positive = finger moving down) to the region.
func (v *View) scrollBy(dy float64) {
	s := v.Scroll
	if s == nil || !s.Enabled || dy == 0 {
		return
	}
	s.settle = nil
	next := s.OffsetY - dy
	hi := s.maxOffset(v.Height)
	if !s.Bounces {
		next = min(max(next, 0), hi)
	} else if next < 0 || next > hi {
		// Rubber band: overscroll moves at half speed.
		next = s.OffsetY - dy/2
	}
	s.OffsetY = next
	markSubtreeDirty(v)
}

// releaseScroll starts springing an overscrolled region back into range.
func (v *View) releaseScroll() {
	s := v.Scroll
	if s == nil {
		return
	}
	target := min(max(s.OffsetY, 0), s.maxOffset(v.Height))
	if target == s.OffsetY {
		return
	}
	s.settle = gween.New(float32(s.OffsetY), float32(target), settleDuration, ease.OutQuad)
}

// updateScroll advances settle tweens below v.
func updateScroll(v *View, dt float32) {
	if s := v.Scroll; s != nil && s.settle != nil {
		val, done := s.settle.Update(dt)
		s.OffsetY = float64(val)
		if done {
			s.settle = nil
		}
		markSubtreeDirty(v)
	}
	for _, child := range v.children {
		updateScroll(child, dt)
	}
}

// scrollAncestor returns the nearest scroll view at or above v.
func scrollAncestor(v *View) *View {
	for p := v; p != nil; p = p.Parent {
		if p.Scroll != nil {
			return p
		}
	}
	return nil
}
