package popup

import (
	"math"
	"testing"
)

func TestClickFiresOnClick(t *testing.T) {
	s := NewScene(400, 400)
	btn := NewView("btn", Rect{X: 100, Y: 100, Width: 50, Height: 50}, ColorWhite)
	s.Root().AddChild(btn)

	var downs int
	var click ClickContext
	btn.OnPointerDown = func(PointerContext) { downs++ }
	btn.OnClick = func(ctx ClickContext) { click = ctx }

	s.InjectClick(110, 120)
	drainInput(s)
	if downs != 1 {
		t.Errorf("pointer downs = %d, want 1", downs)
	}
	if click.View != btn || click.LocalX != 10 || click.LocalY != 20 {
		t.Errorf("click = %+v", click)
	}
}

func TestDragDoesNotClick(t *testing.T) {
	s := NewScene(400, 400)
	btn := NewView("btn", Rect{Width: 400, Height: 400}, ColorWhite)
	s.Root().AddChild(btn)
	clicks := 0
	btn.OnClick = func(ClickContext) { clicks++ }

	s.InjectDrag(100, 100, 100, 200, 5)
	drainInput(s)
	if clicks != 0 {
		t.Errorf("clicks = %d, want 0", clicks)
	}
}

func TestHiddenViewNotHit(t *testing.T) {
	s := NewScene(400, 400)
	back := NewView("back", Rect{Width: 400, Height: 400}, ColorWhite)
	front := NewView("front", Rect{Width: 400, Height: 400}, ColorBlack)
	s.Root().AddChild(back)
	s.Root().AddChild(front)
	updateWorldTransform(s.root, identityTransform, 1, false)

	if s.hitTest(10, 10) != front {
		t.Fatal("front should be hit first")
	}
	front.Interactable = false
	if s.hitTest(10, 10) != back {
		t.Error("non-interactable view should be skipped")
	}
	back.Visible = false
	if s.hitTest(10, 10) != nil {
		t.Error("hidden view should not be hit")
	}
}

func TestCapturePointer(t *testing.T) {
	s := NewScene(400, 400)
	a := NewView("a", Rect{Width: 200, Height: 400}, ColorWhite)
	b := NewView("b", Rect{X: 200, Width: 200, Height: 400}, ColorWhite)
	s.Root().AddChild(a)
	s.Root().AddChild(b)
	var clicked *View
	a.OnClick = func(ctx ClickContext) { clicked = ctx.View }
	b.OnClick = func(ctx ClickContext) { clicked = ctx.View }

	s.CapturePointer(0, a)
	s.InjectClick(300, 100)
	drainInput(s)
	if clicked != a {
		t.Errorf("clicked = %v, want captured view", clicked)
	}

	s.ReleasePointer(0)
	s.InjectClick(300, 100)
	drainInput(s)
	if clicked != b {
		t.Errorf("clicked = %v, want b", clicked)
	}
}

func TestDimmingViewHitBehindSurface(t *testing.T) {
	content := newTestSurface(200)
	s, pc := presentSettled(t, PositionBottom, content)
	if hit := s.hitTest(200, 100); hit != pc.DimmingView().View() {
		t.Errorf("hit above the sheet = %v, want dimming view", hit)
	}
	if hit := s.hitTest(200, 700); hit != content.view {
		t.Errorf("hit on the sheet = %v, want surface", hit)
	}
}

func TestScrollByClampsWithoutBounce(t *testing.T) {
	v := NewScrollView("s", Rect{Width: 100, Height: 100}, 300)
	v.Scroll.Bounces = false
	v.scrollBy(50)
	if v.Scroll.OffsetY != 0 {
		t.Errorf("offset = %v, want clamped at 0", v.Scroll.OffsetY)
	}
	v.scrollBy(-500)
	if v.Scroll.OffsetY != 200 {
		t.Errorf("offset = %v, want clamped at 200", v.Scroll.OffsetY)
	}
	if !v.AtBottom() || v.AtTop() {
		t.Error("expected at bottom")
	}
}

func TestScrollRubberBandSettles(t *testing.T) {
	v := NewScrollView("s", Rect{Width: 100, Height: 100}, 300)
	v.scrollBy(40)
	if v.Scroll.OffsetY != -20 {
		t.Fatalf("offset = %v, want -20 at half speed", v.Scroll.OffsetY)
	}
	v.releaseScroll()
	for range 30 {
		updateScroll(v, testDT)
	}
	if math.Abs(v.Scroll.OffsetY) > 1e-6 || !v.AtTop() {
		t.Errorf("offset = %v, want settled at 0", v.Scroll.OffsetY)
	}
}

func TestScrollDisabledIgnoresDrag(t *testing.T) {
	v := NewScrollView("s", Rect{Width: 100, Height: 100}, 300)
	v.Scroll.Enabled = false
	v.scrollBy(-30)
	if v.Scroll.OffsetY != 0 {
		t.Errorf("offset = %v, want 0", v.Scroll.OffsetY)
	}
	v.SetScrollOffset(1000)
	if v.Scroll.OffsetY != 200 {
		t.Errorf("SetScrollOffset = %v, want 200", v.Scroll.OffsetY)
	}
}

func TestScrollDragThroughScene(t *testing.T) {
	s := NewScene(400, 400)
	sv := NewScrollView("list", Rect{Width: 400, Height: 400}, 1000)
	s.Root().AddChild(sv)

	s.InjectPress(200, 300)
	for y := 290.0; y >= 200; y -= 10 {
		s.InjectMove(200, y)
	}
	s.InjectRelease(200, 200)
	drainInput(s)
	if sv.Scroll.OffsetY != 100 {
		t.Errorf("offset = %v, want 100", sv.Scroll.OffsetY)
	}
}
