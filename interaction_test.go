package popup

import (
	"math"
	"testing"
)

func TestDragBottomPastHalfFinishes(t *testing.T) {
	content := newTestSurface(200)
	s, pc := presentSettled(t, PositionBottom, content)
	ic := pc.Interaction()

	dragTo(s, 200, 650, 770)
	if !s.Transitioning() || ic.State() != InteractionDismissing {
		t.Fatalf("transitioning=%v state=%s, want an interactive dismissal", s.Transitioning(), ic.State())
	}
	if !ic.HasStarted() {
		t.Error("HasStarted should be true while dragging")
	}
	if !s.transition.ctx.IsInteractive() {
		t.Error("a drag-driven dismissal should be interactive")
	}
	if p := ic.PercentComplete(); math.Abs(p-0.6) > 1e-9 {
		t.Errorf("percent = %v, want 0.6", p)
	}
	if content.view.Y != 720 {
		t.Errorf("surface Y = %v, want 720", content.view.Y)
	}

	s.InjectRelease(200, 770)
	settle(t, s)
	if ic.HasStarted() {
		t.Error("HasStarted should reset on release")
	}
	if s.Presentation() != nil || ic.State() != InteractionTerminated {
		t.Errorf("state = %s, want dismissed", ic.State())
	}
}

func TestDragBottomShortCancels(t *testing.T) {
	content := newTestSurface(200)
	s, pc := presentSettled(t, PositionBottom, content)
	ic := pc.Interaction()

	dragTo(s, 200, 650, 710)
	if p := ic.PercentComplete(); math.Abs(p-0.3) > 1e-9 {
		t.Errorf("percent = %v, want 0.3", p)
	}
	s.InjectRelease(200, 710)
	settle(t, s)

	if s.Presentation() != pc {
		t.Fatal("presentation should survive a cancelled drag")
	}
	if ic.State() != InteractionPresented {
		t.Errorf("state = %s, want presented", ic.State())
	}
	if content.view.Y != 600 {
		t.Errorf("surface Y = %v, want back at 600", content.view.Y)
	}
	if a := pc.DimmingView().View().Alpha; math.Abs(a-DefaultDimmingAlpha) > 1e-9 {
		t.Errorf("dimming alpha = %v, want restored", a)
	}
}

func TestDragFailedDuringDismissalCancels(t *testing.T) {
	content := newTestSurface(200)
	s, pc := presentSettled(t, PositionBottom, content)
	ic := pc.Interaction()

	dragTo(s, 200, 650, 770)
	if p := ic.PercentComplete(); math.Abs(p-0.6) > 1e-9 {
		t.Fatalf("percent = %v, want 0.6", p)
	}
	// A second finger fails the single-pointer pan.
	s.processPointer(1, 200, 760, true, MouseButtonLeft)
	if ic.HasStarted() {
		t.Error("HasStarted should reset when the pan fails")
	}
	s.processPointer(1, 200, 760, false, MouseButtonLeft)
	s.InjectRelease(200, 770)
	settle(t, s)

	if s.Presentation() != pc || ic.State() != InteractionPresented {
		t.Fatalf("state = %s, want presented even past half", ic.State())
	}
	if content.view.Y != 600 {
		t.Errorf("surface Y = %v, want back at 600", content.view.Y)
	}
}

func TestDragCancelledDuringDismissalProjects(t *testing.T) {
	tests := []struct {
		name      string
		toY       float64
		dismissed bool
	}{
		{"past half", 770, true},
		{"short", 710, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := newTestSurface(200)
			s, pc := presentSettled(t, PositionBottom, content)
			ic := pc.Interaction()

			dragTo(s, 200, 650, tt.toY)
			ic.Pan().Cancel()
			if ic.HasStarted() {
				t.Error("HasStarted should reset on cancel")
			}
			s.InjectRelease(200, tt.toY)
			settle(t, s)

			if got := s.Presentation() == nil; got != tt.dismissed {
				t.Errorf("dismissed = %v, want %v", got, tt.dismissed)
			}
			if !tt.dismissed && content.view.Y != 600 {
				t.Errorf("surface Y = %v, want back at 600", content.view.Y)
			}
		})
	}
}

func TestDragBottomFlingFinishes(t *testing.T) {
	content := newTestSurface(400)
	s, pc := presentSettled(t, PositionBottom, content)

	// A quick downward flick covering under half the travel.
	s.InjectPress(200, 450)
	for y := 480.0; y <= 600; y += 30 {
		s.InjectMove(200, y)
	}
	drainInput(s)
	if p := pc.Interaction().PercentComplete(); math.Abs(p-0.375) > 1e-9 {
		t.Fatalf("percent = %v, want 0.375", p)
	}
	if v := pc.Interaction().Pan().Velocity(); v.Y < 1000 {
		t.Fatalf("velocity = %v, want a fast fling", v.Y)
	}

	s.InjectRelease(200, 600)
	settle(t, s)
	if s.Presentation() != nil {
		t.Error("fast fling should dismiss")
	}
}

func TestDragBottomScenario(t *testing.T) {
	// 400pt sheet, 250pt drag, no velocity: 0.625 complete, dismissed.
	content := newTestSurface(400)
	s, pc := presentSettled(t, PositionBottom, content)
	dragTo(s, 200, 450, 700)
	if p := pc.Interaction().PercentComplete(); math.Abs(p-0.625) > 1e-9 {
		t.Errorf("percent = %v, want 0.625", p)
	}
	s.InjectRelease(200, 700)
	settle(t, s)
	if s.Presentation() != nil {
		t.Error("expected dismissal")
	}
}

func TestDragTopDownStays(t *testing.T) {
	// 300pt top sheet dragged 50pt toward the screen: progress clamps at 0.
	content := newTestSurface(300)
	s, pc := presentSettled(t, PositionTop, content)
	ic := pc.Interaction()

	dragTo(s, 200, 100, 150)
	if p := ic.PercentComplete(); p != 0 {
		t.Errorf("percent = %v, want 0", p)
	}
	s.InjectRelease(200, 150)
	settle(t, s)
	if s.Presentation() != pc || ic.State() != InteractionPresented {
		t.Errorf("state = %s, want still presented", ic.State())
	}
	if content.view.Y != 0 {
		t.Errorf("Y = %v, want 0", content.view.Y)
	}
}

func TestDragTopUpDismisses(t *testing.T) {
	content := newTestSurface(300)
	s, pc := presentSettled(t, PositionTop, content)

	dragTo(s, 200, 250, 50)
	if p := pc.Interaction().PercentComplete(); math.Abs(p-2.0/3) > 1e-9 {
		t.Errorf("percent = %v, want 2/3", p)
	}
	if math.Abs(content.view.Y+200) > 1e-9 {
		t.Errorf("Y = %v, want -200", content.view.Y)
	}
	s.InjectRelease(200, 50)
	settle(t, s)
	if s.Presentation() != nil {
		t.Error("expected dismissal")
	}
}

func TestDragCenterDismissesBySliding(t *testing.T) {
	content := newTestSurface(200)
	s, pc := presentSettled(t, PositionCenter, content)
	ic := pc.Interaction()

	// Travel is half the container plus half the surface: 500.
	dragTo(s, 200, 350, 650)
	if p := ic.PercentComplete(); math.Abs(p-0.6) > 1e-9 {
		t.Errorf("percent = %v, want 0.6", p)
	}
	if content.view.Y != 600 {
		t.Errorf("Y = %v, want 600 (sliding, not zooming)", content.view.Y)
	}
	if content.view.ScaleX != 1 {
		t.Errorf("scale = %v, want 1", content.view.ScaleX)
	}
	s.InjectRelease(200, 650)
	settle(t, s)
	if s.Presentation() != nil {
		t.Error("expected dismissal")
	}
}

func TestDismissGateSuppressesDragWhileScrolled(t *testing.T) {
	content := newTestSurface(400).withScroll(1000)
	s, pc := presentSettled(t, PositionBottom, content)
	ic := pc.Interaction()
	if !content.scroll.Scroll.Enabled {
		t.Fatal("scroll region should be enabled once presented")
	}
	content.scroll.SetScrollOffset(300)

	s.InjectPress(200, 600)
	for y := 610.0; y <= 690; y += 20 {
		s.InjectMove(200, y)
	}
	drainInput(s)

	if p := ic.PercentComplete(); p != 0 {
		t.Errorf("percent = %v, want 0 while content is scrolled", p)
	}
	if content.view.Y != 400 {
		t.Errorf("surface Y = %v, want resting 400", content.view.Y)
	}
	if off := content.scroll.Scroll.OffsetY; off >= 300 || off <= 0 {
		t.Errorf("offset = %v, want the drag to scroll the content", off)
	}
	if !content.scroll.Scroll.Bounces {
		t.Error("region away from its edge should bounce")
	}

	s.InjectHold(200, 690, 10)
	s.InjectRelease(200, 690)
	settle(t, s)
	if s.Presentation() != pc || ic.State() != InteractionPresented {
		t.Errorf("state = %s, want presented", ic.State())
	}
}

func TestDismissGateOpensAtScrollEdge(t *testing.T) {
	content := newTestSurface(400).withScroll(1000)
	s, pc := presentSettled(t, PositionBottom, content)
	ic := pc.Interaction()
	content.scroll.SetScrollOffset(30)

	s.InjectPress(200, 600)
	for y := 620.0; y <= 800; y += 20 {
		s.InjectMove(200, y)
	}
	drainInput(s)

	if content.scroll.Scroll.OffsetY != 0 {
		t.Errorf("offset = %v, want clamped at the top edge", content.scroll.Scroll.OffsetY)
	}
	if p := ic.PercentComplete(); p <= 0 {
		t.Errorf("percent = %v, want progress once the content reached its edge", p)
	}
	if content.scroll.Scroll.Bounces {
		t.Error("region at its resting edge should not bounce")
	}
}

func TestAlwaysInteractiveViewOpensGate(t *testing.T) {
	content := newTestSurface(400).withScroll(1000)
	s, pc := presentSettled(t, PositionBottom, content)
	ic := pc.Interaction()
	content.scroll.SetScrollOffset(300)

	// The grabber sits above the scroll region at Y 400..440.
	dragTo(s, 200, 420, 660)
	if p := ic.PercentComplete(); math.Abs(p-0.6) > 1e-9 {
		t.Errorf("percent = %v, want 0.6", p)
	}
	if content.scroll.Scroll.OffsetY != 300 {
		t.Errorf("offset = %v, want untouched", content.scroll.Scroll.OffsetY)
	}
	s.InjectRelease(200, 660)
	settle(t, s)
	if s.Presentation() != nil {
		t.Error("expected dismissal")
	}
}

func TestExcludedViewNeverStartsDismissal(t *testing.T) {
	content := newTestSurface(200)
	content.excluded = NewView("slider", Rect{Width: 400, Height: 60}, ColorBlack)
	content.view.AddChild(content.excluded)
	s, pc := presentSettled(t, PositionBottom, content)

	dragTo(s, 200, 620, 760)
	if s.Transitioning() {
		t.Error("touch in excluded view started a transition")
	}
	s.InjectRelease(200, 760)
	settle(t, s)
	if s.Presentation() != pc {
		t.Error("presentation should remain")
	}

	// Outside the excluded strip the pan works.
	dragTo(s, 200, 700, 790)
	if !s.Transitioning() {
		t.Error("touch outside excluded view should start a dismissal")
	}
}

func TestDisallowedInteractionIsNoOp(t *testing.T) {
	content := newTestSurface(200)
	content.noDismiss = true
	s, pc := presentSettled(t, PositionBottom, content)

	dragTo(s, 200, 650, 790)
	s.InjectRelease(200, 790)
	drainInput(s)
	if s.Transitioning() {
		t.Error("drag should not start a transition")
	}

	// Background tap is ignored too.
	s.InjectClick(200, 100)
	settle(t, s)
	if s.Presentation() != pc || content.view.Y != 600 {
		t.Error("surface should remain presented at rest")
	}
}

func TestDimmingTapDismisses(t *testing.T) {
	content := newTestSurface(200)
	s, pc := presentSettled(t, PositionBottom, content)
	ic := pc.Interaction()

	s.InjectClick(200, 100)
	drainInput(s)
	if !s.Transitioning() {
		t.Fatal("background tap should start a dismissal")
	}
	if ic.HasStarted() {
		t.Error("tap dismissal is not a drag")
	}
	if s.transition.ctx.IsInteractive() {
		t.Error("tap dismissal should run on its own")
	}
	settle(t, s)
	if s.Presentation() != nil {
		t.Error("expected dismissal")
	}
}

func TestPresentingDragCancelsPresentation(t *testing.T) {
	content := newTestSurface(200)
	s := NewScene(400, 800)
	d := NewTransitioningDelegate(TransitionConfig{Position: PositionBottom})
	pc, err := s.Present(content, d)
	if err != nil {
		t.Fatal(err)
	}
	s.UpdateDelta(testDT)
	s.UpdateDelta(testDT)
	ic := pc.Interaction()
	g := ic.Pan()

	g.State = GestureBegan
	ic.handlePan(g)
	if s.transition.animator.IsRunning() {
		t.Fatal("began should pause the presentation")
	}
	start := ic.PercentComplete()

	// Dragging down pulls the surface back out.
	g.State = GestureChanged
	g.translation = Vec2{Y: 20}
	ic.handlePan(g)
	want := start - 0.1
	if p := ic.PercentComplete(); math.Abs(p-max(want, 0)) > 1e-9 {
		t.Errorf("percent = %v, want %v", p, max(want, 0))
	}
	if g.Translation() != (Vec2{}) {
		t.Error("translation should be consumed")
	}

	g.State = GestureEnded
	ic.handlePan(g)
	settle(t, s)
	if s.Presentation() != nil {
		t.Error("presentation should be cancelled")
	}
	if content.view.Parent != nil {
		t.Error("surface should be removed")
	}
	if ic.State() != InteractionTerminated {
		t.Errorf("state = %s, want terminated", ic.State())
	}
	if c := s.notifications.count(NotificationKeyboardWillShow); c != 0 {
		t.Errorf("keyboard observers = %d, want 0 after cancelled presentation", c)
	}
}

func TestPresentingDragFinishesPresentation(t *testing.T) {
	content := newTestSurface(200)
	s := NewScene(400, 800)
	d := NewTransitioningDelegate(TransitionConfig{Position: PositionBottom})
	pc, err := s.Present(content, d)
	if err != nil {
		t.Fatal(err)
	}
	s.UpdateDelta(testDT)
	ic := pc.Interaction()
	g := ic.Pan()

	g.State = GestureBegan
	ic.handlePan(g)
	g.State = GestureChanged
	g.translation = Vec2{Y: -160} // dragging up pulls the sheet in
	ic.handlePan(g)
	if p := ic.PercentComplete(); p < 0.8 {
		t.Errorf("percent = %v, want >= 0.8", p)
	}
	g.State = GestureEnded
	ic.handlePan(g)
	settle(t, s)

	if ic.State() != InteractionPresented {
		t.Errorf("state = %s, want presented", ic.State())
	}
	if content.view.Y != 600 {
		t.Errorf("Y = %v, want 600", content.view.Y)
	}
}

func TestPresentingFailedCancels(t *testing.T) {
	content := newTestSurface(200)
	s := NewScene(400, 800)
	pc, err := s.Present(content, NewTransitioningDelegate(TransitionConfig{Position: PositionTop}))
	if err != nil {
		t.Fatal(err)
	}
	for range 10 {
		s.UpdateDelta(testDT)
	}
	ic := pc.Interaction()
	g := ic.Pan()
	g.State = GestureBegan
	ic.handlePan(g)
	g.State = GestureFailed
	ic.handlePan(g)
	settle(t, s)
	if s.Presentation() != nil {
		t.Error("failed gesture should cancel the presentation")
	}
}

func TestWantsInteractiveStart(t *testing.T) {
	content := newTestSurface(200)
	s := NewScene(400, 800)
	pc, err := s.Present(content, NewTransitioningDelegate(TransitionConfig{Position: PositionBottom}))
	if err != nil {
		t.Fatal(err)
	}
	ic := pc.Interaction()
	ic.Pan().State = GestureBegan
	if ic.WantsInteractiveStart() {
		t.Error("no interactive start before the presentation ends")
	}
	ic.Pan().State = GesturePossible
	settle(t, s)

	if ic.WantsInteractiveStart() {
		t.Error("no interactive start without a recognized pan")
	}
	ic.Pan().State = GestureBegan
	if !ic.WantsInteractiveStart() {
		t.Error("presented surface with a beginning pan wants an interactive start")
	}
	ic.Pan().State = GestureChanged
	if ic.WantsInteractiveStart() {
		t.Error("only the initial recognized phase starts interactively")
	}
}

func TestPercentOpsWithoutTransition(t *testing.T) {
	ic := newInteractionController(NewScene(400, 800), PositionBottom, EdgeInsets{})
	ic.pause()
	ic.update(0.5)
	ic.finish()
	ic.cancel()
	if ic.PercentComplete() != 0 {
		t.Errorf("percent = %v, want 0", ic.PercentComplete())
	}
}

func TestDismissGateTop(t *testing.T) {
	content := newTestSurface(400).withScroll(1000)
	ic := newInteractionController(NewScene(400, 800), PositionTop, EdgeInsets{})
	ic.content = content
	hi := content.scroll.Scroll.maxOffset(content.scroll.Height)

	content.scroll.Scroll.OffsetY = 0
	if ic.dismissGateOpen() {
		t.Error("top sheet scrolled to top should keep the gate closed")
	}
	if !content.scroll.Scroll.Bounces {
		t.Error("should bounce away from the bottom edge")
	}

	content.scroll.Scroll.OffsetY = hi
	if !ic.dismissGateOpen() {
		t.Error("top sheet scrolled to bottom should open the gate")
	}
	if content.scroll.Scroll.Bounces {
		t.Error("should not bounce at the bottom edge")
	}
}

func TestInteractionStateString(t *testing.T) {
	if InteractionDismissing.String() != "dismissing" {
		t.Errorf("got %q", InteractionDismissing.String())
	}
	if InteractionState(99).String() != "unknown" {
		t.Errorf("got %q", InteractionState(99).String())
	}
}
