package popup

import (
	"math"
	"testing"
)

const testDT = float32(1.0 / 60.0)

// drainInput ticks s until every injected event has been consumed.
func drainInput(s *Scene) {
	for i := 0; i < 1000 && len(s.injectQueue) > 0; i++ {
		s.UpdateDelta(testDT)
	}
}

func newPanScene(t *testing.T) (*Scene, *View, *PanGesture, *[]GestureState) {
	t.Helper()
	s := NewScene(400, 800)
	v := NewView("target", Rect{X: 0, Y: 0, Width: 400, Height: 400}, ColorWhite)
	s.Root().AddChild(v)
	states := &[]GestureState{}
	g := s.AddPanGesture(v, func(g *PanGesture) {
		*states = append(*states, g.State)
	})
	return s, v, g, states
}

func TestPanRecognizesPastDeadZone(t *testing.T) {
	s, _, g, states := newPanScene(t)

	s.InjectPress(100, 100)
	s.InjectMove(100, 103)
	drainInput(s)
	if len(*states) != 0 {
		t.Fatalf("recognized inside dead zone: %v", *states)
	}
	if g.State != GesturePossible {
		t.Errorf("State = %s, want possible", g.State)
	}

	s.InjectMove(100, 120)
	drainInput(s)
	if len(*states) != 1 || (*states)[0] != GestureBegan {
		t.Fatalf("states = %v, want [began]", *states)
	}
	if g.Translation().Y != 20 {
		t.Errorf("translation at began = %v, want 20", g.Translation().Y)
	}

	s.InjectMove(100, 150)
	s.InjectRelease(100, 150)
	drainInput(s)
	want := []GestureState{GestureBegan, GestureChanged, GestureEnded}
	if len(*states) != len(want) {
		t.Fatalf("states = %v, want %v", *states, want)
	}
	for i := range want {
		if (*states)[i] != want[i] {
			t.Errorf("states[%d] = %s, want %s", i, (*states)[i], want[i])
		}
	}
	if g.State != GesturePossible {
		t.Errorf("State after end = %s, want possible", g.State)
	}
}

func TestPanIgnoresTouchOutsideView(t *testing.T) {
	s, _, _, states := newPanScene(t)
	s.InjectDrag(100, 600, 100, 700, 6)
	drainInput(s)
	if len(*states) != 0 {
		t.Errorf("states = %v, want none", *states)
	}
}

func TestPanShouldReceiveFilters(t *testing.T) {
	s, v, g, states := newPanScene(t)
	blocked := NewView("blocked", Rect{Width: 400, Height: 100}, ColorBlack)
	v.AddChild(blocked)
	g.ShouldReceive = func(touched *View) bool {
		return !touched.IsDescendantOf(blocked)
	}

	s.InjectDrag(100, 50, 100, 90, 6)
	drainInput(s)
	if len(*states) != 0 {
		t.Fatalf("touch in filtered view recognized: %v", *states)
	}

	s.InjectDrag(100, 200, 100, 260, 6)
	drainInput(s)
	if len(*states) == 0 {
		t.Error("touch outside filtered view not recognized")
	}
}

func TestPanSecondPointerFails(t *testing.T) {
	s, _, g, states := newPanScene(t)
	s.InjectPress(100, 100)
	s.InjectMove(100, 130)
	drainInput(s)
	if g.State != GestureBegan {
		t.Fatalf("State = %s, want began", g.State)
	}

	s.processPointer(1, 200, 200, true, MouseButtonLeft)
	last := (*states)[len(*states)-1]
	if last != GestureFailed {
		t.Errorf("last state = %s, want failed", last)
	}
	if g.State != GesturePossible {
		t.Errorf("State = %s, want reset to possible", g.State)
	}
}

func TestPanCancel(t *testing.T) {
	s, _, g, states := newPanScene(t)
	s.InjectPress(100, 100)
	s.InjectMove(100, 130)
	drainInput(s)

	g.Cancel()
	if (*states)[len(*states)-1] != GestureCancelled {
		t.Errorf("last state = %v, want cancelled", (*states)[len(*states)-1])
	}
	// A second cancel without a recognized gesture does nothing.
	n := len(*states)
	g.Cancel()
	if len(*states) != n {
		t.Error("Cancel on idle gesture fired handler")
	}
}

func TestPanVelocity(t *testing.T) {
	s, _, g, _ := newPanScene(t)
	s.InjectPress(100, 100)
	for i := 1; i <= 10; i++ {
		s.InjectMove(100, 100+float64(i*10))
	}
	drainInput(s)

	v := g.Velocity()
	if math.Abs(v.Y-600) > 1 {
		t.Errorf("velocity Y = %v, want ~600", v.Y)
	}
	if math.Abs(v.X) > 1e-9 {
		t.Errorf("velocity X = %v, want 0", v.X)
	}

	// Holding still lets the velocity decay to zero.
	s.InjectHold(100, 200, 10)
	drainInput(s)
	if v := g.Velocity(); v != (Vec2{}) {
		t.Errorf("velocity after hold = %v, want zero", v)
	}
}

func TestRemovePanGesture(t *testing.T) {
	s, _, g, states := newPanScene(t)
	s.RemovePanGesture(g)
	s.InjectDrag(100, 100, 100, 200, 6)
	drainInput(s)
	if len(*states) != 0 {
		t.Errorf("removed gesture fired: %v", *states)
	}
	if len(s.gestures) != 0 {
		t.Errorf("gestures = %d, want 0", len(s.gestures))
	}
}

func TestPanLocationIn(t *testing.T) {
	s, v, g, _ := newPanScene(t)
	v.SetPosition(50, 60)
	s.InjectPress(100, 100)
	s.InjectMove(100, 130)
	drainInput(s)
	loc := g.LocationIn(v)
	if loc.X != 50 || loc.Y != 70 {
		t.Errorf("LocationIn = %v, want (50, 70)", loc)
	}
}
