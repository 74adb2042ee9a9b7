package popup

import "math"

const (
	defaultDragDeadZone = 4.0 // pixels
	velocityWindow      = 0.1 // seconds of history used for velocity
	maxVelocitySamples  = 16
)

type panSample struct {
	pos Vec2
	t   float64
}

// PanGesture recognizes a single-pointer drag on a view and its descendants.
// The handler is called on every recognized state: began, changed, and one
// of ended, cancelled or failed. Touches that ShouldReceive rejects are never
// tracked.
//
// The recognizer holds its view by handle; once the view leaves the scene the
// recognizer stops receiving touches.
type PanGesture struct {
	// State is the current recognition state. It reads GesturePossible
	// between gestures.
	State GestureState

	// Handler is invoked for each recognized state change.
	Handler func(*PanGesture)
	// ShouldReceive filters touches at pointer-down. touched is the topmost
	// view under the pointer. Nil accepts every touch.
	ShouldReceive func(touched *View) bool

	scene    *Scene
	viewID   uint32
	deadZone float64

	tracking  bool
	pointerID int
	start     Vec2
	location  Vec2
	last      Vec2

	translation Vec2
	samples     [maxVelocitySamples]panSample
	nsamples    int
}

// AddPanGesture attaches a pan recognizer to view.
func (s *Scene) AddPanGesture(view *View, handler func(*PanGesture)) *PanGesture {
	if view == nil {
		panic("popup: cannot attach gesture to nil view")
	}
	g := &PanGesture{
		Handler:  handler,
		scene:    s,
		viewID:   view.ID,
		deadZone: s.dragDeadZone,
	}
	s.gestures = append(s.gestures, g)
	return g
}

// RemovePanGesture detaches g. A gesture in progress is cancelled first.
func (s *Scene) RemovePanGesture(g *PanGesture) {
	for i, c := range s.gestures {
		if c == g {
			g.Cancel()
			copy(s.gestures[i:], s.gestures[i+1:])
			s.gestures[len(s.gestures)-1] = nil
			s.gestures = s.gestures[:len(s.gestures)-1]
			return
		}
	}
}

// View resolves the view the recognizer is attached to, or nil if it is no
// longer in the scene.
func (g *PanGesture) View() *View {
	if g.scene == nil {
		return nil
	}
	return findView(g.scene.root, g.viewID)
}

// Translation is the accumulated movement since recognition or since the
// last SetTranslation.
func (g *PanGesture) Translation() Vec2 {
	return g.translation
}

// SetTranslation resets the accumulated translation.
func (g *PanGesture) SetTranslation(t Vec2) {
	g.translation = t
}

// Location is the pointer position in world space.
func (g *PanGesture) Location() Vec2 {
	return g.location
}

// LocationIn is the pointer position in v's local space.
func (g *PanGesture) LocationIn(v *View) Vec2 {
	if v == nil {
		return g.location
	}
	x, y := v.WorldToLocal(g.location.X, g.location.Y)
	return Vec2{x, y}
}

// Velocity estimates pointer velocity in points per second from the samples
// recorded in the last velocityWindow seconds.
func (g *PanGesture) Velocity() Vec2 {
	if g.nsamples < 2 {
		return Vec2{}
	}
	newest := g.samples[(g.nsamples-1)%maxVelocitySamples]
	oldest := newest
	n := min(g.nsamples, maxVelocitySamples)
	for i := 1; i < n; i++ {
		s := g.samples[(g.nsamples-1-i)%maxVelocitySamples]
		if newest.t-s.t > velocityWindow {
			break
		}
		oldest = s
	}
	dt := newest.t - oldest.t
	if dt <= 0 {
		return Vec2{}
	}
	return newest.pos.Sub(oldest.pos).Scale(1 / dt)
}

// Cancel ends a recognized gesture with GestureCancelled. No-op otherwise.
func (g *PanGesture) Cancel() {
	g.terminate(GestureCancelled)
}

// consumeProgress converts the pending vertical translation into a fraction
// of maxExtent and zeroes it, so each delta is counted exactly once.
func (g *PanGesture) consumeProgress(maxExtent float64) float64 {
	p := TranslationProgress(g.translation.Y, maxExtent)
	g.translation = Vec2{}
	return p
}

func (g *PanGesture) recognized() bool {
	return g.State == GestureBegan || g.State == GestureChanged
}

func (g *PanGesture) fire() {
	if g.Handler != nil {
		g.Handler(g)
	}
}

func (g *PanGesture) record(pos Vec2, now float64) {
	g.samples[g.nsamples%maxVelocitySamples] = panSample{pos: pos, t: now}
	g.nsamples++
}

// touchDown starts tracking a pointer that landed on touched.
func (g *PanGesture) touchDown(pointerID int, pos Vec2, touched *View, now float64) {
	if g.tracking {
		// A second pointer: a single-pointer pan gives up.
		if g.recognized() {
			g.terminate(GestureFailed)
		}
		return
	}
	view := g.View()
	if view == nil || touched == nil || !touched.IsDescendantOf(view) {
		return
	}
	if g.ShouldReceive != nil && !g.ShouldReceive(touched) {
		return
	}
	g.tracking = true
	g.pointerID = pointerID
	g.start, g.location, g.last = pos, pos, pos
	g.translation = Vec2{}
	g.nsamples = 0
	g.State = GesturePossible
	g.record(pos, now)
}

// touchMove feeds a held pointer sample, moved or not.
func (g *PanGesture) touchMove(pointerID int, pos Vec2, now float64) {
	if !g.tracking || pointerID != g.pointerID {
		return
	}
	g.record(pos, now)
	g.location = pos
	if pos == g.last {
		return
	}
	delta := pos.Sub(g.last)
	g.last = pos

	switch g.State {
	case GesturePossible:
		d := pos.Sub(g.start)
		if math.Hypot(d.X, d.Y) > g.deadZone {
			g.translation = d
			g.State = GestureBegan
			g.fire()
		}
	case GestureBegan, GestureChanged:
		g.translation = g.translation.Add(delta)
		g.State = GestureChanged
		g.fire()
	}
}

// touchUp ends the tracked pointer.
func (g *PanGesture) touchUp(pointerID int, pos Vec2, now float64) {
	if !g.tracking || pointerID != g.pointerID {
		return
	}
	g.record(pos, now)
	if pos != g.last {
		g.translation = g.translation.Add(pos.Sub(g.last))
		g.last = pos
	}
	g.location = pos
	if g.recognized() {
		g.terminate(GestureEnded)
		return
	}
	g.reset()
}

func (g *PanGesture) terminate(state GestureState) {
	if !g.recognized() {
		return
	}
	g.State = state
	g.fire()
	g.reset()
}

func (g *PanGesture) reset() {
	g.tracking = false
	g.State = GesturePossible
}
