package popup

// syntheticPointerEvent is one queued sample for pointer 0, in scene
// coordinates.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
	button  MouseButton
}

func (s *Scene) enqueuePointer(x, y float64, pressed bool) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		x: x, y: y,
		pressed: pressed,
		button:  MouseButtonLeft,
	})
}

// InjectPress puts a finger down at (x, y). Each queued sample is delivered
// on its own frame, ahead of any real mouse or touch input.
func (s *Scene) InjectPress(x, y float64) {
	s.enqueuePointer(x, y, true)
}

// InjectMove drags a finger already put down by InjectPress to (x, y).
func (s *Scene) InjectMove(x, y float64) {
	s.enqueuePointer(x, y, true)
}

// InjectHold keeps the finger still at (x, y) for frames samples, letting
// the pan velocity fall to zero so a release settles by position alone.
func (s *Scene) InjectHold(x, y float64, frames int) {
	for range frames {
		s.InjectMove(x, y)
	}
}

// InjectRelease lifts the finger at (x, y).
func (s *Scene) InjectRelease(x, y float64) {
	s.enqueuePointer(x, y, false)
}

// InjectClick taps (x, y), for example the dimming view behind a sheet.
func (s *Scene) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag swipes from one point to another across frames samples, with
// evenly spaced moves between the press and the release. Fewer than two
// frames is treated as two.
func (s *Scene) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	frames = max(frames, 2)
	s.InjectPress(fromX, fromY)
	moves := frames - 2
	for i := 1; i <= moves; i++ {
		t := float64(i) / float64(moves+1)
		s.InjectMove(lerp(fromX, toX, t), lerp(fromY, toY, t))
	}
	s.InjectRelease(toX, toY)
}

// processInjectedInput delivers the next queued sample. It reports true when
// real pointer input must be ignored this frame, which holds for as long as
// a synthetic finger is down.
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return s.injectHeld
	}
	evt := s.injectQueue[0]
	s.injectQueue = s.injectQueue[1:]

	s.injectHeld = evt.pressed
	s.processPointer(0, evt.x, evt.y, evt.pressed, evt.button)
	return true
}
