package popup

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// --- Per-pointer state ---

type pointerState struct {
	down       bool
	startX     float64
	startY     float64
	lastX      float64
	lastY      float64
	hitView    *View
	scrollView *View // scroll region the press landed in, if any
	dragging   bool
	button     MouseButton // button captured at press time
}

// CapturePointer routes all events for pointerID to the given view.
func (s *Scene) CapturePointer(pointerID int, view *View) {
	if pointerID >= 0 && pointerID < maxPointers {
		s.captured[pointerID] = view
	}
}

// ReleasePointer stops routing events for pointerID to a captured view.
func (s *Scene) ReleasePointer(pointerID int) {
	if pointerID >= 0 && pointerID < maxPointers {
		s.captured[pointerID] = nil
	}
}

// SetDragDeadZone sets the minimum movement in pixels before a drag or pan
// is recognized. Applies to gestures added afterwards.
func (s *Scene) SetDragDeadZone(pixels float64) {
	s.dragDeadZone = pixels
}

// --- Hit testing ---

// viewContainsLocal tests whether (lx, ly) falls inside a view's frame.
// Views with an empty frame are not hit-testable.
func viewContainsLocal(v *View, lx, ly float64) bool {
	if v.Width == 0 && v.Height == 0 {
		return false
	}
	return lx >= 0 && lx <= v.Width && ly >= 0 && ly <= v.Height
}

// hitTestView returns the topmost interactable view under (wx, wy) within
// v's subtree, searching children front to back. Scroll views clip their
// children to their own frame.
func hitTestView(v *View, wx, wy float64) *View {
	if !v.Visible || !v.Interactable || v.disposed {
		return nil
	}
	lx, ly := v.WorldToLocal(wx, wy)
	inside := viewContainsLocal(v, lx, ly)
	if v.Type == ViewTypeScroll && !inside {
		return nil
	}
	for i := len(v.children) - 1; i >= 0; i-- {
		if hit := hitTestView(v.children[i], wx, wy); hit != nil {
			return hit
		}
	}
	if inside {
		return v
	}
	return nil
}

// hitTest finds the topmost interactable view at (worldX, worldY).
// Returns nil if nothing is hit.
func (s *Scene) hitTest(worldX, worldY float64) *View {
	return hitTestView(s.root, worldX, worldY)
}

// --- Input processing ---

// processInput is called from Scene.Update() to handle all mouse and touch input.
// World transforms are already refreshed at the start of Scene.Update().
func (s *Scene) processInput() {
	if !s.processInjectedInput() {
		s.processMousePointer()
	}
	s.processTouchPointers()
}

// processMousePointer handles mouse input (pointer 0).
func (s *Scene) processMousePointer() {
	mx, my := ebiten.CursorPosition()

	var pressed bool
	var button MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)

	if left || right || middle {
		pressed = true
		if left {
			button = MouseButtonLeft
		} else if right {
			button = MouseButtonRight
		} else {
			button = MouseButtonMiddle
		}
	}

	s.processPointer(0, float64(mx), float64(my), pressed, button)
}

// processTouchPointers handles touch input (pointers 1-9).
func (s *Scene) processTouchPointers() {
	touchIDs := ebiten.AppendTouchIDs(s.prevTouchIDs[:0])
	s.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := s.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		s.processPointer(slot, float64(tx), float64(ty), true, MouseButtonLeft)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && !activeSlots[i] {
			ps := &s.pointers[i]
			if ps.down {
				s.processPointer(i, ps.lastX, ps.lastY, false, MouseButtonLeft)
			}
			s.touchUsed[i] = false
			s.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (s *Scene) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer runs the pointer state machine for a single pointer and
// feeds pan recognizers and scroll regions.
func (s *Scene) processPointer(pointerID int, wx, wy float64, pressed bool, button MouseButton) {
	ps := &s.pointers[pointerID]
	pos := Vec2{wx, wy}

	var target *View
	if s.captured[pointerID] != nil {
		target = s.captured[pointerID]
	} else {
		target = s.hitTest(wx, wy)
	}

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		ps.startX, ps.startY = wx, wy
		ps.lastX, ps.lastY = wx, wy
		ps.hitView = target
		ps.scrollView = scrollAncestor(target)
		ps.dragging = false

		s.firePointerDown(target, pointerID, wx, wy, ps.button)
		for _, g := range s.gesturesSnapshot() {
			g.touchDown(pointerID, pos, target, s.clock)
		}

	case !pressed && ps.down:
		for _, g := range s.gesturesSnapshot() {
			g.touchUp(pointerID, pos, s.clock)
		}
		if ps.dragging {
			if ps.scrollView != nil {
				ps.scrollView.releaseScroll()
			}
		} else if ps.hitView != nil && ps.hitView == target {
			s.fireClick(target, pointerID, wx, wy, ps.button)
		}

		s.captured[pointerID] = nil
		ps.down = false
		ps.hitView = nil
		ps.scrollView = nil
		ps.dragging = false

	case pressed && ps.down:
		dy := wy - ps.lastY
		moved := wx != ps.lastX || wy != ps.lastY
		if moved && !ps.dragging {
			dx := wx - ps.startX
			ddy := wy - ps.startY
			if math.Sqrt(dx*dx+ddy*ddy) > s.dragDeadZone {
				ps.dragging = true
			}
		}
		// Recognizers see the sample before the scroll region moves, so the
		// dismissal gate is evaluated against the pre-drag offset.
		for _, g := range s.gesturesSnapshot() {
			g.touchMove(pointerID, pos, s.clock)
		}
		if moved && ps.dragging && ps.scrollView != nil && !ps.scrollView.disposed {
			ps.scrollView.scrollBy(dy)
		}
		ps.lastX, ps.lastY = wx, wy

	default:
		ps.lastX, ps.lastY = wx, wy
	}
}

// gesturesSnapshot returns the recognizer list as it was before dispatch;
// handlers may add or remove recognizers while it is iterated.
func (s *Scene) gesturesSnapshot() []*PanGesture {
	s.gestureBuf = append(s.gestureBuf[:0], s.gestures...)
	return s.gestureBuf
}

// --- Event dispatch ---

func (s *Scene) firePointerDown(view *View, pointerID int, wx, wy float64, button MouseButton) {
	if view == nil || view.OnPointerDown == nil {
		return
	}
	lx, ly := view.WorldToLocal(wx, wy)
	view.OnPointerDown(PointerContext{
		View: view, GlobalX: wx, GlobalY: wy, LocalX: lx, LocalY: ly,
		Button: button, PointerID: pointerID,
	})
}

func (s *Scene) fireClick(view *View, pointerID int, wx, wy float64, button MouseButton) {
	if view == nil || view.OnClick == nil {
		return
	}
	lx, ly := view.WorldToLocal(wx, wy)
	view.OnClick(ClickContext{
		View: view, GlobalX: wx, GlobalY: wy, LocalX: lx, LocalY: ly,
		Button: button, PointerID: pointerID,
	})
}
