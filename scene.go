package popup

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// Scene is the top-level object that owns the view tree, input state, the
// notification center and the presentation currently on screen.
type Scene struct {
	root   *View
	debug  bool
	logger zerolog.Logger

	bounds         Rect
	keyboardHeight float64
	notifications  NotificationCenter

	// Presentation state
	presentation *PresentationController
	transition   *activeTransition

	// Input state
	captured     [maxPointers]*View
	pointers     [maxPointers]pointerState
	dragDeadZone float64
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
	gestures     []*PanGesture
	gestureBuf   []*PanGesture
	clock        float64 // seconds since the scene's first update

	// Synthetic input (tests and scripted runs)
	injectQueue []syntheticPointerEvent
	injectHeld  bool
	testRunner  *TestRunner
}

// NewScene creates a scene whose container is width x height.
func NewScene(width, height float64) *Scene {
	root := NewContainer("root")
	root.Interactable = true
	return &Scene{
		root:         root,
		bounds:       Rect{Width: width, Height: height},
		dragDeadZone: defaultDragDeadZone,
		logger:       zerolog.Nop(),
	}
}

// Root returns the scene's root container view.
func (s *Scene) Root() *View {
	return s.root
}

// Bounds returns the container rectangle surfaces are presented in.
func (s *Scene) Bounds() Rect {
	return s.bounds
}

// SetBounds resizes the container, as on a window resize or device
// rotation, and posts NotificationOrientationChanged when it changed.
func (s *Scene) SetBounds(r Rect) {
	if r == s.bounds {
		return
	}
	s.bounds = r
	s.logger.Debug().
		Float64("width", r.Width).
		Float64("height", r.Height).
		Msg("container bounds changed")
	s.notifications.Post(Notification{
		Name:           NotificationOrientationChanged,
		Bounds:         r,
		KeyboardHeight: s.keyboardHeight,
	})
}

// Notifications returns the scene's notification center.
func (s *Scene) Notifications() *NotificationCenter {
	return &s.notifications
}

// KeyboardHeight returns the height of the on-screen keyboard, 0 when hidden.
func (s *Scene) KeyboardHeight() float64 {
	return s.keyboardHeight
}

// ShowKeyboard reports an on-screen keyboard of the given height. A keyboard
// that is already visible only changes frame.
func (s *Scene) ShowKeyboard(height float64) {
	if height <= 0 {
		s.HideKeyboard()
		return
	}
	if s.keyboardHeight > 0 {
		s.SetKeyboardHeight(height)
		return
	}
	s.keyboardHeight = height
	s.logger.Debug().Float64("height", height).Msg("keyboard shown")
	s.notifications.Post(Notification{
		Name:           NotificationKeyboardWillShow,
		Bounds:         s.bounds,
		KeyboardHeight: height,
	})
}

// HideKeyboard reports that the on-screen keyboard went away.
func (s *Scene) HideKeyboard() {
	if s.keyboardHeight == 0 {
		return
	}
	s.keyboardHeight = 0
	s.logger.Debug().Msg("keyboard hidden")
	s.notifications.Post(Notification{
		Name:   NotificationKeyboardWillHide,
		Bounds: s.bounds,
	})
}

// SetKeyboardHeight changes the frame of a visible keyboard.
func (s *Scene) SetKeyboardHeight(height float64) {
	if s.keyboardHeight == 0 || height == s.keyboardHeight {
		return
	}
	if height <= 0 {
		s.HideKeyboard()
		return
	}
	s.keyboardHeight = height
	s.notifications.Post(Notification{
		Name:           NotificationKeyboardFrameChanged,
		Bounds:         s.bounds,
		KeyboardHeight: height,
	})
}

// Update advances the scene by one tick at the current TPS.
func (s *Scene) Update() {
	s.UpdateDelta(float32(1.0 / float64(ebiten.TPS())))
}

// UpdateDelta advances the scene by dt seconds: input, scroll settling,
// transitions and deferred layout, in that order.
func (s *Scene) UpdateDelta(dt float32) {
	s.clock += float64(dt)

	if s.testRunner != nil {
		s.testRunner.step(s)
	}

	// Refresh world transforms first so hit testing sees this frame's layout.
	updateWorldTransform(s.root, identityTransform, 1.0, false)

	updateScroll(s.root, dt)
	s.processInput()
	s.updateTransition(dt)
	if s.presentation != nil {
		s.presentation.layoutIfNeeded()
	}
}

// SetLogger sets the logger used for transition, gesture and layout events.
func (s *Scene) SetLogger(l zerolog.Logger) {
	s.logger = l
}

// Logger returns the scene's logger.
func (s *Scene) Logger() zerolog.Logger {
	return s.logger
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-view
// access panics, tree depth and child count warnings are logged, and a scene
// without a logger gets a console logger on stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
	if enabled && s.logger.GetLevel() == zerolog.Disabled {
		s.logger = newDebugLogger()
	}
}

// globalDebug mirrors the most recently set Scene debug flag so that view
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool
