package popup

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default view color.
var ColorWhite = Color{1, 1, 1, 1}

// ColorBlack is used by the default dimming view.
var ColorBlack = Color{0, 0, 0, 1}

// Vec2 is a 2D vector used for positions, translations and velocities.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * k.
func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }

// WhitePixel is a 1x1 white image scaled and tinted to draw solid views.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(ColorWhite.toRGBA())
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Offset returns r moved by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Inset returns r shrunk by the given insets. Width and height never go
// below zero.
func (r Rect) Inset(in EdgeInsets) Rect {
	r.X += in.Left
	r.Y += in.Top
	r.Width = max(r.Width-in.Left-in.Right, 0)
	r.Height = max(r.Height-in.Top-in.Bottom, 0)
	return r
}

// EdgeInsets are the margins kept between the container and the presented
// surface.
type EdgeInsets struct {
	Top    float64 `mapstructure:"top" yaml:"top"`
	Left   float64 `mapstructure:"left" yaml:"left"`
	Bottom float64 `mapstructure:"bottom" yaml:"bottom"`
	Right  float64 `mapstructure:"right" yaml:"right"`
}

// Position selects where a surface rests and which transition family is used.
type Position uint8

const (
	PositionTop    Position = iota // slides in from the top edge
	PositionBottom                 // slides in from the bottom edge
	PositionCenter                 // zooms in at the center, slides out when dragged
)

// String returns the lowercase position name.
func (p Position) String() string {
	switch p {
	case PositionTop:
		return "top"
	case PositionBottom:
		return "bottom"
	case PositionCenter:
		return "center"
	default:
		return fmt.Sprintf("Position(%d)", uint8(p))
	}
}

// UnmarshalText parses "top", "bottom" or "center" (case-insensitive).
func (p *Position) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "top":
		*p = PositionTop
	case "bottom":
		*p = PositionBottom
	case "center", "centre":
		*p = PositionCenter
	default:
		return fmt.Errorf("popup: unknown position %q", text)
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (p Position) MarshalText() ([]byte, error) {
	if !p.valid() {
		return nil, fmt.Errorf("popup: invalid position %d", uint8(p))
	}
	return []byte(p.String()), nil
}

func (p Position) valid() bool {
	return p <= PositionCenter
}

// dismissSign is the sign applied to vertical translation so that movement
// toward the dismissed edge yields positive progress.
func (p Position) dismissSign() float64 {
	if p == PositionTop {
		return -1
	}
	return 1
}

// Phase identifies the direction of a transition.
type Phase uint8

const (
	PhasePresenting Phase = iota // surface is being brought on screen
	PhaseDismissing              // surface is being taken off screen
)

func (p Phase) String() string {
	if p == PhasePresenting {
		return "presenting"
	}
	return "dismissing"
}

// GestureState is the recognition state of a PanGesture.
type GestureState uint8

const (
	GesturePossible  GestureState = iota // tracking a touch, not yet recognized
	GestureBegan                         // movement passed the dead zone
	GestureChanged                       // subsequent movement
	GestureEnded                         // pointer released after recognition
	GestureCancelled                     // stream interrupted by the scene
	GestureFailed                        // recognition abandoned (extra pointer)
)

func (s GestureState) String() string {
	switch s {
	case GesturePossible:
		return "possible"
	case GestureBegan:
		return "began"
	case GestureChanged:
		return "changed"
	case GestureEnded:
		return "ended"
	case GestureCancelled:
		return "cancelled"
	case GestureFailed:
		return "failed"
	default:
		return fmt.Sprintf("GestureState(%d)", uint8(s))
	}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)
