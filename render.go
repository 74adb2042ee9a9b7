package popup

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Draw renders the view tree onto screen. Transforms are refreshed first so
// views moved since the last Update draw at their new frame.
func (s *Scene) Draw(screen *ebiten.Image) {
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	drawView(screen, s.root)
}

// drawView draws v and its subtree depth-first, back to front. Scroll views
// clip their children to their world-space bounds.
func drawView(target *ebiten.Image, v *View) {
	if !v.Visible || v.disposed || v.worldAlpha <= 0 {
		return
	}
	if v.Type == ViewTypeSolid || (v.Type == ViewTypeScroll && v.Color.A > 0) {
		drawSolid(target, v)
	}
	if len(v.children) == 0 {
		return
	}
	if v.Type == ViewTypeScroll {
		clip := worldBounds(v).Intersect(target.Bounds())
		if clip.Empty() {
			return
		}
		target = target.SubImage(clip).(*ebiten.Image)
	}
	for _, child := range v.children {
		drawView(target, child)
	}
}

// drawSolid fills v's frame with its color using the shared white pixel.
func drawSolid(target *ebiten.Image, v *View) {
	if v.Width <= 0 || v.Height <= 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(v.Width, v.Height)
	m := v.worldTransform
	var world ebiten.GeoM
	world.SetElement(0, 0, m[0])
	world.SetElement(1, 0, m[1])
	world.SetElement(0, 1, m[2])
	world.SetElement(1, 1, m[3])
	world.SetElement(0, 2, m[4])
	world.SetElement(1, 2, m[5])
	op.GeoM.Concat(world)

	a := v.Color.A * v.worldAlpha
	op.ColorScale.Scale(float32(v.Color.R*a), float32(v.Color.G*a), float32(v.Color.B*a), float32(a))
	target.DrawImage(WhitePixel, &op)
}

// worldBounds is the integer axis-aligned box enclosing v's frame in world
// space.
func worldBounds(v *View) image.Rectangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range [4][2]float64{{0, 0}, {v.Width, 0}, {0, v.Height}, {v.Width, v.Height}} {
		x, y := transformPoint(v.worldTransform, c[0], c[1])
		minX, minY = min(minX, x), min(minY, y)
		maxX, maxY = max(maxX, x), max(maxY, y)
	}
	return image.Rect(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Ceil(maxX)), int(math.Ceil(maxY)))
}

// toRGBA converts a Color to a premultiplied colorRGBA.
func (c Color) toRGBA() colorRGBA {
	return colorRGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// colorRGBA implements the color.Color interface for image.Fill.
type colorRGBA struct {
	R, G, B, A uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}
