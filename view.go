package popup

// ViewType distinguishes rendering and input behavior for a View.
type ViewType uint8

const (
	ViewTypeContainer ViewType = iota // groups children, draws nothing
	ViewTypeSolid                     // fills its frame with Color
	ViewTypeScroll                    // clips children and scrolls them vertically
)

// PointerContext carries pointer event data.
type PointerContext struct {
	View      *View
	GlobalX   float64
	GlobalY   float64
	LocalX    float64
	LocalY    float64
	Button    MouseButton
	PointerID int
}

// ClickContext carries click event data.
type ClickContext struct {
	View      *View
	GlobalX   float64
	GlobalY   float64
	LocalX    float64
	LocalY    float64
	Button    MouseButton
	PointerID int
}

// viewIDCounter is a plain counter (no atomic; popup is single-threaded).
var viewIDCounter uint32

func nextViewID() uint32 {
	viewIDCounter++
	return viewIDCounter
}

// View is the element of the presentation hierarchy. Surfaces, dimming
// backgrounds, scroll regions and their content are all Views.
//
// The frame (X, Y, Width, Height) is expressed in the parent's coordinate
// space. Scale is applied around the anchor point, given as a fraction of the
// frame size, so scaling never moves the frame's resting origin.
type View struct {
	// Identity
	ID   uint32
	Name string
	Type ViewType

	// Hierarchy
	Parent   *View
	children []*View

	// Frame (local)
	X, Y          float64
	Width, Height float64
	ScaleX        float64
	ScaleY        float64
	AnchorX       float64
	AnchorY       float64

	worldTransform [6]float64
	worldAlpha     float64
	transformDirty bool

	// Visibility & interaction
	Alpha        float64
	Visible      bool
	Interactable bool
	Color        Color

	// Scroll fields (ViewTypeScroll)
	Scroll *ScrollState

	// Per-view callbacks (nil by default)
	OnPointerDown func(PointerContext)
	OnClick       func(ClickContext)

	disposed bool
}

func viewDefaults(v *View) {
	v.ID = nextViewID()
	v.ScaleX = 1
	v.ScaleY = 1
	v.AnchorX = 0.5
	v.AnchorY = 0.5
	v.Alpha = 1
	v.Color = ColorWhite
	v.Visible = true
	v.Interactable = true
	v.transformDirty = true
}

// NewContainer creates a view with no visual representation. A container
// with a non-zero frame still receives pointer input.
func NewContainer(name string) *View {
	v := &View{Name: name, Type: ViewTypeContainer}
	viewDefaults(v)
	return v
}

// NewView creates a solid view filling frame with color.
func NewView(name string, frame Rect, color Color) *View {
	v := &View{Name: name, Type: ViewTypeSolid}
	viewDefaults(v)
	v.Color = color
	v.SetFrame(frame)
	return v
}

// NewScrollView creates a vertically scrolling view. Children are laid out
// in content coordinates; contentHeight is the scrollable extent.
func NewScrollView(name string, frame Rect, contentHeight float64) *View {
	v := &View{Name: name, Type: ViewTypeScroll}
	viewDefaults(v)
	v.Color = Color{}
	v.Scroll = &ScrollState{ContentHeight: contentHeight, Enabled: true, Bounces: true}
	v.SetFrame(frame)
	return v
}

// Frame returns the view's frame in its parent's coordinate space.
func (v *View) Frame() Rect {
	return Rect{X: v.X, Y: v.Y, Width: v.Width, Height: v.Height}
}

// SetFrame moves and resizes the view and marks it dirty.
func (v *View) SetFrame(r Rect) {
	v.X, v.Y = r.X, r.Y
	v.Width, v.Height = r.Width, r.Height
	v.transformDirty = true
}

// --- Tree manipulation ---

// AddChild appends child to this view's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this view (cycle).
func (v *View) AddChild(child *View) {
	v.InsertChildAt(child, len(v.children))
}

// InsertChildAt inserts child at the given index. Index 0 places the child
// behind all its siblings.
func (v *View) InsertChildAt(child *View, index int) {
	if child == nil {
		panic("popup: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(v, "InsertChildAt (parent)")
		debugCheckDisposed(child, "InsertChildAt (child)")
	}
	if isAncestor(child, v) {
		panic("popup: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	if index < 0 || index > len(v.children) {
		panic("popup: child index out of range")
	}
	child.Parent = v
	v.children = append(v.children, nil)
	copy(v.children[index+1:], v.children[index:])
	v.children[index] = child
	markSubtreeDirty(child)
}

// RemoveChild detaches child from this view.
// Panics if child.Parent != v.
func (v *View) RemoveChild(child *View) {
	if child.Parent != v {
		panic("popup: child's parent is not this view")
	}
	v.removeChildByPtr(child)
	child.Parent = nil
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this view from its parent.
// No-op if this view has no parent.
func (v *View) RemoveFromParent() {
	if v.Parent == nil {
		return
	}
	v.Parent.RemoveChild(v)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (v *View) Children() []*View {
	return v.children
}

// NumChildren returns the number of children.
func (v *View) NumChildren() int {
	return len(v.children)
}

// ChildAt returns the child at the given index.
func (v *View) ChildAt(index int) *View {
	return v.children[index]
}

// IsDescendantOf reports whether v is ancestor or lies anywhere below it.
func (v *View) IsDescendantOf(ancestor *View) bool {
	if ancestor == nil {
		return false
	}
	return isAncestor(ancestor, v)
}

// Dispose removes this view from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (v *View) Dispose() {
	if v.disposed {
		return
	}
	v.RemoveFromParent()
	v.dispose()
}

func (v *View) dispose() {
	v.disposed = true
	v.ID = 0
	for _, child := range v.children {
		child.Parent = nil
		child.dispose()
	}
	v.children = nil
	v.Parent = nil
	v.Scroll = nil
	v.OnPointerDown = nil
	v.OnClick = nil
}

// IsDisposed returns true if this view has been disposed.
func (v *View) IsDisposed() bool {
	return v.disposed
}

// --- Helpers ---

// findView resolves a view handle by walking the tree below root.
// Returns nil for zero or stale handles.
func findView(root *View, id uint32) *View {
	if root == nil || id == 0 {
		return nil
	}
	if root.ID == id {
		return root
	}
	for _, child := range root.children {
		if v := findView(child, id); v != nil {
			return v
		}
	}
	return nil
}

// isAncestor reports whether candidate is node or one of its ancestors.
func isAncestor(candidate, node *View) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from v.children without clearing child.Parent.
func (v *View) removeChildByPtr(child *View) {
	for i, c := range v.children {
		if c == child {
			copy(v.children[i:], v.children[i+1:])
			v.children[len(v.children)-1] = nil
			v.children = v.children[:len(v.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets transformDirty on view and all its descendants.
func markSubtreeDirty(view *View) {
	view.transformDirty = true
	for _, child := range view.children {
		markSubtreeDirty(child)
	}
}
