package popup

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// computeLocalTransform computes the local affine matrix from the view's
// frame, scale and anchor. Returns [a, b, c, d, tx, ty].
//
// Composition order:
//
//	Translate(-anchor) -> Scale -> Translate(anchor) -> Translate(X, Y)
func computeLocalTransform(v *View) [6]float64 {
	ax := v.AnchorX * v.Width
	ay := v.AnchorY * v.Height
	return [6]float64{
		v.ScaleX, 0,
		0, v.ScaleY,
		v.X + ax - ax*v.ScaleX,
		v.Y + ay - ay*v.ScaleY,
	}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular.
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// contentTransform is the matrix children of v are placed with. Scroll views
// shift their content up by the scroll offset.
func contentTransform(v *View) [6]float64 {
	if v.Scroll == nil || v.Scroll.OffsetY == 0 {
		return v.worldTransform
	}
	return multiplyAffine(v.worldTransform, [6]float64{1, 0, 0, 1, 0, -v.Scroll.OffsetY})
}

// updateWorldTransform recomputes a view's worldTransform and worldAlpha.
// parentRecomputed forces recomputation of this view even if it's not dirty.
func updateWorldTransform(v *View, parentTransform [6]float64, parentAlpha float64, parentRecomputed bool) {
	recompute := v.transformDirty || parentRecomputed
	if recompute {
		local := computeLocalTransform(v)
		v.worldTransform = multiplyAffine(parentTransform, local)
		v.worldAlpha = parentAlpha * v.Alpha
		v.transformDirty = false
	}

	if len(v.children) == 0 {
		return
	}
	ct := contentTransform(v)
	for _, child := range v.children {
		updateWorldTransform(child, ct, v.worldAlpha, recompute)
	}
}

// --- Transform property setters ---

// SetPosition sets the view's frame origin and marks it dirty.
func (v *View) SetPosition(x, y float64) {
	v.X = x
	v.Y = y
	v.transformDirty = true
}

// SetScale sets the view's ScaleX and ScaleY and marks it dirty.
func (v *View) SetScale(sx, sy float64) {
	v.ScaleX = sx
	v.ScaleY = sy
	v.transformDirty = true
}

// SetAlpha sets the view's alpha and marks it dirty.
func (v *View) SetAlpha(a float64) {
	v.Alpha = a
	v.transformDirty = true
}

// --- Coordinate conversion ---

// WorldToLocal converts a world-space point to this view's local coordinate space.
func (v *View) WorldToLocal(wx, wy float64) (lx, ly float64) {
	inv := invertAffine(v.worldTransform)
	return transformPoint(inv, wx, wy)
}

// LocalToWorld converts a local-space point to world-space.
func (v *View) LocalToWorld(lx, ly float64) (wx, wy float64) {
	return transformPoint(v.worldTransform, lx, ly)
}
