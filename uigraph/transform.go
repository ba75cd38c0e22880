package uigraph

import "github.com/chewxy/math32"

// affine is a 2D affine matrix laid out as [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type affine [6]float32

var identityTransform = affine{1, 0, 0, 1, 0, 0}

// computeLocalTransform composes
// Translate(-PivotX, -PivotY) -> Scale -> Rotate -> Translate(X, Y).
func computeLocalTransform(n *Node) affine {
	sin, cos := math32.Sin(n.Rotation), math32.Cos(n.Rotation)
	sx, sy := n.ScaleX, n.ScaleY

	preTx := -n.PivotX * sx
	preTy := -n.PivotY * sy

	return affine{
		cos * sx,
		sin * sx,
		-sin * sy,
		cos * sy,
		cos*preTx - sin*preTy + n.X,
		sin*preTx + cos*preTy + n.Y,
	}
}

// multiplyAffine returns p * c.
func multiplyAffine(p, c affine) affine {
	return affine{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine returns the inverse of m, or false if m is singular.
func invertAffine(m affine) (affine, bool) {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform, false
	}
	invDet := 1 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return affine{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}, true
}

func transformPoint(m affine, x, y float32) (float32, float32) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// updateWorldTransform recomputes worldTransform for n and its subtree.
// parentRecomputed forces recomputation of clean children.
func updateWorldTransform(n *Node, parent affine, parentRecomputed bool) {
	recompute := n.transformDirty || parentRecomputed
	if recompute {
		n.worldTransform = multiplyAffine(parent, computeLocalTransform(n))
		n.invWorld, n.invertible = invertAffine(n.worldTransform)
		n.transformDirty = false
	}
	for _, child := range n.children {
		updateWorldTransform(child, n.worldTransform, recompute)
	}
}
