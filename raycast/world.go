package raycast

import (
	"github.com/chewxy/math32"

	"github.com/phanxgames/worldui"
)

// parallelEpsilon rejects rays nearly parallel to a quad's plane.
const parallelEpsilon = 1e-8

// Quad is a parallelogram collider. Origin maps to UV (0,0), Origin+U to
// (1,0) and Origin+V to (0,1). Both faces are hittable.
type Quad struct {
	ID     worldui.ColliderID
	Layer  uint8
	Origin worldui.Vec3
	U, V   worldui.Vec3

	// Disabled quads are skipped by queries.
	Disabled bool
}

// Normal returns the unnormalized plane normal U × V.
func (q *Quad) Normal() worldui.Vec3 {
	return q.U.Cross(q.V)
}

// intersect returns the ray distance and UV at which r crosses q.
func (q *Quad) intersect(r worldui.Ray) (t float32, uv worldui.Vec2, ok bool) {
	n := q.Normal()
	denom := r.Direction.Dot(n)
	if math32.Abs(denom) < parallelEpsilon {
		return 0, worldui.Vec2{}, false
	}
	t = q.Origin.Sub(r.Origin).Dot(n) / denom
	if t < 0 {
		return 0, worldui.Vec2{}, false
	}
	local := r.At(t).Sub(q.Origin)
	nn := n.Dot(n)
	u := local.Cross(q.V).Dot(n) / nn
	v := q.U.Cross(local).Dot(n) / nn
	if u < 0 || u > 1 || v < 0 || v > 1 {
		return 0, worldui.Vec2{}, false
	}
	return t, worldui.Vec2{X: u, Y: v}, true
}

// World is a flat list of quad colliders. It implements worldui.RayCaster.
type World struct {
	quads  []*Quad
	nextID worldui.ColliderID
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{}
}

// AddQuad creates a quad on the given layer and assigns it a fresh ID.
func (w *World) AddQuad(origin, u, v worldui.Vec3, layer uint8) *Quad {
	w.nextID++
	q := &Quad{ID: w.nextID, Layer: layer, Origin: origin, U: u, V: v}
	w.quads = append(w.quads, q)
	return q
}

// Remove deletes the quad with the given ID. No-op if it does not exist.
func (w *World) Remove(id worldui.ColliderID) {
	for i, q := range w.quads {
		if q.ID == id {
			copy(w.quads[i:], w.quads[i+1:])
			w.quads[len(w.quads)-1] = nil
			w.quads = w.quads[:len(w.quads)-1]
			return
		}
	}
}

// Quads returns the collider list. The returned slice MUST NOT be mutated.
func (w *World) Quads() []*Quad {
	return w.quads
}

// Raycast implements worldui.RayCaster: it returns the nearest enabled quad
// on a layer in mask within maxDistance.
func (w *World) Raycast(r worldui.Ray, maxDistance float32, mask worldui.LayerMask) (worldui.RayHit, bool) {
	var best worldui.RayHit
	found := false
	for _, q := range w.quads {
		if q.Disabled || !mask.Has(q.Layer) {
			continue
		}
		t, uv, ok := q.intersect(r)
		if !ok || t > maxDistance {
			continue
		}
		if !found || t < best.Distance {
			best = worldui.RayHit{
				Collider: q.ID,
				UV:       uv,
				Point:    r.At(t),
				Distance: t,
			}
			found = true
		}
	}
	return best, found
}
