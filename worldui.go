package worldui

import "github.com/chewxy/math32"

// Vec2 is a 2D vector used for screen positions, normalized surface
// coordinates, UI-local positions and scroll deltas.
type Vec2 struct {
	X, Y float32
}

// Mul returns the component-wise product of v and o.
func (v Vec2) Mul(o Vec2) Vec2 {
	return Vec2{v.X * o.X, v.Y * o.Y}
}

// Vec3 is a 3D vector in scene space.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns v * s.
func (v Vec3) Scale(s float32) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float32 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Len returns the Euclidean length of v.
func (v Vec3) Len() float32 { return math32.Sqrt(v.Dot(v)) }

// Normalize returns v scaled to unit length. The zero vector is returned as is.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Ray is a half-line in scene space. Direction is expected to be unit length.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// ColliderID identifies a collider in the scene. Zero means "no collider".
type ColliderID uint32

// LayerMask is a bitmask of collision layers. A collider on layer n is
// considered by a query when bit n of the mask is set.
type LayerMask uint32

// AllLayers matches every collision layer.
const AllLayers LayerMask = ^LayerMask(0)

// Has reports whether layer is enabled in the mask.
func (m LayerMask) Has(layer uint8) bool {
	return layer < 32 && m&(1<<layer) != 0
}

// EventKind identifies a synthesized pointer-protocol event.
type EventKind uint8

const (
	EventPointerDown  EventKind = iota // button pressed over the element
	EventPointerUp                     // button released over the element
	EventPointerClick                  // sent right after EventPointerUp to the same element
	EventScroll                        // scroll delta above epsilon on either axis
	EventBeginDrag                     // pressed edge; acceptance registers a drag target
	EventDrag                          // drag update to a registered drag target
	EventEndDrag                       // released edge, sent to drag targets in order
)

var eventKindNames = [...]string{
	EventPointerDown:  "pointer-down",
	EventPointerUp:    "pointer-up",
	EventPointerClick: "pointer-click",
	EventScroll:       "scroll",
	EventBeginDrag:    "begin-drag",
	EventDrag:         "drag",
	EventEndDrag:      "end-drag",
}

// String returns a short, lower-case name for the event kind.
func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return "unknown"
}

// MouseButton identifies the button carried by a PointerEvent.
type MouseButton uint8

const (
	ButtonNone MouseButton = iota // no button held
	ButtonLeft                    // primary button held
)
