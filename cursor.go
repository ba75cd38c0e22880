package worldui

import "fmt"

// PointerState is one tick's worth of raw pointer device input.
type PointerState struct {
	// Position is the pointer position in screen space.
	Position Vec2
	// Scroll is the raw scroll delta for this tick.
	Scroll Vec2
	// Held is the primary button level.
	Held bool
}

// Pointer is the input collaborator, polled once per tick.
type Pointer interface {
	Poll() PointerState
}

// Viewer builds scene rays through screen positions.
type Viewer interface {
	ScreenRay(screen Vec2) Ray
}

// RayHit describes the nearest collider intersected by a ray query.
type RayHit struct {
	Collider ColliderID
	// UV is the normalized surface coordinate at the intersection, in
	// [0,1]^2, using the collider's own UV mapping.
	UV       Vec2
	Point    Vec3
	Distance float32
}

// RayCaster is the scene ray-query collaborator. Raycast returns the nearest
// collider on an enabled layer within maxDistance.
type RayCaster interface {
	Raycast(ray Ray, maxDistance float32, mask LayerMask) (RayHit, bool)
}

// CursorSample is what the cursor front-end hands to the stage each tick.
type CursorSample struct {
	// Coordinate is the normalized surface coordinate, valid when
	// HasCoordinate is set.
	Coordinate    Vec2
	HasCoordinate bool
	// Scroll is the scroll delta after sensitivity and inversion.
	Scroll   Vec2
	Held     bool
	Pressed  bool // became held this tick
	Released bool // stopped being held this tick
}

// Cursor is the front-end of a surface: it turns pointer device state and a
// scene ray query into a CursorSample scoped to one owning surface.
type Cursor struct {
	pointer Pointer
	viewer  Viewer
	caster  RayCaster

	surface     ColliderID
	maxDistance float32
	mask        LayerMask
	sensitivity Vec2
	invertX     bool
	invertY     bool
	policy      DragPolicy

	prevHeld bool
	dragging bool
	lastHit  Vec2
}

// NewCursor creates a cursor front-end for the surface named in cfg.
func NewCursor(pointer Pointer, viewer Viewer, caster RayCaster, cfg Config) (*Cursor, error) {
	switch {
	case pointer == nil:
		return nil, fmt.Errorf("%w: nil pointer", ErrInvalidConfig)
	case viewer == nil:
		return nil, fmt.Errorf("%w: nil viewer", ErrInvalidConfig)
	case caster == nil:
		return nil, fmt.Errorf("%w: nil ray caster", ErrInvalidConfig)
	}
	if err := cfg.validateCursor(); err != nil {
		return nil, err
	}
	return &Cursor{
		pointer:     pointer,
		viewer:      viewer,
		caster:      caster,
		surface:     cfg.OwningSurface,
		maxDistance: cfg.MaxDistance,
		mask:        cfg.LayerMask,
		sensitivity: cfg.ScrollSensitivity,
		invertX:     cfg.InvertScrollX,
		invertY:     cfg.InvertScrollY,
		policy:      cfg.DragPolicy,
	}, nil
}

func (c Config) validateCursor() error {
	if c.OwningSurface == 0 {
		return fmt.Errorf("%w: owning surface not set", ErrInvalidConfig)
	}
	if !(c.MaxDistance > 0) {
		return fmt.Errorf("%w: max distance must be positive, got %v", ErrInvalidConfig, c.MaxDistance)
	}
	return nil
}

// Dragging reports whether a sticky drag is in progress.
func (c *Cursor) Dragging() bool {
	return c.dragging
}

// Reset clears the button history and any sticky drag state.
func (c *Cursor) Reset() {
	c.prevHeld = false
	c.dragging = false
	c.lastHit = Vec2{}
}

// Sample polls the pointer, casts a ray and returns this tick's sample.
// It returns false when nothing should be forwarded to the stage.
func (c *Cursor) Sample() (CursorSample, bool) {
	st := c.pointer.Poll()

	// Edge history advances every tick, hit or miss.
	pressed := st.Held && !c.prevHeld
	released := !st.Held && c.prevHeld
	c.prevHeld = st.Held

	sample := CursorSample{
		Scroll:   c.scroll(st.Scroll),
		Held:     st.Held,
		Pressed:  pressed,
		Released: released,
	}

	hit, ok := c.caster.Raycast(c.viewer.ScreenRay(st.Position), c.maxDistance, c.mask)
	if ok && hit.Collider != c.surface {
		ok = false
	}

	switch {
	case ok:
		c.lastHit = hit.UV
		if pressed && c.policy.sticky() {
			c.dragging = true
		}
		sample.Coordinate = hit.UV
	case c.policy.sticky() && c.dragging:
		sample.Coordinate = c.lastHit
	default:
		return CursorSample{}, false
	}
	sample.HasCoordinate = true

	if released {
		c.dragging = false
	}
	return sample, true
}

// scroll applies per-axis sensitivity and inversion.
func (c *Cursor) scroll(raw Vec2) Vec2 {
	s := raw.Mul(c.sensitivity)
	if c.invertX {
		s.X = -s.X
	}
	if c.invertY {
		s.Y = -s.Y
	}
	return s
}
