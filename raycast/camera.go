package raycast

import (
	"github.com/chewxy/math32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/worldui"
)

// moveAnim holds active tweens for camera position and target, x/y/z each.
type moveAnim struct {
	tweens [6]*gween.Tween
}

// Camera is a perspective camera that looks from Position toward Target.
// It implements worldui.Viewer.
type Camera struct {
	Position worldui.Vec3
	Target   worldui.Vec3
	// Up is the world up direction used to orient the view.
	Up worldui.Vec3
	// FOV is the vertical field of view in radians.
	FOV float32
	// Viewport is the screen size in pixels.
	Viewport worldui.Vec2

	move *moveAnim
}

// NewCamera creates a camera with +Y up.
func NewCamera(position, target worldui.Vec3, fov float32, viewport worldui.Vec2) *Camera {
	return &Camera{
		Position: position,
		Target:   target,
		Up:       worldui.Vec3{Y: 1},
		FOV:      fov,
		Viewport: viewport,
	}
}

// basis returns the camera's orthonormal forward, right and up vectors.
func (c *Camera) basis() (forward, right, up worldui.Vec3) {
	forward = c.Target.Sub(c.Position).Normalize()
	right = forward.Cross(c.Up).Normalize()
	up = right.Cross(forward)
	return forward, right, up
}

// ScreenRay returns the ray from the camera through a screen position.
// Screen space has its origin at the top-left with Y increasing downward.
func (c *Camera) ScreenRay(screen worldui.Vec2) worldui.Ray {
	forward, right, up := c.basis()
	if c.Viewport.X <= 0 || c.Viewport.Y <= 0 {
		return worldui.Ray{Origin: c.Position, Direction: forward}
	}

	ndcX := 2*screen.X/c.Viewport.X - 1
	ndcY := 1 - 2*screen.Y/c.Viewport.Y
	h := math32.Tan(c.FOV / 2)
	aspect := c.Viewport.X / c.Viewport.Y

	dir := forward.
		Add(right.Scale(ndcX * h * aspect)).
		Add(up.Scale(ndcY * h))
	return worldui.Ray{Origin: c.Position, Direction: dir.Normalize()}
}

// WorldToScreen projects a scene point into screen space. It returns false
// for points at or behind the camera plane.
func (c *Camera) WorldToScreen(p worldui.Vec3) (worldui.Vec2, bool) {
	forward, right, up := c.basis()
	d := p.Sub(c.Position)
	z := d.Dot(forward)
	if z <= 0 || c.Viewport.X <= 0 || c.Viewport.Y <= 0 {
		return worldui.Vec2{}, false
	}
	h := math32.Tan(c.FOV / 2)
	aspect := c.Viewport.X / c.Viewport.Y
	ndcX := d.Dot(right) / (z * h * aspect)
	ndcY := d.Dot(up) / (z * h)
	return worldui.Vec2{
		X: (ndcX + 1) * c.Viewport.X / 2,
		Y: (1 - ndcY) * c.Viewport.Y / 2,
	}, true
}

// MoveTo animates the camera position and target over duration seconds.
func (c *Camera) MoveTo(position, target worldui.Vec3, duration float32, easeFn ease.TweenFunc) {
	from := [6]float32{c.Position.X, c.Position.Y, c.Position.Z, c.Target.X, c.Target.Y, c.Target.Z}
	to := [6]float32{position.X, position.Y, position.Z, target.X, target.Y, target.Z}
	m := &moveAnim{}
	for i := range m.tweens {
		m.tweens[i] = gween.New(from[i], to[i], duration, easeFn)
	}
	c.move = m
}

// Moving reports whether a MoveTo animation is in progress.
func (c *Camera) Moving() bool {
	return c.move != nil
}

// Update advances any active MoveTo animation by dt seconds.
func (c *Camera) Update(dt float32) {
	if c.move == nil {
		return
	}
	var v [6]float32
	finished := true
	for i, tw := range c.move.tweens {
		var done bool
		v[i], done = tw.Update(dt)
		finished = finished && done
	}
	c.Position = worldui.Vec3{X: v[0], Y: v[1], Z: v[2]}
	c.Target = worldui.Vec3{X: v[3], Y: v[4], Z: v[5]}
	if finished {
		c.move = nil
	}
}
