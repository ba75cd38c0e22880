// Package worldui routes pointer input from a 3D scene into a flat 2D UI
// displayed on a surface in that scene.
//
// Each tick, a [Cursor] polls a [Pointer], casts a ray through the pointer
// position with a [Viewer] and a [RayCaster], and turns a hit on the owning
// surface into a normalized [CursorSample]. A [Stage] maps that sample into
// UI-local space, hit-tests a [Graph] and dispatches pointer-protocol events
// (pointer down/up/click, scroll, begin-drag/drag/end-drag) while tracking
// drag targets across ticks.
//
// # Quick start
//
// [Surface] wires both halves together:
//
//	cfg := worldui.DefaultConfig()
//	cfg.OwningSurface = monitor.ID
//	cfg.LogicalSize = worldui.Vec2{X: 800, Y: 600}
//
//	surface, err := worldui.NewSurface(worldui.NewMousePointer(), camera, world, graph, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// in ebiten's Game.Update:
//	surface.Update()
//
// Reference collaborators live in sub-packages: [raycast] provides a camera
// and a world of textured quads, [uigraph] a node tree with hit shapes and
// per-node callbacks, and [ecs] forwards dispatched events into a Donburi
// world.
//
// # Drag policy
//
// [DragPolicyStickyDirect] (the default) keeps reporting the last surface
// coordinate while a drag is in progress, even with the cursor off the
// surface, and sends drag updates to every drag target until release.
// [DragPolicyStrictHitCoupled] stops reporting on a miss and only updates
// drag targets that are under the cursor.
//
// [raycast]: https://pkg.go.dev/github.com/phanxgames/worldui/raycast
// [uigraph]: https://pkg.go.dev/github.com/phanxgames/worldui/uigraph
// [ecs]: https://pkg.go.dev/github.com/phanxgames/worldui/ecs
package worldui
