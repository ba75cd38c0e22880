package worldui

// Element is a node of the flat UI graph. Implementations must be
// comparable (typically pointers) because elements are tracked by identity
// across ticks.
type Element interface {
	// ParentElement returns the enclosing element, or nil at the root.
	ParentElement() Element
}

// Graph is the UI graph collaborator. The stage never hit-tests or runs
// widget behavior itself; it only asks the graph.
type Graph interface {
	// HitTest returns every element under the UI-local position, nearest to
	// the viewer first. The slice may be reused by the next call; the stage
	// copies it before dispatching.
	HitTest(pos Vec2) []Element
	// Execute runs the element's handler for kind, if it has one, and
	// reports whether the event was handled.
	Execute(el Element, kind EventKind, ev *PointerEvent) bool
}

// DragRange is the capability of range-style controls (sliders, scrollbars)
// that track the pointer through their own drag logic rather than through
// begin-drag acceptance.
type DragRange interface {
	InitializePotentialDrag(ev *PointerEvent)
	Drag(ev *PointerEvent)
}

// DragRangeProvider is implemented by elements that may expose a DragRange.
type DragRangeProvider interface {
	DragRange() (DragRange, bool)
}

// FindDragRange returns the drag-range capability of el or of its nearest
// ancestor that exposes one.
func FindDragRange(el Element) (DragRange, bool) {
	for e := el; e != nil; e = e.ParentElement() {
		if p, ok := e.(DragRangeProvider); ok {
			if dr, ok := p.DragRange(); ok && dr != nil {
				return dr, true
			}
		}
	}
	return nil, false
}

// PointerEvent carries synthesized pointer data to a Graph handler.
type PointerEvent struct {
	// Target is the element the event is delivered to.
	Target Element
	// Hit is the element under the cursor that produced this event. It is
	// nil for end-drag and direct drag updates, which are not hit-driven.
	Hit Element
	// Position is the UI-local position, valid when HasPosition is set.
	Position    Vec2
	HasPosition bool
	// Coordinate is the normalized surface coordinate the position came from.
	Coordinate Vec2
	Scroll     Vec2
	Button     MouseButton
	Dragging   bool
}
