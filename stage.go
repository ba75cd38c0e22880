package worldui

import (
	"fmt"
	"math"
)

// scrollEpsilon is the smallest scroll magnitude that produces a scroll event.
const scrollEpsilon = math.SmallestNonzeroFloat32

// Stage maps normalized surface coordinates into UI-local space, hit-tests
// the UI graph and dispatches synthesized pointer events. It owns the set of
// active drag targets, which is the only state carried between ticks.
//
// A Stage is driven by a single goroutine, once per tick.
type Stage struct {
	graph  Graph
	size   Vec2
	policy DragPolicy

	drags    dragSet
	handlers handlerRegistry
	sink     EventSink
	debug    bool

	dispatched int       // events executed during the current tick
	hits       []Element // this tick's hit list, owned by the stage
}

// NewStage creates a stage that dispatches into graph. Only the LogicalSize
// and DragPolicy fields of cfg are used.
func NewStage(graph Graph, cfg Config) (*Stage, error) {
	if graph == nil {
		return nil, fmt.Errorf("%w: nil graph", ErrInvalidConfig)
	}
	if err := cfg.validateStage(); err != nil {
		return nil, err
	}
	return &Stage{
		graph:  graph,
		size:   cfg.LogicalSize,
		policy: cfg.DragPolicy,
	}, nil
}

func (c Config) validateStage() error {
	if !(c.LogicalSize.X > 0) || !(c.LogicalSize.Y > 0) {
		return fmt.Errorf("%w: logical size must be positive, got %vx%v",
			ErrInvalidConfig, c.LogicalSize.X, c.LogicalSize.Y)
	}
	if c.DragPolicy != DragPolicyStickyDirect && c.DragPolicy != DragPolicyStrictHitCoupled {
		return fmt.Errorf("%w: unknown drag policy %d", ErrInvalidConfig, c.DragPolicy)
	}
	return nil
}

// On registers a stage-level callback fired after every executed event of
// the given kind, whether or not the element handled it.
func (s *Stage) On(kind EventKind, fn func(DispatchEvent)) CallbackHandle {
	return s.handlers.add(kind, fn)
}

// SetEventSink sets the optional ECS bridge.
func (s *Stage) SetEventSink(sink EventSink) {
	s.sink = sink
}

// SetDebugMode enables or disables per-tick dispatch traces on stderr.
func (s *Stage) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// ActiveDrags returns a copy of the current drag targets in insertion order.
func (s *Stage) ActiveDrags() []Element {
	if s.drags.len() == 0 {
		return nil
	}
	out := make([]Element, len(s.drags.order))
	copy(out, s.drags.order)
	return out
}

// Reset forgets all drag targets without dispatching end-drag.
// Must not be called from inside a graph handler.
func (s *Stage) Reset() {
	s.drags.clear()
}

// Tick processes one cursor sample.
func (s *Stage) Tick(sample CursorSample) {
	s.dispatched = 0

	base := PointerEvent{
		HasPosition: sample.HasCoordinate,
		Coordinate:  sample.Coordinate,
	}
	if sample.Held {
		base.Button = ButtonLeft
	}

	var hits []Element
	if sample.HasCoordinate {
		base.Position = sample.Coordinate.Mul(s.size)
		// Handlers may hit-test the graph again during dispatch.
		s.hits = append(s.hits[:0], s.graph.HitTest(base.Position)...)
		hits = s.hits
	}

	// Release always runs first and always clears, whatever is under the cursor.
	if sample.Released {
		s.endDrags(base)
	}

	if s.policy.direct() && sample.Held && s.drags.len() > 0 {
		s.continueDrags(base)
	}

	scrolling := math.Abs(float64(sample.Scroll.X)) > scrollEpsilon ||
		math.Abs(float64(sample.Scroll.Y)) > scrollEpsilon

	for _, hit := range hits {
		ev := base
		ev.Target = hit
		ev.Hit = hit

		if scrolling {
			ev.Scroll = sample.Scroll
			s.execute(hit, EventScroll, &ev)
		}

		if sample.Pressed {
			if s.execute(hit, EventBeginDrag, &ev) {
				s.drags.add(hit)
			}
			if dr, ok := FindDragRange(hit); ok {
				dr.InitializePotentialDrag(&ev)
				s.drags.add(hit)
			}
		} else if !s.policy.direct() && !sample.Released && s.drags.contains(hit) {
			ev.Dragging = true
			s.execute(hit, EventDrag, &ev)
			if dr, ok := FindDragRange(hit); ok {
				dr.Drag(&ev)
			}
		}

		if sample.Pressed {
			if s.execute(hit, EventPointerDown, &ev) {
				break
			}
		} else if sample.Released {
			up := s.execute(hit, EventPointerUp, &ev)
			click := s.execute(hit, EventPointerClick, &ev)
			if up || click {
				break
			}
		}
	}

	if s.debug && s.dispatched > 0 {
		s.debugLog(sample, len(hits))
	}
	clear(s.hits)
}

// endDrags sends end-drag to each target in insertion order until one
// handles it, then clears the set.
func (s *Stage) endDrags(base PointerEvent) {
	for i := 0; i < len(s.drags.order); i++ {
		target := s.drags.order[i]
		ev := base
		ev.Target = target
		if s.execute(target, EventEndDrag, &ev) {
			break
		}
	}
	s.drags.clear()
}

// continueDrags sends a drag update to every target, independent of the
// current hit list.
func (s *Stage) continueDrags(base PointerEvent) {
	for i := 0; i < len(s.drags.order); i++ {
		target := s.drags.order[i]
		ev := base
		ev.Target = target
		ev.Dragging = true
		s.execute(target, EventDrag, &ev)
		if dr, ok := FindDragRange(target); ok {
			dr.Drag(&ev)
		}
	}
}

// execute runs one event against the graph and fans the result out to
// stage-level callbacks and the event sink.
func (s *Stage) execute(el Element, kind EventKind, ev *PointerEvent) bool {
	handled := s.graph.Execute(el, kind, ev)
	s.dispatched++

	if s.sink == nil && len(s.handlers.byKind[kind]) == 0 {
		return handled
	}
	de := DispatchEvent{
		Kind:     kind,
		Element:  el,
		Position: ev.Position,
		Scroll:   ev.Scroll,
		Handled:  handled,
	}
	s.handlers.fire(de)
	if s.sink != nil {
		s.sink.EmitEvent(de)
	}
	return handled
}
