package worldui

// EventSink is the interface for optional ECS integration.
// When set on a Stage, every executed event is forwarded to it.
type EventSink interface {
	EmitEvent(event DispatchEvent)
}

// DispatchEvent records one event the stage executed against the graph.
type DispatchEvent struct {
	Kind     EventKind
	Element  Element
	Position Vec2
	Scroll   Vec2
	Handled  bool
}

// --- Handler registry ---

type dispatchHandler struct {
	id uint32
	fn func(DispatchEvent)
}

type handlerRegistry struct {
	byKind [EventEndDrag + 1][]dispatchHandler
	nextID uint32
}

// CallbackHandle allows removing a registered stage-level callback.
type CallbackHandle struct {
	id   uint32
	reg  *handlerRegistry
	kind EventKind
}

// Remove unregisters this callback so it no longer fires. It is safe to
// call from inside a callback, including the one being removed.
func (h CallbackHandle) Remove() {
	if h.reg == nil || int(h.kind) >= len(h.reg.byKind) {
		return
	}
	s := h.reg.byKind[h.kind]
	for i := range s {
		if s[i].id == h.id {
			// A fire in progress keeps ranging over the old slice.
			out := make([]dispatchHandler, 0, len(s)-1)
			out = append(out, s[:i]...)
			out = append(out, s[i+1:]...)
			h.reg.byKind[h.kind] = out
			return
		}
	}
}

func (r *handlerRegistry) add(kind EventKind, fn func(DispatchEvent)) CallbackHandle {
	r.nextID++
	id := r.nextID
	r.byKind[kind] = append(r.byKind[kind], dispatchHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: r, kind: kind}
}

func (r *handlerRegistry) fire(ev DispatchEvent) {
	if int(ev.Kind) >= len(r.byKind) {
		return
	}
	for _, h := range r.byKind[ev.Kind] {
		h.fn(ev)
	}
}
