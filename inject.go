package worldui

// InjectedPointer is a Pointer that replays queued synthetic input, one
// event per tick. When the queue is empty it falls back to the wrapped
// Pointer, or holds the last injected position and button level if there is
// none. Screen coordinates are used, identical to real mouse input.
type InjectedPointer struct {
	fallback Pointer
	queue    []PointerState
	last     PointerState
}

// NewInjectedPointer wraps fallback, which may be nil.
func NewInjectedPointer(fallback Pointer) *InjectedPointer {
	return &InjectedPointer{fallback: fallback}
}

// Pending returns the number of queued events not yet consumed.
func (p *InjectedPointer) Pending() int {
	return len(p.queue)
}

// Poll implements Pointer. Injected events take priority over the fallback.
func (p *InjectedPointer) Poll() PointerState {
	if len(p.queue) == 0 {
		if p.fallback != nil {
			return p.fallback.Poll()
		}
		st := p.last
		st.Scroll = Vec2{}
		return st
	}
	st := p.queue[0]
	copy(p.queue, p.queue[1:])
	p.queue = p.queue[:len(p.queue)-1]
	p.last = st
	return st
}

// InjectPress queues a press at the given screen coordinates.
func (p *InjectedPointer) InjectPress(x, y float32) {
	p.queue = append(p.queue, PointerState{Position: Vec2{x, y}, Held: true})
}

// InjectMove queues a move with the button held down. Use this between
// InjectPress and InjectRelease to simulate a drag.
func (p *InjectedPointer) InjectMove(x, y float32) {
	p.queue = append(p.queue, PointerState{Position: Vec2{x, y}, Held: true})
}

// InjectHover queues a move with the button up.
func (p *InjectedPointer) InjectHover(x, y float32) {
	p.queue = append(p.queue, PointerState{Position: Vec2{x, y}})
}

// InjectRelease queues a release at the given screen coordinates.
func (p *InjectedPointer) InjectRelease(x, y float32) {
	p.queue = append(p.queue, PointerState{Position: Vec2{x, y}})
}

// InjectScroll queues one tick of scroll input at the given screen
// coordinates with the button up.
func (p *InjectedPointer) InjectScroll(x, y, dx, dy float32) {
	p.queue = append(p.queue, PointerState{Position: Vec2{x, y}, Scroll: Vec2{dx, dy}})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same screen coordinates. Consumes two ticks.
func (p *InjectedPointer) InjectClick(x, y float32) {
	p.InjectPress(x, y)
	p.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate ticks, and
// release at (toX, toY). The total sequence consumes `frames` ticks.
// Minimum frames is 2 (press + release).
func (p *InjectedPointer) InjectDrag(fromX, fromY, toX, toY float32, frames int) {
	if frames < 2 {
		frames = 2
	}
	p.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float32(i) / float32(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		p.InjectMove(x, y)
	}
	p.InjectRelease(toX, toY)
}
