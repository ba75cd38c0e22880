package worldui

import "fmt"

// Surface bundles the cursor front-end and the stage for one display
// surface and runs them in order once per tick.
type Surface struct {
	cursor   *Cursor
	stage    *Stage
	injector *InjectedPointer

	testRunner *TestRunner
	lastSample CursorSample
	emitted    bool
}

// NewSurface validates cfg and wires a Cursor and Stage together.
// The pointer is wrapped in an InjectedPointer so synthetic input can be
// queued at any time; real input resumes once the queue drains.
func NewSurface(pointer Pointer, viewer Viewer, caster RayCaster, graph Graph, cfg Config) (*Surface, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	injector := NewInjectedPointer(pointer)
	cursor, err := NewCursor(injector, viewer, caster, cfg)
	if err != nil {
		return nil, fmt.Errorf("worldui: cursor: %w", err)
	}
	stage, err := NewStage(graph, cfg)
	if err != nil {
		return nil, fmt.Errorf("worldui: stage: %w", err)
	}
	return &Surface{cursor: cursor, stage: stage, injector: injector}, nil
}

// Cursor returns the surface's front-end.
func (s *Surface) Cursor() *Cursor { return s.cursor }

// Stage returns the surface's stage.
func (s *Surface) Stage() *Stage { return s.stage }

// Injector returns the pointer used to queue synthetic input.
func (s *Surface) Injector() *InjectedPointer { return s.injector }

// LastSample returns the sample forwarded on the most recent Update and
// whether one was forwarded at all.
func (s *Surface) LastSample() (CursorSample, bool) {
	return s.lastSample, s.emitted
}

// SetDebugMode enables or disables per-tick dispatch traces on stderr.
func (s *Surface) SetDebugMode(enabled bool) {
	s.stage.SetDebugMode(enabled)
}

// SetEventSink sets the optional ECS bridge on the stage.
func (s *Surface) SetEventSink(sink EventSink) {
	s.stage.SetEventSink(sink)
}

// Update runs one tick: the test runner (if any) queues input, the cursor
// samples, and the stage consumes the sample when one is emitted.
func (s *Surface) Update() {
	if s.testRunner != nil {
		s.testRunner.step(s.injector)
	}
	s.lastSample, s.emitted = s.cursor.Sample()
	if s.emitted {
		s.stage.Tick(s.lastSample)
	}
}

// Reset drops drag state on both halves without dispatching anything, for
// when the surface is disabled or loses focus.
func (s *Surface) Reset() {
	s.cursor.Reset()
	s.stage.Reset()
}
