package worldui

import "testing"

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "hover", "x": 10, "y": 20},
			{"action": "click", "x": 100, "y": 200},
			{"action": "wait", "frames": 3},
			{"action": "scroll", "x": 5, "y": 5, "dy": -2},
			{"action": "drag", "fromX": 1, "fromY": 2, "toX": 3, "toY": 4, "frames": 6}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(runner.steps))
	}
	if runner.steps[1].Action != "click" || runner.steps[1].X != 100 || runner.steps[1].Y != 200 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].Action != "wait" || runner.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
	if runner.steps[3].DY != -2 {
		t.Error("step 3 mismatch")
	}
	if st := runner.steps[4]; st.FromX != 1 || st.ToY != 4 || st.Frames != 6 {
		t.Error("step 4 mismatch")
	}
}

func TestLoadTestScript_Invalid(t *testing.T) {
	_, err := LoadTestScript([]byte(`not json`))
	if err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoadTestScript_Empty(t *testing.T) {
	_, err := LoadTestScript([]byte(`{"steps": []}`))
	if err == nil {
		t.Error("expected error for empty steps")
	}
}

func TestLoadTestScript_UnknownAction(t *testing.T) {
	_, err := LoadTestScript([]byte(`{"steps": [{"action": "screenshot"}]}`))
	if err == nil {
		t.Error("expected error for unknown action")
	}
}

func TestRunnerStep_Click(t *testing.T) {
	p := NewInjectedPointer(nil)
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "click", "x": 50, "y": 50}]}`))
	if err != nil {
		t.Fatal(err)
	}

	// First step call: click queues press+release (2 events).
	runner.step(p)
	if p.Pending() != 2 {
		t.Fatalf("expected 2 queued events, got %d", p.Pending())
	}
	// Not done while injections are pending.
	if runner.Done() {
		t.Error("runner should not be done while inject queue has events")
	}

	// Steps are held back until the queue drains.
	runner.step(p)
	if p.Pending() != 2 {
		t.Fatalf("runner advanced with pending input: %d queued", p.Pending())
	}

	p.Poll()
	p.Poll()

	runner.step(p)
	if !runner.Done() {
		t.Error("runner should be done after all steps executed and queue drained")
	}
}

func TestRunnerStep_Wait(t *testing.T) {
	p := NewInjectedPointer(nil)
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "hover", "x": 1, "y": 1}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	// The wait step consumes three ticks, then the hover is queued.
	for i := 0; i < 3; i++ {
		runner.step(p)
		if p.Pending() != 0 {
			t.Fatalf("tick %d: hover queued during wait", i)
		}
	}
	runner.step(p)
	if p.Pending() != 1 {
		t.Fatalf("expected hover after wait, got %d queued", p.Pending())
	}
}

func TestSurface_TestRunnerDrivesInput(t *testing.T) {
	g := &fakeGraph{}
	btn := newElem("button", EventPointerClick)
	g.setHits(btn)

	cfg := DefaultConfig()
	cfg.OwningSurface = testSurface
	cfg.LogicalSize = Vec2{800, 600}
	surface, err := NewSurface(nil, flatViewer{}, &stripCaster{}, g, cfg)
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}

	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "click", "x": 50, "y": 50}]}`))
	if err != nil {
		t.Fatal(err)
	}
	surface.SetTestRunner(runner)

	for i := 0; i < 4 && !runner.Done(); i++ {
		surface.Update()
	}
	if !runner.Done() {
		t.Fatal("runner did not finish")
	}
	assertTrace(t, g,
		"button:begin-drag", "button:pointer-down",
		"button:pointer-up", "button:pointer-click",
	)
}
