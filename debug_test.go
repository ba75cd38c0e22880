package worldui

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// captureStderr runs fn with os.Stderr redirected and returns what it wrote.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stderr = w

	fn()

	w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestDebugMode_LogsDispatchTrace(t *testing.T) {
	g := &fakeGraph{}
	btn := newElem("button", EventPointerDown)
	g.setHits(btn)
	s := newTestStage(t, g, DragPolicyStickyDirect)
	s.SetDebugMode(true)

	output := captureStderr(t, func() {
		s.Tick(pressed(0.25, 0.5))
	})

	for _, want := range []string{"[worldui]", "uv: (0.250, 0.500)", "button: pressed", "hits: 1", "dispatched: 2"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in stderr, got: %q", want, output)
		}
	}
}

func TestDebugMode_QuietTicks(t *testing.T) {
	g := &fakeGraph{}
	s := newTestStage(t, g, DragPolicyStickyDirect)
	s.SetDebugMode(true)

	output := captureStderr(t, func() {
		s.Tick(at(0.5, 0.5))
	})
	if output != "" {
		t.Errorf("tick without dispatch should not log, got: %q", output)
	}
}

func TestDebugMode_Off(t *testing.T) {
	g := &fakeGraph{}
	g.setHits(newElem("button", EventPointerDown))
	s := newTestStage(t, g, DragPolicyStickyDirect)

	output := captureStderr(t, func() {
		s.Tick(pressed(0.5, 0.5))
	})
	if output != "" {
		t.Errorf("debug off should not log, got: %q", output)
	}
}
