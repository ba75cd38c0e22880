package worldui

import (
	"fmt"
	"os"
)

// debugLog prints a one-line dispatch trace for the current tick to stderr.
func (s *Stage) debugLog(sample CursorSample, hits int) {
	var edge string
	switch {
	case sample.Pressed:
		edge = "pressed"
	case sample.Released:
		edge = "released"
	case sample.Held:
		edge = "held"
	default:
		edge = "up"
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[worldui] uv: (%.3f, %.3f) | button: %s | hits: %d | drags: %d | dispatched: %d\n",
		sample.Coordinate.X, sample.Coordinate.Y, edge, hits, s.drags.len(), s.dispatched)
}
