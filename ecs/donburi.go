package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/worldui"
)

// DispatchEventType is the Donburi event type for worldui dispatch events.
var DispatchEventType = events.NewEventType[worldui.DispatchEvent]()

type donburiSink struct {
	world donburi.World
	kinds map[worldui.EventKind]bool
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// published to DispatchEventType and consumed with Subscribe and
// ProcessEvents. When kinds is non-empty only those event kinds are
// published.
func NewDonburiSink(world donburi.World, kinds ...worldui.EventKind) worldui.EventSink {
	s := &donburiSink{world: world}
	if len(kinds) > 0 {
		s.kinds = make(map[worldui.EventKind]bool, len(kinds))
		for _, k := range kinds {
			s.kinds[k] = true
		}
	}
	return s
}

func (s *donburiSink) EmitEvent(event worldui.DispatchEvent) {
	if s.kinds != nil && !s.kinds[event.Kind] {
		return
	}
	DispatchEventType.Publish(s.world, event)
}
