package ecs

import (
	"github.com/phanxgames/gesture"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GestureEventType carries every gesture event (start, move and end).
var GestureEventType = events.NewEventType[gesture.Event]()

// MoveEventType carries move events only, for systems that apply deltas.
var MoveEventType = events.NewEventType[gesture.MoveEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Events are queued and delivered by ProcessEvents or events.ProcessAllEvents.
func NewDonburiStore(world donburi.World) gesture.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event gesture.Event) {
	GestureEventType.Publish(s.world, event)
	if mv, ok := event.(gesture.MoveEvent); ok {
		MoveEventType.Publish(s.world, mv)
	}
}
