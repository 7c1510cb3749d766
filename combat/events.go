package combat

import (
	"github.com/milk9111/weaponhandling/common"
	"github.com/milk9111/weaponhandling/ecs"
)

// EventType defines the kind of combat event.
type EventType string

const (
	EventShot          EventType = "shot"
	EventPellet        EventType = "pellet"
	EventHit           EventType = "hit"
	EventDamageApplied EventType = "damage_applied"
	EventDeath         EventType = "death"
)

// Event is emitted while a shot is resolved.
type Event struct {
	Type     EventType
	WeaponID string
	Causer   ecs.Entity
	Shooter  ecs.Entity
	Target   ecs.Entity
	Damage   float64
	Pellet   int
	Point    common.Vec3
}

// Handler handles combat events.
type Handler func(evt Event)

// Emitter fans combat events out to its handlers in registration order.
type Emitter struct {
	Handlers []Handler
}

// Subscribe appends h.
func (e *Emitter) Subscribe(h Handler) {
	if e == nil || h == nil {
		return
	}
	e.Handlers = append(e.Handlers, h)
}

// Emit sends a combat event to all handlers.
func (e *Emitter) Emit(evt Event) {
	if e == nil || len(e.Handlers) == 0 {
		return
	}
	for _, h := range e.Handlers {
		if h != nil {
			h(evt)
		}
	}
}
