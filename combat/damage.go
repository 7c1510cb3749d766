package combat

import (
	"github.com/rs/zerolog"

	"github.com/milk9111/weaponhandling/ecs"
	"github.com/milk9111/weaponhandling/ecs/component"
)

// Instigator is whoever is responsible for damage, usually the controller
// of the character holding the weapon.
type Instigator interface {
	Pawn() ecs.Entity
}

// DamageEvent carries everything a target learns about a hit.
type DamageEvent struct {
	Amount     float64
	Hit        TraceResult
	Instigator Instigator
	Causer     ecs.Entity
	Impact     string
}

// Damageable is the capability of receiving damage.
type Damageable interface {
	ApplyDamage(evt DamageEvent)
}

var DamageableComponent = component.NewComponent[Damageable]("damageable")

// Registry resolves the damage capability of an actor.
type Registry interface {
	Damageable(e ecs.Entity) (Damageable, bool)
}

// WorldRegistry resolves capabilities from the ECS component store.
type WorldRegistry struct {
	World *ecs.World
}

func (r WorldRegistry) Damageable(e ecs.Entity) (Damageable, bool) {
	if !ecs.IsAlive(r.World, e) {
		return nil, false
	}
	d, ok := ecs.Get(r.World, e, DamageableComponent.Kind())
	return d, ok && d != nil
}

type liveness interface {
	IsAlive() bool
}

// Dispatcher turns blocking traces into damage on capable targets.
type Dispatcher struct {
	registry Registry
	events   *Emitter
	log      zerolog.Logger
}

func NewDispatcher(registry Registry, events *Emitter, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{registry: registry, events: events, log: log}
}

// ApplyDamage applies amount to the actor of hit. Nothing happens when the
// trace did not block, hit no actor, or the actor cannot take damage.
func (d *Dispatcher) ApplyDamage(hit TraceResult, amount float64, instigator Instigator, causer ecs.Entity, impact string) {
	if d == nil || !hit.Blocked || !hit.Actor.Valid() || d.registry == nil {
		return
	}
	var shooter ecs.Entity
	if instigator != nil {
		shooter = instigator.Pawn()
	}
	d.events.Emit(Event{Type: EventHit, Causer: causer, Shooter: shooter, Target: hit.Actor, Point: hit.Point})

	target, ok := d.registry.Damageable(hit.Actor)
	if !ok {
		return
	}
	wasAlive := true
	if l, ok := target.(liveness); ok {
		wasAlive = l.IsAlive()
	}

	target.ApplyDamage(DamageEvent{
		Amount:     amount,
		Hit:        hit,
		Instigator: instigator,
		Causer:     causer,
		Impact:     impact,
	})
	d.log.Debug().
		Stringer("target", hit.Actor).
		Stringer("causer", causer).
		Float64("amount", amount).
		Msg("damage applied")
	d.events.Emit(Event{Type: EventDamageApplied, Causer: causer, Shooter: shooter, Target: hit.Actor, Damage: amount, Point: hit.Point})

	if l, ok := target.(liveness); ok && wasAlive && !l.IsAlive() {
		d.events.Emit(Event{Type: EventDeath, Causer: causer, Shooter: shooter, Target: hit.Actor, Point: hit.Point})
	}
}
