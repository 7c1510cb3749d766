package weapon

//go:generate go tool mockgen -destination=./mocks/collaborators_mock.go -package=mocks . Collider,Viewport,Controller,Character,Effects,Body,Timers,DamageDispatcher

import (
	"time"

	"github.com/milk9111/weaponhandling/combat"
	"github.com/milk9111/weaponhandling/common"
	"github.com/milk9111/weaponhandling/ecs"
	"github.com/milk9111/weaponhandling/timer"
)

// Collider answers line queries against world geometry.
type Collider interface {
	TraceLine(start, end common.Vec3, ignore []ecs.Entity) combat.TraceResult
}

// Viewport is the camera a controller aims through.
type Viewport interface {
	Size() (width, height int)
	ScreenPointToWorldRay(x, y float64) (origin, dir common.Vec3, ok bool)
}

// Controller issues attacks and is credited for the damage they cause.
type Controller interface {
	combat.Instigator
	Viewport() Viewport
}

// Character is whoever holds a weapon.
type Character interface {
	Entity() ecs.Entity
	Controller() Controller
	Position() common.Vec3
}

// Effects plays fire-and-forget visuals and audio.
type Effects interface {
	SpawnParticleAt(asset string, at, target common.Vec3)
	SpawnParticleAttached(asset string, to ecs.Entity, socket string)
	PlaySound(asset string, at common.Vec3)
	PlayMontage(asset string, on ecs.Entity)
}

// CollisionMode is how a body takes part in the world.
type CollisionMode int

const (
	// CollisionNone removes the body from both queries and simulation.
	CollisionNone CollisionMode = iota
	// CollisionQueryOnly lets traces hit the body but nothing pushes it.
	CollisionQueryOnly
	// CollisionPhysics makes the body collide with world geometry.
	CollisionPhysics
)

func (m CollisionMode) String() string {
	switch m {
	case CollisionNone:
		return "none"
	case CollisionQueryOnly:
		return "query_only"
	case CollisionPhysics:
		return "physics"
	}
	return "unknown"
}

// Body is the weapon's presence in the world.
type Body interface {
	Position() common.Vec3
	SetPosition(p common.Vec3)
	// Socket returns the world position of a named attachment point.
	Socket(name string) (common.Vec3, bool)
	AttachTo(parent ecs.Entity, socket string)
	// Detach leaves the body at its current world position.
	Detach()
	SetCollision(mode CollisionMode)
	SetSimulatePhysics(on bool)
}

// Timers arms and cancels one-shot callbacks.
type Timers interface {
	After(d time.Duration, fn func()) timer.Handle
	Cancel(h timer.Handle) bool
}

// DamageDispatcher delivers damage for a resolved trace.
type DamageDispatcher interface {
	ApplyDamage(hit combat.TraceResult, amount float64, instigator combat.Instigator, causer ecs.Entity, impact string)
}

// Rand is the uniform source spread offsets are drawn from. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
}

// ScriptLoader returns the source of a named damage script.
type ScriptLoader interface {
	LoadScript(name string) ([]byte, error)
}
