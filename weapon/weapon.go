// Package weapon implements a hit-scan weapon: trigger gating, pellet
// patterns, dual-stage traces, and the drop-to-world fallbacks.
package weapon

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/milk9111/weaponhandling/combat"
	"github.com/milk9111/weaponhandling/common"
	"github.com/milk9111/weaponhandling/ecs"
	"github.com/milk9111/weaponhandling/ecs/component"
	"github.com/milk9111/weaponhandling/timer"
)

var (
	ErrDestroyed      = errors.New("weapon: destroyed")
	ErrNotInitialized = errors.New("weapon: not initialized")
)

var Component = component.NewComponent[*Weapon]("weapon")

// Deps are the collaborators a weapon talks to. Nil collaborators degrade
// to logged no-ops.
type Deps struct {
	Collider Collider
	Body     Body
	Effects  Effects
	Timers   Timers
	Damage   DamageDispatcher
	Rand     Rand
	Scripts  ScriptLoader
	Events   *combat.Emitter
	Log      zerolog.Logger
}

type Weapon struct {
	id     string
	entity ecs.Entity
	deps   Deps
	log    zerolog.Logger

	cfg      Config
	trigger  *Trigger
	pattern  Pattern
	behavior Behavior
	traces   *TraceResolver
	script   *DamageScript

	owner        Character
	ignore       []ecs.Entity
	dropTimer    timer.Handle
	forcePhysics bool
	initialized  bool
	destroyed    bool
}

// New creates an uninitialized weapon for entity.
func New(entity ecs.Entity, deps Deps) *Weapon {
	id := uuid.NewString()
	if deps.Rand == nil {
		deps.Rand = globalRand{}
	}
	return &Weapon{
		id:     id,
		entity: entity,
		deps:   deps,
		log:    deps.Log.With().Str("weapon", id).Stringer("entity", entity).Logger(),
		traces: NewTraceResolver(deps.Collider),
	}
}

// Initialize validates cfg and (re)builds the firing machinery. Calling it
// again swaps the tuning in place and resets the trigger.
func (w *Weapon) Initialize(cfg Config) error {
	if w.destroyed {
		return ErrDestroyed
	}
	if cfg.BarrelSocket == "" {
		cfg.BarrelSocket = DefaultBarrelSocket
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	var script *DamageScript
	if cfg.DamageScript != "" {
		if w.deps.Scripts == nil {
			return fmt.Errorf("weapon: damage script %s: no script loader", cfg.DamageScript)
		}
		src, err := w.deps.Scripts.LoadScript(cfg.DamageScript)
		if err != nil {
			return fmt.Errorf("weapon: load damage script %s: %w", cfg.DamageScript, err)
		}
		if script, err = CompileDamageScript(cfg.DamageScript, src); err != nil {
			return err
		}
	}

	w.trigger.Stop()
	w.cfg = cfg
	w.trigger = NewTrigger(cfg, w.deps.Timers)
	w.pattern = NewPattern(cfg)
	w.behavior = behaviorFor(cfg.Kind)
	w.script = script
	w.initialized = true

	w.log.Debug().
		Str("name", cfg.Name).
		Stringer("kind", cfg.Kind).
		Stringer("mode", cfg.Mode).
		Stringer("pattern", cfg.Pattern).
		Msg("weapon initialized")
	return nil
}

func (w *Weapon) ID() string { return w.id }
func (w *Weapon) Entity() ecs.Entity { return w.entity }
func (w *Weapon) Config() Config { return w.cfg }
func (w *Weapon) Owner() Character { return w.owner }
func (w *Weapon) Trigger() *Trigger { return w.trigger }
func (w *Weapon) Body() Body { return w.deps.Body }
func (w *Weapon) Destroyed() bool { return w.destroyed }
func (w *Weapon) Initialized() bool { return w.initialized }
func (w *Weapon) PhysicsForced() bool { return w.forcePhysics }
func (w *Weapon) DropTimer() timer.Handle { return w.dropTimer }

// IgnoredActors returns a copy of the self-collision exclusion list.
func (w *Weapon) IgnoredActors() []ecs.Entity {
	return append([]ecs.Entity(nil), w.ignore...)
}

// Attack asks the trigger for a shot and fires if it allows one.
func (w *Weapon) Attack(ctrl Controller) bool {
	if w.destroyed {
		w.log.Warn().Msg("attack on destroyed weapon")
		return false
	}
	if !w.initialized {
		w.log.Warn().Err(ErrNotInitialized).Msg("attack ignored")
		return false
	}
	return w.trigger.Pull(func() {
		w.FireSequence(w.ignore, ctrl)
	})
}

// FireSequence fires one trigger pull without consulting the trigger.
func (w *Weapon) FireSequence(ignore []ecs.Entity, ctrl Controller) {
	if w.destroyed || !w.initialized {
		return
	}
	w.behavior.FireSequence(w, append([]ecs.Entity(nil), ignore...), ctrl)
}

// SetOwner assigns the character credited with this weapon's damage. A
// pending drop settle is canceled so it cannot override the new holder.
func (w *Weapon) SetOwner(c Character) {
	w.owner = c
	if c != nil {
		w.cancelDropTimer()
		if w.deps.Body != nil {
			w.deps.Body.SetSimulatePhysics(false)
		}
	}
}

// AddIgnoredActor appends e to the exclusion list. Duplicates are kept.
func (w *Weapon) AddIgnoredActor(e ecs.Entity) {
	if !e.Valid() {
		return
	}
	w.ignore = append(w.ignore, e)
}

func (w *Weapon) AddIgnoredActors(es ...ecs.Entity) {
	for _, e := range es {
		w.AddIgnoredActor(e)
	}
}

// ReleaseToWorld drops the weapon where it is. It either simulates physics
// for the configured window or snaps to the ground below, and falls back to
// physics for good when there is no ground within the probe distance.
func (w *Weapon) ReleaseToWorld() {
	if w.destroyed {
		return
	}
	w.owner = nil
	body := w.deps.Body
	if body == nil {
		w.log.Warn().Msg("release without a body")
		return
	}
	body.Detach()
	w.fall(w.cfg.DropWithPhysics)
}

func (w *Weapon) fall(physics bool) {
	body := w.deps.Body
	if physics || w.forcePhysics {
		body.SetCollision(CollisionPhysics)
		body.SetSimulatePhysics(true)
		w.cancelDropTimer()
		if w.deps.Timers == nil {
			return
		}
		w.dropTimer = w.deps.Timers.After(w.physicsWindow(), func() {
			w.dropTimer = 0
			body.SetSimulatePhysics(false)
			body.SetCollision(CollisionQueryOnly)
		})
		return
	}

	start := body.Position()
	end := start.Sub(common.V3(0, w.groundProbe(), 0))
	var hit combat.TraceResult
	if w.deps.Collider != nil {
		hit = w.deps.Collider.TraceLine(start, end, []ecs.Entity{w.entity})
	}
	if hit.Blocked {
		body.SetSimulatePhysics(false)
		body.SetPosition(hit.Point)
		body.SetCollision(CollisionQueryOnly)
		return
	}

	w.log.Warn().
		Float64("probe", w.groundProbe()).
		Msg("no ground below dropped weapon, simulating physics instead")
	w.forcePhysics = true
	w.fall(true)
}

func (w *Weapon) physicsWindow() time.Duration {
	if w.cfg.PhysicsWindow > 0 {
		return w.cfg.PhysicsWindow
	}
	return DefaultPhysicsWindow
}

func (w *Weapon) groundProbe() float64 {
	if w.cfg.GroundProbe > 0 {
		return w.cfg.GroundProbe
	}
	return DefaultGroundProbe
}

func (w *Weapon) cancelDropTimer() {
	if w.dropTimer != 0 && w.deps.Timers != nil {
		w.deps.Timers.Cancel(w.dropTimer)
	}
	w.dropTimer = 0
}

// Destroy cancels every armed timer. The weapon ignores all calls after.
func (w *Weapon) Destroy() {
	if w.destroyed {
		return
	}
	w.destroyed = true
	w.trigger.Stop()
	w.cancelDropTimer()
	w.owner = nil
	w.log.Debug().Msg("weapon destroyed")
}

func (w *Weapon) ownerEntity() ecs.Entity {
	if w.owner == nil {
		return 0
	}
	return w.owner.Entity()
}

func (w *Weapon) emit(evt combat.Event) {
	evt.WeaponID = w.id
	w.deps.Events.Emit(evt)
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
