// Package sim hosts a headless firing range: an ECS world with timers and
// physics, one scripted shooter, targets and weapons loaded from prefabs.
package sim

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"

	"github.com/milk9111/weaponhandling/combat"
	"github.com/milk9111/weaponhandling/common"
	"github.com/milk9111/weaponhandling/ecs"
	"github.com/milk9111/weaponhandling/ecs/component"
	"github.com/milk9111/weaponhandling/handling"
	"github.com/milk9111/weaponhandling/logging"
	"github.com/milk9111/weaponhandling/physics"
	"github.com/milk9111/weaponhandling/prefabs"
	"github.com/milk9111/weaponhandling/timer"
	"github.com/milk9111/weaponhandling/weapon"
)

const DefaultTick = 10 * time.Millisecond

type Options struct {
	Library  prefabs.Library
	Log      zerolog.Logger
	Gravity  float64
	Handling handling.Options
	// Events receives every combat event. Nil uses a private emitter.
	Events *combat.Emitter
}

// Range is one built scenario. It is driven from a single goroutine.
type Range struct {
	Spec    prefabs.RangeSpec
	World   *ecs.World
	Timers  *timer.Scheduler
	Physics *physics.World
	Events  *combat.Emitter
	Effects *EffectLog
	Shooter *Shooter
	Manager *handling.Manager

	lib        prefabs.Library
	log        zerolog.Logger
	tick       time.Duration
	rng        *rand.Rand
	dispatcher *combat.Dispatcher
	targets    []*Target
	placed     []*PlacedWeapon
	onTick     []func()
	holding    bool
	report     Report
}

func Build(spec prefabs.RangeSpec, opts Options) (*Range, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("sim: range %s: %w", spec.Name, err)
	}
	gravity := opts.Gravity
	if gravity == 0 {
		gravity = physics.DefaultGravity
	}
	events := opts.Events
	if events == nil {
		events = &combat.Emitter{}
	}
	tick := spec.Tick
	if tick <= 0 {
		tick = DefaultTick
	}
	log := opts.Log.With().Str("range", spec.Name).Logger()

	r := &Range{
		Spec:    spec,
		World:   ecs.NewWorld(),
		Timers:  timer.NewScheduler(),
		Physics: physics.NewWorld(gravity, logging.Component(log, "physics")),
		Events:  events,
		Effects: NewEffectLog(logging.Component(log, "effects")),
		lib:     opts.Library,
		log:     log,
		tick:    tick,
		rng:     rand.New(rand.NewPCG(spec.Seed, spec.Seed)),
		report:  Report{Name: spec.Name},
	}
	r.dispatcher = combat.NewDispatcher(combat.WorldRegistry{World: r.World}, events, logging.Component(log, "damage"))

	r.World.AddSystem(ecs.SystemFunc(r.triggerSystem))
	r.World.AddSystem(r.Timers)
	r.World.AddSystem(r.Physics)

	for _, s := range spec.Statics {
		min, max := s.Min.Vec(), s.Max.Vec()
		e := r.spawn(s.Name, common.LerpVec(min, max, 0.5))
		r.Physics.AddStatic(e, min, max)
	}
	r.spawnShooter(spec)
	for _, t := range spec.Targets {
		r.spawnTarget(t)
	}
	for _, p := range spec.Weapons {
		if err := r.spawnWeapon(p); err != nil {
			return nil, err
		}
	}

	r.Manager = handling.NewManager(handling.WorldFinder{World: r.World}, r.Effects, logging.Component(log, "handling"), opts.Handling)
	r.Manager.OnEquip(func(w *weapon.Weapon) {
		r.report.Equipped = append(r.report.Equipped, w.Config().Name)
	})
	r.Manager.Initialize(r.Shooter)
	events.Subscribe(r.tally)

	log.Info().
		Int("targets", len(r.targets)).
		Int("weapons", len(r.placed)).
		Dur("tick", tick).
		Msg("range built")
	return r, nil
}

func (r *Range) spawn(name string, at common.Vec3) ecs.Entity {
	e := ecs.CreateEntity(r.World)
	if name != "" {
		_ = ecs.Add(r.World, e, component.NameComponent.Kind(), component.Name(name))
	}
	_ = ecs.Add(r.World, e, component.TransformComponent.Kind(), &component.Transform{Position: at})
	return e
}

func (r *Range) spawnShooter(spec prefabs.RangeSpec) {
	pos := spec.Shooter.Position.Vec()
	e := r.spawn("shooter", pos)
	_ = ecs.Add(r.World, e, component.CharacterTagComponent.Kind(), component.CharacterTag{})
	body := r.Physics.AddBody(e, pos, physics.BodyOptions{
		Size:    spec.Shooter.Size.Vec(),
		Sockets: socketOffsets(spec.Shooter.Sockets),
		Mode:    weapon.CollisionQueryOnly,
	})
	s := &Shooter{entity: e, body: body, eye: spec.Shooter.Eye.Vec()}
	s.controller = &Controller{
		pawn:   e,
		camera: NewCamera(spec.Camera.Width, spec.Camera.Height, s.Eye, spec.Camera.Aim.Vec()),
	}
	r.Shooter = s
}

func (r *Range) spawnTarget(spec prefabs.TargetSpec) {
	pos := spec.Position.Vec()
	e := r.spawn(spec.Name, pos)
	_ = ecs.Add(r.World, e, component.TargetTagComponent.Kind(), component.TargetTag{})
	body := r.Physics.AddBody(e, pos, physics.BodyOptions{Size: spec.Size.Vec(), Mode: weapon.CollisionQueryOnly})
	t := &Target{Name: spec.Name, Entity: e, Health: combat.NewHealth(spec.Health), Body: body}
	t.Health.OnDeath = func(_ *combat.Health, evt combat.DamageEvent) {
		// Dead dummies stop blocking shots.
		body.SetCollision(weapon.CollisionNone)
		r.log.Info().Str("target", t.Name).Stringer("causer", evt.Causer).Msg("target down")
	}
	_ = ecs.Add(r.World, e, combat.DamageableComponent.Kind(), combat.Damageable(t.Health))
	r.targets = append(r.targets, t)
}

func (r *Range) spawnWeapon(p prefabs.PlacedWeaponSpec) error {
	cfg, spec, err := r.lib.LoadWeapon(p.Prefab)
	if err != nil {
		return fmt.Errorf("sim: weapon %s: %w", p.Prefab, err)
	}
	pos := p.Position.Vec()
	e := r.spawn(cfg.Name, pos)
	body := r.Physics.AddBody(e, pos, physics.BodyOptions{
		Size:    spec.Body.Size.Vec(),
		Mass:    spec.Body.Mass,
		Sockets: spec.Body.SocketOffsets(),
		Mode:    weapon.CollisionQueryOnly,
	})
	w := weapon.New(e, weapon.Deps{
		Collider: r.Physics,
		Body:     body,
		Effects:  r.Effects,
		Timers:   r.Timers,
		Damage:   r.dispatcher,
		Rand:     r.rng,
		Scripts:  r.lib,
		Events:   r.Events,
		Log:      logging.Component(r.log, "weapon"),
	})
	if err := w.Initialize(cfg); err != nil {
		return fmt.Errorf("sim: weapon %s: %w", p.Prefab, err)
	}
	if err := ecs.Add(r.World, e, weapon.Component.Kind(), w); err != nil {
		return fmt.Errorf("sim: weapon %s: %w", p.Prefab, err)
	}
	r.placed = append(r.placed, &PlacedWeapon{Prefab: p.Prefab, Weapon: w, Body: body})
	return nil
}

func socketOffsets(in map[string]prefabs.Vec3Spec) map[string]common.Vec3 {
	return prefabs.BodySpec{Sockets: in}.SocketOffsets()
}

// OnTick registers fn to run at the start of every tick, before any system.
func (r *Range) OnTick(fn func()) {
	if fn != nil {
		r.onTick = append(r.onTick, fn)
	}
}

// Tick advances the range by one fixed step.
func (r *Range) Tick() {
	for _, fn := range r.onTick {
		fn()
	}
	r.World.Advance(r.tick)
}

// TickFor ticks until at least d of simulated time has passed.
func (r *Range) TickFor(d time.Duration) {
	end := r.World.Elapsed() + d
	for r.World.Elapsed() < end {
		r.Tick()
	}
}

// Pull squeezes the trigger of the equipped weapon once.
func (r *Range) Pull() bool {
	r.report.Pulls++
	if r.Manager.Attack() {
		r.report.Fired++
		return true
	}
	return false
}

// Hold keeps the trigger down for d, pulling once per tick.
func (r *Range) Hold(d time.Duration) {
	r.holding = true
	defer func() { r.holding = false }()
	r.TickFor(d)
}

func (r *Range) triggerSystem(_ *ecs.World, _ time.Duration) {
	if r.holding {
		r.Pull()
	}
}

func (r *Range) Targets() []*Target {
	return append([]*Target(nil), r.targets...)
}

// Target returns the target called name.
func (r *Range) Target(name string) (*Target, bool) {
	for _, t := range r.targets {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}

func (r *Range) Weapons() []*PlacedWeapon {
	return append([]*PlacedWeapon(nil), r.placed...)
}

// Close destroys every weapon so no timer outlives the range.
func (r *Range) Close() {
	for _, p := range r.placed {
		p.Weapon.Destroy()
	}
}
