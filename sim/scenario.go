package sim

import (
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"time"

	"github.com/milk9111/weaponhandling/combat"
	"github.com/milk9111/weaponhandling/ecs"
	"github.com/milk9111/weaponhandling/ecs/component"
	"github.com/milk9111/weaponhandling/prefabs"
)

// Report sums up a scenario run.
type Report struct {
	Name     string
	Elapsed  time.Duration
	Pulls    int
	Fired    int
	Shots    int
	Pellets  int
	Hits     int
	Damage   float64
	Kills    []string
	Equipped []string
}

// Report returns the totals so far.
func (r *Range) Report() Report {
	out := r.report
	out.Elapsed = r.World.Elapsed()
	out.Kills = append([]string(nil), r.report.Kills...)
	out.Equipped = append([]string(nil), r.report.Equipped...)
	return out
}

func (r *Range) tally(evt combat.Event) {
	switch evt.Type {
	case combat.EventShot:
		r.report.Shots++
	case combat.EventPellet:
		r.report.Pellets++
	case combat.EventHit:
		r.report.Hits++
	case combat.EventDamageApplied:
		r.report.Damage += evt.Damage
	case combat.EventDeath:
		r.report.Kills = append(r.report.Kills, r.name(evt.Target))
	}
}

func (r *Range) name(e ecs.Entity) string {
	if n, ok := ecs.Get(r.World, e, component.NameComponent.Kind()); ok {
		return string(n)
	}
	return e.String()
}

// Run plays every step of the scenario in order.
func (r *Range) Run(ctx context.Context) (Report, error) {
	for i, s := range r.Spec.Steps {
		if err := ctx.Err(); err != nil {
			return r.Report(), err
		}
		if err := r.Step(s); err != nil {
			return r.Report(), fmt.Errorf("sim: step %d: %w", i, err)
		}
	}
	return r.Report(), nil
}

// Step plays one scripted action.
func (r *Range) Step(s prefabs.StepSpec) error {
	r.log.Debug().Str("action", s.Action).Dur("for", s.For).Msg("step")
	switch s.Action {
	case prefabs.ActionEquip:
		r.Manager.Equip()
	case prefabs.ActionUnequip:
		r.Manager.Unequip()
	case prefabs.ActionFire:
		times := max(s.Times, 1)
		for range times {
			r.Pull()
		}
	case prefabs.ActionHold:
		r.Hold(s.For)
	case prefabs.ActionWait:
		r.TickFor(s.For)
	case prefabs.ActionMove:
		r.Shooter.MoveTo(s.To.Vec())
		// A zero step carries the held weapon along.
		r.World.Advance(0)
	case prefabs.ActionAim:
		r.Shooter.Camera().AimAt(s.To.Vec())
	default:
		return fmt.Errorf("%w: unknown action %q", prefabs.ErrInvalidSpec, s.Action)
	}
	return nil
}

// Reload applies an edited prefab to the running range. Weapons built from
// a changed weapon file, or using a changed damage script, are
// re-initialized in place. Range files only take effect on the next run.
func (r *Range) Reload(c prefabs.Change) error {
	var errs []error
	reinit := func(p *PlacedWeapon, load func() error) {
		if err := load(); err != nil {
			errs = append(errs, err)
			r.log.Error().Err(err).Str("prefab", p.Prefab).Msg("reload failed")
			return
		}
		r.log.Info().Str("prefab", p.Prefab).Str("weapon", p.Weapon.ID()).Msg("weapon reloaded")
	}

	switch c.Kind {
	case prefabs.AssetWeapon:
		for _, p := range r.placed {
			if baseName(p.Prefab) != c.Name {
				continue
			}
			reinit(p, func() error {
				cfg, _, err := r.lib.LoadWeapon(p.Prefab)
				if err != nil {
					return err
				}
				return p.Weapon.Initialize(cfg)
			})
		}
	case prefabs.AssetScript:
		for _, p := range r.placed {
			cfg := p.Weapon.Config()
			if cfg.DamageScript == "" || baseName(cfg.DamageScript) != c.Name {
				continue
			}
			reinit(p, func() error { return p.Weapon.Initialize(cfg) })
		}
	default:
		r.log.Info().Str("file", c.Name).Msg("range file changed, restart to apply")
	}
	return errors.Join(errs...)
}

func baseName(p string) string {
	return path.Base(filepath.ToSlash(p))
}
