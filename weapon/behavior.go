package weapon

import (
	"github.com/milk9111/weaponhandling/combat"
	"github.com/milk9111/weaponhandling/common"
	"github.com/milk9111/weaponhandling/ecs"
)

// Behavior is what one trigger pull does once the trigger allowed it.
type Behavior interface {
	FireSequence(w *Weapon, ignore []ecs.Entity, ctrl Controller)
}

func behaviorFor(k Kind) Behavior {
	if k == KindProjectile {
		return Projectile{}
	}
	return RayCast{}
}

// RayCast resolves every pellet as an instant trace.
type RayCast struct{}

func (RayCast) FireSequence(w *Weapon, ignore []ecs.Entity, ctrl Controller) {
	w.playFireEffects()

	offsets := w.pattern.Offsets(w.deps.Rand)
	shooter := pawnOf(ctrl)
	w.emit(combat.Event{Type: combat.EventShot, Shooter: shooter, Causer: w.ownerEntity(), Pellet: len(offsets)})

	for i, offset := range offsets {
		hit, barrel, ok := w.resolve(ignore, ctrl, offset)
		if ok {
			w.drawTrail(barrel, hit)
		}
		amount := w.damageFor(hit, i, len(offsets))
		if w.deps.Damage != nil {
			w.deps.Damage.ApplyDamage(hit, amount, ctrl, w.ownerEntity(), w.cfg.Assets.ImpactParticle)
		}
		w.emit(combat.Event{
			Type:    combat.EventPellet,
			Shooter: shooter,
			Causer:  w.ownerEntity(),
			Target:  hit.Actor,
			Damage:  amount,
			Pellet:  i,
			Point:   hit.Target(),
		})
	}

	w.playFireSound()
}

// Projectile has no flight model yet; it only plays the fire effects.
type Projectile struct{}

func (Projectile) FireSequence(w *Weapon, _ []ecs.Entity, ctrl Controller) {
	w.playFireEffects()
	w.emit(combat.Event{Type: combat.EventShot, Shooter: pawnOf(ctrl), Causer: w.ownerEntity()})
	w.playFireSound()
}

func pawnOf(ctrl Controller) ecs.Entity {
	if ctrl == nil {
		return 0
	}
	return ctrl.Pawn()
}

// resolve traces one pellet. barrel is the trail origin and is only set
// when ok is true.
func (w *Weapon) resolve(ignore []ecs.Entity, ctrl Controller, offset common.Vec3) (hit combat.TraceResult, barrel common.Vec3, ok bool) {
	var view Viewport
	if ctrl != nil {
		view = ctrl.Viewport()
	}
	vp, ok := w.traces.FromViewpoint(view, ignore, w.cfg.Range, offset)
	if !ok {
		w.log.Warn().Msg("no viewport to aim through, shot missed")
		return combat.TraceResult{}, common.Vec3{}, false
	}

	barrel, hasBarrel := w.barrel()
	if !w.cfg.TraceFromBarrel {
		if !hasBarrel {
			barrel = vp.Origin
		}
		return vp, barrel, true
	}
	if !hasBarrel {
		w.log.Warn().Str("socket", w.cfg.BarrelSocket).Msg("missing barrel socket, shot missed")
		return combat.Miss(vp.Origin, vp.End), common.Vec3{}, false
	}
	return w.traces.FromBarrel(ignore, barrel, vp, w.cfg.Range), barrel, true
}

func (w *Weapon) barrel() (common.Vec3, bool) {
	if w.deps.Body == nil {
		return common.Vec3{}, false
	}
	return w.deps.Body.Socket(w.cfg.BarrelSocket)
}

func (w *Weapon) damageFor(hit combat.TraceResult, pellet, pellets int) float64 {
	if w.script == nil {
		return w.cfg.Damage
	}
	amount, err := w.script.Apply(ScriptInput{
		Damage:   w.cfg.Damage,
		Distance: hit.Distance(),
		Range:    w.cfg.Range,
		Pellet:   pellet,
		Pellets:  pellets,
		Blocked:  hit.Blocked,
	})
	if err != nil {
		w.log.Warn().Err(err).Msg("damage script failed, using base damage")
		return w.cfg.Damage
	}
	return amount
}

func (w *Weapon) playFireEffects() {
	fx := w.deps.Effects
	if fx == nil {
		w.log.Warn().Msg("no effects player")
		return
	}
	if a := w.cfg.Assets.MuzzleFlash; a != "" {
		fx.SpawnParticleAttached(a, w.entity, w.cfg.BarrelSocket)
	} else {
		w.log.Warn().Msg("muzzle flash asset not set")
	}
	if a := w.cfg.Assets.FireMontage; a != "" && w.owner != nil {
		fx.PlayMontage(a, w.owner.Entity())
	}
}

func (w *Weapon) drawTrail(barrel common.Vec3, hit combat.TraceResult) {
	if w.deps.Effects == nil {
		return
	}
	if w.cfg.Assets.BeamTrail == "" {
		w.log.Warn().Msg("beam trail asset not set")
		return
	}
	w.deps.Effects.SpawnParticleAt(w.cfg.Assets.BeamTrail, barrel, hit.Target())
}

func (w *Weapon) playFireSound() {
	if w.deps.Effects == nil {
		return
	}
	if w.cfg.Assets.FireSound == "" {
		w.log.Warn().Msg("fire sound asset not set")
		return
	}
	at := common.Vec3{}
	switch {
	case w.owner != nil:
		at = w.owner.Position()
	case w.deps.Body != nil:
		at = w.deps.Body.Position()
	}
	w.deps.Effects.PlaySound(w.cfg.Assets.FireSound, at)
}
