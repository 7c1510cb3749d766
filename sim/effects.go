package sim

import (
	"github.com/rs/zerolog"

	"github.com/milk9111/weaponhandling/common"
	"github.com/milk9111/weaponhandling/ecs"
	"github.com/milk9111/weaponhandling/weapon"
)

type EffectKind string

const (
	EffectParticle EffectKind = "particle"
	EffectAttached EffectKind = "attached"
	EffectSound    EffectKind = "sound"
	EffectMontage  EffectKind = "montage"
)

// Effect is one played visual or sound.
type Effect struct {
	Kind   EffectKind
	Asset  string
	At     common.Vec3
	Target common.Vec3
	Entity ecs.Entity
	Socket string
}

// EffectLog stands in for a renderer and mixer: it logs and keeps every
// effect it is asked to play.
type EffectLog struct {
	Played []Effect
	log    zerolog.Logger
}

var _ weapon.Effects = (*EffectLog)(nil)

func NewEffectLog(log zerolog.Logger) *EffectLog {
	return &EffectLog{log: log}
}

func (l *EffectLog) SpawnParticleAt(asset string, at, target common.Vec3) {
	l.add(Effect{Kind: EffectParticle, Asset: asset, At: at, Target: target})
}

func (l *EffectLog) SpawnParticleAttached(asset string, to ecs.Entity, socket string) {
	l.add(Effect{Kind: EffectAttached, Asset: asset, Entity: to, Socket: socket})
}

func (l *EffectLog) PlaySound(asset string, at common.Vec3) {
	l.add(Effect{Kind: EffectSound, Asset: asset, At: at})
}

func (l *EffectLog) PlayMontage(asset string, on ecs.Entity) {
	l.add(Effect{Kind: EffectMontage, Asset: asset, Entity: on})
}

func (l *EffectLog) add(e Effect) {
	l.Played = append(l.Played, e)
	l.log.Trace().Str("kind", string(e.Kind)).Str("asset", e.Asset).Msg("effect")
}

// Count returns how many effects of kind used asset. An empty asset counts
// every effect of that kind.
func (l *EffectLog) Count(kind EffectKind, asset string) int {
	n := 0
	for _, e := range l.Played {
		if e.Kind == kind && (asset == "" || e.Asset == asset) {
			n++
		}
	}
	return n
}
