// Package telemetry counts combat events with OpenTelemetry metrics.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/milk9111/weaponhandling/combat"
)

// Instruments turns combat events into counter increments. Without a
// configured meter provider the global no-op meter is used.
type Instruments struct {
	shots   metric.Int64Counter
	pellets metric.Int64Counter
	hits    metric.Int64Counter
	deaths  metric.Int64Counter
	damage  metric.Float64Counter
}

// New builds the instruments from m, or from the global meter when m is nil.
func New(m metric.Meter) (*Instruments, error) {
	if m == nil {
		m = meter()
	}
	var (
		in  Instruments
		err error
	)
	if in.shots, err = m.Int64Counter("weapon.shots", metric.WithDescription("Trigger pulls that fired")); err != nil {
		return nil, fmt.Errorf("creating shots counter: %w", err)
	}
	if in.pellets, err = m.Int64Counter("weapon.pellets", metric.WithDescription("Traces resolved per shot")); err != nil {
		return nil, fmt.Errorf("creating pellets counter: %w", err)
	}
	if in.hits, err = m.Int64Counter("combat.hits", metric.WithDescription("Blocking hits on actors")); err != nil {
		return nil, fmt.Errorf("creating hits counter: %w", err)
	}
	if in.deaths, err = m.Int64Counter("combat.deaths", metric.WithDescription("Targets killed")); err != nil {
		return nil, fmt.Errorf("creating deaths counter: %w", err)
	}
	if in.damage, err = m.Float64Counter("combat.damage", metric.WithDescription("Damage applied")); err != nil {
		return nil, fmt.Errorf("creating damage counter: %w", err)
	}
	return &in, nil
}

// Attach subscribes the instruments to e.
func (in *Instruments) Attach(e *combat.Emitter) {
	e.Subscribe(in.Record)
}

// Record counts evt, tagged with the firing weapon.
func (in *Instruments) Record(evt combat.Event) {
	ctx := context.Background()
	attrs := metric.WithAttributes(attribute.String("weapon", evt.WeaponID))
	switch evt.Type {
	case combat.EventShot:
		in.shots.Add(ctx, 1, attrs)
	case combat.EventPellet:
		in.pellets.Add(ctx, 1, attrs)
	case combat.EventHit:
		in.hits.Add(ctx, 1, attrs)
	case combat.EventDeath:
		in.deaths.Add(ctx, 1, attrs)
	case combat.EventDamageApplied:
		in.damage.Add(ctx, evt.Damage, attrs)
	}
}
