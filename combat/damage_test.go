package combat

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/milk9111/weaponhandling/common"
	"github.com/milk9111/weaponhandling/ecs"
)

type pawn ecs.Entity

func (p pawn) Pawn() ecs.Entity { return ecs.Entity(p) }

type recorder struct {
	got []DamageEvent
}

func (r *recorder) ApplyDamage(evt DamageEvent) {
	r.got = append(r.got, evt)
}

func TestDispatcherAppliesDamageOnlyToBlockingDamageableHits(t *testing.T) {
	w := ecs.NewWorld()
	shooter := ecs.CreateEntity(w)
	gun := ecs.CreateEntity(w)
	capable := ecs.CreateEntity(w)
	wall := ecs.CreateEntity(w)
	target := &recorder{}
	if err := ecs.Add(w, capable, DamageableComponent.Kind(), Damageable(target)); err != nil {
		t.Fatalf("add damageable: %v", err)
	}

	cases := []struct {
		name  string
		hit   TraceResult
		wants int
	}{
		{"blocking_damageable", TraceResult{Blocked: true, Actor: capable, Point: common.V3(1, 0, 0)}, 1},
		{"blocking_without_capability", TraceResult{Blocked: true, Actor: wall}, 0},
		{"blocking_no_actor", TraceResult{Blocked: true}, 0},
		{"miss_with_actor", TraceResult{Blocked: false, Actor: capable}, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			target.got = nil
			var events Emitter
			var types []EventType
			events.Subscribe(func(evt Event) { types = append(types, evt.Type) })

			d := NewDispatcher(WorldRegistry{World: w}, &events, zerolog.Nop())
			d.ApplyDamage(c.hit, 25, pawn(shooter), gun, "impact")

			if len(target.got) != c.wants {
				t.Fatalf("applied %d times, want %d", len(target.got), c.wants)
			}
			if c.wants == 0 {
				for _, typ := range types {
					if typ == EventDamageApplied {
						t.Fatalf("damage event emitted for %s", c.name)
					}
				}
				return
			}
			evt := target.got[0]
			if evt.Amount != 25 || evt.Causer != gun || evt.Instigator.Pawn() != shooter || evt.Impact != "impact" {
				t.Fatalf("unexpected damage event %+v", evt)
			}
			if evt.Hit.Point != c.hit.Point {
				t.Fatalf("hit info not forwarded")
			}
		})
	}
}

func TestDispatcherEmitsDeathOnce(t *testing.T) {
	w := ecs.NewWorld()
	victim := ecs.CreateEntity(w)
	h := NewHealth(30)
	_ = ecs.Add(w, victim, DamageableComponent.Kind(), Damageable(h))

	deaths := 0
	var events Emitter
	events.Subscribe(func(evt Event) {
		if evt.Type == EventDeath {
			deaths++
		}
	})
	d := NewDispatcher(WorldRegistry{World: w}, &events, zerolog.Nop())
	hit := TraceResult{Blocked: true, Actor: victim}
	for i := 0; i < 5; i++ {
		d.ApplyDamage(hit, 10, nil, 0, "")
	}
	if h.IsAlive() || h.Current != 0 {
		t.Fatalf("health = %+v", h)
	}
	if deaths != 1 {
		t.Fatalf("deaths = %d, want 1", deaths)
	}
}

func TestWorldRegistryIgnoresDeadEntities(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, DamageableComponent.Kind(), Damageable(&recorder{}))
	ecs.DestroyEntity(w, e)
	if _, ok := (WorldRegistry{World: w}).Damageable(e); ok {
		t.Fatalf("destroyed entity resolved as damageable")
	}
}

func TestTraceTarget(t *testing.T) {
	miss := Miss(common.V3(0, 0, 0), common.V3(0, 0, 10))
	if miss.Target() != common.V3(0, 0, 10) || miss.Direction != common.V3(0, 0, 1) {
		t.Fatalf("miss = %+v", miss)
	}
	hit := TraceResult{Blocked: true, Origin: common.V3(0, 0, 0), Point: common.V3(0, 0, 4), End: common.V3(0, 0, 10)}
	if hit.Target() != hit.Point || hit.Distance() != 4 {
		t.Fatalf("hit target = %v distance = %v", hit.Target(), hit.Distance())
	}
}
