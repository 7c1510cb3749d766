package ecs

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/milk9111/weaponhandling/ecs/component"
)

type counter struct{ n int }

var counterComponent = component.NewComponent[*counter]("counter")
var labelComponent = component.NewComponent[string]("label")

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("second DestroyEntity should return false")
				}
				if len(Entities(w)) != c.create-1 {
					t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(Entities(w)))
				}
			}
		})
	}
}

func TestRecycledSlotDoesNotSeeStaleComponents(t *testing.T) {
	w := NewWorld()
	old := CreateEntity(w)
	if err := Add(w, old, labelComponent.Kind(), "old"); err != nil {
		t.Fatalf("add: %v", err)
	}
	DestroyEntity(w, old)

	fresh := CreateEntity(w)
	if fresh.id() != old.id() {
		t.Fatalf("expected slot reuse, got %v and %v", old, fresh)
	}
	if fresh == old {
		t.Fatalf("recycled handle must differ by generation")
	}
	if Has(w, fresh, labelComponent.Kind()) {
		t.Fatalf("fresh entity inherited a component")
	}
	if err := Add(w, old, labelComponent.Kind(), "again"); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func TestComponentAccess(t *testing.T) {
	w := NewWorld()
	a := CreateEntity(w)
	b := CreateEntity(w)
	_ = Add(w, a, counterComponent.Kind(), &counter{n: 1})
	_ = Add(w, b, counterComponent.Kind(), &counter{n: 2})
	_ = Add(w, b, labelComponent.Kind(), "b")

	got, ok := Get(w, a, counterComponent.Kind())
	if !ok || got.n != 1 {
		t.Fatalf("Get(a) = %v, %v", got, ok)
	}
	if Count(w, counterComponent.Kind()) != 2 {
		t.Fatalf("expected two counters")
	}

	visited := 0
	ForEach2(w, counterComponent.Kind(), labelComponent.Kind(), func(e Entity, c *counter, l string) {
		visited++
		if e != b || l != "b" {
			t.Fatalf("unexpected visit %v %q", e, l)
		}
	})
	if visited != 1 {
		t.Fatalf("ForEach2 visited %d entities", visited)
	}

	ForEach(w, counterComponent.Kind(), func(e Entity, c *counter) {
		Remove(w, e, counterComponent.Kind())
	})
	if Count(w, counterComponent.Kind()) != 0 {
		t.Fatalf("removal during iteration left entries behind")
	}
}

func TestAdvanceRunsSystemsInOrder(t *testing.T) {
	w := NewWorld()
	var order []string
	w.AddSystem(SystemFunc(func(_ *World, dt time.Duration) {
		order = append(order, "first:"+dt.String())
	}))
	w.AddSystem(SystemFunc(func(_ *World, _ time.Duration) {
		order = append(order, "second")
	}))
	w.AddSystem(nil)

	w.Advance(16 * time.Millisecond)
	w.Advance(-time.Second)

	want := []string{"first:16ms", "second", "first:0s", "second"}
	if len(order) != len(want) {
		t.Fatalf("got %v", order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
	if w.Elapsed() != 16*time.Millisecond {
		t.Fatalf("Elapsed = %v", w.Elapsed())
	}
}

func TestIntersectEntitiesUsesSmallerSet(t *testing.T) {
	w := NewWorld()
	var both []Entity
	for i := 0; i < 6; i++ {
		e := CreateEntity(w)
		if err := Add(w, e, counterComponent.Kind(), &counter{}); err != nil {
			t.Fatalf("add counter: %v", err)
		}
		if i%3 == 0 {
			if err := Add(w, e, labelComponent.Kind(), "x"); err != nil {
				t.Fatalf("add label: %v", err)
			}
			both = append(both, e)
		}
	}

	got := IntersectEntities(w.store(counterComponent.Kind().ID(), false), w.store(labelComponent.Kind().ID(), false))
	if len(got) != len(both) {
		t.Fatalf("got %d entities, want %d", len(got), len(both))
	}
	for i := range both {
		if got[i] != both[i] {
			t.Fatalf("entity %d = %v, want %v", i, got[i], both[i])
		}
	}
	if IntersectEntities(nil, w.store(labelComponent.Kind().ID(), false)) != nil {
		t.Fatal("nil set should give no entities")
	}
}

func TestComponentKindNames(t *testing.T) {
	if got := labelComponent.Kind().Name(); got != "label" {
		t.Fatalf("Name = %q", got)
	}
	unnamed := component.NewComponentKind[int]("")
	if got := unnamed.Name(); got != "component#"+strconv.FormatUint(uint64(unnamed.ID()), 10) {
		t.Fatalf("fallback Name = %q", got)
	}
}
