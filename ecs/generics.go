package ecs

import (
	"fmt"

	"github.com/milk9111/weaponhandling/ecs/component"
)

func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if w == nil || !w.entities.isAlive(e) {
		return fmt.Errorf("add %s to %v: %w", kind.Name(), e, component.ErrEntityNotAlive)
	}
	w.store(kind.ID(), true).Set(e, value)
	return nil
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil {
		return false
	}
	return w.store(kind.ID(), false).Remove(e)
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil {
		return false
	}
	return w.store(kind.ID(), false).Has(e)
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (T, bool) {
	var zero T
	if w == nil {
		return zero, false
	}
	cast, ok := w.store(kind.ID(), false).Get(e).(T)
	if !ok {
		return zero, false
	}
	return cast, true
}

// ForEach visits every entity holding kind. The entity list is captured
// before the first call, so fn may add or remove components freely.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, T)) {
	if w == nil || fn == nil {
		return
	}
	store := w.store(kind.ID(), false)
	for _, e := range store.Entities() {
		if v, ok := store.Get(e).(T); ok {
			fn(e, v)
		}
	}
}

// ForEach2 visits entities holding both kinds.
func ForEach2[A, B any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], fn func(Entity, A, B)) {
	if w == nil || fn == nil {
		return
	}
	as, bs := w.store(a.ID(), false), w.store(b.ID(), false)
	for _, e := range IntersectEntities(as, bs) {
		av, okA := as.Get(e).(A)
		bv, okB := bs.Get(e).(B)
		if okA && okB {
			fn(e, av, bv)
		}
	}
}

// Count returns how many entities hold kind.
func Count[T any](w *World, kind component.ComponentKind[T]) int {
	if w == nil {
		return 0
	}
	return w.store(kind.ID(), false).Len()
}
