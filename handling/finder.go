package handling

import (
	"cmp"
	"slices"

	"github.com/milk9111/weaponhandling/common"
	"github.com/milk9111/weaponhandling/ecs"
	"github.com/milk9111/weaponhandling/ecs/component"
	"github.com/milk9111/weaponhandling/weapon"
)

// WorldFinder searches weapons registered in an ECS world. Candidates are
// ordered by distance, ties by entity.
type WorldFinder struct {
	World *ecs.World
}

func (f WorldFinder) WeaponsInRadius(center common.Vec3, radius float64, exclude ...ecs.Entity) []*weapon.Weapon {
	type candidate struct {
		e    ecs.Entity
		w    *weapon.Weapon
		dist float64
	}
	var found []candidate
	ecs.ForEach2(f.World, weapon.Component.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, w *weapon.Weapon, t *component.Transform) {
		if w == nil || t == nil || w.Destroyed() || w.Owner() != nil || slices.Contains(exclude, e) {
			return
		}
		d := t.Position.Dist(center)
		if d > radius {
			return
		}
		found = append(found, candidate{e: e, w: w, dist: d})
	})
	slices.SortFunc(found, func(a, b candidate) int {
		if c := cmp.Compare(a.dist, b.dist); c != 0 {
			return c
		}
		return cmp.Compare(a.e, b.e)
	})

	out := make([]*weapon.Weapon, len(found))
	for i, c := range found {
		out[i] = c.w
	}
	return out
}
