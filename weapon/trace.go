package weapon

import (
	"github.com/milk9111/weaponhandling/combat"
	"github.com/milk9111/weaponhandling/common"
	"github.com/milk9111/weaponhandling/ecs"
)

// TraceResolver turns aim into line queries.
type TraceResolver struct {
	collider Collider
}

func NewTraceResolver(collider Collider) *TraceResolver {
	return &TraceResolver{collider: collider}
}

// FromViewpoint traces from the center of view along its look direction.
// offset is added to the endpoint before the query. ok is false when the
// viewport cannot produce a ray; the returned result is then a miss.
func (r *TraceResolver) FromViewpoint(view Viewport, ignore []ecs.Entity, distance float64, offset common.Vec3) (combat.TraceResult, bool) {
	if view == nil {
		return combat.TraceResult{}, false
	}
	w, h := view.Size()
	origin, dir, ok := view.ScreenPointToWorldRay(float64(w)/2, float64(h)/2)
	if !ok {
		return combat.TraceResult{}, false
	}
	dir = dir.SafeNormal()
	if dir.IsZero() {
		return combat.TraceResult{}, false
	}
	end := origin.Add(dir.Scale(distance)).Add(offset)
	return r.trace(origin, end, ignore), true
}

// FromBarrel re-traces from the muzzle toward what the viewpoint trace
// found, continuing distance past it, so geometry in front of the muzzle
// blocks shots the camera could see past.
func (r *TraceResolver) FromBarrel(ignore []ecs.Entity, barrel common.Vec3, viewpoint combat.TraceResult, distance float64) combat.TraceResult {
	target := viewpoint.Target()
	dir := target.Sub(barrel).SafeNormal()
	if dir.IsZero() {
		return combat.Miss(barrel, barrel)
	}
	return r.trace(barrel, target.Add(dir.Scale(distance)), ignore)
}

func (r *TraceResolver) trace(start, end common.Vec3, ignore []ecs.Entity) combat.TraceResult {
	if r == nil || r.collider == nil {
		return combat.Miss(start, end)
	}
	res := r.collider.TraceLine(start, end, ignore)
	res.Origin = start
	res.End = end
	res.Direction = end.Sub(start).SafeNormal()
	if !res.Blocked {
		res.Actor = 0
		res.Point = end
	}
	return res
}
