package combat

import (
	"github.com/milk9111/weaponhandling/common"
	"github.com/milk9111/weaponhandling/ecs"
)

// TraceResult is the outcome of one line query against the world.
type TraceResult struct {
	Origin    common.Vec3
	Direction common.Vec3
	End       common.Vec3
	Actor     ecs.Entity
	Point     common.Vec3
	Normal    common.Vec3
	Blocked   bool
}

// Miss builds a non-blocking result for the segment origin..end.
func Miss(origin, end common.Vec3) TraceResult {
	return TraceResult{
		Origin:    origin,
		Direction: end.Sub(origin).SafeNormal(),
		End:       end,
		Point:     end,
	}
}

// Target is the point a follow-up shot should aim at: the impact point on a
// hit and the trace end otherwise.
func (r TraceResult) Target() common.Vec3 {
	if r.Blocked {
		return r.Point
	}
	return r.End
}

// Distance is how far the trace travelled before stopping.
func (r TraceResult) Distance() float64 {
	return r.Origin.Dist(r.Target())
}
