package physics

import (
	"math"
	"slices"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/weaponhandling/combat"
	"github.com/milk9111/weaponhandling/common"
	"github.com/milk9111/weaponhandling/ecs"
)

const planarEpsilon = 1e-6

var _ interface {
	TraceLine(start, end common.Vec3, ignore []ecs.Entity) combat.TraceResult
} = (*World)(nil)

type traceHit struct {
	col    *collider
	alpha  float64
	normal common.Vec3
}

// TraceLine returns the first shape along start..end that is not owned by
// an ignored entity. A shape blocks when the segment crosses its X/Y
// footprint and its depth span over the same stretch.
func (pw *World) TraceLine(start, end common.Vec3, ignore []ecs.Entity) combat.TraceResult {
	res := combat.Miss(start, end)
	if pw == nil {
		return res
	}
	a := cp.Vector{X: start.X, Y: start.Y}
	b := cp.Vector{X: end.X, Y: end.Y}
	best := traceHit{alpha: math.Inf(1)}

	consider := func(shape *cp.Shape, enter, exit float64, planeNormal common.Vec3) {
		col, ok := shape.UserData.(*collider)
		if !ok || shape.Sensor() || slices.Contains(ignore, col.entity) {
			return
		}
		zLo, zHi := col.span()
		d0, d1, ok := depthWindow(start.Z, end.Z, zLo, zHi)
		if !ok {
			return
		}
		lo, hi := math.Max(enter, d0), math.Min(exit, d1)
		if lo > hi || lo >= best.alpha {
			return
		}
		normal := planeNormal
		if d0 > enter {
			normal = common.V3(0, 0, -math.Copysign(1, end.Z-start.Z))
		}
		best = traceHit{col: col, alpha: lo, normal: normal}
	}

	planar := a.Distance(b) >= planarEpsilon
	exitOf := func(shape *cp.Shape) float64 {
		var back cp.SegmentQueryInfo
		if planar && shape.SegmentQuery(b, a, 0, &back) {
			return 1 - back.Alpha
		}
		return 1
	}

	// Segment queries skip shapes the segment starts inside, so those are
	// collected with a point query at the origin.
	pw.space.BBQuery(cp.NewBBForCircle(a, planarEpsilon), filterTrace, func(shape *cp.Shape, _ interface{}) {
		if shape.PointQuery(a).Distance <= 0 {
			consider(shape, 0, exitOf(shape), common.Vec3{})
		}
	}, nil)
	if planar {
		pw.space.SegmentQuery(a, b, 0, filterTrace, func(shape *cp.Shape, _, n cp.Vector, alpha float64, _ interface{}) {
			consider(shape, alpha, exitOf(shape), common.V3(n.X, n.Y, 0))
		}, nil)
	}

	if best.col == nil {
		return res
	}
	res.Blocked = true
	res.Actor = best.col.entity
	res.Point = common.LerpVec(start, end, best.alpha)
	res.Normal = best.normal
	return res
}

// depthWindow returns the parameter range of start..end whose z lies
// within [lo, hi].
func depthWindow(z0, z1, lo, hi float64) (float64, float64, bool) {
	dz := z1 - z0
	if math.Abs(dz) < planarEpsilon {
		return 0, 1, z0 >= lo && z0 <= hi
	}
	t0 := (lo - z0) / dz
	t1 := (hi - z0) / dz
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	t0 = math.Max(t0, 0)
	t1 = math.Min(t1, 1)
	return t0, t1, t0 <= t1
}
