// Package physics backs weapon traces and dropped-weapon motion with a
// Chipmunk space. The space simulates the vertical X/Y plane; Z is carried
// per shape as a depth span that traces must also pass through.
package physics

import (
	"time"

	"github.com/jakecoffman/cp"
	"github.com/rs/zerolog"

	"github.com/milk9111/weaponhandling/common"
	"github.com/milk9111/weaponhandling/ecs"
	"github.com/milk9111/weaponhandling/ecs/component"
	"github.com/milk9111/weaponhandling/weapon"
)

const (
	DefaultGravity = -980.0
	maxSubstep     = time.Second / 120
)

// Filter categories. Traces query with catQuery and only see shapes in
// catTrace; catBody shapes push each other.
const (
	catTrace uint = 1 << iota
	catBody
	catQuery
)

var (
	filterSolid     = cp.NewShapeFilter(cp.NO_GROUP, catTrace|catBody, catQuery|catBody)
	filterQueryOnly = cp.NewShapeFilter(cp.NO_GROUP, catTrace, catQuery)
	filterPhysics   = cp.NewShapeFilter(cp.NO_GROUP, catBody, catBody)
	filterTrace     = cp.NewShapeFilter(cp.NO_GROUP, catQuery, catTrace)
)

func filterFor(mode weapon.CollisionMode) cp.ShapeFilter {
	switch mode {
	case weapon.CollisionQueryOnly:
		return filterQueryOnly
	case weapon.CollisionPhysics:
		return filterPhysics
	}
	return cp.SHAPE_FILTER_NONE
}

// collider is the shape user data: who owns the shape and its depth span.
type collider struct {
	entity    ecs.Entity
	z         float64
	halfDepth float64
}

func (c *collider) span() (float64, float64) {
	return c.z - c.halfDepth, c.z + c.halfDepth
}

// World owns the Chipmunk space and every body in it.
type World struct {
	space  *cp.Space
	bodies map[ecs.Entity]*Body
	order  []ecs.Entity
	log    zerolog.Logger
}

func NewWorld(gravity float64, log zerolog.Logger) *World {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: gravity})
	return &World{
		space:  space,
		bodies: make(map[ecs.Entity]*Body),
		log:    log,
	}
}

// Space returns the underlying Chipmunk space.
func (pw *World) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// AddStatic adds an immovable box spanning min..max that blocks traces and
// bodies. e may be zero for anonymous level geometry.
func (pw *World) AddStatic(e ecs.Entity, min, max common.Vec3) {
	bb := cp.BB{L: min.X, B: min.Y, R: max.X, T: max.Y}
	shape := cp.NewBox2(pw.space.StaticBody, bb, 0)
	shape.SetFriction(0.8)
	shape.SetFilter(filterSolid)
	shape.UserData = &collider{entity: e, z: (min.Z + max.Z) / 2, halfDepth: (max.Z - min.Z) / 2}
	pw.space.AddShape(shape)
	pw.log.Debug().Stringer("entity", e).Msg("static shape added")
}

// BodyOptions describe a movable box.
type BodyOptions struct {
	Size    common.Vec3
	Mass    float64
	Sockets map[string]common.Vec3
	Mode    weapon.CollisionMode
}

// AddBody creates a kinematic box for e centered at at. Adding an entity
// twice replaces its previous body.
func (pw *World) AddBody(e ecs.Entity, at common.Vec3, opts BodyOptions) *Body {
	pw.Remove(e)
	size := opts.Size
	if size.X <= 0 {
		size.X = 1
	}
	if size.Y <= 0 {
		size.Y = 1
	}
	mass := opts.Mass
	if mass <= 0 {
		mass = 1
	}

	cpBody := cp.NewKinematicBody()
	cpBody.SetPosition(cp.Vector{X: at.X, Y: at.Y})
	cpBody.SetPositionUpdateFunc(holdPosition)
	shape := cp.NewBox(cpBody, size.X, size.Y, 0)
	shape.SetMass(mass)
	shape.SetFriction(0.8)
	shape.SetFilter(filterFor(opts.Mode))
	col := &collider{entity: e, z: at.Z, halfDepth: size.Z / 2}
	shape.UserData = col

	pw.space.AddBody(cpBody)
	pw.space.AddShape(shape)

	b := &Body{
		world:   pw,
		entity:  e,
		body:    cpBody,
		shape:   shape,
		col:     col,
		sockets: make(map[string]common.Vec3, len(opts.Sockets)),
		mode:    opts.Mode,
	}
	for name, off := range opts.Sockets {
		b.sockets[name] = off
	}
	pw.bodies[e] = b
	pw.order = append(pw.order, e)
	return b
}

// Body returns the body of e.
func (pw *World) Body(e ecs.Entity) (*Body, bool) {
	b, ok := pw.bodies[e]
	return b, ok
}

// Remove deletes the body of e.
func (pw *World) Remove(e ecs.Entity) {
	b, ok := pw.bodies[e]
	if !ok {
		return
	}
	pw.space.RemoveShape(b.shape)
	pw.space.RemoveBody(b.body)
	delete(pw.bodies, e)
	for i, o := range pw.order {
		if o == e {
			pw.order = append(pw.order[:i], pw.order[i+1:]...)
			break
		}
	}
}

// Step advances the simulation by dt in equal substeps no longer than
// maxSubstep and then moves attached bodies onto their parents' sockets. A
// zero step only moves the attached bodies.
//
// cp scales contact warm starting by the ratio of consecutive step lengths,
// so the substeps of one tick must all be the same length.
func (pw *World) Step(dt time.Duration) {
	if pw == nil || dt < 0 {
		return
	}
	if n := substeps(dt); n > 0 {
		step := dt.Seconds() / float64(n)
		for range n {
			pw.space.Step(step)
		}
	}
	pw.followParents()
}

func substeps(dt time.Duration) int {
	return int((dt + maxSubstep - 1) / maxSubstep)
}

func (pw *World) followParents() {
	for _, e := range pw.order {
		b := pw.bodies[e]
		if b == nil || !b.parent.Valid() {
			continue
		}
		parent, ok := pw.bodies[b.parent]
		if !ok {
			pw.log.Warn().Stringer("entity", e).Stringer("parent", b.parent).Msg("attached to a missing body, detaching")
			b.parent, b.parentSocket = 0, ""
			continue
		}
		at, ok := parent.Socket(b.parentSocket)
		if !ok {
			at = parent.Position()
		}
		b.place(at)
	}
}

// Update steps the space and writes body positions back to transforms.
func (pw *World) Update(w *ecs.World, dt time.Duration) {
	pw.Step(dt)
	for _, e := range pw.order {
		if !ecs.IsAlive(w, e) {
			continue
		}
		pos := pw.bodies[e].Position()
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok && t != nil {
			t.Position = pos
			continue
		}
		_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: pos})
	}
}
