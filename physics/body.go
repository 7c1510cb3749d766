package physics

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/weaponhandling/common"
	"github.com/milk9111/weaponhandling/ecs"
	"github.com/milk9111/weaponhandling/weapon"
)

// Body is one movable box in a World. It satisfies weapon.Body.
type Body struct {
	world  *World
	entity ecs.Entity
	body   *cp.Body
	shape  *cp.Shape
	col    *collider

	sockets      map[string]common.Vec3
	parent       ecs.Entity
	parentSocket string
	mode         weapon.CollisionMode
	simulate     bool
}

var _ weapon.Body = (*Body)(nil)

func (b *Body) Entity() ecs.Entity { return b.entity }

func (b *Body) Position() common.Vec3 {
	p := b.body.Position()
	return common.V3(p.X, p.Y, b.col.z)
}

// SetPosition teleports the body and refreshes its broadphase bounds so the
// next query sees it at the new spot.
func (b *Body) SetPosition(p common.Vec3) {
	b.place(p)
}

func (b *Body) place(p common.Vec3) {
	b.body.SetPosition(cp.Vector{X: p.X, Y: p.Y})
	b.body.SetVelocity(0, 0)
	b.col.z = p.Z
	b.reindex()
}

func (b *Body) reindex() {
	space := b.world.space
	space.RemoveShape(b.shape)
	space.AddShape(b.shape)
}

// SetSocket defines a named attachment point relative to the body center.
func (b *Body) SetSocket(name string, offset common.Vec3) {
	b.sockets[name] = offset
}

func (b *Body) Socket(name string) (common.Vec3, bool) {
	off, ok := b.sockets[name]
	if !ok {
		return common.Vec3{}, false
	}
	return b.Position().Add(off), true
}

func (b *Body) AttachTo(parent ecs.Entity, socket string) {
	if parent == b.entity {
		return
	}
	b.SetSimulatePhysics(false)
	b.parent, b.parentSocket = parent, socket
	b.world.followParents()
}

func (b *Body) Detach() {
	b.parent, b.parentSocket = 0, ""
}

// Parent returns the entity the body follows, if any.
func (b *Body) Parent() (ecs.Entity, string) {
	return b.parent, b.parentSocket
}

func (b *Body) SetCollision(mode weapon.CollisionMode) {
	b.mode = mode
	b.shape.SetFilter(filterFor(mode))
}

func (b *Body) Collision() weapon.CollisionMode {
	return b.mode
}

// SetSimulatePhysics switches between a dynamic body pulled by gravity and
// a kinematic body that only moves when told to.
func (b *Body) SetSimulatePhysics(on bool) {
	if b.simulate == on {
		return
	}
	b.simulate = on
	if on {
		b.body.SetType(cp.BODY_DYNAMIC)
		// Dropped weapons slide and settle but never tumble.
		b.body.SetMoment(math.Inf(1))
		b.body.SetPositionUpdateFunc(cp.BodyUpdatePosition)
		b.body.Activate()
		return
	}
	b.body.SetType(cp.BODY_KINEMATIC)
	b.body.SetAngularVelocity(0)
	b.body.SetAngle(0)
	b.body.SetPositionUpdateFunc(holdPosition)
	b.place(b.Position())
}

// holdPosition integrates with a zero step. The position stays put and the
// contact bias velocity left over from the last simulated step is cleared.
func holdPosition(body *cp.Body, _ float64) {
	cp.BodyUpdatePosition(body, 0)
}

func (b *Body) Simulating() bool {
	return b.simulate
}
