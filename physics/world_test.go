package physics

import (
	"math"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/milk9111/weaponhandling/common"
	"github.com/milk9111/weaponhandling/ecs"
	"github.com/milk9111/weaponhandling/ecs/component"
	"github.com/milk9111/weaponhandling/weapon"
)

const (
	shooter ecs.Entity = 1
	near    ecs.Entity = 2
	far     ecs.Entity = 3
	gun     ecs.Entity = 4
)

func newRange() *World {
	pw := NewWorld(DefaultGravity, zerolog.Nop())
	pw.AddStatic(0, common.V3(-1000, -50, -1000), common.V3(1000, 0, 1000))
	pw.AddStatic(near, common.V3(100, 0, -10), common.V3(110, 100, 10))
	pw.AddStatic(far, common.V3(300, 0, -10), common.V3(310, 100, 10))
	return pw
}

func approx(a, b common.Vec3) bool {
	return a.Dist(b) < 1e-6
}

func TestTraceLine(t *testing.T) {
	pw := newRange()
	cases := []struct {
		name   string
		start  common.Vec3
		end    common.Vec3
		ignore []ecs.Entity
		actor  ecs.Entity
		point  common.Vec3
	}{
		{"nearest_first", common.V3(0, 50, 0), common.V3(1000, 50, 0), nil, near, common.V3(100, 50, 0)},
		{"ignore_skips", common.V3(0, 50, 0), common.V3(1000, 50, 0), []ecs.Entity{near}, far, common.V3(300, 50, 0)},
		{"passes_beside_in_depth", common.V3(0, 50, 50), common.V3(1000, 50, 50), nil, 0, common.Vec3{}},
		{"enters_through_depth_face", common.V3(105, 50, -100), common.V3(105, 50, 100), nil, near, common.V3(105, 50, -10)},
		{"starts_inside_footprint", common.V3(105, 50, -100), common.V3(106, 50, 100), nil, near, common.V3(105.45, 50, -10)},
		{"short_of_target", common.V3(0, 50, 0), common.V3(90, 50, 0), nil, 0, common.Vec3{}},
		{"down_to_floor", common.V3(0, 200, 0), common.V3(0, -500, 0), nil, 0, common.V3(0, 0, 0)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res := pw.TraceLine(c.start, c.end, c.ignore)
			wantBlocked := c.actor.Valid() || c.name == "down_to_floor"
			if res.Blocked != wantBlocked {
				t.Fatalf("blocked = %v, want %v (%+v)", res.Blocked, wantBlocked, res)
			}
			if !wantBlocked {
				if res.Point != c.end {
					t.Fatalf("miss point %v, want trace end %v", res.Point, c.end)
				}
				return
			}
			if res.Actor != c.actor || !approx(res.Point, c.point) {
				t.Fatalf("hit %v at %v, want %v at %v", res.Actor, res.Point, c.actor, c.point)
			}
		})
	}
}

func TestTraceNormals(t *testing.T) {
	pw := newRange()
	side := pw.TraceLine(common.V3(0, 50, 0), common.V3(200, 50, 0), nil)
	if !approx(side.Normal, common.V3(-1, 0, 0)) {
		t.Fatalf("side normal = %v", side.Normal)
	}
	depth := pw.TraceLine(common.V3(105, 50, -100), common.V3(105, 50, 100), nil)
	if !approx(depth.Normal, common.V3(0, 0, -1)) {
		t.Fatalf("depth normal = %v", depth.Normal)
	}
}

func TestBodyCollisionModes(t *testing.T) {
	pw := newRange()
	b := pw.AddBody(gun, common.V3(50, 50, 0), BodyOptions{Size: common.V3(10, 10, 10), Mode: weapon.CollisionNone})
	trace := func() ecs.Entity {
		return pw.TraceLine(common.V3(0, 50, 0), common.V3(1000, 50, 0), nil).Actor
	}

	if got := trace(); got != near {
		t.Fatalf("disabled body blocked the trace: %v", got)
	}
	b.SetCollision(weapon.CollisionQueryOnly)
	if got := trace(); got != gun {
		t.Fatalf("query-only body not hit: %v", got)
	}
	b.SetCollision(weapon.CollisionPhysics)
	if got := trace(); got != near {
		t.Fatalf("physics-only body blocked the trace: %v", got)
	}

	b.SetCollision(weapon.CollisionQueryOnly)
	b.SetPosition(common.V3(50, 500, 0))
	if got := trace(); got != near {
		t.Fatalf("moved body still hit at its old spot: %v", got)
	}
}

func TestAttachFollowsSocket(t *testing.T) {
	pw := newRange()
	holder := pw.AddBody(shooter, common.V3(0, 50, 0), BodyOptions{
		Size:    common.V3(20, 100, 20),
		Sockets: map[string]common.Vec3{"hand_r": common.V3(10, 20, 5)},
		Mode:    weapon.CollisionQueryOnly,
	})
	b := pw.AddBody(gun, common.V3(500, 10, 0), BodyOptions{Size: common.V3(5, 5, 5), Mode: weapon.CollisionQueryOnly})
	b.AttachTo(shooter, "hand_r")
	if !approx(b.Position(), common.V3(10, 70, 5)) {
		t.Fatalf("attached at %v", b.Position())
	}

	holder.SetPosition(common.V3(40, 50, 0))
	pw.Step(time.Millisecond)
	if !approx(b.Position(), common.V3(50, 70, 5)) {
		t.Fatalf("did not follow parent: %v", b.Position())
	}

	b.Detach()
	holder.SetPosition(common.V3(0, 50, 0))
	pw.Step(time.Millisecond)
	if !approx(b.Position(), common.V3(50, 70, 5)) {
		t.Fatalf("detached body moved: %v", b.Position())
	}
}

func TestSimulatedBodyFallsOntoFloor(t *testing.T) {
	pw := newRange()
	b := pw.AddBody(gun, common.V3(-200, 100, 0), BodyOptions{Size: common.V3(10, 10, 10), Mode: weapon.CollisionQueryOnly})
	b.SetCollision(weapon.CollisionPhysics)
	b.SetSimulatePhysics(true)
	pw.Step(2 * time.Second)

	y := b.Position().Y
	if math.Abs(y-5) > 1 {
		t.Fatalf("came to rest at y=%v, want about 5", y)
	}

	b.SetSimulatePhysics(false)
	before := b.Position()
	for range 100 {
		pw.Step(10 * time.Millisecond)
	}
	if !approx(before, b.Position()) {
		t.Fatalf("kinematic body drifted from %v to %v", before, b.Position())
	}
}

func TestSubstepsAreEqual(t *testing.T) {
	cases := []struct {
		dt   time.Duration
		want int
	}{
		{0, 0},
		{time.Millisecond, 1},
		{maxSubstep, 1},
		{10 * time.Millisecond, 2},
		{time.Second, 120},
	}
	for _, c := range cases {
		if got := substeps(c.dt); got != c.want {
			t.Errorf("substeps(%v) = %d, want %d", c.dt, got, c.want)
		}
	}
}

func TestDroppedBodySettlesUnderTickedSteps(t *testing.T) {
	pw := newRange()
	b := pw.AddBody(gun, common.V3(-200, 100, 0), BodyOptions{Size: common.V3(60, 20, 10), Mass: 4, Mode: weapon.CollisionPhysics})
	b.SetSimulatePhysics(true)

	landed := false
	for i := range 300 {
		pw.Step(10 * time.Millisecond)
		y := b.Position().Y
		if y < 15 {
			landed = true
		}
		if landed && y > 20 {
			t.Fatalf("bounced to y=%v at tick %d", y, i)
		}
	}
	if y := b.Position().Y; math.Abs(y-10) > 1 {
		t.Fatalf("came to rest at y=%v, want about 10", y)
	}
}

func TestUpdateSyncsTransforms(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	pw := NewWorld(DefaultGravity, zerolog.Nop())
	pw.AddBody(e, common.V3(1, 2, 3), BodyOptions{Mode: weapon.CollisionQueryOnly})

	pw.Update(w, time.Millisecond)
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || !approx(tr.Position, common.V3(1, 2, 3)) {
		t.Fatalf("transform = %+v, %v", tr, ok)
	}

	pw.Remove(e)
	if _, ok := pw.Body(e); ok {
		t.Fatalf("body survived removal")
	}
}
