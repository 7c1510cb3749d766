package sim

import (
	"math"

	"github.com/milk9111/weaponhandling/common"
)

const fieldOfView = math.Pi / 2

// Camera is a pinhole viewport at a character's eye looking at an aim
// point. Screen y grows downward.
type Camera struct {
	width, height int
	eye           func() common.Vec3
	aim           common.Vec3
}

func NewCamera(width, height int, eye func() common.Vec3, aim common.Vec3) *Camera {
	return &Camera{width: width, height: height, eye: eye, aim: aim}
}

func (c *Camera) AimAt(p common.Vec3) {
	c.aim = p
}

func (c *Camera) Aim() common.Vec3 {
	return c.aim
}

func (c *Camera) Size() (int, int) {
	return c.width, c.height
}

// ScreenPointToWorldRay fails for an empty viewport or when the eye sits on
// the aim point.
func (c *Camera) ScreenPointToWorldRay(x, y float64) (common.Vec3, common.Vec3, bool) {
	if c.width <= 0 || c.height <= 0 || c.eye == nil {
		return common.Vec3{}, common.Vec3{}, false
	}
	origin := c.eye()
	forward := c.aim.Sub(origin).SafeNormal()
	if forward.IsZero() {
		return origin, common.Vec3{}, false
	}
	right := forward.Cross(common.V3(0, 1, 0)).SafeNormal()
	if right.IsZero() {
		right = common.V3(0, 0, 1)
	}
	up := right.Cross(forward)

	focal := float64(c.width) / 2 / math.Tan(fieldOfView/2)
	dir := forward.Scale(focal).
		Add(right.Scale(x - float64(c.width)/2)).
		Add(up.Scale(float64(c.height)/2 - y)).
		SafeNormal()
	return origin, dir, true
}
