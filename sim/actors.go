package sim

import (
	"github.com/milk9111/weaponhandling/combat"
	"github.com/milk9111/weaponhandling/common"
	"github.com/milk9111/weaponhandling/ecs"
	"github.com/milk9111/weaponhandling/physics"
	"github.com/milk9111/weaponhandling/weapon"
)

// Controller aims through a camera on behalf of its pawn.
type Controller struct {
	pawn   ecs.Entity
	camera *Camera
}

func (c *Controller) Pawn() ecs.Entity {
	return c.pawn
}

func (c *Controller) Viewport() weapon.Viewport {
	if c.camera == nil {
		return nil
	}
	return c.camera
}

// Shooter is the character the scenario drives.
type Shooter struct {
	entity     ecs.Entity
	body       *physics.Body
	eye        common.Vec3
	controller *Controller
}

var _ weapon.Character = (*Shooter)(nil)

func (s *Shooter) Entity() ecs.Entity { return s.entity }

func (s *Shooter) Controller() weapon.Controller { return s.controller }

func (s *Shooter) Position() common.Vec3 { return s.body.Position() }

// Eye is where the camera sits.
func (s *Shooter) Eye() common.Vec3 { return s.Position().Add(s.eye) }

func (s *Shooter) Camera() *Camera { return s.controller.camera }

func (s *Shooter) MoveTo(p common.Vec3) { s.body.SetPosition(p) }

// Target is a shootable dummy.
type Target struct {
	Name   string
	Entity ecs.Entity
	Health *combat.Health
	Body   *physics.Body
}

// PlacedWeapon remembers which prefab a weapon was built from so it can be
// reloaded.
type PlacedWeapon struct {
	Prefab string
	Weapon *weapon.Weapon
	Body   *physics.Body
}
