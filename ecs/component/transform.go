package component

import "github.com/milk9111/weaponhandling/common"

// Transform is the world placement of an entity. Physics writes it back
// every step for entities that own a body.
type Transform struct {
	Position common.Vec3
	Yaw      float64
}

var TransformComponent = NewComponent[*Transform]("transform")
