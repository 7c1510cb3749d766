package prefabs

import (
	"fmt"
	"time"
)

// Scenario step actions.
const (
	ActionEquip   = "equip"
	ActionUnequip = "unequip"
	ActionFire    = "fire"
	ActionHold    = "hold"
	ActionWait    = "wait"
	ActionMove    = "move"
	ActionAim     = "aim"
)

type BoxSpec struct {
	Name string   `yaml:"name"`
	Min  Vec3Spec `yaml:"min"`
	Max  Vec3Spec `yaml:"max"`
}

type ShooterSpec struct {
	Position Vec3Spec            `yaml:"position"`
	Size     Vec3Spec            `yaml:"size"`
	Eye      Vec3Spec            `yaml:"eye"`
	Sockets  map[string]Vec3Spec `yaml:"sockets"`
}

type CameraSpec struct {
	Width  int      `yaml:"width"`
	Height int      `yaml:"height"`
	Aim    Vec3Spec `yaml:"aim"`
}

type TargetSpec struct {
	Name     string   `yaml:"name"`
	Position Vec3Spec `yaml:"position"`
	Size     Vec3Spec `yaml:"size"`
	Health   float64  `yaml:"health"`
}

type PlacedWeaponSpec struct {
	Prefab   string   `yaml:"prefab"`
	Position Vec3Spec `yaml:"position"`
}

// StepSpec is one scripted beat of a range scenario.
type StepSpec struct {
	Action string        `yaml:"action"`
	For    time.Duration `yaml:"for"`
	Times  int           `yaml:"times"`
	To     *Vec3Spec     `yaml:"to"`
}

// RangeSpec describes a firing range: level geometry, the shooter, targets,
// weapons lying around and a script of actions.
type RangeSpec struct {
	Name    string             `yaml:"name"`
	Seed    uint64             `yaml:"seed"`
	Tick    time.Duration      `yaml:"tick"`
	Shooter ShooterSpec        `yaml:"shooter"`
	Camera  CameraSpec         `yaml:"camera"`
	Statics []BoxSpec          `yaml:"statics"`
	Targets []TargetSpec       `yaml:"targets"`
	Weapons []PlacedWeaponSpec `yaml:"weapons"`
	Steps   []StepSpec         `yaml:"steps"`
}

func (l Library) LoadRange(name string) (RangeSpec, error) {
	spec, err := LoadSpec[RangeSpec](l, inDir(rangesDir, name))
	if err != nil {
		return RangeSpec{}, err
	}
	if err := spec.Validate(); err != nil {
		return RangeSpec{}, fmt.Errorf("prefabs: range %s: %w", name, err)
	}
	return spec, nil
}

func LoadRange(name string) (RangeSpec, error) {
	return Default().LoadRange(name)
}

// Validate checks the step script. Weapon prefabs are resolved when the
// range is built.
func (r RangeSpec) Validate() error {
	if r.Tick < 0 {
		return fmt.Errorf("%w: negative tick %v", ErrInvalidSpec, r.Tick)
	}
	for _, t := range r.Targets {
		if t.Health <= 0 {
			return fmt.Errorf("%w: target %q needs positive health", ErrInvalidSpec, t.Name)
		}
	}
	for _, w := range r.Weapons {
		if w.Prefab == "" {
			return fmt.Errorf("%w: placed weapon without a prefab", ErrInvalidSpec)
		}
	}
	for i, s := range r.Steps {
		switch s.Action {
		case ActionEquip, ActionUnequip:
		case ActionFire:
			if s.Times < 0 {
				return fmt.Errorf("%w: step %d: negative times", ErrInvalidSpec, i)
			}
		case ActionHold, ActionWait:
			if s.For <= 0 {
				return fmt.Errorf("%w: step %d: %s needs a positive duration", ErrInvalidSpec, i, s.Action)
			}
		case ActionMove, ActionAim:
			if s.To == nil {
				return fmt.Errorf("%w: step %d: %s needs a destination", ErrInvalidSpec, i, s.Action)
			}
		default:
			return fmt.Errorf("%w: step %d: unknown action %q", ErrInvalidSpec, i, s.Action)
		}
	}
	return nil
}
