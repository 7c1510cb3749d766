package prefabs

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/weaponhandling/common"
	"github.com/milk9111/weaponhandling/weapon"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

// LoadSpec decodes name into a fresh T.
func LoadSpec[T any](lib Library, name string) (T, error) {
	var spec T
	if err := decode(lib, name, &spec); err != nil {
		var zero T
		return zero, err
	}
	return spec, nil
}

// decode unmarshals name over into, keeping whatever into already holds
// for keys the file leaves out.
func decode(lib Library, name string, into any) error {
	data, err := lib.Load(name)
	if err != nil {
		return fmt.Errorf("prefabs: load %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, into); err != nil {
		return fmt.Errorf("prefabs: unmarshal %s: %w", name, err)
	}
	return nil
}

type Vec3Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v Vec3Spec) Vec() common.Vec3 {
	return common.V3(v.X, v.Y, v.Z)
}

type BurstSpec struct {
	MaxShots int           `yaml:"max_shots"`
	Cooldown time.Duration `yaml:"cooldown"`
}

type SpreadSpec struct {
	Pellets int     `yaml:"pellets"`
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max"`
}

type AmmoSpec struct {
	Reserve    int `yaml:"reserve"`
	MaxReserve int `yaml:"max_reserve"`
	Clip       int `yaml:"clip"`
	MaxClip    int `yaml:"max_clip"`
}

type AssetsSpec struct {
	MuzzleFlash    string `yaml:"muzzle_flash"`
	BeamTrail      string `yaml:"beam_trail"`
	ImpactParticle string `yaml:"impact_particle"`
	FireSound      string `yaml:"fire_sound"`
	FireMontage    string `yaml:"fire_montage"`
}

type DropSpec struct {
	WithPhysics   bool          `yaml:"with_physics"`
	PhysicsWindow time.Duration `yaml:"physics_window"`
	GroundProbe   float64       `yaml:"ground_probe"`
}

// BodySpec shapes the pickup box of a weapon in the physics world.
type BodySpec struct {
	Size    Vec3Spec            `yaml:"size"`
	Mass    float64             `yaml:"mass"`
	Sockets map[string]Vec3Spec `yaml:"sockets"`
}

// WeaponSpec is the yaml form of one weapon. The burst and spread sections
// are only allowed on weapons that use them.
type WeaponSpec struct {
	Name            string        `yaml:"name"`
	Kind            string        `yaml:"kind"`
	FiringMode      string        `yaml:"firing_mode"`
	FireRate        time.Duration `yaml:"fire_rate"`
	Burst           *BurstSpec    `yaml:"burst"`
	Range           float64       `yaml:"range"`
	Damage          float64       `yaml:"damage"`
	TraceFromBarrel bool          `yaml:"trace_from_barrel"`
	Pattern         string        `yaml:"pattern"`
	Spread          *SpreadSpec   `yaml:"spread"`
	Ammo            AmmoSpec      `yaml:"ammo"`
	Assets          AssetsSpec    `yaml:"assets"`
	BarrelSocket    string        `yaml:"barrel_socket"`
	Drop            DropSpec      `yaml:"drop"`
	DamageScript    string        `yaml:"damage_script"`
	Body            BodySpec      `yaml:"body"`
}

// DefaultWeaponSpec mirrors weapon.DefaultConfig.
func DefaultWeaponSpec() WeaponSpec {
	cfg := weapon.DefaultConfig()
	return WeaponSpec{
		Kind:         cfg.Kind.String(),
		FiringMode:   cfg.Mode.String(),
		FireRate:     cfg.FireRate,
		Range:        cfg.Range,
		Damage:       cfg.Damage,
		Pattern:      cfg.Pattern.String(),
		Ammo:         AmmoSpec(cfg.Ammo),
		BarrelSocket: cfg.BarrelSocket,
		Drop: DropSpec{
			PhysicsWindow: cfg.PhysicsWindow,
			GroundProbe:   cfg.GroundProbe,
		},
		Body: BodySpec{Size: Vec3Spec{X: 60, Y: 20, Z: 10}, Mass: 4},
	}
}

// Config converts the prefab into a weapon config and validates it.
func (s WeaponSpec) Config() (weapon.Config, error) {
	cfg := weapon.DefaultConfig()
	var err error
	if cfg.Kind, err = weapon.ParseKind(s.Kind); err != nil {
		return weapon.Config{}, err
	}
	if cfg.Mode, err = weapon.ParseFiringMode(s.FiringMode); err != nil {
		return weapon.Config{}, err
	}
	if cfg.Pattern, err = weapon.ParseShotPattern(s.Pattern); err != nil {
		return weapon.Config{}, err
	}
	if s.Burst != nil {
		if cfg.Mode != weapon.ModeBurst {
			return weapon.Config{}, fmt.Errorf("%w: burst settings on a %s weapon", ErrInvalidSpec, cfg.Mode)
		}
		cfg.MaxBurstShots = s.Burst.MaxShots
		cfg.BurstCooldown = s.Burst.Cooldown
	}
	if s.Spread != nil {
		if cfg.Pattern != weapon.PatternSpread {
			return weapon.Config{}, fmt.Errorf("%w: spread settings on a %s pattern", ErrInvalidSpec, cfg.Pattern)
		}
		cfg.PelletsPerShot = s.Spread.Pellets
		cfg.SpreadMin = s.Spread.Min
		cfg.SpreadMax = s.Spread.Max
	}

	cfg.Name = s.Name
	cfg.FireRate = s.FireRate
	cfg.Range = s.Range
	cfg.Damage = s.Damage
	cfg.TraceFromBarrel = s.TraceFromBarrel
	cfg.Ammo = weapon.Ammo(s.Ammo)
	cfg.Assets = weapon.Assets(s.Assets)
	cfg.BarrelSocket = s.BarrelSocket
	cfg.DropWithPhysics = s.Drop.WithPhysics
	cfg.PhysicsWindow = s.Drop.PhysicsWindow
	cfg.GroundProbe = s.Drop.GroundProbe
	cfg.DamageScript = s.DamageScript

	if err := cfg.Validate(); err != nil {
		return weapon.Config{}, err
	}
	return cfg, nil
}

// SocketOffsets returns the body sockets as offsets from its center.
func (b BodySpec) SocketOffsets() map[string]common.Vec3 {
	out := make(map[string]common.Vec3, len(b.Sockets))
	for name, off := range b.Sockets {
		out[name] = off.Vec()
	}
	return out
}

func (l Library) LoadWeaponSpec(name string) (WeaponSpec, error) {
	spec := DefaultWeaponSpec()
	if err := decode(l, inDir(weaponsDir, name), &spec); err != nil {
		return WeaponSpec{}, err
	}
	if _, err := spec.Config(); err != nil {
		return WeaponSpec{}, fmt.Errorf("prefabs: weapon %s: %w", name, err)
	}
	return spec, nil
}

// LoadWeapon loads a weapon spec and returns its validated config.
func (l Library) LoadWeapon(name string) (weapon.Config, WeaponSpec, error) {
	spec, err := l.LoadWeaponSpec(name)
	if err != nil {
		return weapon.Config{}, WeaponSpec{}, err
	}
	cfg, err := spec.Config()
	return cfg, spec, err
}

func LoadWeaponSpec(name string) (WeaponSpec, error) {
	return Default().LoadWeaponSpec(name)
}
