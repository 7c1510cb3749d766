package weapon

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidConfig = errors.New("weapon: invalid config")

// FiringMode selects how trigger pulls are gated.
type FiringMode int

const (
	ModeSingle FiringMode = iota
	ModeBurst
	ModeAutomatic
)

var modeNames = map[FiringMode]string{
	ModeSingle:    "single",
	ModeBurst:     "burst",
	ModeAutomatic: "automatic",
}

func (m FiringMode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("FiringMode(%d)", int(m))
}

// ShotPattern selects how many traces one trigger pull produces.
type ShotPattern int

const (
	PatternSingle ShotPattern = iota
	PatternSpread
	// PatternCluster and PatternMultiShot are accepted but fire no pellets.
	PatternCluster
	PatternMultiShot
)

var patternNames = map[ShotPattern]string{
	PatternSingle:    "single",
	PatternSpread:    "spread",
	PatternCluster:   "cluster",
	PatternMultiShot: "multishot",
}

func (p ShotPattern) String() string {
	if s, ok := patternNames[p]; ok {
		return s
	}
	return fmt.Sprintf("ShotPattern(%d)", int(p))
}

// Kind selects the behavior a weapon fires with.
type Kind int

const (
	KindRayCast Kind = iota
	KindProjectile
)

var kindNames = map[Kind]string{
	KindRayCast:    "raycast",
	KindProjectile: "projectile",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func ParseFiringMode(s string) (FiringMode, error) {
	return parseEnum(s, modeNames, "firing mode")
}

func ParseShotPattern(s string) (ShotPattern, error) {
	return parseEnum(s, patternNames, "shot pattern")
}

func ParseKind(s string) (Kind, error) {
	return parseEnum(s, kindNames, "weapon kind")
}

func parseEnum[T comparable](s string, names map[T]string, what string) (T, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for v, name := range names {
		if name == want {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: unknown %s %q", ErrInvalidConfig, what, s)
}

// Ammo is carried with the weapon. Firing does not consume it yet.
type Ammo struct {
	Reserve    int
	MaxReserve int
	Clip       int
	MaxClip    int
}

// Assets names the effects a weapon plays. Empty names are skipped with a
// warning.
type Assets struct {
	MuzzleFlash    string
	BeamTrail      string
	ImpactParticle string
	FireSound      string
	FireMontage    string
}

// Config is the immutable tuning of one weapon.
type Config struct {
	Name string
	Kind Kind
	Mode FiringMode

	FireRate      time.Duration
	MaxBurstShots int
	BurstCooldown time.Duration

	Range           float64
	Damage          float64
	TraceFromBarrel bool

	Pattern        ShotPattern
	PelletsPerShot int
	SpreadMin      float64
	SpreadMax      float64

	Ammo   Ammo
	Assets Assets

	BarrelSocket    string
	DropWithPhysics bool
	PhysicsWindow   time.Duration
	GroundProbe     float64

	DamageScript string
}

const (
	DefaultBarrelSocket  = "barrel"
	DefaultPhysicsWindow = 8 * time.Second
	DefaultGroundProbe   = 5000.0
)

// DefaultConfig returns the stock tuning of a single-fire rifle.
func DefaultConfig() Config {
	return Config{
		Kind:           KindRayCast,
		Mode:           ModeSingle,
		FireRate:       200 * time.Millisecond,
		MaxBurstShots:  3,
		BurstCooldown:  500 * time.Millisecond,
		Range:          10000,
		Damage:         10,
		Pattern:        PatternSingle,
		PelletsPerShot: 1,
		SpreadMin:      -150,
		SpreadMax:      150,
		Ammo:           Ammo{Reserve: 500, MaxReserve: 500, Clip: 50, MaxClip: 50},
		BarrelSocket:   DefaultBarrelSocket,
		PhysicsWindow:  DefaultPhysicsWindow,
		GroundProbe:    DefaultGroundProbe,
	}
}

// Validate rejects tunings the firing logic cannot honor.
func (c Config) Validate() error {
	if _, ok := kindNames[c.Kind]; !ok {
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidConfig, c.Kind)
	}
	if _, ok := modeNames[c.Mode]; !ok {
		return fmt.Errorf("%w: unknown firing mode %d", ErrInvalidConfig, c.Mode)
	}
	if _, ok := patternNames[c.Pattern]; !ok {
		return fmt.Errorf("%w: unknown shot pattern %d", ErrInvalidConfig, c.Pattern)
	}
	if c.FireRate < 0 {
		return fmt.Errorf("%w: fire rate %v is negative", ErrInvalidConfig, c.FireRate)
	}
	if c.Range <= 0 {
		return fmt.Errorf("%w: range must be positive, got %v", ErrInvalidConfig, c.Range)
	}
	if c.Damage < 0 {
		return fmt.Errorf("%w: damage %v is negative", ErrInvalidConfig, c.Damage)
	}
	if c.Mode == ModeBurst {
		if c.MaxBurstShots <= 0 {
			return fmt.Errorf("%w: burst weapon needs max burst shots > 0, got %d", ErrInvalidConfig, c.MaxBurstShots)
		}
		if c.BurstCooldown < 0 {
			return fmt.Errorf("%w: burst cooldown %v is negative", ErrInvalidConfig, c.BurstCooldown)
		}
	}
	if c.Pattern == PatternSpread {
		if c.PelletsPerShot < 1 {
			return fmt.Errorf("%w: spread weapon needs at least one pellet, got %d", ErrInvalidConfig, c.PelletsPerShot)
		}
		if c.SpreadMin > c.SpreadMax {
			return fmt.Errorf("%w: spread min %v exceeds max %v", ErrInvalidConfig, c.SpreadMin, c.SpreadMax)
		}
	}
	a := c.Ammo
	if a.Reserve < 0 || a.MaxReserve < 0 || a.Clip < 0 || a.MaxClip < 0 {
		return fmt.Errorf("%w: ammo counts must not be negative", ErrInvalidConfig)
	}
	if a.Clip > a.MaxClip || a.Reserve > a.MaxReserve {
		return fmt.Errorf("%w: ammo exceeds capacity", ErrInvalidConfig)
	}
	if c.PhysicsWindow < 0 || c.GroundProbe < 0 {
		return fmt.Errorf("%w: drop settings must not be negative", ErrInvalidConfig)
	}
	return nil
}
