package weapon

import (
	"errors"
	"testing"
	"time"
)

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"zero_range", func(c *Config) { c.Range = 0 }, false},
		{"negative_fire_rate", func(c *Config) { c.FireRate = -time.Millisecond }, false},
		{"negative_damage", func(c *Config) { c.Damage = -1 }, false},
		{"burst_without_shots", func(c *Config) { c.Mode = ModeBurst; c.MaxBurstShots = 0 }, false},
		{"single_ignores_burst_shots", func(c *Config) { c.MaxBurstShots = 0 }, true},
		{"spread_without_pellets", func(c *Config) { c.Pattern = PatternSpread; c.PelletsPerShot = 0 }, false},
		{"spread_inverted_bounds", func(c *Config) { c.Pattern = PatternSpread; c.SpreadMin = 10; c.SpreadMax = -10 }, false},
		{"clip_over_capacity", func(c *Config) { c.Ammo.Clip = c.Ammo.MaxClip + 1 }, false},
		{"negative_reserve", func(c *Config) { c.Ammo.Reserve = -1 }, false},
		{"unknown_mode", func(c *Config) { c.Mode = FiringMode(42) }, false},
		{"reserved_pattern", func(c *Config) { c.Pattern = PatternCluster }, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := DefaultConfig()
			c.mutate(&cfg)
			err := cfg.Validate()
			if c.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !c.ok && !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestParseEnums(t *testing.T) {
	if m, err := ParseFiringMode(" Burst "); err != nil || m != ModeBurst {
		t.Fatalf("ParseFiringMode = %v, %v", m, err)
	}
	if p, err := ParseShotPattern("multishot"); err != nil || p != PatternMultiShot {
		t.Fatalf("ParseShotPattern = %v, %v", p, err)
	}
	if k, err := ParseKind("projectile"); err != nil || k != KindProjectile {
		t.Fatalf("ParseKind = %v, %v", k, err)
	}
	if _, err := ParseFiringMode("laser"); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}
