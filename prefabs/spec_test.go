package prefabs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/weaponhandling/weapon"
)

func writeFile(t *testing.T, root, name, body string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestEmbeddedWeapons(t *testing.T) {
	lib := Library{}
	cases := []struct {
		file    string
		mode    weapon.FiringMode
		kind    weapon.Kind
		pellets int
		check   func(t *testing.T, cfg weapon.Config)
	}{
		{"rifle.yaml", weapon.ModeAutomatic, weapon.KindRayCast, 1, func(t *testing.T, cfg weapon.Config) {
			if cfg.FireRate != 100*time.Millisecond || !cfg.TraceFromBarrel || !cfg.DropWithPhysics {
				t.Fatalf("rifle config = %+v", cfg)
			}
		}},
		{"pistol.yaml", weapon.ModeSingle, weapon.KindRayCast, 1, func(t *testing.T, cfg weapon.Config) {
			if cfg.GroundProbe != 2000 || cfg.BarrelSocket != weapon.DefaultBarrelSocket {
				t.Fatalf("pistol config = %+v", cfg)
			}
		}},
		{"burst_rifle.yaml", weapon.ModeBurst, weapon.KindRayCast, 1, func(t *testing.T, cfg weapon.Config) {
			if cfg.MaxBurstShots != 3 || cfg.BurstCooldown != time.Second {
				t.Fatalf("burst config = %+v", cfg)
			}
		}},
		{"shotgun.yaml", weapon.ModeSingle, weapon.KindRayCast, 8, func(t *testing.T, cfg weapon.Config) {
			if cfg.Pattern != weapon.PatternSpread || cfg.DamageScript != "falloff.tengo" || cfg.PhysicsWindow != 4*time.Second {
				t.Fatalf("shotgun config = %+v", cfg)
			}
		}},
		{"launcher.yaml", weapon.ModeSingle, weapon.KindProjectile, 1, nil},
	}
	for _, c := range cases {
		t.Run(c.file, func(t *testing.T) {
			cfg, spec, err := lib.LoadWeapon(c.file)
			if err != nil {
				t.Fatalf("LoadWeapon: %v", err)
			}
			if cfg.Mode != c.mode || cfg.Kind != c.kind || cfg.PelletsPerShot != c.pellets {
				t.Fatalf("mode/kind/pellets = %v/%v/%d", cfg.Mode, cfg.Kind, cfg.PelletsPerShot)
			}
			if _, ok := spec.Body.SocketOffsets()[cfg.BarrelSocket]; !ok {
				t.Fatalf("body has no %q socket", cfg.BarrelSocket)
			}
			if c.check != nil {
				c.check(t, cfg)
			}
		})
	}
}

func TestWeaponSpecRejects(t *testing.T) {
	cases := []struct {
		name string
		body string
		want error
	}{
		{"burst_on_automatic", "firing_mode: automatic\nburst: {max_shots: 3, cooldown: 1s}\n", ErrInvalidSpec},
		{"spread_on_single_pattern", "pattern: single\nspread: {pellets: 4, min: -1, max: 1}\n", ErrInvalidSpec},
		{"unknown_mode", "firing_mode: sometimes\n", weapon.ErrInvalidConfig},
		{"zero_pellets", "pattern: spread\nspread: {pellets: 0}\n", weapon.ErrInvalidConfig},
		{"zero_range", "range: 0\n", weapon.ErrInvalidConfig},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, "weapons/bad.yaml", c.body)
			_, err := Library{Dir: dir}.LoadWeaponSpec("bad.yaml")
			if !errors.Is(err, c.want) {
				t.Fatalf("err = %v, want %v", err, c.want)
			}
		})
	}
}

func TestWeaponSpecDefaultsFillGaps(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "weapons/minimal.yaml", "name: minimal\nfiring_mode: burst\n")
	cfg, _, err := Library{Dir: dir}.LoadWeapon("weapons/minimal.yaml")
	if err != nil {
		t.Fatal(err)
	}
	def := weapon.DefaultConfig()
	if cfg.MaxBurstShots != def.MaxBurstShots || cfg.Range != def.Range || cfg.PhysicsWindow != def.PhysicsWindow {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
}

func TestBadDurationFailsToDecode(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "weapons/slow.yaml", "fire_rate: forever\n")
	if _, err := (Library{Dir: dir}).LoadWeaponSpec("slow.yaml"); err == nil {
		t.Fatal("expected a decode error")
	}
}

func TestDiskOverridesEmbedded(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "weapons/pistol.yaml", "name: pistol\ndamage: 99\n")
	lib := Library{Dir: dir}

	spec, err := lib.LoadWeaponSpec("pistol.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if spec.Damage != 99 {
		t.Fatalf("damage = %v, want the disk copy", spec.Damage)
	}
	if _, ok := lib.ModTime("weapons/pistol.yaml"); !ok {
		t.Fatal("ModTime missed the disk copy")
	}
	if _, ok := lib.ModTime("weapons/rifle.yaml"); ok {
		t.Fatal("ModTime reported an embedded-only file")
	}
	if _, err := lib.LoadWeaponSpec("prefabs/weapons/rifle.yaml"); err != nil {
		t.Fatalf("embedded fallback: %v", err)
	}
}

func TestFalloffScript(t *testing.T) {
	src, err := LoadScript("falloff.tengo")
	if err != nil {
		t.Fatal(err)
	}
	script, err := weapon.CompileDamageScript("falloff.tengo", src)
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		in   weapon.ScriptInput
		want float64
	}{
		{weapon.ScriptInput{Damage: 10, Distance: 1500, Range: 3000, Blocked: true}, 7.5},
		{weapon.ScriptInput{Damage: 10, Distance: 9000, Range: 3000, Blocked: true}, 5},
		{weapon.ScriptInput{Damage: 10, Distance: 1500, Range: 3000}, 10},
	}
	for _, c := range cases {
		got, err := script.Apply(c.in)
		if err != nil {
			t.Fatal(err)
		}
		if got != c.want {
			t.Fatalf("Apply(%+v) = %v, want %v", c.in, got, c.want)
		}
	}
}
