package sim

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/milk9111/weaponhandling/common"
	"github.com/milk9111/weaponhandling/prefabs"
	"github.com/milk9111/weaponhandling/weapon"
)

func buildRange(t *testing.T, lib prefabs.Library, name string) *Range {
	t.Helper()
	spec, err := lib.LoadRange(name)
	if err != nil {
		t.Fatal(err)
	}
	r, err := Build(spec, Options{Library: lib, Log: zerolog.Nop()})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(r.Close)
	return r
}

func TestLaneScenario(t *testing.T) {
	r := buildRange(t, prefabs.Library{}, "lane.yaml")
	rep, err := r.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if rep.Elapsed != 7*time.Second {
		t.Fatalf("elapsed = %v", rep.Elapsed)
	}
	if rep.Pulls != 101 || rep.Fired != 11 || rep.Shots != 11 {
		t.Fatalf("pulls/fired/shots = %d/%d/%d", rep.Pulls, rep.Fired, rep.Shots)
	}
	// Ten rifle rounds plus eight shotgun pellets, all of which hit the
	// dummy or the backstop behind it.
	if rep.Pellets != 18 || rep.Hits != 18 {
		t.Fatalf("pellets/hits = %d/%d", rep.Pellets, rep.Hits)
	}
	if rep.Damage != 108 || !slices.Equal(rep.Kills, []string{"dummy_a"}) {
		t.Fatalf("damage %v, kills %v", rep.Damage, rep.Kills)
	}
	if !slices.Equal(rep.Equipped, []string{"rifle", "shotgun"}) {
		t.Fatalf("equipped = %v", rep.Equipped)
	}

	fx := r.Effects
	if n := fx.Count(EffectAttached, ""); n != 11 {
		t.Fatalf("muzzle flashes = %d", n)
	}
	if fx.Count(EffectParticle, "fx/tracer") != 10 || fx.Count(EffectParticle, "fx/pellet_trail") != 8 {
		t.Fatalf("trails = %d tracer, %d pellet", fx.Count(EffectParticle, "fx/tracer"), fx.Count(EffectParticle, "fx/pellet_trail"))
	}
	if fx.Count(EffectSound, "") != 11 || fx.Count(EffectMontage, "anim/rifle_recoil") != 10 {
		t.Fatal("fire sounds or montages missing")
	}

	if r.Manager.ActiveWeapon() != nil {
		t.Fatal("weapon still equipped after unequip")
	}
	for _, p := range r.Weapons() {
		if p.Weapon.Owner() != nil {
			t.Fatalf("%s still owned", p.Prefab)
		}
	}
	dummy, _ := r.Target("dummy_a")
	if dummy.Health.IsAlive() || dummy.Body.Collision() != weapon.CollisionNone {
		t.Fatalf("dummy alive=%v collision=%v", dummy.Health.IsAlive(), dummy.Body.Collision())
	}
}

func TestDroppedRifleLandsOnFloor(t *testing.T) {
	r := buildRange(t, prefabs.Library{}, "lane.yaml")
	r.Manager.Equip()
	rifle := r.Manager.ActiveWeapon()
	if rifle == nil || rifle.Config().Name != "rifle" {
		t.Fatalf("equipped %v", rifle)
	}
	if got := rifle.Body().Position(); got.Dist(common.V3(30, 110, 0)) > 1e-9 {
		t.Fatalf("held at %v, want the hand socket", got)
	}

	r.Manager.Unequip()
	r.TickFor(2 * time.Second)
	pos := rifle.Body().Position()
	if math.Abs(pos.Y-10) > 1 {
		t.Fatalf("rifle rests at %v", pos)
	}

	// The physics window closes and the rifle becomes pickable in place.
	r.TickFor(7 * time.Second)
	body := r.Weapons()[0].Body
	if body.Simulating() || body.Collision() != weapon.CollisionQueryOnly {
		t.Fatalf("simulating=%v collision=%v", body.Simulating(), body.Collision())
	}
}

func TestBurstScenario(t *testing.T) {
	r := buildRange(t, prefabs.Library{}, "burst.yaml")
	rep, err := r.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	// Bursts of three at 0, 1.2 and 2.4 seconds; the fourth round kills
	// the near dummy and the rest carry on to the far one.
	if rep.Fired != 8 || rep.Shots != 8 {
		t.Fatalf("fired/shots = %d/%d", rep.Fired, rep.Shots)
	}
	if rep.Hits != 7 || rep.Damage != 105 {
		t.Fatalf("hits %d, damage %v", rep.Hits, rep.Damage)
	}
	if !slices.Equal(rep.Kills, []string{"near"}) {
		t.Fatalf("kills = %v", rep.Kills)
	}
	far, _ := r.Target("far")
	if far.Health.Current != 15 {
		t.Fatalf("far health = %v", far.Health.Current)
	}

	// Without physics the burst rifle snaps to the floor below the hand.
	body := r.Weapons()[0].Body
	if got := body.Position(); got.Dist(common.V3(30, 0, 200)) > 1e-6 {
		t.Fatalf("dropped at %v", got)
	}
	if body.Collision() != weapon.CollisionQueryOnly {
		t.Fatalf("collision = %v", body.Collision())
	}
}

func TestRunStopsOnCanceledContext(t *testing.T) {
	r := buildRange(t, prefabs.Library{}, "lane.yaml")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v", err)
	}
	if r.World.Elapsed() != 0 {
		t.Fatal("ran steps after cancel")
	}
}

func TestStepRejectsUnknownAction(t *testing.T) {
	r := buildRange(t, prefabs.Library{}, "lane.yaml")
	if err := r.Step(prefabs.StepSpec{Action: "dance"}); !errors.Is(err, prefabs.ErrInvalidSpec) {
		t.Fatalf("err = %v", err)
	}
}

func TestBuildRejectsMissingPrefab(t *testing.T) {
	spec := prefabs.RangeSpec{Name: "broken", Weapons: []prefabs.PlacedWeaponSpec{{Prefab: "nope.yaml"}}}
	if _, err := Build(spec, Options{Log: zerolog.Nop()}); err == nil {
		t.Fatal("expected an error for an unknown prefab")
	}
}

func writePrefab(t *testing.T, dir, name, body string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestReload(t *testing.T) {
	dir := t.TempDir()
	lib := prefabs.Library{Dir: dir}
	r := buildRange(t, lib, "lane.yaml")
	rifle := r.Weapons()[0].Weapon
	shotgun := r.Weapons()[1].Weapon

	writePrefab(t, dir, "weapons/rifle.yaml", "name: rifle\nfiring_mode: single\ndamage: 50\n")
	if err := r.Reload(prefabs.Change{Kind: prefabs.AssetWeapon, Name: "rifle.yaml"}); err != nil {
		t.Fatal(err)
	}
	if cfg := rifle.Config(); cfg.Damage != 50 || cfg.Mode != weapon.ModeSingle {
		t.Fatalf("rifle config = %+v", cfg)
	}
	if shotgun.Config().Damage != 9 {
		t.Fatal("unrelated weapon changed")
	}

	writePrefab(t, dir, "scripts/falloff.tengo", "damage = (")
	if err := r.Reload(prefabs.Change{Kind: prefabs.AssetScript, Name: "falloff.tengo"}); err == nil {
		t.Fatal("expected a compile error")
	}
	if !shotgun.Initialized() || shotgun.Config().DamageScript != "falloff.tengo" {
		t.Fatal("failed reload broke the shotgun")
	}

	if err := r.Reload(prefabs.Change{Kind: prefabs.AssetRange, Name: "lane.yaml"}); err != nil {
		t.Fatal(err)
	}
}
