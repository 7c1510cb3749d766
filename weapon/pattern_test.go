package weapon

import (
	"math/rand/v2"
	"testing"

	"pgregory.net/rapid"
)

func TestNewPattern(t *testing.T) {
	cases := []struct {
		name    string
		pattern ShotPattern
		pellets int
		want    int
	}{
		{"single", PatternSingle, 8, 1},
		{"spread", PatternSpread, 8, 8},
		{"cluster_reserved", PatternCluster, 8, 0},
		{"multishot_reserved", PatternMultiShot, 8, 0},
	}
	rng := rand.New(rand.NewPCG(1, 2))
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Pattern = c.pattern
			cfg.PelletsPerShot = c.pellets
			if got := len(NewPattern(cfg).Offsets(rng)); got != c.want {
				t.Fatalf("got %d pellets, want %d", got, c.want)
			}
		})
	}
}

func TestSingleHasNoPerturbation(t *testing.T) {
	offsets := Single{}.Offsets(nil)
	if len(offsets) != 1 || !offsets[0].IsZero() {
		t.Fatalf("offsets = %v", offsets)
	}
}

func TestSpreadOffsetsStayInBounds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		pellets := rapid.IntRange(1, 32).Draw(rt, "pellets")
		half := rapid.Float64Range(0, 500).Draw(rt, "half")
		seed := rapid.Uint64().Draw(rt, "seed")

		s := Spread{Pellets: pellets, Min: -half, Max: half}
		offsets := s.Offsets(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
		if len(offsets) != pellets {
			rt.Fatalf("got %d offsets, want %d", len(offsets), pellets)
		}
		for i, o := range offsets {
			for _, v := range []float64{o.X, o.Y, o.Z} {
				if v < -half || v > half {
					rt.Fatalf("pellet %d offset %v outside [%v, %v]", i, o, -half, half)
				}
			}
		}
	})
}
