package weapon

import "github.com/milk9111/weaponhandling/common"

// Pattern yields the endpoint offsets of the pellets of one trigger pull.
type Pattern interface {
	Offsets(rng Rand) []common.Vec3
}

// NewPattern picks the pattern for cfg.
func NewPattern(cfg Config) Pattern {
	switch cfg.Pattern {
	case PatternSpread:
		return Spread{Pellets: cfg.PelletsPerShot, Min: cfg.SpreadMin, Max: cfg.SpreadMax}
	case PatternCluster, PatternMultiShot:
		return reserved{}
	}
	return Single{}
}

// Single fires one unperturbed pellet.
type Single struct{}

func (Single) Offsets(Rand) []common.Vec3 {
	return []common.Vec3{{}}
}

// Spread fires Pellets pellets, each offset on every axis by an independent
// uniform draw in [Min, Max].
type Spread struct {
	Pellets  int
	Min, Max float64
}

func (s Spread) Offsets(rng Rand) []common.Vec3 {
	if s.Pellets <= 0 {
		return nil
	}
	out := make([]common.Vec3, s.Pellets)
	for i := range out {
		out[i] = common.Vec3{
			X: s.draw(rng),
			Y: s.draw(rng),
			Z: s.draw(rng),
		}
	}
	return out
}

func (s Spread) draw(rng Rand) float64 {
	if rng == nil || s.Max <= s.Min {
		return s.Min
	}
	return s.Min + rng.Float64()*(s.Max-s.Min)
}

type reserved struct{}

func (reserved) Offsets(Rand) []common.Vec3 {
	return nil
}
