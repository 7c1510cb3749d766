package weapon

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// ScriptInput is what a damage script sees for one pellet.
type ScriptInput struct {
	Damage   float64
	Distance float64
	Range    float64
	Pellet   int
	Pellets  int
	Blocked  bool
}

// DamageScript rewrites per-pellet damage. Scripts read the globals
// damage, distance, max_range, pellet, pellets and blocked, and assign the
// final amount back to damage.
type DamageScript struct {
	name     string
	compiled *tengo.Compiled
}

func (in ScriptInput) globals() []scriptGlobal {
	return []scriptGlobal{
		{"damage", in.Damage},
		{"distance", in.Distance},
		{"max_range", in.Range},
		{"pellet", in.Pellet},
		{"pellets", in.Pellets},
		{"blocked", in.Blocked},
	}
}

type scriptGlobal struct {
	name  string
	value any
}

// CompileDamageScript compiles src and checks every global can be set, so
// a broken script fails here rather than on the first shot.
func CompileDamageScript(name string, src []byte) (*DamageScript, error) {
	script := tengo.NewScript(src)
	zero := ScriptInput{}.globals()
	for _, g := range zero {
		if err := script.Add(g.name, g.value); err != nil {
			return nil, fmt.Errorf("weapon: damage script %s: add %s: %w", name, g.name, err)
		}
	}

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("weapon: compile damage script %s: %w", name, err)
	}
	ds := &DamageScript{name: name, compiled: compiled}
	if err := ds.set(zero); err != nil {
		return nil, err
	}
	return ds, nil
}

func (s *DamageScript) set(globals []scriptGlobal) error {
	for _, g := range globals {
		if err := s.compiled.Set(g.name, g.value); err != nil {
			return fmt.Errorf("weapon: damage script %s: set %s: %w", s.name, g.name, err)
		}
	}
	return nil
}

func (s *DamageScript) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// Apply runs the script and returns the rewritten damage, never below zero.
func (s *DamageScript) Apply(in ScriptInput) (float64, error) {
	if s == nil {
		return in.Damage, nil
	}
	if err := s.set(in.globals()); err != nil {
		return in.Damage, err
	}
	if err := s.compiled.Run(); err != nil {
		return in.Damage, fmt.Errorf("weapon: damage script %s: %w", s.name, err)
	}
	out := s.compiled.Get("damage").Float()
	if out < 0 {
		out = 0
	}
	return out, nil
}
