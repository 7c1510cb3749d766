package prefabs

import (
	"errors"
	"testing"
	"time"
)

func TestEmbeddedRanges(t *testing.T) {
	for _, name := range []string{"lane.yaml", "burst.yaml"} {
		t.Run(name, func(t *testing.T) {
			r, err := LoadRange(name)
			if err != nil {
				t.Fatal(err)
			}
			if r.Tick != 10*time.Millisecond || len(r.Steps) == 0 || len(r.Weapons) == 0 {
				t.Fatalf("range = %+v", r)
			}
			for _, w := range r.Weapons {
				if _, err := LoadWeaponSpec(w.Prefab); err != nil {
					t.Fatalf("placed weapon %s: %v", w.Prefab, err)
				}
			}
		})
	}
}

func TestRangeValidate(t *testing.T) {
	cases := []struct {
		name  string
		steps []StepSpec
		ok    bool
	}{
		{"empty", nil, true},
		{"all_actions", []StepSpec{
			{Action: ActionEquip},
			{Action: ActionFire, Times: 2},
			{Action: ActionHold, For: time.Second},
			{Action: ActionWait, For: time.Second},
			{Action: ActionMove, To: &Vec3Spec{X: 1}},
			{Action: ActionAim, To: &Vec3Spec{X: 1}},
			{Action: ActionUnequip},
		}, true},
		{"unknown", []StepSpec{{Action: "dance"}}, false},
		{"hold_without_duration", []StepSpec{{Action: ActionHold}}, false},
		{"move_without_destination", []StepSpec{{Action: ActionMove}}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := RangeSpec{Steps: c.steps}.Validate()
			if (err == nil) != c.ok {
				t.Fatalf("Validate() = %v, ok want %v", err, c.ok)
			}
			if err != nil && !errors.Is(err, ErrInvalidSpec) {
				t.Fatalf("error %v does not wrap ErrInvalidSpec", err)
			}
		})
	}
}

func TestRangeRejectsDeadTargets(t *testing.T) {
	r := RangeSpec{Targets: []TargetSpec{{Name: "ghost"}}}
	if err := r.Validate(); !errors.Is(err, ErrInvalidSpec) {
		t.Fatalf("err = %v", err)
	}
}
