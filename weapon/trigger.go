package weapon

import (
	"time"

	"github.com/milk9111/weaponhandling/timer"
)

// State is the externally visible phase of a trigger.
type State int

const (
	StateReady State = iota
	StateCooling
	StateBurstCooldown
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateCooling:
		return "cooling"
	case StateBurstCooldown:
		return "burst_cooldown"
	case StateStopped:
		return "stopped"
	}
	return "unknown"
}

// RuntimeState is the mutable firing state of a weapon.
type RuntimeState struct {
	ReadyToFire         bool
	BurstCooldownActive bool
	CurrentBurstCount   int
}

// Trigger gates trigger pulls by firing mode. Every mode waits FireRate
// between shots; burst mode additionally rests for BurstCooldown after
// MaxBurstShots shots.
type Trigger struct {
	mode          FiringMode
	fireRate      time.Duration
	maxBurst      int
	burstCooldown time.Duration

	timers     Timers
	state      RuntimeState
	fireTimer  timer.Handle
	burstTimer timer.Handle
	stopped    bool
}

func NewTrigger(cfg Config, timers Timers) *Trigger {
	return &Trigger{
		mode:          cfg.Mode,
		fireRate:      cfg.FireRate,
		maxBurst:      cfg.MaxBurstShots,
		burstCooldown: cfg.BurstCooldown,
		timers:        timers,
		state:         RuntimeState{ReadyToFire: true},
	}
}

// Pull runs fire if the trigger allows a shot right now. Pulls that arrive
// while cooling are dropped, never queued.
func (t *Trigger) Pull(fire func()) bool {
	if t == nil || t.stopped || !t.state.ReadyToFire {
		return false
	}
	if t.mode == ModeBurst && t.state.BurstCooldownActive {
		return false
	}

	if fire != nil {
		fire()
	}
	// fire may have stopped the trigger, e.g. by destroying the weapon.
	if t.stopped {
		return true
	}
	t.state.ReadyToFire = false

	if t.mode == ModeBurst {
		t.state.CurrentBurstCount++
		if t.state.CurrentBurstCount >= t.maxBurst {
			t.state.CurrentBurstCount = 0
			t.state.BurstCooldownActive = true
			t.arm(&t.burstTimer, t.burstCooldown, func() {
				t.state.BurstCooldownActive = false
			})
		}
	}
	t.arm(&t.fireTimer, t.fireRate, func() {
		t.state.ReadyToFire = true
	})
	return true
}

func (t *Trigger) arm(h *timer.Handle, d time.Duration, fn func()) {
	if t.timers == nil {
		fn()
		return
	}
	t.timers.Cancel(*h)
	*h = t.timers.After(d, func() {
		*h = 0
		fn()
	})
}

// State reports the current phase.
func (t *Trigger) State() State {
	switch {
	case t == nil || t.stopped:
		return StateStopped
	case t.state.BurstCooldownActive:
		return StateBurstCooldown
	case !t.state.ReadyToFire:
		return StateCooling
	}
	return StateReady
}

// Runtime returns a copy of the firing state.
func (t *Trigger) Runtime() RuntimeState {
	if t == nil {
		return RuntimeState{}
	}
	return t.state
}

// Stop cancels every armed timer. A stopped trigger never fires again.
func (t *Trigger) Stop() {
	if t == nil || t.stopped {
		return
	}
	t.stopped = true
	if t.timers != nil {
		t.timers.Cancel(t.fireTimer)
		t.timers.Cancel(t.burstTimer)
	}
	t.fireTimer, t.burstTimer = 0, 0
}
