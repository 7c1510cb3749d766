package combat

// Health is a reusable damage receiver for any entity that can be shot.
type Health struct {
	Max     float64
	Current float64
	Dead    bool

	OnDamage func(h *Health, evt DamageEvent)
	OnDeath  func(h *Health, evt DamageEvent)
}

// NewHealth creates a Health component with max/current initialized.
func NewHealth(max float64) *Health {
	if max <= 0 {
		max = 1
	}
	return &Health{Max: max, Current: max}
}

// IsAlive reports whether the entity is alive.
func (h *Health) IsAlive() bool {
	return h != nil && !h.Dead && h.Current > 0
}

// ApplyDamage subtracts evt.Amount. Dead targets and non-positive amounts
// are ignored.
func (h *Health) ApplyDamage(evt DamageEvent) {
	if h == nil || h.Dead || evt.Amount <= 0 {
		return
	}
	h.Current -= evt.Amount
	if h.Current < 0 {
		h.Current = 0
	}
	if h.OnDamage != nil {
		h.OnDamage(h, evt)
	}
	if h.Current <= 0 {
		h.Dead = true
		if h.OnDeath != nil {
			h.OnDeath(h, evt)
		}
	}
}

// Heal restores health up to Max.
func (h *Health) Heal(amount float64) {
	if h == nil || h.Dead || amount <= 0 {
		return
	}
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
}
