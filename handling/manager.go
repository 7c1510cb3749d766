// Package handling lets a character pick up, drop, and fire one weapon at
// a time.
package handling

import (
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/milk9111/weaponhandling/common"
	"github.com/milk9111/weaponhandling/ecs"
	"github.com/milk9111/weaponhandling/weapon"
)

// Finder lists unowned weapons around a point, nearest first.
type Finder interface {
	WeaponsInRadius(center common.Vec3, radius float64, exclude ...ecs.Entity) []*weapon.Weapon
}

type Options struct {
	Socket        string
	PickupRadius  float64
	AttackMontage string
}

const (
	DefaultSocket       = "hand_r"
	DefaultPickupRadius = 150.0
)

// Manager routes equip, unequip and attack input for one character.
type Manager struct {
	opts    Options
	finder  Finder
	effects weapon.Effects
	log     zerolog.Logger

	owner     weapon.Character
	active    atomic.Pointer[weapon.Weapon]
	equipping atomic.Bool

	onReady []func(*Manager)
	onEquip []func(*weapon.Weapon)
	onDrop  []func(*weapon.Weapon)
}

func NewManager(finder Finder, effects weapon.Effects, log zerolog.Logger, opts Options) *Manager {
	if opts.Socket == "" {
		opts.Socket = DefaultSocket
	}
	if opts.PickupRadius <= 0 {
		opts.PickupRadius = DefaultPickupRadius
	}
	return &Manager{opts: opts, finder: finder, effects: effects, log: log}
}

// OnReady registers fn to run when Initialize completes.
func (m *Manager) OnReady(fn func(*Manager)) {
	if fn != nil {
		m.onReady = append(m.onReady, fn)
	}
}

// OnEquip registers fn to run after a weapon is claimed.
func (m *Manager) OnEquip(fn func(*weapon.Weapon)) {
	if fn != nil {
		m.onEquip = append(m.onEquip, fn)
	}
}

// OnDrop registers fn to run after a weapon is released.
func (m *Manager) OnDrop(fn func(*weapon.Weapon)) {
	if fn != nil {
		m.onDrop = append(m.onDrop, fn)
	}
}

// Initialize binds the manager to its character and notifies ready
// observers synchronously.
func (m *Manager) Initialize(owner weapon.Character) {
	m.owner = owner
	if owner == nil {
		m.log.Warn().Msg("weapon handling initialized without a character")
		return
	}
	m.log = m.log.With().Stringer("owner", owner.Entity()).Logger()
	for _, fn := range m.onReady {
		fn(m)
	}
}

func (m *Manager) Owner() weapon.Character {
	return m.owner
}

// ActiveWeapon returns the equipped weapon or nil.
func (m *Manager) ActiveWeapon() *weapon.Weapon {
	return m.active.Load()
}

// Equip claims the nearest weapon in range, dropping the current one first.
// With nothing in range it drops the current weapon.
func (m *Manager) Equip() {
	if !m.equipping.CompareAndSwap(false, true) {
		m.log.Warn().Msg("equip requested while already equipping")
		return
	}
	defer m.equipping.Store(false)

	if m.owner == nil {
		m.log.Warn().Msg("equip without a character")
		return
	}
	if m.finder == nil {
		m.log.Warn().Msg("equip without a weapon finder")
		return
	}

	exclude := []ecs.Entity{m.owner.Entity()}
	if current := m.active.Load(); current != nil {
		exclude = append(exclude, current.Entity())
	}
	var next *weapon.Weapon
	for _, w := range m.finder.WeaponsInRadius(m.owner.Position(), m.opts.PickupRadius, exclude...) {
		if w != nil && !w.Destroyed() && w.Owner() == nil {
			next = w
			break
		}
	}

	m.drop()
	if next != nil {
		m.claim(next)
	}
}

// Unequip drops the active weapon, if any.
func (m *Manager) Unequip() {
	m.drop()
}

// Attack fires the active weapon for the owner's controller.
func (m *Manager) Attack() bool {
	w := m.active.Load()
	if w == nil {
		m.log.Warn().Msg("attack without an equipped weapon")
		return false
	}
	if m.owner == nil {
		m.log.Warn().Msg("attack without a character")
		return false
	}
	if m.opts.AttackMontage != "" && m.effects != nil {
		m.effects.PlayMontage(m.opts.AttackMontage, m.owner.Entity())
	}
	return w.Attack(m.owner.Controller())
}

func (m *Manager) claim(w *weapon.Weapon) {
	ownerEntity := m.owner.Entity()
	w.SetOwner(m.owner)
	w.AddIgnoredActors(ownerEntity, w.Entity())
	if body := w.Body(); body != nil {
		body.SetCollision(weapon.CollisionNone)
		body.AttachTo(ownerEntity, m.opts.Socket)
	} else {
		m.log.Warn().Str("weapon", w.ID()).Msg("equipped weapon has no body to attach")
	}
	m.active.Store(w)
	m.log.Info().Str("weapon", w.ID()).Str("name", w.Config().Name).Msg("weapon equipped")
	for _, fn := range m.onEquip {
		fn(w)
	}
}

func (m *Manager) drop() {
	w := m.active.Swap(nil)
	if w == nil {
		return
	}
	w.ReleaseToWorld()
	m.log.Info().Str("weapon", w.ID()).Str("name", w.Config().Name).Msg("weapon dropped")
	for _, fn := range m.onDrop {
		fn(w)
	}
}
