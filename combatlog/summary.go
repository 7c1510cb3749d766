package combatlog

import (
	"fmt"

	"github.com/milk9111/weaponhandling/combat"
)

// Summary totals one session.
type Summary struct {
	Shots   int64
	Pellets int64
	Hits    int64
	Deaths  int64
	Damage  float64
	// DamageByWeapon maps weapon ids to the damage they applied.
	DamageByWeapon map[string]float64
}

type typeRow struct {
	Type   string
	Count  int64
	Damage float64
}

type weaponRow struct {
	WeaponID string
	Damage   float64
}

// Summary flushes and aggregates the recorder's session.
func (r *Recorder) Summary() (Summary, error) {
	if err := r.Flush(); err != nil {
		return Summary{}, err
	}

	var rows []typeRow
	err := r.db.Model(&Record{}).
		Select("type, count(*) as count, coalesce(sum(damage), 0) as damage").
		Where("session_id = ?", r.session.ID).
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return Summary{}, fmt.Errorf("combatlog: summarize: %w", err)
	}

	s := Summary{DamageByWeapon: make(map[string]float64)}
	for _, row := range rows {
		switch combat.EventType(row.Type) {
		case combat.EventShot:
			s.Shots = row.Count
		case combat.EventPellet:
			s.Pellets = row.Count
		case combat.EventHit:
			s.Hits = row.Count
		case combat.EventDeath:
			s.Deaths = row.Count
		case combat.EventDamageApplied:
			s.Damage = row.Damage
		}
	}

	var weapons []weaponRow
	err = r.db.Model(&Record{}).
		Select("weapon_id, coalesce(sum(damage), 0) as damage").
		Where("session_id = ? AND type = ?", r.session.ID, string(combat.EventDamageApplied)).
		Group("weapon_id").
		Scan(&weapons).Error
	if err != nil {
		return Summary{}, fmt.Errorf("combatlog: summarize weapons: %w", err)
	}
	for _, w := range weapons {
		s.DamageByWeapon[w.WeaponID] = w.Damage
	}
	return s, nil
}

// Events returns the session's records in the order they were emitted.
func (r *Recorder) Events() ([]Record, error) {
	if err := r.Flush(); err != nil {
		return nil, err
	}
	var out []Record
	if err := r.db.Where("session_id = ?", r.session.ID).Order("id").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("combatlog: list events: %w", err)
	}
	return out, nil
}
