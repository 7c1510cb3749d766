package ecs

import "time"

// System advances part of the world by dt.
type System interface {
	Update(w *World, dt time.Duration)
}

// SystemFunc adapts a function to System.
type SystemFunc func(w *World, dt time.Duration)

func (f SystemFunc) Update(w *World, dt time.Duration) {
	f(w, dt)
}

// Scheduler runs systems in registration order.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler) Update(w *World, dt time.Duration) {
	for _, system := range s.systems {
		system.Update(w, dt)
	}
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
