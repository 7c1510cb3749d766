package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/milk9111/weaponhandling/combat"
	"github.com/milk9111/weaponhandling/combatlog"
	"github.com/milk9111/weaponhandling/config"
	"github.com/milk9111/weaponhandling/handling"
	"github.com/milk9111/weaponhandling/logging"
	"github.com/milk9111/weaponhandling/prefabs"
	"github.com/milk9111/weaponhandling/sim"
	"github.com/milk9111/weaponhandling/telemetry"
)

func main() {
	configDir := flag.String("config", ".", "directory holding "+config.FileName)
	scenario := flag.String("scenario", "lane.yaml", "range file in prefabs/ranges/")
	watch := flag.Bool("watch", false, "reload weapon prefabs and damage scripts while running")
	realtime := flag.Bool("realtime", false, "sleep one tick per tick instead of running flat out")
	flag.Parse()

	if err := run(*configDir, *scenario, *watch, *realtime); err != nil {
		fmt.Fprintln(os.Stderr, "rangesim:", err)
		os.Exit(1)
	}
}

func run(configDir, scenario string, watch, realtime bool) error {
	settings, err := config.Load(configDir)
	if err != nil {
		return err
	}

	opts := logging.Options{Level: settings.LogLevel}
	if settings.LogFile != "" {
		f, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		opts.File = f
	}
	log, err := logging.New(opts)
	if err != nil {
		return err
	}

	lib := prefabs.Library{Dir: settings.PrefabsDir}
	spec, err := lib.LoadRange(scenario)
	if err != nil {
		return err
	}
	if spec.Tick == 0 {
		spec.Tick = settings.Tick
	}

	var r *sim.Range
	events := &combat.Emitter{}

	var recorder *combatlog.Recorder
	if settings.CombatLog.Enabled {
		db, err := combatlog.Open(settings.CombatLog.Path)
		if err != nil {
			return err
		}
		recorder, err = combatlog.New(db, combatlog.Options{
			Name: spec.Name,
			Seed: spec.Seed,
			Clock: func() time.Duration {
				if r == nil {
					return 0
				}
				return r.World.Elapsed()
			},
			Log: logging.Component(log, "combatlog"),
		})
		if err != nil {
			return err
		}
		defer func() {
			if err := recorder.Close(); err != nil {
				log.Error().Err(err).Msg("closing combat log")
			}
		}()
		recorder.Attach(events)
	}
	if settings.Telemetry.Enabled {
		metricsOut := io.Writer(os.Stderr)
		if settings.Telemetry.File != "" {
			f, err := os.OpenFile(settings.Telemetry.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if err != nil {
				return fmt.Errorf("open metrics file: %w", err)
			}
			defer f.Close()
			metricsOut = f
		}
		provider, err := telemetry.NewProvider(telemetry.Config{
			Enabled:     true,
			ServiceName: settings.Telemetry.ServiceName,
			Writer:      metricsOut,
			Interval:    settings.Telemetry.Interval,
		})
		if err != nil {
			return err
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := provider.Shutdown(ctx); err != nil {
				log.Error().Err(err).Msg("flushing metrics")
			}
		}()
		instruments, err := telemetry.New(provider.Meter())
		if err != nil {
			return err
		}
		instruments.Attach(events)
	}

	r, err = sim.Build(spec, sim.Options{
		Library: lib,
		Log:     log,
		Gravity: settings.Physics.Gravity,
		Handling: handling.Options{
			Socket:        settings.Handling.Socket,
			PickupRadius:  settings.Handling.PickupRadius,
			AttackMontage: settings.Handling.AttackMontage,
		},
		Events: events,
	})
	if err != nil {
		return err
	}
	defer r.Close()

	if watch {
		w, err := lib.Watch()
		if err != nil {
			log.Warn().Err(err).Str("dir", lib.Dir).Msg("hot reload disabled")
		} else {
			defer w.Close()
			r.OnTick(func() { drain(r, w, log) })
		}
	}
	if realtime {
		r.OnTick(func() { time.Sleep(spec.Tick) })
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rep, err := r.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info().
		Str("range", rep.Name).
		Dur("elapsed", rep.Elapsed).
		Int("pulls", rep.Pulls).
		Int("shots", rep.Shots).
		Int("pellets", rep.Pellets).
		Int("hits", rep.Hits).
		Float64("damage", rep.Damage).
		Strs("kills", rep.Kills).
		Strs("equipped", rep.Equipped).
		Msg("range finished")

	if recorder != nil {
		s, err := recorder.Summary()
		if err != nil {
			return err
		}
		log.Info().
			Uint("session", recorder.SessionID()).
			Int64("shots", s.Shots).
			Int64("deaths", s.Deaths).
			Float64("damage", s.Damage).
			Msg("combat log written")
	}
	return nil
}

// drain applies every pending prefab change without blocking the tick.
func drain(r *sim.Range, w *prefabs.Watcher, log zerolog.Logger) {
	for {
		select {
		case c, ok := <-w.Events:
			if !ok {
				return
			}
			log.Info().Str("file", c.Path).Stringer("kind", c.Kind).Msg("prefab changed")
			if err := r.Reload(c); err != nil {
				log.Warn().Err(err).Msg("keeping previous settings")
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Warn().Err(err).Msg("prefab watcher")
		default:
			return
		}
	}
}
