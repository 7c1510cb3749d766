// Package combatlog stores combat events in sqlite through gorm so ranges
// can be inspected after a run.
package combatlog

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/milk9111/weaponhandling/combat"
)

const defaultBatch = 256

// Session is one recorded run.
type Session struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:127"`
	Seed      uint64
	StartedAt time.Time
}

// Record is one combat event.
type Record struct {
	ID        uint   `gorm:"primaryKey"`
	SessionID uint   `gorm:"index"`
	AtMillis  int64  `gorm:"index"`
	Type      string `gorm:"size:32;index"`
	WeaponID  string `gorm:"size:36;index"`
	Causer    uint64
	Shooter   uint64
	Target    uint64
	Damage    float64
	Pellet    int
	X, Y, Z   float64
}

// Open connects to the sqlite file at path. An empty path opens a private
// in-memory database.
func Open(path string) (*gorm.DB, error) {
	dsn := path
	if dsn == "" {
		dsn = fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		CreateBatchSize:        defaultBatch,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("combatlog: open %q: %w", path, err)
	}
	return db, nil
}

type Options struct {
	Name string
	Seed uint64
	// Clock stamps records with simulation time.
	Clock func() time.Duration
	// Batch is how many records are buffered before a write.
	Batch int
	Log   zerolog.Logger
}

// Recorder buffers events and writes them in batches. It is driven from the
// simulation goroutine and is not safe for concurrent use.
type Recorder struct {
	db      *gorm.DB
	session Session
	clock   func() time.Duration
	batch   int
	pending []Record
	err     error
	log     zerolog.Logger
}

func New(db *gorm.DB, opts Options) (*Recorder, error) {
	if err := db.AutoMigrate(&Session{}, &Record{}); err != nil {
		return nil, fmt.Errorf("combatlog: migrate: %w", err)
	}
	session := Session{Name: opts.Name, Seed: opts.Seed, StartedAt: time.Now().UTC()}
	if err := db.Create(&session).Error; err != nil {
		return nil, fmt.Errorf("combatlog: create session: %w", err)
	}
	batch := opts.Batch
	if batch <= 0 {
		batch = defaultBatch
	}
	return &Recorder{
		db:      db,
		session: session,
		clock:   opts.Clock,
		batch:   batch,
		log:     opts.Log,
	}, nil
}

func (r *Recorder) SessionID() uint {
	return r.session.ID
}

// Attach subscribes the recorder to e.
func (r *Recorder) Attach(e *combat.Emitter) {
	e.Subscribe(r.Handle)
}

// Handle buffers evt and writes the buffer once it is full. Write failures
// are logged and kept for Flush to report.
func (r *Recorder) Handle(evt combat.Event) {
	rec := Record{
		SessionID: r.session.ID,
		Type:      string(evt.Type),
		WeaponID:  evt.WeaponID,
		Causer:    uint64(evt.Causer),
		Shooter:   uint64(evt.Shooter),
		Target:    uint64(evt.Target),
		Damage:    evt.Damage,
		Pellet:    evt.Pellet,
		X:         evt.Point.X,
		Y:         evt.Point.Y,
		Z:         evt.Point.Z,
	}
	if r.clock != nil {
		rec.AtMillis = r.clock().Milliseconds()
	}
	r.pending = append(r.pending, rec)
	if len(r.pending) >= r.batch {
		if err := r.write(); err != nil {
			r.log.Error().Err(err).Msg("combat log write failed")
		}
	}
}

func (r *Recorder) write() error {
	if len(r.pending) == 0 {
		return nil
	}
	if err := r.db.CreateInBatches(r.pending, r.batch).Error; err != nil {
		r.err = fmt.Errorf("combatlog: write %d records: %w", len(r.pending), err)
		return r.err
	}
	r.log.Debug().Int("records", len(r.pending)).Msg("combat log written")
	r.pending = r.pending[:0]
	return nil
}

// Flush writes buffered records and returns the first write error seen.
func (r *Recorder) Flush() error {
	if err := r.write(); err != nil {
		return err
	}
	return r.err
}

// Close flushes and closes the database.
func (r *Recorder) Close() error {
	flushErr := r.Flush()
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.Close(); err != nil {
		return err
	}
	return flushErr
}
