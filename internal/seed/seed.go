// Package seed loads the built-in sample content: a Violin instrument
// and its 14-day intermediate practice rotation.
//
// Seeding is idempotent at the instrument level. If an instrument named
// "Violin" already exists the run is skipped entirely, so re-running the
// seeder against a populated database is safe. All inserts happen in a
// single transaction.
package seed

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Store is the write surface the seeder needs. The production
// implementation wraps one pgx transaction.
type Store interface {
	InstrumentExists(ctx context.Context, name string) (bool, error)
	InsertInstrument(ctx context.Context, name, description string, createdAt time.Time) (int64, error)
	InsertTemplate(ctx context.Context, instrumentID int64, name string, daysCount int, description string) (int64, error)
	InsertDay(ctx context.Context, templateID int64, dayNumber int, title, warmup, scales, repertoire string) (int64, error)
	InsertBlock(ctx context.Context, dayID int64, blockType string, displayOrder int) (int64, error)
	InsertExercise(ctx context.Context, blockID int64, text string, displayOrder int) error
}

// Seeder populates the database with the sample violin rotation.
type Seeder struct {
	pool *pgxpool.Pool
	log  *zerolog.Logger
	now  func() time.Time
}

func New(pool *pgxpool.Pool, log *zerolog.Logger) *Seeder {
	return &Seeder{
		pool: pool,
		log:  log,
		now:  time.Now,
	}
}

// WithClock replaces the seeder clock. Test hook.
func (s *Seeder) WithClock(now func() time.Time) *Seeder {
	s.now = now
	return s
}

// Run seeds the sample data inside one transaction. A no-op when the
// Violin instrument is already present.
func (s *Seeder) Run(ctx context.Context) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to begin seed transaction")
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	seeded, err := s.seed(ctx, &txStore{tx: tx})
	if err != nil {
		return err
	}
	if !seeded {
		s.log.Info().Msg("seed data already present, skipping")
		return nil
	}

	if err := tx.Commit(ctx); err != nil {
		return errors.Wrap(err, "failed to commit seed transaction")
	}

	s.log.Info().
		Int("days", len(rotation)).
		Msg("seeded violin rotation")
	return nil
}

// seed writes the fixture through st. Returns false without writing
// anything when the instrument already exists.
func (s *Seeder) seed(ctx context.Context, st Store) (bool, error) {
	exists, err := st.InstrumentExists(ctx, "Violin")
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	instrumentID, err := st.InsertInstrument(ctx, "Violin",
		"String instrument typically played with a bow", s.now().UTC())
	if err != nil {
		return false, err
	}

	templateID, err := st.InsertTemplate(ctx, instrumentID,
		"Intermediate Violin - 14-Day Rotation", len(rotation),
		"A comprehensive 14-day rotation covering tone, shifting, articulation, double stops, and bow techniques")
	if err != nil {
		return false, err
	}

	for i, day := range rotation {
		dayID, err := st.InsertDay(ctx, templateID, i+1,
			day.Title, day.Warmup, day.Scales, day.Repertoire)
		if err != nil {
			return false, err
		}

		for order, block := range []struct {
			blockType string
			exercises []string
		}{
			{"blockA", day.BlockA},
			{"blockB", day.BlockB},
		} {
			blockID, err := st.InsertBlock(ctx, dayID, block.blockType, order+1)
			if err != nil {
				return false, err
			}
			for j, text := range block.exercises {
				if err := st.InsertExercise(ctx, blockID, text, j+1); err != nil {
					return false, err
				}
			}
		}
	}

	return true, nil
}

// txStore implements Store over a single pgx transaction.
type txStore struct {
	tx pgx.Tx
}

func (s *txStore) InstrumentExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := s.tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM instruments WHERE name = $1)`,
		name,
	).Scan(&exists)
	if err != nil {
		return false, errors.Wrap(err, "failed to check instrument existence")
	}
	return exists, nil
}

func (s *txStore) InsertInstrument(ctx context.Context, name, description string, createdAt time.Time) (int64, error) {
	var id int64
	err := s.tx.QueryRow(ctx,
		`INSERT INTO instruments (name, description, created_at)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		name, description, createdAt,
	).Scan(&id)
	if err != nil {
		return 0, errors.Wrap(err, "failed to insert instrument")
	}
	return id, nil
}

func (s *txStore) InsertTemplate(ctx context.Context, instrumentID int64, name string, daysCount int, description string) (int64, error) {
	var id int64
	err := s.tx.QueryRow(ctx,
		`INSERT INTO practice_templates (instrument_id, name, days_count, description, is_active)
		 VALUES ($1, $2, $3, $4, true)
		 RETURNING id`,
		instrumentID, name, daysCount, description,
	).Scan(&id)
	if err != nil {
		return 0, errors.Wrap(err, "failed to insert practice template")
	}
	return id, nil
}

func (s *txStore) InsertDay(ctx context.Context, templateID int64, dayNumber int, title, warmup, scales, repertoire string) (int64, error) {
	var id int64
	err := s.tx.QueryRow(ctx,
		`INSERT INTO practice_days (template_id, day_number, title, warmup, scales, repertoire)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		templateID, dayNumber, title, warmup, scales, repertoire,
	).Scan(&id)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to insert practice day %d", dayNumber)
	}
	return id, nil
}

func (s *txStore) InsertBlock(ctx context.Context, dayID int64, blockType string, displayOrder int) (int64, error) {
	var id int64
	err := s.tx.QueryRow(ctx,
		`INSERT INTO exercise_blocks (practice_day_id, block_type, display_order)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		dayID, blockType, displayOrder,
	).Scan(&id)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to insert exercise block %s", blockType)
	}
	return id, nil
}

func (s *txStore) InsertExercise(ctx context.Context, blockID int64, text string, displayOrder int) error {
	_, err := s.tx.Exec(ctx,
		`INSERT INTO exercises (block_id, exercise_text, display_order)
		 VALUES ($1, $2, $3)`,
		blockID, text, displayOrder,
	)
	return errors.Wrap(err, "failed to insert exercise")
}
