package repository

import (
	"context"
	"errors"

	"github.com/fennwick/practice-journal/internal/errs"
	"github.com/fennwick/practice-journal/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TemplatesRepository reads practice templates and their nested
// day/block/exercise trees.
type TemplatesRepository struct {
	pool *pgxpool.Pool
}

func NewTemplatesRepository(pool *pgxpool.Pool) *TemplatesRepository {
	return &TemplatesRepository{pool: pool}
}

// List returns active templates, optionally filtered by instrument.
// nil instrumentID means no filter.
func (r *TemplatesRepository) List(ctx context.Context, instrumentID *int64) ([]model.PracticeTemplate, error) {
	query := `
		SELECT id, instrument_id, name, days_count, description, is_active
		FROM practice_templates
		WHERE is_active = true`
	args := []any{}
	if instrumentID != nil {
		query += ` AND instrument_id = $1`
		args = append(args, *instrumentID)
	}
	query += ` ORDER BY id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	templates := []model.PracticeTemplate{}
	for rows.Next() {
		var t model.PracticeTemplate
		if err := rows.Scan(&t.ID, &t.InstrumentID, &t.Name, &t.DaysCount, &t.Description, &t.IsActive); err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

// GetWithDays returns a template with its fully materialized nested
// tree: days ordered by day_number, blocks and exercises by
// display_order.
func (r *TemplatesRepository) GetWithDays(ctx context.Context, id int64) (*model.PracticeTemplateWithDays, error) {
	var t model.PracticeTemplateWithDays
	err := r.pool.QueryRow(ctx, `
		SELECT id, instrument_id, name, days_count, description, is_active
		FROM practice_templates
		WHERE id = $1`, id).
		Scan(&t.ID, &t.InstrumentID, &t.Name, &t.DaysCount, &t.Description, &t.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewNotFoundError("Template not found", true, nil)
		}
		return nil, err
	}

	days, err := r.loadDays(ctx, id)
	if err != nil {
		return nil, err
	}
	t.PracticeDays = days

	return &t, nil
}

// GetDay returns the single day matching (templateID, dayNumber) with
// its nested blocks and exercises.
func (r *TemplatesRepository) GetDay(ctx context.Context, templateID int64, dayNumber int) (*model.PracticeDay, error) {
	var d model.PracticeDay
	err := r.pool.QueryRow(ctx, `
		SELECT id, template_id, day_number, title, warmup, scales, repertoire
		FROM practice_days
		WHERE template_id = $1 AND day_number = $2`, templateID, dayNumber).
		Scan(&d.ID, &d.TemplateID, &d.DayNumber, &d.Title, &d.Warmup, &d.Scales, &d.Repertoire)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewNotFoundError("Practice day not found", true, nil)
		}
		return nil, err
	}

	days := []model.PracticeDay{d}
	if err := r.attachBlocks(ctx, days); err != nil {
		return nil, err
	}
	return &days[0], nil
}

// Delete removes a template; days, blocks, and exercises go with it
// via foreign-key cascade. Practice logs are left untouched: they
// carry no constraint to the template. Returns a 404 error when the
// id does not exist.
func (r *TemplatesRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM practice_templates WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.NewNotFoundError("Template not found", true, nil)
	}
	return nil
}

// loadDays fetches all days of a template, ordered, with their blocks
// and exercises attached.
func (r *TemplatesRepository) loadDays(ctx context.Context, templateID int64) ([]model.PracticeDay, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, template_id, day_number, title, warmup, scales, repertoire
		FROM practice_days
		WHERE template_id = $1
		ORDER BY day_number`, templateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	days := []model.PracticeDay{}
	for rows.Next() {
		var d model.PracticeDay
		if err := rows.Scan(&d.ID, &d.TemplateID, &d.DayNumber, &d.Title, &d.Warmup, &d.Scales, &d.Repertoire); err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachBlocks(ctx, days); err != nil {
		return nil, err
	}
	return days, nil
}

// attachBlocks loads the exercise blocks (and their exercises) of the
// given days and stitches them in, preserving display order.
func (r *TemplatesRepository) attachBlocks(ctx context.Context, days []model.PracticeDay) error {
	if len(days) == 0 {
		return nil
	}

	dayIDs := make([]int64, len(days))
	dayIndex := make(map[int64]int, len(days))
	for i := range days {
		days[i].ExerciseBlocks = []model.ExerciseBlock{}
		dayIDs[i] = days[i].ID
		dayIndex[days[i].ID] = i
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, practice_day_id, block_type, display_order
		FROM exercise_blocks
		WHERE practice_day_id = ANY($1)
		ORDER BY practice_day_id, display_order`, dayIDs)
	if err != nil {
		return err
	}
	defer rows.Close()

	blocks := []model.ExerciseBlock{}
	for rows.Next() {
		var b model.ExerciseBlock
		if err := rows.Scan(&b.ID, &b.PracticeDayID, &b.BlockType, &b.DisplayOrder); err != nil {
			return err
		}
		b.Exercises = []model.Exercise{}
		blocks = append(blocks, b)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if err := r.attachExercises(ctx, blocks); err != nil {
		return err
	}

	for _, b := range blocks {
		i := dayIndex[b.PracticeDayID]
		days[i].ExerciseBlocks = append(days[i].ExerciseBlocks, b)
	}
	return nil
}

// attachExercises loads the exercises of the given blocks in display
// order and stitches them in.
func (r *TemplatesRepository) attachExercises(ctx context.Context, blocks []model.ExerciseBlock) error {
	if len(blocks) == 0 {
		return nil
	}

	blockIDs := make([]int64, len(blocks))
	blockIndex := make(map[int64]int, len(blocks))
	for i := range blocks {
		blockIDs[i] = blocks[i].ID
		blockIndex[blocks[i].ID] = i
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, block_id, exercise_text, display_order
		FROM exercises
		WHERE block_id = ANY($1)
		ORDER BY block_id, display_order`, blockIDs)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var e model.Exercise
		if err := rows.Scan(&e.ID, &e.BlockID, &e.ExerciseText, &e.DisplayOrder); err != nil {
			return err
		}
		i := blockIndex[e.BlockID]
		blocks[i].Exercises = append(blocks[i].Exercises, e)
	}
	return rows.Err()
}
