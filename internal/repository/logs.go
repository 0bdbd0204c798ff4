package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/fennwick/practice-journal/internal/errs"
	"github.com/fennwick/practice-journal/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LogsRepository persists and reads practice logs with their details.
type LogsRepository struct {
	pool *pgxpool.Pool
}

func NewLogsRepository(pool *pgxpool.Pool) *LogsRepository {
	return &LogsRepository{pool: pool}
}

// Create inserts one practice log and its detail rows in a single
// transaction, so partial writes are never visible to other readers.
// The created log is returned with details in submitted order.
func (r *LogsRepository) Create(ctx context.Context, payload model.PracticeLogCreate, createdAt time.Time) (*model.PracticeLog, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	// Rollback is a no-op after a successful commit.
	defer tx.Rollback(ctx)

	log := &model.PracticeLog{
		TemplateID:      *payload.TemplateID,
		DayNumber:       *payload.DayNumber,
		PracticeDate:    payload.PracticeDate,
		DurationMinutes: *payload.DurationMinutes,
		Notes:           payload.Notes,
		LogDetails:      []model.PracticeLogDetail{},
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO practice_logs (template_id, day_number, practice_date, duration_minutes, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		log.TemplateID, log.DayNumber, payload.PracticeDate.Time,
		log.DurationMinutes, payload.Notes, createdAt).
		Scan(&log.ID, &log.CreatedAt)
	if err != nil {
		return nil, err
	}

	for _, detail := range payload.LogDetails {
		d := model.PracticeLogDetail{
			LogID:       log.ID,
			SectionType: detail.SectionType,
			Content:     detail.Content,
		}
		err = tx.QueryRow(ctx, `
			INSERT INTO practice_log_details (log_id, section_type, content)
			VALUES ($1, $2, $3)
			RETURNING id`,
			d.LogID, d.SectionType, d.Content).
			Scan(&d.ID)
		if err != nil {
			return nil, err
		}
		log.LogDetails = append(log.LogDetails, d)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return log, nil
}

// List returns logs ordered by practice_date descending, capped at
// limit rows, each with its details attached. nil templateID means no
// filter.
func (r *LogsRepository) List(ctx context.Context, templateID *int64, limit int) ([]model.PracticeLog, error) {
	query := `
		SELECT id, template_id, day_number, practice_date, duration_minutes, notes, created_at
		FROM practice_logs`
	args := []any{}
	if templateID != nil {
		query += ` WHERE template_id = $1`
		args = append(args, *templateID)
	}
	query += ` ORDER BY practice_date DESC LIMIT $` + strconv.Itoa(len(args)+1)
	args = append(args, limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := []model.PracticeLog{}
	for rows.Next() {
		log, err := scanLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, *log)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachDetails(ctx, logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// GetByID returns a single log with details or a 404 error when
// absent.
func (r *LogsRepository) GetByID(ctx context.Context, id int64) (*model.PracticeLog, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, template_id, day_number, practice_date, duration_minutes, notes, created_at
		FROM practice_logs
		WHERE id = $1`, id)

	log, err := scanLog(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewNotFoundError("Practice log not found", true, nil)
		}
		return nil, err
	}

	logs := []model.PracticeLog{*log}
	if err := r.attachDetails(ctx, logs); err != nil {
		return nil, err
	}
	return &logs[0], nil
}

// attachDetails loads the details of the given logs in insertion order
// and stitches them in.
func (r *LogsRepository) attachDetails(ctx context.Context, logs []model.PracticeLog) error {
	if len(logs) == 0 {
		return nil
	}

	logIDs := make([]int64, len(logs))
	logIndex := make(map[int64]int, len(logs))
	for i := range logs {
		logs[i].LogDetails = []model.PracticeLogDetail{}
		logIDs[i] = logs[i].ID
		logIndex[logs[i].ID] = i
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, log_id, section_type, content
		FROM practice_log_details
		WHERE log_id = ANY($1)
		ORDER BY id`, logIDs)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var d model.PracticeLogDetail
		if err := rows.Scan(&d.ID, &d.LogID, &d.SectionType, &d.Content); err != nil {
			return err
		}
		i := logIndex[d.LogID]
		logs[i].LogDetails = append(logs[i].LogDetails, d)
	}
	return rows.Err()
}

// scanLog scans one practice_logs row, converting the DATE column into
// a model.Date.
func scanLog(row pgx.Row) (*model.PracticeLog, error) {
	var log model.PracticeLog
	var practiceDate time.Time
	err := row.Scan(&log.ID, &log.TemplateID, &log.DayNumber, &practiceDate,
		&log.DurationMinutes, &log.Notes, &log.CreatedAt)
	if err != nil {
		return nil, err
	}
	log.PracticeDate = model.DateOf(practiceDate)
	return &log, nil
}
