package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DayCount is the number of logged sessions for one day number.
type DayCount struct {
	DayNumber int
	Count     int64
}

// AnalyticsRepository computes aggregates over practice logs.
type AnalyticsRepository struct {
	pool *pgxpool.Pool
}

func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepository {
	return &AnalyticsRepository{pool: pool}
}

// Totals returns the count of matching logs and the sum of their
// durations in minutes (0 when there are none). nil templateID means
// no filter.
func (r *AnalyticsRepository) Totals(ctx context.Context, templateID *int64) (sessions int64, minutes int64, err error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(duration_minutes), 0)
		FROM practice_logs`
	args := []any{}
	if templateID != nil {
		query += ` WHERE template_id = $1`
		args = append(args, *templateID)
	}

	err = r.pool.QueryRow(ctx, query, args...).Scan(&sessions, &minutes)
	return sessions, minutes, err
}

// SessionsByDay returns per-day-number log counts, restricted to the
// same optional template filter. Days with zero logs do not appear.
func (r *AnalyticsRepository) SessionsByDay(ctx context.Context, templateID *int64) ([]DayCount, error) {
	query := `
		SELECT day_number, COUNT(id)
		FROM practice_logs`
	args := []any{}
	if templateID != nil {
		query += ` WHERE template_id = $1`
		args = append(args, *templateID)
	}
	query += ` GROUP BY day_number`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := []DayCount{}
	for rows.Next() {
		var dc DayCount
		if err := rows.Scan(&dc.DayNumber, &dc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, dc)
	}
	return counts, rows.Err()
}
