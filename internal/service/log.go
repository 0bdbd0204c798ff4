package service

import (
	"context"
	"time"

	"github.com/fennwick/practice-journal/internal/model"
)

// DefaultLogListLimit caps GET /logs when the client does not supply a
// limit.
const DefaultLogListLimit = 50

// LogStore is the data access surface the log service needs.
type LogStore interface {
	Create(ctx context.Context, payload model.PracticeLogCreate, createdAt time.Time) (*model.PracticeLog, error)
	List(ctx context.Context, templateID *int64, limit int) ([]model.PracticeLog, error)
	GetByID(ctx context.Context, id int64) (*model.PracticeLog, error)
}

// LogService records and reads practice logs.
//
// The creation timestamp comes from the injectable now function so
// tests control the clock.
type LogService struct {
	store LogStore
	now   func() time.Time
}

func NewLogService(store LogStore) *LogService {
	return &LogService{
		store: store,
		now:   time.Now,
	}
}

// WithClock replaces the service clock. Test hook.
func (s *LogService) WithClock(now func() time.Time) *LogService {
	s.now = now
	return s
}

// Create records one practice log and its details atomically.
// template_id and day_number are accepted as-is; they are loose
// references, never validated against the template.
func (s *LogService) Create(ctx context.Context, payload model.PracticeLogCreate) (*model.PracticeLog, error) {
	return s.store.Create(ctx, payload, s.now().UTC())
}

// List returns logs newest-first by practice date, optionally filtered
// by template. A nil limit falls back to DefaultLogListLimit; an
// explicit limit is passed through as-is, so 0 returns no rows.
func (s *LogService) List(ctx context.Context, templateID *int64, limit *int) ([]model.PracticeLog, error) {
	n := DefaultLogListLimit
	if limit != nil {
		n = *limit
	}
	return s.store.List(ctx, templateID, n)
}

// Get returns one log with its details.
func (s *LogService) Get(ctx context.Context, id int64) (*model.PracticeLog, error) {
	return s.store.GetByID(ctx, id)
}
