package service

import (
	"context"
	"testing"
	"time"

	"github.com/fennwick/practice-journal/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockLogStore struct {
	gotCreatedAt  time.Time
	gotLimit      int
	gotTemplateID *int64
}

func (m *mockLogStore) Create(ctx context.Context, payload model.PracticeLogCreate, createdAt time.Time) (*model.PracticeLog, error) {
	m.gotCreatedAt = createdAt
	return &model.PracticeLog{
		ID:              1,
		TemplateID:      *payload.TemplateID,
		DayNumber:       *payload.DayNumber,
		PracticeDate:    payload.PracticeDate,
		DurationMinutes: *payload.DurationMinutes,
		CreatedAt:       createdAt,
		LogDetails:      []model.PracticeLogDetail{},
	}, nil
}

func (m *mockLogStore) List(ctx context.Context, templateID *int64, limit int) ([]model.PracticeLog, error) {
	m.gotTemplateID = templateID
	m.gotLimit = limit
	return []model.PracticeLog{}, nil
}

func (m *mockLogStore) GetByID(ctx context.Context, id int64) (*model.PracticeLog, error) {
	return &model.PracticeLog{ID: id}, nil
}

func int64Ptr(v int64) *int64 { return &v }
func intPtr(v int) *int       { return &v }

func TestLogCreateUsesInjectedClock(t *testing.T) {
	store := &mockLogStore{}
	fixed := time.Date(2025, time.March, 10, 14, 30, 0, 0, time.FixedZone("CET", 3600))

	svc := NewLogService(store).WithClock(func() time.Time { return fixed })

	log, err := svc.Create(context.Background(), model.PracticeLogCreate{
		TemplateID:      int64Ptr(1),
		DayNumber:       intPtr(3),
		PracticeDate:    model.NewDate(2025, time.March, 10),
		DurationMinutes: intPtr(45),
	})
	require.NoError(t, err)

	assert.Equal(t, fixed.UTC(), store.gotCreatedAt)
	assert.Equal(t, fixed.UTC(), log.CreatedAt)
}

func TestLogListLimitDefaults(t *testing.T) {
	tests := []struct {
		name  string
		limit *int
		want  int
	}{
		{"absent falls back to default", nil, DefaultLogListLimit},
		{"explicit zero passed through", intPtr(0), 0},
		{"explicit limit kept", intPtr(2), 2},
		{"large limit kept", intPtr(500), 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockLogStore{}
			svc := NewLogService(store)

			_, err := svc.List(context.Background(), nil, tt.limit)
			require.NoError(t, err)
			assert.Equal(t, tt.want, store.gotLimit)
		})
	}
}

func TestLogListPassesTemplateFilter(t *testing.T) {
	store := &mockLogStore{}
	svc := NewLogService(store)

	id := int64(7)
	_, err := svc.List(context.Background(), &id, intPtr(10))
	require.NoError(t, err)

	require.NotNil(t, store.gotTemplateID)
	assert.Equal(t, int64(7), *store.gotTemplateID)
}
