package service

import (
	"context"
	"testing"

	"github.com/fennwick/practice-journal/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockAnalyticsStore struct {
	sessions  int64
	minutes   int64
	dayCounts []repository.DayCount

	gotTemplateID *int64
}

func (m *mockAnalyticsStore) Totals(ctx context.Context, templateID *int64) (int64, int64, error) {
	m.gotTemplateID = templateID
	return m.sessions, m.minutes, nil
}

func (m *mockAnalyticsStore) SessionsByDay(ctx context.Context, templateID *int64) ([]repository.DayCount, error) {
	return m.dayCounts, nil
}

func TestAnalyticsSummaryEmpty(t *testing.T) {
	store := &mockAnalyticsStore{}
	svc := NewAnalyticsService(store)

	summary, err := svc.Summary(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, int64(0), summary.TotalSessions)
	assert.Equal(t, int64(0), summary.TotalMinutes)
	assert.Equal(t, float64(0), summary.AverageDuration)
	assert.NotNil(t, summary.SessionsByDay)
	assert.Empty(t, summary.SessionsByDay)
}

func TestAnalyticsSummaryAverageRounding(t *testing.T) {
	tests := []struct {
		name     string
		sessions int64
		minutes  int64
		want     float64
	}{
		{"exact", 2, 90, 45},
		{"half", 2, 91, 45.5},
		{"repeating third rounds down", 3, 100, 33.3},
		{"repeating two thirds rounds up", 3, 200, 66.7},
		{"single session", 1, 45, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockAnalyticsStore{sessions: tt.sessions, minutes: tt.minutes}
			svc := NewAnalyticsService(store)

			summary, err := svc.Summary(context.Background(), nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, summary.AverageDuration)
		})
	}
}

func TestAnalyticsSummarySessionsByDay(t *testing.T) {
	store := &mockAnalyticsStore{
		sessions: 5,
		minutes:  150,
		dayCounts: []repository.DayCount{
			{DayNumber: 1, Count: 3},
			{DayNumber: 7, Count: 1},
			{DayNumber: 14, Count: 1},
		},
	}
	svc := NewAnalyticsService(store)

	summary, err := svc.Summary(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, map[string]int64{"1": 3, "7": 1, "14": 1}, summary.SessionsByDay)
}

func TestAnalyticsSummaryPassesTemplateFilter(t *testing.T) {
	store := &mockAnalyticsStore{}
	svc := NewAnalyticsService(store)

	id := int64(42)
	_, err := svc.Summary(context.Background(), &id)
	require.NoError(t, err)

	require.NotNil(t, store.gotTemplateID)
	assert.Equal(t, int64(42), *store.gotTemplateID)
}
