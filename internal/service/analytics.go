package service

import (
	"context"
	"math"
	"strconv"

	"github.com/fennwick/practice-journal/internal/model"
	"github.com/fennwick/practice-journal/internal/repository"
)

// AnalyticsStore is the data access surface the analytics service
// needs.
type AnalyticsStore interface {
	Totals(ctx context.Context, templateID *int64) (sessions int64, minutes int64, err error)
	SessionsByDay(ctx context.Context, templateID *int64) ([]repository.DayCount, error)
}

// AnalyticsService computes aggregate statistics over practice logs.
type AnalyticsService struct {
	store AnalyticsStore
}

func NewAnalyticsService(store AnalyticsStore) *AnalyticsService {
	return &AnalyticsService{store: store}
}

// Summary computes totals, the average session duration rounded to one
// decimal place (0 when there are no sessions), and per-day session
// counts. Days with zero logs are absent from the map.
func (s *AnalyticsService) Summary(ctx context.Context, templateID *int64) (*model.AnalyticsSummary, error) {
	sessions, minutes, err := s.store.Totals(ctx, templateID)
	if err != nil {
		return nil, err
	}

	var average float64
	if sessions > 0 {
		average = math.Round(float64(minutes)/float64(sessions)*10) / 10
	}

	dayCounts, err := s.store.SessionsByDay(ctx, templateID)
	if err != nil {
		return nil, err
	}

	sessionsByDay := map[string]int64{}
	for _, dc := range dayCounts {
		sessionsByDay[strconv.Itoa(dc.DayNumber)] = dc.Count
	}

	return &model.AnalyticsSummary{
		TotalSessions:   sessions,
		TotalMinutes:    minutes,
		AverageDuration: average,
		SessionsByDay:   sessionsByDay,
	}, nil
}
