package service

import (
	"context"
	"testing"

	"github.com/fennwick/practice-journal/internal/errs"
	"github.com/fennwick/practice-journal/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockTemplateStore struct {
	day *model.PracticeDay
	err error

	gotTemplateID int64
	gotDayNumber  int
	deletedID     int64
}

func (m *mockTemplateStore) List(ctx context.Context, instrumentID *int64) ([]model.PracticeTemplate, error) {
	return nil, m.err
}

func (m *mockTemplateStore) GetWithDays(ctx context.Context, id int64) (*model.PracticeTemplateWithDays, error) {
	return nil, m.err
}

func (m *mockTemplateStore) GetDay(ctx context.Context, templateID int64, dayNumber int) (*model.PracticeDay, error) {
	m.gotTemplateID = templateID
	m.gotDayNumber = dayNumber
	return m.day, m.err
}

func (m *mockTemplateStore) Delete(ctx context.Context, id int64) error {
	m.deletedID = id
	return m.err
}

func TestTemplateGetDayLookup(t *testing.T) {
	store := &mockTemplateStore{
		day: &model.PracticeDay{ID: 5, TemplateID: 1, DayNumber: 5},
	}
	svc := NewTemplateService(store)

	day, err := svc.GetDay(context.Background(), 1, 5)
	require.NoError(t, err)

	assert.Equal(t, int64(1), store.gotTemplateID)
	assert.Equal(t, 5, store.gotDayNumber)
	assert.Equal(t, int64(5), day.ID)
}

func TestTemplateGetDayMissing(t *testing.T) {
	store := &mockTemplateStore{
		err: errs.NewNotFoundError("Practice day not found", true, nil),
	}
	svc := NewTemplateService(store)

	_, err := svc.GetDay(context.Background(), 1, 99)
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, "Practice day not found", httpErr.Message)
}

func TestTemplateDeletePassesID(t *testing.T) {
	store := &mockTemplateStore{}
	svc := NewTemplateService(store)

	require.NoError(t, svc.Delete(context.Background(), 7))
	assert.Equal(t, int64(7), store.deletedID)
}
