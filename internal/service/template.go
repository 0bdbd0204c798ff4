package service

import (
	"context"

	"github.com/fennwick/practice-journal/internal/model"
)

// TemplateStore is the data access surface the template service needs.
type TemplateStore interface {
	List(ctx context.Context, instrumentID *int64) ([]model.PracticeTemplate, error)
	GetWithDays(ctx context.Context, id int64) (*model.PracticeTemplateWithDays, error)
	GetDay(ctx context.Context, templateID int64, dayNumber int) (*model.PracticeDay, error)
	Delete(ctx context.Context, id int64) error
}

// TemplateService serves practice template reads and the
// operator-level delete.
type TemplateService struct {
	store TemplateStore
}

func NewTemplateService(store TemplateStore) *TemplateService {
	return &TemplateService{store: store}
}

// List returns active templates, optionally filtered by instrument.
func (s *TemplateService) List(ctx context.Context, instrumentID *int64) ([]model.PracticeTemplate, error) {
	return s.store.List(ctx, instrumentID)
}

// Get returns a template with its full nested tree.
func (s *TemplateService) Get(ctx context.Context, id int64) (*model.PracticeTemplateWithDays, error) {
	return s.store.GetWithDays(ctx, id)
}

// GetDay returns one day of a template with its nested tree.
func (s *TemplateService) GetDay(ctx context.Context, templateID int64, dayNumber int) (*model.PracticeDay, error) {
	return s.store.GetDay(ctx, templateID, dayNumber)
}

// Delete removes a template and, through the storage layer's cascade,
// its days, blocks, and exercises. Logs referencing the template are
// kept. Not exposed as an HTTP route.
func (s *TemplateService) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}
