package service

import (
	"context"

	"github.com/fennwick/practice-journal/internal/model"
)

// InstrumentStore is the data access surface the instrument service
// needs.
type InstrumentStore interface {
	List(ctx context.Context) ([]model.Instrument, error)
	GetByID(ctx context.Context, id int64) (*model.Instrument, error)
}

// InstrumentService serves instrument reads.
type InstrumentService struct {
	store InstrumentStore
}

func NewInstrumentService(store InstrumentStore) *InstrumentService {
	return &InstrumentService{store: store}
}

// List returns all instruments in insertion order.
func (s *InstrumentService) List(ctx context.Context) ([]model.Instrument, error) {
	return s.store.List(ctx)
}

// Get returns one instrument by id.
func (s *InstrumentService) Get(ctx context.Context, id int64) (*model.Instrument, error) {
	return s.store.GetByID(ctx, id)
}
