package handler

import (
	"context"

	"github.com/fennwick/practice-journal/internal/model"
	"github.com/fennwick/practice-journal/internal/server"
	"github.com/fennwick/practice-journal/internal/validation"
	"github.com/labstack/echo/v4"
)

// InstrumentReader is the service surface the instrument handler needs.
type InstrumentReader interface {
	List(ctx context.Context) ([]model.Instrument, error)
	Get(ctx context.Context, id int64) (*model.Instrument, error)
}

// InstrumentHandler serves the read-only instrument endpoints.
type InstrumentHandler struct {
	Handler
	instruments InstrumentReader
}

func NewInstrumentHandler(s *server.Server, instruments InstrumentReader) *InstrumentHandler {
	return &InstrumentHandler{
		Handler:     NewHandler(s),
		instruments: instruments,
	}
}

// ListInstrumentsRequest has no parameters.
type ListInstrumentsRequest struct{}

func (r *ListInstrumentsRequest) Validate() error {
	return nil
}

// GetInstrumentRequest identifies one instrument by path id. A
// non-numeric id fails binding and surfaces as 422.
type GetInstrumentRequest struct {
	ID int64 `param:"id"`
}

func (r *GetInstrumentRequest) Validate() error {
	return validation.Struct(r)
}

// List returns all instruments ordered by id.
func (h *InstrumentHandler) List(c echo.Context, req *ListInstrumentsRequest) ([]model.Instrument, error) {
	return h.instruments.List(c.Request().Context())
}

// Get returns one instrument or 404.
func (h *InstrumentHandler) Get(c echo.Context, req *GetInstrumentRequest) (*model.Instrument, error) {
	return h.instruments.Get(c.Request().Context(), req.ID)
}
