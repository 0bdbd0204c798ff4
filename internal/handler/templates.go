package handler

import (
	"context"

	"github.com/fennwick/practice-journal/internal/model"
	"github.com/fennwick/practice-journal/internal/server"
	"github.com/fennwick/practice-journal/internal/validation"
	"github.com/labstack/echo/v4"
)

// TemplateReader is the service surface the template handler needs.
type TemplateReader interface {
	List(ctx context.Context, instrumentID *int64) ([]model.PracticeTemplate, error)
	Get(ctx context.Context, id int64) (*model.PracticeTemplateWithDays, error)
	GetDay(ctx context.Context, templateID int64, dayNumber int) (*model.PracticeDay, error)
}

// TemplateHandler serves the read-only practice template endpoints.
type TemplateHandler struct {
	Handler
	templates TemplateReader
}

func NewTemplateHandler(s *server.Server, templates TemplateReader) *TemplateHandler {
	return &TemplateHandler{
		Handler:   NewHandler(s),
		templates: templates,
	}
}

// ListTemplatesRequest optionally filters by instrument. Zero means no
// filter, matching the semantics of an absent query parameter.
type ListTemplatesRequest struct {
	InstrumentID int64 `query:"instrument_id"`
}

func (r *ListTemplatesRequest) Validate() error {
	return validation.Struct(r)
}

// GetTemplateRequest identifies one template by path id.
type GetTemplateRequest struct {
	ID int64 `param:"id"`
}

func (r *GetTemplateRequest) Validate() error {
	return validation.Struct(r)
}

// GetTemplateDayRequest identifies one day of a template.
type GetTemplateDayRequest struct {
	TemplateID int64 `param:"id"`
	DayNumber  int   `param:"day_number"`
}

func (r *GetTemplateDayRequest) Validate() error {
	return validation.Struct(r)
}

// List returns active templates, optionally filtered by instrument.
func (h *TemplateHandler) List(c echo.Context, req *ListTemplatesRequest) ([]model.PracticeTemplate, error) {
	var instrumentID *int64
	if req.InstrumentID > 0 {
		instrumentID = &req.InstrumentID
	}
	return h.templates.List(c.Request().Context(), instrumentID)
}

// Get returns one template with its fully materialized nested tree.
func (h *TemplateHandler) Get(c echo.Context, req *GetTemplateRequest) (*model.PracticeTemplateWithDays, error) {
	return h.templates.Get(c.Request().Context(), req.ID)
}

// GetDay returns one day of a template with its blocks and exercises.
func (h *TemplateHandler) GetDay(c echo.Context, req *GetTemplateDayRequest) (*model.PracticeDay, error) {
	return h.templates.GetDay(c.Request().Context(), req.TemplateID, req.DayNumber)
}
