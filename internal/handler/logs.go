package handler

import (
	"context"

	"github.com/fennwick/practice-journal/internal/model"
	"github.com/fennwick/practice-journal/internal/server"
	"github.com/fennwick/practice-journal/internal/validation"
	"github.com/labstack/echo/v4"
)

// LogWriter is the service surface the log handler needs.
type LogWriter interface {
	Create(ctx context.Context, payload model.PracticeLogCreate) (*model.PracticeLog, error)
	List(ctx context.Context, templateID *int64, limit *int) ([]model.PracticeLog, error)
	Get(ctx context.Context, id int64) (*model.PracticeLog, error)
}

// LogHandler serves the practice log endpoints.
type LogHandler struct {
	Handler
	logs LogWriter
}

func NewLogHandler(s *server.Server, logs LogWriter) *LogHandler {
	return &LogHandler{
		Handler: NewHandler(s),
		logs:    logs,
	}
}

// CreateLogRequest is the POST /logs payload. Validation tags live on
// the embedded model type.
type CreateLogRequest struct {
	model.PracticeLogCreate
}

func (r *CreateLogRequest) Validate() error {
	return validation.Struct(r)
}

// ListLogsRequest filters and bounds GET /logs. Zero template_id means
// no filter. Limit is a pointer so an absent parameter (service
// default applies) stays distinguishable from an explicit ?limit=0
// (returns no rows).
type ListLogsRequest struct {
	TemplateID int64 `query:"template_id"`
	Limit      *int  `query:"limit"`
}

func (r *ListLogsRequest) Validate() error {
	return validation.Struct(r)
}

// GetLogRequest identifies one log by path id.
type GetLogRequest struct {
	ID int64 `param:"id"`
}

func (r *GetLogRequest) Validate() error {
	return validation.Struct(r)
}

// Create records one practice session with its details and returns the
// created log.
func (h *LogHandler) Create(c echo.Context, req *CreateLogRequest) (*model.PracticeLog, error) {
	return h.logs.Create(c.Request().Context(), req.PracticeLogCreate)
}

// List returns logs newest-first by practice date.
func (h *LogHandler) List(c echo.Context, req *ListLogsRequest) ([]model.PracticeLog, error) {
	var templateID *int64
	if req.TemplateID > 0 {
		templateID = &req.TemplateID
	}
	return h.logs.List(c.Request().Context(), templateID, req.Limit)
}

// Get returns one log with its details or 404.
func (h *LogHandler) Get(c echo.Context, req *GetLogRequest) (*model.PracticeLog, error) {
	return h.logs.Get(c.Request().Context(), req.ID)
}
