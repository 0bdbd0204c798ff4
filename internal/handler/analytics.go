package handler

import (
	"context"

	"github.com/fennwick/practice-journal/internal/model"
	"github.com/fennwick/practice-journal/internal/server"
	"github.com/fennwick/practice-journal/internal/validation"
	"github.com/labstack/echo/v4"
)

// AnalyticsReader is the service surface the analytics handler needs.
type AnalyticsReader interface {
	Summary(ctx context.Context, templateID *int64) (*model.AnalyticsSummary, error)
}

// AnalyticsHandler serves the aggregate statistics endpoint.
type AnalyticsHandler struct {
	Handler
	analytics AnalyticsReader
}

func NewAnalyticsHandler(s *server.Server, analytics AnalyticsReader) *AnalyticsHandler {
	return &AnalyticsHandler{
		Handler:   NewHandler(s),
		analytics: analytics,
	}
}

// GetAnalyticsRequest optionally scopes the summary to one template.
type GetAnalyticsRequest struct {
	TemplateID int64 `query:"template_id"`
}

func (r *GetAnalyticsRequest) Validate() error {
	return validation.Struct(r)
}

// Summary returns totals, the rounded average duration, and per-day
// session counts. All zeroes and an empty map when nothing matches.
func (h *AnalyticsHandler) Summary(c echo.Context, req *GetAnalyticsRequest) (*model.AnalyticsSummary, error) {
	var templateID *int64
	if req.TemplateID > 0 {
		templateID = &req.TemplateID
	}
	return h.analytics.Summary(c.Request().Context(), templateID)
}
