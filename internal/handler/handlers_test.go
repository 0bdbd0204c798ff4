package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fennwick/practice-journal/internal/errs"
	"github.com/fennwick/practice-journal/internal/middleware"
	"github.com/fennwick/practice-journal/internal/model"
	"github.com/fennwick/practice-journal/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- mocks ----------------------------------------------------------------

type mockInstrumentReader struct {
	instruments []model.Instrument
	instrument  *model.Instrument
	err         error

	gotID int64
}

func (m *mockInstrumentReader) List(ctx context.Context) ([]model.Instrument, error) {
	return m.instruments, m.err
}

func (m *mockInstrumentReader) Get(ctx context.Context, id int64) (*model.Instrument, error) {
	m.gotID = id
	return m.instrument, m.err
}

type mockTemplateReader struct {
	templates []model.PracticeTemplate
	template  *model.PracticeTemplateWithDays
	day       *model.PracticeDay
	err       error

	gotInstrumentID *int64
	gotTemplateID   int64
	gotDayNumber    int
}

func (m *mockTemplateReader) List(ctx context.Context, instrumentID *int64) ([]model.PracticeTemplate, error) {
	m.gotInstrumentID = instrumentID
	return m.templates, m.err
}

func (m *mockTemplateReader) Get(ctx context.Context, id int64) (*model.PracticeTemplateWithDays, error) {
	m.gotTemplateID = id
	return m.template, m.err
}

func (m *mockTemplateReader) GetDay(ctx context.Context, templateID int64, dayNumber int) (*model.PracticeDay, error) {
	m.gotTemplateID = templateID
	m.gotDayNumber = dayNumber
	return m.day, m.err
}

type mockLogWriter struct {
	log  *model.PracticeLog
	logs []model.PracticeLog
	err  error

	gotPayload    model.PracticeLogCreate
	gotTemplateID *int64
	gotLimit      *int
	gotID         int64
}

func (m *mockLogWriter) Create(ctx context.Context, payload model.PracticeLogCreate) (*model.PracticeLog, error) {
	m.gotPayload = payload
	return m.log, m.err
}

func (m *mockLogWriter) List(ctx context.Context, templateID *int64, limit *int) ([]model.PracticeLog, error) {
	m.gotTemplateID = templateID
	m.gotLimit = limit
	return m.logs, m.err
}

func (m *mockLogWriter) Get(ctx context.Context, id int64) (*model.PracticeLog, error) {
	m.gotID = id
	return m.log, m.err
}

type mockAnalyticsReader struct {
	summary *model.AnalyticsSummary
	err     error

	gotTemplateID *int64
}

func (m *mockAnalyticsReader) Summary(ctx context.Context, templateID *int64) (*model.AnalyticsSummary, error) {
	m.gotTemplateID = templateID
	return m.summary, m.err
}

// ---- harness ---------------------------------------------------------------

// newTestEcho builds an Echo instance with the production error
// handler so error-path tests see the real response schema.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = middleware.NewGlobalMiddlewares(&server.Server{}).GlobalErrorHandler
	return e
}

func doRequest(e *echo.Echo, method, target string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errs.HTTPError {
	t.Helper()
	var httpErr errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &httpErr))
	return httpErr
}

// ---- instruments -----------------------------------------------------------

func TestInstrumentList(t *testing.T) {
	desc := "Classical violin practice"
	mock := &mockInstrumentReader{
		instruments: []model.Instrument{
			{ID: 1, Name: "Violin", Description: &desc},
			{ID: 2, Name: "Viola"},
		},
	}
	h := NewInstrumentHandler(&server.Server{}, mock)

	e := newTestEcho()
	e.GET("/api/instruments", Handle(h.Handler, h.List, http.StatusOK))

	rec := doRequest(e, http.MethodGet, "/api/instruments", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []model.Instrument
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Violin", got[0].Name)
}

func TestInstrumentGetNotFound(t *testing.T) {
	mock := &mockInstrumentReader{
		err: errs.NewNotFoundError("Instrument not found", true, nil),
	}
	h := NewInstrumentHandler(&server.Server{}, mock)

	e := newTestEcho()
	e.GET("/api/instruments/:id", Handle(h.Handler, h.Get, http.StatusOK))

	rec := doRequest(e, http.MethodGet, "/api/instruments/99", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	httpErr := decodeError(t, rec)
	assert.Equal(t, "Instrument not found", httpErr.Message)
	assert.Equal(t, "NOT_FOUND", httpErr.Code)
	assert.Equal(t, int64(99), mock.gotID)
}

func TestInstrumentGetNonNumericID(t *testing.T) {
	h := NewInstrumentHandler(&server.Server{}, &mockInstrumentReader{})

	e := newTestEcho()
	e.GET("/api/instruments/:id", Handle(h.Handler, h.Get, http.StatusOK))

	rec := doRequest(e, http.MethodGet, "/api/instruments/abc", "")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	httpErr := decodeError(t, rec)
	assert.Equal(t, "Malformed request payload", httpErr.Message)
}

// ---- templates ---------------------------------------------------------------

func TestTemplateListFilter(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   *int64
	}{
		{"no filter", "/api/templates", nil},
		{"instrument filter", "/api/templates?instrument_id=2", int64Ptr(2)},
		{"zero means no filter", "/api/templates?instrument_id=0", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockTemplateReader{templates: []model.PracticeTemplate{}}
			h := NewTemplateHandler(&server.Server{}, mock)

			e := newTestEcho()
			e.GET("/api/templates", Handle(h.Handler, h.List, http.StatusOK))

			rec := doRequest(e, http.MethodGet, tt.target, "")
			require.Equal(t, http.StatusOK, rec.Code)

			if tt.want == nil {
				assert.Nil(t, mock.gotInstrumentID)
			} else {
				require.NotNil(t, mock.gotInstrumentID)
				assert.Equal(t, *tt.want, *mock.gotInstrumentID)
			}
		})
	}
}

func TestTemplateGetReturnsNestedTree(t *testing.T) {
	mock := &mockTemplateReader{
		template: &model.PracticeTemplateWithDays{
			PracticeTemplate: model.PracticeTemplate{ID: 1, Name: "14-Day Intermediate Rotation", DaysCount: 14, IsActive: true},
			PracticeDays: []model.PracticeDay{
				{
					ID: 1, TemplateID: 1, DayNumber: 1, Title: "Day 1: Detaché/Tone + String Crossings",
					ExerciseBlocks: []model.ExerciseBlock{
						{ID: 1, PracticeDayID: 1, BlockType: "blockA", DisplayOrder: 1, Exercises: []model.Exercise{}},
					},
				},
			},
		},
	}
	h := NewTemplateHandler(&server.Server{}, mock)

	e := newTestEcho()
	e.GET("/api/templates/:id", Handle(h.Handler, h.Get, http.StatusOK))

	rec := doRequest(e, http.MethodGet, "/api/templates/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(1), mock.gotTemplateID)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	days, ok := got["practice_days"].([]interface{})
	require.True(t, ok)
	require.Len(t, days, 1)
}

func TestTemplateGetDayParams(t *testing.T) {
	mock := &mockTemplateReader{
		day: &model.PracticeDay{ID: 3, TemplateID: 1, DayNumber: 3, ExerciseBlocks: []model.ExerciseBlock{}},
	}
	h := NewTemplateHandler(&server.Server{}, mock)

	e := newTestEcho()
	e.GET("/api/templates/:id/days/:day_number", Handle(h.Handler, h.GetDay, http.StatusOK))

	rec := doRequest(e, http.MethodGet, "/api/templates/1/days/3", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(1), mock.gotTemplateID)
	assert.Equal(t, 3, mock.gotDayNumber)
}

func TestTemplateDayNotFound(t *testing.T) {
	mock := &mockTemplateReader{
		err: errs.NewNotFoundError("Practice day not found", true, nil),
	}
	h := NewTemplateHandler(&server.Server{}, mock)

	e := newTestEcho()
	e.GET("/api/templates/:id/days/:day_number", Handle(h.Handler, h.GetDay, http.StatusOK))

	rec := doRequest(e, http.MethodGet, "/api/templates/1/days/99", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Practice day not found", decodeError(t, rec).Message)
}

// ---- logs -------------------------------------------------------------------

func TestLogCreate(t *testing.T) {
	notes := "good session"
	mock := &mockLogWriter{
		log: &model.PracticeLog{
			ID: 10, TemplateID: 1, DayNumber: 3,
			PracticeDate:    model.NewDate(2025, time.March, 10),
			DurationMinutes: 45,
			Notes:           &notes,
			LogDetails: []model.PracticeLogDetail{
				{ID: 1, LogID: 10, SectionType: "warmup"},
			},
		},
	}
	h := NewLogHandler(&server.Server{}, mock)

	e := newTestEcho()
	e.POST("/api/logs", Handle(h.Handler, h.Create, http.StatusCreated))

	body := `{
		"template_id": 1,
		"day_number": 3,
		"practice_date": "2025-03-10",
		"duration_minutes": 45,
		"notes": "good session",
		"log_details": [{"section_type": "warmup", "content": "scales first"}]
	}`

	rec := doRequest(e, http.MethodPost, "/api/logs", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	require.NotNil(t, mock.gotPayload.TemplateID)
	assert.Equal(t, int64(1), *mock.gotPayload.TemplateID)
	require.NotNil(t, mock.gotPayload.DayNumber)
	assert.Equal(t, 3, *mock.gotPayload.DayNumber)
	assert.Equal(t, "2025-03-10", mock.gotPayload.PracticeDate.String())
	require.NotNil(t, mock.gotPayload.DurationMinutes)
	assert.Equal(t, 45, *mock.gotPayload.DurationMinutes)
	require.Len(t, mock.gotPayload.LogDetails, 1)
	assert.Equal(t, "warmup", mock.gotPayload.LogDetails[0].SectionType)

	var got model.PracticeLog
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(10), got.ID)
}

// Zero is a legitimate value for every integer field on the create
// payload. Presence is what the handler validates, not positivity.
func TestLogCreateAcceptsZeroValues(t *testing.T) {
	mock := &mockLogWriter{
		log: &model.PracticeLog{
			ID:           11,
			PracticeDate: model.NewDate(2025, time.March, 10),
			LogDetails:   []model.PracticeLogDetail{},
		},
	}
	h := NewLogHandler(&server.Server{}, mock)

	e := newTestEcho()
	e.POST("/api/logs", Handle(h.Handler, h.Create, http.StatusCreated))

	body := `{
		"template_id": 0,
		"day_number": 0,
		"practice_date": "2025-03-10",
		"duration_minutes": 0
	}`

	rec := doRequest(e, http.MethodPost, "/api/logs", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	require.NotNil(t, mock.gotPayload.TemplateID)
	assert.Equal(t, int64(0), *mock.gotPayload.TemplateID)
	require.NotNil(t, mock.gotPayload.DayNumber)
	assert.Equal(t, 0, *mock.gotPayload.DayNumber)
	require.NotNil(t, mock.gotPayload.DurationMinutes)
	assert.Equal(t, 0, *mock.gotPayload.DurationMinutes)
}

func TestLogCreateMissingDuration(t *testing.T) {
	h := NewLogHandler(&server.Server{}, &mockLogWriter{})

	e := newTestEcho()
	e.POST("/api/logs", Handle(h.Handler, h.Create, http.StatusCreated))

	body := `{"template_id": 1, "day_number": 3, "practice_date": "2025-03-10"}`

	rec := doRequest(e, http.MethodPost, "/api/logs", body)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	httpErr := decodeError(t, rec)
	require.NotEmpty(t, httpErr.Errors)

	fields := make([]string, 0, len(httpErr.Errors))
	for _, fe := range httpErr.Errors {
		fields = append(fields, fe.Field)
	}
	assert.Contains(t, fields, "duration_minutes")
}

func TestLogCreateMalformedJSON(t *testing.T) {
	h := NewLogHandler(&server.Server{}, &mockLogWriter{})

	e := newTestEcho()
	e.POST("/api/logs", Handle(h.Handler, h.Create, http.StatusCreated))

	rec := doRequest(e, http.MethodPost, "/api/logs", `{"template_id": `)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "Malformed request payload", decodeError(t, rec).Message)
}

func TestLogListQueryParams(t *testing.T) {
	mock := &mockLogWriter{logs: []model.PracticeLog{}}
	h := NewLogHandler(&server.Server{}, mock)

	e := newTestEcho()
	e.GET("/api/logs", Handle(h.Handler, h.List, http.StatusOK))

	rec := doRequest(e, http.MethodGet, "/api/logs?template_id=1&limit=2", "")
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, mock.gotTemplateID)
	assert.Equal(t, int64(1), *mock.gotTemplateID)
	require.NotNil(t, mock.gotLimit)
	assert.Equal(t, 2, *mock.gotLimit)
}

func TestLogListDefaults(t *testing.T) {
	mock := &mockLogWriter{logs: []model.PracticeLog{}}
	h := NewLogHandler(&server.Server{}, mock)

	e := newTestEcho()
	e.GET("/api/logs", Handle(h.Handler, h.List, http.StatusOK))

	rec := doRequest(e, http.MethodGet, "/api/logs", "")
	require.Equal(t, http.StatusOK, rec.Code)

	// Absent limit stays nil so the service can apply its default.
	assert.Nil(t, mock.gotTemplateID)
	assert.Nil(t, mock.gotLimit)
}

// ?limit=0 is a real value, not an omission. It must reach the service
// as zero instead of being swallowed by the default.
func TestLogListExplicitZeroLimit(t *testing.T) {
	mock := &mockLogWriter{logs: []model.PracticeLog{}}
	h := NewLogHandler(&server.Server{}, mock)

	e := newTestEcho()
	e.GET("/api/logs", Handle(h.Handler, h.List, http.StatusOK))

	rec := doRequest(e, http.MethodGet, "/api/logs?limit=0", "")
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, mock.gotLimit)
	assert.Equal(t, 0, *mock.gotLimit)
}

func TestLogGetNotFound(t *testing.T) {
	mock := &mockLogWriter{
		err: errs.NewNotFoundError("Practice log not found", true, nil),
	}
	h := NewLogHandler(&server.Server{}, mock)

	e := newTestEcho()
	e.GET("/api/logs/:id", Handle(h.Handler, h.Get, http.StatusOK))

	rec := doRequest(e, http.MethodGet, "/api/logs/404", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Practice log not found", decodeError(t, rec).Message)
	assert.Equal(t, int64(404), mock.gotID)
}

// ---- analytics ---------------------------------------------------------------

func TestAnalyticsSummary(t *testing.T) {
	mock := &mockAnalyticsReader{
		summary: &model.AnalyticsSummary{
			TotalSessions:   3,
			TotalMinutes:    135,
			AverageDuration: 45,
			SessionsByDay:   map[string]int64{"1": 2, "3": 1},
		},
	}
	h := NewAnalyticsHandler(&server.Server{}, mock)

	e := newTestEcho()
	e.GET("/api/analytics", Handle(h.Handler, h.Summary, http.StatusOK))

	rec := doRequest(e, http.MethodGet, "/api/analytics?template_id=1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, mock.gotTemplateID)
	assert.Equal(t, int64(1), *mock.gotTemplateID)

	var got model.AnalyticsSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(3), got.TotalSessions)
	assert.Equal(t, map[string]int64{"1": 2, "3": 1}, got.SessionsByDay)
}

// ---- system ------------------------------------------------------------------

func TestRootBanner(t *testing.T) {
	h := NewHealthHandler(&server.Server{})

	e := newTestEcho()
	e.GET("/", h.Root)

	rec := doRequest(e, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Practice Journal API", got["message"])
	assert.Equal(t, "0.1.0", got["version"])
}

func TestHealthCheck(t *testing.T) {
	h := NewHealthHandler(&server.Server{})

	e := newTestEcho()
	e.GET("/health", h.CheckHealth)

	rec := doRequest(e, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "healthy"}`, rec.Body.String())
}

func TestUnknownRoute(t *testing.T) {
	e := newTestEcho()

	rec := doRequest(e, http.MethodGet, "/nope", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", decodeError(t, rec).Message)
}

func int64Ptr(v int64) *int64 { return &v }
