package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fennwick/practice-journal/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Name    string `json:"name" validate:"required,max=10"`
	Minutes int    `json:"minutes" validate:"required,gt=0"`
}

func (p *samplePayload) Validate() error {
	return Struct(p)
}

func newContext(body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

func bindError(t *testing.T, c echo.Context, payload Validatable) *errs.HTTPError {
	t.Helper()
	err := BindAndValidate(c, payload)
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	return httpErr
}

func TestBindAndValidateSuccess(t *testing.T) {
	c := newContext(`{"name": "scales", "minutes": 30}`)

	payload := &samplePayload{}
	require.NoError(t, BindAndValidate(c, payload))

	assert.Equal(t, "scales", payload.Name)
	assert.Equal(t, 30, payload.Minutes)
}

func TestBindAndValidateMalformedBody(t *testing.T) {
	c := newContext(`{"name": `)

	httpErr := bindError(t, c, &samplePayload{})

	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
	assert.Equal(t, "Malformed request payload", httpErr.Message)
}

func TestBindAndValidateMissingFields(t *testing.T) {
	c := newContext(`{}`)

	httpErr := bindError(t, c, &samplePayload{})

	require.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
	require.Len(t, httpErr.Errors, 2)

	byField := map[string]string{}
	for _, fe := range httpErr.Errors {
		byField[fe.Field] = fe.Error
	}
	assert.Equal(t, "is required", byField["name"])
	assert.Equal(t, "is required", byField["minutes"])
}

func TestBindAndValidateTagMessages(t *testing.T) {
	c := newContext(`{"name": "far too long a name", "minutes": -5}`)

	httpErr := bindError(t, c, &samplePayload{})

	byField := map[string]string{}
	for _, fe := range httpErr.Errors {
		byField[fe.Field] = fe.Error
	}
	assert.Equal(t, "must not exceed 10 characters", byField["name"])
	assert.Equal(t, "must be greater than 0", byField["minutes"])
}

func TestCustomValidationErrors(t *testing.T) {
	errList := CustomValidationErrors{
		{Field: "day_number", Message: "must be within the template"},
	}

	msg, fieldErrors := extractValidationError(errList)
	assert.Equal(t, "Validation failed", msg)
	require.Len(t, fieldErrors, 1)
	assert.Equal(t, "day_number", fieldErrors[0].Field)
	assert.Equal(t, "must be within the template", fieldErrors[0].Error)
}
