package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sphere/internal/delivery/http/validator"
	"sphere/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAuthUsecase records whether the handler reached the usecase layer.
type stubAuthUsecase struct {
	called bool
	input  *usecase.AuthenticateInput
	output *usecase.AuthenticateOutput
	err    error
}

func (s *stubAuthUsecase) Authenticate(_ context.Context, input *usecase.AuthenticateInput) (*usecase.AuthenticateOutput, error) {
	s.called = true
	s.input = input

	return s.output, s.err
}

func newLoginContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	uc := &stubAuthUsecase{
		output: &usecase.AuthenticateOutput{
			Token: "signed-token",
			User:  &usecase.UserProjection{ID: 42, Username: "jdoe"},
		},
	}
	h := NewAuthHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newLoginContext(t, `{"username":"jdoe","password":"secret"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, uc.called)
	assert.Contains(t, rec.Body.String(), "signed-token")
}

// Requests missing a credential must be refused by the bound validator
// before the usecase layer sees them.
func TestAuthHandler_Login_ValidationRejectsMissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing password", body: `{"username":"jdoe"}`},
		{name: "missing username", body: `{"password":"secret"}`},
		{name: "empty body", body: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &stubAuthUsecase{}
			h := NewAuthHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

			c, rec := newLoginContext(t, tt.body)

			require.NoError(t, h.Login(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
			assert.False(t, uc.called)
		})
	}
}
