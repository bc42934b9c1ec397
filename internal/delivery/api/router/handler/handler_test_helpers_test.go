package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"servicehub/internal/delivery/api/middleware"
	"servicehub/internal/delivery/api/validator"
	"servicehub/internal/domain/entity"
	"servicehub/internal/domain/service"
	mockService "servicehub/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testToken = "test-token"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

// newAuthMiddleware accepts testToken as a token for subjectID holding role.
func newAuthMiddleware(t *testing.T, subjectID uuid.UUID, role entity.Role) *middleware.AuthMiddleware {
	t.Helper()

	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken(mock.Anything).
		Return(&service.Claims{SubjectID: subjectID, Roles: []string{role.String()}}, nil).
		Maybe()

	return middleware.NewAuthMiddleware(tokenSvc)
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}
