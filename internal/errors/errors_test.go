package errors

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/hbnb-web/internal/clients"
	"github.com/pribylovaa/hbnb-web/internal/service"
)

func TestToHTTP_BaseMapping(t *testing.T) {
	tcs := []struct {
		name       string
		in         error
		wantStatus int
		wantCode   string
	}{
		{"missing_fields", fmt.Errorf("op: %w", service.ErrMissingFields), http.StatusBadRequest, "missing_fields"},
		{"missing_place_id", service.ErrMissingPlaceID, http.StatusBadRequest, "missing_place_id"},
		{"not_authenticated", service.ErrNotAuthenticated, http.StatusUnauthorized, "unauthenticated"},
		{"invalid_token", service.ErrInvalidToken, http.StatusUnauthorized, "invalid_token"},
		{"backend_400", &clients.APIError{Status: 400}, http.StatusBadRequest, "invalid_argument"},
		{"backend_401", &clients.APIError{Status: 401}, http.StatusUnauthorized, "unauthenticated"},
		{"backend_403", &clients.APIError{Status: 403}, http.StatusForbidden, "permission_denied"},
		{"backend_404", fmt.Errorf("op: %w", &clients.APIError{Status: 404}), http.StatusNotFound, "not_found"},
		{"backend_409", &clients.APIError{Status: 409}, http.StatusConflict, "already_exists"},
		{"backend_422", &clients.APIError{Status: 422}, http.StatusUnprocessableEntity, "backend_rejected"},
		{"backend_429", &clients.APIError{Status: 429}, http.StatusTooManyRequests, "resource_exhausted"},
		{"backend_500", &clients.APIError{Status: 500}, http.StatusBadGateway, "bad_gateway"},
		{"backend_308", &clients.APIError{Status: 308}, http.StatusBadGateway, "bad_gateway"},
		{"unavailable", fmt.Errorf("op: %w", clients.ErrUnavailable), http.StatusBadGateway, "bad_gateway"},
		{"bad_response", clients.ErrBadResponse, http.StatusBadGateway, "bad_gateway"},
		{"deadline", fmt.Errorf("%w: %w", clients.ErrUnavailable, context.DeadlineExceeded), http.StatusGatewayTimeout, "deadline_exceeded"},
		{"canceled", context.Canceled, StatusClientClosedRequest, "canceled"},
		{"internal", fmt.Errorf("boom"), http.StatusInternalServerError, "internal"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			gotStatus, resp := ToHTTP(tc.in)
			require.Equal(t, tc.wantStatus, gotStatus)
			require.Equal(t, tc.wantCode, resp.Code)
			require.NotEmpty(t, resp.Message)
		})
	}
}

func TestToHTTP_NilError_Returns500Internal(t *testing.T) {
	gotStatus, resp := ToHTTP(nil)
	require.Equal(t, http.StatusInternalServerError, gotStatus)
	require.Equal(t, "internal", resp.Code)
	require.Equal(t, "internal error", resp.Message)
}

func TestReadStatus(t *testing.T) {
	require.Equal(t, http.StatusNotFound, ReadStatus(&clients.APIError{Status: 404}))
	require.Equal(t, http.StatusBadRequest, ReadStatus(service.ErrMissingPlaceID))
	require.Equal(t, http.StatusBadGateway, ReadStatus(&clients.APIError{Status: 403}))
	require.Equal(t, http.StatusBadGateway, ReadStatus(clients.ErrUnavailable))
	require.Equal(t, http.StatusBadGateway, ReadStatus(fmt.Errorf("boom")))
}

func TestWriteError_HTMLWithRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "rid-<1>")
	rec := httptest.NewRecorder()

	WriteError(rec, req, fmt.Errorf("panic"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), "internal error")
	require.Contains(t, rec.Body.String(), "rid-&lt;1&gt;")
}
