package common

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/require"

	"secret-santa-service/internal/domain"
	"secret-santa-service/internal/logging"
)

func TestRespondJSONWritesBodyAndStatus(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondJSON(rec, http.StatusAccepted, map[string]string{"ok": "true"})

	require.Equal(t, http.StatusAccepted, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var body map[string]string
	require.NoError(t, json.NewDecoder(bytes.NewReader(rec.Body.Bytes())).Decode(&body))
	require.Equal(t, "true", body["ok"])
}

func TestWithErrorHandlingReturnsHTTPError(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	handler := WithErrorHandling(func(http.ResponseWriter, *http.Request) error {
		return NewHTTPError(http.StatusTeapot, "CUSTOM", "boom")
	})
	handler(rec, req)

	require.Equal(t, http.StatusTeapot, rec.Code)
	var apiErr APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	require.Equal(t, "CUSTOM", apiErr.Error.Code)
}

func TestWriteDomainErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{fmt.Errorf("%w: email", domain.ErrInvalidInput), http.StatusBadRequest, "VALIDATION_ERROR"},
		{domain.ErrGameNotFound, http.StatusNotFound, "NOT_FOUND"},
		{domain.ErrParticipantNotFound, http.StatusNotFound, "NOT_FOUND"},
		{domain.ErrGameExists, http.StatusConflict, "GAME_EXISTS"},
		{domain.ErrParticipantExists, http.StatusConflict, "PARTICIPANT_EXISTS"},
		{domain.ErrGameTriggered, http.StatusConflict, "GAME_TRIGGERED"},
		{fmt.Errorf("assign: %w", domain.ErrConstructionExhausted), http.StatusConflict, "ASSIGNMENT_EXHAUSTED"},
		{context.DeadlineExceeded, http.StatusGatewayTimeout, "TIMEOUT"},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req = req.WithContext(context.WithValue(req.Context(), chimw.RequestIDKey, "req-1"))

			WithErrorHandling(func(http.ResponseWriter, *http.Request) error {
				return tc.err
			})(rec, req)

			require.Equal(t, tc.status, rec.Code)
			var apiErr APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
			require.Equal(t, tc.code, apiErr.Error.Code)
		})
	}
}

func TestWriteDomainErrorUnwrapsLogContext(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := logging.WithLogGameID(context.Background(), "g1")

	WriteDomainError(rec, req, logging.WrapError(ctx, domain.ErrGameNotFound))

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWriteDomainErrorUnknownError(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	WriteDomainError(rec, req, errors.New("unexpected"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var apiErr APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	require.Equal(t, "INTERNAL_ERROR", apiErr.Error.Code)
	require.Equal(t, "internal server error", apiErr.Error.Message)
}

func TestDecodeJSONRejectsUnknownFields(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x","extra":1}`))
	err := DecodeJSON(req, &dst)

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, http.StatusBadRequest, httpErr.status)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x"}`))
	require.NoError(t, DecodeJSON(req, &dst))
	require.Equal(t, "x", dst.Name)
}
