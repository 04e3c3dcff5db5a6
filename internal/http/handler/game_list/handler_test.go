package gamelist

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"secret-santa-service/internal/domain"
)

type stubUseCase struct {
	games []domain.Game
	err   error
}

func (s *stubUseCase) ListGames(context.Context) ([]domain.Game, error) {
	return s.games, s.err
}

func TestHandler_ReturnsGames(t *testing.T) {
	t.Parallel()

	handler := New(&stubUseCase{games: []domain.Game{{ID: "g1", Name: "Office"}}})
	router := chi.NewRouter()
	handler.Register(router)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string][]domain.Game
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body["games"], 1)
	require.Equal(t, "Office", body["games"][0].Name)
}

func TestHandler_PropagatesError(t *testing.T) {
	t.Parallel()

	handler := New(&stubUseCase{err: errors.New("db down")})
	router := chi.NewRouter()
	handler.Register(router)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
