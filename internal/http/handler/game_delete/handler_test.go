package gamedelete

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"secret-santa-service/internal/domain"
)

type stubUseCase struct {
	deleted string
}

func (s *stubUseCase) DeleteGame(_ context.Context, gameID string) error {
	if gameID == "missing" {
		return domain.ErrGameNotFound
	}
	s.deleted = gameID
	return nil
}

func TestHandler_DeletesGame(t *testing.T) {
	t.Parallel()

	useCase := &stubUseCase{}
	router := chi.NewRouter()
	New(useCase).Register(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/delete", bytes.NewBufferString(`{"game_id":"g1"}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "g1", useCase.deleted)
}

func TestHandler_RequiresGameID(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	New(&stubUseCase{}).Register(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/delete", bytes.NewBufferString(`{}`)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_UnknownGame(t *testing.T) {
	t.Parallel()

	router := chi.NewRouter()
	New(&stubUseCase{}).Register(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/delete", bytes.NewBufferString(`{"game_id":"missing"}`)))

	require.Equal(t, http.StatusNotFound, rec.Code)
}
