package participantremove

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
	removed string
	err     error
}

func (s *stubUseCase) RemoveParticipant(_ context.Context, participantID string) error {
	s.removed = participantID
	return s.err
}

func remove(useCase UseCase, body string) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	New(useCase).Register(router)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/remove", bytes.NewBufferString(body)))
	return rec
}

func TestHandler_RemovesParticipant(t *testing.T) {
	t.Parallel()

	useCase := &stubUseCase{}
	rec := remove(useCase, `{"participant_id":"p1"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "p1", useCase.removed)
}

func TestHandler_RequiresParticipantID(t *testing.T) {
	t.Parallel()

	rec := remove(&stubUseCase{}, `{}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_TriggeredGame(t *testing.T) {
	t.Parallel()

	rec := remove(&stubUseCase{err: domain.ErrGameTriggered}, `{"participant_id":"p1"}`)

	require.Equal(t, http.StatusConflict, rec.Code)
}
