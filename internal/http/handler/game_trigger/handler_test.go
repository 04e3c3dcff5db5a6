package gametrigger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"secret-santa-service/internal/domain"
)

type stubUseCase struct {
	result domain.TriggerResult
	err    error
	calls  int
}

func (s *stubUseCase) TriggerGame(_ context.Context, gameID string) (domain.TriggerResult, error) {
	s.calls++
	s.result.GameID = gameID
	return s.result, s.err
}

func trigger(t *testing.T, useCase UseCase, body string) *httptest.ResponseRecorder {
	t.Helper()
	router := chi.NewRouter()
	New(useCase).Register(router)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/trigger", bytes.NewBufferString(body)))
	return rec
}

func TestHandler_ReturnsOutcome(t *testing.T) {
	t.Parallel()

	useCase := &stubUseCase{result: domain.TriggerResult{Outcome: domain.TriggerOutcomeAssigned, Pairs: 4}}
	rec := trigger(t, useCase, `{"game_id":"g1"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var result domain.TriggerResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.Equal(t, "g1", result.GameID)
	require.Equal(t, domain.TriggerOutcomeAssigned, result.Outcome)
	require.Equal(t, 4, result.Pairs)
}

func TestHandler_NotEnoughParticipantsIsNotAnError(t *testing.T) {
	t.Parallel()

	useCase := &stubUseCase{result: domain.TriggerResult{Outcome: domain.TriggerOutcomeNotEnoughUsers}}
	rec := trigger(t, useCase, `{"game_id":"g1"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "NOT_ENOUGH_PARTICIPANTS")
}

func TestHandler_RequiresGameID(t *testing.T) {
	t.Parallel()

	useCase := &stubUseCase{}
	rec := trigger(t, useCase, `{}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Zero(t, useCase.calls)
}

func TestHandler_ExhaustedAssignment(t *testing.T) {
	t.Parallel()

	rec := trigger(t, &stubUseCase{err: domain.ErrConstructionExhausted}, `{"game_id":"g1"}`)

	require.Equal(t, http.StatusConflict, rec.Code)
}
