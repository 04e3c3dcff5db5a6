package participantwishes

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
	args struct {
		id     string
		wishes string
	}
}

func (s *stubUseCase) UpdateWishes(_ context.Context, participantID, wishes string) (domain.Participant, error) {
	s.args.id = participantID
	s.args.wishes = wishes
	if participantID == "missing" {
		return domain.Participant{}, domain.ErrParticipantNotFound
	}
	return domain.Participant{ID: participantID, Wishes: wishes}, nil
}

func post(useCase UseCase, body string) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	New(useCase).Register(router)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/wishes", bytes.NewBufferString(body)))
	return rec
}

func TestHandler_UpdatesWishes(t *testing.T) {
	t.Parallel()

	useCase := &stubUseCase{}
	rec := post(useCase, `{"participant_id":"p1","wishes":"socks"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "p1", useCase.args.id)
	require.Equal(t, "socks", useCase.args.wishes)
}

func TestHandler_EmptyWishesAllowed(t *testing.T) {
	t.Parallel()

	rec := post(&stubUseCase{}, `{"participant_id":"p1"}`)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_UnknownParticipant(t *testing.T) {
	t.Parallel()

	rec := post(&stubUseCase{}, `{"participant_id":"missing","wishes":"x"}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
}
