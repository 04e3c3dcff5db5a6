package participantwishes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"secret-santa-service/internal/domain"
	"secret-santa-service/internal/http/handler/common"
)

type request struct {
	ParticipantID string `json:"participant_id"`
	Wishes        string `json:"wishes"`
}

// Handler реализует POST /participants/wishes.
type Handler struct {
	useCase UseCase
}

func New(useCase UseCase) *Handler {
	return &Handler{useCase: useCase}
}

func (h *Handler) Register(router chi.Router) {
	router.Post("/wishes", common.WithErrorHandling(h.handle))
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request) error {
	var req request
	if err := common.DecodeJSON(r, &req); err != nil {
		return err
	}
	if req.ParticipantID == "" {
		return common.NewBadRequestError("VALIDATION_ERROR", "participant_id обязателен")
	}
	participant, err := h.useCase.UpdateWishes(r.Context(), req.ParticipantID, req.Wishes)
	if err != nil {
		return err
	}
	common.RespondJSON(w, http.StatusOK, map[string]domain.Participant{"participant": participant})
	return nil
}
