package participantremove

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"secret-santa-service/internal/http/handler/common"
)

type request struct {
	ParticipantID string `json:"participant_id"`
}

// Handler реализует POST /participants/remove.
type Handler struct {
	useCase UseCase
}

func New(useCase UseCase) *Handler {
	return &Handler{useCase: useCase}
}

func (h *Handler) Register(router chi.Router) {
	router.Post("/remove", common.WithErrorHandling(h.handle))
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request) error {
	var req request
	if err := common.DecodeJSON(r, &req); err != nil {
		return err
	}
	if req.ParticipantID == "" {
		return common.NewBadRequestError("VALIDATION_ERROR", "participant_id обязателен")
	}
	if err := h.useCase.RemoveParticipant(r.Context(), req.ParticipantID); err != nil {
		return err
	}
	common.RespondJSON(w, http.StatusOK, map[string]string{"participant_id": req.ParticipantID, "status": "removed"})
	return nil
}
