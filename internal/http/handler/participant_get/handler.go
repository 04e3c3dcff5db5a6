package participantget

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"secret-santa-service/internal/http/handler/common"
)

// Handler реализует страницу участника: GET /participants/get и GET /participants/{participant_id}.
// Второй вариант используется как постоянная ссылка в письме.
type Handler struct {
	useCase UseCase
}

func New(useCase UseCase) *Handler {
	return &Handler{useCase: useCase}
}

func (h *Handler) Register(router chi.Router) {
	router.Get("/get", common.WithErrorHandling(h.handle))
	router.Get("/{participant_id}", common.WithErrorHandling(h.handle))
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request) error {
	participantID := chi.URLParam(r, "participant_id")
	if participantID == "" {
		participantID = r.URL.Query().Get("participant_id")
	}
	if participantID == "" {
		return common.NewBadRequestError("VALIDATION_ERROR", "participant_id обязателен")
	}
	view, err := h.useCase.GetParticipantView(r.Context(), participantID)
	if err != nil {
		return err
	}
	common.RespondJSON(w, http.StatusOK, view)
	return nil
}
