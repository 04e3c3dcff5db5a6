package gameget

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"secret-santa-service/internal/http/handler/common"
)

// Handler реализует GET /games/get.
type Handler struct {
	useCase UseCase
}

func New(useCase UseCase) *Handler {
	return &Handler{useCase: useCase}
}

func (h *Handler) Register(router chi.Router) {
	router.Get("/get", common.WithErrorHandling(h.handle))
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request) error {
	gameID := r.URL.Query().Get("game_id")
	if gameID == "" {
		return common.NewBadRequestError("VALIDATION_ERROR", "game_id обязателен")
	}
	details, err := h.useCase.GetGame(r.Context(), gameID)
	if err != nil {
		return err
	}
	common.RespondJSON(w, http.StatusOK, details)
	return nil
}
