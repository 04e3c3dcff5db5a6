package gametrigger

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"secret-santa-service/internal/http/handler/common"
)

type request struct {
	GameID string `json:"game_id"`
}

// Handler реализует POST /games/trigger.
// Слишком маленький состав не является ошибкой: ответ 200 с outcome NOT_ENOUGH_PARTICIPANTS.
type Handler struct {
	useCase UseCase
}

func New(useCase UseCase) *Handler {
	return &Handler{useCase: useCase}
}

func (h *Handler) Register(router chi.Router) {
	router.Post("/trigger", common.WithErrorHandling(h.handle))
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request) error {
	var req request
	if err := common.DecodeJSON(r, &req); err != nil {
		return err
	}
	if req.GameID == "" {
		return common.NewBadRequestError("VALIDATION_ERROR", "game_id обязателен")
	}
	result, err := h.useCase.TriggerGame(r.Context(), req.GameID)
	if err != nil {
		return err
	}
	common.RespondJSON(w, http.StatusOK, result)
	return nil
}
