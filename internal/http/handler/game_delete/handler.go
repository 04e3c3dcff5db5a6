package gamedelete

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"secret-santa-service/internal/http/handler/common"
)

type request struct {
	GameID string `json:"game_id"`
}

// Handler реализует POST /games/delete.
type Handler struct {
	useCase UseCase
}

func New(useCase UseCase) *Handler {
	return &Handler{useCase: useCase}
}

func (h *Handler) Register(router chi.Router) {
	router.Post("/delete", common.WithErrorHandling(h.handle))
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request) error {
	var req request
	if err := common.DecodeJSON(r, &req); err != nil {
		return err
	}
	if req.GameID == "" {
		return common.NewBadRequestError("VALIDATION_ERROR", "game_id обязателен")
	}
	if err := h.useCase.DeleteGame(r.Context(), req.GameID); err != nil {
		return err
	}
	common.RespondJSON(w, http.StatusOK, map[string]string{"game_id": req.GameID, "status": "deleted"})
	return nil
}
