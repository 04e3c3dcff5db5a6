package gamelist

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"secret-santa-service/internal/domain"
	"secret-santa-service/internal/http/handler/common"
)

// Handler реализует GET /games.
type Handler struct {
	useCase UseCase
}

func New(useCase UseCase) *Handler {
	return &Handler{useCase: useCase}
}

func (h *Handler) Register(router chi.Router) {
	router.Get("/", common.WithErrorHandling(h.handle))
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request) error {
	games, err := h.useCase.ListGames(r.Context())
	if err != nil {
		return err
	}
	common.RespondJSON(w, http.StatusOK, map[string][]domain.Game{"games": games})
	return nil
}
