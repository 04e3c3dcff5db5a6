package gamecreate

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"secret-santa-service/internal/domain"
	"secret-santa-service/internal/http/handler/common"
	"secret-santa-service/internal/service"
)

type request struct {
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
	Text     string `json:"text"`
}

// Handler реализует POST /games/create.
type Handler struct {
	useCase UseCase
}

func New(useCase UseCase) *Handler {
	return &Handler{useCase: useCase}
}

func (h *Handler) Register(router chi.Router) {
	router.Post("/create", common.WithErrorHandling(h.handle))
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request) error {
	var req request
	if err := common.DecodeJSON(r, &req); err != nil {
		return err
	}
	if strings.TrimSpace(req.Name) == "" {
		return common.NewBadRequestError("VALIDATION_ERROR", "name обязателен")
	}
	game, err := h.useCase.CreateGame(r.Context(), service.CreateGameInput{
		Name:     req.Name,
		ImageURL: req.ImageURL,
		Text:     req.Text,
	})
	if err != nil {
		return err
	}
	common.RespondJSON(w, http.StatusCreated, map[string]domain.Game{"game": game})
	return nil
}
