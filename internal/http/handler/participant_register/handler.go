package participantregister

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"secret-santa-service/internal/domain"
	"secret-santa-service/internal/http/handler/common"
	"secret-santa-service/internal/service"
)

type request struct {
	GameID string `json:"game_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Wishes string `json:"wishes"`
}

// Handler реализует POST /participants/register.
type Handler struct {
	useCase UseCase
}

func New(useCase UseCase) *Handler {
	return &Handler{useCase: useCase}
}

func (h *Handler) Register(router chi.Router) {
	router.Post("/register", common.WithErrorHandling(h.handle))
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request) error {
	var req request
	if err := common.DecodeJSON(r, &req); err != nil {
		return err
	}
	if req.GameID == "" || req.Name == "" || req.Email == "" {
		return common.NewBadRequestError("VALIDATION_ERROR", "game_id, name и email обязательны")
	}
	participant, err := h.useCase.Register(r.Context(), service.RegisterInput{
		GameID: req.GameID,
		Name:   req.Name,
		Email:  req.Email,
		Wishes: req.Wishes,
	})
	if err != nil {
		return err
	}
	common.RespondJSON(w, http.StatusCreated, map[string]domain.Participant{"participant": participant})
	return nil
}
