package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"secret-santa-service/internal/http/handler/common"
	gamecreate "secret-santa-service/internal/http/handler/game_create"
	gamedelete "secret-santa-service/internal/http/handler/game_delete"
	gameget "secret-santa-service/internal/http/handler/game_get"
	gamelist "secret-santa-service/internal/http/handler/game_list"
	gametrigger "secret-santa-service/internal/http/handler/game_trigger"
	participantget "secret-santa-service/internal/http/handler/participant_get"
	participantregister "secret-santa-service/internal/http/handler/participant_register"
	participantremove "secret-santa-service/internal/http/handler/participant_remove"
	participantwishes "secret-santa-service/internal/http/handler/participant_wishes"
	"secret-santa-service/internal/http/middleware"
	"secret-santa-service/internal/http/swagger"
	"secret-santa-service/internal/service"
)

// Handler агрегирует HTTP-эндпоинты.
type Handler struct {
	service     *service.Service
	swaggerSpec []byte
}

func New(service *service.Service, spec []byte) *Handler {
	return &Handler{service: service, swaggerSpec: spec}
}

// Router возвращает готовый chi.Router со всеми зарегистрированными маршрутами и middleware.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	// Middleware применяются в порядке объявления
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.PanicMiddleware)
	r.Use(middleware.TracingMiddleware)
	r.Use(middleware.LoggerMiddleware)
	r.Use(middleware.MetricsMiddleware)
	swagger.RegisterRoutes(r, h.swaggerSpec)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := h.service.HealthCheck(r.Context()); err != nil {
			slog.ErrorContext(r.Context(), "health check failed", "error", err)
			common.RespondJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "degraded",
				"error":  err.Error(),
			})
			return
		}
		common.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Handle("/metrics", promhttp.Handler())

	h.registerGameRoutes(r)
	h.registerParticipantRoutes(r)

	return r
}

func (h *Handler) registerGameRoutes(r chi.Router) {
	r.Route("/games", func(router chi.Router) {
		gamelist.New(h.service).Register(router)
		gamecreate.New(h.service).Register(router)
		gameget.New(h.service).Register(router)
		gamedelete.New(h.service).Register(router)
		gametrigger.New(h.service).Register(router)
	})
}

func (h *Handler) registerParticipantRoutes(r chi.Router) {
	r.Route("/participants", func(router chi.Router) {
		participantregister.New(h.service).Register(router)
		participantremove.New(h.service).Register(router)
		participantwishes.New(h.service).Register(router)
		participantget.New(h.service).Register(router)
	})
}
