package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"secret-santa-service/internal/logging"
	"secret-santa-service/internal/metrics"
)

// RequestIDHeader заголовок, в котором клиент получает идентификатор запроса.
const RequestIDHeader = "X-Request-Id"

// LoggerMiddleware создаёт middleware для структурированного логирования HTTP запросов.
// Добавляет в контекст request ID, путь, метод и измеряет время выполнения запроса.
func LoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		// Идентификатор от chi RequestID, иначе генерируем свой
		requestID := chimw.GetReqID(ctx)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)

		slog.InfoContext(ctx, fmt.Sprintf("Start [%s] request processing", requestID))
		start := time.Now()

		ctx = logging.WithLogRequestID(ctx, requestID)
		ctx = logging.WithLogRequestPath(ctx, r.URL.Path)
		ctx = logging.WithLogRequestMethod(ctx, r.Method)

		rw := &responseWriter{w, http.StatusOK}
		r = r.WithContext(ctx)

		next.ServeHTTP(rw, r)

		timeServe := time.Since(start)
		ctx = logging.WithLogRequestStatus(ctx, rw.statusCode)
		ctx = logging.WithLogRequestDuration(ctx, timeServe.String())

		slog.InfoContext(ctx, fmt.Sprintf("Ended [%s] request processing", requestID))

		// Шаблон маршрута известен только после обработки запроса роутером
		metrics.ObserveAPICall(routePattern(r), r.Method, rw.statusCode, timeServe)
	})
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// routePattern возвращает шаблон маршрута chi (например, "/participants/{participant_id}")
// или фактический путь, если шаблон неизвестен.
func routePattern(r *http.Request) string {
	if r == nil {
		return "/"
	}
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	if path := r.URL.Path; path != "" {
		return path
	}
	return "/"
}
