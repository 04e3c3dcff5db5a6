package middleware

import (
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"

	"secret-santa-service/internal/tracing"
)

// TracingMiddleware открывает серверный span на запрос, продолжая trace из заголовков клиента.
func TracingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
		ctx, span := tracing.Start(ctx, "HTTP "+r.Method,
			attribute.String("http.method", r.Method),
			attribute.String("http.target", r.URL.Path),
		)
		defer span.End()

		ww := &responseWriter{w, http.StatusOK}
		next.ServeHTTP(ww, r.WithContext(ctx))

		span.SetName("HTTP " + r.Method + " " + routePattern(r))
		span.SetAttributes(attribute.Int("http.status_code", ww.statusCode))
		if ww.statusCode >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(ww.statusCode))
		}
	})
}
