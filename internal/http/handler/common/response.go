package common

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"secret-santa-service/internal/domain"
	"secret-santa-service/internal/logging"
)

type APIError struct {
	Error APIErrorBody `json:"error"`
}

type APIErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondJSON отправляет JSON-ответ с указанным статус-кодом.
func RespondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondError отправляет ошибку в едином формате.
func RespondError(w http.ResponseWriter, status int, code, message string) {
	RespondJSON(w, status, APIError{
		Error: APIErrorBody{Code: code, Message: message},
	})
}

// HTTPError описывает контролируемую HTTP-ошибку.
type HTTPError struct {
	status  int
	code    string
	message string
}

func (e *HTTPError) Error() string {
	return e.message
}

// NewHTTPError создаёт новую HTTP-ошибку.
func NewHTTPError(status int, code, message string) *HTTPError {
	return &HTTPError{
		status:  status,
		code:    code,
		message: message,
	}
}

// NewBadRequestError создаёт 400 ошибку.
func NewBadRequestError(code, message string) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, code, message)
}

// DecodeJSON читает тело запроса, отклоняя неизвестные поля.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return NewBadRequestError("INVALID_BODY", "не удалось прочитать тело запроса")
	}
	return nil
}

// WithErrorHandling оборачивает обработчик, централизуя выдачу ошибок.
func WithErrorHandling(fn func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			var httpErr *HTTPError
			if errors.As(err, &httpErr) {
				RespondError(w, httpErr.status, httpErr.code, httpErr.message)
				return
			}
			WriteDomainError(w, r, err)
		}
	}
}

// errorMapping связывает доменную ошибку с HTTP-ответом.
type errorMapping struct {
	target error
	status int
	code   string
}

var domainErrors = []errorMapping{
	{domain.ErrInvalidInput, http.StatusBadRequest, "VALIDATION_ERROR"},
	{domain.ErrGameNotFound, http.StatusNotFound, "NOT_FOUND"},
	{domain.ErrParticipantNotFound, http.StatusNotFound, "NOT_FOUND"},
	{domain.ErrPartnerNotFound, http.StatusNotFound, "PARTNER_NOT_ASSIGNED"},
	{domain.ErrGameExists, http.StatusConflict, "GAME_EXISTS"},
	{domain.ErrParticipantExists, http.StatusConflict, "PARTICIPANT_EXISTS"},
	{domain.ErrGameTriggered, http.StatusConflict, "GAME_TRIGGERED"},
	{domain.ErrConstructionExhausted, http.StatusConflict, "ASSIGNMENT_EXHAUSTED"},
	{context.DeadlineExceeded, http.StatusGatewayTimeout, "TIMEOUT"},
}

// WriteDomainError преобразует доменные ошибки в HTTP-ответы.
func WriteDomainError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := logging.ErrorCtx(r.Context(), err)
	requestID := chimw.GetReqID(ctx)

	for _, m := range domainErrors {
		if errors.Is(err, m.target) {
			slog.DebugContext(ctx, "request rejected", "request_id", requestID, "code", m.code, "error", err)
			RespondError(w, m.status, m.code, err.Error())
			return
		}
	}
	slog.ErrorContext(ctx, "unhandled domain error", "request_id", requestID, "error", err)
	RespondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}
