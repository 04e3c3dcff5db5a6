package logging

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
)

type keyType int

const key = keyType(0)

// logCtx поля запроса и игры, которые попадают в каждую запись лога.
type logCtx struct {
	RequestID       string
	Status          int
	RequestDuration string
	Method          string
	Path            string
	GameID          string
	ParticipantID   string
	RosterSize      int
	Outcome         string
}

// attrs возвращает непустые поля в виде slog-атрибутов.
func (c logCtx) attrs() []slog.Attr {
	attrs := make([]slog.Attr, 0, 9)
	addString := func(k, v string) {
		if v != "" {
			attrs = append(attrs, slog.String(k, v))
		}
	}
	addInt := func(k string, v int) {
		if v != 0 {
			attrs = append(attrs, slog.Int(k, v))
		}
	}

	addString("request_id", c.RequestID)
	addString("method", c.Method)
	addString("path", c.Path)
	addInt("status", c.Status)
	addString("duration", c.RequestDuration)
	addString("game_id", c.GameID)
	addString("participant_id", c.ParticipantID)
	addInt("roster_size", c.RosterSize)
	addString("outcome", c.Outcome)
	return attrs
}

// LoggerImpl оборачивает slog.Handler для добавления контекстной информации.
type LoggerImpl struct {
	next slog.Handler
}

func NewLoggerImpl(next slog.Handler) *LoggerImpl {
	return &LoggerImpl{next: next}
}

// Enabled проверяет, включён ли указанный уровень логирования.
func (h *LoggerImpl) Enabled(ctx context.Context, rec slog.Level) bool {
	return h.next.Enabled(ctx, rec)
}

// Handle дописывает в запись поля из контекста и место вызова.
func (h *LoggerImpl) Handle(ctx context.Context, rec slog.Record) error {
	if c, ok := ctx.Value(key).(logCtx); ok {
		rec.AddAttrs(c.attrs()...)
	}

	if rec.PC != 0 {
		fs := runtime.CallersFrames([]uintptr{rec.PC})
		f, _ := fs.Next()
		rec.AddAttrs(slog.String("source", fmt.Sprintf("%s:%d", f.File, f.Line)))
	}

	return h.next.Handle(ctx, rec)
}

func (h *LoggerImpl) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &LoggerImpl{next: h.next.WithAttrs(attrs)}
}

func (h *LoggerImpl) WithGroup(name string) slog.Handler {
	return &LoggerImpl{next: h.next.WithGroup(name)}
}
