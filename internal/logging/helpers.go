package logging

import "context"

// update копирует текущий logCtx из контекста, применяет fn и кладёт результат обратно.
func update(ctx context.Context, fn func(*logCtx)) context.Context {
	c, _ := ctx.Value(key).(logCtx)
	fn(&c)
	return context.WithValue(ctx, key, c)
}

// WithLogRequestID добавляет request ID в контекст.
func WithLogRequestID(ctx context.Context, requestID string) context.Context {
	return update(ctx, func(c *logCtx) { c.RequestID = requestID })
}

// WithLogRequestPath добавляет путь запроса в контекст.
func WithLogRequestPath(ctx context.Context, path string) context.Context {
	return update(ctx, func(c *logCtx) { c.Path = path })
}

// WithLogRequestMethod добавляет метод запроса в контекст.
func WithLogRequestMethod(ctx context.Context, method string) context.Context {
	return update(ctx, func(c *logCtx) { c.Method = method })
}

// WithLogRequestStatus добавляет статус ответа в контекст.
func WithLogRequestStatus(ctx context.Context, status int) context.Context {
	return update(ctx, func(c *logCtx) { c.Status = status })
}

// WithLogRequestDuration добавляет длительность запроса в контекст.
func WithLogRequestDuration(ctx context.Context, duration string) context.Context {
	return update(ctx, func(c *logCtx) { c.RequestDuration = duration })
}

// WithLogGameID добавляет идентификатор игры в контекст.
func WithLogGameID(ctx context.Context, gameID string) context.Context {
	return update(ctx, func(c *logCtx) { c.GameID = gameID })
}

// WithLogParticipantID добавляет идентификатор участника в контекст.
func WithLogParticipantID(ctx context.Context, participantID string) context.Context {
	return update(ctx, func(c *logCtx) { c.ParticipantID = participantID })
}

// WithLogRosterSize добавляет размер состава игры в контекст.
func WithLogRosterSize(ctx context.Context, size int) context.Context {
	return update(ctx, func(c *logCtx) { c.RosterSize = size })
}

// WithLogOutcome добавляет итог жеребьёвки в контекст.
func WithLogOutcome(ctx context.Context, outcome string) context.Context {
	return update(ctx, func(c *logCtx) { c.Outcome = outcome })
}
