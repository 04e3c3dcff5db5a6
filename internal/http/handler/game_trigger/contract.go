package gametrigger

import (
	"context"

	"secret-santa-service/internal/domain"
)

type UseCase interface {
	TriggerGame(ctx context.Context, gameID string) (domain.TriggerResult, error)
}
