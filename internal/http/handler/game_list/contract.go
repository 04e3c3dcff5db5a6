package gamelist

import (
	"context"

	"secret-santa-service/internal/domain"
)

type UseCase interface {
	ListGames(ctx context.Context) ([]domain.Game, error)
}
