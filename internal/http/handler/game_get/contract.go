package gameget

import (
	"context"

	"secret-santa-service/internal/domain"
)

type UseCase interface {
	GetGame(ctx context.Context, gameID string) (domain.GameDetails, error)
}
