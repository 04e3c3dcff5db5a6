package gamecreate

import (
	"context"

	"secret-santa-service/internal/domain"
	"secret-santa-service/internal/service"
)

type UseCase interface {
	CreateGame(ctx context.Context, input service.CreateGameInput) (domain.Game, error)
}
