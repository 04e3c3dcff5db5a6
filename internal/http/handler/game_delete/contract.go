package gamedelete

import "context"

type UseCase interface {
	DeleteGame(ctx context.Context, gameID string) error
}
