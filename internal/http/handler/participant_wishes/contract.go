package participantwishes

import (
	"context"

	"secret-santa-service/internal/domain"
)

type UseCase interface {
	UpdateWishes(ctx context.Context, participantID, wishes string) (domain.Participant, error)
}
