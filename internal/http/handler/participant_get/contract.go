package participantget

import (
	"context"

	"secret-santa-service/internal/domain"
)

type UseCase interface {
	GetParticipantView(ctx context.Context, participantID string) (domain.ParticipantView, error)
}
