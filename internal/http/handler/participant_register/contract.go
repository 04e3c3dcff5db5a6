package participantregister

import (
	"context"

	"secret-santa-service/internal/domain"
	"secret-santa-service/internal/service"
)

type UseCase interface {
	Register(ctx context.Context, input service.RegisterInput) (domain.Participant, error)
}
