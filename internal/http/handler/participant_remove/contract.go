package participantremove

import "context"

type UseCase interface {
	RemoveParticipant(ctx context.Context, participantID string) error
}
