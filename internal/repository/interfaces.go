package repository

import (
	"context"

	"secret-santa-service/internal/domain"
)

// Repository объединяет все доменные репозитории.
type Repository interface {
	GameRepository
	ParticipantRepository
	AssignmentRepository
}

// GameRepository содержит операции для работы с играми.
type GameRepository interface {
	CreateGame(ctx context.Context, game domain.Game) (domain.Game, error)
	GetGame(ctx context.Context, gameID string) (domain.Game, error)
	// LockGame читает игру с блокировкой строки до конца текущей транзакции.
	LockGame(ctx context.Context, gameID string, mode LockMode) (domain.Game, error)
	ListGames(ctx context.Context) ([]domain.Game, error)
	DeleteGame(ctx context.Context, gameID string) error
}

// ParticipantRepository содержит операции для работы с участниками.
type ParticipantRepository interface {
	CreateParticipant(ctx context.Context, participant domain.Participant) (domain.Participant, error)
	GetParticipant(ctx context.Context, participantID string) (domain.Participant, error)
	ListParticipants(ctx context.Context, gameID string) ([]domain.Participant, error)
	RemoveParticipant(ctx context.Context, participantID string) error
	UpdateWishes(ctx context.Context, participantID, wishes string) (domain.Participant, error)
}

// AssignmentRepository содержит операции фиксации и чтения жеребьёвки.
type AssignmentRepository interface {
	// CommitAssignment переводит игру в triggered и сохраняет пары.
	// Должен выполняться внутри транзакции, иначе пары и флаг могут разойтись.
	CommitAssignment(ctx context.Context, gameID string, pairs []domain.Pair) error
	ListPairings(ctx context.Context, gameID string) ([]domain.Pairing, error)
	GetPairing(ctx context.Context, donorID string) (domain.Pairing, error)
	RecordNotification(ctx context.Context, gameID, participantID string, status domain.NotificationStatus, errText string) error
}

// HealthChecker описывает метод проверки соединения.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
