package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"secret-santa-service/internal/domain"
	"secret-santa-service/internal/logging"
	"secret-santa-service/internal/metrics"
)

// CreateGameInput данные для создания игры.
type CreateGameInput struct {
	Name     string
	ImageURL string
	Text     string
}

// CreateGame создаёт новую игру, открытую для регистрации.
func (s *Service) CreateGame(ctx context.Context, input CreateGameInput) (domain.Game, error) {
	ctx, cancel := s.shortOperationContext(ctx)
	defer cancel()

	game := domain.Game{
		ID:       uuid.NewString(),
		Name:     NormalizeText(input.Name),
		ImageURL: input.ImageURL,
		Text:     NormalizeText(input.Text),
	}
	if err := ValidateGameName(game.Name); err != nil {
		return domain.Game{}, err
	}
	if err := ValidateImageURL(game.ImageURL); err != nil {
		return domain.Game{}, err
	}
	if err := ValidateGameText(game.Text); err != nil {
		return domain.Game{}, err
	}

	created, err := s.repo.CreateGame(ctx, game)
	if err != nil {
		return domain.Game{}, err
	}
	metrics.IncGamesCreated()
	slog.InfoContext(logging.WithLogGameID(ctx, created.ID), "game created", "name", created.Name)
	return created, nil
}

// ListGames возвращает все игры.
func (s *Service) ListGames(ctx context.Context) ([]domain.Game, error) {
	ctx, cancel := s.shortOperationContext(ctx)
	defer cancel()

	return s.repo.ListGames(ctx)
}

// GetGame возвращает игру вместе с текущим составом.
func (s *Service) GetGame(ctx context.Context, gameID string) (domain.GameDetails, error) {
	ctx, cancel := s.shortOperationContext(ctx)
	defer cancel()

	if err := ValidateID("game id", gameID); err != nil {
		return domain.GameDetails{}, err
	}
	game, err := s.repo.GetGame(ctx, gameID)
	if err != nil {
		return domain.GameDetails{}, err
	}
	participants, err := s.repo.ListParticipants(ctx, gameID)
	if err != nil {
		return domain.GameDetails{}, err
	}
	return domain.GameDetails{Game: game, Participants: participants}, nil
}

// DeleteGame удаляет игру вместе с участниками и результатами жеребьёвки.
func (s *Service) DeleteGame(ctx context.Context, gameID string) error {
	ctx, cancel := s.shortOperationContext(ctx)
	defer cancel()

	if err := ValidateID("game id", gameID); err != nil {
		return err
	}
	if err := s.repo.DeleteGame(ctx, gameID); err != nil {
		return err
	}
	slog.InfoContext(logging.WithLogGameID(ctx, gameID), "game deleted")
	return nil
}
