package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"secret-santa-service/internal/domain"
	"secret-santa-service/internal/logging"
	"secret-santa-service/internal/metrics"
	"secret-santa-service/internal/repository"
)

// RegisterInput данные регистрации участника.
type RegisterInput struct {
	GameID string
	Name   string
	Email  string
	Wishes string
}

// Register добавляет участника в игру. После жеребьёвки состав закрыт.
func (s *Service) Register(ctx context.Context, input RegisterInput) (domain.Participant, error) {
	ctx, cancel := s.shortOperationContext(ctx)
	defer cancel()

	if err := ValidateID("game id", input.GameID); err != nil {
		return domain.Participant{}, err
	}
	participant := domain.Participant{
		ID:     uuid.NewString(),
		GameID: input.GameID,
		Name:   NormalizeText(input.Name),
		Wishes: NormalizeText(input.Wishes),
	}
	if err := ValidateParticipantName(participant.Name); err != nil {
		return domain.Participant{}, err
	}
	email, err := NormalizeEmail(input.Email)
	if err != nil {
		return domain.Participant{}, err
	}
	participant.Email = email
	if err := ValidateWishes(participant.Wishes); err != nil {
		return domain.Participant{}, err
	}

	// Блокировка игры на чтение упорядочивает регистрацию с жеребьёвкой:
	// участник либо попадает в состав, который прочтёт жеребьёвка, либо видит triggered.
	var created domain.Participant
	err = s.trMgr.Do(ctx, func(ctx context.Context) error {
		if err := s.ensureRosterOpen(ctx, input.GameID); err != nil {
			return err
		}
		created, err = s.repo.CreateParticipant(ctx, participant)
		return err
	})
	if err != nil {
		return domain.Participant{}, err
	}
	metrics.IncParticipantsRegistered()
	ctx = logging.WithLogGameID(ctx, created.GameID)
	slog.InfoContext(logging.WithLogParticipantID(ctx, created.ID), "participant registered")
	return created, nil
}

// RemoveParticipant исключает участника из игры, пока жеребьёвка не проведена.
func (s *Service) RemoveParticipant(ctx context.Context, participantID string) error {
	ctx, cancel := s.shortOperationContext(ctx)
	defer cancel()

	if err := ValidateID("participant id", participantID); err != nil {
		return err
	}
	participant, err := s.repo.GetParticipant(ctx, participantID)
	if err != nil {
		return err
	}
	return s.trMgr.Do(ctx, func(ctx context.Context) error {
		if err := s.ensureRosterOpen(ctx, participant.GameID); err != nil {
			return err
		}
		return s.repo.RemoveParticipant(ctx, participantID)
	})
}

// ensureRosterOpen блокирует игру до конца транзакции и проверяет, что жеребьёвки ещё не было.
func (s *Service) ensureRosterOpen(ctx context.Context, gameID string) error {
	game, err := s.repo.LockGame(ctx, gameID, repository.LockForShare)
	if err != nil {
		return err
	}
	if game.Triggered {
		return domain.ErrGameTriggered
	}
	return nil
}

// GetParticipantView возвращает данные участника и, после жеребьёвки, его получателя.
func (s *Service) GetParticipantView(ctx context.Context, participantID string) (domain.ParticipantView, error) {
	ctx, cancel := s.shortOperationContext(ctx)
	defer cancel()

	if err := ValidateID("participant id", participantID); err != nil {
		return domain.ParticipantView{}, err
	}
	participant, err := s.repo.GetParticipant(ctx, participantID)
	if err != nil {
		return domain.ParticipantView{}, err
	}
	view := domain.ParticipantView{Participant: participant}

	pairing, err := s.repo.GetPairing(ctx, participantID)
	switch {
	case errors.Is(err, domain.ErrPartnerNotFound):
		return view, nil
	case err != nil:
		return domain.ParticipantView{}, err
	}
	recipient := pairing.Recipient
	view.Recipient = &recipient
	return view, nil
}

// UpdateWishes обновляет пожелания участника. Доступно и после жеребьёвки.
func (s *Service) UpdateWishes(ctx context.Context, participantID, wishes string) (domain.Participant, error) {
	ctx, cancel := s.shortOperationContext(ctx)
	defer cancel()

	if err := ValidateID("participant id", participantID); err != nil {
		return domain.Participant{}, err
	}
	wishes = NormalizeText(wishes)
	if err := ValidateWishes(wishes); err != nil {
		return domain.Participant{}, err
	}
	return s.repo.UpdateWishes(ctx, participantID, wishes)
}
