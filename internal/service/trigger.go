package service

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"secret-santa-service/internal/domain"
	"secret-santa-service/internal/logging"
	"secret-santa-service/internal/matching"
	"secret-santa-service/internal/metrics"
	"secret-santa-service/internal/notifier"
	"secret-santa-service/internal/repository"
	"secret-santa-service/internal/tracing"
)

// TriggerGame проводит жеребьёвку игры.
//
// Первый вызов под блокировкой строки игры строит распределение и фиксирует его
// вместе с флагом triggered в одной транзакции.
// Повторный вызов (или вызов, проигравший гонку за флаг) распределение не пересчитывает,
// а рассылает дарителям уже сохранённые пары.
func (s *Service) TriggerGame(ctx context.Context, gameID string) (domain.TriggerResult, error) {
	ctx, cancel := s.longOperationContext(ctx)
	defer cancel()

	if err := ValidateID("game id", gameID); err != nil {
		return domain.TriggerResult{}, err
	}
	ctx = logging.WithLogGameID(ctx, gameID)
	ctx, span := tracing.Start(ctx, "service.TriggerGame", attribute.String("game.id", gameID))
	defer span.End()

	game, err := s.repo.GetGame(ctx, gameID)
	if err != nil {
		tracing.Fail(span, err)
		return domain.TriggerResult{}, err
	}
	if game.Triggered {
		return s.notifyDonors(ctx, game)
	}

	var pairs []domain.Pair
	err = s.trMgr.Do(ctx, func(ctx context.Context) error {
		// Эксклюзивная блокировка ждёт незавершённые регистрации и удаления
		// и не пускает новые, пока состав читается и пары фиксируются.
		locked, err := s.repo.LockGame(ctx, gameID, repository.LockForUpdate)
		if err != nil {
			return err
		}
		if locked.Triggered {
			return domain.ErrAlreadyTriggered
		}
		roster, err := s.repo.ListParticipants(ctx, gameID)
		if err != nil {
			return err
		}
		if len(roster) < domain.MinParticipants {
			return domain.ErrNotEnoughParticipants
		}
		ids := participantIDs(roster)
		assignment, err := s.assign(logging.WithLogRosterSize(ctx, len(ids)), ids)
		if err != nil {
			return err
		}
		pairs = assignment.Pairs(ids)
		return s.repo.CommitAssignment(ctx, gameID, pairs)
	})
	switch {
	case errors.Is(err, domain.ErrNotEnoughParticipants):
		slog.InfoContext(logging.WithLogOutcome(ctx, string(domain.TriggerOutcomeNotEnoughUsers)), "trigger skipped, roster too small")
		return domain.TriggerResult{GameID: gameID, Outcome: domain.TriggerOutcomeNotEnoughUsers}, nil
	case errors.Is(err, domain.ErrAlreadyTriggered):
		// Флаг выставил конкурентный запрос: используем его распределение
		slog.InfoContext(ctx, "game triggered concurrently, falling back to notification")
		return s.notifyDonors(ctx, game)
	case err != nil:
		tracing.Fail(span, err)
		slog.ErrorContext(ctx, "failed to trigger game", "error", err)
		return domain.TriggerResult{}, logging.WrapError(ctx, err)
	}

	metrics.IncGamesTriggered()
	span.SetAttributes(attribute.Int("assignment.pairs", len(pairs)))
	slog.InfoContext(logging.WithLogOutcome(ctx, string(domain.TriggerOutcomeAssigned)), "assignment committed", "pairs", len(pairs))
	return domain.TriggerResult{
		GameID:  gameID,
		Outcome: domain.TriggerOutcomeAssigned,
		Pairs:   len(pairs),
	}, nil
}

// assign строит распределение и отдаёт статистику попыток в метрики.
func (s *Service) assign(ctx context.Context, ids []string) (matching.Assignment, error) {
	_, span := tracing.Start(ctx, "matching.Assign", attribute.Int("roster.size", len(ids)))
	defer span.End()

	var attempts int
	assignment, err := matching.Assign(ids, s.randomizer,
		matching.WithMaxAttempts(s.cfg.Assignment.MaxAttempts),
		matching.WithAttemptObserver(func(attempt int, err error) {
			attempts = attempt
			if err != nil {
				metrics.IncAssignmentDeadEnds()
			}
		}),
	)
	metrics.ObserveAssignmentAttempts(attempts)
	span.SetAttributes(attribute.Int("assignment.attempts", attempts))
	if err != nil {
		tracing.Fail(span, err)
		slog.WarnContext(ctx, "assignment failed", "attempts", attempts, "error", err)
		return nil, err
	}
	return assignment, nil
}

// notifyDonors рассылает каждому дарителю его получателя.
// Ошибка доставки одному участнику не прерывает рассылку остальным.
func (s *Service) notifyDonors(ctx context.Context, game domain.Game) (domain.TriggerResult, error) {
	ctx, span := tracing.Start(ctx, "service.notifyDonors")
	defer span.End()

	pairings, err := s.repo.ListPairings(ctx, game.ID)
	if err != nil {
		tracing.Fail(span, err)
		return domain.TriggerResult{}, err
	}

	result := domain.TriggerResult{
		GameID:  game.ID,
		Outcome: domain.TriggerOutcomeNotified,
		Pairs:   len(pairings),
	}
	for _, pairing := range pairings {
		donorCtx := logging.WithLogParticipantID(ctx, pairing.Donor.ID)
		status, errText := domain.NotificationStatusSent, ""
		err := s.notifier.Notify(donorCtx, notifier.Notification{
			GameName:  game.Name,
			Donor:     pairing.Donor,
			Recipient: pairing.Recipient,
			LookupURL: s.lookupURL(pairing.Donor.ID),
		})
		if err != nil {
			status, errText = domain.NotificationStatusFailed, err.Error()
			result.Failed++
			slog.WarnContext(donorCtx, "failed to notify participant", "error", err)
		} else {
			result.Notified++
		}
		metrics.IncNotifications(string(status))
		if err := s.repo.RecordNotification(donorCtx, game.ID, pairing.Donor.ID, status, errText); err != nil {
			slog.WarnContext(donorCtx, "failed to record notification", "error", err)
		}
	}

	span.SetAttributes(
		attribute.Int("notifications.sent", result.Notified),
		attribute.Int("notifications.failed", result.Failed),
	)
	slog.InfoContext(logging.WithLogOutcome(ctx, string(result.Outcome)), "notifications processed",
		"sent", result.Notified,
		"failed", result.Failed,
	)
	return result, nil
}

// lookupURL постоянная ссылка на страницу участника.
func (s *Service) lookupURL(participantID string) string {
	return s.cfg.HTTP.PublicURL + "/participants/" + participantID
}

func participantIDs(participants []domain.Participant) []string {
	ids := make([]string, len(participants))
	for i, p := range participants {
		ids[i] = p.ID
	}
	return ids
}
