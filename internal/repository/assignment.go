package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"secret-santa-service/internal/domain"
)

var pairingColumns = []string{
	"p.game_id",
	"d.participant_id", "d.game_id", "d.name", "d.email", "d.wishes", "d.created_at",
	"r.participant_id", "r.game_id", "r.name", "r.email", "r.wishes", "r.created_at",
}

// CommitAssignment атомарно переводит игру в состояние triggered и сохраняет пары.
// Флаг меняется через compare-and-set: проигравший конкурентный вызов получает ErrAlreadyTriggered.
func (s *Storage) CommitAssignment(ctx context.Context, gameID string, pairs []domain.Pair) error {
	now := s.nower.Now()
	conn := s.conn(ctx)

	updateSQL, updateArgs, err := s.sb.
		Update("games").
		Set("triggered", true).
		Set("triggered_at", now).
		Where(squirrel.Eq{"game_id": gameID}).
		Where(squirrel.Eq{"triggered": false}).
		ToSql()
	if err != nil {
		slog.ErrorContext(ctx, "failed to build trigger query", "error", err)
		return fmt.Errorf("%w: %v", ErrBuildQuery, err)
	}
	cmd, err := conn.Exec(ctx, updateSQL, updateArgs...)
	if err != nil {
		slog.ErrorContext(ctx, "failed to mark game triggered", "error", err)
		return fmt.Errorf("%w: %v", ErrExecuteQuery, err)
	}
	if cmd.RowsAffected() == 0 {
		exists, err := s.gameExists(ctx, gameID)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrGameNotFound
		}
		return domain.ErrAlreadyTriggered
	}

	if len(pairs) == 0 {
		return nil
	}
	// Все пары уходят одним батчем, как и события назначения
	batch := &pgx.Batch{}
	for _, pair := range pairs {
		insertSQL, insertArgs, err := s.sb.
			Insert("partners").
			Columns("game_id", "donor_id", "gifted_id", "created_at").
			Values(gameID, pair.DonorID, pair.RecipientID, now).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrBuildQuery, err)
		}
		batch.Queue(insertSQL, insertArgs...)
	}
	if err := conn.SendBatch(ctx, batch).Close(); err != nil {
		slog.ErrorContext(ctx, "failed to insert partners", "error", err, "pairs", len(pairs))
		return fmt.Errorf("%w: %v", ErrExecuteQuery, err)
	}
	return nil
}

// ListPairings возвращает сохранённые пары игры в порядке регистрации дарителей.
func (s *Storage) ListPairings(ctx context.Context, gameID string) ([]domain.Pairing, error) {
	selectSQL, selectArgs, err := s.pairingQuery().
		Where(squirrel.Eq{"p.game_id": gameID}).
		OrderBy("d.created_at ASC", "d.participant_id ASC").
		ToSql()
	if err != nil {
		slog.ErrorContext(ctx, "failed to build list pairings query", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrBuildQuery, err)
	}

	rows, err := s.conn(ctx).Query(ctx, selectSQL, selectArgs...)
	if err != nil {
		slog.ErrorContext(ctx, "failed to query pairings", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrExecuteQuery, err)
	}
	defer rows.Close()

	pairings := []domain.Pairing{}
	for rows.Next() {
		pairing, err := scanPairing(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrScanResult, err)
		}
		pairings = append(pairings, pairing)
	}
	return pairings, rows.Err()
}

// GetPairing возвращает пару, в которой участник является дарителем.
func (s *Storage) GetPairing(ctx context.Context, donorID string) (domain.Pairing, error) {
	selectSQL, selectArgs, err := s.pairingQuery().
		Where(squirrel.Eq{"p.donor_id": donorID}).
		ToSql()
	if err != nil {
		return domain.Pairing{}, fmt.Errorf("%w: %v", ErrBuildQuery, err)
	}

	pairing, err := scanPairing(s.conn(ctx).QueryRow(ctx, selectSQL, selectArgs...))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Pairing{}, domain.ErrPartnerNotFound
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to scan pairing", "error", err)
		return domain.Pairing{}, fmt.Errorf("%w: %v", ErrScanResult, err)
	}
	return pairing, nil
}

// RecordNotification сохраняет результат отправки письма для аудита.
func (s *Storage) RecordNotification(ctx context.Context, gameID, participantID string, status domain.NotificationStatus, errText string) error {
	insertSQL, insertArgs, err := s.sb.
		Insert("notification_events").
		Columns("game_id", "participant_id", "status", "error", "created_at").
		Values(gameID, participantID, string(status), errText, s.nower.Now()).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildQuery, err)
	}
	if _, err := s.conn(ctx).Exec(ctx, insertSQL, insertArgs...); err != nil {
		slog.ErrorContext(ctx, "failed to record notification", "error", err)
		return fmt.Errorf("%w: %v", ErrExecuteQuery, err)
	}
	return nil
}

func (s *Storage) pairingQuery() squirrel.SelectBuilder {
	return s.sb.
		Select(pairingColumns...).
		From("partners p").
		Join("participants d ON d.participant_id = p.donor_id").
		Join("participants r ON r.participant_id = p.gifted_id")
}

func scanPairing(row scanner) (domain.Pairing, error) {
	var p domain.Pairing
	err := row.Scan(
		&p.GameID,
		&p.Donor.ID, &p.Donor.GameID, &p.Donor.Name, &p.Donor.Email, &p.Donor.Wishes, &p.Donor.CreatedAt,
		&p.Recipient.ID, &p.Recipient.GameID, &p.Recipient.Name, &p.Recipient.Email, &p.Recipient.Wishes, &p.Recipient.CreatedAt,
	)
	return p, err
}
