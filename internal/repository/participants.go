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

var participantColumns = []string{"participant_id", "game_id", "name", "email", "wishes", "created_at"}

// CreateParticipant регистрирует участника в игре.
// Один e-mail может быть зарегистрирован в игре только один раз.
func (s *Storage) CreateParticipant(ctx context.Context, participant domain.Participant) (domain.Participant, error) {
	now := s.nower.Now()
	participant.CreatedAt = now
	insertSQL, insertArgs, err := s.sb.
		Insert("participants").
		Columns("participant_id", "game_id", "name", "email", "wishes", "created_at", "updated_at").
		Values(participant.ID, participant.GameID, participant.Name, participant.Email, participant.Wishes, now, now).
		ToSql()
	if err != nil {
		slog.ErrorContext(ctx, "failed to build insert participant query", "error", err)
		return domain.Participant{}, fmt.Errorf("%w: %v", ErrBuildQuery, err)
	}
	if _, err := s.conn(ctx).Exec(ctx, insertSQL, insertArgs...); err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return domain.Participant{}, domain.ErrParticipantExists
		case pgForeignKeyViolation:
			return domain.Participant{}, domain.ErrGameNotFound
		}
		slog.ErrorContext(ctx, "failed to insert participant", "error", err)
		return domain.Participant{}, fmt.Errorf("%w: %v", ErrExecuteQuery, err)
	}
	return participant, nil
}

// GetParticipant возвращает участника, если он не удалён.
func (s *Storage) GetParticipant(ctx context.Context, participantID string) (domain.Participant, error) {
	selectSQL, selectArgs, err := s.sb.
		Select(participantColumns...).
		From("participants").
		Where(squirrel.Eq{"participant_id": participantID, "deleted_at": nil}).
		ToSql()
	if err != nil {
		slog.ErrorContext(ctx, "failed to build select participant query", "error", err)
		return domain.Participant{}, fmt.Errorf("%w: %v", ErrBuildQuery, err)
	}

	p, err := scanParticipant(s.conn(ctx).QueryRow(ctx, selectSQL, selectArgs...))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Participant{}, domain.ErrParticipantNotFound
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to scan participant", "error", err)
		return domain.Participant{}, fmt.Errorf("%w: %v", ErrScanResult, err)
	}
	return p, nil
}

// ListParticipants возвращает состав игры в порядке регистрации без удалённых участников.
func (s *Storage) ListParticipants(ctx context.Context, gameID string) ([]domain.Participant, error) {
	selectSQL, selectArgs, err := s.sb.
		Select(participantColumns...).
		From("participants").
		Where(squirrel.Eq{"game_id": gameID, "deleted_at": nil}).
		OrderBy("created_at ASC", "participant_id ASC").
		ToSql()
	if err != nil {
		slog.ErrorContext(ctx, "failed to build list participants query", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrBuildQuery, err)
	}

	rows, err := s.conn(ctx).Query(ctx, selectSQL, selectArgs...)
	if err != nil {
		slog.ErrorContext(ctx, "failed to query participants", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrExecuteQuery, err)
	}
	defer rows.Close()

	participants := []domain.Participant{}
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrScanResult, err)
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}

// RemoveParticipant помечает участника удалённым.
func (s *Storage) RemoveParticipant(ctx context.Context, participantID string) error {
	now := s.nower.Now()
	updateSQL, updateArgs, err := s.sb.
		Update("participants").
		Set("deleted_at", now).
		Set("updated_at", now).
		Where(squirrel.Eq{"participant_id": participantID, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildQuery, err)
	}
	cmd, err := s.conn(ctx).Exec(ctx, updateSQL, updateArgs...)
	if err != nil {
		slog.ErrorContext(ctx, "failed to remove participant", "error", err)
		return fmt.Errorf("%w: %v", ErrExecuteQuery, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrParticipantNotFound
	}
	return nil
}

// UpdateWishes сохраняет список пожеланий участника.
func (s *Storage) UpdateWishes(ctx context.Context, participantID, wishes string) (domain.Participant, error) {
	updateSQL, updateArgs, err := s.sb.
		Update("participants").
		Set("wishes", wishes).
		Set("updated_at", s.nower.Now()).
		Where(squirrel.Eq{"participant_id": participantID, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return domain.Participant{}, fmt.Errorf("%w: %v", ErrBuildQuery, err)
	}
	cmd, err := s.conn(ctx).Exec(ctx, updateSQL, updateArgs...)
	if err != nil {
		slog.ErrorContext(ctx, "failed to update wishes", "error", err)
		return domain.Participant{}, fmt.Errorf("%w: %v", ErrExecuteQuery, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.Participant{}, domain.ErrParticipantNotFound
	}
	return s.GetParticipant(ctx, participantID)
}

func scanParticipant(row scanner) (domain.Participant, error) {
	var p domain.Participant
	err := row.Scan(&p.ID, &p.GameID, &p.Name, &p.Email, &p.Wishes, &p.CreatedAt)
	return p, err
}
