package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"

	"secret-santa-service/internal/domain"
	"secret-santa-service/internal/infrastructure/nower"
)

type pgxPool interface {
	trmpgx.Tr
	Close()
	Ping(ctx context.Context) error
}

var gameColumns = []string{"game_id", "name", "image_url", "description", "triggered", "triggered_at", "created_at"}

// Storage инкапсулирует работу с PostgreSQL.
// Запросы выполняются в транзакции из контекста (transaction manager) либо напрямую в пуле.
type Storage struct {
	pool   pgxPool
	getter *trmpgx.CtxGetter
	nower  nower.Nower
	sb     squirrel.StatementBuilderType
}

// New создаёт новый слой хранения.
func New(pool pgxPool, nower nower.Nower) *Storage {
	return &Storage{
		pool:   pool,
		getter: trmpgx.DefaultCtxGetter,
		nower:  nower,
		sb:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Close освобождает соединения пула.
func (s *Storage) Close() {
	s.pool.Close()
}

// Ping проверяет доступность подключения к БД.
func (s *Storage) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// conn возвращает текущую транзакцию из контекста или пул.
func (s *Storage) conn(ctx context.Context) trmpgx.Tr {
	return s.getter.DefaultTrOrDB(ctx, s.pool)
}

// CreateGame создаёт игру. Имя игры уникально.
func (s *Storage) CreateGame(ctx context.Context, game domain.Game) (domain.Game, error) {
	game.CreatedAt = s.nower.Now()
	insertSQL, insertArgs, err := s.sb.
		Insert("games").
		Columns("game_id", "name", "image_url", "description", "triggered", "created_at").
		Values(game.ID, game.Name, game.ImageURL, game.Text, false, game.CreatedAt).
		ToSql()
	if err != nil {
		slog.ErrorContext(ctx, "failed to build insert game query", "error", err)
		return domain.Game{}, fmt.Errorf("%w: %v", ErrBuildQuery, err)
	}
	if _, err := s.conn(ctx).Exec(ctx, insertSQL, insertArgs...); err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return domain.Game{}, domain.ErrGameExists
		}
		slog.ErrorContext(ctx, "failed to insert game", "error", err)
		return domain.Game{}, fmt.Errorf("%w: %v", ErrExecuteQuery, err)
	}
	game.Triggered = false
	game.TriggeredAt = nil
	return game, nil
}

// LockMode режим блокировки строки игры на время транзакции.
type LockMode string

const (
	// LockForShare не даёт жеребьёвке изменить игру, пока меняется состав.
	LockForShare LockMode = "FOR SHARE"
	// LockForUpdate берёт жеребьёвка: ждёт завершения регистраций и блокирует новые.
	LockForUpdate LockMode = "FOR UPDATE"
)

// GetGame возвращает игру по идентификатору.
func (s *Storage) GetGame(ctx context.Context, gameID string) (domain.Game, error) {
	return s.selectGame(ctx, s.sb.Select(gameColumns...).From("games").Where(squirrel.Eq{"game_id": gameID}))
}

// LockGame читает игру с блокировкой строки. Вне транзакции блокировка снимается сразу после чтения.
func (s *Storage) LockGame(ctx context.Context, gameID string, mode LockMode) (domain.Game, error) {
	return s.selectGame(ctx, s.sb.
		Select(gameColumns...).
		From("games").
		Where(squirrel.Eq{"game_id": gameID}).
		Suffix(string(mode)))
}

func (s *Storage) selectGame(ctx context.Context, query squirrel.SelectBuilder) (domain.Game, error) {
	selectSQL, selectArgs, err := query.ToSql()
	if err != nil {
		slog.ErrorContext(ctx, "failed to build select game query", "error", err)
		return domain.Game{}, fmt.Errorf("%w: %v", ErrBuildQuery, err)
	}

	game, err := scanGame(s.conn(ctx).QueryRow(ctx, selectSQL, selectArgs...))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Game{}, domain.ErrGameNotFound
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to scan game", "error", err)
		return domain.Game{}, fmt.Errorf("%w: %v", ErrScanResult, err)
	}
	return game, nil
}

// ListGames возвращает все игры в порядке создания.
func (s *Storage) ListGames(ctx context.Context) ([]domain.Game, error) {
	selectSQL, selectArgs, err := s.sb.
		Select(gameColumns...).
		From("games").
		OrderBy("created_at ASC", "name ASC").
		ToSql()
	if err != nil {
		slog.ErrorContext(ctx, "failed to build list games query", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrBuildQuery, err)
	}

	rows, err := s.conn(ctx).Query(ctx, selectSQL, selectArgs...)
	if err != nil {
		slog.ErrorContext(ctx, "failed to query games", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrExecuteQuery, err)
	}
	defer rows.Close()

	games := []domain.Game{}
	for rows.Next() {
		game, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrScanResult, err)
		}
		games = append(games, game)
	}
	return games, rows.Err()
}

// DeleteGame удаляет игру; участники и пары удаляются каскадно.
func (s *Storage) DeleteGame(ctx context.Context, gameID string) error {
	deleteSQL, deleteArgs, err := s.sb.
		Delete("games").
		Where(squirrel.Eq{"game_id": gameID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildQuery, err)
	}
	cmd, err := s.conn(ctx).Exec(ctx, deleteSQL, deleteArgs...)
	if err != nil {
		slog.ErrorContext(ctx, "failed to delete game", "error", err)
		return fmt.Errorf("%w: %v", ErrExecuteQuery, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrGameNotFound
	}
	return nil
}

// gameExists проверяет наличие игры.
func (s *Storage) gameExists(ctx context.Context, gameID string) (bool, error) {
	existsSQL, existsArgs, err := s.sb.
		Select("1").
		From("games").
		Where(squirrel.Eq{"game_id": gameID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrBuildQuery, err)
	}
	var exists bool
	if err := s.conn(ctx).QueryRow(ctx, "SELECT EXISTS("+existsSQL+")", existsArgs...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: %v", ErrExecuteQuery, err)
	}
	return exists, nil
}

func scanGame(row scanner) (domain.Game, error) {
	var g domain.Game
	err := row.Scan(&g.ID, &g.Name, &g.ImageURL, &g.Text, &g.Triggered, &g.TriggeredAt, &g.CreatedAt)
	return g, err
}
