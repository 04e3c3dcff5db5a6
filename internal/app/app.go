package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	pgxv5 "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	trm "github.com/avito-tech/go-transaction-manager/trm/v2"
	manager "github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"

	"secret-santa-service/internal/config"
	"secret-santa-service/internal/http/router"
	"secret-santa-service/internal/infrastructure/nower"
	"secret-santa-service/internal/infrastructure/randomizer"
	"secret-santa-service/internal/notifier"
	"secret-santa-service/internal/repository"
	"secret-santa-service/internal/service"
	"secret-santa-service/internal/tracing"
)

// App отвечает за жизненный цикл сервиса.
type App struct {
	cfg            config.Config
	server         *http.Server
	repo           *repository.Storage
	trMgr          trm.Manager
	tracerShutdown func(context.Context) error
}

// New подготавливает все зависимости приложения: БД, репозитории, сервисы, HTTP-роутер.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	// Применяем миграции перед подключением к БД
	if err := runMigrations(cfg); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	// Подключаемся к БД с повторными попытками
	pool, err := connectWithRetry(ctx, cfg)
	if err != nil {
		return nil, err
	}

	// Инициализация transaction manager для управления транзакциями
	trMgr := manager.Must(pgxv5.NewDefaultFactory(pool))

	tracerShutdown, err := tracing.Setup(ctx, cfg.Tracing)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("tracing: %w", err)
	}

	// Инициализация инфраструктурных зависимостей
	nowerImpl := nower.New()
	randomizerImpl := newRandomizer(cfg.Assignment)

	repo := repository.New(pool, nowerImpl)
	svc := service.New(repo, cfg, trMgr, randomizerImpl, notifier.New(newSender(cfg.Mail)))

	var swaggerSpec []byte
	if data, err := os.ReadFile(cfg.Swagger.SpecPath); err != nil {
		slog.Warn("failed to load swagger spec", "path", cfg.Swagger.SpecPath, "error", err)
	} else {
		swaggerSpec = data
	}
	handler := router.New(svc, swaggerSpec)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTP.Port,
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	return &App{
		cfg:            cfg,
		server:         srv,
		repo:           repo,
		trMgr:          trMgr,
		tracerShutdown: tracerShutdown,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		// Graceful shutdown: даём серверу время завершить обработку текущих запросов
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Timeouts.Shutdown)
		defer cancel()
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		a.close(shutdownCtx)
		return nil
	case err := <-errCh:
		// Ошибка при запуске сервера
		a.close(context.Background())
		return err
	}
}

// close освобождает пул соединений и дописывает буфер трейсов.
func (a *App) close(ctx context.Context) {
	a.repo.Close()
	if a.tracerShutdown == nil {
		return
	}
	if err := a.tracerShutdown(ctx); err != nil {
		slog.Warn("failed to flush traces", "error", err)
	}
}

// newSender выбирает транспорт писем: SMTP при заданном сервере, иначе только лог.
func newSender(cfg config.MailConfig) notifier.Sender {
	if cfg.Host == "" {
		slog.Warn("mail server is not configured, notifications will only be logged")
		return notifier.LogSender{}
	}
	return notifier.NewSMTPSender(cfg)
}

// newRandomizer фиксирует зерно генератора, если оно задано в конфигурации.
func newRandomizer(cfg config.AssignmentConfig) randomizer.Randomizer {
	if cfg.Seed != 0 {
		return randomizer.NewWithSeed(cfg.Seed)
	}
	return randomizer.New()
}

func runMigrations(cfg config.Config) error {
	m, err := migrate.New("file://"+cfg.Database.MigrationsPath, cfg.Database.URL)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

// connectWithRetry подключается к БД с экспоненциальной задержкой между попытками.
func connectWithRetry(ctx context.Context, cfg config.Config) (*pgxpool.Pool, error) {
	var lastErr error
	// Стратегия повторных попыток: 0s, 1s, 2s, 5s
	backoff := []time.Duration{0, time.Second, 2 * time.Second, 5 * time.Second}
	for attempt, delay := range backoff {
		if delay > 0 {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
		poolCfg, err := pgxpool.ParseConfig(cfg.Database.URL)
		if err != nil {
			lastErr = err
			slog.Warn("failed to parse connection string", "attempt", attempt+1, "error", err)
			continue
		}
		if cfg.Database.MaxConnections > 0 {
			poolCfg.MaxConns = cfg.Database.MaxConnections
		}
		if cfg.Database.MinConnections >= 0 {
			poolCfg.MinConns = cfg.Database.MinConnections
		}
		if cfg.Database.MaxConnIdleTime > 0 {
			poolCfg.MaxConnIdleTime = cfg.Database.MaxConnIdleTime
		}
		if cfg.Database.MaxConnLifetime > 0 {
			poolCfg.MaxConnLifetime = cfg.Database.MaxConnLifetime
		}
		pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
		if err == nil {
			return pool, nil
		}
		lastErr = err
		slog.Warn("failed to connect to database, retrying", "attempt", attempt+1, "error", err)
	}
	return nil, fmt.Errorf("connect db: %w", lastErr)
}
