package service

import (
	"context"
	"time"

	trm "github.com/avito-tech/go-transaction-manager/trm/v2"

	"secret-santa-service/internal/config"
	"secret-santa-service/internal/matching"
	"secret-santa-service/internal/notifier"
	"secret-santa-service/internal/repository"
)

const (
	// DefaultOperationTimeout таймаут по умолчанию для обычных операций
	DefaultOperationTimeout = 30 * time.Second
	// DefaultLongOperationTimeout таймаут по умолчанию для длительных операций (рассылка)
	DefaultLongOperationTimeout = 60 * time.Second
)

// Repository описывает операции, которые требуются сервису.
type Repository interface {
	repository.Repository
}

// Notifier доставляет дарителю письмо с его получателем.
type Notifier interface {
	Notify(ctx context.Context, notification notifier.Notification) error
}

// Service агрегирует бизнес-логику приложения.
type Service struct {
	repo       Repository
	health     repository.HealthChecker
	cfg        config.Config
	trMgr      trm.Manager
	randomizer matching.Source
	notifier   Notifier
}

func New(repo Repository, cfg config.Config, trMgr trm.Manager, randomizer matching.Source, notifier Notifier) *Service {
	svc := &Service{
		repo:       repo,
		cfg:        cfg,
		trMgr:      trMgr,
		randomizer: randomizer,
		notifier:   notifier,
	}
	if svc.cfg.Timeouts.Operation <= 0 {
		svc.cfg.Timeouts.Operation = DefaultOperationTimeout
	}
	if svc.cfg.Timeouts.LongOperation <= 0 {
		svc.cfg.Timeouts.LongOperation = DefaultLongOperationTimeout
	}
	if checker, ok := repo.(repository.HealthChecker); ok {
		svc.health = checker
	}
	return svc
}

// HealthCheck возвращает состояние зависимостей сервиса.
func (s *Service) HealthCheck(ctx context.Context) error {
	if s.health == nil {
		return nil
	}
	ctx, cancel := s.shortOperationContext(ctx)
	defer cancel()
	return s.health.Ping(ctx)
}

// shortOperationContext создаёт контекст с таймаутом для обычных операций.
func (s *Service) shortOperationContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.cfg.Timeouts.Operation)
}

// longOperationContext создаёт контекст с таймаутом для длительных операций.
func (s *Service) longOperationContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.cfg.Timeouts.LongOperation)
}
