package domain

import (
	"context"
	"time"

	"employee-service/internal/repository"

	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	log     *zap.SugaredLogger
	repo    repository.EmployeeInterface
	timeout time.Duration
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	repo repository.EmployeeInterface,
	timeout time.Duration,
) *Usecase {
	return &Usecase{
		log:     log,
		repo:    repo,
		timeout: timeout,
	}
}

// withTimeout bounds ctx by d; a non-positive d leaves ctx as is.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
