// Package repository provides factory for repositories.
package repository

import (
	"context"
	"fmt"

	"employee-service/config"
	"employee-service/internal/repository/memory"
	"employee-service/internal/repository/postgres"
	"employee-service/internal/repository/sqlite"

	"go.uber.org/zap"
)

// Repository aggregates all persistence interfaces.
type Repository interface {
	LifecycleInterface
	EmployeeInterface
}

// New constructs repository backend by name.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Repository, error) {
	switch name {
	case config.BackendPostgres:
		return postgres.New(ctx, log, cfg), nil
	case config.BackendSQLite:
		return sqlite.New(log, cfg), nil
	case config.BackendMemory:
		return memory.New(log), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}
