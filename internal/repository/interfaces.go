// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"employee-service/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// EmployeeInterface exposes employee persistence operations.
//
// Lookups return entities.ErrEmployeeNotFound for absent rows and
// writes that would duplicate an email return entities.ErrEmployeeExists.
type EmployeeInterface interface {
	FindByID(ctx context.Context, id int64) (*entities.Employee, error)
	FindByEmail(ctx context.Context, email string) (*entities.Employee, error)
	FindByName(ctx context.Context, firstName, lastName string) (*entities.Employee, error)
	FindAll(ctx context.Context) ([]entities.Employee, error)
	Save(ctx context.Context, employee entities.Employee) (*entities.Employee, error)
	DeleteByID(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error
}
