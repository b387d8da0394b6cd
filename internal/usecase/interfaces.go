package usecase

import (
	"context"

	"employee-service/internal/entities"
)

// EmployeeUsecaseInterface abstracts employee operations for delivery layer.
type EmployeeUsecaseInterface interface {
	SaveEmployee(ctx context.Context, employee entities.Employee) (*entities.Employee, error)
	GetAllEmployees(ctx context.Context) ([]entities.Employee, error)
	GetEmployeeByID(ctx context.Context, id int64) (*entities.Employee, error)
	UpdateEmployee(ctx context.Context, employee entities.Employee) (*entities.Employee, error)
	DeleteEmployee(ctx context.Context, id int64) error
}
