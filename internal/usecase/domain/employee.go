// Package domain contains application services orchestrating domain logic by employee.
package domain

import (
	"context"
	"errors"
	"fmt"

	"employee-service/internal/entities"
)

// SaveEmployee creates an employee unless the email is already taken.
func (u *Usecase) SaveEmployee(ctx context.Context, employee entities.Employee) (*entities.Employee, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	existing, err := u.repo.FindByEmail(ctx, employee.Email)
	switch {
	case err == nil:
		u.log.Warnw("employee email already taken", "email", employee.Email, "employee_id", existing.ID)
		return nil, fmt.Errorf("%w: email %s", entities.ErrEmployeeExists, employee.Email)
	case !errors.Is(err, entities.ErrEmployeeNotFound):
		return nil, err
	}

	employee.ID = 0
	res, err := u.repo.Save(ctx, employee)
	if err != nil {
		return nil, err
	}
	u.log.Infow("employee create", "employee_id", res.ID)
	return res, nil
}

// GetAllEmployees returns every employee.
func (u *Usecase) GetAllEmployees(ctx context.Context) ([]entities.Employee, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.FindAll(ctx)
}

// GetEmployeeByID returns the employee or entities.ErrEmployeeNotFound.
func (u *Usecase) GetEmployeeByID(ctx context.Context, id int64) (*entities.Employee, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.FindByID(ctx, id)
}

// UpdateEmployee overwrites the stored employee identified by employee.ID.
func (u *Usecase) UpdateEmployee(ctx context.Context, employee entities.Employee) (*entities.Employee, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if employee.IsNew() {
		return nil, fmt.Errorf("%w: employee id is required", entities.ErrInvalidArgument)
	}
	res, err := u.repo.Save(ctx, employee)
	if err != nil {
		return nil, err
	}
	u.log.Infow("employee update", "employee_id", res.ID)
	return res, nil
}

// DeleteEmployee removes the employee; missing ids are not an error.
func (u *Usecase) DeleteEmployee(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := u.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	u.log.Infow("employee delete", "employee_id", id)
	return nil
}
