package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"employee-service/internal/entities"

	"github.com/mattn/go-sqlite3"
)

const (
	selectEmployeeByIDQuery    = `SELECT id, first_name, last_name, email FROM employees WHERE id = ?`
	selectEmployeeByEmailQuery = `SELECT id, first_name, last_name, email FROM employees WHERE email = ?`
	selectEmployeeByNameQuery  = `SELECT id, first_name, last_name, email FROM employees WHERE first_name = ? AND last_name = ? ORDER BY id LIMIT 1`
	selectEmployeesQuery       = `SELECT id, first_name, last_name, email FROM employees ORDER BY id`
	insertEmployeeQuery        = `INSERT INTO employees (first_name, last_name, email) VALUES (?, ?, ?)`
	updateEmployeeQuery        = `UPDATE employees SET first_name = ?, last_name = ?, email = ? WHERE id = ?`
	deleteEmployeeQuery        = `DELETE FROM employees WHERE id = ?`
	deleteAllEmployeesQuery    = `DELETE FROM employees`
)

// FindByID returns the employee with the given id.
func (s *SQLite) FindByID(ctx context.Context, id int64) (*entities.Employee, error) {
	return s.findOne(ctx, "find by id", selectEmployeeByIDQuery, id)
}

// FindByEmail returns the employee owning the email.
func (s *SQLite) FindByEmail(ctx context.Context, email string) (*entities.Employee, error) {
	return s.findOne(ctx, "find by email", selectEmployeeByEmailQuery, email)
}

// FindByName returns the first employee matching both names exactly.
func (s *SQLite) FindByName(ctx context.Context, firstName, lastName string) (*entities.Employee, error) {
	return s.findOne(ctx, "find by name", selectEmployeeByNameQuery, firstName, lastName)
}

func (s *SQLite) findOne(ctx context.Context, op, query string, args ...any) (*entities.Employee, error) {
	var e entities.Employee
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&e.ID, &e.FirstName, &e.LastName, &e.Email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrEmployeeNotFound
		}
		s.log.Errorw("failed to query employee", "error", err, "op", op)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &e, nil
}

// FindAll returns every stored employee ordered by id.
func (s *SQLite) FindAll(ctx context.Context) ([]entities.Employee, error) {
	rows, err := s.db.QueryContext(ctx, selectEmployeesQuery)
	if err != nil {
		s.log.Errorw("failed to list employees", "error", err)
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer func() { _ = rows.Close() }()

	employees := make([]entities.Employee, 0)
	for rows.Next() {
		var e entities.Employee
		if err := rows.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Email); err != nil {
			s.log.Errorw("failed to scan employee", "error", err)
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		s.log.Errorw("failed to iterate employees", "error", err)
		return nil, fmt.Errorf("iterate employees: %w", err)
	}
	return employees, nil
}

// Save inserts a new employee or overwrites an existing one by id.
func (s *SQLite) Save(ctx context.Context, employee entities.Employee) (*entities.Employee, error) {
	if employee.IsNew() {
		return s.insert(ctx, employee)
	}
	return s.update(ctx, employee)
}

func (s *SQLite) insert(ctx context.Context, e entities.Employee) (*entities.Employee, error) {
	res, err := s.db.ExecContext(ctx, insertEmployeeQuery, e.FirstName, e.LastName, e.Email)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, entities.ErrEmployeeExists
		}
		s.log.Errorw("failed to insert employee", "error", err, "email", e.Email)
		return nil, fmt.Errorf("insert employee: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert employee id: %w", err)
	}
	e.ID = id

	s.log.Infow("employee created", "employee_id", e.ID)
	return &e, nil
}

func (s *SQLite) update(ctx context.Context, e entities.Employee) (*entities.Employee, error) {
	res, err := s.db.ExecContext(ctx, updateEmployeeQuery, e.FirstName, e.LastName, e.Email, e.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, entities.ErrEmployeeExists
		}
		s.log.Errorw("failed to update employee", "error", err, "employee_id", e.ID)
		return nil, fmt.Errorf("update employee: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update employee rows: %w", err)
	}
	if affected == 0 {
		return nil, entities.ErrEmployeeNotFound
	}

	s.log.Infow("employee updated", "employee_id", e.ID)
	return &e, nil
}

// DeleteByID removes the employee if present.
func (s *SQLite) DeleteByID(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, deleteEmployeeQuery, id); err != nil {
		s.log.Errorw("failed to delete employee", "error", err, "employee_id", id)
		return fmt.Errorf("delete employee: %w", err)
	}
	s.log.Infow("employee deleted", "employee_id", id)
	return nil
}

// DeleteAll removes every employee row.
func (s *SQLite) DeleteAll(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, deleteAllEmployeesQuery); err != nil {
		s.log.Errorw("failed to delete employees", "error", err)
		return fmt.Errorf("delete employees: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}
