package postgres

import (
	"context"
	"errors"
	"fmt"

	"employee-service/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

const (
	selectEmployeeByIDQuery    = `SELECT id, first_name, last_name, email FROM employees WHERE id=$1`
	selectEmployeeByEmailQuery = `SELECT id, first_name, last_name, email FROM employees WHERE email=$1`
	selectEmployeeByNameQuery  = `SELECT id, first_name, last_name, email FROM employees WHERE first_name=$1 AND last_name=$2 ORDER BY id LIMIT 1`
	selectEmployeesQuery       = `SELECT id, first_name, last_name, email FROM employees ORDER BY id`
	insertEmployeeQuery        = `INSERT INTO employees(first_name, last_name, email) VALUES ($1,$2,$3) RETURNING id`
	updateEmployeeQuery        = `
UPDATE employees
SET first_name = $2, last_name = $3, email = $4
WHERE id = $1
RETURNING id, first_name, last_name, email
`
	deleteEmployeeQuery     = `DELETE FROM employees WHERE id=$1`
	deleteAllEmployeesQuery = `DELETE FROM employees`
)

// FindByID returns the employee with the given id.
func (p *Postgres) FindByID(ctx context.Context, id int64) (*entities.Employee, error) {
	return p.findOne(ctx, "find by id", selectEmployeeByIDQuery, id)
}

// FindByEmail returns the employee owning the email.
func (p *Postgres) FindByEmail(ctx context.Context, email string) (*entities.Employee, error) {
	return p.findOne(ctx, "find by email", selectEmployeeByEmailQuery, email)
}

// FindByName returns the first employee matching both names exactly.
func (p *Postgres) FindByName(ctx context.Context, firstName, lastName string) (*entities.Employee, error) {
	return p.findOne(ctx, "find by name", selectEmployeeByNameQuery, firstName, lastName)
}

func (p *Postgres) findOne(ctx context.Context, op, query string, args ...any) (*entities.Employee, error) {
	var e entities.Employee
	if err := p.db.QueryRow(ctx, query, args...).Scan(&e.ID, &e.FirstName, &e.LastName, &e.Email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrEmployeeNotFound
		}
		p.log.Errorw("failed to query employee", "error", err, "op", op)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &e, nil
}

// FindAll returns every stored employee ordered by id.
func (p *Postgres) FindAll(ctx context.Context) ([]entities.Employee, error) {
	rows, err := p.db.Query(ctx, selectEmployeesQuery)
	if err != nil {
		p.log.Errorw("failed to list employees", "error", err)
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]entities.Employee, 0)
	for rows.Next() {
		var e entities.Employee
		if err := rows.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Email); err != nil {
			p.log.Errorw("failed to scan employee", "error", err)
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		p.log.Errorw("failed to iterate employees", "error", err)
		return nil, fmt.Errorf("iterate employees: %w", err)
	}

	return employees, nil
}

// Save inserts a new employee or overwrites an existing one by id.
func (p *Postgres) Save(ctx context.Context, employee entities.Employee) (*entities.Employee, error) {
	if employee.IsNew() {
		return p.insert(ctx, employee)
	}
	return p.update(ctx, employee)
}

func (p *Postgres) insert(ctx context.Context, e entities.Employee) (*entities.Employee, error) {
	if err := p.db.QueryRow(ctx, insertEmployeeQuery, e.FirstName, e.LastName, e.Email).Scan(&e.ID); err != nil {
		if isUniqueViolation(err) {
			return nil, entities.ErrEmployeeExists
		}
		p.log.Errorw("failed to insert employee", "error", err, "email", e.Email)
		return nil, fmt.Errorf("insert employee: %w", err)
	}

	p.log.Infow("employee created", "employee_id", e.ID)
	return &e, nil
}

func (p *Postgres) update(ctx context.Context, e entities.Employee) (*entities.Employee, error) {
	var res entities.Employee
	err := p.db.QueryRow(ctx, updateEmployeeQuery, e.ID, e.FirstName, e.LastName, e.Email).
		Scan(&res.ID, &res.FirstName, &res.LastName, &res.Email)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, entities.ErrEmployeeNotFound
		case isUniqueViolation(err):
			return nil, entities.ErrEmployeeExists
		}
		p.log.Errorw("failed to update employee", "error", err, "employee_id", e.ID)
		return nil, fmt.Errorf("update employee: %w", err)
	}

	p.log.Infow("employee updated", "employee_id", res.ID)
	return &res, nil
}

// DeleteByID removes the employee if present.
func (p *Postgres) DeleteByID(ctx context.Context, id int64) error {
	tag, err := p.db.Exec(ctx, deleteEmployeeQuery, id)
	if err != nil {
		p.log.Errorw("failed to delete employee", "error", err, "employee_id", id)
		return fmt.Errorf("delete employee: %w", err)
	}
	p.log.Infow("employee deleted", "employee_id", id, "rows", tag.RowsAffected())
	return nil
}

// DeleteAll truncates the employee table content.
func (p *Postgres) DeleteAll(ctx context.Context) error {
	if _, err := p.db.Exec(ctx, deleteAllEmployeesQuery); err != nil {
		p.log.Errorw("failed to delete employees", "error", err)
		return fmt.Errorf("delete employees: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
