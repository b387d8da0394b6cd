// Package memory implements the repository on an in-process map.
// Records are copied on the way in and out, so callers never share state with the store.
package memory

import (
	"context"
	"sort"
	"sync"

	"employee-service/internal/entities"

	"go.uber.org/zap"
)

// Memory keeps employees keyed by id and enforces unique emails.
type Memory struct {
	log *zap.SugaredLogger

	mu        sync.RWMutex
	employees map[int64]entities.Employee
	nextID    int64
}

// New creates an empty in-memory repository.
func New(log *zap.SugaredLogger) *Memory {
	return &Memory{
		log:       log.Named("repo.memory"),
		employees: make(map[int64]entities.Employee),
	}
}

// OnStart is a no-op for the memory backend.
func (m *Memory) OnStart(_ context.Context) error {
	m.log.Infow("memory store ready")
	return nil
}

// OnStop is a no-op for the memory backend.
func (m *Memory) OnStop(_ context.Context) error {
	return nil
}

// FindByID returns the employee with the given id.
func (m *Memory) FindByID(_ context.Context, id int64) (*entities.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.employees[id]
	if !ok {
		return nil, entities.ErrEmployeeNotFound
	}
	return &e, nil
}

// FindByEmail returns the employee owning the email.
func (m *Memory) FindByEmail(_ context.Context, email string) (*entities.Employee, error) {
	return m.findFirst(func(e entities.Employee) bool { return e.Email == email })
}

// FindByName returns the lowest-id employee matching both names exactly.
func (m *Memory) FindByName(_ context.Context, firstName, lastName string) (*entities.Employee, error) {
	return m.findFirst(func(e entities.Employee) bool {
		return e.FirstName == firstName && e.LastName == lastName
	})
}

func (m *Memory) findFirst(match func(entities.Employee) bool) (*entities.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, e := range m.sorted() {
		if match(e) {
			return &e, nil
		}
	}
	return nil, entities.ErrEmployeeNotFound
}

// FindAll returns every stored employee ordered by id.
func (m *Memory) FindAll(_ context.Context) ([]entities.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.sorted(), nil
}

// Save inserts a new employee or overwrites an existing one by id.
func (m *Memory) Save(_ context.Context, employee entities.Employee) (*entities.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !employee.IsNew() {
		if _, ok := m.employees[employee.ID]; !ok {
			return nil, entities.ErrEmployeeNotFound
		}
	}
	if m.emailTaken(employee.Email, employee.ID) {
		return nil, entities.ErrEmployeeExists
	}

	created := employee.IsNew()
	if created {
		m.nextID++
		employee.ID = m.nextID
	}
	m.employees[employee.ID] = employee

	if created {
		m.log.Infow("employee created", "employee_id", employee.ID)
	} else {
		m.log.Infow("employee updated", "employee_id", employee.ID)
	}
	return &employee, nil
}

// DeleteByID removes the employee if present.
func (m *Memory) DeleteByID(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.employees, id)
	m.log.Infow("employee deleted", "employee_id", id)
	return nil
}

// DeleteAll removes every employee. Ids keep growing afterwards.
func (m *Memory) DeleteAll(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.employees = make(map[int64]entities.Employee)
	return nil
}

// emailTaken must be called with mu held.
func (m *Memory) emailTaken(email string, selfID int64) bool {
	for id, e := range m.employees {
		if id != selfID && e.Email == email {
			return true
		}
	}
	return false
}

// sorted must be called with mu held.
func (m *Memory) sorted() []entities.Employee {
	res := make([]entities.Employee, 0, len(m.employees))
	for _, e := range m.employees {
		res = append(res, e)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res
}
