// Package entities contains core business entities.
package entities

// Employee is a domain model of a staff member.
// A zero ID means the record has not been persisted yet.
type Employee struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
}

// IsNew reports whether the store has not assigned an id yet.
func (e Employee) IsNew() bool {
	return e.ID == 0
}
