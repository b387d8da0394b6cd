// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"employee-service/internal/entities"
	api "employee-service/internal/oapi"
)

// FromOAPIEmployee builds an entities.Employee from transport DTO.
// A missing or null id maps to zero.
func FromOAPIEmployee(src api.Employee) entities.Employee {
	e := entities.Employee{
		FirstName: src.FirstName,
		LastName:  src.LastName,
		Email:     src.Email,
	}
	if src.Id != nil {
		e.ID = *src.Id
	}
	return e
}

// ToOAPIEmployee maps entities.Employee to transport model.
func ToOAPIEmployee(e entities.Employee) api.Employee {
	id := e.ID
	return api.Employee{
		Id:        &id,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Email:     e.Email,
	}
}

// ToOAPIEmployeeList maps a slice of entities.Employee to transport slice.
func ToOAPIEmployeeList(list []entities.Employee) []api.Employee {
	res := make([]api.Employee, 0, len(list))
	for _, e := range list {
		res = append(res, ToOAPIEmployee(e))
	}
	return res
}
