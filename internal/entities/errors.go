// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrEmployeeNotFound is returned when an employee does not exist.
	ErrEmployeeNotFound = errors.New("employee not found")
	// ErrEmployeeExists signals an email already taken by another employee.
	ErrEmployeeExists = errors.New("employee exists")
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
)
