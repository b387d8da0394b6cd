package handlers_fiber

import (
	"errors"
	"net/http"

	"employee-service/internal/entities"
	"employee-service/internal/mapper"
	api "employee-service/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

const deletedMessage = "Employee deleted successfully"

// CreateEmployee handles employee creation.
func (h *Handler) CreateEmployee(c *fiber.Ctx) error {
	var body api.CreateEmployeeJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.BADREQUEST, "invalid body"))
	}

	employee, err := h.uc.SaveEmployee(c.UserContext(), mapper.FromOAPIEmployee(body))
	if err != nil {
		if !errors.Is(err, entities.ErrEmployeeExists) {
			h.log.Errorw("failed to create employee", "error", err.Error())
		}
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToOAPIEmployee(*employee))
}

// ListEmployees returns every employee.
func (h *Handler) ListEmployees(c *fiber.Ctx) error {
	employees, err := h.uc.GetAllEmployees(c.UserContext())
	if err != nil {
		h.log.Errorw("failed to list employees", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIEmployeeList(employees))
}

// GetEmployeeById returns a single employee or an empty 404.
func (h *Handler) GetEmployeeById(c *fiber.Ctx, id int64) error {
	employee, err := h.uc.GetEmployeeByID(c.UserContext(), id)
	if err != nil {
		if !errors.Is(err, entities.ErrEmployeeNotFound) {
			h.log.Errorw("failed to get employee", "error", err.Error(), "employee_id", id)
		}
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIEmployee(*employee))
}

// UpdateEmployee overwrites names and email of the employee at the path id.
// An id in the body is ignored.
func (h *Handler) UpdateEmployee(c *fiber.Ctx, id int64) error {
	var body api.UpdateEmployeeJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.BADREQUEST, "invalid body"))
	}

	saved, err := h.uc.GetEmployeeByID(c.UserContext(), id)
	if err != nil {
		if !errors.Is(err, entities.ErrEmployeeNotFound) {
			h.log.Errorw("failed to get employee", "error", err.Error(), "employee_id", id)
		}
		return writeError(c, err)
	}
	saved.FirstName = body.FirstName
	saved.LastName = body.LastName
	saved.Email = body.Email

	updated, err := h.uc.UpdateEmployee(c.UserContext(), *saved)
	if err != nil {
		h.log.Errorw("failed to update employee", "error", err.Error(), "employee_id", id)
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIEmployee(*updated))
}

// DeleteEmployee removes the employee; unknown ids still answer 200.
func (h *Handler) DeleteEmployee(c *fiber.Ctx, id int64) error {
	if err := h.uc.DeleteEmployee(c.UserContext(), id); err != nil {
		h.log.Errorw("failed to delete employee", "error", err.Error(), "employee_id", id)
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).SendString(deletedMessage)
}
