package handlers_fiber

import (
	"errors"
	"net/http"

	"employee-service/internal/entities"
	api "employee-service/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.INTERNAL
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrEmployeeNotFound):
		return notFound(c)
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = api.BADREQUEST
		msg = err.Error()
	case errors.Is(err, entities.ErrEmployeeExists):
		status = http.StatusConflict
		code = api.EMPLOYEEEXISTS
		msg = "employee with this email already exists"
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

// notFound answers 404 with an empty body.
func notFound(c *fiber.Ctx) error {
	c.Status(http.StatusNotFound)
	return nil
}

func errorResponse(code api.ErrorResponseErrorCode, msg string) api.ErrorResponse {
	return api.ErrorResponse{Error: struct {
		Code    api.ErrorResponseErrorCode `json:"code"`
		Message string                     `json:"message"`
	}{Code: code, Message: msg}}
}
