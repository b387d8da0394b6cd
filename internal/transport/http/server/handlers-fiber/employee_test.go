package handlers_fiber

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"employee-service/internal/entities"
	api "employee-service/internal/oapi"
	"employee-service/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type usecaseMock struct{ mock.Mock }

var _ usecase.EmployeeUsecaseInterface = (*usecaseMock)(nil)

func (m *usecaseMock) SaveEmployee(ctx context.Context, employee entities.Employee) (*entities.Employee, error) {
	args := m.Called(ctx, employee)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Employee), args.Error(1)
}

func (m *usecaseMock) GetAllEmployees(ctx context.Context) ([]entities.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Employee), args.Error(1)
}

func (m *usecaseMock) GetEmployeeByID(ctx context.Context, id int64) (*entities.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Employee), args.Error(1)
}

func (m *usecaseMock) UpdateEmployee(ctx context.Context, employee entities.Employee) (*entities.Employee, error) {
	args := m.Called(ctx, employee)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Employee), args.Error(1)
}

func (m *usecaseMock) DeleteEmployee(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func newTestApp(uc usecase.EmployeeUsecaseInterface) *fiber.App {
	app := fiber.New()
	api.RegisterHandlers(app, NewHandler(zap.NewNop().Sugar(), uc))
	return app
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(raw))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func decodeEmployee(t *testing.T, resp *http.Response) api.Employee {
	t.Helper()

	var e api.Employee
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))
	return e
}

func TestCreateEmployee(t *testing.T) {
	uc := &usecaseMock{}
	app := newTestApp(uc)

	in := entities.Employee{FirstName: "Ramesh", LastName: "Fadatare", Email: "ramesh.fadatare@gmail.com"}
	out := in
	out.ID = 1
	uc.On("SaveEmployee", mock.Anything, in).Return(&out, nil)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/employees", api.Employee{
		FirstName: in.FirstName, LastName: in.LastName, Email: in.Email,
	}))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeEmployee(t, resp)
	require.NotNil(t, body.Id)
	require.Equal(t, int64(1), *body.Id)
	require.Equal(t, in.FirstName, body.FirstName)
	require.Equal(t, in.LastName, body.LastName)
	require.Equal(t, in.Email, body.Email)
	uc.AssertExpectations(t)
}

func TestCreateEmployeeConflict(t *testing.T) {
	uc := &usecaseMock{}
	app := newTestApp(uc)

	uc.On("SaveEmployee", mock.Anything, mock.Anything).Return(nil, entities.ErrEmployeeExists)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/employees", api.Employee{
		FirstName: "Ramesh", LastName: "Fadatare", Email: "ramesh.fadatare@gmail.com",
	}))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusConflict, resp.StatusCode)
	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, api.EMPLOYEEEXISTS, body.Error.Code)
}

func TestCreateEmployeeInvalidBody(t *testing.T) {
	uc := &usecaseMock{}
	app := newTestApp(uc)

	req := httptest.NewRequest(http.MethodPost, "/api/employees", bytes.NewBufferString("{not json"))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	uc.AssertNotCalled(t, "SaveEmployee", mock.Anything, mock.Anything)
}

func TestListEmployees(t *testing.T) {
	uc := &usecaseMock{}
	app := newTestApp(uc)

	uc.On("GetAllEmployees", mock.Anything).Return([]entities.Employee{
		{ID: 1, FirstName: "Ramesh", LastName: "Fadatare", Email: "ramesh.fadatare@gmail.com"},
		{ID: 2, FirstName: "Tony", LastName: "Stark", Email: "tony.stark@gmail.com"},
	}, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/employees", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body []api.Employee
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 2)
}

func TestListEmployeesEmptyIsArray(t *testing.T) {
	uc := &usecaseMock{}
	app := newTestApp(uc)

	uc.On("GetAllEmployees", mock.Anything).Return([]entities.Employee{}, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/employees", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, "[]", string(raw))
}

func TestGetEmployeeById(t *testing.T) {
	uc := &usecaseMock{}
	app := newTestApp(uc)

	uc.On("GetEmployeeByID", mock.Anything, int64(1)).
		Return(&entities.Employee{ID: 1, FirstName: "Ramesh", LastName: "Fadatare", Email: "ramesh.fadatare@gmail.com"}, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/employees/1", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeEmployee(t, resp)
	require.Equal(t, "Ramesh", body.FirstName)
}

func TestGetEmployeeByIdNotFound(t *testing.T) {
	uc := &usecaseMock{}
	app := newTestApp(uc)

	uc.On("GetEmployeeByID", mock.Anything, int64(1)).Return(nil, entities.ErrEmployeeNotFound)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/employees/1", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Empty(t, raw)
}

func TestGetEmployeeByIdMalformedID(t *testing.T) {
	uc := &usecaseMock{}
	app := newTestApp(uc)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/employees/abc", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	uc.AssertNotCalled(t, "GetEmployeeByID", mock.Anything, mock.Anything)
}

func TestUpdateEmployeeUsesPathID(t *testing.T) {
	uc := &usecaseMock{}
	app := newTestApp(uc)

	stored := &entities.Employee{ID: 1, FirstName: "Ramesh", LastName: "Fadatare", Email: "ramesh.fadatare@gmail.com"}
	want := entities.Employee{ID: 1, FirstName: "Ram", LastName: "Jadvah", Email: "ram@gmail.com"}
	uc.On("GetEmployeeByID", mock.Anything, int64(1)).Return(stored, nil)
	uc.On("UpdateEmployee", mock.Anything, want).Return(&want, nil)

	bodyID := int64(77)
	resp, err := app.Test(jsonRequest(t, http.MethodPut, "/api/employees/1", api.Employee{
		Id: &bodyID, FirstName: "Ram", LastName: "Jadvah", Email: "ram@gmail.com",
	}))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeEmployee(t, resp)
	require.Equal(t, int64(1), *body.Id)
	require.Equal(t, "Ram", body.FirstName)
	require.Equal(t, "Jadvah", body.LastName)
	require.Equal(t, "ram@gmail.com", body.Email)
	uc.AssertExpectations(t)
}

func TestUpdateEmployeeNotFound(t *testing.T) {
	uc := &usecaseMock{}
	app := newTestApp(uc)

	uc.On("GetEmployeeByID", mock.Anything, int64(0)).Return(nil, entities.ErrEmployeeNotFound)

	resp, err := app.Test(jsonRequest(t, http.MethodPut, "/api/employees/0", api.Employee{
		FirstName: "Ram", LastName: "Jadvah", Email: "ram@gmail.com",
	}))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	uc.AssertNotCalled(t, "UpdateEmployee", mock.Anything, mock.Anything)
}

func TestUpdateEmployeeConflict(t *testing.T) {
	uc := &usecaseMock{}
	app := newTestApp(uc)

	stored := &entities.Employee{ID: 1, FirstName: "Ramesh", LastName: "Fadatare", Email: "ramesh.fadatare@gmail.com"}
	want := entities.Employee{ID: 1, FirstName: "Ramesh", LastName: "Fadatare", Email: "ram@gmail.com"}
	uc.On("GetEmployeeByID", mock.Anything, int64(1)).Return(stored, nil)
	uc.On("UpdateEmployee", mock.Anything, want).Return(nil, entities.ErrEmployeeExists)

	resp, err := app.Test(jsonRequest(t, http.MethodPut, "/api/employees/1", api.Employee{
		FirstName: "Ramesh", LastName: "Fadatare", Email: "ram@gmail.com",
	}))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusConflict, resp.StatusCode)
	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, api.EMPLOYEEEXISTS, body.Error.Code)
	uc.AssertExpectations(t)
}

func TestLookupStoreFailuresAreLogged(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	uc := &usecaseMock{}
	app := fiber.New()
	api.RegisterHandlers(app, NewHandler(zap.New(core).Sugar(), uc))

	uc.On("GetEmployeeByID", mock.Anything, int64(1)).Return(nil, errors.New("connection reset"))
	uc.On("GetEmployeeByID", mock.Anything, int64(2)).Return(nil, entities.ErrEmployeeNotFound)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/employees/1", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, http.MethodPut, "/api/employees/1", api.Employee{
		FirstName: "Ram", LastName: "Jadvah", Email: "ram@gmail.com",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/employees/2", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	require.Equal(t, 2, logs.FilterMessage("failed to get employee").Len())
	uc.AssertNotCalled(t, "UpdateEmployee", mock.Anything, mock.Anything)
}

func TestDeleteEmployee(t *testing.T) {
	uc := &usecaseMock{}
	app := newTestApp(uc)

	uc.On("DeleteEmployee", mock.Anything, int64(1)).Return(nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/employees/1", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, "Employee deleted successfully", string(raw))
	uc.AssertExpectations(t)
}

func TestDeleteEmployeeStoreFailure(t *testing.T) {
	uc := &usecaseMock{}
	app := newTestApp(uc)

	uc.On("DeleteEmployee", mock.Anything, int64(1)).Return(errors.New("disk I/O error"))

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/employees/1", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
