package employee_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anzallkiyteb-cell/bey/internal/employee"
	employeeerrors "github.com/anzallkiyteb-cell/bey/internal/employee/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeService struct {
	GetAllFn      func(ctx context.Context, req employee.ListEmployeesRequest) ([]employee.EmployeeResponse, error)
	GetOptionsFn  func(ctx context.Context) ([]employee.EmployeeOption, error)
	GetByIDFn     func(ctx context.Context, id string) (employee.EmployeeResponse, error)
	LookupFn      func(ctx context.Context, id string) (employee.Employee, error)
	ActiveFn      func(ctx context.Context) ([]employee.Employee, error)
	ByDeviceIDsFn func(ctx context.Context, ids []string) (map[string]employee.Employee, error)
}

func (f *fakeEmployeeService) GetAll(ctx context.Context, req employee.ListEmployeesRequest) ([]employee.EmployeeResponse, error) {
	return f.GetAllFn(ctx, req)
}
func (f *fakeEmployeeService) GetOptions(ctx context.Context) ([]employee.EmployeeOption, error) {
	return f.GetOptionsFn(ctx)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeEmployeeService) Lookup(ctx context.Context, id string) (employee.Employee, error) {
	return f.LookupFn(ctx, id)
}
func (f *fakeEmployeeService) Active(ctx context.Context) ([]employee.Employee, error) {
	return f.ActiveFn(ctx)
}
func (f *fakeEmployeeService) ByDeviceIDs(ctx context.Context, ids []string) (map[string]employee.Employee, error) {
	return f.ByDeviceIDsFn(ctx, ids)
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeEmployeeService{
		GetAllFn: func(ctx context.Context, req employee.ListEmployeesRequest) ([]employee.EmployeeResponse, error) {
			assert.Equal(t, "bar", req.Department)
			assert.True(t, req.IncludeBlocked)
			return []employee.EmployeeResponse{{ID: uuid.NewString(), FullName: "Amel"}}, nil
		},
	}
	h := employee.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/employees?department=bar&include_blocked=true", nil)

	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Amel")
}

func TestEmployeeHandler_GetByID_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeEmployeeService{
		GetByIDFn: func(ctx context.Context, id string) (employee.EmployeeResponse, error) {
			return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		},
	}
	h := employee.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: uuid.NewString()}}
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/employees/x", nil)

	h.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var env apiEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.False(t, env.Ok)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}
