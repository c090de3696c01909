package employee_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/anzallkiyteb-cell/bey/internal/employee"
	employeeerrors "github.com/anzallkiyteb-cell/bey/internal/employee/errors"
	employeeMock "github.com/anzallkiyteb-cell/bey/internal/employee/mock"
	"github.com/anzallkiyteb-cell/bey/internal/shared/apperror"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	service   employee.Service
	repo      *employeeMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	dbRedis, redisMock := redismock.NewClientMock()
	repo := employeeMock.NewMockRepository(ctrl)

	return &serviceDeps{
		service:   employee.NewService(repo, dbRedis),
		repo:      repo,
		redismock: redisMock,
	}
}

func strPtr(s string) *string { return &s }

func TestEmployeeService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("filters by query and orders by department", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().
			FindAll(ctx, employee.ListFilter{}).
			Return([]employee.Employee{
				{ID: uuid.New(), FullName: "Sami Bar", Department: "bar"},
				{ID: uuid.New(), FullName: "Sana Serveur", Department: "serveur"},
				{ID: uuid.New(), FullName: "Karim", Department: "cuisine"},
			}, nil)

		resp, err := deps.service.GetAll(ctx, employee.ListEmployeesRequest{Query: "sa"})

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "Sana Serveur", resp[0].FullName)
		assert.Equal(t, "Sami Bar", resp[1].FullName)
	})

	t.Run("repository failure is internal", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().
			FindAll(ctx, gomock.Any()).
			Return(nil, errors.New("db down"))

		_, err := deps.service.GetAll(ctx, employee.ListEmployeesRequest{})

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperror.CodeInternalError, appErr.Code)
	})
}

func TestEmployeeService_GetOptions(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit", func(t *testing.T) {
		deps := setupServiceTest(t)
		cached := []employee.EmployeeOption{{ID: uuid.NewString(), Name: "Amel", Department: "bar"}}
		payload, _ := json.Marshal(cached)
		deps.redismock.ExpectGet(employee.EmployeeOptionsKey).SetVal(string(payload))

		resp, err := deps.service.GetOptions(ctx)

		assert.NoError(t, err)
		assert.Equal(t, cached, resp)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()
		deps.redismock.ExpectGet(employee.EmployeeOptionsKey).RedisNil()
		deps.repo.EXPECT().
			FindOptions(ctx).
			Return([]employee.Employee{{ID: id, Username: "amel"}}, nil)

		want := []employee.EmployeeOption{{ID: id.String(), Name: "amel", Department: employee.UnassignedDepartment}}
		payload, _ := json.Marshal(want)
		deps.redismock.ExpectSet(employee.EmployeeOptionsKey, payload, 10*time.Minute).SetVal("OK")

		resp, err := deps.service.GetOptions(ctx)

		assert.NoError(t, err)
		assert.Equal(t, want, resp)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("repository error", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.redismock.ExpectGet(employee.EmployeeOptionsKey).RedisNil()
		deps.repo.EXPECT().FindOptions(ctx).Return(nil, errors.New("boom"))

		_, err := deps.service.GetOptions(ctx)
		assert.Error(t, err)
	})
}

func TestEmployeeService_Lookup(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid id", func(t *testing.T) {
		deps := setupServiceTest(t)
		_, err := deps.service.Lookup(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.NewString()
		deps.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Lookup(ctx, id)
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("found", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(&employee.Employee{ID: id, BaseSalary: 1_200_000}, nil)

		resp, err := deps.service.GetByID(ctx, id.String())
		assert.NoError(t, err)
		assert.Equal(t, int64(1_200_000), resp.BaseSalary)
	})
}

func TestEmployeeService_ByDeviceIDs(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	a, b := uuid.New(), uuid.New()
	deps.repo.EXPECT().
		FindByDeviceIDs(ctx, []string{"17", "42"}).
		Return([]employee.Employee{
			{ID: a, ZktimeID: strPtr("17")},
			{ID: b, ZktimeID: strPtr("42")},
		}, nil)

	got, err := deps.service.ByDeviceIDs(ctx, []string{"17", "42"})

	assert.NoError(t, err)
	assert.Equal(t, a, got["17"].ID)
	assert.Equal(t, b, got["42"].ID)
}

func TestEmployee_Eligible(t *testing.T) {
	assert.True(t, employee.Employee{Role: "staff"}.Eligible())
	assert.False(t, employee.Employee{Role: "Admin"}.Eligible())
	assert.False(t, employee.Employee{IsBlocked: true}.Eligible())
}

func TestSortByDepartment(t *testing.T) {
	emps := []employee.Employee{
		{FullName: "Zed", Department: "zumba"},
		{FullName: "Ali", Department: "securite"},
		{FullName: "Bob", Department: "Serveur"},
		{FullName: "Aya", Department: "aardvark"},
		{FullName: "Nour", Department: ""},
	}

	employee.SortByDepartment(emps)

	names := make([]string, 0, len(emps))
	for _, e := range emps {
		names = append(names, e.FullName)
	}
	assert.Equal(t, []string{"Bob", "Ali", "Nour", "Aya", "Zed"}, names)
}
