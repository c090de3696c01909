package employee

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	employeeerrors "github.com/anzallkiyteb-cell/bey/internal/employee/errors"
	"github.com/anzallkiyteb-cell/bey/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	EmployeeOptionsKey = "employees:options"
	optionsTTL         = 10 * time.Minute
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, req ListEmployeesRequest) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context) ([]EmployeeOption, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)

	// Lookup, Active and ByDeviceIDs serve the attendance and payroll
	// engines with entity values.
	Lookup(ctx context.Context, id string) (Employee, error)
	Active(ctx context.Context) ([]Employee, error)
	ByDeviceIDs(ctx context.Context, deviceIDs []string) (map[string]Employee, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) GetAll(ctx context.Context, req ListEmployeesRequest) ([]EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("get all employees requested",
		zap.String("department", req.Department),
		zap.Bool("include_blocked", req.IncludeBlocked),
	)

	emps, err := s.repo.FindAll(ctx, ListFilter{
		Department:     req.Department,
		IncludeBlocked: req.IncludeBlocked,
	})
	if err != nil {
		log.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	q := strings.ToLower(strings.TrimSpace(req.Query))
	if q != "" {
		filtered := make([]Employee, 0, len(emps))
		for _, e := range emps {
			if strings.Contains(strings.ToLower(e.DisplayName()), q) ||
				strings.Contains(strings.ToLower(e.Username), q) {
				filtered = append(filtered, e)
			}
		}
		emps = filtered
	}

	SortByDepartment(emps)
	return mapToListResponse(emps), nil
}

func (s *service) GetOptions(ctx context.Context) ([]EmployeeOption, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, EmployeeOptionsKey).Result(); err == nil {
			var resp []EmployeeOption
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// collapse concurrent misses into one query
	v, err, _ := s.sf.Do(EmployeeOptionsKey, func() (interface{}, error) {
		emps, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		SortByDepartment(emps)
		resp := make([]EmployeeOption, 0, len(emps))
		for _, e := range emps {
			dept := e.Department
			if dept == "" {
				dept = UnassignedDepartment
			}
			resp = append(resp, EmployeeOption{ID: e.ID.String(), Name: e.DisplayName(), Department: dept})
		}

		if s.rdb != nil {
			if payload, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, EmployeeOptionsKey, payload, optionsTTL).Err(); err != nil {
					s.logger.Warn("cache employee options failed", zap.Error(err))
				}
			}
		}

		return resp, nil
	})
	if err != nil {
		s.logger.Error("get employee options failed", zap.Error(err))
		return nil, err
	}

	return v.([]EmployeeOption), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	emp, err := s.Lookup(ctx, id)
	if err != nil {
		return EmployeeResponse{}, err
	}
	return mapToResponse(emp), nil
}

func (s *service) Lookup(ctx context.Context, id string) (Employee, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Employee{}, employeeerrors.ErrInvalidEmployeeID
	}

	emp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("lookup employee failed",
			zap.String("employee_id", id),
			zap.Error(err),
		)
		return Employee{}, mapRepositoryError(err)
	}
	return *emp, nil
}

// Active returns non-blocked employees, admins included. Callers decide
// whether admins count.
func (s *service) Active(ctx context.Context) ([]Employee, error) {
	emps, err := s.repo.FindAll(ctx, ListFilter{})
	if err != nil {
		s.logger.Error("list active employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	SortByDepartment(emps)
	return emps, nil
}

func (s *service) ByDeviceIDs(ctx context.Context, deviceIDs []string) (map[string]Employee, error) {
	emps, err := s.repo.FindByDeviceIDs(ctx, deviceIDs)
	if err != nil {
		s.logger.Error("resolve device ids failed", zap.Int("count", len(deviceIDs)), zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	out := make(map[string]Employee, len(emps))
	for _, e := range emps {
		if e.ZktimeID != nil {
			out[*e.ZktimeID] = e
		}
	}
	return out, nil
}

func mapToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:         e.ID.String(),
		Username:   e.Username,
		FullName:   e.DisplayName(),
		Department: e.Department,
		Role:       e.Role,
		BaseSalary: e.BaseSalary,
		IsBlocked:  e.IsBlocked,
	}
	if e.ZktimeID != nil {
		resp.ZktimeID = *e.ZktimeID
	}
	return resp
}

func mapToListResponse(emps []Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(emps))
	for _, e := range emps {
		out = append(out, mapToResponse(e))
	}
	return out
}
