package rbac

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/anzallkiyteb-cell/bey/internal/domain"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

const defaultPolicyTTL = 30 * time.Second

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	LoadPolicy(ctx context.Context) error
	Enforce(req domain.EnforceRequest) (bool, error)
	Capabilities(employeeID, role string) (domain.CapabilitiesResponse, error)
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	ttl      time.Duration
	now      func() time.Time
	logger   *zap.Logger

	mu       sync.Mutex
	loadedAt time.Time
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		repo:     repo,
		enforcer: enforcer,
		ttl:      defaultPolicyTTL,
		now:      time.Now,
		logger:   l,
	}
}

func (s *service) LoadPolicy(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadPolicyUnlocked(ctx)
}

func (s *service) loadPolicyUnlocked(ctx context.Context) error {
	s.enforcer.ClearPolicy()

	employeeRoles, err := s.repo.GetEmployeeRoles(ctx)
	if err != nil {
		return err
	}
	for _, er := range employeeRoles {
		if _, err := s.enforcer.AddGroupingPolicy(er.EmployeeID, er.RoleID); err != nil {
			return err
		}
	}

	rolePerms, err := s.repo.GetRolePermissions(ctx)
	if err != nil {
		return err
	}
	for _, rp := range rolePerms {
		if _, err := s.enforcer.AddPolicy(rp.RoleID, rp.Resource, rp.Action); err != nil {
			return err
		}
	}

	s.loadedAt = s.now()
	s.logger.Debug("rbac policy loaded",
		zap.Int("employee_roles", len(employeeRoles)),
		zap.Int("role_permissions", len(rolePerms)),
	)
	return nil
}

func (s *service) ensureFresh() error {
	if !s.loadedAt.IsZero() && s.now().Sub(s.loadedAt) < s.ttl {
		return nil
	}
	return s.loadPolicyUnlocked(context.Background())
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	if req.IsAdmin() {
		return true, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureFresh(); err != nil {
		s.logger.Error("rbac policy load failed", zap.Error(err))
		return false, err
	}

	allowed, err := s.enforcer.Enforce(req.EmployeeID, req.Resource, req.Action)
	if err != nil {
		return false, err
	}

	s.logger.Debug("rbac enforce",
		zap.String("employee_id", req.EmployeeID),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

// Capabilities lists "resource:action" pairs granted to the employee through
// its roles, sorted. Admins get an empty list with Admin set.
func (s *service) Capabilities(employeeID, role string) (domain.CapabilitiesResponse, error) {
	resp := domain.CapabilitiesResponse{
		EmployeeID:   employeeID,
		Role:         role,
		Admin:        role == domain.RoleAdmin,
		Capabilities: []string{},
	}
	if resp.Admin {
		return resp, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureFresh(); err != nil {
		return domain.CapabilitiesResponse{}, err
	}

	perms, err := s.enforcer.GetImplicitPermissionsForUser(employeeID)
	if err != nil {
		return domain.CapabilitiesResponse{}, err
	}

	seen := make(map[string]struct{}, len(perms))
	for _, p := range perms {
		if len(p) < 3 {
			continue
		}
		c := p[1] + ":" + p[2]
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		resp.Capabilities = append(resp.Capabilities, c)
	}
	sort.Strings(resp.Capabilities)
	return resp, nil
}
