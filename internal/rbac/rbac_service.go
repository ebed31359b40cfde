package rbac

import (
	"context"
	"sync"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Reload(ctx context.Context) error
	Enforce(role, resource, action string) (bool, error)
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	mu       sync.Mutex
	logger   *zap.Logger
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		repo:     repo,
		enforcer: enforcer,
		logger:   l,
	}
}

// Reload replaces the in-memory policy with the database's current grants.
func (s *service) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.enforcer.ClearPolicy()

	inheritance, err := s.repo.GetRoleInheritance(ctx)
	if err != nil {
		return err
	}
	for _, row := range inheritance {
		if _, err := s.enforcer.AddGroupingPolicy(row.Role, row.Parent); err != nil {
			return err
		}
	}

	perms, err := s.repo.GetRolePermissions(ctx)
	if err != nil {
		return err
	}
	for _, row := range perms {
		if _, err := s.enforcer.AddPolicy(row.Role, row.Resource, row.Action); err != nil {
			return err
		}
	}

	s.logger.Info("rbac policy loaded",
		zap.Int("permissions", len(perms)),
		zap.Int("inheritance_rows", len(inheritance)),
	)
	return nil
}

func (s *service) Enforce(role, resource, action string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.enforcer.Enforce(role, resource, action)
}
