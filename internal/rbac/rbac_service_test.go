package rbac_test

import (
	"context"
	"testing"

	"hr-console/internal/rbac"
	"hr-console/internal/rbac/infra"

	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	perms       []rbac.RolePermissionRow
	inheritance []rbac.RoleInheritanceRow
}

func (f *fakeRepo) GetRolePermissions(ctx context.Context) ([]rbac.RolePermissionRow, error) {
	return f.perms, nil
}

func (f *fakeRepo) GetRoleInheritance(ctx context.Context) ([]rbac.RoleInheritanceRow, error) {
	return f.inheritance, nil
}

func newService(t *testing.T, repo rbac.Repository) rbac.Service {
	t.Helper()
	enforcer, err := infra.NewEnforcer()
	assert.NoError(t, err)
	svc := rbac.NewService(repo, enforcer)
	assert.NoError(t, svc.Reload(context.Background()))
	return svc
}

func TestEnforce_DirectGrant(t *testing.T) {
	svc := newService(t, &fakeRepo{
		perms: []rbac.RolePermissionRow{
			{Role: "HR", Resource: "employee", Action: "create"},
		},
	})

	allowed, err := svc.Enforce("HR", "employee", "create")
	assert.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = svc.Enforce("HR", "employee", "delete")
	assert.NoError(t, err)
	assert.False(t, allowed)
}

func TestEnforce_InheritedGrant(t *testing.T) {
	svc := newService(t, &fakeRepo{
		perms: []rbac.RolePermissionRow{
			{Role: "EMPLOYEE", Resource: "employee", Action: "read"},
		},
		inheritance: []rbac.RoleInheritanceRow{
			{Role: "ADMIN", Parent: "EMPLOYEE"},
		},
	})

	allowed, err := svc.Enforce("ADMIN", "employee", "read")
	assert.NoError(t, err)
	assert.True(t, allowed)
}

func TestEnforce_UnknownRoleDenied(t *testing.T) {
	svc := newService(t, &fakeRepo{
		perms: []rbac.RolePermissionRow{
			{Role: "HR", Resource: "employee", Action: "read"},
		},
	})

	allowed, err := svc.Enforce("GUEST", "employee", "read")
	assert.NoError(t, err)
	assert.False(t, allowed)
}
