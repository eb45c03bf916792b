package domain_test

import (
	"testing"

	"github.com/MboaHealth/hospital_admin_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestResolvePermission(t *testing.T) {
	tests := []struct {
		name            string
		authenticated   bool
		role            string
		departmentNames []string
		want            domain.PermissionLevel
	}{
		{
			name:          "unauthenticated caller",
			authenticated: false,
			role:          "admin",
			want:          domain.PermissionNone,
		},
		{
			name:          "admin role",
			authenticated: true,
			role:          "admin",
			want:          domain.PermissionAdmin,
		},
		{
			name:          "admin role case insensitive",
			authenticated: true,
			role:          "ADMIN",
			want:          domain.PermissionAdmin,
		},
		{
			name:            "management department member",
			authenticated:   true,
			role:            "staff",
			departmentNames: []string{"Pharmacie", "Management"},
			want:            domain.PermissionManagement,
		},
		{
			name:            "management department name case insensitive",
			authenticated:   true,
			role:            "staff",
			departmentNames: []string{"MANAGEMENT"},
			want:            domain.PermissionManagement,
		},
		{
			name:            "regular staff with departments",
			authenticated:   true,
			role:            "staff",
			departmentNames: []string{"Maternité"},
			want:            domain.PermissionRegular,
		},
		{
			name:          "regular staff without departments",
			authenticated: true,
			role:          "staff",
			want:          domain.PermissionRegular,
		},
		{
			name:            "admin role wins over management membership",
			authenticated:   true,
			role:            "admin",
			departmentNames: []string{"Management"},
			want:            domain.PermissionAdmin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.ResolvePermission(tt.authenticated, tt.role, tt.departmentNames)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPermissionLevel_SeesAllDepartments(t *testing.T) {
	assert.True(t, domain.PermissionAdmin.SeesAllDepartments())
	assert.True(t, domain.PermissionManagement.SeesAllDepartments())
	assert.False(t, domain.PermissionRegular.SeesAllDepartments())
	assert.False(t, domain.PermissionNone.SeesAllDepartments())
}

func TestPermissionLevel_CanExecuteForeignReceipt(t *testing.T) {
	assert.True(t, domain.PermissionAdmin.CanExecuteForeignReceipt())
	assert.True(t, domain.PermissionManagement.CanExecuteForeignReceipt())
	assert.False(t, domain.PermissionRegular.CanExecuteForeignReceipt())
	assert.False(t, domain.PermissionNone.CanExecuteForeignReceipt())
}

func TestPermissionContext_MemberOf(t *testing.T) {
	pc := domain.PermissionContext{
		ProfileID:     "profile-1",
		Level:         domain.PermissionRegular,
		DepartmentIDs: []string{"dep-1", "dep-2"},
	}

	assert.True(t, pc.MemberOf("dep-1"))
	assert.True(t, pc.MemberOf("dep-2"))
	assert.False(t, pc.MemberOf("dep-3"))
	assert.False(t, domain.PermissionContext{}.MemberOf("dep-1"))
}
