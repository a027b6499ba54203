package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"restopanel/internal/model"
)

func TestOwnerHasAllCapabilities(t *testing.T) {
	caps := For(model.RoleOwner)
	assert.Equal(t, Capabilities{
		CanViewAnalytics:      true,
		CanManageStaff:        true,
		CanManageMenu:         true,
		CanManageReservations: true,
		CanAccessPOS:          true,
		CanManageFloorPlan:    true,
		CanViewBilling:        true,
		CanManageSettings:     true,
	}, caps)
}

func TestServerHasOnlyPOS(t *testing.T) {
	caps := For(model.RoleServer)
	assert.Equal(t, Capabilities{CanAccessPOS: true}, caps)
}

func TestHostCapabilities(t *testing.T) {
	caps := For(model.RoleHost)
	assert.True(t, caps.CanManageReservations)
	assert.True(t, caps.CanManageFloorPlan)
	assert.False(t, caps.CanManageStaff)
	assert.False(t, caps.CanViewBilling)
}

func TestManagerHasEverythingButBilling(t *testing.T) {
	caps := For(model.RoleManager)
	assert.False(t, caps.CanViewBilling)
	assert.True(t, caps.CanViewAnalytics)
	assert.True(t, caps.CanManageStaff)
	assert.True(t, caps.CanManageSettings)
}

func TestUnknownRolesAreDefaultDeny(t *testing.T) {
	for _, role := range []model.Role{model.RoleCustomer, "", "admin", "superuser", "OWNER"} {
		caps := For(role)
		assert.False(t, caps.Any(), "role %q must hold no capability", role)
	}
}

func TestForIsDeterministic(t *testing.T) {
	assert.Equal(t, For(model.RoleHost), For(model.RoleHost))
}
