// Package permission maps panel roles to their capability set. For is a pure
// total function over the closed role set; unknown roles (including
// "customer") get every capability denied.
//
// Capabilities gate both which dashboard tabs a client renders and, through
// the route middleware, which API operations a session may invoke.
package permission

import "restopanel/internal/model"

// Capabilities is the fixed record of panel affordances per role.
type Capabilities struct {
	CanViewAnalytics      bool `json:"canViewAnalytics"`
	CanManageStaff        bool `json:"canManageStaff"`
	CanManageMenu         bool `json:"canManageMenu"`
	CanManageReservations bool `json:"canManageReservations"`
	CanAccessPOS          bool `json:"canAccessPOS"`
	CanManageFloorPlan    bool `json:"canManageFloorPlan"`
	CanViewBilling        bool `json:"canViewBilling"`
	CanManageSettings     bool `json:"canManageSettings"`
}

// For returns the capability record for a role. Default-deny for anything
// outside {owner, manager, host, server}.
func For(role model.Role) Capabilities {
	switch role {
	case model.RoleOwner:
		return Capabilities{
			CanViewAnalytics:      true,
			CanManageStaff:        true,
			CanManageMenu:         true,
			CanManageReservations: true,
			CanAccessPOS:          true,
			CanManageFloorPlan:    true,
			CanViewBilling:        true,
			CanManageSettings:     true,
		}
	case model.RoleManager:
		return Capabilities{
			CanViewAnalytics:      true,
			CanManageStaff:        true,
			CanManageMenu:         true,
			CanManageReservations: true,
			CanAccessPOS:          true,
			CanManageFloorPlan:    true,
			CanManageSettings:     true,
		}
	case model.RoleHost:
		return Capabilities{
			CanManageReservations: true,
			CanManageFloorPlan:    true,
		}
	case model.RoleServer:
		return Capabilities{
			CanAccessPOS: true,
		}
	default:
		return Capabilities{}
	}
}

// Any reports whether the role holds at least one capability.
func (c Capabilities) Any() bool {
	return c.CanViewAnalytics || c.CanManageStaff || c.CanManageMenu ||
		c.CanManageReservations || c.CanAccessPOS || c.CanManageFloorPlan ||
		c.CanViewBilling || c.CanManageSettings
}
