// Package authz implements the role/permission policy gating every
// operation. Checks are pure functions over the caller's loaded roles; they
// are evaluated fresh per request and never cached.
package authz

import (
	"quiroclinic-backend/internal/database/models"
)

// Can reports whether the user may perform the named ability. A held
// permission is a universal grant: it is checked before any role-specific
// predicate, so holding "edit-measure" allows editing measures regardless of
// which role granted it.
func Can(user *models.User, ability string) bool {
	if user == nil {
		return false
	}
	if user.HasPermission(ability) {
		return true
	}
	switch ability {
	case models.PermDeletePatient:
		return CanDeletePatient(user)
	}
	return false
}

// CanDeletePatient applies the relaxed patient-deletion rule: admins and
// medics may always delete patients in their organization, independent of
// fine-grained permission state.
func CanDeletePatient(user *models.User) bool {
	if user == nil {
		return false
	}
	return user.HasRole(models.RoleAdmin) ||
		user.HasRole(models.RoleMedic) ||
		user.HasPermission(models.PermDeletePatient)
}
