package authz_test

import (
	"testing"

	"quiroclinic-backend/internal/authz"
	"quiroclinic-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
)

func userWith(roles ...models.Role) *models.User {
	return &models.User{Roles: roles}
}

func roleNamed(name string, perms ...string) models.Role {
	role := models.Role{Name: name}
	for _, p := range perms {
		role.Permissions = append(role.Permissions, models.Permission{Name: p})
	}
	return role
}

func TestCanGrantsHeldPermission(t *testing.T) {
	user := userWith(roleNamed("custom", models.PermEditMeasure))

	assert.True(t, authz.Can(user, models.PermEditMeasure))
	assert.False(t, authz.Can(user, models.PermDeleteMeasure))
}

func TestCanUnionsPermissionsAcrossRoles(t *testing.T) {
	user := userWith(
		roleNamed("viewer", models.PermViewPatient),
		roleNamed("editor", models.PermEditPatient),
	)

	assert.True(t, authz.Can(user, models.PermViewPatient))
	assert.True(t, authz.Can(user, models.PermEditPatient))
	assert.False(t, authz.Can(user, models.PermCreateUser))
}

func TestCanDeletePatientByRoleWithoutPermission(t *testing.T) {
	// A medic with no explicit delete-patient permission may still delete.
	medic := userWith(roleNamed(models.RoleMedic, models.PermViewPatient))
	assert.True(t, authz.CanDeletePatient(medic))
	assert.True(t, authz.Can(medic, models.PermDeletePatient))

	admin := userWith(roleNamed(models.RoleAdmin))
	assert.True(t, authz.CanDeletePatient(admin))
}

func TestCanDeletePatientByExplicitPermission(t *testing.T) {
	user := userWith(roleNamed("assistant", models.PermDeletePatient))
	assert.True(t, authz.CanDeletePatient(user))
}

func TestCannotDeletePatientWithoutRoleOrPermission(t *testing.T) {
	user := userWith(roleNamed("assistant", models.PermViewPatient))
	assert.False(t, authz.CanDeletePatient(user))
	assert.False(t, authz.Can(user, models.PermDeletePatient))
}

func TestNilUserDeniedEverything(t *testing.T) {
	assert.False(t, authz.Can(nil, models.PermViewPatient))
	assert.False(t, authz.CanDeletePatient(nil))
}

func TestRelaxationDoesNotGeneralize(t *testing.T) {
	// The admin/medic override applies to patient deletion only; measure and
	// user deletion still require the named permission.
	medic := userWith(roleNamed(models.RoleMedic))

	assert.False(t, authz.Can(medic, models.PermDeleteMeasure))
	assert.False(t, authz.Can(medic, models.PermDeleteUser))
}
