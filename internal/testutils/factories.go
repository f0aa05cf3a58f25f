package testutils

import (
	"fmt"

	"quiroclinic-backend/internal/database/models"

	"github.com/google/uuid"
)

// NewTestOrganization builds an unsaved organization with a unique name/slug.
func NewTestOrganization(name string) *models.Organization {
	if name == "" {
		name = fmt.Sprintf("clinic-%s", uuid.NewString()[:8])
	}
	return &models.Organization{
		Name: name,
		Slug: name,
	}
}

// NewTestUser builds an unsaved user in the given organization.
func NewTestUser(orgID uuid.UUID, email string, roles ...models.Role) *models.User {
	if email == "" {
		email = fmt.Sprintf("user-%s@example.com", uuid.NewString()[:8])
	}
	return &models.User{
		OrganizationID: &orgID,
		FirstName:      "Test",
		LastName:       "User",
		Email:          email,
		PasswordHash:   "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		Roles:          roles,
	}
}

// CallerWithPermissions builds an in-memory user carrying one role holding
// the named permissions. For unit tests that never touch the database.
func CallerWithPermissions(orgID uuid.UUID, roleName string, permissions ...string) *models.User {
	perms := make([]models.Permission, 0, len(permissions))
	for _, p := range permissions {
		perms = append(perms, models.Permission{Name: p})
	}
	user := NewTestUser(orgID, "")
	user.BaseModel.ID = uuid.New()
	user.Roles = []models.Role{{Name: roleName, Permissions: perms}}
	return user
}

// NewTestPatient builds an unsaved patient owned by the given user.
func NewTestPatient(orgID, userID uuid.UUID, name string) *models.Patient {
	if name == "" {
		name = fmt.Sprintf("Patient-%s", uuid.NewString()[:8])
	}
	return &models.Patient{
		Name:           name,
		LastName:       "Doe",
		Age:            30,
		Gender:         models.GenderFemale,
		Weight:         65.5,
		Education:      "university",
		Sport:          "running",
		RestHours:      8,
		UserID:         userID,
		OrganizationID: orgID,
	}
}

// NewTestMeasure builds an unsaved measure for the given patient.
func NewTestMeasure(orgID, userID, patientID uuid.UUID, name string) *models.Measure {
	if name == "" {
		name = fmt.Sprintf("measure-%s", uuid.NewString()[:8])
	}
	return &models.Measure{
		Name:           name,
		BodyZone:       "lower-back",
		Value:          12.5,
		Unit:           "cm",
		PatientID:      patientID,
		UserID:         userID,
		OrganizationID: orgID,
	}
}
