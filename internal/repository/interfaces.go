package repository

import (
	"time"

	"quiroclinic-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// Every list/count method takes the organization id as an explicit required
// parameter. Scoping is never an implicit ambient filter; a method without an
// orgID argument returns data for any tenant and must only be used where the
// caller re-verifies ownership.

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(org *models.Organization) error
	CreateWithOwner(org *models.Organization, owner *models.User) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetByName(name string) (*models.Organization, error)
	GetBySlug(slug string) (*models.Organization, error)
	Update(org *models.Organization) error
	Delete(id uuid.UUID) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByIDWithRoles(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByEmailWithRoles(email string) (*models.User, error)
	ListByOrganization(orgID uuid.UUID) ([]models.User, error)
	CountByOrganization(orgID uuid.UUID) (int64, error)
	Update(user *models.User) error
	UpdateWithRoles(user *models.User, roles []models.Role) error
	ReplaceRoles(user *models.User, roles []models.Role) error
	Delete(id uuid.UUID) error
}

// RoleRepositoryInterface defines the interface for role repository operations
type RoleRepositoryInterface interface {
	GetByName(name string) (*models.Role, error)
	GetAll() ([]models.Role, error)
}

// PatientRepositoryInterface defines the interface for patient repository operations
type PatientRepositoryInterface interface {
	Create(patient *models.Patient) error
	GetByID(id uuid.UUID) (*models.Patient, error)
	ListByOrganization(orgID uuid.UUID) ([]models.Patient, error)
	CountByOrganization(orgID uuid.UUID) (int64, error)
	Update(patient *models.Patient) error
	Delete(id uuid.UUID) error
}

// MeasureRepositoryInterface defines the interface for measure repository operations
type MeasureRepositoryInterface interface {
	Create(measure *models.Measure) error
	GetByID(id uuid.UUID) (*models.Measure, error)
	ListByOrganization(orgID uuid.UUID) ([]models.Measure, error)
	ListByPatient(orgID, patientID uuid.UUID) ([]models.Measure, error)
	CountByOrganization(orgID uuid.UUID) (int64, error)
	CountCreatedSince(orgID uuid.UUID, since time.Time) (int64, error)
	Update(measure *models.Measure) error
	Delete(id uuid.UUID) error
}
