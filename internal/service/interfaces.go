package service

import (
	"quiroclinic-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// OrganizationServiceInterface defines the interface for organization service operations
type OrganizationServiceInterface interface {
	Register(req *RegisterOrganizationRequest) (*models.User, error)
	GetCurrent(caller *models.User) (*OrganizationResponse, error)
	Update(caller *models.User, req *UpdateOrganizationRequest) (*OrganizationResponse, error)
}

// UserServiceInterface defines the interface for user service operations
type UserServiceInterface interface {
	List(caller *models.User) ([]UserResponse, error)
	Create(caller *models.User, req *CreateUserRequest) (*UserResponse, error)
	GetByID(caller *models.User, id uuid.UUID) (*UserResponse, error)
	Update(caller *models.User, id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error)
	Delete(caller *models.User, id uuid.UUID) error
}

// PatientServiceInterface defines the interface for patient service operations
type PatientServiceInterface interface {
	List(caller *models.User) ([]PatientResponse, error)
	Create(caller *models.User, req *CreatePatientRequest) (*PatientResponse, error)
	GetByID(caller *models.User, id uuid.UUID) (*PatientDetailResponse, error)
	Update(caller *models.User, id uuid.UUID, req *UpdatePatientRequest) (*PatientResponse, error)
	Delete(caller *models.User, id uuid.UUID) error
	Measures(caller *models.User, id uuid.UUID) ([]MeasureResponse, error)
}

// MeasureServiceInterface defines the interface for measure service operations
type MeasureServiceInterface interface {
	List(caller *models.User) ([]MeasureResponse, error)
	Create(caller *models.User, req *CreateMeasureRequest, image *ImageUpload) (*MeasureResponse, error)
	GetByID(caller *models.User, id uuid.UUID) (*MeasureResponse, error)
	Update(caller *models.User, id uuid.UUID, req *UpdateMeasureRequest, image *ImageUpload) (*MeasureResponse, error)
	Delete(caller *models.User, id uuid.UUID) error
}

// DashboardServiceInterface defines the interface for dashboard service operations
type DashboardServiceInterface interface {
	Stats(caller *models.User) (*DashboardStatsResponse, error)
}
