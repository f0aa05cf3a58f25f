package service

import (
	"errors"
	"fmt"
	"time"

	"quiroclinic-backend/internal/database/models"
	apperrors "quiroclinic-backend/internal/errors"
	"quiroclinic-backend/internal/logger"
	"quiroclinic-backend/internal/repository"
	"quiroclinic-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PatientService handles business logic for patients
type PatientService struct {
	repo        repository.PatientRepositoryInterface
	measureRepo repository.MeasureRepositoryInterface
	store       storage.FileStore
	validator   *validator.Validate
}

// NewPatientService creates a new patient service
func NewPatientService(repo repository.PatientRepositoryInterface, measureRepo repository.MeasureRepositoryInterface, store storage.FileStore, validator *validator.Validate) *PatientService {
	return &PatientService{
		repo:        repo,
		measureRepo: measureRepo,
		store:       store,
		validator:   validator,
	}
}

// CreatePatientRequest represents the request to create a patient.
// user_id and organization_id are always stamped from the caller.
type CreatePatientRequest struct {
	Name      string  `json:"name" validate:"required,max=255"`
	LastName  string  `json:"last_name" validate:"required,max=255"`
	Age       int     `json:"age" validate:"min=0"`
	Gender    string  `json:"gender" validate:"required,oneof=male female other"`
	Weight    float64 `json:"weight" validate:"min=0"`
	Education string  `json:"education" validate:"required,max=255"`
	Sport     string  `json:"sport" validate:"required,max=255"`
	RestHours int     `json:"rest_hours" validate:"min=0,max=24"`
}

// UpdatePatientRequest represents the request to update a patient
type UpdatePatientRequest struct {
	Name      string  `json:"name" validate:"required,max=255"`
	LastName  string  `json:"last_name" validate:"required,max=255"`
	Age       int     `json:"age" validate:"min=0"`
	Gender    string  `json:"gender" validate:"required,oneof=male female other"`
	Weight    float64 `json:"weight" validate:"min=0"`
	Education string  `json:"education" validate:"required,max=255"`
	Sport     string  `json:"sport" validate:"required,max=255"`
	RestHours int     `json:"rest_hours" validate:"min=0,max=24"`
}

// PatientResponse represents the response for patient operations
type PatientResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	LastName       string    `json:"last_name"`
	Age            int       `json:"age"`
	Gender         string    `json:"gender"`
	Weight         float64   `json:"weight"`
	Education      string    `json:"education"`
	Sport          string    `json:"sport"`
	RestHours      int       `json:"rest_hours"`
	UserID         uuid.UUID `json:"user_id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// PatientDetailResponse is a patient with its measures, newest first.
type PatientDetailResponse struct {
	Patient  PatientResponse   `json:"patient"`
	Measures []MeasureResponse `json:"measures"`
}

// List retrieves the patients of the caller's organization.
func (s *PatientService) List(caller *models.User) ([]PatientResponse, error) {
	orgID, err := callerOrg(caller)
	if err != nil {
		return nil, err
	}

	patients, err := s.repo.ListByOrganization(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}

	responses := make([]PatientResponse, 0, len(patients))
	for i := range patients {
		responses = append(responses, *toPatientResponse(&patients[i]))
	}
	return responses, nil
}

// Create creates a new patient owned by the caller.
func (s *PatientService) Create(caller *models.User, req *CreatePatientRequest) (*PatientResponse, error) {
	orgID, err := callerOrg(caller)
	if err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	patient := &models.Patient{
		Name:           req.Name,
		LastName:       req.LastName,
		Age:            req.Age,
		Gender:         models.Gender(req.Gender),
		Weight:         req.Weight,
		Education:      req.Education,
		Sport:          req.Sport,
		RestHours:      req.RestHours,
		UserID:         caller.ID,
		OrganizationID: orgID,
	}

	if err := s.repo.Create(patient); err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}

	return toPatientResponse(patient), nil
}

// GetByID retrieves a patient with its measures. A patient belonging to a
// different organization is reported as a permission error, never as
// not-found and never with its data.
func (s *PatientService) GetByID(caller *models.User, id uuid.UUID) (*PatientDetailResponse, error) {
	patient, err := s.fetchOwned(caller, id)
	if err != nil {
		return nil, err
	}

	measures, err := s.measureRepo.ListByPatient(patient.OrganizationID, patient.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list patient measures: %w", err)
	}

	detail := &PatientDetailResponse{
		Patient:  *toPatientResponse(patient),
		Measures: make([]MeasureResponse, 0, len(measures)),
	}
	for i := range measures {
		detail.Measures = append(detail.Measures, *toMeasureResponse(&measures[i]))
	}
	return detail, nil
}

// Update updates a patient after re-verifying organization ownership.
func (s *PatientService) Update(caller *models.User, id uuid.UUID, req *UpdatePatientRequest) (*PatientResponse, error) {
	patient, err := s.fetchOwned(caller, id)
	if err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	patient.Name = req.Name
	patient.LastName = req.LastName
	patient.Age = req.Age
	patient.Gender = models.Gender(req.Gender)
	patient.Weight = req.Weight
	patient.Education = req.Education
	patient.Sport = req.Sport
	patient.RestHours = req.RestHours

	if err := s.repo.Update(patient); err != nil {
		return nil, fmt.Errorf("failed to update patient: %w", err)
	}

	return toPatientResponse(patient), nil
}

// Delete deletes a patient and its measures. Stored measure images are
// removed before the rows cascade away.
func (s *PatientService) Delete(caller *models.User, id uuid.UUID) error {
	patient, err := s.fetchOwned(caller, id)
	if err != nil {
		return err
	}

	measures, err := s.measureRepo.ListByPatient(patient.OrganizationID, patient.ID)
	if err != nil {
		return fmt.Errorf("failed to list patient measures: %w", err)
	}
	for i := range measures {
		if measures[i].ImagePath == "" {
			continue
		}
		if err := s.store.Delete(measures[i].ImagePath); err != nil {
			logger.New().WithField("measure_id", measures[i].ID).Warnf("failed to delete measure image: %v", err)
		}
	}

	if err := s.repo.Delete(patient.ID); err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}
	return nil
}

// Measures retrieves the measures of one patient, organization-checked the
// same way as show.
func (s *PatientService) Measures(caller *models.User, id uuid.UUID) ([]MeasureResponse, error) {
	patient, err := s.fetchOwned(caller, id)
	if err != nil {
		return nil, err
	}

	measures, err := s.measureRepo.ListByPatient(patient.OrganizationID, patient.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list patient measures: %w", err)
	}

	responses := make([]MeasureResponse, 0, len(measures))
	for i := range measures {
		responses = append(responses, *toMeasureResponse(&measures[i]))
	}
	return responses, nil
}

// fetchOwned loads a patient and enforces the single-record organization
// check. This is intentionally independent of the scoped list queries.
func (s *PatientService) fetchOwned(caller *models.User, id uuid.UUID) (*models.Patient, error) {
	orgID, err := callerOrg(caller)
	if err != nil {
		return nil, err
	}

	patient, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPatientNotFound
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	if patient.OrganizationID != orgID {
		return nil, apperrors.ErrPatientAccessDenied
	}
	return patient, nil
}

func toPatientResponse(p *models.Patient) *PatientResponse {
	return &PatientResponse{
		ID:             p.ID,
		Name:           p.Name,
		LastName:       p.LastName,
		Age:            p.Age,
		Gender:         string(p.Gender),
		Weight:         p.Weight,
		Education:      p.Education,
		Sport:          p.Sport,
		RestHours:      p.RestHours,
		UserID:         p.UserID,
		OrganizationID: p.OrganizationID,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
