package service

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"quiroclinic-backend/internal/database/models"
	apperrors "quiroclinic-backend/internal/errors"
	"quiroclinic-backend/internal/repository"
	"quiroclinic-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaxImageSize caps measure image uploads at 2MB.
const MaxImageSize = 2 << 20

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// ImageUpload carries an optional measure image attachment.
type ImageUpload struct {
	Filename string
	Size     int64
	Content  io.Reader
}

// MeasureService handles business logic for measures
type MeasureService struct {
	repo        repository.MeasureRepositoryInterface
	patientRepo repository.PatientRepositoryInterface
	store       storage.FileStore
	validator   *validator.Validate
}

// NewMeasureService creates a new measure service
func NewMeasureService(repo repository.MeasureRepositoryInterface, patientRepo repository.PatientRepositoryInterface, store storage.FileStore, validator *validator.Validate) *MeasureService {
	return &MeasureService{
		repo:        repo,
		patientRepo: patientRepo,
		store:       store,
		validator:   validator,
	}
}

// CreateMeasureRequest represents the request to create a measure.
// user_id and organization_id are always stamped from the caller.
type CreateMeasureRequest struct {
	Name        string    `json:"name" form:"name" validate:"required,max=255"`
	BodyZone    string    `json:"body_zone" form:"body_zone" validate:"required,max=255"`
	Value       *float64  `json:"value" form:"value" validate:"required"`
	Unit        string    `json:"unit" form:"unit" validate:"required,max=50"`
	PatientID   uuid.UUID `json:"patient_id" form:"patient_id" validate:"required"`
	Description string    `json:"description" form:"description"`
}

// UpdateMeasureRequest represents the request to update a measure
type UpdateMeasureRequest struct {
	Name        string    `json:"name" form:"name" validate:"required,max=255"`
	BodyZone    string    `json:"body_zone" form:"body_zone" validate:"required,max=255"`
	Value       *float64  `json:"value" form:"value" validate:"required"`
	Unit        string    `json:"unit" form:"unit" validate:"required,max=50"`
	PatientID   uuid.UUID `json:"patient_id" form:"patient_id" validate:"required"`
	Description string    `json:"description" form:"description"`
}

// MeasureResponse represents the response for measure operations
type MeasureResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	BodyZone       string    `json:"body_zone"`
	Value          float64   `json:"value"`
	Unit           string    `json:"unit"`
	Description    string    `json:"description,omitempty"`
	ImagePath      string    `json:"image_path,omitempty"`
	PatientID      uuid.UUID `json:"patient_id"`
	PatientName    string    `json:"patient_name,omitempty"`
	UserID         uuid.UUID `json:"user_id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// List retrieves the measures of the caller's organization joined with the
// patient display name.
func (s *MeasureService) List(caller *models.User) ([]MeasureResponse, error) {
	orgID, err := callerOrg(caller)
	if err != nil {
		return nil, err
	}

	measures, err := s.repo.ListByOrganization(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list measures: %w", err)
	}

	responses := make([]MeasureResponse, 0, len(measures))
	for i := range measures {
		responses = append(responses, *toMeasureResponse(&measures[i]))
	}
	return responses, nil
}

// Create validates and creates a measure. The image, when present, is only
// stored after every other check has passed, so a failed validation stores
// nothing.
func (s *MeasureService) Create(caller *models.User, req *CreateMeasureRequest, image *ImageUpload) (*MeasureResponse, error) {
	orgID, err := callerOrg(caller)
	if err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// The parent patient must exist in the caller's organization. A patient
	// of another tenant is indistinguishable from a nonexistent one.
	patient, err := s.patientRepo.GetByID(req.PatientID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	if patient == nil || err != nil || patient.OrganizationID != orgID {
		return nil, apperrors.NewValidationError("patient_id", "patient does not exist")
	}

	measure := &models.Measure{
		Name:           req.Name,
		BodyZone:       req.BodyZone,
		Value:          *req.Value,
		Unit:           req.Unit,
		Description:    req.Description,
		PatientID:      patient.ID,
		UserID:         caller.ID,
		OrganizationID: orgID,
	}

	if image != nil {
		path, err := s.storeImage(image)
		if err != nil {
			return nil, err
		}
		measure.ImagePath = path
	}

	if err := s.repo.Create(measure); err != nil {
		if measure.ImagePath != "" {
			_ = s.store.Delete(measure.ImagePath)
		}
		return nil, fmt.Errorf("failed to create measure: %w", err)
	}

	measure.Patient = patient
	return toMeasureResponse(measure), nil
}

// GetByID retrieves a measure after re-verifying organization ownership.
func (s *MeasureService) GetByID(caller *models.User, id uuid.UUID) (*MeasureResponse, error) {
	measure, err := s.fetchOwned(caller, id)
	if err != nil {
		return nil, err
	}
	return toMeasureResponse(measure), nil
}

// Update updates a measure. When a new image is attached the prior stored
// file is removed first, keeping at most one stored file per measure.
func (s *MeasureService) Update(caller *models.User, id uuid.UUID, req *UpdateMeasureRequest, image *ImageUpload) (*MeasureResponse, error) {
	orgID, err := callerOrg(caller)
	if err != nil {
		return nil, err
	}
	measure, err := s.fetchOwned(caller, id)
	if err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	patient, err := s.patientRepo.GetByID(req.PatientID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	if patient == nil || err != nil || patient.OrganizationID != orgID {
		return nil, apperrors.NewValidationError("patient_id", "patient does not exist")
	}

	if image != nil {
		if measure.ImagePath != "" {
			if err := s.store.Delete(measure.ImagePath); err != nil {
				return nil, fmt.Errorf("failed to delete previous image: %w", err)
			}
			measure.ImagePath = ""
		}
		path, err := s.storeImage(image)
		if err != nil {
			return nil, err
		}
		measure.ImagePath = path
	}

	measure.Name = req.Name
	measure.BodyZone = req.BodyZone
	measure.Value = *req.Value
	measure.Unit = req.Unit
	measure.Description = req.Description
	measure.PatientID = patient.ID

	if err := s.repo.Update(measure); err != nil {
		return nil, fmt.Errorf("failed to update measure: %w", err)
	}

	measure.Patient = patient
	return toMeasureResponse(measure), nil
}

// Delete deletes a measure and its stored image, organization-checked.
func (s *MeasureService) Delete(caller *models.User, id uuid.UUID) error {
	measure, err := s.fetchOwned(caller, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(measure.ID); err != nil {
		return fmt.Errorf("failed to delete measure: %w", err)
	}
	if measure.ImagePath != "" {
		_ = s.store.Delete(measure.ImagePath)
	}
	return nil
}

// fetchOwned loads a measure and enforces the single-record organization
// check, independent of the scoped list queries.
func (s *MeasureService) fetchOwned(caller *models.User, id uuid.UUID) (*models.Measure, error) {
	orgID, err := callerOrg(caller)
	if err != nil {
		return nil, err
	}

	measure, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMeasureNotFound
		}
		return nil, fmt.Errorf("failed to get measure: %w", err)
	}
	if measure.OrganizationID != orgID {
		return nil, apperrors.ErrMeasureAccessDenied
	}
	return measure, nil
}

func (s *MeasureService) storeImage(image *ImageUpload) (string, error) {
	if image.Size > MaxImageSize {
		return "", apperrors.ErrImageTooLarge
	}
	if !imageExtensions[strings.ToLower(filepath.Ext(image.Filename))] {
		return "", apperrors.ErrNotAnImage
	}
	path, err := s.store.Store(image.Filename, image.Content)
	if err != nil {
		return "", fmt.Errorf("failed to store image: %w", err)
	}
	return path, nil
}

func toMeasureResponse(m *models.Measure) *MeasureResponse {
	resp := &MeasureResponse{
		ID:             m.ID,
		Name:           m.Name,
		BodyZone:       m.BodyZone,
		Value:          m.Value,
		Unit:           m.Unit,
		Description:    m.Description,
		ImagePath:      m.ImagePath,
		PatientID:      m.PatientID,
		UserID:         m.UserID,
		OrganizationID: m.OrganizationID,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
	if m.Patient != nil {
		resp.PatientName = strings.TrimSpace(m.Patient.Name + " " + m.Patient.LastName)
	}
	return resp
}
