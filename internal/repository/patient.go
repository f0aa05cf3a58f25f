package repository

import (
	"quiroclinic-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PatientRepository handles database operations for patients
type PatientRepository struct {
	db *gorm.DB
}

// NewPatientRepository creates a new patient repository
func NewPatientRepository(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

// Create creates a new patient
func (r *PatientRepository) Create(patient *models.Patient) error {
	return r.db.Create(patient).Error
}

// GetByID retrieves a patient by ID regardless of organization. Callers must
// verify organization ownership before exposing or mutating the row.
func (r *PatientRepository) GetByID(id uuid.UUID) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.First(&patient, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

// ListByOrganization retrieves all patients of one organization.
func (r *PatientRepository) ListByOrganization(orgID uuid.UUID) ([]models.Patient, error) {
	var patients []models.Patient
	err := r.db.Where("organization_id = ?", orgID).Order("created_at").Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

// CountByOrganization counts the patients of one organization.
func (r *PatientRepository) CountByOrganization(orgID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Patient{}).Where("organization_id = ?", orgID).Count(&count).Error
	return count, err
}

// Update updates a patient
func (r *PatientRepository) Update(patient *models.Patient) error {
	return r.db.Save(patient).Error
}

// Delete deletes a patient. Its measures are removed by the cascade
// constraint on measures.patient_id.
func (r *PatientRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Patient{}, "id = ?", id).Error
}
