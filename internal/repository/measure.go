package repository

import (
	"time"

	"quiroclinic-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MeasureRepository handles database operations for measures
type MeasureRepository struct {
	db *gorm.DB
}

// NewMeasureRepository creates a new measure repository
func NewMeasureRepository(db *gorm.DB) *MeasureRepository {
	return &MeasureRepository{db: db}
}

// Create creates a new measure
func (r *MeasureRepository) Create(measure *models.Measure) error {
	return r.db.Create(measure).Error
}

// GetByID retrieves a measure by ID regardless of organization. Callers must
// verify organization ownership before exposing or mutating the row.
func (r *MeasureRepository) GetByID(id uuid.UUID) (*models.Measure, error) {
	var measure models.Measure
	err := r.db.Preload("Patient").First(&measure, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &measure, nil
}

// ListByOrganization retrieves all measures of one organization with their
// patient preloaded for display.
func (r *MeasureRepository) ListByOrganization(orgID uuid.UUID) ([]models.Measure, error) {
	var measures []models.Measure
	err := r.db.Preload("Patient").
		Where("organization_id = ?", orgID).
		Order("created_at DESC").
		Find(&measures).Error
	if err != nil {
		return nil, err
	}
	return measures, nil
}

// ListByPatient retrieves the measures of one patient, newest first. The
// organization filter is applied as well so a cross-tenant patient id yields
// nothing even if guessed.
func (r *MeasureRepository) ListByPatient(orgID, patientID uuid.UUID) ([]models.Measure, error) {
	var measures []models.Measure
	err := r.db.Where("organization_id = ? AND patient_id = ?", orgID, patientID).
		Order("created_at DESC").
		Find(&measures).Error
	if err != nil {
		return nil, err
	}
	return measures, nil
}

// CountByOrganization counts the measures of one organization.
func (r *MeasureRepository) CountByOrganization(orgID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Measure{}).Where("organization_id = ?", orgID).Count(&count).Error
	return count, err
}

// CountCreatedSince counts the measures of one organization created at or
// after the given time. Used by the dashboard's recent-activity stat.
func (r *MeasureRepository) CountCreatedSince(orgID uuid.UUID, since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Measure{}).
		Where("organization_id = ? AND created_at >= ?", orgID, since).
		Count(&count).Error
	return count, err
}

// Update updates a measure
func (r *MeasureRepository) Update(measure *models.Measure) error {
	return r.db.Save(measure).Error
}

// Delete deletes a measure
func (r *MeasureRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Measure{}, "id = ?", id).Error
}
