package models

import (
	"github.com/google/uuid"
)

// Measure is a body-measurement (range of motion) entry for a patient.
// Its organization_id always equals the parent patient's organization_id.
type Measure struct {
	BaseModel
	Name           string    `json:"name" gorm:"not null;size:255" validate:"required,max=255"`
	BodyZone       string    `json:"body_zone" gorm:"not null;size:255" validate:"required,max=255"`
	Value          float64   `json:"value" gorm:"not null"`
	Unit           string    `json:"unit" gorm:"not null;size:50" validate:"required,max=50"`
	Description    string    `json:"description" gorm:"type:text"`
	ImagePath      string    `json:"image_path" gorm:"size:255"`
	PatientID      uuid.UUID `json:"patient_id" gorm:"type:uuid;not null;index"`
	UserID         uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index"`

	// Relationships
	Patient      *Patient      `json:"patient,omitempty" gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE"`
	User         *User         `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Measure
func (Measure) TableName() string {
	return "measures"
}
