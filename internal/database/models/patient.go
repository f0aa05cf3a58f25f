package models

import (
	"github.com/google/uuid"
)

// Gender is the patient gender enum.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Patient is a clinical record owned by the user that created it and scoped
// to that user's organization. Deleting a patient cascades to its measures.
type Patient struct {
	BaseModel
	Name           string    `json:"name" gorm:"not null;size:255" validate:"required,max=255"`
	LastName       string    `json:"last_name" gorm:"not null;size:255" validate:"required,max=255"`
	Age            int       `json:"age" gorm:"not null" validate:"min=0"`
	Gender         Gender    `json:"gender" gorm:"type:varchar(20);not null" validate:"required,oneof=male female other"`
	Weight         float64   `json:"weight" gorm:"not null" validate:"min=0"`
	Education      string    `json:"education" gorm:"not null;size:255" validate:"required,max=255"`
	Sport          string    `json:"sport" gorm:"not null;size:255" validate:"required,max=255"`
	RestHours      int       `json:"rest_hours" gorm:"not null" validate:"min=0,max=24"`
	UserID         uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index"`

	// Relationships
	User         *User         `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Measures     []Measure     `json:"measures,omitempty" gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Patient
func (Patient) TableName() string {
	return "patients"
}
