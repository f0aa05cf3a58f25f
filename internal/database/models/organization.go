package models

// Organization represents the root entity for multi-tenancy. Every user,
// patient and measure belongs to exactly one organization; the UUID primary
// key doubles as the externally visible organization identifier.
type Organization struct {
	BaseModel
	Name string `json:"name" gorm:"uniqueIndex;not null;size:255" validate:"required,min=1,max=255"`
	Slug string `json:"slug" gorm:"uniqueIndex;not null;size:100" validate:"required,max=100"`

	// Relationships
	Users    []User    `json:"users,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Patients []Patient `json:"patients,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Measures []Measure `json:"measures,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
