package models

import (
	"github.com/google/uuid"
)

// User represents a clinic user bound to exactly one organization.
// OrganizationID is nullable only transiently during bootstrap, while the
// registration flow creates the owner before linking the organization row.
type User struct {
	BaseModel
	OrganizationID      *uuid.UUID `json:"organization_id" gorm:"type:uuid;index"`
	FirstName           string     `json:"first_name" gorm:"not null;size:255" validate:"required,max=255"`
	LastName            string     `json:"last_name" gorm:"size:255" validate:"max=255"`
	Email               string     `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash        string     `json:"-" gorm:"column:password;not null"`
	IsOrganizationOwner bool       `json:"is_organization_owner" gorm:"default:false"`

	// Relationships
	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Roles        []Role        `json:"roles,omitempty" gorm:"many2many:user_roles;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// HasRole reports whether the user holds the named role.
func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}

// HasPermission reports whether the user holds the named permission through
// any of its roles (effective permissions are the union across roles).
func (u *User) HasPermission(name string) bool {
	for _, r := range u.Roles {
		for _, p := range r.Permissions {
			if p.Name == name {
				return true
			}
		}
	}
	return false
}
