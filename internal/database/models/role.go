package models

// Role names and permission names are static reference data, seeded at
// startup (see internal/database/seed.go).
const (
	RoleAdmin = "admin"
	RoleMedic = "medic"
)

// Permission names gating each operation, one per action and entity.
const (
	PermCreatePatient = "create-patient"
	PermEditPatient   = "edit-patient"
	PermDeletePatient = "delete-patient"
	PermViewPatient   = "view-patient"

	PermCreateMeasure = "create-measure"
	PermEditMeasure   = "edit-measure"
	PermDeleteMeasure = "delete-measure"
	PermViewMeasure   = "view-measure"

	PermCreateUser = "create-user"
	PermEditUser   = "edit-user"
	PermDeleteUser = "delete-user"
)

// Role is a named bundle of permissions assigned to users.
type Role struct {
	BaseModel
	Name string `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,max=100"`

	Permissions []Permission `json:"permissions,omitempty" gorm:"many2many:role_permissions;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Role
func (Role) TableName() string {
	return "roles"
}

// Permission is a named capability gating a single operation.
type Permission struct {
	BaseModel
	Name string `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,max=100"`
}

// TableName returns the table name for Permission
func (Permission) TableName() string {
	return "permissions"
}
