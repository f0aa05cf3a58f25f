package database

import (
	"fmt"
	"os"

	"quiroclinic-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RoleDefinition is one entry of the role seed file.
type RoleDefinition struct {
	Name        string   `yaml:"name"`
	Permissions []string `yaml:"permissions"`
}

// DefaultRoleDefinitions mirrors the reference data the clinic ships with:
// admins manage users as well as patients and measures, medics manage
// patients and measures only.
func DefaultRoleDefinitions() []RoleDefinition {
	return []RoleDefinition{
		{
			Name: models.RoleAdmin,
			Permissions: []string{
				models.PermCreatePatient, models.PermEditPatient, models.PermDeletePatient, models.PermViewPatient,
				models.PermCreateMeasure, models.PermEditMeasure, models.PermDeleteMeasure, models.PermViewMeasure,
				models.PermCreateUser, models.PermEditUser, models.PermDeleteUser,
			},
		},
		{
			Name: models.RoleMedic,
			Permissions: []string{
				models.PermCreatePatient, models.PermEditPatient, models.PermDeletePatient, models.PermViewPatient,
				models.PermCreateMeasure, models.PermEditMeasure, models.PermDeleteMeasure, models.PermViewMeasure,
			},
		},
	}
}

// LoadRoleDefinitions reads role definitions from a YAML file, falling back
// to the built-in defaults when the file does not exist.
func LoadRoleDefinitions(path string) ([]RoleDefinition, error) {
	if path == "" {
		return DefaultRoleDefinitions(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultRoleDefinitions(), nil
		}
		return nil, fmt.Errorf("read roles file: %w", err)
	}
	var file struct {
		Roles []RoleDefinition `yaml:"roles"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse roles file: %w", err)
	}
	if len(file.Roles) == 0 {
		return DefaultRoleDefinitions(), nil
	}
	return file.Roles, nil
}

// SeedRolesAndPermissions upserts the static role/permission reference data.
// Safe to run on every startup.
func SeedRolesAndPermissions(db *gorm.DB, defs []RoleDefinition) error {
	if len(defs) == 0 {
		defs = DefaultRoleDefinitions()
	}

	permsByName := make(map[string]*models.Permission)
	for _, def := range defs {
		for _, name := range def.Permissions {
			if _, ok := permsByName[name]; ok {
				continue
			}
			perm := &models.Permission{Name: name}
			if err := db.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "name"}},
				DoNothing: true,
			}).Create(perm).Error; err != nil {
				return fmt.Errorf("seed permission %q: %w", name, err)
			}
			// Re-read so the map holds the persisted row (upsert may have skipped)
			if err := db.First(perm, "name = ?", name).Error; err != nil {
				return fmt.Errorf("load permission %q: %w", name, err)
			}
			permsByName[name] = perm
		}
	}

	for _, def := range defs {
		role := &models.Role{Name: def.Name}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(role).Error; err != nil {
			return fmt.Errorf("seed role %q: %w", def.Name, err)
		}
		if err := db.First(role, "name = ?", def.Name).Error; err != nil {
			return fmt.Errorf("load role %q: %w", def.Name, err)
		}

		perms := make([]models.Permission, 0, len(def.Permissions))
		for _, name := range def.Permissions {
			perms = append(perms, *permsByName[name])
		}
		if err := db.Model(role).Association("Permissions").Replace(perms); err != nil {
			return fmt.Errorf("assign permissions to role %q: %w", def.Name, err)
		}
	}

	return nil
}
