package repository

import (
	"quiroclinic-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByIDWithRoles retrieves a user with roles and their permissions, as
// needed by the authorization layer.
func (r *UserRepository) GetByIDWithRoles(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Roles.Permissions").First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmailWithRoles retrieves a user by email with roles and permissions
func (r *UserRepository) GetByEmailWithRoles(email string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Roles.Permissions").First(&user, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListByOrganization retrieves all users of one organization, roles included.
func (r *UserRepository) ListByOrganization(orgID uuid.UUID) ([]models.User, error) {
	var users []models.User
	err := r.db.Preload("Roles").Where("organization_id = ?", orgID).Order("created_at").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// CountByOrganization counts the users of one organization.
func (r *UserRepository) CountByOrganization(orgID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("organization_id = ?", orgID).Count(&count).Error
	return count, err
}

// Update updates a user
func (r *UserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// UpdateWithRoles saves the user and replaces its role assignments in a
// single transaction.
func (r *UserRepository) UpdateWithRoles(user *models.User, roles []models.Role) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(user).Error; err != nil {
			return err
		}
		return tx.Model(user).Association("Roles").Replace(roles)
	})
}

// ReplaceRoles replaces the user's role assignments with the given set.
func (r *UserRepository) ReplaceRoles(user *models.User, roles []models.Role) error {
	return r.db.Model(user).Association("Roles").Replace(roles)
}

// Delete deletes a user
func (r *UserRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.User{}, "id = ?", id).Error
}
