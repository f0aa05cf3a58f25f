package service

import (
	"errors"
	"fmt"
	"time"

	"quiroclinic-backend/internal/database/models"
	apperrors "quiroclinic-backend/internal/errors"
	"quiroclinic-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService handles business logic for users
type UserService struct {
	repo      repository.UserRepositoryInterface
	roleRepo  repository.RoleRepositoryInterface
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, roleRepo repository.RoleRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{
		repo:      repo,
		roleRepo:  roleRepo,
		validator: validator,
	}
}

// CreateUserRequest represents the request to create a user.
// organization_id is always stamped from the caller.
type CreateUserRequest struct {
	FirstName string `json:"first_name" validate:"required,max=255"`
	LastName  string `json:"last_name" validate:"max=255"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Password  string `json:"password" validate:"required,min=8"`
	Role      string `json:"role" validate:"required"`
}

// UpdateUserRequest represents the request to update a user. Password is
// optional: when absent the stored hash is preserved, when present it is
// re-hashed.
type UpdateUserRequest struct {
	FirstName string `json:"first_name" validate:"required,max=255"`
	LastName  string `json:"last_name" validate:"max=255"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Password  string `json:"password" validate:"omitempty,min=8"`
	Role      string `json:"role" validate:"required"`
}

// UserResponse represents the response for user operations
type UserResponse struct {
	ID                  uuid.UUID  `json:"id"`
	OrganizationID      *uuid.UUID `json:"organization_id,omitempty"`
	FirstName           string     `json:"first_name"`
	LastName            string     `json:"last_name"`
	Email               string     `json:"email"`
	IsOrganizationOwner bool       `json:"is_organization_owner"`
	Roles               []string   `json:"roles"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// List retrieves the users of the caller's organization.
func (s *UserService) List(caller *models.User) ([]UserResponse, error) {
	orgID, err := callerOrg(caller)
	if err != nil {
		return nil, err
	}

	users, err := s.repo.ListByOrganization(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *toUserResponse(&users[i]))
	}
	return responses, nil
}

// Create creates a user in the caller's organization with the given role.
func (s *UserService) Create(caller *models.User, req *CreateUserRequest) (*UserResponse, error) {
	orgID, err := callerOrg(caller)
	if err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	role, err := s.roleRepo.GetByName(req.Role)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewValidationError("role", "role does not exist")
		}
		return nil, fmt.Errorf("failed to get role: %w", err)
	}

	if existing, err := s.repo.GetByEmail(req.Email); err == nil && existing != nil {
		return nil, apperrors.ErrUserExists
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Creating the user with its role attached keeps the row and the role
	// link in one write.
	user := &models.User{
		OrganizationID: &orgID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		PasswordHash:   string(hash),
		Roles:          []models.Role{*role},
	}

	if err := s.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return toUserResponse(user), nil
}

// GetByID retrieves a user after re-verifying organization ownership.
func (s *UserService) GetByID(caller *models.User, id uuid.UUID) (*UserResponse, error) {
	user, err := s.fetchOwned(caller, id)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Update updates a user. Email stays unique across the system; the password
// hash is only replaced when a new password is supplied.
func (s *UserService) Update(caller *models.User, id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error) {
	user, err := s.fetchOwned(caller, id)
	if err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	role, err := s.roleRepo.GetByName(req.Role)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewValidationError("role", "role does not exist")
		}
		return nil, fmt.Errorf("failed to get role: %w", err)
	}

	if existing, err := s.repo.GetByEmail(req.Email); err == nil && existing != nil && existing.ID != user.ID {
		return nil, apperrors.ErrUserExists
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Email = req.Email
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}

	if err := s.repo.UpdateWithRoles(user, []models.Role{*role}); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	user.Roles = []models.Role{*role}
	return toUserResponse(user), nil
}

// Delete deletes a user after re-verifying organization ownership.
func (s *UserService) Delete(caller *models.User, id uuid.UUID) error {
	user, err := s.fetchOwned(caller, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(user.ID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func (s *UserService) fetchOwned(caller *models.User, id uuid.UUID) (*models.User, error) {
	orgID, err := callerOrg(caller)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.GetByIDWithRoles(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user.OrganizationID == nil || *user.OrganizationID != orgID {
		return nil, apperrors.ErrUserAccessDenied
	}
	return user, nil
}

// NewUserResponse converts a user model to its response shape.
func NewUserResponse(u *models.User) *UserResponse {
	return toUserResponse(u)
}

func toUserResponse(u *models.User) *UserResponse {
	roles := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		roles = append(roles, r.Name)
	}
	return &UserResponse{
		ID:                  u.ID,
		OrganizationID:      u.OrganizationID,
		FirstName:           u.FirstName,
		LastName:            u.LastName,
		Email:               u.Email,
		IsOrganizationOwner: u.IsOrganizationOwner,
		Roles:               roles,
		CreatedAt:           u.CreatedAt,
		UpdatedAt:           u.UpdatedAt,
	}
}
