package service

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"quiroclinic-backend/internal/database/models"
	apperrors "quiroclinic-backend/internal/errors"
	"quiroclinic-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// OrganizationService handles business logic for organizations
type OrganizationService struct {
	repo      repository.OrganizationRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	roleRepo  repository.RoleRepositoryInterface
	validator *validator.Validate
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(repo repository.OrganizationRepositoryInterface, userRepo repository.UserRepositoryInterface, roleRepo repository.RoleRepositoryInterface, validator *validator.Validate) *OrganizationService {
	return &OrganizationService{
		repo:      repo,
		userRepo:  userRepo,
		roleRepo:  roleRepo,
		validator: validator,
	}
}

// RegisterOrganizationRequest bootstraps a new tenant: the organization plus
// its owner user, who receives the admin role.
type RegisterOrganizationRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=255"`
	Slug           string `json:"slug" validate:"required,max=100"`
	OwnerFirstName string `json:"owner_first_name" validate:"required,max=255"`
	OwnerLastName  string `json:"owner_last_name" validate:"max=255"`
	OwnerEmail     string `json:"owner_email" validate:"required,email,max=255"`
	OwnerPassword  string `json:"owner_password" validate:"required,min=8"`
}

// UpdateOrganizationRequest represents the request to update an organization
type UpdateOrganizationRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
	Slug string `json:"slug" validate:"required,max=100"`
}

// OrganizationResponse represents the response for organization operations
type OrganizationResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Register creates an organization and its owner admin user, returning the
// owner with roles loaded so the caller can issue a session for it.
func (s *OrganizationService) Register(req *RegisterOrganizationRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	slug := strings.ToLower(strings.TrimSpace(req.Slug))
	if !slugPattern.MatchString(slug) {
		return nil, apperrors.NewValidationError("slug", "slug must be URL-safe (lowercase letters, digits, hyphens)")
	}

	if existing, err := s.repo.GetByName(req.Name); err == nil && existing != nil {
		return nil, apperrors.ErrOrganizationExists
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing organization: %w", err)
	}
	if existing, err := s.repo.GetBySlug(slug); err == nil && existing != nil {
		return nil, apperrors.ErrOrganizationExists
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing organization: %w", err)
	}
	if existing, err := s.userRepo.GetByEmail(req.OwnerEmail); err == nil && existing != nil {
		return nil, apperrors.ErrUserExists
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	adminRole, err := s.roleRepo.GetByName(models.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to get admin role: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.OwnerPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	org := &models.Organization{
		Name: req.Name,
		Slug: slug,
	}
	owner := &models.User{
		FirstName:           req.OwnerFirstName,
		LastName:            req.OwnerLastName,
		Email:               req.OwnerEmail,
		PasswordHash:        string(hash),
		IsOrganizationOwner: true,
		Roles:               []models.Role{*adminRole},
	}

	// Both rows or neither; a duplicate owner email that slips past the
	// pre-check must not leave an orphan organization behind.
	if err := s.repo.CreateWithOwner(org, owner); err != nil {
		return nil, fmt.Errorf("failed to register organization: %w", err)
	}

	owner.Organization = org
	return owner, nil
}

// GetCurrent retrieves the caller's own organization.
func (s *OrganizationService) GetCurrent(caller *models.User) (*OrganizationResponse, error) {
	orgID, err := callerOrg(caller)
	if err != nil {
		return nil, err
	}

	org, err := s.repo.GetByID(orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return toOrganizationResponse(org), nil
}

// Update renames the caller's organization. Only admins and the organization
// owner may do this.
func (s *OrganizationService) Update(caller *models.User, req *UpdateOrganizationRequest) (*OrganizationResponse, error) {
	orgID, err := callerOrg(caller)
	if err != nil {
		return nil, err
	}
	if !caller.HasRole(models.RoleAdmin) && !caller.IsOrganizationOwner {
		return nil, apperrors.ErrPermissionDenied
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	slug := strings.ToLower(strings.TrimSpace(req.Slug))
	if !slugPattern.MatchString(slug) {
		return nil, apperrors.NewValidationError("slug", "slug must be URL-safe (lowercase letters, digits, hyphens)")
	}

	org, err := s.repo.GetByID(orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	if existing, err := s.repo.GetBySlug(slug); err == nil && existing != nil && existing.ID != org.ID {
		return nil, apperrors.ErrOrganizationExists
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing organization: %w", err)
	}
	if existing, err := s.repo.GetByName(req.Name); err == nil && existing != nil && existing.ID != org.ID {
		return nil, apperrors.ErrOrganizationExists
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing organization: %w", err)
	}

	org.Name = req.Name
	org.Slug = slug
	if err := s.repo.Update(org); err != nil {
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}
	return toOrganizationResponse(org), nil
}

func toOrganizationResponse(org *models.Organization) *OrganizationResponse {
	return &OrganizationResponse{
		ID:        org.ID,
		Name:      org.Name,
		Slug:      org.Slug,
		CreatedAt: org.CreatedAt,
		UpdatedAt: org.UpdatedAt,
	}
}
