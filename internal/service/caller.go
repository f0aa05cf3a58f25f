package service

import (
	"quiroclinic-backend/internal/database/models"
	apperrors "quiroclinic-backend/internal/errors"

	"github.com/google/uuid"
)

// callerOrg returns the caller's organization id. Every scoped operation
// starts here; a caller without an organization cannot touch domain data.
func callerOrg(caller *models.User) (uuid.UUID, error) {
	if caller == nil || caller.OrganizationID == nil {
		return uuid.Nil, apperrors.ErrUserHasNoOrg
	}
	return *caller.OrganizationID, nil
}
