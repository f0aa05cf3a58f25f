package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "patient"}
		assert.Equal(t, "patient not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "patient"}
		err2 := &NotFoundError{Entity: "patient"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "patient"}
		err2 := &NotFoundError{Entity: "measure"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrPatientNotFound, ErrPatientNotFound))
		assert.False(t, errors.Is(ErrPatientNotFound, ErrMeasureNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrPatientNotFound))
		assert.False(t, IsNotFound(ErrUserExists))
	})

	t.Run("IsNotFound on wrapped error", func(t *testing.T) {
		wrapped := fmt.Errorf("loading record: %w", ErrMeasureNotFound)
		assert.True(t, IsNotFound(wrapped))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "user", Context: "with this email"}
		assert.Equal(t, "user already exists with this email", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "user"}
		assert.Equal(t, "user already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "organization", Context: "with this name"}
		err2 := &AlreadyExistsError{Entity: "organization", Context: "with this slug"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrUserExists))
		assert.False(t, IsAlreadyExists(ErrUserNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "gender", Message: "must be one of male, female, other"}
		assert.Equal(t, "validation error: gender - must be one of male, female, other", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid payload"}
		assert.Equal(t, "validation error: invalid payload", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(ErrImageTooLarge))
		assert.True(t, IsValidation(ErrNotAnImage))
		assert.False(t, IsValidation(ErrInvalidCredentials))
	})
}

func TestAuthenticationError(t *testing.T) {
	t.Run("IsAuthentication helper", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrInvalidCredentials))
		assert.True(t, IsAuthentication(ErrInvalidToken))
		assert.False(t, IsAuthentication(ErrPermissionDenied))
	})
}

func TestAuthorizationError(t *testing.T) {
	t.Run("IsAuthorization helper", func(t *testing.T) {
		assert.True(t, IsAuthorization(ErrPermissionDenied))
		assert.True(t, IsAuthorization(ErrPatientAccessDenied))
		assert.True(t, IsAuthorization(ErrUserHasNoOrg))
		assert.False(t, IsAuthorization(ErrInvalidToken))
	})

	t.Run("cross-tenant message matches the permission message shape", func(t *testing.T) {
		assert.Equal(t, "you do not have permission to view this patient", ErrPatientAccessDenied.Error())
		assert.Equal(t, "you do not have permission to view this measure", ErrMeasureAccessDenied.Error())
	})
}

func TestConstructors(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("appointment")
		assert.True(t, IsNotFound(err))
		assert.Equal(t, "appointment not found", err.Error())
	})

	t.Run("NewValidationError", func(t *testing.T) {
		err := NewValidationError("value", "must be numeric")
		assert.True(t, IsValidation(err))
	})

	t.Run("NewAuthorizationError", func(t *testing.T) {
		err := NewAuthorizationError("nope")
		assert.True(t, IsAuthorization(err))
	})
}
