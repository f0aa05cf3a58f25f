package auth

import (
	"testing"
	"time"

	"quiroclinic-backend/internal/config"
	"quiroclinic-backend/internal/database/models"
	apperrors "quiroclinic-backend/internal/errors"
	"quiroclinic-backend/internal/mocks"
	"quiroclinic-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthServiceTestSuite defines the test suite for AuthService
type AuthServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUserRepo *mocks.MockUserRepositoryInterface
	service      *AuthService
	orgID        uuid.UUID
	user         *models.User
}

// SetupTest sets up the test suite
func (suite *AuthServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpiryMinutes: 60}
	suite.service = NewAuthService(cfg, suite.mockUserRepo)

	suite.orgID = uuid.New()
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-pass"), bcrypt.MinCost)
	suite.user = testutils.NewTestUser(suite.orgID, "clara@example.com")
	suite.user.ID = uuid.New()
	suite.user.PasswordHash = string(hash)
}

// TearDownTest cleans up after each test
func (suite *AuthServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGenerateAndValidateJWT tests the token round trip
func (suite *AuthServiceTestSuite) TestGenerateAndValidateJWT() {
	token, err := suite.service.GenerateJWT(suite.user)
	suite.Require().NoError(err)
	suite.Require().NotEmpty(token)

	claims, err := suite.service.ValidateJWT(token)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), suite.user.ID, claims.UserID)
	assert.Equal(suite.T(), suite.user.Email, claims.Email)
	suite.Require().NotNil(claims.OrganizationID)
	assert.Equal(suite.T(), suite.orgID, *claims.OrganizationID)
	assert.True(suite.T(), claims.ExpiresAt.After(time.Now()))
}

// TestValidateJWTWrongSecret tests rejection of a token signed elsewhere
func (suite *AuthServiceTestSuite) TestValidateJWTWrongSecret() {
	other := NewAuthService(&config.Config{JWTSecret: "other-secret", JWTExpiryMinutes: 60}, suite.mockUserRepo)
	token, err := other.GenerateJWT(suite.user)
	suite.Require().NoError(err)

	_, err = suite.service.ValidateJWT(token)
	assert.True(suite.T(), apperrors.IsAuthentication(err))
}

// TestValidateJWTGarbage tests rejection of malformed tokens
func (suite *AuthServiceTestSuite) TestValidateJWTGarbage() {
	_, err := suite.service.ValidateJWT("not.a.token")
	assert.True(suite.T(), apperrors.IsAuthentication(err))
}

// TestLogin tests successful credential verification
func (suite *AuthServiceTestSuite) TestLogin() {
	suite.mockUserRepo.EXPECT().
		GetByEmailWithRoles("clara@example.com").
		Return(suite.user, nil).
		Times(1)

	token, user, err := suite.service.Login("clara@example.com", "correct-pass")
	suite.Require().NoError(err)
	assert.NotEmpty(suite.T(), token)
	assert.Equal(suite.T(), suite.user.ID, user.ID)
}

// TestLoginWrongPassword tests credential rejection
func (suite *AuthServiceTestSuite) TestLoginWrongPassword() {
	suite.mockUserRepo.EXPECT().
		GetByEmailWithRoles("clara@example.com").
		Return(suite.user, nil).
		Times(1)

	_, _, err := suite.service.Login("clara@example.com", "wrong-pass")
	assert.True(suite.T(), apperrors.IsAuthentication(err))
}

// TestLoginUnknownEmail tests that an unknown email reads like bad credentials
func (suite *AuthServiceTestSuite) TestLoginUnknownEmail() {
	suite.mockUserRepo.EXPECT().
		GetByEmailWithRoles("nobody@example.com").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	_, _, err := suite.service.Login("nobody@example.com", "whatever")
	assert.True(suite.T(), apperrors.IsAuthentication(err))
}

// TestAuthServiceTestSuite runs the test suite
func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
