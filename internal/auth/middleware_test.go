package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"quiroclinic-backend/internal/config"
	"quiroclinic-backend/internal/database/models"
	"quiroclinic-backend/internal/mocks"
	"quiroclinic-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// MiddlewareTestSuite defines the test suite for the auth middleware
type MiddlewareTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUserRepo *mocks.MockUserRepositoryInterface
	service      *AuthService
	middleware   *AuthMiddleware
	router       *gin.Engine
	orgID        uuid.UUID
	user         *models.User
}

// SetupTest sets up the test suite
func (suite *MiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpiryMinutes: 60}
	suite.service = NewAuthService(cfg, suite.mockUserRepo)
	suite.middleware = NewAuthMiddleware(suite.service)

	suite.orgID = uuid.New()
	suite.user = testutils.CallerWithPermissions(suite.orgID, models.RoleMedic, models.PermViewPatient)

	suite.router = gin.New()
	protected := suite.router.Group("/", suite.middleware.RequireAuth())
	protected.GET("/view", RequirePermission(models.PermViewPatient), okHandler)
	protected.GET("/create-user", RequirePermission(models.PermCreateUser), okHandler)
	protected.DELETE("/patient", RequirePatientDelete(), okHandler)
}

// TearDownTest cleans up after each test
func (suite *MiddlewareTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func okHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (suite *MiddlewareTestSuite) request(method, path, token string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, req)
	return recorder
}

// TestMissingAuthorizationHeader tests the 401 on a bare request
func (suite *MiddlewareTestSuite) TestMissingAuthorizationHeader() {
	recorder := suite.request("GET", "/view", "")
	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
}

// TestInvalidToken tests the 401 on garbage tokens
func (suite *MiddlewareTestSuite) TestInvalidToken() {
	recorder := suite.request("GET", "/view", "garbage")
	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
}

// TestCallerLoadedFresh tests that the caller comes from the database, not
// from token claims
func (suite *MiddlewareTestSuite) TestCallerLoadedFresh() {
	token, err := suite.service.GenerateJWT(suite.user)
	suite.Require().NoError(err)

	suite.mockUserRepo.EXPECT().
		GetByIDWithRoles(suite.user.ID).
		Return(suite.user, nil).
		Times(1)

	recorder := suite.request("GET", "/view", token)
	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestPermissionDenied tests the 403 when the caller lacks the permission
func (suite *MiddlewareTestSuite) TestPermissionDenied() {
	token, err := suite.service.GenerateJWT(suite.user)
	suite.Require().NoError(err)

	suite.mockUserRepo.EXPECT().
		GetByIDWithRoles(suite.user.ID).
		Return(suite.user, nil).
		Times(1)

	recorder := suite.request("GET", "/create-user", token)
	assert.Equal(suite.T(), http.StatusForbidden, recorder.Code)
}

// TestMedicCanDeletePatient tests the role-based relaxation on patient delete
func (suite *MiddlewareTestSuite) TestMedicCanDeletePatient() {
	token, err := suite.service.GenerateJWT(suite.user)
	suite.Require().NoError(err)

	suite.mockUserRepo.EXPECT().
		GetByIDWithRoles(suite.user.ID).
		Return(suite.user, nil).
		Times(1)

	recorder := suite.request("DELETE", "/patient", token)
	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestDeletedUserTokenRejected tests that a token for a removed user is dead
func (suite *MiddlewareTestSuite) TestDeletedUserTokenRejected() {
	token, err := suite.service.GenerateJWT(suite.user)
	suite.Require().NoError(err)

	suite.mockUserRepo.EXPECT().
		GetByIDWithRoles(suite.user.ID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	recorder := suite.request("GET", "/view", token)
	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
}

// TestMiddlewareTestSuite runs the test suite
func TestMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(MiddlewareTestSuite))
}
