//go:build integration
// +build integration

package repository

import (
	"testing"

	"quiroclinic-backend/internal/database/models"
	"quiroclinic-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	orgRepo       *OrganizationRepository
	roleRepo      *RoleRepository

	org *models.Organization
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.orgRepo = NewOrganizationRepository(suite.baseTestSuite.DB)
	suite.roleRepo = NewRoleRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest seeds the role catalog and one organization
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.Require().NoError(suite.baseTestSuite.SeedRoles())

	suite.org = testutils.NewTestOrganization("clinic-norte")
	suite.Require().NoError(suite.orgRepo.Create(suite.org))
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new user
func (suite *UserRepositoryTestSuite) TestCreate() {
	user := testutils.NewTestUser(suite.org.ID, "medic@clinic-norte.test")

	err := suite.repo.Create(user)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, user.ID)
	suite.NotZero(user.CreatedAt)
}

// TestCreateDuplicateEmail tests the unique constraint on email
func (suite *UserRepositoryTestSuite) TestCreateDuplicateEmail() {
	user1 := testutils.NewTestUser(suite.org.ID, "medic@clinic-norte.test")
	suite.Require().NoError(suite.repo.Create(user1))

	user2 := testutils.NewTestUser(suite.org.ID, "medic@clinic-norte.test")
	err := suite.repo.Create(user2)

	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestGetByEmailWithRoles tests that the login lookup carries roles and
// permissions
func (suite *UserRepositoryTestSuite) TestGetByEmailWithRoles() {
	medic, err := suite.roleRepo.GetByName(models.RoleMedic)
	suite.Require().NoError(err)

	user := testutils.NewTestUser(suite.org.ID, "medic@clinic-norte.test", *medic)
	suite.Require().NoError(suite.repo.Create(user))

	retrieved, err := suite.repo.GetByEmailWithRoles("medic@clinic-norte.test")

	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Require().Len(retrieved.Roles, 1)
	suite.Equal(models.RoleMedic, retrieved.Roles[0].Name)
	suite.NotEmpty(retrieved.Roles[0].Permissions)
}

// TestGetByIDWithRoles tests the caller lookup used on every request
func (suite *UserRepositoryTestSuite) TestGetByIDWithRoles() {
	admin, err := suite.roleRepo.GetByName(models.RoleAdmin)
	suite.Require().NoError(err)

	user := testutils.NewTestUser(suite.org.ID, "admin@clinic-norte.test", *admin)
	suite.Require().NoError(suite.repo.Create(user))

	retrieved, err := suite.repo.GetByIDWithRoles(user.ID)

	suite.NoError(err)
	suite.Require().Len(retrieved.Roles, 1)
	suite.Equal(models.RoleAdmin, retrieved.Roles[0].Name)
	suite.NotEmpty(retrieved.Roles[0].Permissions)
}

// TestListByOrganizationScoping tests that listing never crosses organizations
func (suite *UserRepositoryTestSuite) TestListByOrganizationScoping() {
	otherOrg := testutils.NewTestOrganization("clinic-sur")
	suite.Require().NoError(suite.orgRepo.Create(otherOrg))

	suite.Require().NoError(suite.repo.Create(testutils.NewTestUser(suite.org.ID, "a@clinic-norte.test")))
	suite.Require().NoError(suite.repo.Create(testutils.NewTestUser(suite.org.ID, "b@clinic-norte.test")))
	suite.Require().NoError(suite.repo.Create(testutils.NewTestUser(otherOrg.ID, "c@clinic-sur.test")))

	users, err := suite.repo.ListByOrganization(suite.org.ID)

	suite.NoError(err)
	suite.Len(users, 2)
	for _, u := range users {
		suite.Require().NotNil(u.OrganizationID)
		suite.Equal(suite.org.ID, *u.OrganizationID)
	}
}

// TestReplaceRoles tests swapping a user's role set
func (suite *UserRepositoryTestSuite) TestReplaceRoles() {
	medic, err := suite.roleRepo.GetByName(models.RoleMedic)
	suite.Require().NoError(err)
	admin, err := suite.roleRepo.GetByName(models.RoleAdmin)
	suite.Require().NoError(err)

	user := testutils.NewTestUser(suite.org.ID, "medic@clinic-norte.test", *medic)
	suite.Require().NoError(suite.repo.Create(user))

	err = suite.repo.ReplaceRoles(user, []models.Role{*admin})
	suite.NoError(err)

	retrieved, err := suite.repo.GetByIDWithRoles(user.ID)
	suite.NoError(err)
	suite.Require().Len(retrieved.Roles, 1)
	suite.Equal(models.RoleAdmin, retrieved.Roles[0].Name)
}

// TestUpdateWithRoles tests saving a user and swapping its role set in one call
func (suite *UserRepositoryTestSuite) TestUpdateWithRoles() {
	medic, err := suite.roleRepo.GetByName(models.RoleMedic)
	suite.Require().NoError(err)
	admin, err := suite.roleRepo.GetByName(models.RoleAdmin)
	suite.Require().NoError(err)

	user := testutils.NewTestUser(suite.org.ID, "medic@clinic-norte.test", *medic)
	suite.Require().NoError(suite.repo.Create(user))

	user.FirstName = "Renamed"
	err = suite.repo.UpdateWithRoles(user, []models.Role{*admin})
	suite.NoError(err)

	retrieved, err := suite.repo.GetByIDWithRoles(user.ID)
	suite.NoError(err)
	suite.Equal("Renamed", retrieved.FirstName)
	suite.Require().Len(retrieved.Roles, 1)
	suite.Equal(models.RoleAdmin, retrieved.Roles[0].Name)
}

// TestCountByOrganization tests the scoped user count
func (suite *UserRepositoryTestSuite) TestCountByOrganization() {
	suite.Require().NoError(suite.repo.Create(testutils.NewTestUser(suite.org.ID, "a@clinic-norte.test")))

	count, err := suite.repo.CountByOrganization(suite.org.ID)

	suite.NoError(err)
	suite.Equal(int64(1), count)
}

// TestDelete tests deleting a user
func (suite *UserRepositoryTestSuite) TestDelete() {
	user := testutils.NewTestUser(suite.org.ID, "medic@clinic-norte.test")
	suite.Require().NoError(suite.repo.Create(user))

	err := suite.repo.Delete(user.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(user.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestUserRepositoryTestSuite runs the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
