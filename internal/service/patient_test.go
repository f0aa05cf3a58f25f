package service_test

import (
	"testing"

	"quiroclinic-backend/internal/database/models"
	apperrors "quiroclinic-backend/internal/errors"
	"quiroclinic-backend/internal/mocks"
	"quiroclinic-backend/internal/service"
	"quiroclinic-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// PatientServiceTestSuite defines the test suite for PatientService
type PatientServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockRepo        *mocks.MockPatientRepositoryInterface
	mockMeasureRepo *mocks.MockMeasureRepositoryInterface
	store           *recordingStore
	service         *service.PatientService
	orgID           uuid.UUID
	caller          *models.User
}

// SetupTest sets up the test suite
func (suite *PatientServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockPatientRepositoryInterface(suite.ctrl)
	suite.mockMeasureRepo = mocks.NewMockMeasureRepositoryInterface(suite.ctrl)
	suite.store = &recordingStore{}
	suite.service = service.NewPatientService(suite.mockRepo, suite.mockMeasureRepo, suite.store, validator.New())
	suite.orgID = uuid.New()
	suite.caller = testutils.CallerWithPermissions(suite.orgID, models.RoleMedic, models.PermViewPatient, models.PermCreatePatient)
}

// TearDownTest cleans up after each test
func (suite *PatientServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreatePatient tests that create stamps ownership from the caller
func (suite *PatientServiceTestSuite) TestCreatePatient() {
	req := &service.CreatePatientRequest{
		Name:      "Maria",
		LastName:  "Lopez",
		Age:       28,
		Gender:    "female",
		Weight:    60,
		Education: "university",
		Sport:     "swimming",
		RestHours: 8,
	}

	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(p *models.Patient) error {
			assert.Equal(suite.T(), suite.caller.ID, p.UserID)
			assert.Equal(suite.T(), suite.orgID, p.OrganizationID)
			return nil
		}).
		Times(1)

	resp, err := suite.service.Create(suite.caller, req)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), "Maria", resp.Name)
	assert.Equal(suite.T(), suite.orgID, resp.OrganizationID)
}

// TestCreatePatientInvalidGender tests enum validation
func (suite *PatientServiceTestSuite) TestCreatePatientInvalidGender() {
	req := &service.CreatePatientRequest{
		Name:      "Maria",
		LastName:  "Lopez",
		Gender:    "unknown",
		Education: "university",
		Sport:     "swimming",
	}

	_, err := suite.service.Create(suite.caller, req)
	assert.Error(suite.T(), err)
}

// TestCreatePatientRestHoursOutOfRange tests the 0-24 bound
func (suite *PatientServiceTestSuite) TestCreatePatientRestHoursOutOfRange() {
	req := &service.CreatePatientRequest{
		Name:      "Maria",
		LastName:  "Lopez",
		Gender:    "female",
		Education: "university",
		Sport:     "swimming",
		RestHours: 25,
	}

	_, err := suite.service.Create(suite.caller, req)
	assert.Error(suite.T(), err)
}

// TestGetPatientCrossTenant tests that a foreign patient is denied, not leaked
func (suite *PatientServiceTestSuite) TestGetPatientCrossTenant() {
	otherOrg := uuid.New()
	patient := testutils.NewTestPatient(otherOrg, uuid.New(), "Ana")
	patient.ID = uuid.New()

	suite.mockRepo.EXPECT().
		GetByID(patient.ID).
		Return(patient, nil).
		Times(1)

	resp, err := suite.service.GetByID(suite.caller, patient.ID)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsAuthorization(err))
	assert.False(suite.T(), apperrors.IsNotFound(err))
}

// TestGetPatientNotFound tests that a nonexistent id yields not-found
func (suite *PatientServiceTestSuite) TestGetPatientNotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().
		GetByID(id).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	_, err := suite.service.GetByID(suite.caller, id)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

// TestGetPatientWithMeasures tests the detail response ordering path
func (suite *PatientServiceTestSuite) TestGetPatientWithMeasures() {
	patient := testutils.NewTestPatient(suite.orgID, suite.caller.ID, "Ana")
	patient.ID = uuid.New()
	measure := testutils.NewTestMeasure(suite.orgID, suite.caller.ID, patient.ID, "flexion")
	measure.ID = uuid.New()

	suite.mockRepo.EXPECT().GetByID(patient.ID).Return(patient, nil).Times(1)
	suite.mockMeasureRepo.EXPECT().
		ListByPatient(suite.orgID, patient.ID).
		Return([]models.Measure{*measure}, nil).
		Times(1)

	resp, err := suite.service.GetByID(suite.caller, patient.ID)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), "Ana", resp.Patient.Name)
	suite.Require().Len(resp.Measures, 1)
	assert.Equal(suite.T(), "flexion", resp.Measures[0].Name)
}

// TestUpdatePatientCrossTenantUnchanged tests the update guard
func (suite *PatientServiceTestSuite) TestUpdatePatientCrossTenantUnchanged() {
	patient := testutils.NewTestPatient(uuid.New(), uuid.New(), "Ana")
	patient.ID = uuid.New()

	suite.mockRepo.EXPECT().GetByID(patient.ID).Return(patient, nil).Times(1)
	// No Update expectation: the repository must not be written.

	req := &service.UpdatePatientRequest{
		Name:      "Changed",
		LastName:  "Name",
		Gender:    "male",
		Education: "none",
		Sport:     "none",
	}
	_, err := suite.service.Update(suite.caller, patient.ID, req)
	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

// TestDeletePatientRemovesImages tests that stored measure images go with the rows
func (suite *PatientServiceTestSuite) TestDeletePatientRemovesImages() {
	patient := testutils.NewTestPatient(suite.orgID, suite.caller.ID, "Ana")
	patient.ID = uuid.New()
	measure := testutils.NewTestMeasure(suite.orgID, suite.caller.ID, patient.ID, "flexion")
	measure.ID = uuid.New()
	measure.ImagePath = "abc.png"

	suite.mockRepo.EXPECT().GetByID(patient.ID).Return(patient, nil).Times(1)
	suite.mockMeasureRepo.EXPECT().
		ListByPatient(suite.orgID, patient.ID).
		Return([]models.Measure{*measure}, nil).
		Times(1)
	suite.mockRepo.EXPECT().Delete(patient.ID).Return(nil).Times(1)

	err := suite.service.Delete(suite.caller, patient.ID)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), []string{"abc.png"}, suite.store.deleted)
}

// TestCallerWithoutOrganization tests the no-organization guard
func (suite *PatientServiceTestSuite) TestCallerWithoutOrganization() {
	caller := &models.User{}
	_, err := suite.service.List(caller)
	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

// TestPatientServiceTestSuite runs the test suite
func TestPatientServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PatientServiceTestSuite))
}
