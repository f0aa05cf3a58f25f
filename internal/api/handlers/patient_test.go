package handlers

import (
	"net/http"
	"testing"

	"quiroclinic-backend/internal/auth"
	"quiroclinic-backend/internal/database/models"
	apperrors "quiroclinic-backend/internal/errors"
	"quiroclinic-backend/internal/mocks"
	"quiroclinic-backend/internal/service"
	"quiroclinic-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// PatientHandlerTestSuite defines the test suite for PatientHandler
type PatientHandlerTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockPatientService *mocks.MockPatientServiceInterface
	handler            *PatientHandler
	httpSuite          *testutils.HTTPTestSuite
	caller             *models.User
}

// SetupTest sets up the test suite
func (suite *PatientHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPatientService = mocks.NewMockPatientServiceInterface(suite.ctrl)
	suite.handler = NewPatientHandler(suite.mockPatientService)
	suite.httpSuite = testutils.SetupHTTPTest()

	suite.caller = testutils.CallerWithPermissions(uuid.New(), models.RoleMedic, models.PermViewPatient, models.PermCreatePatient)

	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.Use(func(c *gin.Context) {
		auth.SetCaller(c, suite.caller)
		c.Next()
	})
	patients := v1.Group("/patients")
	{
		patients.GET("", suite.handler.ListPatients)
		patients.POST("", suite.handler.CreatePatient)
		patients.GET("/:id", suite.handler.GetPatient)
		patients.PUT("/:id", suite.handler.UpdatePatient)
		patients.DELETE("/:id", suite.handler.DeletePatient)
		patients.GET("/:id/measures", suite.handler.GetPatientMeasures)
	}
}

// TearDownTest cleans up after each test
func (suite *PatientHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListPatients tests listing patients
func (suite *PatientHandlerTestSuite) TestListPatients() {
	expected := []service.PatientResponse{{ID: uuid.New(), Name: "Ana", LastName: "Doe"}}

	suite.mockPatientService.EXPECT().
		List(suite.caller).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/patients", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	var response []service.PatientResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response, 1)
	assert.Equal(suite.T(), "Ana", response[0].Name)
}

// TestCreatePatient tests creating a patient
func (suite *PatientHandlerTestSuite) TestCreatePatient() {
	requestBody := map[string]interface{}{
		"name":       "Ana",
		"last_name":  "Doe",
		"age":        30,
		"gender":     "female",
		"weight":     65.5,
		"education":  "university",
		"sport":      "running",
		"rest_hours": 8,
	}
	expected := &service.PatientResponse{ID: uuid.New(), Name: "Ana"}

	suite.mockPatientService.EXPECT().
		Create(suite.caller, gomock.Any()).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/patients", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
}

// TestGetPatientForbidden tests the cross-tenant 403 mapping
func (suite *PatientHandlerTestSuite) TestGetPatientForbidden() {
	id := uuid.New()

	suite.mockPatientService.EXPECT().
		GetByID(suite.caller, id).
		Return(nil, apperrors.ErrPatientAccessDenied).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/patients/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusForbidden, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "permission")
}

// TestGetPatientNotFound tests the 404 mapping
func (suite *PatientHandlerTestSuite) TestGetPatientNotFound() {
	id := uuid.New()

	suite.mockPatientService.EXPECT().
		GetByID(suite.caller, id).
		Return(nil, apperrors.ErrPatientNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/patients/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestGetPatientInvalidID tests the UUID parse guard
func (suite *PatientHandlerTestSuite) TestGetPatientInvalidID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/patients/not-a-uuid", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestDeletePatient tests the 204 on delete
func (suite *PatientHandlerTestSuite) TestDeletePatient() {
	id := uuid.New()

	suite.mockPatientService.EXPECT().
		Delete(suite.caller, id).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/patients/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestGetPatientMeasures tests the nested measures listing
func (suite *PatientHandlerTestSuite) TestGetPatientMeasures() {
	id := uuid.New()
	expected := []service.MeasureResponse{{ID: uuid.New(), Name: "flexion"}}

	suite.mockPatientService.EXPECT().
		Measures(suite.caller, id).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/patients/"+id.String()+"/measures", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	var response []service.MeasureResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response, 1)
}

// TestPatientHandlerTestSuite runs the test suite
func TestPatientHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PatientHandlerTestSuite))
}
