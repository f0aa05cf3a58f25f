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

// MeasureHandlerTestSuite defines the test suite for MeasureHandler
type MeasureHandlerTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockMeasureService *mocks.MockMeasureServiceInterface
	handler            *MeasureHandler
	httpSuite          *testutils.HTTPTestSuite
	caller             *models.User
}

// SetupTest sets up the test suite
func (suite *MeasureHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMeasureService = mocks.NewMockMeasureServiceInterface(suite.ctrl)
	suite.handler = NewMeasureHandler(suite.mockMeasureService)
	suite.httpSuite = testutils.SetupHTTPTest()

	suite.caller = testutils.CallerWithPermissions(uuid.New(), models.RoleMedic, models.PermCreateMeasure, models.PermViewMeasure)

	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.Use(func(c *gin.Context) {
		auth.SetCaller(c, suite.caller)
		c.Next()
	})
	measures := v1.Group("/measures")
	{
		measures.GET("", suite.handler.ListMeasures)
		measures.POST("", suite.handler.CreateMeasure)
		measures.GET("/:id", suite.handler.GetMeasure)
		measures.PUT("/:id", suite.handler.UpdateMeasure)
		measures.DELETE("/:id", suite.handler.DeleteMeasure)
	}
}

// TearDownTest cleans up after each test
func (suite *MeasureHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateMeasureJSON tests the JSON body path without an image
func (suite *MeasureHandlerTestSuite) TestCreateMeasureJSON() {
	patientID := uuid.New()
	requestBody := map[string]interface{}{
		"name":       "flexion",
		"body_zone":  "lower-back",
		"value":      12.5,
		"unit":       "cm",
		"patient_id": patientID.String(),
	}
	expected := &service.MeasureResponse{ID: uuid.New(), Name: "flexion"}

	suite.mockMeasureService.EXPECT().
		Create(suite.caller, gomock.Any(), gomock.Nil()).
		DoAndReturn(func(_ *models.User, req *service.CreateMeasureRequest, _ *service.ImageUpload) (*service.MeasureResponse, error) {
			assert.Equal(suite.T(), patientID, req.PatientID)
			suite.Require().NotNil(req.Value)
			assert.Equal(suite.T(), 12.5, *req.Value)
			return expected, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/measures", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
}

// TestCreateMeasureMultipartWithImage tests the multipart path
func (suite *MeasureHandlerTestSuite) TestCreateMeasureMultipartWithImage() {
	patientID := uuid.New()
	fields := map[string]string{
		"name":       "flexion",
		"body_zone":  "lower-back",
		"value":      "12.5",
		"unit":       "cm",
		"patient_id": patientID.String(),
	}
	expected := &service.MeasureResponse{ID: uuid.New(), Name: "flexion", ImagePath: "stored.png"}

	suite.mockMeasureService.EXPECT().
		Create(suite.caller, gomock.Any(), gomock.Not(gomock.Nil())).
		DoAndReturn(func(_ *models.User, req *service.CreateMeasureRequest, image *service.ImageUpload) (*service.MeasureResponse, error) {
			assert.Equal(suite.T(), patientID, req.PatientID)
			assert.Equal(suite.T(), "photo.png", image.Filename)
			return expected, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeMultipartRequest("POST", "/api/v1/measures", fields, "photo.png", []byte("png-bytes"))

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
}

// TestCreateMeasureNonNumericValue tests that a bad form value fails before
// the service is called
func (suite *MeasureHandlerTestSuite) TestCreateMeasureNonNumericValue() {
	fields := map[string]string{
		"name":       "flexion",
		"body_zone":  "lower-back",
		"value":      "abc",
		"unit":       "cm",
		"patient_id": uuid.New().String(),
	}

	recorder := suite.httpSuite.MakeMultipartRequest("POST", "/api/v1/measures", fields, "photo.png", []byte("png-bytes"))

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestCreateMeasureMissingValueForm tests that an omitted form value reaches
// the service as nil instead of a zero measurement
func (suite *MeasureHandlerTestSuite) TestCreateMeasureMissingValueForm() {
	fields := map[string]string{
		"name":       "flexion",
		"body_zone":  "lower-back",
		"unit":       "cm",
		"patient_id": uuid.New().String(),
	}

	suite.mockMeasureService.EXPECT().
		Create(suite.caller, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ *models.User, req *service.CreateMeasureRequest, _ *service.ImageUpload) (*service.MeasureResponse, error) {
			assert.Nil(suite.T(), req.Value)
			return nil, apperrors.NewValidationError("value", "value is required")
		}).
		Times(1)

	recorder := suite.httpSuite.MakeMultipartRequest("POST", "/api/v1/measures", fields, "photo.png", []byte("png-bytes"))

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestCreateMeasureImageTooLarge tests the 400 mapping for an oversized image
func (suite *MeasureHandlerTestSuite) TestCreateMeasureImageTooLarge() {
	fields := map[string]string{
		"name":       "flexion",
		"body_zone":  "lower-back",
		"value":      "12.5",
		"unit":       "cm",
		"patient_id": uuid.New().String(),
	}

	suite.mockMeasureService.EXPECT().
		Create(suite.caller, gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrImageTooLarge).
		Times(1)

	recorder := suite.httpSuite.MakeMultipartRequest("POST", "/api/v1/measures", fields, "big.png", []byte("png-bytes"))

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "2MB")
}

// TestGetMeasureForbidden tests the cross-tenant 403 mapping
func (suite *MeasureHandlerTestSuite) TestGetMeasureForbidden() {
	id := uuid.New()

	suite.mockMeasureService.EXPECT().
		GetByID(suite.caller, id).
		Return(nil, apperrors.ErrMeasureAccessDenied).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/measures/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusForbidden, recorder.Code)
}

// TestDeleteMeasure tests the 204 on delete
func (suite *MeasureHandlerTestSuite) TestDeleteMeasure() {
	id := uuid.New()

	suite.mockMeasureService.EXPECT().
		Delete(suite.caller, id).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/measures/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestMeasureHandlerTestSuite runs the test suite
func TestMeasureHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MeasureHandlerTestSuite))
}
