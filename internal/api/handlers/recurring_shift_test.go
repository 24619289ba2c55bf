package handlers

import (
	"net/http"
	"testing"

	apperrors "foodbank-backend/internal/errors"
	"foodbank-backend/internal/mocks"
	"foodbank-backend/internal/service"
	"foodbank-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// RecurringShiftHandlerTestSuite defines the test suite for RecurringShiftHandler
type RecurringShiftHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockRecurringShiftServiceInterface
	handler     *RecurringShiftHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *RecurringShiftHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockRecurringShiftServiceInterface(suite.ctrl)

	suite.handler = NewRecurringShiftHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	{
		v1.POST("/recurring-shifts", suite.handler.CreateRecurringShift)
		v1.GET("/recurring-shifts/:id", suite.handler.GetRecurringShift)
		v1.POST("/organizations/:id/recurring-shifts/:shiftId/materialize", suite.handler.MaterializeRecurringShift)
	}
}

// TearDownTest cleans up after each test
func (suite *RecurringShiftHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RecurringShiftHandlerTestSuite) materializePath(orgID, shiftID string) string {
	return "/api/v1/organizations/" + orgID + "/recurring-shifts/" + shiftID + "/materialize"
}

// TestMaterialize tests the happy path
func (suite *RecurringShiftHandlerTestSuite) TestMaterialize() {
	orgID := uuid.New()
	recurringID := uuid.New()
	userID := uuid.New()
	shiftID := uuid.New()

	expected := &service.MaterializeResponse{
		ShiftID:   shiftID,
		ShiftDate: "2024-03-11",
		Created:   1,
		Skipped:   0,
	}

	suite.mockService.EXPECT().
		Materialize(orgID, recurringID, gomock.Any()).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", suite.materializePath(orgID.String(), recurringID.String()), map[string]interface{}{
		"user_ids": []string{userID.String()},
	})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.MaterializeResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), shiftID, response.ShiftID)
	assert.Equal(suite.T(), "2024-03-11", response.ShiftDate)
	assert.Equal(suite.T(), 1, response.Created)
}

// TestMaterializeEmptyUsers tests the empty user list rejection
func (suite *RecurringShiftHandlerTestSuite) TestMaterializeEmptyUsers() {
	orgID := uuid.New()
	recurringID := uuid.New()

	suite.mockService.EXPECT().
		Materialize(orgID, recurringID, gomock.Any()).
		Return(nil, apperrors.ErrNoUserIDs).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", suite.materializePath(orgID.String(), recurringID.String()), map[string]interface{}{
		"user_ids": []string{},
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "user_ids is required")
}

// TestMaterializeNotFound tests the unknown template path
func (suite *RecurringShiftHandlerTestSuite) TestMaterializeNotFound() {
	orgID := uuid.New()
	recurringID := uuid.New()

	suite.mockService.EXPECT().
		Materialize(orgID, recurringID, gomock.Any()).
		Return(nil, apperrors.ErrRecurringShiftNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", suite.materializePath(orgID.String(), recurringID.String()), map[string]interface{}{
		"user_ids": []string{uuid.NewString()},
	})

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestMaterializeInvalidIDs tests UUID validation on both path params
func (suite *RecurringShiftHandlerTestSuite) TestMaterializeInvalidIDs() {
	recorder := suite.httpSuite.MakeRequest("POST", suite.materializePath("bad", uuid.NewString()), map[string]interface{}{
		"user_ids": []string{uuid.NewString()},
	})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid organization ID")

	recorder = suite.httpSuite.MakeRequest("POST", suite.materializePath(uuid.NewString(), "bad"), map[string]interface{}{
		"user_ids": []string{uuid.NewString()},
	})
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid recurring shift ID")
}

// TestGetRecurringShift tests getting a template by ID
func (suite *RecurringShiftHandlerTestSuite) TestGetRecurringShift() {
	id := uuid.New()
	expected := &service.RecurringShiftResponse{
		ID:        id,
		Name:      "Morning Sort",
		DayOfWeek: 1,
		StartTime: "09:00",
		EndTime:   "12:00",
	}

	suite.mockService.EXPECT().
		GetByID(id).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/recurring-shifts/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.RecurringShiftResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "Morning Sort", response.Name)
}

// TestRecurringShiftHandlerTestSuite runs the test suite
func TestRecurringShiftHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RecurringShiftHandlerTestSuite))
}
