package service

import (
	"testing"
	"time"

	"foodbank-backend/internal/database/models"
	apperrors "foodbank-backend/internal/errors"
	"foodbank-backend/internal/repository"
	"foodbank-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ShiftSignupServiceTestSuite defines the test suite for ShiftSignupService
type ShiftSignupServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *ShiftSignupService

	org      *models.Organization
	category *models.ShiftCategory
	shift    *models.Shift
}

// SetupTest sets up the test suite
func (suite *ShiftSignupServiceTestSuite) SetupTest() {
	suite.db = testutils.SetupTestDB(suite.T())

	suite.service = NewShiftSignupService(
		repository.NewShiftSignupRepository(suite.db),
		repository.NewShiftRepository(suite.db),
		repository.NewUserRepository(suite.db),
		validator.New(),
	)

	suite.org = testutils.CreateTestOrganization(suite.T(), suite.db)
	suite.category = testutils.CreateTestShiftCategory(suite.T(), suite.db, suite.org.ID, "Sorting")

	start := time.Date(2024, 3, 4, 13, 0, 0, 0, time.UTC)
	suite.shift = testutils.CreateTestShift(suite.T(), suite.db, suite.org.ID, suite.category.ID, start, start.Add(3*time.Hour))
}

// TestCreateSignup tests the happy path
func (suite *ShiftSignupServiceTestSuite) TestCreateSignup() {
	user := testutils.CreateTestUser(suite.T(), suite.db, suite.org.ID)

	resp, err := suite.service.Create(&CreateShiftSignupRequest{UserID: user.ID, ShiftID: suite.shift.ID})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), user.ID, resp.UserID)
	assert.Equal(suite.T(), suite.shift.ID, resp.ShiftID)
	assert.Nil(suite.T(), resp.CheckIn)
	assert.Equal(suite.T(), 0, resp.MealsServed)
}

// TestCreateSignupDuplicate tests the one-signup-per-pair rule
func (suite *ShiftSignupServiceTestSuite) TestCreateSignupDuplicate() {
	user := testutils.CreateTestUser(suite.T(), suite.db, suite.org.ID)

	_, err := suite.service.Create(&CreateShiftSignupRequest{UserID: user.ID, ShiftID: suite.shift.ID})
	require.NoError(suite.T(), err)

	_, err = suite.service.Create(&CreateShiftSignupRequest{UserID: user.ID, ShiftID: suite.shift.ID})
	assert.ErrorIs(suite.T(), err, apperrors.ErrShiftSignupExists)
}

// TestCreateSignupShiftFull tests the capacity check
func (suite *ShiftSignupServiceTestSuite) TestCreateSignupShiftFull() {
	start := time.Date(2024, 3, 11, 13, 0, 0, 0, time.UTC)
	small := &models.Shift{
		OrganizationID: suite.org.ID,
		CategoryID:     suite.category.ID,
		Name:           "Tiny Shift",
		StartTime:      start,
		EndTime:        start.Add(2 * time.Hour),
		Slots:          1,
	}
	require.NoError(suite.T(), suite.db.Create(small).Error)

	first := testutils.CreateTestUser(suite.T(), suite.db, suite.org.ID)
	second := testutils.CreateTestUser(suite.T(), suite.db, suite.org.ID)

	_, err := suite.service.Create(&CreateShiftSignupRequest{UserID: first.ID, ShiftID: small.ID})
	require.NoError(suite.T(), err)

	_, err = suite.service.Create(&CreateShiftSignupRequest{UserID: second.ID, ShiftID: small.ID})
	assert.ErrorIs(suite.T(), err, apperrors.ErrShiftFull)
}

// TestCreateSignupUnknownReferences tests the existence checks
func (suite *ShiftSignupServiceTestSuite) TestCreateSignupUnknownReferences() {
	user := testutils.CreateTestUser(suite.T(), suite.db, suite.org.ID)

	_, err := suite.service.Create(&CreateShiftSignupRequest{UserID: uuid.New(), ShiftID: suite.shift.ID})
	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)

	_, err = suite.service.Create(&CreateShiftSignupRequest{UserID: user.ID, ShiftID: uuid.New()})
	assert.ErrorIs(suite.T(), err, apperrors.ErrShiftNotFound)
}

// TestUpdateAttendance tests recording check-in, check-out and meals
func (suite *ShiftSignupServiceTestSuite) TestUpdateAttendance() {
	user := testutils.CreateTestUser(suite.T(), suite.db, suite.org.ID)
	signup := testutils.CreateTestSignup(suite.T(), suite.db, user.ID, suite.shift.ID)

	checkIn := suite.shift.StartTime
	checkOut := suite.shift.StartTime.Add(3 * time.Hour)
	meals := 25

	resp, err := suite.service.Update(signup.ID, &UpdateShiftSignupRequest{
		CheckIn:     &checkIn,
		CheckOut:    &checkOut,
		MealsServed: &meals,
	})
	require.NoError(suite.T(), err)
	assert.True(suite.T(), resp.CheckIn.Equal(checkIn))
	assert.True(suite.T(), resp.CheckOut.Equal(checkOut))
	assert.Equal(suite.T(), 25, resp.MealsServed)
}

// TestUpdateCheckOutBeforeCheckIn tests the attendance ordering rule
func (suite *ShiftSignupServiceTestSuite) TestUpdateCheckOutBeforeCheckIn() {
	user := testutils.CreateTestUser(suite.T(), suite.db, suite.org.ID)
	signup := testutils.CreateTestSignup(suite.T(), suite.db, user.ID, suite.shift.ID)

	checkIn := suite.shift.StartTime
	checkOut := suite.shift.StartTime.Add(-time.Hour)

	_, err := suite.service.Update(signup.ID, &UpdateShiftSignupRequest{
		CheckIn:  &checkIn,
		CheckOut: &checkOut,
	})
	assert.ErrorIs(suite.T(), err, apperrors.ErrCheckOutBeforeCheckIn)
}

// TestUpdateNegativeMeals tests meals validation
func (suite *ShiftSignupServiceTestSuite) TestUpdateNegativeMeals() {
	user := testutils.CreateTestUser(suite.T(), suite.db, suite.org.ID)
	signup := testutils.CreateTestSignup(suite.T(), suite.db, user.ID, suite.shift.ID)

	meals := -1
	_, err := suite.service.Update(signup.ID, &UpdateShiftSignupRequest{MealsServed: &meals})
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestDeleteSignup tests deleting a signup
func (suite *ShiftSignupServiceTestSuite) TestDeleteSignup() {
	user := testutils.CreateTestUser(suite.T(), suite.db, suite.org.ID)
	signup := testutils.CreateTestSignup(suite.T(), suite.db, user.ID, suite.shift.ID)

	require.NoError(suite.T(), suite.service.Delete(signup.ID))

	_, err := suite.service.GetByID(signup.ID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrShiftSignupNotFound)
}

// TestShiftSignupServiceTestSuite runs the test suite
func TestShiftSignupServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ShiftSignupServiceTestSuite))
}
