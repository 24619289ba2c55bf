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

// ShiftServiceTestSuite defines the test suite for ShiftService
type ShiftServiceTestSuite struct {
	suite.Suite
	db         *gorm.DB
	service    *ShiftService
	signupRepo *repository.ShiftSignupRepository

	org      *models.Organization
	category *models.ShiftCategory
}

// SetupTest sets up the test suite
func (suite *ShiftServiceTestSuite) SetupTest() {
	suite.db = testutils.SetupTestDB(suite.T())
	suite.signupRepo = repository.NewShiftSignupRepository(suite.db)

	suite.service = NewShiftService(
		repository.NewShiftRepository(suite.db),
		repository.NewShiftCategoryRepository(suite.db),
		repository.NewOrganizationRepository(suite.db),
		suite.signupRepo,
		validator.New(),
	)

	suite.org = testutils.CreateTestOrganization(suite.T(), suite.db)
	suite.category = testutils.CreateTestShiftCategory(suite.T(), suite.db, suite.org.ID, "Sorting")
}

// TestCreateShift tests creating a shift
func (suite *ShiftServiceTestSuite) TestCreateShift() {
	start := time.Date(2024, 3, 4, 13, 0, 0, 0, time.UTC)

	resp, err := suite.service.Create(&CreateShiftRequest{
		OrganizationID: suite.org.ID,
		CategoryID:     suite.category.ID,
		Name:           "Morning Sort",
		StartTime:      start,
		EndTime:        start.Add(3 * time.Hour),
		Location:       "Warehouse",
		Slots:          5,
	})
	require.NoError(suite.T(), err)
	assert.NotEqual(suite.T(), uuid.Nil, resp.ID)
	assert.Equal(suite.T(), "Morning Sort", resp.Name)
}

// TestCreateShiftInvalidTimeRange tests the end-after-start rule
func (suite *ShiftServiceTestSuite) TestCreateShiftInvalidTimeRange() {
	start := time.Date(2024, 3, 4, 13, 0, 0, 0, time.UTC)

	_, err := suite.service.Create(&CreateShiftRequest{
		OrganizationID: suite.org.ID,
		CategoryID:     suite.category.ID,
		Name:           "Morning Sort",
		StartTime:      start,
		EndTime:        start,
		Slots:          5,
	})
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidTimeRange)
}

// TestDeleteShiftRemovesSignups tests that deleting a shift also removes its
// signups so they cannot resurface elsewhere
func (suite *ShiftServiceTestSuite) TestDeleteShiftRemovesSignups() {
	start := time.Date(2024, 3, 4, 13, 0, 0, 0, time.UTC)
	shift := testutils.CreateTestShift(suite.T(), suite.db, suite.org.ID, suite.category.ID, start, start.Add(3*time.Hour))

	user := testutils.CreateTestUser(suite.T(), suite.db, suite.org.ID)
	other := testutils.CreateTestUser(suite.T(), suite.db, suite.org.ID)
	signup := testutils.CreateTestSignup(suite.T(), suite.db, user.ID, shift.ID)
	testutils.CreateTestSignup(suite.T(), suite.db, other.ID, shift.ID)

	require.NoError(suite.T(), suite.service.Delete(shift.ID))

	_, err := suite.service.GetByID(shift.ID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrShiftNotFound)

	_, err = suite.signupRepo.GetByID(signup.ID)
	assert.ErrorIs(suite.T(), err, gorm.ErrRecordNotFound)

	count, err := suite.signupRepo.CountByShiftID(shift.ID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(0), count)
}

// TestDeleteShiftNotFound tests deleting an unknown shift
func (suite *ShiftServiceTestSuite) TestDeleteShiftNotFound() {
	err := suite.service.Delete(uuid.New())
	assert.ErrorIs(suite.T(), err, apperrors.ErrShiftNotFound)
}

// TestShiftServiceTestSuite runs the test suite
func TestShiftServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ShiftServiceTestSuite))
}
