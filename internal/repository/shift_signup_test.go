//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"foodbank-backend/internal/database/models"
	"foodbank-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ShiftSignupRepositoryTestSuite tests ShiftSignupRepository and the shift
// occurrence lookup against a real Postgres instance
type ShiftSignupRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ShiftSignupRepository
	shiftRepo     *ShiftRepository

	org      *models.Organization
	user     *models.User
	category *models.ShiftCategory
}

// SetupSuite runs before all tests in the suite
func (suite *ShiftSignupRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewShiftSignupRepository(suite.baseTestSuite.DB)
	suite.shiftRepo = NewShiftRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *ShiftSignupRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ShiftSignupRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	db := suite.baseTestSuite.DB
	suite.org = testutils.CreateTestOrganization(suite.T(), db)
	suite.user = testutils.CreateTestUser(suite.T(), db, suite.org.ID)
	suite.category = testutils.CreateTestShiftCategory(suite.T(), db, suite.org.ID, "Sorting")
}

// TearDownTest runs after each test
func (suite *ShiftSignupRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ShiftSignupRepositoryTestSuite) createShift(start time.Time) *models.Shift {
	return testutils.CreateTestShift(suite.T(), suite.baseTestSuite.DB,
		suite.org.ID, suite.category.ID, start, start.Add(3*time.Hour))
}

// TestCreateDuplicatePair tests the unique constraint on (user, shift)
func (suite *ShiftSignupRepositoryTestSuite) TestCreateDuplicatePair() {
	shift := suite.createShift(time.Date(2024, 3, 4, 13, 0, 0, 0, time.UTC))

	err := suite.repo.Create(&models.ShiftSignup{UserID: suite.user.ID, ShiftID: shift.ID})
	suite.NoError(err)

	err = suite.repo.Create(&models.ShiftSignup{UserID: suite.user.ID, ShiftID: shift.ID})
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestCountByShiftID tests counting signups for a shift
func (suite *ShiftSignupRepositoryTestSuite) TestCountByShiftID() {
	shift := suite.createShift(time.Date(2024, 3, 4, 13, 0, 0, 0, time.UTC))
	other := testutils.CreateTestUser(suite.T(), suite.baseTestSuite.DB, suite.org.ID)

	testutils.CreateTestSignup(suite.T(), suite.baseTestSuite.DB, suite.user.ID, shift.ID)
	testutils.CreateTestSignup(suite.T(), suite.baseTestSuite.DB, other.ID, shift.ID)

	count, err := suite.repo.CountByShiftID(shift.ID)
	suite.NoError(err)
	suite.Equal(int64(2), count)
}

// TestGetByOrganizationAndWindow tests the half-open time window join
func (suite *ShiftSignupRepositoryTestSuite) TestGetByOrganizationAndWindow() {
	inside := suite.createShift(time.Date(2024, 3, 4, 13, 0, 0, 0, time.UTC))
	outside := suite.createShift(time.Date(2024, 4, 2, 13, 0, 0, 0, time.UTC))

	testutils.CreateTestSignup(suite.T(), suite.baseTestSuite.DB, suite.user.ID, inside.ID)
	other := testutils.CreateTestUser(suite.T(), suite.baseTestSuite.DB, suite.org.ID)
	testutils.CreateTestSignup(suite.T(), suite.baseTestSuite.DB, other.ID, outside.ID)

	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	signups, err := suite.repo.GetByOrganizationAndWindow(suite.org.ID, from, to)
	suite.NoError(err)
	suite.Len(signups, 1)
	suite.Equal(inside.ID, signups[0].ShiftID)
	suite.Equal(inside.ID, signups[0].Shift.ID) // preloaded
}

// TestFindOccurrence tests the occurrence lookup used by materialization
func (suite *ShiftSignupRepositoryTestSuite) TestFindOccurrence() {
	start := time.Date(2024, 3, 4, 13, 0, 0, 0, time.UTC)
	shift := suite.createShift(start)

	found, err := suite.shiftRepo.FindOccurrence(
		suite.org.ID, suite.category.ID, shift.Name, shift.StartTime, shift.EndTime, shift.Location)
	suite.NoError(err)
	suite.Equal(shift.ID, found.ID)

	_, err = suite.shiftRepo.FindOccurrence(
		suite.org.ID, suite.category.ID, shift.Name, start.Add(time.Hour), shift.EndTime, shift.Location)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// Run the test suite
func TestShiftSignupRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ShiftSignupRepositoryTestSuite))
}
