package service

import (
	"testing"
	"time"

	"foodbank-backend/internal/database/models"
	apperrors "foodbank-backend/internal/errors"
	"foodbank-backend/internal/reports"
	"foodbank-backend/internal/repository"
	"foodbank-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// RecurringShiftServiceTestSuite defines the test suite for RecurringShiftService
type RecurringShiftServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *RecurringShiftService

	org      *models.Organization
	category *models.ShiftCategory
}

// SetupTest sets up the test suite
func (suite *RecurringShiftServiceTestSuite) SetupTest() {
	suite.db = testutils.SetupTestDB(suite.T())

	v := validator.New()
	suite.service = NewRecurringShiftService(
		repository.NewRecurringShiftRepository(suite.db),
		repository.NewShiftRepository(suite.db),
		repository.NewShiftSignupRepository(suite.db),
		repository.NewShiftCategoryRepository(suite.db),
		repository.NewOrganizationRepository(suite.db),
		suite.db,
		v,
	)

	suite.org = testutils.CreateTestOrganization(suite.T(), suite.db)
	suite.category = testutils.CreateTestShiftCategory(suite.T(), suite.db, suite.org.ID, "Sorting")
}

func (suite *RecurringShiftServiceTestSuite) createTemplate(dayOfWeek int) *models.RecurringShift {
	return testutils.CreateTestRecurringShift(suite.T(), suite.db, suite.org.ID, suite.category.ID, dayOfWeek)
}

// TestCreateRecurringShift tests creating a template
func (suite *RecurringShiftServiceTestSuite) TestCreateRecurringShift() {
	resp, err := suite.service.Create(&CreateRecurringShiftRequest{
		OrganizationID: suite.org.ID,
		CategoryID:     suite.category.ID,
		Name:           "Evening Delivery",
		DayOfWeek:      3,
		StartTime:      "17:30",
		EndTime:        "20:00",
		Location:       "Depot",
		Slots:          4,
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Evening Delivery", resp.Name)
	assert.Equal(suite.T(), 3, resp.DayOfWeek)
	assert.Equal(suite.T(), "17:30", resp.StartTime)
}

// TestCreateRecurringShiftInvalidClock tests that malformed times are rejected
func (suite *RecurringShiftServiceTestSuite) TestCreateRecurringShiftInvalidClock() {
	_, err := suite.service.Create(&CreateRecurringShiftRequest{
		OrganizationID: suite.org.ID,
		CategoryID:     suite.category.ID,
		Name:           "Evening Delivery",
		DayOfWeek:      3,
		StartTime:      "25:00",
		EndTime:        "20:00",
		Slots:          4,
	})

	require.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestMaterializeCreatesShiftAndSignups tests the happy path
func (suite *RecurringShiftServiceTestSuite) TestMaterializeCreatesShiftAndSignups() {
	rec := suite.createTemplate(int(time.Monday))
	userA := testutils.CreateTestUser(suite.T(), suite.db, suite.org.ID)
	userB := testutils.CreateTestUser(suite.T(), suite.db, suite.org.ID)

	resp, err := suite.service.Materialize(suite.org.ID, rec.ID, &MaterializeRequest{
		UserIDs: []uuid.UUID{userA.ID, userB.ID},
	})

	require.NoError(suite.T(), err)
	assert.NotEqual(suite.T(), uuid.Nil, resp.ShiftID)
	assert.Equal(suite.T(), 2, resp.Created)
	assert.Equal(suite.T(), 0, resp.Skipped)

	var shift models.Shift
	require.NoError(suite.T(), suite.db.First(&shift, "id = ?", resp.ShiftID).Error)
	assert.Equal(suite.T(), rec.Name, shift.Name)
	assert.Equal(suite.T(), rec.Slots, shift.Slots)

	// The shift date is strictly in the future, on the template weekday
	start := shift.StartTime.In(reports.Location())
	assert.Equal(suite.T(), time.Monday, start.Weekday())
	assert.True(suite.T(), start.After(time.Now()))
	assert.Equal(suite.T(), start.Format("2006-01-02"), resp.ShiftDate)

	var count int64
	require.NoError(suite.T(), suite.db.Model(&models.ShiftSignup{}).Where("shift_id = ?", resp.ShiftID).Count(&count).Error)
	assert.Equal(suite.T(), int64(2), count)
}

// TestMaterializeIsIdempotent tests that repeating a call reuses the shift
// and skips existing signups
func (suite *RecurringShiftServiceTestSuite) TestMaterializeIsIdempotent() {
	rec := suite.createTemplate(int(time.Friday))
	userA := testutils.CreateTestUser(suite.T(), suite.db, suite.org.ID)
	userB := testutils.CreateTestUser(suite.T(), suite.db, suite.org.ID)

	first, err := suite.service.Materialize(suite.org.ID, rec.ID, &MaterializeRequest{
		UserIDs: []uuid.UUID{userA.ID},
	})
	require.NoError(suite.T(), err)

	second, err := suite.service.Materialize(suite.org.ID, rec.ID, &MaterializeRequest{
		UserIDs: []uuid.UUID{userA.ID, userB.ID},
	})
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), first.ShiftID, second.ShiftID)
	assert.Equal(suite.T(), 1, second.Created)
	assert.Equal(suite.T(), 1, second.Skipped)

	var shiftCount int64
	require.NoError(suite.T(), suite.db.Model(&models.Shift{}).Where("organization_id = ?", suite.org.ID).Count(&shiftCount).Error)
	assert.Equal(suite.T(), int64(1), shiftCount)
}

// TestMaterializeRequiresUsers tests that an empty user list is rejected
func (suite *RecurringShiftServiceTestSuite) TestMaterializeRequiresUsers() {
	rec := suite.createTemplate(int(time.Monday))

	_, err := suite.service.Materialize(suite.org.ID, rec.ID, &MaterializeRequest{})
	assert.ErrorIs(suite.T(), err, apperrors.ErrNoUserIDs)

	_, err = suite.service.Materialize(suite.org.ID, rec.ID, nil)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNoUserIDs)
}

// TestMaterializeUnknownTemplate tests the not-found path
func (suite *RecurringShiftServiceTestSuite) TestMaterializeUnknownTemplate() {
	user := testutils.CreateTestUser(suite.T(), suite.db, suite.org.ID)

	_, err := suite.service.Materialize(suite.org.ID, uuid.New(), &MaterializeRequest{
		UserIDs: []uuid.UUID{user.ID},
	})
	assert.ErrorIs(suite.T(), err, apperrors.ErrRecurringShiftNotFound)
}

// TestMaterializeWrongOrganization tests that a template is not reachable
// through another tenant
func (suite *RecurringShiftServiceTestSuite) TestMaterializeWrongOrganization() {
	rec := suite.createTemplate(int(time.Monday))
	user := testutils.CreateTestUser(suite.T(), suite.db, suite.org.ID)
	otherOrg := testutils.CreateTestOrganization(suite.T(), suite.db)

	_, err := suite.service.Materialize(otherOrg.ID, rec.ID, &MaterializeRequest{
		UserIDs: []uuid.UUID{user.ID},
	})
	assert.ErrorIs(suite.T(), err, apperrors.ErrRecurringShiftNotFound)
}

// TestRecurringShiftServiceTestSuite runs the test suite
func TestRecurringShiftServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RecurringShiftServiceTestSuite))
}

func TestNextOccurrence(t *testing.T) {
	// Wednesday
	today := time.Date(2024, 3, 6, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		dayOfWeek int
		want      string
	}{
		{"later this week", int(time.Friday), "2024-03-08"},
		{"wraps to next week", int(time.Monday), "2024-03-11"},
		{"same day advances a full week", int(time.Wednesday), "2024-03-13"},
		{"sunday", int(time.Sunday), "2024-03-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nextOccurrence(today, tt.dayOfWeek)
			assert.Equal(t, tt.want, got.Format("2006-01-02"))
			assert.Equal(t, time.Weekday(tt.dayOfWeek), got.Weekday())
		})
	}
}

func TestNextOccurrenceTimes(t *testing.T) {
	rec := &models.RecurringShift{
		DayOfWeek: int(time.Thursday),
		StartTime: "09:00",
		EndTime:   "12:30",
	}

	// Wednesday 2024-03-06 12:00 UTC
	now := time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC)
	start, end, err := nextOccurrenceTimes(rec, now)
	require.NoError(t, err)

	// Next Thursday at 09:00 Halifax time (UTC-4 in March) is 13:00 UTC
	assert.Equal(t, time.Date(2024, 3, 7, 13, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 3, 7, 16, 30, 0, 0, time.UTC), end)
	assert.Equal(t, time.UTC, start.Location())
}

func TestParseClock(t *testing.T) {
	h, m, err := parseClock("09:05")
	require.NoError(t, err)
	assert.Equal(t, 9, h)
	assert.Equal(t, 5, m)

	for _, bad := range []string{"9", "24:00", "12:60", "ab:cd", ""} {
		_, _, err := parseClock(bad)
		assert.Error(t, err, bad)
	}
}
