package service

import (
	"testing"
	"time"

	"foodbank-backend/internal/database/models"
	apperrors "foodbank-backend/internal/errors"
	"foodbank-backend/internal/reports"
	"foodbank-backend/internal/repository"
	"foodbank-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ReportServiceTestSuite defines the test suite for ReportService
type ReportServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *ReportService

	org *models.Organization
}

// SetupTest sets up the test suite
func (suite *ReportServiceTestSuite) SetupTest() {
	suite.db = testutils.SetupTestDB(suite.T())

	suite.service = NewReportService(
		repository.NewShiftSignupRepository(suite.db),
		repository.NewDonationRepository(suite.db),
		repository.NewShiftCategoryRepository(suite.db),
		repository.NewDonationCategoryRepository(suite.db),
		repository.NewDonorRepository(suite.db),
	)

	suite.org = testutils.CreateTestOrganization(suite.T(), suite.db)
}

// createDonation persists a donation with a fixed creation timestamp
func (suite *ReportServiceTestSuite) createDonation(donorID *uuid.UUID, categoryID uuid.UUID, weight float64, createdAt time.Time) *models.Donation {
	donation := &models.Donation{
		BaseModel:      models.BaseModel{CreatedAt: createdAt},
		OrganizationID: suite.org.ID,
		DonorID:        donorID,
		TotalWeight:    weight,
		Items: []models.DonationItem{
			{CategoryID: categoryID, Weight: weight},
		},
	}
	require.NoError(suite.T(), suite.db.Create(donation).Error)
	return donation
}

// TestOutgoingStats tests meals-served aggregation by day and category
func (suite *ReportServiceTestSuite) TestOutgoingStats() {
	sorting := testutils.CreateTestShiftCategory(suite.T(), suite.db, suite.org.ID, "Sorting")
	delivery := testutils.CreateTestShiftCategory(suite.T(), suite.db, suite.org.ID, "Delivery")

	user := testutils.CreateTestUser(suite.T(), suite.db, suite.org.ID)

	// 2024-03-04 15:00 UTC buckets to the 2024-03-05 business day
	start := time.Date(2024, 3, 4, 15, 0, 0, 0, time.UTC)
	shift := testutils.CreateTestShift(suite.T(), suite.db, suite.org.ID, sorting.ID, start, start.Add(3*time.Hour))

	signup := testutils.CreateTestSignup(suite.T(), suite.db, user.ID, shift.ID)
	signup.MealsServed = 40
	require.NoError(suite.T(), suite.db.Save(signup).Error)

	table, err := suite.service.OutgoingStats(suite.org.ID, Window{Month: 3, Year: 2024})
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), "Date", table.LabelColumn)
	assert.Contains(suite.T(), table.Columns, "Delivery") // seeded even without data
	require.Len(suite.T(), table.Rows, 1)
	assert.Equal(suite.T(), "2024-03-05", table.Rows[0].Label)
	assert.Equal(suite.T(), 40.0, table.Rows[0].Cells["Sorting"])
	assert.Equal(suite.T(), 0.0, table.Rows[0].Cells["Delivery"])
	assert.Equal(suite.T(), 40.0, table.Totals[reports.TotalColumn])

	// Delivery category participates in folding/columns only; out-of-window
	// shifts do not appear
	_ = delivery
}

// TestOutgoingStatsWindowExcludesOtherMonths tests the [from, to) bounds
func (suite *ReportServiceTestSuite) TestOutgoingStatsWindowExcludesOtherMonths() {
	sorting := testutils.CreateTestShiftCategory(suite.T(), suite.db, suite.org.ID, "Sorting")
	user := testutils.CreateTestUser(suite.T(), suite.db, suite.org.ID)

	start := time.Date(2024, 4, 10, 15, 0, 0, 0, time.UTC)
	shift := testutils.CreateTestShift(suite.T(), suite.db, suite.org.ID, sorting.ID, start, start.Add(2*time.Hour))
	testutils.CreateTestSignup(suite.T(), suite.db, user.ID, shift.ID)

	table, err := suite.service.OutgoingStats(suite.org.ID, Window{Month: 3, Year: 2024})
	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), table.Rows)

	// The full-year window picks it up
	table, err = suite.service.OutgoingStats(suite.org.ID, Window{Month: 0, Year: 2024})
	require.NoError(suite.T(), err)
	assert.Len(suite.T(), table.Rows, 1)
}

// TestOutgoingStatsSkipsDeletedShifts tests that signups whose shift has been
// soft-deleted no longer feed the aggregation
func (suite *ReportServiceTestSuite) TestOutgoingStatsSkipsDeletedShifts() {
	sorting := testutils.CreateTestShiftCategory(suite.T(), suite.db, suite.org.ID, "Sorting")
	user := testutils.CreateTestUser(suite.T(), suite.db, suite.org.ID)

	start := time.Date(2024, 3, 4, 15, 0, 0, 0, time.UTC)
	shift := testutils.CreateTestShift(suite.T(), suite.db, suite.org.ID, sorting.ID, start, start.Add(3*time.Hour))

	signup := testutils.CreateTestSignup(suite.T(), suite.db, user.ID, shift.ID)
	signup.MealsServed = 40
	require.NoError(suite.T(), suite.db.Save(signup).Error)

	shiftRepo := repository.NewShiftRepository(suite.db)
	require.NoError(suite.T(), shiftRepo.Delete(shift.ID))

	table, err := suite.service.OutgoingStats(suite.org.ID, Window{Month: 3, Year: 2024})
	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), table.Rows)
	assert.Equal(suite.T(), 0.0, table.Totals[reports.TotalColumn])
}

// TestVolunteerHours tests billed-hours aggregation with check-in overrides,
// collection folding and the longest-session rule
func (suite *ReportServiceTestSuite) TestVolunteerHours() {
	collection := testutils.CreateTestShiftCategory(suite.T(), suite.db, suite.org.ID, "Food Collection")
	user := testutils.CreateTestUser(suite.T(), suite.db, suite.org.ID)

	start := time.Date(2024, 3, 4, 13, 0, 0, 0, time.UTC)

	// Two same-day sessions for the same user and category: 2h scheduled and
	// a 4h session from attendance times. Only the 4h session counts.
	shortShift := testutils.CreateTestShift(suite.T(), suite.db, suite.org.ID, collection.ID, start, start.Add(2*time.Hour))
	testutils.CreateTestSignup(suite.T(), suite.db, user.ID, shortShift.ID)

	longShift := testutils.CreateTestShift(suite.T(), suite.db, suite.org.ID, collection.ID, start.Add(4*time.Hour), start.Add(5*time.Hour))
	signup := testutils.CreateTestSignup(suite.T(), suite.db, user.ID, longShift.ID)
	checkIn := start.Add(4 * time.Hour)
	checkOut := start.Add(8 * time.Hour)
	signup.CheckIn = &checkIn
	signup.CheckOut = &checkOut
	require.NoError(suite.T(), suite.db.Save(signup).Error)

	table, err := suite.service.VolunteerHours(suite.org.ID, Window{Month: 3, Year: 2024})
	require.NoError(suite.T(), err)

	// "Food Collection" folds into the synthetic Collection column
	assert.Contains(suite.T(), table.Columns, "Collection")
	assert.NotContains(suite.T(), table.Columns, "Food Collection")
	require.Len(suite.T(), table.Rows, 1)
	assert.Equal(suite.T(), 4.0, table.Rows[0].Cells["Collection"])
	assert.Equal(suite.T(), 4.0, table.Totals[reports.TotalColumn])
}

// TestVolunteerHoursMinimumBilling tests that short sessions bill one hour
func (suite *ReportServiceTestSuite) TestVolunteerHoursMinimumBilling() {
	sorting := testutils.CreateTestShiftCategory(suite.T(), suite.db, suite.org.ID, "Sorting")
	user := testutils.CreateTestUser(suite.T(), suite.db, suite.org.ID)

	start := time.Date(2024, 3, 4, 13, 0, 0, 0, time.UTC)
	shift := testutils.CreateTestShift(suite.T(), suite.db, suite.org.ID, sorting.ID, start, start.Add(30*time.Minute))
	testutils.CreateTestSignup(suite.T(), suite.db, user.ID, shift.ID)

	table, err := suite.service.VolunteerHours(suite.org.ID, Window{Month: 3, Year: 2024})
	require.NoError(suite.T(), err)
	require.Len(suite.T(), table.Rows, 1)
	assert.Equal(suite.T(), 1.0, table.Rows[0].Cells["Sorting"])
}

// TestIncomingDonations tests weight aggregation and unit conversion
func (suite *ReportServiceTestSuite) TestIncomingDonations() {
	produce := testutils.CreateTestDonationCategory(suite.T(), suite.db, suite.org.ID, "Produce")
	bakery := testutils.CreateTestDonationCategory(suite.T(), suite.db, suite.org.ID, "Bakery")

	created := time.Date(2024, 3, 4, 15, 0, 0, 0, time.UTC)
	suite.createDonation(nil, produce.ID, 10, created)
	suite.createDonation(nil, produce.ID, 5, created.Add(time.Hour))

	table, err := suite.service.IncomingDonations(suite.org.ID, Window{Month: 3, Year: 2024}, "")
	require.NoError(suite.T(), err)

	require.Len(suite.T(), table.Rows, 1)
	assert.Equal(suite.T(), "2024-03-05", table.Rows[0].Label)
	assert.Equal(suite.T(), 15.0, table.Rows[0].Cells["Produce"])
	assert.Equal(suite.T(), 0.0, table.Rows[0].Cells["Bakery"])

	// Pounds conversion happens at render time only
	table, err = suite.service.IncomingDonations(suite.org.ID, Window{Month: 3, Year: 2024}, reports.UnitPounds)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 33.07, table.Rows[0].Cells["Produce"])

	_ = bakery
}

// TestDonorSummary tests per-donor aggregation with the Unknown fallback
func (suite *ReportServiceTestSuite) TestDonorSummary() {
	produce := testutils.CreateTestDonationCategory(suite.T(), suite.db, suite.org.ID, "Produce")
	donor := testutils.CreateTestDonor(suite.T(), suite.db, suite.org.ID, "Acme Grocers")

	created := time.Date(2024, 3, 4, 15, 0, 0, 0, time.UTC)
	suite.createDonation(&donor.ID, produce.ID, 12, created)
	suite.createDonation(nil, produce.ID, 3, created)

	table, err := suite.service.DonorSummary(suite.org.ID, Window{Month: 3, Year: 2024}, "")
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), "Donor", table.LabelColumn)
	require.Len(suite.T(), table.Rows, 2)
	assert.Equal(suite.T(), "Acme Grocers", table.Rows[0].Label)
	assert.Equal(suite.T(), 12.0, table.Rows[0].Cells["Produce"])
	assert.Equal(suite.T(), "Unknown", table.Rows[1].Label)
	assert.Equal(suite.T(), 3.0, table.Rows[1].Cells["Produce"])
	assert.Equal(suite.T(), 15.0, table.Totals[reports.TotalColumn])
}

// TestReportServiceTestSuite runs the test suite
func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}

func TestParseWindow(t *testing.T) {
	w, err := ParseWindow("3", "2024")
	require.NoError(t, err)
	assert.Equal(t, Window{Month: 3, Year: 2024}, w)

	for _, monthStr := range []string{"", "all", "0", "ALL"} {
		w, err := ParseWindow(monthStr, "2024")
		require.NoError(t, err, monthStr)
		assert.Equal(t, Window{Month: 0, Year: 2024}, w)
	}

	_, err = ParseWindow("3", "")
	assert.ErrorIs(t, err, apperrors.ErrYearRequired)

	_, err = ParseWindow("13", "2024")
	assert.ErrorIs(t, err, apperrors.ErrInvalidMonth)

	_, err = ParseWindow("x", "2024")
	assert.ErrorIs(t, err, apperrors.ErrInvalidMonth)

	_, err = ParseWindow("3", "abc")
	assert.True(t, apperrors.IsValidation(err))
}

func TestWindowRange(t *testing.T) {
	// March in Halifax starts at UTC-4 local midnight
	from, to := Window{Month: 3, Year: 2024}.Range()
	assert.Equal(t, time.Date(2024, 3, 1, 4, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2024, 4, 1, 3, 0, 0, 0, time.UTC), to)

	// Full-year window spans local Jan 1 to Jan 1
	from, to = Window{Month: 0, Year: 2024}.Range()
	assert.Equal(t, time.Date(2024, 1, 1, 4, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, 1, 1, 4, 0, 0, 0, time.UTC), to)
}

func TestWindowMonthLabel(t *testing.T) {
	assert.Equal(t, "all", Window{Month: 0, Year: 2024}.MonthLabel())
	assert.Equal(t, "7", Window{Month: 7, Year: 2024}.MonthLabel())
}
