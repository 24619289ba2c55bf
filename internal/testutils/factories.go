package testutils

import (
	"fmt"
	"testing"
	"time"

	"foodbank-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// CreateTestOrganization persists an organization with a unique name
func CreateTestOrganization(t *testing.T, db *gorm.DB) *models.Organization {
	t.Helper()
	org := &models.Organization{
		Name:    fmt.Sprintf("org-%s", uuid.NewString()[:8]),
		Address: "12 Main St",
	}
	require.NoError(t, db.Create(org).Error)
	return org
}

// CreateTestUser persists a volunteer belonging to org
func CreateTestUser(t *testing.T, db *gorm.DB, orgID uuid.UUID) *models.User {
	t.Helper()
	user := &models.User{
		OrganizationID: orgID,
		FirstName:      "Test",
		LastName:       "Volunteer",
		Email:          fmt.Sprintf("user-%s@example.com", uuid.NewString()[:8]),
		PasswordHash:   "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		Role:           models.UserRoleVolunteer,
		IsActive:       true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateTestShiftCategory persists a shift category for org
func CreateTestShiftCategory(t *testing.T, db *gorm.DB, orgID uuid.UUID, name string) *models.ShiftCategory {
	t.Helper()
	category := &models.ShiftCategory{
		OrganizationID: orgID,
		Name:           name,
	}
	require.NoError(t, db.Create(category).Error)
	return category
}

// CreateTestRecurringShift persists a weekly template for org
func CreateTestRecurringShift(t *testing.T, db *gorm.DB, orgID, categoryID uuid.UUID, dayOfWeek int) *models.RecurringShift {
	t.Helper()
	rec := &models.RecurringShift{
		OrganizationID: orgID,
		CategoryID:     categoryID,
		Name:           "Morning Sort",
		DayOfWeek:      dayOfWeek,
		StartTime:      "09:00",
		EndTime:        "12:00",
		Location:       "Warehouse",
		Slots:          5,
	}
	require.NoError(t, db.Create(rec).Error)
	return rec
}

// CreateTestShift persists a concrete shift occurrence
func CreateTestShift(t *testing.T, db *gorm.DB, orgID, categoryID uuid.UUID, start, end time.Time) *models.Shift {
	t.Helper()
	shift := &models.Shift{
		OrganizationID: orgID,
		CategoryID:     categoryID,
		Name:           "Morning Sort",
		StartTime:      start.UTC(),
		EndTime:        end.UTC(),
		Location:       "Warehouse",
		Slots:          5,
	}
	require.NoError(t, db.Create(shift).Error)
	return shift
}

// CreateTestSignup persists a signup linking user and shift
func CreateTestSignup(t *testing.T, db *gorm.DB, userID, shiftID uuid.UUID) *models.ShiftSignup {
	t.Helper()
	signup := &models.ShiftSignup{
		UserID:  userID,
		ShiftID: shiftID,
	}
	require.NoError(t, db.Create(signup).Error)
	return signup
}

// CreateTestDonor persists a donor for org
func CreateTestDonor(t *testing.T, db *gorm.DB, orgID uuid.UUID, name string) *models.Donor {
	t.Helper()
	donor := &models.Donor{
		OrganizationID: orgID,
		Name:           name,
	}
	require.NoError(t, db.Create(donor).Error)
	return donor
}

// CreateTestDonationCategory persists a donation category for org
func CreateTestDonationCategory(t *testing.T, db *gorm.DB, orgID uuid.UUID, name string) *models.DonationCategory {
	t.Helper()
	category := &models.DonationCategory{
		OrganizationID: orgID,
		Name:           name,
	}
	require.NoError(t, db.Create(category).Error)
	return category
}

// CreateTestDonation persists a donation with a single item of the given weight
func CreateTestDonation(t *testing.T, db *gorm.DB, orgID uuid.UUID, donorID *uuid.UUID, categoryID uuid.UUID, weight float64) *models.Donation {
	t.Helper()
	donation := &models.Donation{
		OrganizationID: orgID,
		DonorID:        donorID,
		TotalWeight:    weight,
		Items: []models.DonationItem{
			{CategoryID: categoryID, Weight: weight},
		},
	}
	require.NoError(t, db.Create(donation).Error)
	return donation
}
