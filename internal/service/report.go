package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	apperrors "foodbank-backend/internal/errors"
	"foodbank-backend/internal/reports"
	"foodbank-backend/internal/repository"

	"github.com/google/uuid"
)

// ReportService builds aggregation tables for the reporting endpoints. All
// bucketing runs in the fixed report timezone; weight aggregation always runs
// in kilograms and converts to pounds only at render time.
type ReportService struct {
	signupRepo           *repository.ShiftSignupRepository
	donationRepo         *repository.DonationRepository
	shiftCategoryRepo    *repository.ShiftCategoryRepository
	donationCategoryRepo *repository.DonationCategoryRepository
	donorRepo            *repository.DonorRepository
}

// NewReportService creates a new report service
func NewReportService(
	signupRepo *repository.ShiftSignupRepository,
	donationRepo *repository.DonationRepository,
	shiftCategoryRepo *repository.ShiftCategoryRepository,
	donationCategoryRepo *repository.DonationCategoryRepository,
	donorRepo *repository.DonorRepository,
) *ReportService {
	return &ReportService{
		signupRepo:           signupRepo,
		donationRepo:         donationRepo,
		shiftCategoryRepo:    shiftCategoryRepo,
		donationCategoryRepo: donationCategoryRepo,
		donorRepo:            donorRepo,
	}
}

// Window is a reporting period. Month 0 means the whole year.
type Window struct {
	Month int
	Year  int
}

// ParseWindow parses the month/year query parameters. Year is mandatory;
// month accepts 1-12, or "all"/"0"/empty for a full-year window.
func ParseWindow(monthStr, yearStr string) (Window, error) {
	if strings.TrimSpace(yearStr) == "" {
		return Window{}, apperrors.ErrYearRequired
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 1 {
		return Window{}, apperrors.NewValidationError("year", "must be a positive integer")
	}

	monthStr = strings.TrimSpace(strings.ToLower(monthStr))
	if monthStr == "" || monthStr == "all" || monthStr == "0" {
		return Window{Month: 0, Year: year}, nil
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		return Window{}, apperrors.ErrInvalidMonth
	}
	return Window{Month: month, Year: year}, nil
}

// Range returns the [from, to) UTC bounds of the window, computed from local
// midnights in the report timezone.
func (w Window) Range() (from, to time.Time) {
	loc := reports.Location()
	if w.Month == 0 {
		from = time.Date(w.Year, time.January, 1, 0, 0, 0, 0, loc)
		to = from.AddDate(1, 0, 0)
	} else {
		from = time.Date(w.Year, time.Month(w.Month), 1, 0, 0, 0, 0, loc)
		to = from.AddDate(0, 1, 0)
	}
	return from.UTC(), to.UTC()
}

// MonthLabel returns the month segment used in export filenames
func (w Window) MonthLabel() string {
	if w.Month == 0 {
		return "all"
	}
	return strconv.Itoa(w.Month)
}

// OutgoingStats aggregates meals served by business day and shift category
func (s *ReportService) OutgoingStats(organizationID uuid.UUID, w Window) (*reports.Table, error) {
	categoryNames, err := s.shiftCategoryNames(organizationID)
	if err != nil {
		return nil, err
	}

	from, to := w.Range()
	signups, err := s.signupRepo.GetByOrganizationAndWindow(organizationID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load signups: %w", err)
	}

	b := reports.NewBuilder("Date", categoryColumns(categoryNames)...)
	for _, signup := range signups {
		date := reports.DayKey(signup.Shift.StartTime)
		category := categoryNames[signup.Shift.CategoryID]
		b.Add(date, category, float64(signup.MealsServed))
	}

	return b.Build(), nil
}

// VolunteerHours aggregates billed volunteer hours by business day and folded
// shift category. Per (day, category, user) only the longest session counts.
func (s *ReportService) VolunteerHours(organizationID uuid.UUID, w Window) (*reports.Table, error) {
	categoryNames, err := s.shiftCategoryNames(organizationID)
	if err != nil {
		return nil, err
	}

	folded := make(map[string]bool)
	for _, name := range categoryNames {
		folded[reports.FoldCategoryName(name)] = true
	}
	columns := make([]string, 0, len(folded))
	for name := range folded {
		columns = append(columns, name)
	}

	from, to := w.Range()
	signups, err := s.signupRepo.GetByOrganizationAndWindow(organizationID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load signups: %w", err)
	}

	tracker := reports.NewHoursTracker()
	for _, signup := range signups {
		start := signup.Shift.StartTime
		end := signup.Shift.EndTime
		if signup.CheckIn != nil {
			start = *signup.CheckIn
		}
		if signup.CheckOut != nil {
			end = *signup.CheckOut
		}

		date := reports.DayKey(signup.Shift.StartTime)
		category := reports.FoldCategoryName(categoryNames[signup.Shift.CategoryID])
		tracker.Record(date, category, signup.UserID.String(), reports.BillableHours(start, end))
	}

	b := reports.NewBuilder("Date", columns...)
	tracker.Fill(b)
	return b.Build(), nil
}

// IncomingDonations aggregates donated weight by business day and donation
// category, converted to the requested unit at render time
func (s *ReportService) IncomingDonations(organizationID uuid.UUID, w Window, unit string) (*reports.Table, error) {
	categoryNames, columns, err := s.donationCategoryNames(organizationID)
	if err != nil {
		return nil, err
	}

	from, to := w.Range()
	donations, err := s.donationRepo.GetByOrganizationAndWindow(organizationID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load donations: %w", err)
	}

	b := reports.NewBuilder("Date", columns...)
	for _, donation := range donations {
		date := reports.DayKey(donation.CreatedAt)
		for _, item := range donation.Items {
			b.Add(date, categoryNames[item.CategoryID], item.Weight)
		}
	}

	return b.Build().ConvertUnits(unit), nil
}

// DonorSummary aggregates donated weight by donor and donation category,
// converted to the requested unit at render time
func (s *ReportService) DonorSummary(organizationID uuid.UUID, w Window, unit string) (*reports.Table, error) {
	categoryNames, columns, err := s.donationCategoryNames(organizationID)
	if err != nil {
		return nil, err
	}

	donorNames, err := s.donorNames(organizationID)
	if err != nil {
		return nil, err
	}

	from, to := w.Range()
	donations, err := s.donationRepo.GetByOrganizationAndWindow(organizationID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load donations: %w", err)
	}

	b := reports.NewBuilder("Donor", columns...)
	for _, donation := range donations {
		label := "Unknown"
		if donation.DonorID != nil {
			if name, ok := donorNames[*donation.DonorID]; ok {
				label = name
			}
		}
		for _, item := range donation.Items {
			b.Add(label, categoryNames[item.CategoryID], item.Weight)
		}
	}

	return b.Build().ConvertUnits(unit), nil
}

// shiftCategoryNames loads the organization's shift categories once per
// request as an id -> name map
func (s *ReportService) shiftCategoryNames(organizationID uuid.UUID) (map[uuid.UUID]string, error) {
	categories, err := s.shiftCategoryRepo.GetByOrganizationID(organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shift categories: %w", err)
	}
	names := make(map[uuid.UUID]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	return names, nil
}

// donationCategoryNames loads the organization's donation categories once per
// request, returning the id -> name map and the seed column set
func (s *ReportService) donationCategoryNames(organizationID uuid.UUID) (map[uuid.UUID]string, []string, error) {
	categories, err := s.donationCategoryRepo.GetByOrganizationID(organizationID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load donation categories: %w", err)
	}
	names := make(map[uuid.UUID]string, len(categories))
	columns := make([]string, 0, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
		columns = append(columns, c.Name)
	}
	return names, columns, nil
}

func (s *ReportService) donorNames(organizationID uuid.UUID) (map[uuid.UUID]string, error) {
	donors, _, err := s.donorRepo.GetByOrganizationID(organizationID, 10000, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load donors: %w", err)
	}
	names := make(map[uuid.UUID]string, len(donors))
	for _, d := range donors {
		names[d.ID] = d.Name
	}
	return names, nil
}

func categoryColumns(names map[uuid.UUID]string) []string {
	columns := make([]string, 0, len(names))
	for _, name := range names {
		columns = append(columns, name)
	}
	return columns
}
