package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"foodbank-backend/internal/database/models"
	apperrors "foodbank-backend/internal/errors"
	"foodbank-backend/internal/reports"
	"foodbank-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecurringShiftService handles business logic for weekly shift templates,
// including materializing the next concrete occurrence.
type RecurringShiftService struct {
	repo         *repository.RecurringShiftRepository
	shiftRepo    *repository.ShiftRepository
	signupRepo   *repository.ShiftSignupRepository
	categoryRepo *repository.ShiftCategoryRepository
	orgRepo      *repository.OrganizationRepository
	db           *gorm.DB
	validator    *validator.Validate
}

// NewRecurringShiftService creates a new recurring shift service
func NewRecurringShiftService(
	repo *repository.RecurringShiftRepository,
	shiftRepo *repository.ShiftRepository,
	signupRepo *repository.ShiftSignupRepository,
	categoryRepo *repository.ShiftCategoryRepository,
	orgRepo *repository.OrganizationRepository,
	db *gorm.DB,
	validator *validator.Validate,
) *RecurringShiftService {
	return &RecurringShiftService{
		repo:         repo,
		shiftRepo:    shiftRepo,
		signupRepo:   signupRepo,
		categoryRepo: categoryRepo,
		orgRepo:      orgRepo,
		db:           db,
		validator:    validator,
	}
}

// CreateRecurringShiftRequest represents the request to create a recurring shift
type CreateRecurringShiftRequest struct {
	OrganizationID uuid.UUID `json:"organization_id" validate:"required"`
	CategoryID     uuid.UUID `json:"category_id" validate:"required"`
	Name           string    `json:"name" validate:"required,min=1,max=100"`
	DayOfWeek      int       `json:"day_of_week" validate:"min=0,max=6"`
	StartTime      string    `json:"start_time" validate:"required"`
	EndTime        string    `json:"end_time" validate:"required"`
	Location       string    `json:"location" validate:"max=200"`
	Slots          int       `json:"slots" validate:"min=1"`
}

// UpdateRecurringShiftRequest represents the request to update a recurring shift
type UpdateRecurringShiftRequest struct {
	CategoryID *uuid.UUID `json:"category_id,omitempty"`
	Name       *string    `json:"name,omitempty"`
	DayOfWeek  *int       `json:"day_of_week,omitempty"`
	StartTime  *string    `json:"start_time,omitempty"`
	EndTime    *string    `json:"end_time,omitempty"`
	Location   *string    `json:"location,omitempty"`
	Slots      *int       `json:"slots,omitempty"`
}

// RecurringShiftResponse represents the response for recurring shift operations
type RecurringShiftResponse struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	CategoryID     uuid.UUID `json:"category_id"`
	Name           string    `json:"name"`
	DayOfWeek      int       `json:"day_of_week"`
	StartTime      string    `json:"start_time"`
	EndTime        string    `json:"end_time"`
	Location       string    `json:"location"`
	Slots          int       `json:"slots"`
	CreatedAt      string    `json:"created_at"`
	UpdatedAt      string    `json:"updated_at"`
}

// RecurringShiftListResponse represents a paginated list of recurring shifts
type RecurringShiftListResponse struct {
	RecurringShifts []RecurringShiftResponse `json:"recurring_shifts"`
	Total           int64                    `json:"total"`
	Page            int                      `json:"page"`
	PageSize        int                      `json:"page_size"`
}

// MaterializeRequest enrolls the given users into the next occurrence
type MaterializeRequest struct {
	UserIDs []uuid.UUID `json:"user_ids"`
}

// MaterializeResponse reports the resolved shift and signup outcome counts
type MaterializeResponse struct {
	ShiftID   uuid.UUID `json:"shift_id"`
	ShiftDate string    `json:"shift_date"`
	Created   int       `json:"created"`
	Skipped   int       `json:"skipped"`
}

// Create creates a new recurring shift
func (s *RecurringShiftService) Create(req *CreateRecurringShiftRequest) (*RecurringShiftResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if _, _, err := parseClock(req.StartTime); err != nil {
		return nil, apperrors.NewValidationError("start_time", err.Error())
	}
	if _, _, err := parseClock(req.EndTime); err != nil {
		return nil, apperrors.NewValidationError("end_time", err.Error())
	}

	if _, err := s.orgRepo.GetByID(req.OrganizationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to verify organization: %w", err)
	}
	if _, err := s.categoryRepo.GetByID(req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftCategoryNotFound
		}
		return nil, fmt.Errorf("failed to verify category: %w", err)
	}

	shift := &models.RecurringShift{
		OrganizationID: req.OrganizationID,
		CategoryID:     req.CategoryID,
		Name:           req.Name,
		DayOfWeek:      req.DayOfWeek,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Location:       req.Location,
		Slots:          req.Slots,
	}

	if err := s.repo.Create(shift); err != nil {
		return nil, fmt.Errorf("failed to create recurring shift: %w", err)
	}

	return s.toResponse(shift), nil
}

// GetByID retrieves a recurring shift by ID
func (s *RecurringShiftService) GetByID(id uuid.UUID) (*RecurringShiftResponse, error) {
	shift, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecurringShiftNotFound
		}
		return nil, fmt.Errorf("failed to get recurring shift: %w", err)
	}
	return s.toResponse(shift), nil
}

// GetByOrganization retrieves recurring shifts for an organization
func (s *RecurringShiftService) GetByOrganization(organizationID uuid.UUID, page, pageSize int) (*RecurringShiftListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	shifts, total, err := s.repo.GetByOrganizationID(organizationID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get recurring shifts: %w", err)
	}

	responses := make([]RecurringShiftResponse, len(shifts))
	for i, shift := range shifts {
		responses[i] = *s.toResponse(&shift)
	}

	return &RecurringShiftListResponse{
		RecurringShifts: responses,
		Total:           total,
		Page:            page,
		PageSize:        pageSize,
	}, nil
}

// Update updates a recurring shift
func (s *RecurringShiftService) Update(id uuid.UUID, req *UpdateRecurringShiftRequest) (*RecurringShiftResponse, error) {
	shift, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecurringShiftNotFound
		}
		return nil, fmt.Errorf("failed to get recurring shift: %w", err)
	}

	if req.CategoryID != nil {
		shift.CategoryID = *req.CategoryID
	}
	if req.Name != nil {
		shift.Name = *req.Name
	}
	if req.DayOfWeek != nil {
		if *req.DayOfWeek < 0 || *req.DayOfWeek > 6 {
			return nil, apperrors.NewValidationError("day_of_week", "must be between 0 and 6")
		}
		shift.DayOfWeek = *req.DayOfWeek
	}
	if req.StartTime != nil {
		if _, _, err := parseClock(*req.StartTime); err != nil {
			return nil, apperrors.NewValidationError("start_time", err.Error())
		}
		shift.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		if _, _, err := parseClock(*req.EndTime); err != nil {
			return nil, apperrors.NewValidationError("end_time", err.Error())
		}
		shift.EndTime = *req.EndTime
	}
	if req.Location != nil {
		shift.Location = *req.Location
	}
	if req.Slots != nil {
		if *req.Slots < 1 {
			return nil, apperrors.NewValidationError("slots", "must be at least 1")
		}
		shift.Slots = *req.Slots
	}

	if err := s.repo.Update(shift); err != nil {
		return nil, fmt.Errorf("failed to update recurring shift: %w", err)
	}

	return s.toResponse(shift), nil
}

// Delete deletes a recurring shift
func (s *RecurringShiftService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRecurringShiftNotFound
		}
		return fmt.Errorf("failed to get recurring shift: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete recurring shift: %w", err)
	}

	return nil
}

// Materialize resolves the template's next concrete occurrence, creating the
// Shift if this week's occurrence does not exist yet, and enrolls the given
// users. Repeated calls within the same week reuse the existing shift and skip
// existing signups, so the operation is idempotent. The occurrence is always
// in the future: when today matches the template's weekday the shift lands a
// full week out, never today.
func (s *RecurringShiftService) Materialize(organizationID, recurringID uuid.UUID, req *MaterializeRequest) (*MaterializeResponse, error) {
	if req == nil || len(req.UserIDs) == 0 {
		return nil, apperrors.ErrNoUserIDs
	}

	rec, err := s.repo.GetByOrganizationAndID(organizationID, recurringID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecurringShiftNotFound
		}
		return nil, fmt.Errorf("failed to get recurring shift: %w", err)
	}

	start, end, err := nextOccurrenceTimes(rec, time.Now())
	if err != nil {
		return nil, err
	}

	resp := &MaterializeResponse{ShiftDate: start.In(reports.Location()).Format("2006-01-02")}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		shiftRepo := s.shiftRepo.WithTx(tx)
		signupRepo := s.signupRepo.WithTx(tx)

		shift, err := shiftRepo.FindOccurrence(rec.OrganizationID, rec.CategoryID, rec.Name, start, end, rec.Location)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to look up shift occurrence: %w", err)
			}
			shift = &models.Shift{
				OrganizationID: rec.OrganizationID,
				CategoryID:     rec.CategoryID,
				Name:           rec.Name,
				StartTime:      start,
				EndTime:        end,
				Location:       rec.Location,
				Slots:          rec.Slots,
			}
			if err := shiftRepo.Create(shift); err != nil {
				return fmt.Errorf("failed to create shift: %w", err)
			}
		}
		resp.ShiftID = shift.ID

		for _, userID := range req.UserIDs {
			_, err := signupRepo.GetByUserAndShift(userID, shift.ID)
			if err == nil {
				resp.Skipped++
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to look up signup: %w", err)
			}
			signup := &models.ShiftSignup{UserID: userID, ShiftID: shift.ID}
			if err := signupRepo.Create(signup); err != nil {
				return fmt.Errorf("failed to create signup: %w", err)
			}
			resp.Created++
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// nextOccurrence returns the next calendar date on the given weekday strictly
// after today: same-day recurrences advance a full week so materialization
// never re-triggers an occurrence that may already have concluded.
func nextOccurrence(today time.Time, dayOfWeek int) time.Time {
	dayDiff := (dayOfWeek - int(today.Weekday()) + 7) % 7
	if dayDiff == 0 {
		dayDiff = 7
	}
	return today.AddDate(0, 0, dayDiff)
}

// nextOccurrenceTimes combines the next occurrence date with the template's
// start and end times of day in the report timezone, seconds zeroed, and
// returns UTC timestamps.
func nextOccurrenceTimes(rec *models.RecurringShift, now time.Time) (start, end time.Time, err error) {
	loc := reports.Location()
	date := nextOccurrence(now.In(loc), rec.DayOfWeek)

	sh, sm, err := parseClock(rec.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewValidationError("start_time", err.Error())
	}
	eh, em, err := parseClock(rec.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewValidationError("end_time", err.Error())
	}

	start = time.Date(date.Year(), date.Month(), date.Day(), sh, sm, 0, 0, loc).UTC()
	end = time.Date(date.Year(), date.Month(), date.Day(), eh, em, 0, 0, loc).UTC()
	return start, end, nil
}

// parseClock parses an "HH:MM" 24-hour time of day
func parseClock(value string) (hour, minute int, err error) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time of day %q, expected HH:MM", value)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", value)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", value)
	}
	return hour, minute, nil
}

// toResponse converts a recurring shift model to response
func (s *RecurringShiftService) toResponse(shift *models.RecurringShift) *RecurringShiftResponse {
	return &RecurringShiftResponse{
		ID:             shift.ID,
		OrganizationID: shift.OrganizationID,
		CategoryID:     shift.CategoryID,
		Name:           shift.Name,
		DayOfWeek:      shift.DayOfWeek,
		StartTime:      shift.StartTime,
		EndTime:        shift.EndTime,
		Location:       shift.Location,
		Slots:          shift.Slots,
		CreatedAt:      shift.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      shift.UpdatedAt.Format(time.RFC3339),
	}
}
