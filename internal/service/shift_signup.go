package service

import (
	"errors"
	"fmt"
	"time"

	"foodbank-backend/internal/database/models"
	apperrors "foodbank-backend/internal/errors"
	"foodbank-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftSignupService handles business logic for shift signups, including
// attendance tracking
type ShiftSignupService struct {
	repo      *repository.ShiftSignupRepository
	shiftRepo *repository.ShiftRepository
	userRepo  *repository.UserRepository
	validator *validator.Validate
}

// NewShiftSignupService creates a new shift signup service
func NewShiftSignupService(repo *repository.ShiftSignupRepository, shiftRepo *repository.ShiftRepository, userRepo *repository.UserRepository, validator *validator.Validate) *ShiftSignupService {
	return &ShiftSignupService{repo: repo, shiftRepo: shiftRepo, userRepo: userRepo, validator: validator}
}

// CreateShiftSignupRequest represents the request to sign a user up for a shift
type CreateShiftSignupRequest struct {
	UserID  uuid.UUID `json:"user_id" validate:"required"`
	ShiftID uuid.UUID `json:"shift_id" validate:"required"`
}

// UpdateShiftSignupRequest represents the request to update attendance details
type UpdateShiftSignupRequest struct {
	CheckIn     *time.Time `json:"check_in,omitempty"`
	CheckOut    *time.Time `json:"check_out,omitempty"`
	MealsServed *int       `json:"meals_served,omitempty"`
}

// ShiftSignupResponse represents the response for signup operations
type ShiftSignupResponse struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	ShiftID     uuid.UUID  `json:"shift_id"`
	CheckIn     *time.Time `json:"check_in,omitempty"`
	CheckOut    *time.Time `json:"check_out,omitempty"`
	MealsServed int        `json:"meals_served"`
	CreatedAt   string     `json:"created_at"`
	UpdatedAt   string     `json:"updated_at"`
}

// Create signs a user up for a shift, enforcing capacity and uniqueness
func (s *ShiftSignupService) Create(req *CreateShiftSignupRequest) (*ShiftSignupResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.userRepo.GetByID(req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to verify user: %w", err)
	}

	shift, err := s.shiftRepo.GetByID(req.ShiftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to verify shift: %w", err)
	}

	if _, err := s.repo.GetByUserAndShift(req.UserID, req.ShiftID); err == nil {
		return nil, apperrors.ErrShiftSignupExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check signup: %w", err)
	}

	count, err := s.repo.CountByShiftID(req.ShiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to count signups: %w", err)
	}
	if count >= int64(shift.Slots) {
		return nil, apperrors.ErrShiftFull
	}

	signup := &models.ShiftSignup{
		UserID:  req.UserID,
		ShiftID: req.ShiftID,
	}

	if err := s.repo.Create(signup); err != nil {
		return nil, fmt.Errorf("failed to create signup: %w", err)
	}

	return s.toResponse(signup), nil
}

// GetByID retrieves a signup by ID
func (s *ShiftSignupService) GetByID(id uuid.UUID) (*ShiftSignupResponse, error) {
	signup, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftSignupNotFound
		}
		return nil, fmt.Errorf("failed to get signup: %w", err)
	}
	return s.toResponse(signup), nil
}

// GetByShift retrieves all signups for a shift
func (s *ShiftSignupService) GetByShift(shiftID uuid.UUID) ([]ShiftSignupResponse, error) {
	signups, err := s.repo.GetByShiftID(shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to get signups: %w", err)
	}

	responses := make([]ShiftSignupResponse, len(signups))
	for i, signup := range signups {
		responses[i] = *s.toResponse(&signup)
	}
	return responses, nil
}

// GetByUser retrieves signups for a user with pagination
func (s *ShiftSignupService) GetByUser(userID uuid.UUID, page, pageSize int) ([]ShiftSignupResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	signups, total, err := s.repo.GetByUserID(userID, pageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get signups: %w", err)
	}

	responses := make([]ShiftSignupResponse, len(signups))
	for i, signup := range signups {
		responses[i] = *s.toResponse(&signup)
	}
	return responses, total, nil
}

// Update records attendance details on a signup. Check-out must not precede
// check-in.
func (s *ShiftSignupService) Update(id uuid.UUID, req *UpdateShiftSignupRequest) (*ShiftSignupResponse, error) {
	signup, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftSignupNotFound
		}
		return nil, fmt.Errorf("failed to get signup: %w", err)
	}

	if req.CheckIn != nil {
		t := req.CheckIn.UTC()
		signup.CheckIn = &t
	}
	if req.CheckOut != nil {
		t := req.CheckOut.UTC()
		signup.CheckOut = &t
	}
	if signup.CheckIn != nil && signup.CheckOut != nil && signup.CheckOut.Before(*signup.CheckIn) {
		return nil, apperrors.ErrCheckOutBeforeCheckIn
	}
	if req.MealsServed != nil {
		if *req.MealsServed < 0 {
			return nil, apperrors.NewValidationError("meals_served", "must not be negative")
		}
		signup.MealsServed = *req.MealsServed
	}

	if err := s.repo.Update(signup); err != nil {
		return nil, fmt.Errorf("failed to update signup: %w", err)
	}

	return s.toResponse(signup), nil
}

// Delete removes a signup
func (s *ShiftSignupService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrShiftSignupNotFound
		}
		return fmt.Errorf("failed to get signup: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete signup: %w", err)
	}

	return nil
}

// toResponse converts a signup model to response
func (s *ShiftSignupService) toResponse(signup *models.ShiftSignup) *ShiftSignupResponse {
	return &ShiftSignupResponse{
		ID:          signup.ID,
		UserID:      signup.UserID,
		ShiftID:     signup.ShiftID,
		CheckIn:     signup.CheckIn,
		CheckOut:    signup.CheckOut,
		MealsServed: signup.MealsServed,
		CreatedAt:   signup.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   signup.UpdatedAt.Format(time.RFC3339),
	}
}
