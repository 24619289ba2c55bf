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

// ShiftService handles business logic for concrete shifts
type ShiftService struct {
	repo         *repository.ShiftRepository
	categoryRepo *repository.ShiftCategoryRepository
	orgRepo      *repository.OrganizationRepository
	signupRepo   *repository.ShiftSignupRepository
	validator    *validator.Validate
}

// NewShiftService creates a new shift service
func NewShiftService(repo *repository.ShiftRepository, categoryRepo *repository.ShiftCategoryRepository, orgRepo *repository.OrganizationRepository, signupRepo *repository.ShiftSignupRepository, validator *validator.Validate) *ShiftService {
	return &ShiftService{repo: repo, categoryRepo: categoryRepo, orgRepo: orgRepo, signupRepo: signupRepo, validator: validator}
}

// CreateShiftRequest represents the request to create a shift
type CreateShiftRequest struct {
	OrganizationID uuid.UUID `json:"organization_id" validate:"required"`
	CategoryID     uuid.UUID `json:"category_id" validate:"required"`
	Name           string    `json:"name" validate:"required,min=1,max=100"`
	StartTime      time.Time `json:"start_time" validate:"required"`
	EndTime        time.Time `json:"end_time" validate:"required"`
	Location       string    `json:"location" validate:"max=200"`
	Slots          int       `json:"slots" validate:"min=1"`
}

// UpdateShiftRequest represents the request to update a shift
type UpdateShiftRequest struct {
	CategoryID *uuid.UUID `json:"category_id,omitempty"`
	Name       *string    `json:"name,omitempty"`
	StartTime  *time.Time `json:"start_time,omitempty"`
	EndTime    *time.Time `json:"end_time,omitempty"`
	Location   *string    `json:"location,omitempty"`
	Slots      *int       `json:"slots,omitempty"`
}

// ShiftResponse represents the response for shift operations
type ShiftResponse struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	CategoryID     uuid.UUID `json:"category_id"`
	Name           string    `json:"name"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	Location       string    `json:"location"`
	Slots          int       `json:"slots"`
	CreatedAt      string    `json:"created_at"`
	UpdatedAt      string    `json:"updated_at"`
}

// ShiftListResponse represents a paginated list of shifts
type ShiftListResponse struct {
	Shifts   []ShiftResponse `json:"shifts"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// Create creates a new shift
func (s *ShiftService) Create(req *CreateShiftRequest) (*ShiftResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.EndTime.After(req.StartTime) {
		return nil, apperrors.ErrInvalidTimeRange
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

	shift := &models.Shift{
		OrganizationID: req.OrganizationID,
		CategoryID:     req.CategoryID,
		Name:           req.Name,
		StartTime:      req.StartTime.UTC(),
		EndTime:        req.EndTime.UTC(),
		Location:       req.Location,
		Slots:          req.Slots,
	}

	if err := s.repo.Create(shift); err != nil {
		return nil, fmt.Errorf("failed to create shift: %w", err)
	}

	return s.toResponse(shift), nil
}

// GetByID retrieves a shift by ID
func (s *ShiftService) GetByID(id uuid.UUID) (*ShiftResponse, error) {
	shift, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}
	return s.toResponse(shift), nil
}

// GetByOrganization retrieves shifts for an organization with pagination
func (s *ShiftService) GetByOrganization(organizationID uuid.UUID, page, pageSize int) (*ShiftListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	shifts, total, err := s.repo.GetByOrganizationID(organizationID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get shifts: %w", err)
	}

	responses := make([]ShiftResponse, len(shifts))
	for i, shift := range shifts {
		responses[i] = *s.toResponse(&shift)
	}

	return &ShiftListResponse{
		Shifts:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a shift
func (s *ShiftService) Update(id uuid.UUID, req *UpdateShiftRequest) (*ShiftResponse, error) {
	shift, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(*req.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrShiftCategoryNotFound
			}
			return nil, fmt.Errorf("failed to verify category: %w", err)
		}
		shift.CategoryID = *req.CategoryID
	}
	if req.Name != nil {
		shift.Name = *req.Name
	}
	if req.StartTime != nil {
		shift.StartTime = req.StartTime.UTC()
	}
	if req.EndTime != nil {
		shift.EndTime = req.EndTime.UTC()
	}
	if !shift.EndTime.After(shift.StartTime) {
		return nil, apperrors.ErrInvalidTimeRange
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
		return nil, fmt.Errorf("failed to update shift: %w", err)
	}

	return s.toResponse(shift), nil
}

// Delete deletes a shift along with its signups
func (s *ShiftService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrShiftNotFound
		}
		return fmt.Errorf("failed to get shift: %w", err)
	}

	if err := s.signupRepo.DeleteByShiftID(id); err != nil {
		return fmt.Errorf("failed to delete shift signups: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}

	return nil
}

// toResponse converts a shift model to response
func (s *ShiftService) toResponse(shift *models.Shift) *ShiftResponse {
	return &ShiftResponse{
		ID:             shift.ID,
		OrganizationID: shift.OrganizationID,
		CategoryID:     shift.CategoryID,
		Name:           shift.Name,
		StartTime:      shift.StartTime,
		EndTime:        shift.EndTime,
		Location:       shift.Location,
		Slots:          shift.Slots,
		CreatedAt:      shift.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      shift.UpdatedAt.Format(time.RFC3339),
	}
}
