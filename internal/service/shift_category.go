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

// ShiftCategoryService handles business logic for shift categories
type ShiftCategoryService struct {
	repo      *repository.ShiftCategoryRepository
	orgRepo   *repository.OrganizationRepository
	validator *validator.Validate
}

// NewShiftCategoryService creates a new shift category service
func NewShiftCategoryService(repo *repository.ShiftCategoryRepository, orgRepo *repository.OrganizationRepository, validator *validator.Validate) *ShiftCategoryService {
	return &ShiftCategoryService{repo: repo, orgRepo: orgRepo, validator: validator}
}

// CreateShiftCategoryRequest represents the request to create a shift category
type CreateShiftCategoryRequest struct {
	OrganizationID uuid.UUID `json:"organization_id" validate:"required"`
	Name           string    `json:"name" validate:"required,min=1,max=100"`
	Description    string    `json:"description"`
}

// UpdateShiftCategoryRequest represents the request to update a shift category
type UpdateShiftCategoryRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ShiftCategoryResponse represents the response for shift category operations
type ShiftCategoryResponse struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	CreatedAt      string    `json:"created_at"`
	UpdatedAt      string    `json:"updated_at"`
}

// Create creates a new shift category
func (s *ShiftCategoryService) Create(req *CreateShiftCategoryRequest) (*ShiftCategoryResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.orgRepo.GetByID(req.OrganizationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to verify organization: %w", err)
	}

	if _, err := s.repo.GetByOrganizationAndName(req.OrganizationID, req.Name); err == nil {
		return nil, apperrors.ErrShiftCategoryExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check category name: %w", err)
	}

	category := &models.ShiftCategory{
		OrganizationID: req.OrganizationID,
		Name:           req.Name,
		Description:    req.Description,
	}

	if err := s.repo.Create(category); err != nil {
		return nil, fmt.Errorf("failed to create shift category: %w", err)
	}

	return s.toResponse(category), nil
}

// GetByID retrieves a shift category by ID
func (s *ShiftCategoryService) GetByID(id uuid.UUID) (*ShiftCategoryResponse, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get shift category: %w", err)
	}
	return s.toResponse(category), nil
}

// GetByOrganization retrieves all shift categories for an organization
func (s *ShiftCategoryService) GetByOrganization(organizationID uuid.UUID) ([]ShiftCategoryResponse, error) {
	categories, err := s.repo.GetByOrganizationID(organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get shift categories: %w", err)
	}

	responses := make([]ShiftCategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = *s.toResponse(&category)
	}
	return responses, nil
}

// Update updates a shift category
func (s *ShiftCategoryService) Update(id uuid.UUID, req *UpdateShiftCategoryRequest) (*ShiftCategoryResponse, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get shift category: %w", err)
	}

	if req.Name != nil && *req.Name != category.Name {
		if _, err := s.repo.GetByOrganizationAndName(category.OrganizationID, *req.Name); err == nil {
			return nil, apperrors.ErrShiftCategoryExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check category name: %w", err)
		}
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}

	if err := s.repo.Update(category); err != nil {
		return nil, fmt.Errorf("failed to update shift category: %w", err)
	}

	return s.toResponse(category), nil
}

// Delete deletes a shift category
func (s *ShiftCategoryService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrShiftCategoryNotFound
		}
		return fmt.Errorf("failed to get shift category: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete shift category: %w", err)
	}

	return nil
}

// toResponse converts a shift category model to response
func (s *ShiftCategoryService) toResponse(category *models.ShiftCategory) *ShiftCategoryResponse {
	return &ShiftCategoryResponse{
		ID:             category.ID,
		OrganizationID: category.OrganizationID,
		Name:           category.Name,
		Description:    category.Description,
		CreatedAt:      category.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      category.UpdatedAt.Format(time.RFC3339),
	}
}
