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

// DonationCategoryService handles business logic for donation categories
type DonationCategoryService struct {
	repo      *repository.DonationCategoryRepository
	orgRepo   *repository.OrganizationRepository
	validator *validator.Validate
}

// NewDonationCategoryService creates a new donation category service
func NewDonationCategoryService(repo *repository.DonationCategoryRepository, orgRepo *repository.OrganizationRepository, validator *validator.Validate) *DonationCategoryService {
	return &DonationCategoryService{repo: repo, orgRepo: orgRepo, validator: validator}
}

// CreateDonationCategoryRequest represents the request to create a donation category
type CreateDonationCategoryRequest struct {
	OrganizationID uuid.UUID `json:"organization_id" validate:"required"`
	Name           string    `json:"name" validate:"required,min=1,max=100"`
}

// UpdateDonationCategoryRequest represents the request to update a donation category
type UpdateDonationCategoryRequest struct {
	Name *string `json:"name,omitempty"`
}

// DonationCategoryResponse represents the response for donation category operations
type DonationCategoryResponse struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	Name           string    `json:"name"`
	CreatedAt      string    `json:"created_at"`
	UpdatedAt      string    `json:"updated_at"`
}

// Create creates a new donation category
func (s *DonationCategoryService) Create(req *CreateDonationCategoryRequest) (*DonationCategoryResponse, error) {
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
		return nil, apperrors.ErrDonationCategoryExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check category name: %w", err)
	}

	category := &models.DonationCategory{
		OrganizationID: req.OrganizationID,
		Name:           req.Name,
	}

	if err := s.repo.Create(category); err != nil {
		return nil, fmt.Errorf("failed to create donation category: %w", err)
	}

	return s.toResponse(category), nil
}

// GetByID retrieves a donation category by ID
func (s *DonationCategoryService) GetByID(id uuid.UUID) (*DonationCategoryResponse, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDonationCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get donation category: %w", err)
	}
	return s.toResponse(category), nil
}

// GetByOrganization retrieves all donation categories for an organization
func (s *DonationCategoryService) GetByOrganization(organizationID uuid.UUID) ([]DonationCategoryResponse, error) {
	categories, err := s.repo.GetByOrganizationID(organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get donation categories: %w", err)
	}

	responses := make([]DonationCategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = *s.toResponse(&category)
	}
	return responses, nil
}

// Update updates a donation category
func (s *DonationCategoryService) Update(id uuid.UUID, req *UpdateDonationCategoryRequest) (*DonationCategoryResponse, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDonationCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get donation category: %w", err)
	}

	if req.Name != nil && *req.Name != category.Name {
		if _, err := s.repo.GetByOrganizationAndName(category.OrganizationID, *req.Name); err == nil {
			return nil, apperrors.ErrDonationCategoryExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check category name: %w", err)
		}
		category.Name = *req.Name
	}

	if err := s.repo.Update(category); err != nil {
		return nil, fmt.Errorf("failed to update donation category: %w", err)
	}

	return s.toResponse(category), nil
}

// Delete deletes a donation category
func (s *DonationCategoryService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDonationCategoryNotFound
		}
		return fmt.Errorf("failed to get donation category: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete donation category: %w", err)
	}

	return nil
}

// toResponse converts a donation category model to response
func (s *DonationCategoryService) toResponse(category *models.DonationCategory) *DonationCategoryResponse {
	return &DonationCategoryResponse{
		ID:             category.ID,
		OrganizationID: category.OrganizationID,
		Name:           category.Name,
		CreatedAt:      category.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      category.UpdatedAt.Format(time.RFC3339),
	}
}
