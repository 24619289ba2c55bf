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

// DonationService handles business logic for donations and their items
type DonationService struct {
	repo         *repository.DonationRepository
	donorRepo    *repository.DonorRepository
	categoryRepo *repository.DonationCategoryRepository
	orgRepo      *repository.OrganizationRepository
	validator    *validator.Validate
}

// NewDonationService creates a new donation service
func NewDonationService(
	repo *repository.DonationRepository,
	donorRepo *repository.DonorRepository,
	categoryRepo *repository.DonationCategoryRepository,
	orgRepo *repository.OrganizationRepository,
	validator *validator.Validate,
) *DonationService {
	return &DonationService{
		repo:         repo,
		donorRepo:    donorRepo,
		categoryRepo: categoryRepo,
		orgRepo:      orgRepo,
		validator:    validator,
	}
}

// DonationItemRequest represents one category-tagged weight in a donation
type DonationItemRequest struct {
	CategoryID uuid.UUID `json:"category_id" validate:"required"`
	Weight     float64   `json:"weight" validate:"min=0"`
}

// CreateDonationRequest represents the request to record a donation
type CreateDonationRequest struct {
	OrganizationID uuid.UUID             `json:"organization_id" validate:"required"`
	DonorID        *uuid.UUID            `json:"donor_id,omitempty"`
	ShiftID        *uuid.UUID            `json:"shift_id,omitempty"`
	TotalValue     float64               `json:"total_value" validate:"min=0"`
	Notes          string                `json:"notes"`
	PhotoURL       string                `json:"photo_url" validate:"max=500"`
	Items          []DonationItemRequest `json:"items" validate:"dive"`
}

// UpdateDonationRequest represents the request to update a donation
type UpdateDonationRequest struct {
	DonorID    *uuid.UUID             `json:"donor_id,omitempty"`
	ShiftID    *uuid.UUID             `json:"shift_id,omitempty"`
	TotalValue *float64               `json:"total_value,omitempty"`
	Notes      *string                `json:"notes,omitempty"`
	PhotoURL   *string                `json:"photo_url,omitempty"`
	Items      *[]DonationItemRequest `json:"items,omitempty"`
}

// DonationItemResponse represents one item of a donation
type DonationItemResponse struct {
	ID         uuid.UUID `json:"id"`
	CategoryID uuid.UUID `json:"category_id"`
	Weight     float64   `json:"weight"`
}

// DonationResponse represents the response for donation operations
type DonationResponse struct {
	ID             uuid.UUID              `json:"id"`
	OrganizationID uuid.UUID              `json:"organization_id"`
	DonorID        *uuid.UUID             `json:"donor_id,omitempty"`
	ShiftID        *uuid.UUID             `json:"shift_id,omitempty"`
	TotalWeight    float64                `json:"total_weight"`
	TotalValue     float64                `json:"total_value"`
	Notes          string                 `json:"notes"`
	PhotoURL       string                 `json:"photo_url"`
	Items          []DonationItemResponse `json:"items"`
	CreatedAt      string                 `json:"created_at"`
	UpdatedAt      string                 `json:"updated_at"`
}

// DonationListResponse represents a paginated list of donations
type DonationListResponse struct {
	Donations []DonationResponse `json:"donations"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// Create records a new donation. TotalWeight is derived from the item weights.
func (s *DonationService) Create(req *CreateDonationRequest) (*DonationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.orgRepo.GetByID(req.OrganizationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to verify organization: %w", err)
	}
	if req.DonorID != nil {
		if _, err := s.donorRepo.GetByID(*req.DonorID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrDonorNotFound
			}
			return nil, fmt.Errorf("failed to verify donor: %w", err)
		}
	}
	if err := s.verifyItemCategories(req.Items); err != nil {
		return nil, err
	}

	items := make([]models.DonationItem, len(req.Items))
	totalWeight := 0.0
	for i, item := range req.Items {
		items[i] = models.DonationItem{CategoryID: item.CategoryID, Weight: item.Weight}
		totalWeight += item.Weight
	}

	donation := &models.Donation{
		OrganizationID: req.OrganizationID,
		DonorID:        req.DonorID,
		ShiftID:        req.ShiftID,
		TotalWeight:    totalWeight,
		TotalValue:     req.TotalValue,
		Notes:          req.Notes,
		PhotoURL:       req.PhotoURL,
		Items:          items,
	}

	if err := s.repo.Create(donation); err != nil {
		return nil, fmt.Errorf("failed to create donation: %w", err)
	}

	return s.toResponse(donation), nil
}

// GetByID retrieves a donation by ID
func (s *DonationService) GetByID(id uuid.UUID) (*DonationResponse, error) {
	donation, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDonationNotFound
		}
		return nil, fmt.Errorf("failed to get donation: %w", err)
	}
	return s.toResponse(donation), nil
}

// GetByOrganization retrieves donations for an organization with pagination
func (s *DonationService) GetByOrganization(organizationID uuid.UUID, page, pageSize int) (*DonationListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	donations, total, err := s.repo.GetByOrganizationID(organizationID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get donations: %w", err)
	}

	responses := make([]DonationResponse, len(donations))
	for i, donation := range donations {
		responses[i] = *s.toResponse(&donation)
	}

	return &DonationListResponse{
		Donations: responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// Update updates a donation. When items are supplied the existing set is
// replaced and TotalWeight is re-derived.
func (s *DonationService) Update(id uuid.UUID, req *UpdateDonationRequest) (*DonationResponse, error) {
	donation, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDonationNotFound
		}
		return nil, fmt.Errorf("failed to get donation: %w", err)
	}

	if req.DonorID != nil {
		if _, err := s.donorRepo.GetByID(*req.DonorID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrDonorNotFound
			}
			return nil, fmt.Errorf("failed to verify donor: %w", err)
		}
		donation.DonorID = req.DonorID
	}
	if req.ShiftID != nil {
		donation.ShiftID = req.ShiftID
	}
	if req.TotalValue != nil {
		donation.TotalValue = *req.TotalValue
	}
	if req.Notes != nil {
		donation.Notes = *req.Notes
	}
	if req.PhotoURL != nil {
		donation.PhotoURL = *req.PhotoURL
	}

	if req.Items != nil {
		if err := s.verifyItemCategories(*req.Items); err != nil {
			return nil, err
		}
		items := make([]models.DonationItem, len(*req.Items))
		totalWeight := 0.0
		for i, item := range *req.Items {
			items[i] = models.DonationItem{CategoryID: item.CategoryID, Weight: item.Weight}
			totalWeight += item.Weight
		}
		if err := s.repo.ReplaceItems(donation.ID, items); err != nil {
			return nil, fmt.Errorf("failed to replace donation items: %w", err)
		}
		donation.TotalWeight = totalWeight
		donation.Items = items
	}

	if err := s.repo.Update(donation); err != nil {
		return nil, fmt.Errorf("failed to update donation: %w", err)
	}

	return s.toResponse(donation), nil
}

// Delete deletes a donation and its items
func (s *DonationService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDonationNotFound
		}
		return fmt.Errorf("failed to get donation: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete donation: %w", err)
	}

	return nil
}

func (s *DonationService) verifyItemCategories(items []DonationItemRequest) error {
	for _, item := range items {
		if _, err := s.categoryRepo.GetByID(item.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrDonationCategoryNotFound
			}
			return fmt.Errorf("failed to verify donation category: %w", err)
		}
	}
	return nil
}

// toResponse converts a donation model to response
func (s *DonationService) toResponse(donation *models.Donation) *DonationResponse {
	items := make([]DonationItemResponse, len(donation.Items))
	for i, item := range donation.Items {
		items[i] = DonationItemResponse{ID: item.ID, CategoryID: item.CategoryID, Weight: item.Weight}
	}
	return &DonationResponse{
		ID:             donation.ID,
		OrganizationID: donation.OrganizationID,
		DonorID:        donation.DonorID,
		ShiftID:        donation.ShiftID,
		TotalWeight:    donation.TotalWeight,
		TotalValue:     donation.TotalValue,
		Notes:          donation.Notes,
		PhotoURL:       donation.PhotoURL,
		Items:          items,
		CreatedAt:      donation.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      donation.UpdatedAt.Format(time.RFC3339),
	}
}
