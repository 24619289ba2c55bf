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

// DonorService handles business logic for donors
type DonorService struct {
	repo      *repository.DonorRepository
	orgRepo   *repository.OrganizationRepository
	validator *validator.Validate
}

// NewDonorService creates a new donor service
func NewDonorService(repo *repository.DonorRepository, orgRepo *repository.OrganizationRepository, validator *validator.Validate) *DonorService {
	return &DonorService{repo: repo, orgRepo: orgRepo, validator: validator}
}

// CreateDonorRequest represents the request to create a donor
type CreateDonorRequest struct {
	OrganizationID uuid.UUID `json:"organization_id" validate:"required"`
	Name           string    `json:"name" validate:"required,min=1,max=150"`
	Email          string    `json:"email" validate:"omitempty,email,max=200"`
	Phone          string    `json:"phone" validate:"max=40"`
}

// UpdateDonorRequest represents the request to update a donor
type UpdateDonorRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// DonorResponse represents the response for donor operations
type DonorResponse struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	CreatedAt      string    `json:"created_at"`
	UpdatedAt      string    `json:"updated_at"`
}

// DonorListResponse represents a paginated list of donors
type DonorListResponse struct {
	Donors   []DonorResponse `json:"donors"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// Create creates a new donor
func (s *DonorService) Create(req *CreateDonorRequest) (*DonorResponse, error) {
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
		return nil, apperrors.ErrDonorExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check donor name: %w", err)
	}

	donor := &models.Donor{
		OrganizationID: req.OrganizationID,
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
	}

	if err := s.repo.Create(donor); err != nil {
		return nil, fmt.Errorf("failed to create donor: %w", err)
	}

	return s.toResponse(donor), nil
}

// GetByID retrieves a donor by ID
func (s *DonorService) GetByID(id uuid.UUID) (*DonorResponse, error) {
	donor, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDonorNotFound
		}
		return nil, fmt.Errorf("failed to get donor: %w", err)
	}
	return s.toResponse(donor), nil
}

// GetByOrganization retrieves donors for an organization with pagination
func (s *DonorService) GetByOrganization(organizationID uuid.UUID, page, pageSize int) (*DonorListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	donors, total, err := s.repo.GetByOrganizationID(organizationID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get donors: %w", err)
	}

	responses := make([]DonorResponse, len(donors))
	for i, donor := range donors {
		responses[i] = *s.toResponse(&donor)
	}

	return &DonorListResponse{
		Donors:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a donor
func (s *DonorService) Update(id uuid.UUID, req *UpdateDonorRequest) (*DonorResponse, error) {
	donor, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDonorNotFound
		}
		return nil, fmt.Errorf("failed to get donor: %w", err)
	}

	if req.Name != nil && *req.Name != donor.Name {
		if _, err := s.repo.GetByOrganizationAndName(donor.OrganizationID, *req.Name); err == nil {
			return nil, apperrors.ErrDonorExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check donor name: %w", err)
		}
		donor.Name = *req.Name
	}
	if req.Email != nil {
		donor.Email = *req.Email
	}
	if req.Phone != nil {
		donor.Phone = *req.Phone
	}

	if err := s.repo.Update(donor); err != nil {
		return nil, fmt.Errorf("failed to update donor: %w", err)
	}

	return s.toResponse(donor), nil
}

// Delete deletes a donor
func (s *DonorService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDonorNotFound
		}
		return fmt.Errorf("failed to get donor: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete donor: %w", err)
	}

	return nil
}

// toResponse converts a donor model to response
func (s *DonorService) toResponse(donor *models.Donor) *DonorResponse {
	return &DonorResponse{
		ID:             donor.ID,
		OrganizationID: donor.OrganizationID,
		Name:           donor.Name,
		Email:          donor.Email,
		Phone:          donor.Phone,
		CreatedAt:      donor.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      donor.UpdatedAt.Format(time.RFC3339),
	}
}
