package service

import (
	"foodbank-backend/internal/reports"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// OrganizationServiceInterface defines the interface for organization service
type OrganizationServiceInterface interface {
	Create(req *CreateOrganizationRequest) (*OrganizationResponse, error)
	GetByID(id uuid.UUID) (*OrganizationResponse, error)
	GetAll(page, pageSize int) (*OrganizationListResponse, error)
	Update(id uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error)
	Delete(id uuid.UUID) error
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	Create(req *CreateUserRequest) (*UserResponse, error)
	GetByID(id uuid.UUID) (*UserResponse, error)
	GetByOrganization(organizationID uuid.UUID, page, pageSize int) (*UserListResponse, error)
	Update(id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error)
	Delete(id uuid.UUID) error
}

// ShiftCategoryServiceInterface defines the interface for shift category service
type ShiftCategoryServiceInterface interface {
	Create(req *CreateShiftCategoryRequest) (*ShiftCategoryResponse, error)
	GetByID(id uuid.UUID) (*ShiftCategoryResponse, error)
	GetByOrganization(organizationID uuid.UUID) ([]ShiftCategoryResponse, error)
	Update(id uuid.UUID, req *UpdateShiftCategoryRequest) (*ShiftCategoryResponse, error)
	Delete(id uuid.UUID) error
}

// RecurringShiftServiceInterface defines the interface for recurring shift service
type RecurringShiftServiceInterface interface {
	Create(req *CreateRecurringShiftRequest) (*RecurringShiftResponse, error)
	GetByID(id uuid.UUID) (*RecurringShiftResponse, error)
	GetByOrganization(organizationID uuid.UUID, page, pageSize int) (*RecurringShiftListResponse, error)
	Update(id uuid.UUID, req *UpdateRecurringShiftRequest) (*RecurringShiftResponse, error)
	Delete(id uuid.UUID) error
	Materialize(organizationID, recurringID uuid.UUID, req *MaterializeRequest) (*MaterializeResponse, error)
}

// ShiftServiceInterface defines the interface for shift service
type ShiftServiceInterface interface {
	Create(req *CreateShiftRequest) (*ShiftResponse, error)
	GetByID(id uuid.UUID) (*ShiftResponse, error)
	GetByOrganization(organizationID uuid.UUID, page, pageSize int) (*ShiftListResponse, error)
	Update(id uuid.UUID, req *UpdateShiftRequest) (*ShiftResponse, error)
	Delete(id uuid.UUID) error
}

// ShiftSignupServiceInterface defines the interface for shift signup service
type ShiftSignupServiceInterface interface {
	Create(req *CreateShiftSignupRequest) (*ShiftSignupResponse, error)
	GetByID(id uuid.UUID) (*ShiftSignupResponse, error)
	GetByShift(shiftID uuid.UUID) ([]ShiftSignupResponse, error)
	GetByUser(userID uuid.UUID, page, pageSize int) ([]ShiftSignupResponse, int64, error)
	Update(id uuid.UUID, req *UpdateShiftSignupRequest) (*ShiftSignupResponse, error)
	Delete(id uuid.UUID) error
}

// DonorServiceInterface defines the interface for donor service
type DonorServiceInterface interface {
	Create(req *CreateDonorRequest) (*DonorResponse, error)
	GetByID(id uuid.UUID) (*DonorResponse, error)
	GetByOrganization(organizationID uuid.UUID, page, pageSize int) (*DonorListResponse, error)
	Update(id uuid.UUID, req *UpdateDonorRequest) (*DonorResponse, error)
	Delete(id uuid.UUID) error
}

// DonationCategoryServiceInterface defines the interface for donation category service
type DonationCategoryServiceInterface interface {
	Create(req *CreateDonationCategoryRequest) (*DonationCategoryResponse, error)
	GetByID(id uuid.UUID) (*DonationCategoryResponse, error)
	GetByOrganization(organizationID uuid.UUID) ([]DonationCategoryResponse, error)
	Update(id uuid.UUID, req *UpdateDonationCategoryRequest) (*DonationCategoryResponse, error)
	Delete(id uuid.UUID) error
}

// DonationServiceInterface defines the interface for donation service
type DonationServiceInterface interface {
	Create(req *CreateDonationRequest) (*DonationResponse, error)
	GetByID(id uuid.UUID) (*DonationResponse, error)
	GetByOrganization(organizationID uuid.UUID, page, pageSize int) (*DonationListResponse, error)
	Update(id uuid.UUID, req *UpdateDonationRequest) (*DonationResponse, error)
	Delete(id uuid.UUID) error
}

// ReportServiceInterface defines the interface for report service
type ReportServiceInterface interface {
	OutgoingStats(organizationID uuid.UUID, w Window) (*reports.Table, error)
	VolunteerHours(organizationID uuid.UUID, w Window) (*reports.Table, error)
	IncomingDonations(organizationID uuid.UUID, w Window, unit string) (*reports.Table, error)
	DonorSummary(organizationID uuid.UUID, w Window, unit string) (*reports.Table, error)
}
