package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "foodbank-backend/internal/errors"
	"foodbank-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DonationHandler handles HTTP requests for donations
type DonationHandler struct {
	service service.DonationServiceInterface
}

// NewDonationHandler creates a new donation handler
func NewDonationHandler(service service.DonationServiceInterface) *DonationHandler {
	return &DonationHandler{service: service}
}

// CreateDonation handles POST /api/v1/donations
// @Summary Record a new donation
// @Description Records a donation with its category-tagged item weights. Total weight is derived from the items.
// @Tags donations
// @Accept json
// @Produce json
// @Param donation body service.CreateDonationRequest true "Donation data"
// @Success 201 {object} service.DonationResponse "Successfully recorded donation"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Organization, donor or category not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /donations [post]
func (h *DonationHandler) CreateDonation(c *gin.Context) {
	var req service.CreateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	donation, err := h.service.Create(&req)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create donation", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, donation)
}

// GetDonation handles GET /api/v1/donations/:id
// @Summary Get donation by ID
// @Tags donations
// @Accept json
// @Produce json
// @Param id path string true "Donation ID (UUID)"
// @Success 200 {object} service.DonationResponse "Successfully retrieved donation"
// @Failure 400 {object} map[string]interface{} "Invalid donation ID"
// @Failure 404 {object} map[string]interface{} "Donation not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /donations/{id} [get]
func (h *DonationHandler) GetDonation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid donation ID"})
		return
	}

	donation, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrDonationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get donation", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, donation)
}

// GetDonationsByOrganization handles GET /api/v1/organizations/:id/donations
// @Summary List donations in an organization
// @Tags donations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.DonationListResponse "Successfully retrieved donations"
// @Failure 400 {object} map[string]interface{} "Invalid organization ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id}/donations [get]
func (h *DonationHandler) GetDonationsByOrganization(c *gin.Context) {
	orgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	donations, err := h.service.GetByOrganization(orgID, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get donations", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, donations)
}

// UpdateDonation handles PUT /api/v1/donations/:id
// @Summary Update donation
// @Description Updates donation details. When items are supplied the existing set is replaced.
// @Tags donations
// @Accept json
// @Produce json
// @Param id path string true "Donation ID (UUID)"
// @Param donation body service.UpdateDonationRequest true "Updated donation data"
// @Success 200 {object} service.DonationResponse "Successfully updated donation"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Donation not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /donations/{id} [put]
func (h *DonationHandler) UpdateDonation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid donation ID"})
		return
	}

	var req service.UpdateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	donation, err := h.service.Update(id, &req)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update donation", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, donation)
}

// DeleteDonation handles DELETE /api/v1/donations/:id
// @Summary Delete donation
// @Tags donations
// @Accept json
// @Produce json
// @Param id path string true "Donation ID (UUID)"
// @Success 204 "Successfully deleted donation"
// @Failure 400 {object} map[string]interface{} "Invalid donation ID"
// @Failure 404 {object} map[string]interface{} "Donation not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /donations/{id} [delete]
func (h *DonationHandler) DeleteDonation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid donation ID"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrDonationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete donation", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
