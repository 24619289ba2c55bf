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

// DonorHandler handles HTTP requests for donors
type DonorHandler struct {
	service service.DonorServiceInterface
}

// NewDonorHandler creates a new donor handler
func NewDonorHandler(service service.DonorServiceInterface) *DonorHandler {
	return &DonorHandler{service: service}
}

// CreateDonor handles POST /api/v1/donors
// @Summary Create a new donor
// @Tags donors
// @Accept json
// @Produce json
// @Param donor body service.CreateDonorRequest true "Donor data"
// @Success 201 {object} service.DonorResponse "Successfully created donor"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Failure 409 {object} map[string]interface{} "Donor already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /donors [post]
func (h *DonorHandler) CreateDonor(c *gin.Context) {
	var req service.CreateDonorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	donor, err := h.service.Create(&req)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsAlreadyExists(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create donor", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, donor)
}

// GetDonor handles GET /api/v1/donors/:id
// @Summary Get donor by ID
// @Tags donors
// @Accept json
// @Produce json
// @Param id path string true "Donor ID (UUID)"
// @Success 200 {object} service.DonorResponse "Successfully retrieved donor"
// @Failure 400 {object} map[string]interface{} "Invalid donor ID"
// @Failure 404 {object} map[string]interface{} "Donor not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /donors/{id} [get]
func (h *DonorHandler) GetDonor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid donor ID"})
		return
	}

	donor, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrDonorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get donor", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, donor)
}

// GetDonorsByOrganization handles GET /api/v1/organizations/:id/donors
// @Summary List donors in an organization
// @Tags donors
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.DonorListResponse "Successfully retrieved donors"
// @Failure 400 {object} map[string]interface{} "Invalid organization ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id}/donors [get]
func (h *DonorHandler) GetDonorsByOrganization(c *gin.Context) {
	orgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	donors, err := h.service.GetByOrganization(orgID, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get donors", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, donors)
}

// UpdateDonor handles PUT /api/v1/donors/:id
// @Summary Update donor
// @Tags donors
// @Accept json
// @Produce json
// @Param id path string true "Donor ID (UUID)"
// @Param donor body service.UpdateDonorRequest true "Updated donor data"
// @Success 200 {object} service.DonorResponse "Successfully updated donor"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Donor not found"
// @Failure 409 {object} map[string]interface{} "Donor name already in use"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /donors/{id} [put]
func (h *DonorHandler) UpdateDonor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid donor ID"})
		return
	}

	var req service.UpdateDonorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	donor, err := h.service.Update(id, &req)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsAlreadyExists(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update donor", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, donor)
}

// DeleteDonor handles DELETE /api/v1/donors/:id
// @Summary Delete donor
// @Tags donors
// @Accept json
// @Produce json
// @Param id path string true "Donor ID (UUID)"
// @Success 204 "Successfully deleted donor"
// @Failure 400 {object} map[string]interface{} "Invalid donor ID"
// @Failure 404 {object} map[string]interface{} "Donor not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /donors/{id} [delete]
func (h *DonorHandler) DeleteDonor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid donor ID"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrDonorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete donor", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
