package handlers

import (
	"errors"
	"net/http"

	apperrors "foodbank-backend/internal/errors"
	"foodbank-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DonationCategoryHandler handles HTTP requests for donation categories
type DonationCategoryHandler struct {
	service service.DonationCategoryServiceInterface
}

// NewDonationCategoryHandler creates a new donation category handler
func NewDonationCategoryHandler(service service.DonationCategoryServiceInterface) *DonationCategoryHandler {
	return &DonationCategoryHandler{service: service}
}

// CreateDonationCategory handles POST /api/v1/donation-categories
// @Summary Create a new donation category
// @Tags donation-categories
// @Accept json
// @Produce json
// @Param category body service.CreateDonationCategoryRequest true "Category data"
// @Success 201 {object} service.DonationCategoryResponse "Successfully created category"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Failure 409 {object} map[string]interface{} "Category already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /donation-categories [post]
func (h *DonationCategoryHandler) CreateDonationCategory(c *gin.Context) {
	var req service.CreateDonationCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	category, err := h.service.Create(&req)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsAlreadyExists(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create donation category", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, category)
}

// GetDonationCategory handles GET /api/v1/donation-categories/:id
// @Summary Get donation category by ID
// @Tags donation-categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID (UUID)"
// @Success 200 {object} service.DonationCategoryResponse "Successfully retrieved category"
// @Failure 400 {object} map[string]interface{} "Invalid category ID"
// @Failure 404 {object} map[string]interface{} "Category not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /donation-categories/{id} [get]
func (h *DonationCategoryHandler) GetDonationCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	category, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrDonationCategoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get donation category", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, category)
}

// GetDonationCategoriesByOrganization handles GET /api/v1/organizations/:id/donation-categories
// @Summary List donation categories in an organization
// @Tags donation-categories
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {array} service.DonationCategoryResponse "Successfully retrieved categories"
// @Failure 400 {object} map[string]interface{} "Invalid organization ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id}/donation-categories [get]
func (h *DonationCategoryHandler) GetDonationCategoriesByOrganization(c *gin.Context) {
	orgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID"})
		return
	}

	categories, err := h.service.GetByOrganization(orgID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get donation categories", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, categories)
}

// UpdateDonationCategory handles PUT /api/v1/donation-categories/:id
// @Summary Update donation category
// @Tags donation-categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID (UUID)"
// @Param category body service.UpdateDonationCategoryRequest true "Updated category data"
// @Success 200 {object} service.DonationCategoryResponse "Successfully updated category"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Category not found"
// @Failure 409 {object} map[string]interface{} "Category name already in use"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /donation-categories/{id} [put]
func (h *DonationCategoryHandler) UpdateDonationCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	var req service.UpdateDonationCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	category, err := h.service.Update(id, &req)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsAlreadyExists(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update donation category", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, category)
}

// DeleteDonationCategory handles DELETE /api/v1/donation-categories/:id
// @Summary Delete donation category
// @Tags donation-categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID (UUID)"
// @Success 204 "Successfully deleted category"
// @Failure 400 {object} map[string]interface{} "Invalid category ID"
// @Failure 404 {object} map[string]interface{} "Category not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /donation-categories/{id} [delete]
func (h *DonationCategoryHandler) DeleteDonationCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrDonationCategoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete donation category", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
