package handlers

import (
	"errors"
	"net/http"

	apperrors "foodbank-backend/internal/errors"
	"foodbank-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ShiftCategoryHandler handles HTTP requests for shift categories
type ShiftCategoryHandler struct {
	service service.ShiftCategoryServiceInterface
}

// NewShiftCategoryHandler creates a new shift category handler
func NewShiftCategoryHandler(service service.ShiftCategoryServiceInterface) *ShiftCategoryHandler {
	return &ShiftCategoryHandler{service: service}
}

// CreateShiftCategory handles POST /api/v1/shift-categories
// @Summary Create a new shift category
// @Description Create a shift category within an organization
// @Tags shift-categories
// @Accept json
// @Produce json
// @Param category body service.CreateShiftCategoryRequest true "Category data"
// @Success 201 {object} service.ShiftCategoryResponse "Successfully created category"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Failure 409 {object} map[string]interface{} "Category already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /shift-categories [post]
func (h *ShiftCategoryHandler) CreateShiftCategory(c *gin.Context) {
	var req service.CreateShiftCategoryRequest
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
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create shift category", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, category)
}

// GetShiftCategory handles GET /api/v1/shift-categories/:id
// @Summary Get shift category by ID
// @Tags shift-categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID (UUID)"
// @Success 200 {object} service.ShiftCategoryResponse "Successfully retrieved category"
// @Failure 400 {object} map[string]interface{} "Invalid category ID"
// @Failure 404 {object} map[string]interface{} "Category not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /shift-categories/{id} [get]
func (h *ShiftCategoryHandler) GetShiftCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	category, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrShiftCategoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get shift category", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, category)
}

// GetShiftCategoriesByOrganization handles GET /api/v1/organizations/:id/shift-categories
// @Summary List shift categories in an organization
// @Tags shift-categories
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {array} service.ShiftCategoryResponse "Successfully retrieved categories"
// @Failure 400 {object} map[string]interface{} "Invalid organization ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id}/shift-categories [get]
func (h *ShiftCategoryHandler) GetShiftCategoriesByOrganization(c *gin.Context) {
	orgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID"})
		return
	}

	categories, err := h.service.GetByOrganization(orgID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get shift categories", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, categories)
}

// UpdateShiftCategory handles PUT /api/v1/shift-categories/:id
// @Summary Update shift category
// @Tags shift-categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID (UUID)"
// @Param category body service.UpdateShiftCategoryRequest true "Updated category data"
// @Success 200 {object} service.ShiftCategoryResponse "Successfully updated category"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Category not found"
// @Failure 409 {object} map[string]interface{} "Category name already in use"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /shift-categories/{id} [put]
func (h *ShiftCategoryHandler) UpdateShiftCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	var req service.UpdateShiftCategoryRequest
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
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update shift category", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, category)
}

// DeleteShiftCategory handles DELETE /api/v1/shift-categories/:id
// @Summary Delete shift category
// @Tags shift-categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID (UUID)"
// @Success 204 "Successfully deleted category"
// @Failure 400 {object} map[string]interface{} "Invalid category ID"
// @Failure 404 {object} map[string]interface{} "Category not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /shift-categories/{id} [delete]
func (h *ShiftCategoryHandler) DeleteShiftCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrShiftCategoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete shift category", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
