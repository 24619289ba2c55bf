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

// RecurringShiftHandler handles HTTP requests for recurring shift templates
type RecurringShiftHandler struct {
	service service.RecurringShiftServiceInterface
}

// NewRecurringShiftHandler creates a new recurring shift handler
func NewRecurringShiftHandler(service service.RecurringShiftServiceInterface) *RecurringShiftHandler {
	return &RecurringShiftHandler{service: service}
}

// CreateRecurringShift handles POST /api/v1/recurring-shifts
// @Summary Create a new recurring shift
// @Description Create a weekly shift template within an organization
// @Tags recurring-shifts
// @Accept json
// @Produce json
// @Param recurringShift body service.CreateRecurringShiftRequest true "Recurring shift data"
// @Success 201 {object} service.RecurringShiftResponse "Successfully created recurring shift"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Organization or category not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /recurring-shifts [post]
func (h *RecurringShiftHandler) CreateRecurringShift(c *gin.Context) {
	var req service.CreateRecurringShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	shift, err := h.service.Create(&req)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create recurring shift", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, shift)
}

// GetRecurringShift handles GET /api/v1/recurring-shifts/:id
// @Summary Get recurring shift by ID
// @Tags recurring-shifts
// @Accept json
// @Produce json
// @Param id path string true "Recurring shift ID (UUID)"
// @Success 200 {object} service.RecurringShiftResponse "Successfully retrieved recurring shift"
// @Failure 400 {object} map[string]interface{} "Invalid recurring shift ID"
// @Failure 404 {object} map[string]interface{} "Recurring shift not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /recurring-shifts/{id} [get]
func (h *RecurringShiftHandler) GetRecurringShift(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recurring shift ID"})
		return
	}

	shift, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrRecurringShiftNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get recurring shift", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, shift)
}

// GetRecurringShiftsByOrganization handles GET /api/v1/organizations/:id/recurring-shifts
// @Summary List recurring shifts in an organization
// @Tags recurring-shifts
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.RecurringShiftListResponse "Successfully retrieved recurring shifts"
// @Failure 400 {object} map[string]interface{} "Invalid organization ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id}/recurring-shifts [get]
func (h *RecurringShiftHandler) GetRecurringShiftsByOrganization(c *gin.Context) {
	orgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	shifts, err := h.service.GetByOrganization(orgID, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get recurring shifts", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, shifts)
}

// UpdateRecurringShift handles PUT /api/v1/recurring-shifts/:id
// @Summary Update recurring shift
// @Tags recurring-shifts
// @Accept json
// @Produce json
// @Param id path string true "Recurring shift ID (UUID)"
// @Param recurringShift body service.UpdateRecurringShiftRequest true "Updated recurring shift data"
// @Success 200 {object} service.RecurringShiftResponse "Successfully updated recurring shift"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Recurring shift not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /recurring-shifts/{id} [put]
func (h *RecurringShiftHandler) UpdateRecurringShift(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recurring shift ID"})
		return
	}

	var req service.UpdateRecurringShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	shift, err := h.service.Update(id, &req)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update recurring shift", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, shift)
}

// DeleteRecurringShift handles DELETE /api/v1/recurring-shifts/:id
// @Summary Delete recurring shift
// @Tags recurring-shifts
// @Accept json
// @Produce json
// @Param id path string true "Recurring shift ID (UUID)"
// @Success 204 "Successfully deleted recurring shift"
// @Failure 400 {object} map[string]interface{} "Invalid recurring shift ID"
// @Failure 404 {object} map[string]interface{} "Recurring shift not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /recurring-shifts/{id} [delete]
func (h *RecurringShiftHandler) DeleteRecurringShift(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recurring shift ID"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrRecurringShiftNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete recurring shift", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// MaterializeRecurringShift handles POST /api/v1/organizations/:id/recurring-shifts/:shiftId/materialize
// @Summary Materialize the next occurrence of a recurring shift
// @Description Resolves the template's next occurrence, creating the concrete shift when missing, and enrolls the given users. Idempotent within a week.
// @Tags recurring-shifts
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param shiftId path string true "Recurring shift ID (UUID)"
// @Param request body service.MaterializeRequest true "Users to enroll"
// @Success 200 {object} service.MaterializeResponse "Materialization outcome"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Recurring shift not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id}/recurring-shifts/{shiftId}/materialize [post]
func (h *RecurringShiftHandler) MaterializeRecurringShift(c *gin.Context) {
	orgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID"})
		return
	}
	shiftID, err := uuid.Parse(c.Param("shiftId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recurring shift ID"})
		return
	}

	var req service.MaterializeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.Materialize(orgID, shiftID, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNoUserIDs):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to materialize recurring shift", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
