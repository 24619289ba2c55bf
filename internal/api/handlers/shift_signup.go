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

// ShiftSignupHandler handles HTTP requests for shift signups
type ShiftSignupHandler struct {
	service service.ShiftSignupServiceInterface
}

// NewShiftSignupHandler creates a new shift signup handler
func NewShiftSignupHandler(service service.ShiftSignupServiceInterface) *ShiftSignupHandler {
	return &ShiftSignupHandler{service: service}
}

// CreateShiftSignup handles POST /api/v1/shift-signups
// @Summary Sign a user up for a shift
// @Description Creates a signup, enforcing shift capacity and per-user uniqueness
// @Tags shift-signups
// @Accept json
// @Produce json
// @Param signup body service.CreateShiftSignupRequest true "Signup data"
// @Success 201 {object} service.ShiftSignupResponse "Successfully created signup"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "User or shift not found"
// @Failure 409 {object} map[string]interface{} "Signup already exists or shift is full"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /shift-signups [post]
func (h *ShiftSignupHandler) CreateShiftSignup(c *gin.Context) {
	var req service.CreateShiftSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	signup, err := h.service.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrShiftFull):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsAlreadyExists(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create signup", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, signup)
}

// GetShiftSignup handles GET /api/v1/shift-signups/:id
// @Summary Get signup by ID
// @Tags shift-signups
// @Accept json
// @Produce json
// @Param id path string true "Signup ID (UUID)"
// @Success 200 {object} service.ShiftSignupResponse "Successfully retrieved signup"
// @Failure 400 {object} map[string]interface{} "Invalid signup ID"
// @Failure 404 {object} map[string]interface{} "Signup not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /shift-signups/{id} [get]
func (h *ShiftSignupHandler) GetShiftSignup(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid signup ID"})
		return
	}

	signup, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrShiftSignupNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get signup", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, signup)
}

// GetSignupsByShift handles GET /api/v1/shifts/:id/signups
// @Summary List signups for a shift
// @Tags shift-signups
// @Accept json
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Success 200 {array} service.ShiftSignupResponse "Successfully retrieved signups"
// @Failure 400 {object} map[string]interface{} "Invalid shift ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /shifts/{id}/signups [get]
func (h *ShiftSignupHandler) GetSignupsByShift(c *gin.Context) {
	shiftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shift ID"})
		return
	}

	signups, err := h.service.GetByShift(shiftID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get signups", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, signups)
}

// GetSignupsByUser handles GET /api/v1/users/:id/signups
// @Summary List signups for a user
// @Tags shift-signups
// @Accept json
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} map[string]interface{} "Successfully retrieved signups"
// @Failure 400 {object} map[string]interface{} "Invalid user ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /users/{id}/signups [get]
func (h *ShiftSignupHandler) GetSignupsByUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	signups, total, err := h.service.GetByUser(userID, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get signups", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"signups": signups, "total": total, "page": page, "page_size": pageSize})
}

// UpdateShiftSignup handles PUT /api/v1/shift-signups/:id
// @Summary Update signup attendance
// @Description Records check-in/check-out timestamps and meals served
// @Tags shift-signups
// @Accept json
// @Produce json
// @Param id path string true "Signup ID (UUID)"
// @Param signup body service.UpdateShiftSignupRequest true "Attendance data"
// @Success 200 {object} service.ShiftSignupResponse "Successfully updated signup"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Signup not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /shift-signups/{id} [put]
func (h *ShiftSignupHandler) UpdateShiftSignup(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid signup ID"})
		return
	}

	var req service.UpdateShiftSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	signup, err := h.service.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrCheckOutBeforeCheckIn):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update signup", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, signup)
}

// DeleteShiftSignup handles DELETE /api/v1/shift-signups/:id
// @Summary Delete signup
// @Tags shift-signups
// @Accept json
// @Produce json
// @Param id path string true "Signup ID (UUID)"
// @Success 204 "Successfully deleted signup"
// @Failure 400 {object} map[string]interface{} "Invalid signup ID"
// @Failure 404 {object} map[string]interface{} "Signup not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /shift-signups/{id} [delete]
func (h *ShiftSignupHandler) DeleteShiftSignup(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid signup ID"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrShiftSignupNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete signup", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
