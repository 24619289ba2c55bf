package handlers

import (
	"errors"
	"fmt"
	"net/http"

	apperrors "foodbank-backend/internal/errors"
	"foodbank-backend/internal/reports"
	"foodbank-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Report names accepted by the report endpoints
const (
	ReportOutgoingStats     = "outgoing-stats"
	ReportVolunteerHours    = "volunteer-hours"
	ReportIncomingDonations = "incoming-donations"
	ReportDonorSummary      = "donor-summary"
)

// ReportHandler handles HTTP requests for aggregation reports
type ReportHandler struct {
	service service.ReportServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(service service.ReportServiceInterface) *ReportHandler {
	return &ReportHandler{service: service}
}

// GetReport handles GET /api/v1/organizations/:id/reports/:report
// @Summary Build an aggregation report
// @Description Builds one of the four aggregation reports (outgoing-stats, volunteer-hours, incoming-donations, donor-summary) as a JSON table. Year is required; month accepts 1-12 or "all" for a full-year window. Weight reports accept a unit query flag to convert to pounds.
// @Tags reports
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param report path string true "Report name" Enums(outgoing-stats, volunteer-hours, incoming-donations, donor-summary)
// @Param year query int true "Report year"
// @Param month query string false "Report month (1-12 or 'all')" default(all)
// @Param unit query string false "Weight unit ('Pounds (lb)' converts kilograms to pounds)"
// @Success 200 {object} reports.Table "Report table"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 404 {object} map[string]interface{} "Unknown report"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id}/reports/{report} [get]
func (h *ReportHandler) GetReport(c *gin.Context) {
	table, _, _, ok := h.buildReport(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, table)
}

// ExportReport handles GET /api/v1/organizations/:id/reports/:report/export
// @Summary Export an aggregation report as a spreadsheet
// @Description Builds the report and streams it as an .xlsx attachment named "<report>-<year>-<month>.xlsx"
// @Tags reports
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Organization ID (UUID)"
// @Param report path string true "Report name" Enums(outgoing-stats, volunteer-hours, incoming-donations, donor-summary)
// @Param year query int true "Report year"
// @Param month query string false "Report month (1-12 or 'all')" default(all)
// @Param unit query string false "Weight unit ('Pounds (lb)' converts kilograms to pounds)"
// @Success 200 {file} file "Spreadsheet download"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 404 {object} map[string]interface{} "Unknown report"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id}/reports/{report}/export [get]
func (h *ReportHandler) ExportReport(c *gin.Context) {
	table, report, window, ok := h.buildReport(c)
	if !ok {
		return
	}

	file, err := reports.WriteExcel(table)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render spreadsheet", "details": err.Error()})
		return
	}

	filename := reports.Filename(report, window.Month, window.Year)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", reports.ContentTypeXLSX)
	if err := file.Write(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusOK)
}

// buildReport parses the shared parameters and dispatches to the report
// service. On failure it writes the error response and returns ok=false.
func (h *ReportHandler) buildReport(c *gin.Context) (*reports.Table, string, service.Window, bool) {
	orgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID"})
		return nil, "", service.Window{}, false
	}

	window, err := service.ParseWindow(c.Query("month"), c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, "", service.Window{}, false
	}

	report := c.Param("report")
	unit := c.Query("unit")

	var table *reports.Table
	switch report {
	case ReportOutgoingStats:
		table, err = h.service.OutgoingStats(orgID, window)
	case ReportVolunteerHours:
		table, err = h.service.VolunteerHours(orgID, window)
	case ReportIncomingDonations:
		table, err = h.service.IncomingDonations(orgID, window, unit)
	case ReportDonorSummary:
		table, err = h.service.DonorSummary(orgID, window, unit)
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("unknown report %q", report)})
		return nil, "", service.Window{}, false
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrYearRequired) || errors.Is(err, apperrors.ErrInvalidMonth) || apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return nil, "", service.Window{}, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report", "details": err.Error()})
		return nil, "", service.Window{}, false
	}

	return table, report, window, true
}
