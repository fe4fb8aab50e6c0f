package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/teeraphat-m/maritime-fleet-api/internal/domain"
	"github.com/teeraphat-m/maritime-fleet-api/internal/dto"
	"github.com/teeraphat-m/maritime-fleet-api/internal/repository"
	"github.com/teeraphat-m/maritime-fleet-api/internal/service"
	"github.com/teeraphat-m/maritime-fleet-api/pkg/middleware"
	"github.com/teeraphat-m/maritime-fleet-api/pkg/response"
)

// ReportHandler handles operational report HTTP requests
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Create handles filing a report
// POST /api/v1/reports
func (h *ReportHandler) Create(c *gin.Context) {
	var req dto.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ValidationError(err.Error()))
		return
	}

	orgID, _ := middleware.GetOrgID(c)
	userID, ok := middleware.GetUserID(c)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("User ID not found in token"))
		return
	}

	report, err := h.reportService.Create(c.Request.Context(), orgID, userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrVesselNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Vessel not found"))
			return
		}
		c.JSON(http.StatusBadRequest, response.ValidationError(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(report))
}

// List handles listing reports with optional filters
// GET /api/v1/reports
func (h *ReportHandler) List(c *gin.Context) {
	orgID, _ := middleware.GetOrgID(c)
	filter := repository.ReportFilter{
		VesselID: c.Query("vessel_id"),
		Type:     c.Query("type"),
		Status:   c.Query("status"),
	}

	reports, err := h.reportService.List(c.Request.Context(), orgID, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ServerError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithCount(reports, len(reports)))
}

// GetByID handles retrieving a report
// GET /api/v1/reports/:id
func (h *ReportHandler) GetByID(c *gin.Context) {
	orgID, _ := middleware.GetOrgID(c)
	report, err := h.reportService.GetByID(c.Request.Context(), orgID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrReportNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Report not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.ServerError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(report))
}

// Update handles updating a report, restricted to its author or an admin
// PUT /api/v1/reports/:id
func (h *ReportHandler) Update(c *gin.Context) {
	var req dto.UpdateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ValidationError(err.Error()))
		return
	}

	orgID, _ := middleware.GetOrgID(c)
	userID, ok := middleware.GetUserID(c)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("User ID not found in token"))
		return
	}
	role, _ := middleware.GetRole(c)

	report, err := h.reportService.Update(c.Request.Context(), orgID, c.Param("id"), userID, role, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReportNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Report not found"))
		case errors.Is(err, service.ErrNotReportOwner):
			c.JSON(http.StatusForbidden, response.Forbidden("Only the report author or an admin can modify this report"))
		default:
			c.JSON(http.StatusBadRequest, response.ValidationError(err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, response.Success(report))
}

// Delete handles deleting a report, restricted to its author or an admin
// DELETE /api/v1/reports/:id
func (h *ReportHandler) Delete(c *gin.Context) {
	orgID, _ := middleware.GetOrgID(c)
	userID, ok := middleware.GetUserID(c)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("User ID not found in token"))
		return
	}
	role, _ := middleware.GetRole(c)

	if err := h.reportService.Delete(c.Request.Context(), orgID, c.Param("id"), userID, role); err != nil {
		switch {
		case errors.Is(err, service.ErrReportNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Report not found"))
		case errors.Is(err, service.ErrNotReportOwner):
			c.JSON(http.StatusForbidden, response.Forbidden("Only the report author or an admin can delete this report"))
		default:
			c.JSON(http.StatusInternalServerError, response.ServerError(err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, response.SuccessMessage("Report deleted successfully", nil))
}

// Verify handles marking a report as verified
// POST /api/v1/reports/:id/verify
func (h *ReportHandler) Verify(c *gin.Context) {
	orgID, _ := middleware.GetOrgID(c)
	userID, ok := middleware.GetUserID(c)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("User ID not found in token"))
		return
	}

	report, err := h.reportService.Verify(c.Request.Context(), orgID, c.Param("id"), userID)
	if err != nil {
		if errors.Is(err, service.ErrReportNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Report not found"))
			return
		}
		c.JSON(http.StatusBadRequest, response.ValidationError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(report))
}

// ExportCompliance handles exporting verified reports for compliance review
// GET /api/v1/fleet/export-compliance
func (h *ReportHandler) ExportCompliance(c *gin.Context) {
	orgID, _ := middleware.GetOrgID(c)
	reports, err := h.reportService.List(c.Request.Context(), orgID, repository.ReportFilter{
		Status: domain.ReportStatusVerified,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ServerError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{
		"generated_at": time.Now().UTC(),
		"reports":      reports,
	}))
}
