package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/teeraphat-m/maritime-fleet-api/internal/dto"
	"github.com/teeraphat-m/maritime-fleet-api/internal/service"
	"github.com/teeraphat-m/maritime-fleet-api/pkg/middleware"
	"github.com/teeraphat-m/maritime-fleet-api/pkg/response"
)

// MaintenanceHandler handles maintenance log HTTP requests
type MaintenanceHandler struct {
	maintenanceService service.MaintenanceService
}

// NewMaintenanceHandler creates a new MaintenanceHandler
func NewMaintenanceHandler(maintenanceService service.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{maintenanceService: maintenanceService}
}

// Create handles logging a maintenance entry for a vessel
// POST /api/v1/vessels/:id/maintenance
func (h *MaintenanceHandler) Create(c *gin.Context) {
	var req dto.CreateMaintenanceRequest
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

	entry, err := h.maintenanceService.Create(c.Request.Context(), orgID, c.Param("id"), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrVesselNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Vessel not found"))
			return
		}
		c.JSON(http.StatusBadRequest, response.ValidationError(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(entry))
}

// ListByVessel handles listing a vessel's maintenance history
// GET /api/v1/vessels/:id/maintenance
func (h *MaintenanceHandler) ListByVessel(c *gin.Context) {
	orgID, _ := middleware.GetOrgID(c)
	entries, err := h.maintenanceService.ListByVessel(c.Request.Context(), orgID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrVesselNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Vessel not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.ServerError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithCount(entries, len(entries)))
}

// Update handles updating a maintenance entry
// PUT /api/v1/maintenance/:id
func (h *MaintenanceHandler) Update(c *gin.Context) {
	var req dto.UpdateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ValidationError(err.Error()))
		return
	}

	orgID, _ := middleware.GetOrgID(c)
	entry, err := h.maintenanceService.Update(c.Request.Context(), orgID, c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrMaintenanceNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Maintenance entry not found"))
			return
		}
		c.JSON(http.StatusBadRequest, response.ValidationError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(entry))
}

// Complete handles marking a maintenance entry as completed
// POST /api/v1/maintenance/:id/complete
func (h *MaintenanceHandler) Complete(c *gin.Context) {
	orgID, _ := middleware.GetOrgID(c)
	entry, err := h.maintenanceService.Complete(c.Request.Context(), orgID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrMaintenanceNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Maintenance entry not found"))
			return
		}
		c.JSON(http.StatusBadRequest, response.ValidationError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(entry))
}

// Delete handles deleting a maintenance entry
// DELETE /api/v1/maintenance/:id
func (h *MaintenanceHandler) Delete(c *gin.Context) {
	orgID, _ := middleware.GetOrgID(c)
	if err := h.maintenanceService.Delete(c.Request.Context(), orgID, c.Param("id")); err != nil {
		if errors.Is(err, service.ErrMaintenanceNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Maintenance entry not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.ServerError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessMessage("Maintenance entry deleted successfully", nil))
}
