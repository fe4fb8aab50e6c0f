package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/codes"

	"github.com/teeraphat-m/maritime-fleet-api/internal/dto"
	"github.com/teeraphat-m/maritime-fleet-api/internal/service"
	"github.com/teeraphat-m/maritime-fleet-api/pkg/middleware"
	"github.com/teeraphat-m/maritime-fleet-api/pkg/response"
	"github.com/teeraphat-m/maritime-fleet-api/pkg/telemetry"
)

// FleetHandler handles fleet analytics and threshold HTTP requests
type FleetHandler struct {
	fleetService service.FleetService
}

// NewFleetHandler creates a new FleetHandler
func NewFleetHandler(fleetService service.FleetService) *FleetHandler {
	return &FleetHandler{fleetService: fleetService}
}

// Analytics handles the fleet-wide analytics snapshot
// GET /api/v1/fleet/analytics
func (h *FleetHandler) Analytics(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.fleet.analytics")
	defer span.End()

	orgID, _ := middleware.GetOrgID(c)
	result, err := h.fleetService.Analytics(ctx, orgID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "analytics aggregation failed")
		c.JSON(http.StatusInternalServerError, response.ServerError(err.Error()))
		return
	}

	span.SetStatus(codes.Ok, "")
	c.JSON(http.StatusOK, response.Success(result))
}

// CreateThreshold handles creating a custom alerting threshold
// POST /api/v1/fleet/thresholds
func (h *FleetHandler) CreateThreshold(c *gin.Context) {
	var req dto.CreateThresholdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ValidationError(err.Error()))
		return
	}

	orgID, _ := middleware.GetOrgID(c)
	threshold, err := h.fleetService.CreateThreshold(c.Request.Context(), orgID, &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ValidationError(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(threshold))
}

// ListThresholds handles listing the org's thresholds
// GET /api/v1/fleet/thresholds
func (h *FleetHandler) ListThresholds(c *gin.Context) {
	orgID, _ := middleware.GetOrgID(c)
	thresholds, err := h.fleetService.ListThresholds(c.Request.Context(), orgID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ServerError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithCount(thresholds, len(thresholds)))
}

// UpdateThreshold handles updating a threshold
// PUT /api/v1/fleet/thresholds/:id
func (h *FleetHandler) UpdateThreshold(c *gin.Context) {
	var req dto.UpdateThresholdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ValidationError(err.Error()))
		return
	}

	orgID, _ := middleware.GetOrgID(c)
	threshold, err := h.fleetService.UpdateThreshold(c.Request.Context(), orgID, c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrThresholdNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Threshold not found"))
			return
		}
		c.JSON(http.StatusBadRequest, response.ValidationError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(threshold))
}

// DeleteThreshold handles deleting a threshold
// DELETE /api/v1/fleet/thresholds/:id
func (h *FleetHandler) DeleteThreshold(c *gin.Context) {
	orgID, _ := middleware.GetOrgID(c)
	if err := h.fleetService.DeleteThreshold(c.Request.Context(), orgID, c.Param("id")); err != nil {
		if errors.Is(err, service.ErrThresholdNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Threshold not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.ServerError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessMessage("Threshold deleted successfully", nil))
}

// VesselSummary handles the per-vessel fleet overview
// GET /api/v1/fleet/vessels
func (h *FleetHandler) VesselSummary(c *gin.Context) {
	orgID, _ := middleware.GetOrgID(c)
	rows, err := h.fleetService.VesselSummary(c.Request.Context(), orgID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ServerError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithCount(rows, len(rows)))
}
