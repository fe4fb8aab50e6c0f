package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/teeraphat-m/maritime-fleet-api/internal/dto"
	"github.com/teeraphat-m/maritime-fleet-api/internal/service"
	"github.com/teeraphat-m/maritime-fleet-api/pkg/middleware"
	"github.com/teeraphat-m/maritime-fleet-api/pkg/response"
	"github.com/teeraphat-m/maritime-fleet-api/pkg/telemetry"
)

// VesselHandler handles vessel management HTTP requests
type VesselHandler struct {
	vesselService service.VesselService
}

// NewVesselHandler creates a new VesselHandler
func NewVesselHandler(vesselService service.VesselService) *VesselHandler {
	return &VesselHandler{vesselService: vesselService}
}

// Create handles vessel registration
// POST /api/v1/vessels
func (h *VesselHandler) Create(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.vessel.create")
	defer span.End()

	var req dto.CreateVesselRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.SetStatus(codes.Error, "invalid request")
		c.JSON(http.StatusBadRequest, response.ValidationError(err.Error()))
		return
	}

	orgID, _ := middleware.GetOrgID(c)
	vessel, err := h.vesselService.Create(ctx, orgID, &req)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, service.ErrIMOTaken) {
			c.JSON(http.StatusConflict, response.Duplicate("A vessel with this IMO number is already registered"))
			return
		}
		c.JSON(http.StatusBadRequest, response.ValidationError(err.Error()))
		return
	}

	span.SetAttributes(attribute.String(telemetry.AttrVesselID, vessel.ID))
	c.JSON(http.StatusCreated, response.Success(vessel))
}

// List handles listing the fleet
// GET /api/v1/vessels
func (h *VesselHandler) List(c *gin.Context) {
	orgID, _ := middleware.GetOrgID(c)
	vessels, err := h.vesselService.List(c.Request.Context(), orgID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ServerError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithCount(vessels, len(vessels)))
}

// GetByID handles retrieving a vessel
// GET /api/v1/vessels/:id
func (h *VesselHandler) GetByID(c *gin.Context) {
	orgID, _ := middleware.GetOrgID(c)
	vessel, err := h.vesselService.GetByID(c.Request.Context(), orgID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrVesselNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Vessel not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.ServerError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(vessel))
}

// Update handles vessel updates
// PUT /api/v1/vessels/:id
func (h *VesselHandler) Update(c *gin.Context) {
	var req dto.UpdateVesselRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ValidationError(err.Error()))
		return
	}

	orgID, _ := middleware.GetOrgID(c)
	vessel, err := h.vesselService.Update(c.Request.Context(), orgID, c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrVesselNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Vessel not found"))
			return
		}
		c.JSON(http.StatusBadRequest, response.ValidationError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(vessel))
}

// Delete handles vessel removal
// DELETE /api/v1/vessels/:id
func (h *VesselHandler) Delete(c *gin.Context) {
	orgID, _ := middleware.GetOrgID(c)
	if err := h.vesselService.Delete(c.Request.Context(), orgID, c.Param("id")); err != nil {
		if errors.Is(err, service.ErrVesselNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Vessel not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.ServerError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessMessage("Vessel deleted successfully", nil))
}

// UpdatePosition handles manual position updates
// PUT /api/v1/vessels/:id/position
func (h *VesselHandler) UpdatePosition(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.vessel.position")
	defer span.End()

	var req dto.UpdatePositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.SetStatus(codes.Error, "invalid request")
		c.JSON(http.StatusBadRequest, response.ValidationError(err.Error()))
		return
	}

	orgID, _ := middleware.GetOrgID(c)
	vessel, err := h.vesselService.UpdatePosition(ctx, orgID, c.Param("id"), &req)
	if err != nil {
		span.RecordError(err)
		switch {
		case errors.Is(err, service.ErrVesselNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Vessel not found"))
		case errors.Is(err, service.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, response.ValidationError("Position out of range"))
		default:
			c.JSON(http.StatusInternalServerError, response.ServerError(err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, response.Success(vessel))
}

// Map handles the live fleet map view
// GET /api/v1/map/vessels
func (h *VesselHandler) Map(c *gin.Context) {
	orgID, _ := middleware.GetOrgID(c)
	positions, err := h.vesselService.Positions(c.Request.Context(), orgID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ServerError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithCount(positions, len(positions)))
}

// Live handles the radius-limited live map query
// GET /api/v1/map/live?lat=&lon=&radius=
func (h *VesselHandler) Live(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ValidationError("lat must be a number"))
		return
	}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ValidationError("lon must be a number"))
		return
	}
	radius, err := strconv.ParseFloat(c.DefaultQuery("radius", "50"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ValidationError("radius must be a number"))
		return
	}

	orgID, _ := middleware.GetOrgID(c)
	positions, err := h.vesselService.Live(c.Request.Context(), orgID, lat, lon, radius)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCacheUnavailable):
			c.JSON(http.StatusServiceUnavailable,
				response.Error(response.CodeCacheUnavailable, "Live positions are temporarily unavailable"))
		case errors.Is(err, service.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, response.ValidationError("Coordinates or radius out of range"))
		default:
			c.JSON(http.StatusInternalServerError, response.ServerError(err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithCount(positions, len(positions)))
}
