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

// InventoryHandler handles fuel inventory, fuel report, and bunkering requests
type InventoryHandler struct {
	inventoryService service.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(inventoryService service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// GetVesselInventory handles reading a vessel's inventory
// GET /api/v1/vessels/:id/inventory
func (h *InventoryHandler) GetVesselInventory(c *gin.Context) {
	orgID, _ := middleware.GetOrgID(c)
	result, err := h.inventoryService.GetVesselInventory(c.Request.Context(), orgID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrVesselNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Vessel not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.ServerError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// GetInventory handles reading the tenant's inventory overview
// GET /api/v1/inventory
func (h *InventoryHandler) GetInventory(c *gin.Context) {
	orgID, _ := middleware.GetOrgID(c)
	result, err := h.inventoryService.GetOrgInventory(c.Request.Context(), orgID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ServerError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// UpdateItem handles adjusting an inventory item
// PUT /api/v1/inventory/:id
func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	var req dto.UpdateInventoryRequest
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
	item, err := h.inventoryService.UpdateItem(c.Request.Context(), orgID, c.Param("id"), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Inventory item not found"))
			return
		}
		c.JSON(http.StatusBadRequest, response.ValidationError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(item))
}

// SubmitFuelReport handles daily fuel report submission
// POST /api/v1/vessels/:id/fuel-reports
func (h *InventoryHandler) SubmitFuelReport(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.fuel.report")
	defer span.End()

	var req dto.SubmitFuelReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.SetStatus(codes.Error, "invalid request")
		c.JSON(http.StatusBadRequest, response.ValidationError(err.Error()))
		return
	}

	orgID, _ := middleware.GetOrgID(c)
	userID, ok := middleware.GetUserID(c)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("User ID not found in token"))
		return
	}
	vesselID := c.Param("id")
	span.SetAttributes(attribute.String(telemetry.AttrVesselID, vesselID))

	report, err := h.inventoryService.SubmitFuelReport(ctx, orgID, vesselID, userID, &req)
	if err != nil {
		span.RecordError(err)
		switch {
		case errors.Is(err, service.ErrVesselNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Vessel not found"))
		case errors.Is(err, service.ErrDuplicateReport):
			c.JSON(http.StatusConflict, response.Duplicate("A fuel report for this date already exists"))
		default:
			c.JSON(http.StatusBadRequest, response.ValidationError(err.Error()))
		}
		return
	}

	span.SetStatus(codes.Ok, "")
	c.JSON(http.StatusCreated, response.Success(report))
}

// ListFuelReports handles listing a vessel's fuel reports
// GET /api/v1/vessels/:id/fuel-reports
func (h *InventoryHandler) ListFuelReports(c *gin.Context) {
	orgID, _ := middleware.GetOrgID(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "30"))

	reports, err := h.inventoryService.ListFuelReports(c.Request.Context(), orgID, c.Param("id"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ServerError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithCount(reports, len(reports)))
}

// RecordBunkering handles recording a bunkering operation
// POST /api/v1/vessels/:id/bunker-records
func (h *InventoryHandler) RecordBunkering(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.fuel.bunker")
	defer span.End()

	var req dto.RecordBunkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.SetStatus(codes.Error, "invalid request")
		c.JSON(http.StatusBadRequest, response.ValidationError(err.Error()))
		return
	}

	orgID, _ := middleware.GetOrgID(c)
	userID, ok := middleware.GetUserID(c)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("User ID not found in token"))
		return
	}
	record, err := h.inventoryService.RecordBunkering(ctx, orgID, c.Param("id"), userID, &req)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, service.ErrVesselNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Vessel not found"))
			return
		}
		c.JSON(http.StatusBadRequest, response.ValidationError(err.Error()))
		return
	}

	span.SetAttributes(attribute.String(telemetry.AttrFuelType, record.FuelType))
	c.JSON(http.StatusCreated, response.Success(record))
}

// ListBunkerRecords handles listing a vessel's bunkering history
// GET /api/v1/vessels/:id/bunker-records
func (h *InventoryHandler) ListBunkerRecords(c *gin.Context) {
	orgID, _ := middleware.GetOrgID(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	records, err := h.inventoryService.ListBunkerRecords(c.Request.Context(), orgID, c.Param("id"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ServerError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithCount(records, len(records)))
}

// FuelAnalytics handles the trailing fuel consumption aggregate
// GET /api/v1/fleet/fuel-analytics?days=
func (h *InventoryHandler) FuelAnalytics(c *gin.Context) {
	orgID, _ := middleware.GetOrgID(c)
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))

	result, err := h.inventoryService.FuelAnalytics(c.Request.Context(), orgID, days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ServerError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}
