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

// AlertHandler handles alert HTTP requests
type AlertHandler struct {
	alertService service.AlertService
}

// NewAlertHandler creates a new AlertHandler
func NewAlertHandler(alertService service.AlertService) *AlertHandler {
	return &AlertHandler{alertService: alertService}
}

// Create handles raising an alert
// POST /api/v1/alerts
func (h *AlertHandler) Create(c *gin.Context) {
	var req dto.CreateAlertRequest
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
	alert, err := h.alertService.Create(c.Request.Context(), orgID, userID, &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ValidationError(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(alert))
}

// List handles listing alerts
// GET /api/v1/alerts
func (h *AlertHandler) List(c *gin.Context) {
	orgID, _ := middleware.GetOrgID(c)
	alerts, err := h.alertService.List(c.Request.Context(), orgID, c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ServerError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithCount(alerts, len(alerts)))
}

// GetByID handles retrieving an alert
// GET /api/v1/alerts/:id
func (h *AlertHandler) GetByID(c *gin.Context) {
	orgID, _ := middleware.GetOrgID(c)
	alert, err := h.alertService.GetByID(c.Request.Context(), orgID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrAlertNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Alert not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.ServerError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(alert))
}

// Update handles updating an alert
// PUT /api/v1/alerts/:id
func (h *AlertHandler) Update(c *gin.Context) {
	var req dto.UpdateAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ValidationError(err.Error()))
		return
	}

	orgID, _ := middleware.GetOrgID(c)
	alert, err := h.alertService.Update(c.Request.Context(), orgID, c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrAlertNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Alert not found"))
			return
		}
		c.JSON(http.StatusBadRequest, response.ValidationError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(alert))
}

// Acknowledge handles alert acknowledgement
// POST /api/v1/alerts/:id/acknowledge
func (h *AlertHandler) Acknowledge(c *gin.Context) {
	orgID, _ := middleware.GetOrgID(c)
	userID, ok := middleware.GetUserID(c)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("User ID not found in token"))
		return
	}
	alert, err := h.alertService.Acknowledge(c.Request.Context(), orgID, c.Param("id"), userID)
	if err != nil {
		if errors.Is(err, service.ErrAlertNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Alert not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.ServerError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(alert))
}

// Delete handles deleting an alert
// DELETE /api/v1/alerts/:id
func (h *AlertHandler) Delete(c *gin.Context) {
	orgID, _ := middleware.GetOrgID(c)
	if err := h.alertService.Delete(c.Request.Context(), orgID, c.Param("id")); err != nil {
		if errors.Is(err, service.ErrAlertNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Alert not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.ServerError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessMessage("Alert deleted successfully", nil))
}
