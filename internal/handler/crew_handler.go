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

// CrewHandler handles crew roster HTTP requests
type CrewHandler struct {
	crewService service.CrewService
}

// NewCrewHandler creates a new CrewHandler
func NewCrewHandler(crewService service.CrewService) *CrewHandler {
	return &CrewHandler{crewService: crewService}
}

// Create handles adding a crew member
// POST /api/v1/crew
func (h *CrewHandler) Create(c *gin.Context) {
	var req dto.CreateCrewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ValidationError(err.Error()))
		return
	}

	orgID, _ := middleware.GetOrgID(c)
	member, err := h.crewService.Create(c.Request.Context(), orgID, &req)
	if err != nil {
		if errors.Is(err, service.ErrVesselNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Vessel not found"))
			return
		}
		c.JSON(http.StatusBadRequest, response.ValidationError(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(member))
}

// List handles listing the fleet roster
// GET /api/v1/crew
func (h *CrewHandler) List(c *gin.Context) {
	orgID, _ := middleware.GetOrgID(c)

	var (
		members interface{}
		count   int
		err     error
	)
	if vesselID := c.Query("vessel_id"); vesselID != "" {
		list, lerr := h.crewService.ListByVessel(c.Request.Context(), orgID, vesselID)
		members, count, err = list, len(list), lerr
	} else {
		list, lerr := h.crewService.List(c.Request.Context(), orgID)
		members, count, err = list, len(list), lerr
	}
	if err != nil {
		if errors.Is(err, service.ErrVesselNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Vessel not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.ServerError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithCount(members, count))
}

// GetByID handles retrieving a crew member
// GET /api/v1/crew/:id
func (h *CrewHandler) GetByID(c *gin.Context) {
	orgID, _ := middleware.GetOrgID(c)
	member, err := h.crewService.GetByID(c.Request.Context(), orgID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrCrewNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Crew member not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.ServerError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(member))
}

// Update handles updating a crew member
// PUT /api/v1/crew/:id
func (h *CrewHandler) Update(c *gin.Context) {
	var req dto.UpdateCrewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ValidationError(err.Error()))
		return
	}

	orgID, _ := middleware.GetOrgID(c)
	member, err := h.crewService.Update(c.Request.Context(), orgID, c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCrewNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Crew member not found"))
		case errors.Is(err, service.ErrVesselNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Vessel not found"))
		default:
			c.JSON(http.StatusBadRequest, response.ValidationError(err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, response.Success(member))
}

// Delete handles removing a crew member
// DELETE /api/v1/crew/:id
func (h *CrewHandler) Delete(c *gin.Context) {
	orgID, _ := middleware.GetOrgID(c)
	if err := h.crewService.Delete(c.Request.Context(), orgID, c.Param("id")); err != nil {
		if errors.Is(err, service.ErrCrewNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Crew member not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.ServerError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessMessage("Crew member deleted successfully", nil))
}
