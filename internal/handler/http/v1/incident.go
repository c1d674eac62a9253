package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// радиус поиска ресурсов по умолчанию, м
const defaultNearbyRadius = 5000

// @Summary Create a new incident
// @Description Create a new candidate incident. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param incident body CreateIncidentRequest true "Incident creation request"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "createIncident")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToIncidentModel(input)
	if err := h.incidentService.CreateIncident(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create incident in service")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(model))
}

// @Summary Simulate an incident
// @Description Create a random candidate incident somewhere in San Francisco. Requires API key.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} IncidentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/simulate [post]
func (h *Handler) simulateIncident(c *gin.Context) {
	incident, err := h.incidentService.SimulateIncident(c.Request.Context())
	if err != nil {
		h.logger.WithField("method", "simulateIncident").WithError(err).Error("Failed to simulate incident")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(incident))
}

// @Summary Get a list of incidents
// @Description Get a paginated list of incidents, optionally filtered by status
// @Tags Incidents
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Param status query string false "Status filter" Enums(candidate, confirmed, resolved)
// @Success 200 {array} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid status"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	incidents, err := h.incidentService.ListIncidents(c.Request.Context(), page, pageSize, c.Query("status"))
	if err != nil {
		log.WithError(err).Error("Failed to list incident from service")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Get incident by ID
// @Description Get a single incident by its ID
// @Tags Incidents
// @Produce json
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident from service")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Update an existing incident
// @Description Update an existing incident by ID. Confirming an incident queues a dispatch webhook. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param incident body UpdateIncidentRequest true "Incident update request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [put]
func (h *Handler) updateIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "updateIncident").WithField("id", id)

	var input UpdateIncidentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToIncidentModel(input)
	model.ID = id

	if err := h.incidentService.UpdateIncident(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to update incident in service")
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Resolve an incident
// @Description Mark an incident as resolved. Requires API key.
// @Tags Incidents
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [delete]
func (h *Handler) deleteIncident(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "deleteIncident").WithField("id", id)

	if err := h.incidentService.ResolveIncident(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("Failed to resolve incident in service")
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get incident statistics
// @Description Totals, active count, resolutions in the stats window and counts by severity
// @Tags Incidents
// @Produce json
// @Success 200 {object} models.IncidentStats
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	stats, err := h.incidentService.GetStats(c.Request.Context())
	if err != nil {
		h.logger.WithField("method", "getStats").WithError(err).Error("Failed to get stats from service")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary Get agent responses for an incident
// @Description Stored analysis messages of the incident in stage order
// @Tags Incidents
// @Produce json
// @Param id path string true "Incident ID"
// @Success 200 {array} AgentMessageResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/responses [get]
func (h *Handler) getIncidentResponses(c *gin.Context) {
	id := c.Param("id")
	responses, err := h.analysisService.ListIncidentResponses(c.Request.Context(), id)
	if err != nil {
		h.logger.WithField("method", "getIncidentResponses").WithField("id", id).WithError(err).Error("Failed to list agent responses")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToAgentMessageResponses(responses))
}

// @Summary Get map data
// @Description Active incidents and all resources for the live map
// @Tags Map
// @Produce json
// @Success 200 {object} MapDataResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /map [get]
func (h *Handler) getMapData(c *gin.Context) {
	data, err := h.incidentService.GetMapData(c.Request.Context())
	if err != nil {
		h.logger.WithField("method", "getMapData").WithError(err).Error("Failed to get map data from service")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapDataResponse{
		Incidents: ModelsToIncidentResponses(data.Incidents),
		Resources: data.Resources,
	})
}

// @Summary List resources
// @Description All response units with their current status
// @Tags Map
// @Produce json
// @Success 200 {array} models.Resource
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /resources [get]
func (h *Handler) listResources(c *gin.Context) {
	resources, err := h.incidentService.ListResources(c.Request.Context())
	if err != nil {
		h.logger.WithField("method", "listResources").WithError(err).Error("Failed to list resources")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resources)
}

// @Summary Find nearby resources
// @Description Resources within the radius of a point, nearest first
// @Tags Map
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius query int false "Radius in meters" default(5000)
// @Success 200 {array} models.Resource
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /map/nearby [get]
func (h *Handler) nearbyResources(c *gin.Context) {
	log := h.logger.WithField("method", "nearbyResources")

	var input NearbyResourcesRequest
	if err := c.ShouldBindQuery(&input); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Radius == 0 {
		input.Radius = defaultNearbyRadius
	}

	resources, err := h.incidentService.FindNearbyResources(c.Request.Context(), *input.Lat, *input.Lng, input.Radius)
	if err != nil {
		log.WithError(err).Error("Failed to find nearby resources")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resources)
}
