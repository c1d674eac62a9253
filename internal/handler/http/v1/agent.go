package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/responder_ai/internal/models"
)

// @Summary List agents
// @Description Agents sorted by id, filtered by status and a case-insensitive name or location query
// @Tags Agents
// @Produce json
// @Param status query string false "Status filter" Enums(all, active, idle, responding, offline)
// @Param q query string false "Search by name or location"
// @Success 200 {array} AgentResponse
// @Failure 400 {object} map[string]string "Invalid status"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /agents [get]
func (h *Handler) listAgents(c *gin.Context) {
	filter := models.AgentFilter{Status: c.Query("status"), Query: c.Query("q")}

	agents, err := h.agentService.ListAgents(c.Request.Context(), filter)
	if err != nil {
		h.logger.WithField("method", "listAgents").WithError(err).Warn("Failed to list agents from service")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToAgentResponses(agents, time.Now()))
}

// @Summary Get agent counts by status
// @Description Counts for the status filter tabs
// @Tags Agents
// @Produce json
// @Success 200 {object} models.AgentStatusCounts
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /agents/counts [get]
func (h *Handler) agentCounts(c *gin.Context) {
	counts, err := h.agentService.StatusCounts(c.Request.Context())
	if err != nil {
		h.logger.WithField("method", "agentCounts").WithError(err).Error("Failed to count agents")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

// @Summary Get agent by ID
// @Tags Agents
// @Produce json
// @Param id path string true "Agent ID"
// @Success 200 {object} AgentResponse
// @Failure 404 {object} map[string]string "Agent not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /agents/{id} [get]
func (h *Handler) getAgent(c *gin.Context) {
	id := c.Param("id")
	agent, err := h.agentService.GetAgent(c.Request.Context(), id)
	if err != nil {
		h.logger.WithField("method", "getAgent").WithField("id", id).WithError(err).Warn("Failed to get agent from service")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToAgentResponse(agent, time.Now()))
}

// @Summary Register an agent
// @Description Register a new field agent; it starts offline. Requires API key.
// @Tags Agents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param agent body CreateAgentRequest true "Agent registration request"
// @Success 201 {object} AgentResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Agent id already taken"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /agents [post]
func (h *Handler) createAgent(c *gin.Context) {
	var input CreateAgentRequest
	log := h.logger.WithField("method", "createAgent")

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

	model := DTOToAgentModel(input)
	if err := h.agentService.CreateAgent(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create agent in service")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToAgentResponse(model, time.Now()))
}

// @Summary Change agent status
// @Description Set agent status and record the change in the activity log. Requires API key.
// @Tags Agents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Agent ID"
// @Param status body UpdateAgentStatusRequest true "New status"
// @Success 200 {object} AgentResponse
// @Failure 400 {object} map[string]string "Invalid status"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Agent not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /agents/{id}/status [put]
func (h *Handler) updateAgentStatus(c *gin.Context) {
	id := c.Param("id")
	log := h.logger.WithField("method", "updateAgentStatus").WithField("id", id)

	var input UpdateAgentStatusRequest
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

	agent, err := h.agentService.UpdateAgentStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		log.WithError(err).Error("Failed to update agent status")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToAgentResponse(agent, time.Now()))
}
