package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1.
// Изменяющие маршруты требуют API-ключ, чтение и голос открыты для панели.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	auth := APIKeyAuthMiddleware(h.cfg, h.logger)

	// Инциденты
	incidents := api.Group("/incidents")
	{
		incidents.GET("", h.listIncidents)
		incidents.GET("/stats", h.getStats)
		incidents.GET("/:id", h.getIncident)
		incidents.GET("/:id/responses", h.getIncidentResponses)
		incidents.POST("", auth, h.createIncident)
		incidents.POST("/simulate", auth, h.simulateIncident)
		incidents.PUT("/:id", auth, h.updateIncident)
		incidents.DELETE("/:id", auth, h.deleteIncident)
	}

	// Карта и ресурсы
	api.GET("/map", h.getMapData)
	api.GET("/map/nearby", h.nearbyResources)
	api.GET("/resources", h.listResources)

	// Агенты
	agents := api.Group("/agents")
	{
		agents.GET("", h.listAgents)
		agents.GET("/counts", h.agentCounts)
		agents.GET("/:id", h.getAgent)
		agents.POST("", auth, h.createAgent)
		agents.PUT("/:id/status", auth, h.updateAgentStatus)
	}

	// Журнал действий
	logs := api.Group("/logs")
	{
		logs.GET("", h.listLogs)
		logs.GET("/stats", h.getLogStats)
		logs.GET("/export", h.exportLogs)
		logs.POST("", auth, h.createLog)
		logs.POST("/export/archive", auth, h.archiveLogs)
	}

	// Ответы агентов-анализаторов
	api.GET("/agent-responses", h.listAgentResponses)
	api.POST("/agent-responses", auth, h.createAgentResponse)

	// Голос
	voice := api.Group("/voice")
	{
		voice.POST("/start", h.startVoice)
		voice.POST("/audio/:session_id", RateLimitMiddleware(h.audioLimiter, h.audioKey), h.sendAudio)
		voice.GET("/transcript/:session_id", h.getTranscript)
		voice.POST("/stop/:session_id", h.stopVoice)
		voice.GET("/transcript-stream", h.transcriptStream)
		voice.POST("/process-emergency", h.processEmergency)
		voice.POST("/process-emergency/stream", h.processEmergencyStream)
	}

	// Система
	api.GET("/settings", h.getSettings)
	api.GET("/dashboard", h.getDashboard)
	api.GET("/system/health", h.healthCheck)
}
