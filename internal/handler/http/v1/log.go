package v1

import (
	"bytes"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/responder_ai/internal/export"
	"github.com/shenikar/responder_ai/internal/models"
)

// logSortFromQuery читает sort и order; пустые значения остаются пустыми и
// заменяются сервисом на сортировку по умолчанию
func logSortFromQuery(c *gin.Context) models.LogSort {
	return models.LogSort{Field: c.Query("sort"), Direction: c.Query("order")}
}

// @Summary List activity logs
// @Description Activity log entries sorted by timestamp or agent
// @Tags Logs
// @Produce json
// @Param sort query string false "Sort field" Enums(timestamp, agent)
// @Param order query string false "Sort direction" Enums(asc, desc)
// @Success 200 {array} LogResponse
// @Failure 400 {object} map[string]string "Invalid sort"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /logs [get]
func (h *Handler) listLogs(c *gin.Context) {
	logs, err := h.logService.ListLogs(c.Request.Context(), logSortFromQuery(c))
	if err != nil {
		h.logger.WithField("method", "listLogs").WithError(err).Warn("Failed to list logs from service")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToLogResponses(logs))
}

// @Summary Write an activity log entry
// @Description Append an entry to the activity log. Requires API key.
// @Tags Logs
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param entry body CreateLogRequest true "Log entry"
// @Success 201 {object} LogResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /logs [post]
func (h *Handler) createLog(c *gin.Context) {
	var input CreateLogRequest
	log := h.logger.WithField("method", "createLog")

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

	entry := DTOToLogModel(input)
	if err := h.logService.CreateLog(c.Request.Context(), entry); err != nil {
		log.WithError(err).Error("Failed to create log in service")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ModelsToLogResponses([]*models.LogEntry{entry})[0])
}

// @Summary Get log statistics
// @Description Total entries, average confidence, distinct agents and the latest activity
// @Tags Logs
// @Produce json
// @Success 200 {object} models.LogStats
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /logs/stats [get]
func (h *Handler) getLogStats(c *gin.Context) {
	stats, err := h.logService.GetLogStats(c.Request.Context())
	if err != nil {
		h.logger.WithField("method", "getLogStats").WithError(err).Error("Failed to get log stats")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary Export activity logs as CSV
// @Description Download the log in the current sort order
// @Tags Logs
// @Produce text/csv
// @Param sort query string false "Sort field" Enums(timestamp, agent)
// @Param order query string false "Sort direction" Enums(asc, desc)
// @Success 200 {file} file
// @Failure 400 {object} map[string]string "Invalid sort"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /logs/export [get]
func (h *Handler) exportLogs(c *gin.Context) {
	log := h.logger.WithField("method", "exportLogs")

	// Пишем в буфер, чтобы ошибка не оборвала уже начатый ответ
	var buf bytes.Buffer
	rows, err := h.logService.ExportCSV(c.Request.Context(), &buf, logSortFromQuery(c))
	if err != nil {
		log.WithError(err).Error("Failed to export logs")
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+export.LogsFilename(time.Now())+`"`)
	c.Header("X-Export-Rows", strconv.Itoa(rows))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// @Summary Archive activity logs to object storage
// @Description Upload the CSV export to the archive bucket and return a presigned link. Requires API key.
// @Tags Logs
// @Produce json
// @Security ApiKeyAuth
// @Param sort query string false "Sort field" Enums(timestamp, agent)
// @Param order query string false "Sort direction" Enums(asc, desc)
// @Success 201 {object} models.LogArchive
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Archive disabled"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /logs/export/archive [post]
func (h *Handler) archiveLogs(c *gin.Context) {
	archive, err := h.logService.ArchiveCSV(c.Request.Context(), logSortFromQuery(c))
	if err != nil {
		h.logger.WithField("method", "archiveLogs").WithError(err).Error("Failed to archive logs")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, archive)
}

// @Summary List agent responses
// @Description All stored analysis messages, newest first
// @Tags Analysis
// @Produce json
// @Success 200 {array} AgentMessageResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /agent-responses [get]
func (h *Handler) listAgentResponses(c *gin.Context) {
	responses, err := h.analysisService.ListResponses(c.Request.Context())
	if err != nil {
		h.logger.WithField("method", "listAgentResponses").WithError(err).Error("Failed to list agent responses")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToAgentMessageResponses(responses))
}

// @Summary Store an agent response
// @Description Persist a single analysis message. Requires API key.
// @Tags Analysis
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param response body CreateAgentMessageRequest true "Agent response"
// @Success 201 {object} AgentMessageResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /agent-responses [post]
func (h *Handler) createAgentResponse(c *gin.Context) {
	var input CreateAgentMessageRequest
	log := h.logger.WithField("method", "createAgentResponse")

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

	model := DTOToAgentMessageModel(input)
	if err := h.analysisService.CreateResponse(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to store agent response")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToAgentMessageResponse(model))
}
