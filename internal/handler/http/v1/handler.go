package v1

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/responder_ai/internal/config"
	"github.com/shenikar/responder_ai/internal/models"
	"github.com/shenikar/responder_ai/internal/service"
	"github.com/sirupsen/logrus"
)

const limiterCleanupInterval = 10 * time.Minute

type Handler struct {
	incidentService service.IncidentService
	agentService    service.AgentService
	logService      service.LogService
	analysisService service.AnalysisService
	voiceService    service.VoiceService
	audioLimiter    *RateLimiter
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config

	// streams отменяется при остановке сервера и завершает SSE ответы
	streams      context.Context
	closeStreams context.CancelFunc
}

func NewHandler(
	incidentService service.IncidentService,
	agentService service.AgentService,
	logService service.LogService,
	analysisService service.AnalysisService,
	voiceService service.VoiceService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	streams, closeStreams := context.WithCancel(context.Background())
	return &Handler{
		streams:         streams,
		closeStreams:    closeStreams,
		incidentService: incidentService,
		agentService:    agentService,
		logService:      logService,
		analysisService: analysisService,
		voiceService:    voiceService,
		audioLimiter:    NewRateLimiter(cfg.VoiceAudioRPS, cfg.VoiceAudioBurst),
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// errorStatus сопоставляет доменную ошибку с HTTP статусом
func errorStatus(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound), errors.Is(err, models.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrInvalidStatus), errors.Is(err, models.ErrInvalidSort), errors.Is(err, models.ErrEmptyTranscript):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrSessionExists), errors.Is(err, models.ErrDuplicateID):
		return http.StatusConflict
	case errors.Is(err, models.ErrSessionClosed):
		return http.StatusGone
	case errors.Is(err, models.ErrVoiceDisabled), errors.Is(err, models.ErrArchiveDisabled):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// respondError отвечает клиенту; текст внутренних ошибок не раскрывается
func respondError(c *gin.Context, err error) {
	status := errorStatus(err)
	msg := "internal server error"
	switch status {
	case http.StatusNotFound:
		msg = "not found"
	case http.StatusBadRequest, http.StatusConflict, http.StatusGone, http.StatusServiceUnavailable:
		msg = unwrapDomain(err).Error()
	}
	c.JSON(status, gin.H{"error": msg})
}

// unwrapDomain возвращает самую внутреннюю ошибку цепочки
func unwrapDomain(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}

// @Summary Get application health status
// @Description Get health status of the application and the voice pipeline
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:         "ok",
		VoiceEnabled:   h.voiceService.Enabled(),
		ActiveSessions: h.voiceService.ActiveSessions(),
	})
}

// @Summary Get dashboard settings
// @Description System name, map provider token and feature flags for the front-end
// @Tags System
// @Produce json
// @Success 200 {object} SettingsResponse
// @Router /settings [get]
func (h *Handler) getSettings(c *gin.Context) {
	c.JSON(http.StatusOK, SettingsResponse{
		SystemName:       h.cfg.SystemName,
		MapProviderToken: h.cfg.MapProviderToken,
		VoiceEnabled:     h.voiceService.Enabled(),
		ArchiveEnabled:   h.cfg.LogExportBucket != "",
	})
}

// @Summary Get dashboard summary
// @Description Agent counts, incident stats and log stats in one call
// @Tags System
// @Produce json
// @Success 200 {object} DashboardResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dashboard [get]
func (h *Handler) getDashboard(c *gin.Context) {
	log := h.logger.WithField("method", "getDashboard")
	ctx := c.Request.Context()

	agents, err := h.agentService.StatusCounts(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to get agent counts from service")
		respondError(c, err)
		return
	}
	incidents, err := h.incidentService.GetStats(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to get incident stats from service")
		respondError(c, err)
		return
	}
	logs, err := h.logService.GetLogStats(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to get log stats from service")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, DashboardResponse{Agents: agents, Incidents: incidents, Logs: logs})
}

// CloseStreams завершает открытые SSE ответы; обычные запросы дорабатывают сами
func (h *Handler) CloseStreams() {
	h.closeStreams()
}

// streamContext отменяется вместе с запросом или при CloseStreams
func (h *Handler) streamContext(c *gin.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(c.Request.Context())
	stop := context.AfterFunc(h.streams, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}

// RunCleanup чистит ограничители частоты до отмены ctx
func (h *Handler) RunCleanup(ctx context.Context) {
	h.audioLimiter.Run(ctx, limiterCleanupInterval)
}
