package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/responder_ai/internal/models"
)

// максимальный размер одного фрагмента аудио
const maxAudioChunk = 1 << 20

// respondVoiceError отвечает в формате голосовых маршрутов
func respondVoiceError(c *gin.Context, status int, message string) {
	c.JSON(status, VoiceResponse{Success: false, Message: message})
}

// @Summary Start a voice session
// @Description Open a live transcription stream. The session id is generated when omitted.
// @Tags Voice
// @Accept json
// @Produce json
// @Param session body StartVoiceRequest false "Optional session id"
// @Success 200 {object} VoiceResponse
// @Failure 409 {object} VoiceResponse "Session already exists"
// @Failure 503 {object} VoiceResponse "Voice disabled"
// @Failure 500 {object} VoiceResponse "Failed to start transcription"
// @Router /voice/start [post]
func (h *Handler) startVoice(c *gin.Context) {
	log := h.logger.WithField("method", "startVoice")

	var input StartVoiceRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			log.WithError(err).Warn("Failed to bind JSON")
			respondVoiceError(c, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := h.validate.Struct(input); err != nil {
			log.WithError(err).Warn("Validation failed")
			respondVoiceError(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	session, err := h.voiceService.StartSession(c.Request.Context(), input.SessionID)
	if err != nil {
		log.WithError(err).Error("Failed to start voice session")
		status := errorStatus(err)
		msg := "failed to start transcription"
		if status != http.StatusInternalServerError {
			msg = unwrapDomain(err).Error()
		}
		respondVoiceError(c, status, msg)
		return
	}

	c.JSON(http.StatusOK, VoiceResponse{
		Success:   true,
		Message:   "Voice recognition started",
		SessionID: session.ID,
	})
}

// @Summary Send an audio chunk
// @Description Forward raw 16 kHz mono linear16 PCM to the session's transcription stream
// @Tags Voice
// @Accept application/octet-stream
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} VoiceResponse
// @Failure 400 {object} VoiceResponse "Invalid session or empty audio"
// @Failure 410 {object} VoiceResponse "Transcription stream closed"
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Failure 500 {object} VoiceResponse "Failed to forward audio"
// @Router /voice/audio/{session_id} [post]
func (h *Handler) sendAudio(c *gin.Context) {
	sessionID := c.Param("session_id")
	log := h.logger.WithField("method", "sendAudio").WithField("session_id", sessionID)

	audio, err := io.ReadAll(io.LimitReader(c.Request.Body, maxAudioChunk+1))
	if err != nil {
		log.WithError(err).Warn("Failed to read audio body")
		respondVoiceError(c, http.StatusBadRequest, "failed to read audio")
		return
	}
	if len(audio) == 0 {
		respondVoiceError(c, http.StatusBadRequest, "no audio data")
		return
	}
	if len(audio) > maxAudioChunk {
		respondVoiceError(c, http.StatusRequestEntityTooLarge, "audio chunk too large")
		return
	}

	if err := h.voiceService.SendAudio(c.Request.Context(), sessionID, audio); err != nil {
		if errors.Is(err, models.ErrSessionNotFound) {
			respondVoiceError(c, http.StatusBadRequest, "invalid session")
			return
		}
		if errors.Is(err, models.ErrSessionClosed) {
			respondVoiceError(c, http.StatusGone, "session is no longer listening")
			return
		}
		log.WithError(err).Error("Failed to forward audio")
		respondVoiceError(c, http.StatusInternalServerError, "failed to forward audio")
		return
	}
	c.JSON(http.StatusOK, VoiceResponse{Success: true, Message: "ok"})
}

// @Summary Get the current transcript
// @Tags Voice
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} TranscriptResponse
// @Failure 404 {object} VoiceResponse "Session not found"
// @Router /voice/transcript/{session_id} [get]
func (h *Handler) getTranscript(c *gin.Context) {
	snapshot, err := h.voiceService.GetTranscript(c.Param("session_id"))
	if err != nil {
		respondVoiceError(c, errorStatus(err), "session not found")
		return
	}
	c.JSON(http.StatusOK, TranscriptResponse{
		Success:           true,
		Transcript:        snapshot.Transcript,
		InterimTranscript: snapshot.InterimTranscript,
		IsListening:       snapshot.IsListening,
	})
}

// @Summary Stop a voice session
// @Description Close the transcription stream and return the final transcript
// @Tags Voice
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} TranscriptResponse
// @Failure 404 {object} VoiceResponse "Session not found"
// @Router /voice/stop/{session_id} [post]
func (h *Handler) stopVoice(c *gin.Context) {
	sessionID := c.Param("session_id")
	snapshot, err := h.voiceService.StopSession(c.Request.Context(), sessionID)
	if err != nil {
		h.logger.WithField("method", "stopVoice").WithField("session_id", sessionID).WithError(err).Warn("Failed to stop voice session")
		respondVoiceError(c, errorStatus(err), "session not found")
		return
	}
	c.JSON(http.StatusOK, TranscriptResponse{
		Success:           true,
		Transcript:        snapshot.Transcript,
		InterimTranscript: snapshot.InterimTranscript,
		IsListening:       false,
	})
}

// writeSSE пишет одно событие в формате "data: <json>"
func writeSSE(w io.Writer, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "data: %s\n\n", data)
	return err
}

func setSSEHeaders(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
}

// @Summary Stream transcript fragments
// @Description Server-sent events with every transcript fragment of all sessions, or of one session when session_id is set. An empty object is sent as keepalive.
// @Tags Voice
// @Produce text/event-stream
// @Param session_id query string false "Only this session"
// @Success 200 {object} models.TranscriptEvent
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /voice/transcript-stream [get]
func (h *Handler) transcriptStream(c *gin.Context) {
	ctx, cancel := h.streamContext(c)
	defer cancel()
	log := h.logger.WithField("method", "transcriptStream")

	events, err := h.voiceService.SubscribeTranscripts(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to subscribe to transcripts")
		respondError(c, err)
		return
	}

	filter := c.Query("session_id")
	keepAlive := h.cfg.TranscriptKeepAlive
	if keepAlive <= 0 {
		keepAlive = time.Second
	}
	ticker := time.NewTicker(keepAlive)
	defer ticker.Stop()

	setSSEHeaders(c)
	c.Status(http.StatusOK)
	c.Writer.Flush()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			if filter != "" && event.SessionID != filter {
				continue
			}
			if err := writeSSE(c.Writer, event); err != nil {
				log.WithError(err).Debug("Transcript stream client gone")
				return
			}
		case <-ticker.C:
			if _, err := io.WriteString(c.Writer, "data: {}\n\n"); err != nil {
				return
			}
		}
		c.Writer.Flush()
	}
}

// @Summary Process an emergency call
// @Description Classify the transcript, create a confirmed incident, store the four agent responses and queue a dispatch webhook for emergencies
// @Tags Analysis
// @Accept json
// @Produce json
// @Param call body ProcessEmergencyRequest true "Call transcript"
// @Success 200 {object} ProcessEmergencyResponse
// @Failure 400 {object} VoiceResponse "No transcript provided"
// @Failure 500 {object} VoiceResponse "Error processing emergency call"
// @Router /voice/process-emergency [post]
func (h *Handler) processEmergency(c *gin.Context) {
	analysis, ok := h.runAnalysis(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, ModelToProcessEmergencyResponse(analysis))
}

// @Summary Process an emergency call with a staged reveal
// @Description Same as /voice/process-emergency, but the result is streamed as server-sent events stage by stage
// @Tags Analysis
// @Accept json
// @Produce text/event-stream
// @Param call body ProcessEmergencyRequest true "Call transcript"
// @Success 200 {object} models.StageEvent
// @Failure 400 {object} VoiceResponse "No transcript provided"
// @Failure 500 {object} VoiceResponse "Error processing emergency call"
// @Router /voice/process-emergency/stream [post]
func (h *Handler) processEmergencyStream(c *gin.Context) {
	analysis, ok := h.runAnalysis(c)
	if !ok {
		return
	}

	setSSEHeaders(c)
	c.Status(http.StatusOK)
	c.Writer.Flush()

	ctx, cancel := h.streamContext(c)
	defer cancel()

	err := h.analysisService.RevealAnalysis(ctx, analysis, func(event models.StageEvent) error {
		if err := writeSSE(c.Writer, event); err != nil {
			return err
		}
		c.Writer.Flush()
		return nil
	})
	if err != nil {
		// заголовки уже отправлены, остается только записать в лог
		h.logger.WithField("method", "processEmergencyStream").WithError(err).Warn("Staged reveal interrupted")
	}
}

func (h *Handler) runAnalysis(c *gin.Context) (*models.EmergencyAnalysis, bool) {
	log := h.logger.WithField("method", "processEmergency")

	var input ProcessEmergencyRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		respondVoiceError(c, http.StatusBadRequest, "invalid request body")
		return nil, false
	}

	analysis, err := h.analysisService.ProcessEmergency(c.Request.Context(), input.Transcript, input.SessionID)
	if err != nil {
		log.WithError(err).Error("Failed to process emergency")
		status := errorStatus(err)
		msg := "error processing emergency call"
		if status != http.StatusInternalServerError {
			msg = unwrapDomain(err).Error()
		}
		respondVoiceError(c, status, msg)
		return nil, false
	}
	return analysis, true
}
