package service

//go:generate mockgen -source=analysis.go -destination=mocks/mock_analysis.go -package=mocks

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/responder_ai/internal/config"
	"github.com/shenikar/responder_ai/internal/metrics"
	"github.com/shenikar/responder_ai/internal/models"
	"github.com/shenikar/responder_ai/internal/webhook"
	"github.com/sirupsen/logrus"
)

// AgentResponseRepository определяет контракт для хранения ответов агентов
type AgentResponseRepository interface {
	List(ctx context.Context) ([]*models.AgentResponse, error)
	ListByIncident(ctx context.Context, incidentID string) ([]*models.AgentResponse, error)
	Create(ctx context.Context, response *models.AgentResponse) error
	CreateCall(ctx context.Context, incident *models.Incident, responses []*models.AgentResponse) error
}

// AnalysisService определяет контракт для обработки экстренных вызовов
type AnalysisService interface {
	ProcessEmergency(ctx context.Context, transcript, sessionID string) (*models.EmergencyAnalysis, error)
	RevealAnalysis(ctx context.Context, analysis *models.EmergencyAnalysis, emit func(event models.StageEvent) error) error
	ListResponses(ctx context.Context) ([]*models.AgentResponse, error)
	ListIncidentResponses(ctx context.Context, incidentID string) ([]*models.AgentResponse, error)
	CreateResponse(ctx context.Context, response *models.AgentResponse) error
}

const callAddress = "123 Market Street, San Francisco, CA"

var emergencyKeywords = []string{"emergency", "help", "fire", "accident"}

// stageScript - фиксированные тексты одного этапа
type stageScript struct {
	agent      string
	name       string
	analyzing  string
	complete   string
	routine    string
	confidence float64
}

var stageScripts = []stageScript{
	{
		agent:      models.StageAgentIntake,
		name:       "Intake Agent",
		analyzing:  "Emergency call received. Analyzing your report for key information...",
		complete:   "Call received and transcript processed. Extracting key information...",
		confidence: 0.95,
	},
	{
		agent:      models.StageAgentGeo,
		name:       "Geo Locator",
		analyzing:  "Determining your location and nearest emergency units...",
		complete:   "Location identified and geocoded successfully.",
		confidence: 0.92,
	},
	{
		agent:      models.StageAgentSeverity,
		name:       "Severity Analyzer",
		analyzing:  "Evaluating emergency severity level...",
		complete:   "High priority emergency detected.",
		routine:    "Low priority inquiry detected.",
		confidence: 0.88,
	},
	{
		agent:      models.StageAgentDispatcher,
		name:       "Dispatcher",
		analyzing:  "Preparing dispatch coordination...",
		complete:   "Emergency units dispatched, ETA 5 minutes.",
		routine:    "Routing to appropriate department.",
		confidence: 0.97,
	},
}

var emergencyUnits = []string{"Medic 2", "Engine 5", "Police Unit 12", "Backup Ambulance"}

const (
	emergencyETA        = "5-7 minutes"
	emergencyAIResponse = "Thank you for reporting. Emergency services have been notified. Help is on the way. " +
		"Medic 2 and Engine 5 are responding with an estimated arrival time of 5 to 7 minutes. " +
		"Please stay on the line and keep the injured safe."
	routineAIResponse = "Thank you for contacting us. Your request has been logged and routed to the appropriate department. " +
		"If this becomes an emergency, please tell us right away."
)

// IsEmergency ищет в расшифровке ключевые слова экстренного вызова
func IsEmergency(transcript string) bool {
	lower := strings.ToLower(transcript)
	for _, keyword := range emergencyKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// FormatCoordinates форматирует точку как "37.7749° N, 122.4194° W"
func FormatCoordinates(lat, lng float64) string {
	ns, ew := "N", "E"
	if lat < 0 {
		ns = "S"
	}
	if lng < 0 {
		ew = "W"
	}
	return fmt.Sprintf("%.4f° %s, %.4f° %s", math.Abs(lat), ns, math.Abs(lng), ew)
}

// truncateRunes обрезает строку до n символов
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

type analysisService struct {
	responses AgentResponseRepository
	logs      LogRepository
	publisher webhook.WebhookPublisher
	metrics   *metrics.Metrics
	logger    *logrus.Logger
	cfg       *config.Config
	now       func() time.Time
}

func NewAnalysisService(
	responses AgentResponseRepository,
	logs LogRepository,
	logger *logrus.Logger,
	cfg *config.Config,
	publisher webhook.WebhookPublisher,
	m *metrics.Metrics,
) AnalysisService {
	return &analysisService{
		responses: responses,
		logs:      logs,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
		cfg:       cfg,
		now:       time.Now,
	}
}

// ProcessEmergency классифицирует вызов, сохраняет инцидент и ответы этапов
func (s *analysisService) ProcessEmergency(ctx context.Context, transcript, sessionID string) (*models.EmergencyAnalysis, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "analysis",
		"method":     "ProcessEmergency",
		"session_id": sessionID,
	})

	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		return nil, fmt.Errorf("service: %w", models.ErrEmptyTranscript)
	}

	emergency := IsEmergency(transcript)
	log = log.WithField("emergency", emergency)
	log.Info("Processing emergency call")

	incident := &models.Incident{
		Type:        "General Inquiry",
		Severity:    models.SeverityLow,
		Confidence:  0.85 + rand.Float64()*0.15,
		Status:      models.IncidentStatusConfirmed,
		Location:    jitteredLocation(callAddress),
		Description: truncateRunes(transcript, 100),
	}
	if emergency {
		incident.Type = "Medical Emergency"
		incident.Severity = models.SeverityHigh
	}

	now := s.now().UTC()
	agents := make([]*models.AgentResponse, 0, len(stageScripts))
	for i, script := range stageScripts {
		message := script.complete
		if !emergency && script.routine != "" {
			message = script.routine
		}
		agents = append(agents, &models.AgentResponse{
			ID:           uuid.NewString(),
			Agent:        script.agent,
			AgentName:    script.name,
			Stage:        i,
			Message:      message,
			Status:       models.ResponseStatusComplete,
			Confidence:   script.confidence,
			ResponseType: "analysis",
			Timestamp:    now,
		})
	}

	// инцидент и ответы этапов пишутся одной транзакцией
	if err := createWithFreshID(ctx, callWriter{repo: s.responses, responses: agents}, incident); err != nil {
		log.WithError(err).Error("Failed to store emergency call")
		return nil, fmt.Errorf("service: could not store emergency call: %w", err)
	}
	s.metrics.IncidentCreated("voice")
	s.metrics.AnalysisProcessed(emergency)

	for _, response := range agents {
		entry := &models.LogEntry{
			ID:         uuid.NewString(),
			Timestamp:  now,
			Agent:      response.AgentName,
			Action:     fmt.Sprintf("%s for %s", response.Message, incident.ID),
			Confidence: response.Confidence,
			Outcome:    "Completed",
		}
		if err := s.logs.Create(ctx, entry); err != nil {
			log.WithError(err).Warn("Failed to record stage in activity log")
		}
	}

	analysis := &models.EmergencyAnalysis{
		SessionID:   sessionID,
		IsEmergency: emergency,
		Incident:    incident,
		Agents:      agents,
		IncidentData: models.IncidentData{
			IncidentType: incident.Type,
			Location:     incident.Location.Address,
			Coordinates:  FormatCoordinates(incident.Location.Lat, incident.Location.Lng),
			Severity:     incident.Severity,
		},
		AIResponse: routineAIResponse,
	}

	if emergency {
		analysis.IncidentData.RecommendedUnits = append([]string(nil), emergencyUnits...)
		analysis.IncidentData.ETA = emergencyETA
		analysis.AIResponse = emergencyAIResponse

		event := webhook.NewDispatchEvent(incident, webhook.ReasonEmergencyCall, analysis.IncidentData.RecommendedUnits)
		if err := s.publisher.Publish(ctx, event); err != nil {
			log.WithError(err).Error("Failed to publish dispatch event")
		}
	}

	log.WithField("incident_id", incident.ID).Info("Emergency call processed")
	return analysis, nil
}

// RevealAnalysis проигрывает этапы анализа с паузами: analyzing, typing, затем complete для каждого этапа,
// после них incident, ai_response и done
func (s *analysisService) RevealAnalysis(ctx context.Context, analysis *models.EmergencyAnalysis, emit func(event models.StageEvent) error) error {
	for _, response := range analysis.Agents {
		if err := emit(models.StageEvent{
			Type:    models.StageEventAgent,
			Stage:   response.Stage,
			Agent:   response.Agent,
			Status:  models.ResponseStatusAnalyzing,
			Message: analyzingMessage(response.Agent),
		}); err != nil {
			return err
		}

		if err := wait(ctx, s.cfg.AnalysisTypingDelay); err != nil {
			return err
		}
		if err := emit(models.StageEvent{
			Type:   models.StageEventAgent,
			Stage:  response.Stage,
			Agent:  response.Agent,
			Status: models.ResponseStatusTyping,
		}); err != nil {
			return err
		}

		if err := wait(ctx, s.cfg.AnalysisRevealDelay); err != nil {
			return err
		}
		if err := emit(models.StageEvent{
			Type:    models.StageEventAgent,
			Stage:   response.Stage,
			Agent:   response.Agent,
			Status:  models.ResponseStatusComplete,
			Message: response.Message,
		}); err != nil {
			return err
		}
	}

	if err := wait(ctx, s.cfg.AnalysisSummaryDelay); err != nil {
		return err
	}
	data := analysis.IncidentData
	if err := emit(models.StageEvent{Type: models.StageEventIncident, Incident: &data}); err != nil {
		return err
	}
	if err := wait(ctx, s.cfg.AnalysisSummaryDelay); err != nil {
		return err
	}
	if err := emit(models.StageEvent{Type: models.StageEventAIResponse, Text: analysis.AIResponse}); err != nil {
		return err
	}
	return emit(models.StageEvent{Type: models.StageEventDone})
}

func (s *analysisService) ListResponses(ctx context.Context) ([]*models.AgentResponse, error) {
	responses, err := s.responses.List(ctx)
	if err != nil {
		s.logger.WithError(err).WithField("method", "ListResponses").Error("Failed to list agent responses")
		return nil, fmt.Errorf("service: could not list agent responses: %w", err)
	}
	return responses, nil
}

func (s *analysisService) ListIncidentResponses(ctx context.Context, incidentID string) ([]*models.AgentResponse, error) {
	responses, err := s.responses.ListByIncident(ctx, incidentID)
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"method":      "ListIncidentResponses",
			"incident_id": incidentID,
		}).Error("Failed to list agent responses")
		return nil, fmt.Errorf("service: could not list incident responses: %w", err)
	}
	return responses, nil
}

// CreateResponse сохраняет ответ агента, пришедший извне
func (s *analysisService) CreateResponse(ctx context.Context, response *models.AgentResponse) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "analysis",
		"method":  "CreateResponse",
		"agent":   response.Agent,
	})

	if response.Status == "" {
		response.Status = models.ResponseStatusComplete
	}
	if !models.IsValidResponseStatus(response.Status) {
		return fmt.Errorf("service: response status %q: %w", response.Status, models.ErrInvalidStatus)
	}
	if response.ResponseType == "" {
		response.ResponseType = "analysis"
	}
	response.ID = uuid.NewString()
	response.Timestamp = s.now().UTC()

	if err := s.responses.Create(ctx, response); err != nil {
		log.WithError(err).Error("Failed to store agent response")
		return fmt.Errorf("service: could not store agent response: %w", err)
	}
	log.WithField("response_id", response.ID).Info("Agent response stored")
	return nil
}

// analyzingMessage возвращает текст, который этап показывает до начала ответа
func analyzingMessage(agent string) string {
	for _, script := range stageScripts {
		if script.agent == agent {
			return script.analyzing
		}
	}
	return ""
}

// callWriter пишет инцидент вызова вместе с ответами этапов
type callWriter struct {
	repo      AgentResponseRepository
	responses []*models.AgentResponse
}

func (w callWriter) Create(ctx context.Context, incident *models.Incident) error {
	for _, response := range w.responses {
		response.IncidentID = incident.ID
	}
	return w.repo.CreateCall(ctx, incident, w.responses)
}

// wait ждет d или отмены контекста
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
