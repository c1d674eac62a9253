package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shenikar/responder_ai/internal/config"
	"github.com/shenikar/responder_ai/internal/models"
	"github.com/shenikar/responder_ai/internal/service/mocks"
	"github.com/shenikar/responder_ai/internal/webhook"
	webhook_mocks "github.com/shenikar/responder_ai/internal/webhook/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type analysisMocks struct {
	responses *mocks.MockAgentResponseRepository
	logs      *mocks.MockLogRepository
	publisher *webhook_mocks.MockWebhookPublisher
}

func newTestAnalysisService(t *testing.T, cfg *config.Config) (*analysisService, analysisMocks) {
	ctrl := gomock.NewController(t)
	m := analysisMocks{
		responses: mocks.NewMockAgentResponseRepository(ctrl),
		logs:      mocks.NewMockLogRepository(ctrl),
		publisher: webhook_mocks.NewMockWebhookPublisher(ctrl),
	}
	if cfg == nil {
		cfg = &config.Config{}
	}

	service := NewAnalysisService(m.responses, m.logs, newTestLogger(), cfg, m.publisher, nil)
	return service.(*analysisService), m
}

func TestIsEmergency(t *testing.T) {
	assert.True(t, IsEmergency("There is a FIRE in the kitchen"))
	assert.True(t, IsEmergency("please help me"))
	assert.True(t, IsEmergency("car accident on the highway"))
	assert.True(t, IsEmergency("this is an Emergency"))
	assert.False(t, IsEmergency("what are your opening hours"))
}

func TestFormatCoordinates(t *testing.T) {
	assert.Equal(t, "37.7749° N, 122.4194° W", FormatCoordinates(37.7749, -122.4194))
	assert.Equal(t, "33.8688° S, 151.2093° E", FormatCoordinates(-33.8688, 151.2093))
}

func TestProcessEmergency_Emergency(t *testing.T) {
	service, m := newTestAnalysisService(t, nil)
	ctx := context.Background()
	transcript := "Help! There was a car accident at Jefferson and 7th, two people are hurt. " + strings.Repeat("x", 200)

	var stored *models.Incident
	var stages []int
	m.responses.EXPECT().
		CreateCall(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, inc *models.Incident, responses []*models.AgentResponse) error {
			stored = inc
			for _, r := range responses {
				assert.Equal(t, inc.ID, r.IncidentID)
				assert.Equal(t, models.ResponseStatusComplete, r.Status)
				stages = append(stages, r.Stage)
			}
			return nil
		}).Times(1)
	m.logs.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(4)

	m.publisher.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(ctx context.Context, event webhook.DispatchEvent) {
			assert.Equal(t, webhook.ReasonEmergencyCall, event.Reason)
			assert.Equal(t, emergencyUnits, event.RecommendedUnits)
		}).Return(nil).Times(1)

	analysis, err := service.ProcessEmergency(ctx, transcript, "session_1")

	require.NoError(t, err)
	assert.True(t, analysis.IsEmergency)
	assert.Equal(t, "session_1", analysis.SessionID)
	assert.Equal(t, []int{0, 1, 2, 3}, stages)

	incident := analysis.Incident
	assert.Same(t, stored, incident)
	assert.Equal(t, "Medical Emergency", incident.Type)
	assert.Equal(t, models.SeverityHigh, incident.Severity)
	assert.Equal(t, models.IncidentStatusConfirmed, incident.Status)
	assert.GreaterOrEqual(t, incident.Confidence, 0.85)
	assert.LessOrEqual(t, incident.Confidence, 1.0)
	assert.Len(t, []rune(incident.Description), 100)

	require.Len(t, analysis.Agents, 4)
	assert.Equal(t, "High priority emergency detected.", analysis.Agents[2].Message)
	assert.Equal(t, "Emergency units dispatched, ETA 5 minutes.", analysis.Agents[3].Message)
	for i, r := range analysis.Agents {
		assert.Equal(t, stageScripts[i].agent, r.Agent)
		assert.Equal(t, stageScripts[i].confidence, r.Confidence)
	}

	assert.Equal(t, emergencyUnits, analysis.IncidentData.RecommendedUnits)
	assert.Equal(t, "5-7 minutes", analysis.IncidentData.ETA)
	assert.Equal(t, callAddress, analysis.IncidentData.Location)
	assert.Contains(t, analysis.IncidentData.Coordinates, "° N")
	assert.Contains(t, analysis.AIResponse, "Help is on the way")
}

func TestProcessEmergency_RoutineInquiry(t *testing.T) {
	service, m := newTestAnalysisService(t, nil)
	ctx := context.Background()

	m.responses.EXPECT().CreateCall(ctx, gomock.Any(), gomock.Any()).Return(nil).Times(1)
	m.logs.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(4)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	analysis, err := service.ProcessEmergency(ctx, "I would like to ask about a noise complaint", "")

	require.NoError(t, err)
	assert.False(t, analysis.IsEmergency)
	assert.Equal(t, "General Inquiry", analysis.Incident.Type)
	assert.Equal(t, models.SeverityLow, analysis.Incident.Severity)
	assert.Equal(t, "Low priority inquiry detected.", analysis.Agents[2].Message)
	assert.Equal(t, "Routing to appropriate department.", analysis.Agents[3].Message)
	assert.Empty(t, analysis.IncidentData.RecommendedUnits)
	assert.Equal(t, routineAIResponse, analysis.AIResponse)
}

func TestProcessEmergency_EmptyTranscript(t *testing.T) {
	service, m := newTestAnalysisService(t, nil)

	m.responses.EXPECT().CreateCall(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := service.ProcessEmergency(context.Background(), "   ", "session_1")

	assert.ErrorIs(t, err, models.ErrEmptyTranscript)
}

func TestProcessEmergency_StoreFails(t *testing.T) {
	service, m := newTestAnalysisService(t, nil)
	ctx := context.Background()

	// транзакция откатилась: ни журнала, ни уведомления о выезде
	m.responses.EXPECT().CreateCall(ctx, gomock.Any(), gomock.Any()).Return(errors.New("db down")).Times(1)
	m.logs.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	analysis, err := service.ProcessEmergency(ctx, "fire!", "")

	assert.ErrorContains(t, err, "could not store emergency call")
	assert.Nil(t, analysis)
}

func TestProcessEmergency_RetriesDuplicateID(t *testing.T) {
	service, m := newTestAnalysisService(t, nil)
	ctx := context.Background()

	var ids []string
	m.responses.EXPECT().
		CreateCall(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, inc *models.Incident, responses []*models.AgentResponse) error {
			ids = append(ids, inc.ID)
			for _, r := range responses {
				assert.Equal(t, inc.ID, r.IncidentID)
			}
			if len(ids) == 1 {
				return models.ErrDuplicateID
			}
			return nil
		}).Times(2)
	m.logs.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(4)

	analysis, err := service.ProcessEmergency(ctx, "noise complaint", "")

	require.NoError(t, err)
	require.Len(t, ids, 2)
	assert.NotEqual(t, ids[0], ids[1])
	assert.Equal(t, ids[1], analysis.Incident.ID)
	for _, r := range analysis.Agents {
		assert.Equal(t, ids[1], r.IncidentID)
	}
}

func testAnalysis() *models.EmergencyAnalysis {
	agents := make([]*models.AgentResponse, 0, len(stageScripts))
	for i, script := range stageScripts {
		agents = append(agents, &models.AgentResponse{Agent: script.agent, Stage: i, Message: script.complete})
	}
	return &models.EmergencyAnalysis{
		IsEmergency:  true,
		Agents:       agents,
		IncidentData: models.IncidentData{IncidentType: "Medical Emergency", ETA: emergencyETA},
		AIResponse:   emergencyAIResponse,
	}
}

func TestRevealAnalysis_Order(t *testing.T) {
	service, _ := newTestAnalysisService(t, nil)

	var events []models.StageEvent
	err := service.RevealAnalysis(context.Background(), testAnalysis(), func(e models.StageEvent) error {
		events = append(events, e)
		return nil
	})
	require.NoError(t, err)

	var got []string
	for _, e := range events {
		if e.Type == models.StageEventAgent {
			got = append(got, e.Status)
			continue
		}
		got = append(got, e.Type)
	}
	assert.Equal(t, []string{
		"analyzing", "typing", "complete",
		"analyzing", "typing", "complete",
		"analyzing", "typing", "complete",
		"analyzing", "typing", "complete",
		"incident", "ai_response", "done",
	}, got)

	assert.Equal(t, 0, events[0].Stage)
	assert.Equal(t, stageScripts[0].analyzing, events[0].Message)
	assert.Empty(t, events[1].Message)
	assert.Equal(t, stageScripts[0].complete, events[2].Message)
	assert.Equal(t, stageScripts[3].analyzing, events[9].Message)
	assert.Equal(t, 3, events[11].Stage)
	require.NotNil(t, events[12].Incident)
	assert.Equal(t, "Medical Emergency", events[12].Incident.IncidentType)
	assert.Equal(t, emergencyAIResponse, events[13].Text)
}

func TestRevealAnalysis_Delays(t *testing.T) {
	cfg := &config.Config{
		AnalysisTypingDelay:  5 * time.Millisecond,
		AnalysisRevealDelay:  5 * time.Millisecond,
		AnalysisSummaryDelay: 5 * time.Millisecond,
	}
	service, _ := newTestAnalysisService(t, cfg)

	start := time.Now()
	count := 0
	err := service.RevealAnalysis(context.Background(), testAnalysis(), func(models.StageEvent) error {
		count++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 15, count)
	// 4 этапа по две паузы, пауза перед сводкой и перед ответом
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestRevealAnalysis_Cancel(t *testing.T) {
	cfg := &config.Config{
		AnalysisTypingDelay: time.Hour,
	}
	service, _ := newTestAnalysisService(t, cfg)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var events []models.StageEvent
	err := service.RevealAnalysis(ctx, testAnalysis(), func(e models.StageEvent) error {
		events = append(events, e)
		cancel()
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, events, 1)
	assert.Equal(t, models.ResponseStatusAnalyzing, events[0].Status)
}

func TestRevealAnalysis_EmitError(t *testing.T) {
	service, _ := newTestAnalysisService(t, nil)
	clientGone := errors.New("client gone")

	calls := 0
	err := service.RevealAnalysis(context.Background(), testAnalysis(), func(models.StageEvent) error {
		calls++
		if calls == 3 {
			return clientGone
		}
		return nil
	})

	assert.ErrorIs(t, err, clientGone)
	assert.Equal(t, 3, calls)
}

func TestCreateResponse(t *testing.T) {
	service, m := newTestAnalysisService(t, nil)
	ctx := context.Background()
	response := &models.AgentResponse{Agent: "geo", Message: "Location confirmed", Confidence: 0.9}

	m.responses.EXPECT().Create(ctx, response).Return(nil).Times(1)

	require.NoError(t, service.CreateResponse(ctx, response))
	assert.NotEmpty(t, response.ID)
	assert.Equal(t, models.ResponseStatusComplete, response.Status)
	assert.Equal(t, "analysis", response.ResponseType)

	err := service.CreateResponse(ctx, &models.AgentResponse{Agent: "geo", Status: "thinking"})
	assert.ErrorIs(t, err, models.ErrInvalidStatus)
}

func TestRevealAnalysis_AIResponseWaitsAfterIncident(t *testing.T) {
	cfg := &config.Config{AnalysisSummaryDelay: 20 * time.Millisecond}
	service, _ := newTestAnalysisService(t, cfg)

	var incidentAt, answerAt time.Time
	err := service.RevealAnalysis(context.Background(), testAnalysis(), func(e models.StageEvent) error {
		switch e.Type {
		case models.StageEventIncident:
			incidentAt = time.Now()
		case models.StageEventAIResponse:
			answerAt = time.Now()
		}
		return nil
	})

	require.NoError(t, err)
	assert.GreaterOrEqual(t, answerAt.Sub(incidentAt), 20*time.Millisecond)
}

func TestListIncidentResponses(t *testing.T) {
	service, m := newTestAnalysisService(t, nil)
	ctx := context.Background()
	expected := []*models.AgentResponse{{ID: "r1", IncidentID: "INC-00000001", Stage: 0}}

	m.responses.EXPECT().ListByIncident(ctx, "INC-00000001").Return(expected, nil).Times(1)

	responses, err := service.ListIncidentResponses(ctx, "INC-00000001")

	require.NoError(t, err)
	assert.Equal(t, expected, responses)
}
