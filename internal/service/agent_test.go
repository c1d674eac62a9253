package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shenikar/responder_ai/internal/models"
	"github.com/shenikar/responder_ai/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAgentService(t *testing.T) (*agentService, *mocks.MockAgentRepository, *mocks.MockLogRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockAgentRepository(ctrl)
	logMock := mocks.NewMockLogRepository(ctrl)

	service := NewAgentService(repoMock, logMock, newTestLogger())
	return service.(*agentService), repoMock, logMock
}

func sampleAgents() []*models.Agent {
	return []*models.Agent{
		{ID: "POL-117", Name: "Police Unit Charlie", Type: "Law Enforcement", Status: models.AgentStatusIdle},
		{ID: "EMT-001", Name: "Medical Response Unit Alpha", Type: "Emergency Medical Technician", Status: models.AgentStatusResponding},
		{ID: "FIRE-023", Name: "Fire Response Team Beta", Type: "Fire Department", Status: models.AgentStatusActive},
		{ID: "EMT-042", Name: "Medical Response Unit Delta", Type: "Emergency Medical Technician", Status: models.AgentStatusActive},
		{ID: "FIRE-088", Name: "Fire Response Team Echo", Type: "Fire Department", Status: models.AgentStatusOffline},
		{ID: "POL-203", Name: "Police Unit Foxtrot", Type: "Law Enforcement", Status: models.AgentStatusResponding},
	}
}

func TestFilterAgents_StatusSubset(t *testing.T) {
	agents := sampleAgents()

	for _, status := range models.AgentStatuses {
		filtered := FilterAgents(agents, models.AgentFilter{Status: status})

		var expected []*models.Agent
		for _, agent := range agents {
			if agent.Status == status {
				expected = append(expected, agent)
			}
		}
		assert.ElementsMatch(t, expected, filtered, "status %s", status)
	}

	assert.Len(t, FilterAgents(agents, models.AgentFilter{Status: "all"}), len(agents))
	assert.Len(t, FilterAgents(agents, models.AgentFilter{}), len(agents))
}

func TestFilterAgents_Query(t *testing.T) {
	agents := sampleAgents()

	byName := FilterAgents(agents, models.AgentFilter{Query: "charlie"})
	require.Len(t, byName, 1)
	assert.Equal(t, "POL-117", byName[0].ID)

	byType := FilterAgents(agents, models.AgentFilter{Query: "fire dep", Status: models.AgentStatusActive})
	require.Len(t, byType, 1)
	assert.Equal(t, "FIRE-023", byType[0].ID)

	byID := FilterAgents(agents, models.AgentFilter{Query: "emt-"})
	assert.Len(t, byID, 2)

	assert.Empty(t, FilterAgents(agents, models.AgentFilter{Query: "helicopter"}))
}

func TestCountAgentStatuses(t *testing.T) {
	counts := CountAgentStatuses(sampleAgents())

	assert.Equal(t, &models.AgentStatusCounts{All: 6, Active: 2, Responding: 2, Idle: 1, Offline: 1}, counts)
	assert.Equal(t, counts.All, counts.Active+counts.Responding+counts.Idle+counts.Offline)
}

func TestListAgents_SortedByID(t *testing.T) {
	service, repoMock, _ := newTestAgentService(t)
	ctx := context.Background()

	repoMock.EXPECT().List(ctx).Return(sampleAgents(), nil).Times(1)

	agents, err := service.ListAgents(ctx, models.AgentFilter{Status: "Responding"})

	require.NoError(t, err)
	require.Len(t, agents, 2)
	assert.Equal(t, "EMT-001", agents[0].ID)
	assert.Equal(t, "POL-203", agents[1].ID)
}

func TestListAgents_UnknownStatus(t *testing.T) {
	service, repoMock, _ := newTestAgentService(t)

	repoMock.EXPECT().List(gomock.Any()).Times(0)

	_, err := service.ListAgents(context.Background(), models.AgentFilter{Status: "sleeping"})

	assert.ErrorIs(t, err, models.ErrInvalidStatus)
}

func TestCreateAgent_StartsOffline(t *testing.T) {
	service, repoMock, _ := newTestAgentService(t)
	ctx := context.Background()
	agent := &models.Agent{ID: "EMT-077", Name: "Medical Response Unit Golf", Type: "Emergency Medical Technician", Status: models.AgentStatusActive}

	repoMock.EXPECT().Create(ctx, agent).Return(nil).Times(1)

	err := service.CreateAgent(ctx, agent)

	require.NoError(t, err)
	assert.Equal(t, models.AgentStatusOffline, agent.Status)
	assert.False(t, agent.LastActivity.IsZero())
}

func TestUpdateAgentStatus_WritesLog(t *testing.T) {
	service, repoMock, logMock := newTestAgentService(t)
	ctx := context.Background()
	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }
	existing := &models.Agent{ID: "POL-117", Status: models.AgentStatusIdle, Location: "North Precinct"}

	repoMock.EXPECT().GetByID(ctx, "POL-117").Return(existing, nil).Times(1)
	repoMock.EXPECT().UpdateStatus(ctx, "POL-117", models.AgentStatusResponding, now).Return(nil).Times(1)
	logMock.EXPECT().
		Create(ctx, gomock.Any()).
		Do(func(ctx context.Context, entry *models.LogEntry) {
			assert.Equal(t, "POL-117", entry.Agent)
			assert.Contains(t, entry.Action, "Status changed to responding")
			assert.Equal(t, now, entry.Timestamp)
		}).Return(nil).Times(1)

	agent, err := service.UpdateAgentStatus(ctx, "POL-117", models.AgentStatusResponding)

	require.NoError(t, err)
	assert.Equal(t, models.AgentStatusResponding, agent.Status)
	assert.Equal(t, now, agent.LastActivity)
}

func TestUpdateAgentStatus_LogFailureIsNotFatal(t *testing.T) {
	service, repoMock, logMock := newTestAgentService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetByID(ctx, "EMT-001").Return(&models.Agent{ID: "EMT-001"}, nil).Times(1)
	repoMock.EXPECT().UpdateStatus(ctx, "EMT-001", models.AgentStatusIdle, gomock.Any()).Return(nil).Times(1)
	logMock.EXPECT().Create(ctx, gomock.Any()).Return(fmt.Errorf("db down")).Times(1)

	_, err := service.UpdateAgentStatus(ctx, "EMT-001", models.AgentStatusIdle)

	require.NoError(t, err)
}

func TestUpdateAgentStatus_Invalid(t *testing.T) {
	service, repoMock, _ := newTestAgentService(t)

	repoMock.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)

	_, err := service.UpdateAgentStatus(context.Background(), "EMT-001", "busy")

	assert.ErrorIs(t, err, models.ErrInvalidStatus)
}

func TestUpdateAgentStatus_NotFound(t *testing.T) {
	service, repoMock, _ := newTestAgentService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetByID(ctx, "EMT-999").Return(nil, models.ErrNotFound).Times(1)

	_, err := service.UpdateAgentStatus(ctx, "EMT-999", models.AgentStatusIdle)

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.ErrorContains(t, err, "not found for update")
}
