package v1

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/shenikar/responder_ai/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListAgents_PassesFilter(t *testing.T) {
	_, m, router := newTestHandler(t)

	// Ожидания
	m.agents.EXPECT().
		ListAgents(gomock.Any(), models.AgentFilter{Status: models.AgentStatusActive, Query: "north"}).
		Return([]*models.Agent{{
			ID:           "AGT-001",
			Name:         "Unit Alpha",
			Status:       models.AgentStatusActive,
			Location:     "North Beach",
			LastActivity: time.Now().Add(-5*time.Minute - 30*time.Second),
			Latitude:     37.8,
			Longitude:    -122.41,
		}}, nil)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/agents?status=active&q=north", nil)

	// Проверки
	require.Equal(t, http.StatusOK, w.Code)
	var resp []AgentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "5m ago", resp[0].LastActivityLabel)
	assert.Equal(t, []float64{-122.41, 37.8}, resp[0].Coordinates)
	assert.Equal(t, []string{}, resp[0].Capabilities)
}

func TestListAgents_InvalidStatus(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.agents.EXPECT().
		ListAgents(gomock.Any(), models.AgentFilter{Status: "sleeping"}).
		Return(nil, fmt.Errorf("service: %w", models.ErrInvalidStatus))

	w := makeRequest(router, http.MethodGet, "/api/v1/agents?status=sleeping", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAgentCounts(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.agents.EXPECT().StatusCounts(gomock.Any()).Return(&models.AgentStatusCounts{
		All: 6, Active: 2, Responding: 2, Idle: 1, Offline: 1,
	}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/agents/counts", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"all":6,"active":2,"responding":2,"idle":1,"offline":1}`, w.Body.String())
}

func TestGetAgent_NotFound(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.agents.EXPECT().GetAgent(gomock.Any(), "AGT-404").Return(nil, fmt.Errorf("wrap: %w", models.ErrNotFound))

	w := makeRequest(router, http.MethodGet, "/api/v1/agents/AGT-404", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateAgent(t *testing.T) {
	testCases := []struct {
		name         string
		body         CreateAgentRequest
		setupMock    func(m *testMocks)
		expectedCode int
	}{
		{
			name: "created offline",
			body: CreateAgentRequest{ID: "AGT-007", Name: "Unit Seven", Type: "Ambulance", Latitude: 37.7, Longitude: -122.4},
			setupMock: func(m *testMocks) {
				m.agents.EXPECT().CreateAgent(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, agent *models.Agent) error {
						assert.Equal(t, "AGT-007", agent.ID)
						agent.Status = models.AgentStatusOffline
						agent.LastActivity = time.Now()
						return nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "duplicate id",
			body: CreateAgentRequest{ID: "AGT-001", Name: "Unit Alpha", Type: "Patrol"},
			setupMock: func(m *testMocks) {
				m.agents.EXPECT().CreateAgent(gomock.Any(), gomock.Any()).
					Return(fmt.Errorf("agent AGT-001: %w", models.ErrDuplicateID))
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:         "missing name",
			body:         CreateAgentRequest{ID: "AGT-008", Type: "Patrol"},
			setupMock:    func(m *testMocks) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "latitude out of range",
			body:         CreateAgentRequest{ID: "AGT-009", Name: "Unit Nine", Type: "Patrol", Latitude: 120},
			setupMock:    func(m *testMocks) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, m, router := newTestHandler(t)
			tc.setupMock(m)

			w := makeRequest(router, http.MethodPost, "/api/v1/agents", jsonBody(t, tc.body), authHeader)

			assert.Equal(t, tc.expectedCode, w.Code)
		})
	}
}

func TestUpdateAgentStatus_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.agents.EXPECT().
		UpdateAgentStatus(gomock.Any(), "AGT-002", models.AgentStatusResponding).
		Return(&models.Agent{ID: "AGT-002", Status: models.AgentStatusResponding, LastActivity: time.Now()}, nil)

	w := makeRequest(router, http.MethodPut, "/api/v1/agents/AGT-002/status",
		jsonBody(t, UpdateAgentStatusRequest{Status: models.AgentStatusResponding}), authHeader)

	require.Equal(t, http.StatusOK, w.Code)
	var resp AgentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.AgentStatusResponding, resp.Status)
	assert.Equal(t, "Just now", resp.LastActivityLabel)
}

func TestUpdateAgentStatus_InvalidStatus(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodPut, "/api/v1/agents/AGT-002/status",
		jsonBody(t, UpdateAgentStatusRequest{Status: "busy"}), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateAgentStatus_NotFound(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.agents.EXPECT().
		UpdateAgentStatus(gomock.Any(), "AGT-404", models.AgentStatusIdle).
		Return(nil, fmt.Errorf("service: %w", models.ErrNotFound))

	w := makeRequest(router, http.MethodPut, "/api/v1/agents/AGT-404/status",
		jsonBody(t, UpdateAgentStatusRequest{Status: models.AgentStatusIdle}), authHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
