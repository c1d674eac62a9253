package v1

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/shenikar/responder_ai/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListLogs(t *testing.T) {
	_, m, router := newTestHandler(t)
	ts := time.Date(2024, 1, 15, 14, 32, 0, 0, time.UTC)
	m.logs.EXPECT().
		ListLogs(gomock.Any(), models.LogSort{Field: "agent", Direction: "asc"}).
		Return([]*models.LogEntry{{ID: "l1", Timestamp: ts, Agent: "Intake Agent", Action: "Call received", Confidence: 0.96, Outcome: "Processed"}}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/logs?sort=agent&order=asc", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []LogResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, 96, resp[0].ConfidencePercent)
	assert.True(t, ts.Equal(resp[0].Timestamp))
}

func TestListLogs_InvalidSort(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.logs.EXPECT().
		ListLogs(gomock.Any(), models.LogSort{Field: "outcome"}).
		Return(nil, fmt.Errorf("service: %w", models.ErrInvalidSort))

	w := makeRequest(router, http.MethodGet, "/api/v1/logs?sort=outcome", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"invalid sort"}`, w.Body.String())
}

func TestCreateLog(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.logs.EXPECT().
		CreateLog(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *models.LogEntry) error {
			assert.Equal(t, "Dispatcher", entry.Agent)
			entry.ID = "generated"
			entry.Timestamp = time.Now()
			return nil
		})

	reqBody := CreateLogRequest{Agent: "Dispatcher", Action: "Units routed", Confidence: 0.97, Outcome: "Dispatched"}
	w := makeRequest(router, http.MethodPost, "/api/v1/logs", jsonBody(t, reqBody), authHeader)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp LogResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "generated", resp.ID)
	assert.Equal(t, 97, resp.ConfidencePercent)
}

func TestCreateLog_ConfidenceOutOfRange(t *testing.T) {
	_, _, router := newTestHandler(t)
	reqBody := CreateLogRequest{Agent: "Dispatcher", Action: "Units routed", Confidence: 1.5}

	w := makeRequest(router, http.MethodPost, "/api/v1/logs", jsonBody(t, reqBody), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportLogs(t *testing.T) {
	_, m, router := newTestHandler(t)
	csv := "Timestamp,Agent,Action,Confidence,Outcome\n2024-01-15T14:32:00Z,Intake Agent,Call received,0.95,Processed\n"
	m.logs.EXPECT().
		ExportCSV(gomock.Any(), gomock.Any(), models.LogSort{}).
		DoAndReturn(func(_ context.Context, w io.Writer, _ models.LogSort) (int, error) {
			_, err := io.WriteString(w, csv)
			return 1, err
		})

	w := makeRequest(router, http.MethodGet, "/api/v1/logs/export", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment; filename=\"responderai-logs-")
	assert.Equal(t, "1", w.Header().Get("X-Export-Rows"))
	assert.Equal(t, csv, w.Body.String())
}

func TestExportLogs_InvalidSort(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.logs.EXPECT().
		ExportCSV(gomock.Any(), gomock.Any(), models.LogSort{Field: "timestamp", Direction: "sideways"}).
		Return(0, fmt.Errorf("service: %w", models.ErrInvalidSort))

	w := makeRequest(router, http.MethodGet, "/api/v1/logs/export?sort=timestamp&order=sideways", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, w.Header().Get("Content-Disposition"))
}

func TestArchiveLogs(t *testing.T) {
	testCases := []struct {
		name         string
		archive      *models.LogArchive
		err          error
		expectedCode int
	}{
		{
			name:         "uploaded",
			archive:      &models.LogArchive{Key: "exports/responderai-logs.csv", URL: "https://example.test/x", Rows: 5},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "disabled",
			err:          fmt.Errorf("service: %w", models.ErrArchiveDisabled),
			expectedCode: http.StatusServiceUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, m, router := newTestHandler(t)
			m.logs.EXPECT().ArchiveCSV(gomock.Any(), models.LogSort{}).Return(tc.archive, tc.err)

			w := makeRequest(router, http.MethodPost, "/api/v1/logs/export/archive", nil, authHeader)

			assert.Equal(t, tc.expectedCode, w.Code)
		})
	}
}

func TestGetLogStats(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.logs.EXPECT().GetLogStats(gomock.Any()).Return(&models.LogStats{
		Total: 5, AvgConfidencePercent: 91, ActiveAgents: 4, LatestActivityLabel: "2m ago",
	}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/logs/stats", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"total":5,"avg_confidence_percent":91,"active_agents":4,"latest_activity_label":"2m ago"}`, w.Body.String())
}

func TestCreateAgentResponse(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.analysis.EXPECT().
		CreateResponse(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.AgentResponse) error {
			assert.Equal(t, "INC-1", r.IncidentID)
			r.ID = "resp-1"
			r.Status = models.ResponseStatusComplete
			return nil
		})

	reqBody := CreateAgentMessageRequest{IncidentID: "INC-1", Agent: "geo", Stage: 2, Message: "Location confirmed", Confidence: 0.92}
	w := makeRequest(router, http.MethodPost, "/api/v1/agent-responses", jsonBody(t, reqBody), authHeader)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp AgentMessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "resp-1", resp.ID)
	assert.Equal(t, 92, resp.ConfidencePercent)
}

func TestCreateAgentResponse_InvalidStatus(t *testing.T) {
	_, _, router := newTestHandler(t)
	reqBody := CreateAgentMessageRequest{Agent: "geo", Message: "x", Status: "pending"}

	w := makeRequest(router, http.MethodPost, "/api/v1/agent-responses", jsonBody(t, reqBody), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateAgentResponse_UnknownIncident(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.analysis.EXPECT().CreateResponse(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("service: could not store agent response: incident INC-404: %w", models.ErrNotFound))

	reqBody := CreateAgentMessageRequest{IncidentID: "INC-404", Agent: "geo", Message: "Location confirmed"}
	w := makeRequest(router, http.MethodPost, "/api/v1/agent-responses", jsonBody(t, reqBody), authHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"not found"}`, w.Body.String())
}

func TestListAgentResponses(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.analysis.EXPECT().ListResponses(gomock.Any()).Return([]*models.AgentResponse{{ID: "a"}, {ID: "b"}}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/agent-responses", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []AgentMessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}
