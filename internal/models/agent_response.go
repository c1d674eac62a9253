package models

import "time"

// Теги агентов-анализаторов в порядке их работы
const (
	StageAgentIntake     = "intake"
	StageAgentGeo        = "geo"
	StageAgentSeverity   = "severity"
	StageAgentDispatcher = "dispatcher"
)

// Статусы ответа агента
const (
	ResponseStatusAnalyzing = "analyzing"
	ResponseStatusTyping    = "typing"
	ResponseStatusComplete  = "complete"
)

// AgentResponse - ответ одного этапа анализа вызова
type AgentResponse struct {
	ID           string    `json:"id"`
	IncidentID   string    `json:"incident_id"`
	Agent        string    `json:"agent"`
	AgentName    string    `json:"agent_name"`
	Stage        int       `json:"stage"`
	Message      string    `json:"message"`
	Status       string    `json:"status"`
	Confidence   float64   `json:"confidence"`
	ResponseType string    `json:"response_type"`
	Timestamp    time.Time `json:"timestamp"`
}

func IsValidResponseStatus(s string) bool {
	switch s {
	case ResponseStatusAnalyzing, ResponseStatusTyping, ResponseStatusComplete:
		return true
	}
	return false
}
