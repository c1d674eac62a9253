package models

// IncidentData - сводка по вызову для панели диспетчера
type IncidentData struct {
	IncidentType     string   `json:"incidentType"`
	Location         string   `json:"location"`
	Coordinates      string   `json:"coordinates"`
	Severity         string   `json:"severity"`
	RecommendedUnits []string `json:"recommendedUnits"`
	ETA              string   `json:"eta"`
}

// EmergencyAnalysis - итог обработки экстренного вызова
type EmergencyAnalysis struct {
	SessionID    string           `json:"session_id,omitempty"`
	IsEmergency  bool             `json:"is_emergency"`
	Incident     *Incident        `json:"incident"`
	Agents       []*AgentResponse `json:"agents"`
	IncidentData IncidentData     `json:"incident_data"`
	AIResponse   string           `json:"ai_response"`
}

// Типы событий пошагового показа анализа
const (
	StageEventAgent      = "agent"
	StageEventIncident   = "incident"
	StageEventAIResponse = "ai_response"
	StageEventDone       = "done"
)

// StageEvent - один кадр пошагового показа анализа
type StageEvent struct {
	Type     string        `json:"type"`
	Stage    int           `json:"stage"`
	Agent    string        `json:"agent,omitempty"`
	Status   string        `json:"status,omitempty"`
	Message  string        `json:"message,omitempty"`
	Incident *IncidentData `json:"incident_data,omitempty"`
	Text     string        `json:"text,omitempty"`
}
