package v1

import (
	"time"

	"github.com/shenikar/responder_ai/internal/models"
)

// CreateIncidentRequest DTO для создания инцидента
// @Description DTO для создания инцидента
type CreateIncidentRequest struct {
	Type        string   `json:"type" validate:"required,min=2,max=100"`
	Severity    string   `json:"severity" validate:"required,oneof=low medium high critical"`
	Confidence  float64  `json:"confidence" validate:"gte=0,lte=1"`
	Latitude    *float64 `json:"latitude" validate:"required,latitude"`
	Longitude   *float64 `json:"longitude" validate:"required,longitude"`
	Address     string   `json:"address,omitempty" validate:"max=255"`
	Description string   `json:"description,omitempty"`
}

// UpdateIncidentRequest DTO для обновления инцидента
// @Description DTO для обновления инцидента
type UpdateIncidentRequest struct {
	Type        string   `json:"type" validate:"required,min=2,max=100"`
	Severity    string   `json:"severity" validate:"required,oneof=low medium high critical"`
	Confidence  float64  `json:"confidence" validate:"gte=0,lte=1"`
	Status      string   `json:"status" validate:"required,oneof=candidate confirmed resolved"`
	Latitude    *float64 `json:"latitude" validate:"required,latitude"`
	Longitude   *float64 `json:"longitude" validate:"required,longitude"`
	Address     string   `json:"address,omitempty" validate:"max=255"`
	Description string   `json:"description,omitempty"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID                string          `json:"id"`
	Type              string          `json:"type"`
	Severity          string          `json:"severity"`
	Confidence        float64         `json:"confidence"`
	ConfidencePercent int             `json:"confidence_percent"`
	Status            string          `json:"status"`
	Location          models.Location `json:"location"`
	Description       string          `json:"description,omitempty"`
	Timestamp         time.Time       `json:"timestamp"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// NearbyResourcesRequest параметры поиска ресурсов рядом с точкой
type NearbyResourcesRequest struct {
	Lat    *float64 `form:"lat" validate:"required,latitude"`
	Lng    *float64 `form:"lng" validate:"required,longitude"`
	Radius int      `form:"radius" validate:"omitempty,gt=0,lte=50000"`
}

// MapDataResponse DTO с маркерами для карты
// @Description DTO с маркерами для карты
type MapDataResponse struct {
	Incidents []*IncidentResponse `json:"incidents"`
	Resources []*models.Resource  `json:"resources"`
}

// CreateAgentRequest DTO для регистрации агента
// @Description DTO для регистрации агента
type CreateAgentRequest struct {
	ID           string   `json:"id" validate:"required,min=2,max=32"`
	Name         string   `json:"name" validate:"required,min=2,max=255"`
	Type         string   `json:"type" validate:"required,max=100"`
	Location     string   `json:"location,omitempty" validate:"max=255"`
	Latitude     float64  `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude    float64  `json:"longitude,omitempty" validate:"omitempty,longitude"`
	Capabilities []string `json:"capabilities,omitempty"`
}

// UpdateAgentStatusRequest DTO для смены статуса агента
// @Description DTO для смены статуса агента
type UpdateAgentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active idle responding offline"`
}

// AgentResponse DTO для ответа с информацией об агенте
// @Description DTO для ответа с информацией об агенте
type AgentResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Type              string    `json:"type"`
	Status            string    `json:"status"`
	Location          string    `json:"location"`
	LastActivity      time.Time `json:"last_activity"`
	LastActivityLabel string    `json:"last_activity_label"`
	Coordinates       []float64 `json:"coordinates"`
	Capabilities      []string  `json:"capabilities"`
}

// CreateLogRequest DTO для записи в журнал
// @Description DTO для записи в журнал
type CreateLogRequest struct {
	Agent      string  `json:"agent" validate:"required,max=100"`
	Action     string  `json:"action" validate:"required"`
	Confidence float64 `json:"confidence" validate:"gte=0,lte=1"`
	Outcome    string  `json:"outcome,omitempty" validate:"max=100"`
}

// LogResponse DTO записи журнала
// @Description DTO записи журнала
type LogResponse struct {
	ID                string    `json:"id"`
	Timestamp         time.Time `json:"timestamp"`
	Agent             string    `json:"agent"`
	Action            string    `json:"action"`
	Confidence        float64   `json:"confidence"`
	ConfidencePercent int       `json:"confidence_percent"`
	Outcome           string    `json:"outcome"`
}

// CreateAgentMessageRequest DTO для сохранения ответа агента
// @Description DTO для сохранения ответа агента
type CreateAgentMessageRequest struct {
	IncidentID   string  `json:"incident_id,omitempty"`
	Agent        string  `json:"agent" validate:"required,max=100"`
	AgentName    string  `json:"agent_name,omitempty" validate:"max=100"`
	Stage        int     `json:"stage" validate:"gte=0"`
	Message      string  `json:"message" validate:"required"`
	Status       string  `json:"status,omitempty" validate:"omitempty,oneof=analyzing typing complete"`
	Confidence   float64 `json:"confidence" validate:"gte=0,lte=1"`
	ResponseType string  `json:"response_type,omitempty" validate:"max=50"`
}

// AgentMessageResponse DTO ответа агента-анализатора
// @Description DTO ответа агента-анализатора
type AgentMessageResponse struct {
	ID                string    `json:"id"`
	IncidentID        string    `json:"incident_id,omitempty"`
	Agent             string    `json:"agent"`
	AgentName         string    `json:"agent_name"`
	Stage             int       `json:"stage"`
	Message           string    `json:"message"`
	Status            string    `json:"status"`
	Confidence        float64   `json:"confidence"`
	ConfidencePercent int       `json:"confidence_percent"`
	ResponseType      string    `json:"response_type"`
	Timestamp         time.Time `json:"timestamp"`
}

// StartVoiceRequest DTO для запуска голосовой сессии, тело необязательно
type StartVoiceRequest struct {
	SessionID string `json:"session_id" validate:"omitempty,max=128"`
}

// VoiceResponse DTO общего ответа голосовых маршрутов
// @Description DTO общего ответа голосовых маршрутов
type VoiceResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

// TranscriptResponse DTO текущей расшифровки
// @Description DTO текущей расшифровки
type TranscriptResponse struct {
	Success           bool   `json:"success"`
	Transcript        string `json:"transcript"`
	InterimTranscript string `json:"interim_transcript"`
	IsListening       bool   `json:"is_listening"`
}

// ProcessEmergencyRequest DTO для обработки расшифровки вызова
// @Description DTO для обработки расшифровки вызова
type ProcessEmergencyRequest struct {
	Transcript string `json:"transcript"`
	SessionID  string `json:"session_id,omitempty"`
}

// ProcessEmergencyResponse DTO результата обработки вызова
// @Description DTO результата обработки вызова
type ProcessEmergencyResponse struct {
	Success      bool                    `json:"success"`
	SessionID    string                  `json:"session_id,omitempty"`
	IsEmergency  bool                    `json:"is_emergency"`
	Incident     *IncidentResponse       `json:"incident"`
	Agents       []*AgentMessageResponse `json:"agents"`
	IncidentData models.IncidentData     `json:"incident_data"`
	AIResponse   string                  `json:"ai_response"`
}

// HealthResponse DTO проверки состояния
// @Description DTO проверки состояния
type HealthResponse struct {
	Status         string `json:"status"`
	VoiceEnabled   bool   `json:"voice_enabled"`
	ActiveSessions int    `json:"active_sessions"`
}

// SettingsResponse DTO настроек панели
// @Description DTO настроек панели
type SettingsResponse struct {
	SystemName       string `json:"system_name"`
	MapProviderToken string `json:"map_provider_token"`
	VoiceEnabled     bool   `json:"voice_enabled"`
	ArchiveEnabled   bool   `json:"archive_enabled"`
}

// DashboardResponse DTO сводки для главной страницы
// @Description DTO сводки для главной страницы
type DashboardResponse struct {
	Agents    *models.AgentStatusCounts `json:"agents"`
	Incidents *models.IncidentStats     `json:"incidents"`
	Logs      *models.LogStats          `json:"logs"`
}
