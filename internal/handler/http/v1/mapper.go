package v1

import (
	"time"

	"github.com/shenikar/responder_ai/internal/models"
	"github.com/shenikar/responder_ai/internal/service"
)

// DTOToIncidentModel преобразует DTO создания/обновления в доменную модель.
// Используем одну функцию, так как поля совпадают.
func DTOToIncidentModel(dto any) *models.Incident {
	switch v := dto.(type) {
	case CreateIncidentRequest:
		return &models.Incident{
			Type:        v.Type,
			Severity:    v.Severity,
			Confidence:  v.Confidence,
			Location:    models.Location{Lat: deref(v.Latitude), Lng: deref(v.Longitude), Address: v.Address},
			Description: v.Description,
		}
	case UpdateIncidentRequest:
		return &models.Incident{
			Type:        v.Type,
			Severity:    v.Severity,
			Confidence:  v.Confidence,
			Status:      v.Status,
			Location:    models.Location{Lat: deref(v.Latitude), Lng: deref(v.Longitude), Address: v.Address},
			Description: v.Description,
		}
	}
	return nil
}

// deref возвращает 0 для отсутствующей координаты; обязательность проверяет валидатор
func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:                model.ID,
		Type:              model.Type,
		Severity:          model.Severity,
		Confidence:        model.Confidence,
		ConfidencePercent: models.ConfidencePercent(model.Confidence),
		Status:            model.Status,
		Location:          model.Location,
		Description:       model.Description,
		Timestamp:         model.Timestamp,
		UpdatedAt:         model.UpdatedAt,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(models []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

func DTOToAgentModel(dto CreateAgentRequest) *models.Agent {
	return &models.Agent{
		ID:           dto.ID,
		Name:         dto.Name,
		Type:         dto.Type,
		Location:     dto.Location,
		Latitude:     dto.Latitude,
		Longitude:    dto.Longitude,
		Capabilities: dto.Capabilities,
	}
}

// ModelToAgentResponse преобразует агента; координаты в порядке [lng, lat], как ждет карта
func ModelToAgentResponse(model *models.Agent, now time.Time) *AgentResponse {
	capabilities := model.Capabilities
	if capabilities == nil {
		capabilities = []string{}
	}
	return &AgentResponse{
		ID:                model.ID,
		Name:              model.Name,
		Type:              model.Type,
		Status:            model.Status,
		Location:          model.Location,
		LastActivity:      model.LastActivity,
		LastActivityLabel: service.RelativeTime(now, model.LastActivity),
		Coordinates:       []float64{model.Longitude, model.Latitude},
		Capabilities:      capabilities,
	}
}

func ModelsToAgentResponses(agents []*models.Agent, now time.Time) []*AgentResponse {
	responses := make([]*AgentResponse, len(agents))
	for i, agent := range agents {
		responses[i] = ModelToAgentResponse(agent, now)
	}
	return responses
}

func DTOToLogModel(dto CreateLogRequest) *models.LogEntry {
	return &models.LogEntry{
		Agent:      dto.Agent,
		Action:     dto.Action,
		Confidence: dto.Confidence,
		Outcome:    dto.Outcome,
	}
}

func ModelsToLogResponses(logs []*models.LogEntry) []*LogResponse {
	responses := make([]*LogResponse, len(logs))
	for i, entry := range logs {
		responses[i] = &LogResponse{
			ID:                entry.ID,
			Timestamp:         entry.Timestamp,
			Agent:             entry.Agent,
			Action:            entry.Action,
			Confidence:        entry.Confidence,
			ConfidencePercent: models.ConfidencePercent(entry.Confidence),
			Outcome:           entry.Outcome,
		}
	}
	return responses
}

func DTOToAgentMessageModel(dto CreateAgentMessageRequest) *models.AgentResponse {
	return &models.AgentResponse{
		IncidentID:   dto.IncidentID,
		Agent:        dto.Agent,
		AgentName:    dto.AgentName,
		Stage:        dto.Stage,
		Message:      dto.Message,
		Status:       dto.Status,
		Confidence:   dto.Confidence,
		ResponseType: dto.ResponseType,
	}
}

func ModelToAgentMessageResponse(model *models.AgentResponse) *AgentMessageResponse {
	return &AgentMessageResponse{
		ID:                model.ID,
		IncidentID:        model.IncidentID,
		Agent:             model.Agent,
		AgentName:         model.AgentName,
		Stage:             model.Stage,
		Message:           model.Message,
		Status:            model.Status,
		Confidence:        model.Confidence,
		ConfidencePercent: models.ConfidencePercent(model.Confidence),
		ResponseType:      model.ResponseType,
		Timestamp:         model.Timestamp,
	}
}

func ModelsToAgentMessageResponses(responses []*models.AgentResponse) []*AgentMessageResponse {
	out := make([]*AgentMessageResponse, len(responses))
	for i, r := range responses {
		out[i] = ModelToAgentMessageResponse(r)
	}
	return out
}

// ModelToProcessEmergencyResponse собирает ответ на обработку вызова
func ModelToProcessEmergencyResponse(analysis *models.EmergencyAnalysis) *ProcessEmergencyResponse {
	return &ProcessEmergencyResponse{
		Success:      true,
		SessionID:    analysis.SessionID,
		IsEmergency:  analysis.IsEmergency,
		Incident:     ModelToIncidentResponse(analysis.Incident),
		Agents:       ModelsToAgentMessageResponses(analysis.Agents),
		IncidentData: analysis.IncidentData,
		AIResponse:   analysis.AIResponse,
	}
}
