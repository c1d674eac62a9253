package models

import "time"

// Статусы агента
const (
	AgentStatusActive     = "active"
	AgentStatusIdle       = "idle"
	AgentStatusResponding = "responding"
	AgentStatusOffline    = "offline"
)

// AgentStatuses перечисляет статусы в порядке отображения
var AgentStatuses = []string{
	AgentStatusActive,
	AgentStatusResponding,
	AgentStatusIdle,
	AgentStatusOffline,
}

// Agent - экипаж или подразделение экстренных служб
type Agent struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	Status       string    `json:"status"`
	Location     string    `json:"location"`
	LastActivity time.Time `json:"last_activity"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	Capabilities []string  `json:"capabilities"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AgentFilter - параметры фильтрации списка агентов
type AgentFilter struct {
	Status string
	Query  string
}

// AgentStatusCounts - количество агентов по статусам
type AgentStatusCounts struct {
	All        int `json:"all"`
	Active     int `json:"active"`
	Responding int `json:"responding"`
	Idle       int `json:"idle"`
	Offline    int `json:"offline"`
}

func IsValidAgentStatus(s string) bool {
	for _, status := range AgentStatuses {
		if status == s {
			return true
		}
	}
	return false
}

// IsOnDuty - агент активен или едет на вызов
func (a *Agent) IsOnDuty() bool {
	return a.Status == AgentStatusActive || a.Status == AgentStatusResponding
}
