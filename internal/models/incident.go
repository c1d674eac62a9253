package models

import (
	"time"
)

// Степень серьезности инцидента
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// Статусы инцидента
const (
	IncidentStatusCandidate = "candidate"
	IncidentStatusConfirmed = "confirmed"
	IncidentStatusResolved  = "resolved"
)

// Location - точка на карте с адресом
type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

type Incident struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Severity    string    `json:"severity"`
	Confidence  float64   `json:"confidence"`
	Status      string    `json:"status"`
	Location    Location  `json:"location"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IncidentStats - агрегированная статистика по инцидентам
type IncidentStats struct {
	Total            int            `json:"total"`
	Active           int            `json:"active"`
	ResolvedInWindow int            `json:"resolved_in_window"`
	BySeverity       map[string]int `json:"by_severity"`
}

// MapData - данные для отрисовки маркеров на карте
type MapData struct {
	Incidents []*Incident `json:"incidents"`
	Resources []*Resource `json:"resources"`
}

func IsValidSeverity(s string) bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

func IsValidIncidentStatus(s string) bool {
	switch s {
	case IncidentStatusCandidate, IncidentStatusConfirmed, IncidentStatusResolved:
		return true
	}
	return false
}

// IsActive сообщает, требует ли инцидент внимания
func (i *Incident) IsActive() bool {
	return i.Status == IncidentStatusCandidate || i.Status == IncidentStatusConfirmed
}
