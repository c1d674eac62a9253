package models

import "time"

// LogEntry - запись журнала действий агентов
type LogEntry struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Agent      string    `json:"agent"`
	Action     string    `json:"action"`
	Confidence float64   `json:"confidence"`
	Outcome    string    `json:"outcome"`
}

// Поля и направления сортировки журнала
const (
	LogSortTimestamp = "timestamp"
	LogSortAgent     = "agent"
	SortAsc          = "asc"
	SortDesc         = "desc"
)

type LogSort struct {
	Field     string
	Direction string
}

// DefaultLogSort - новые записи первыми
var DefaultLogSort = LogSort{Field: LogSortTimestamp, Direction: SortDesc}

// LogStats - сводка по журналу
type LogStats struct {
	Total                int        `json:"total"`
	AvgConfidencePercent int        `json:"avg_confidence_percent"`
	ActiveAgents         int        `json:"active_agents"`
	LatestActivity       *time.Time `json:"latest_activity,omitempty"`
	LatestActivityLabel  string     `json:"latest_activity_label"`
}

// LogArchive - выгруженный в объектное хранилище CSV
type LogArchive struct {
	Key  string `json:"key"`
	URL  string `json:"url"`
	Rows int    `json:"rows"`
}
