package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/shenikar/responder_ai/internal/models"
)

var logsHeader = []string{"Timestamp", "Agent", "Action", "Confidence", "Outcome"}

// LogsFilename - имя файла выгрузки журнала
func LogsFilename(now time.Time) string {
	return fmt.Sprintf("responderai-logs-%s.csv", now.UTC().Format(time.RFC3339))
}

// WriteLogsCSV пишет заголовок и по строке на запись журнала, возвращает число строк данных
func WriteLogsCSV(w io.Writer, logs []*models.LogEntry) (int, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(logsHeader); err != nil {
		return 0, fmt.Errorf("export: write header: %w", err)
	}

	rows := 0
	for _, entry := range logs {
		record := []string{
			entry.Timestamp.UTC().Format(time.RFC3339),
			entry.Agent,
			entry.Action,
			strconv.FormatFloat(entry.Confidence, 'f', -1, 64),
			entry.Outcome,
		}
		if err := cw.Write(record); err != nil {
			return rows, fmt.Errorf("export: write row %d: %w", rows+1, err)
		}
		rows++
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return rows, fmt.Errorf("export: flush: %w", err)
	}
	return rows, nil
}
