package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/responder_ai/internal/models"
	"github.com/shenikar/responder_ai/internal/service"
)

type LogRepository struct {
	db *pgxpool.Pool
}

func NewLogRepository(db *pgxpool.Pool) service.LogRepository {
	return &LogRepository{db: db}
}

// List возвращает весь журнал, порядок задает сервис
func (r *LogRepository) List(ctx context.Context) ([]*models.LogEntry, error) {
	query := `
		SELECT id, created_at, agent, action, confidence, outcome
		FROM logs;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}
	defer rows.Close()

	logs := make([]*models.LogEntry, 0)
	for rows.Next() {
		entry := &models.LogEntry{}
		if err := rows.Scan(&entry.ID, &entry.Timestamp, &entry.Agent, &entry.Action, &entry.Confidence, &entry.Outcome); err != nil {
			return nil, fmt.Errorf("failed to scan log row: %w", err)
		}
		logs = append(logs, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return logs, nil
}

func (r *LogRepository) Create(ctx context.Context, entry *models.LogEntry) error {
	query := `
		INSERT INTO logs (id, created_at, agent, action, confidence, outcome)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.db.Exec(ctx, query,
		entry.ID,
		entry.Timestamp,
		entry.Agent,
		entry.Action,
		entry.Confidence,
		entry.Outcome,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("log %s: %w", entry.ID, models.ErrDuplicateID)
		}
		return fmt.Errorf("failed to create log entry: %w", err)
	}
	return nil
}
