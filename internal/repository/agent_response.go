package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/responder_ai/internal/models"
	"github.com/shenikar/responder_ai/internal/service"
)

const agentResponseColumns = `
	id,
	COALESCE(incident_id, ''),
	agent,
	agent_name,
	stage,
	message,
	status,
	confidence,
	response_type,
	created_at`

type AgentResponseRepository struct {
	db *pgxpool.Pool
}

func NewAgentResponseRepository(db *pgxpool.Pool) service.AgentResponseRepository {
	return &AgentResponseRepository{db: db}
}

// List возвращает ответы агентов, новые первыми
func (r *AgentResponseRepository) List(ctx context.Context) ([]*models.AgentResponse, error) {
	query := `SELECT ` + agentResponseColumns + ` FROM agent_responses ORDER BY created_at DESC, stage;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list agent responses: %w", err)
	}
	return collectAgentResponses(rows)
}

// ListByIncident возвращает ответы по инциденту в порядке этапов
func (r *AgentResponseRepository) ListByIncident(ctx context.Context, incidentID string) ([]*models.AgentResponse, error) {
	query := `SELECT ` + agentResponseColumns + ` FROM agent_responses WHERE incident_id = $1 ORDER BY stage, created_at;`
	rows, err := r.db.Query(ctx, query, incidentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list incident responses: %w", err)
	}
	return collectAgentResponses(rows)
}

func (r *AgentResponseRepository) Create(ctx context.Context, response *models.AgentResponse) error {
	return insertAgentResponse(ctx, r.db, response)
}

// CreateCall сохраняет инцидент вызова и ответы этапов в одной транзакции
func (r *AgentResponseRepository) CreateCall(ctx context.Context, incident *models.Incident, responses []*models.AgentResponse) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin call transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := insertIncident(ctx, tx, incident); err != nil {
		return err
	}
	for _, response := range responses {
		if err := insertAgentResponse(ctx, tx, response); err != nil {
			return err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit call transaction: %w", err)
	}
	return nil
}

func insertAgentResponse(ctx context.Context, db dbtx, response *models.AgentResponse) error {
	query := `
		INSERT INTO agent_responses (id, incident_id, agent, agent_name, stage, message, status, confidence, response_type, created_at)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := db.Exec(ctx, query,
		response.ID,
		response.IncidentID,
		response.Agent,
		response.AgentName,
		response.Stage,
		response.Message,
		response.Status,
		response.Confidence,
		response.ResponseType,
		response.Timestamp,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("incident %s: %w", response.IncidentID, models.ErrNotFound)
		}
		return fmt.Errorf("failed to create agent response: %w", err)
	}
	return nil
}

func collectAgentResponses(rows pgx.Rows) ([]*models.AgentResponse, error) {
	defer rows.Close()

	responses := make([]*models.AgentResponse, 0)
	for rows.Next() {
		response := &models.AgentResponse{}
		err := rows.Scan(
			&response.ID,
			&response.IncidentID,
			&response.Agent,
			&response.AgentName,
			&response.Stage,
			&response.Message,
			&response.Status,
			&response.Confidence,
			&response.ResponseType,
			&response.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan agent response row: %w", err)
		}
		responses = append(responses, response)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return responses, nil
}
