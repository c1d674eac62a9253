package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/responder_ai/internal/models"
	"github.com/shenikar/responder_ai/internal/service"
)

const agentColumns = `
	id,
	name,
	type,
	status,
	location,
	last_activity,
	latitude,
	longitude,
	capabilities,
	created_at,
	updated_at`

type AgentRepository struct {
	db *pgxpool.Pool
}

func NewAgentRepository(db *pgxpool.Pool) service.AgentRepository {
	return &AgentRepository{db: db}
}

func scanAgent(row pgx.Row) (*models.Agent, error) {
	agent := &models.Agent{}
	err := row.Scan(
		&agent.ID,
		&agent.Name,
		&agent.Type,
		&agent.Status,
		&agent.Location,
		&agent.LastActivity,
		&agent.Latitude,
		&agent.Longitude,
		&agent.Capabilities,
		&agent.CreatedAt,
		&agent.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return agent, nil
}

// List возвращает всех агентов
func (r *AgentRepository) List(ctx context.Context) ([]*models.Agent, error) {
	rows, err := r.db.Query(ctx, `SELECT `+agentColumns+` FROM agents ORDER BY id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	defer rows.Close()

	agents := make([]*models.Agent, 0)
	for rows.Next() {
		agent, err := scanAgent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan agent row: %w", err)
		}
		agents = append(agents, agent)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return agents, nil
}

func (r *AgentRepository) GetByID(ctx context.Context, id string) (*models.Agent, error) {
	agent, err := scanAgent(r.db.QueryRow(ctx, `SELECT `+agentColumns+` FROM agents WHERE id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("agent with id %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get agent by id: %w", err)
	}
	return agent, nil
}

func (r *AgentRepository) Create(ctx context.Context, agent *models.Agent) error {
	if agent.Capabilities == nil {
		agent.Capabilities = []string{}
	}
	query := `
		INSERT INTO agents (id, name, type, status, location, last_activity, latitude, longitude, capabilities)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		agent.ID,
		agent.Name,
		agent.Type,
		agent.Status,
		agent.Location,
		agent.LastActivity,
		agent.Latitude,
		agent.Longitude,
		agent.Capabilities,
	).Scan(&agent.CreatedAt, &agent.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("agent %s: %w", agent.ID, models.ErrDuplicateID)
		}
		return fmt.Errorf("failed to create agent: %w", err)
	}
	return nil
}

// UpdateStatus меняет статус и время последней активности
func (r *AgentRepository) UpdateStatus(ctx context.Context, id, status string, at time.Time) error {
	query := `
		UPDATE agents SET
			status = $1,
			last_activity = $2,
			updated_at = $2
		WHERE id = $3;
	`
	cmdTag, err := r.db.Exec(ctx, query, status, at, id)
	if err != nil {
		return fmt.Errorf("failed to update agent status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("agent with id %s not found for update: %w", id, models.ErrNotFound)
	}
	return nil
}
