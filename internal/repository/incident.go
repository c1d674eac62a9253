package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/responder_ai/internal/models"
	"github.com/shenikar/responder_ai/internal/service"
)

const incidentCacheTTL = 5 * time.Minute

const incidentColumns = `
	id,
	type,
	severity,
	confidence,
	status,
	ST_Y(location::geometry) as latitude,
	ST_X(location::geometry) as longitude,
	address,
	description,
	created_at,
	updated_at`

type IncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client) service.IncidentRepository {
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
	}
}

func scanIncident(row pgx.Row) (*models.Incident, error) {
	incident := &models.Incident{}
	err := row.Scan(
		&incident.ID,
		&incident.Type,
		&incident.Severity,
		&incident.Confidence,
		&incident.Status,
		&incident.Location.Lat,
		&incident.Location.Lng,
		&incident.Location.Address,
		&incident.Description,
		&incident.Timestamp,
		&incident.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return incident, nil
}

func collectIncidents(rows pgx.Rows) ([]*models.Incident, error) {
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}

// dbtx - общая часть пула и транзакции
type dbtx interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func insertIncident(ctx context.Context, db dbtx, incident *models.Incident) error {
	query := `
		INSERT INTO incidents (id, type, severity, confidence, status, location, address, description)
		VALUES ($1, $2, $3, $4, $5, ST_SetSRID(ST_MakePoint($6, $7), 4326), $8, $9)
		RETURNING created_at, updated_at;
	`
	err := db.QueryRow(ctx, query,
		incident.ID,
		incident.Type,
		incident.Severity,
		incident.Confidence,
		incident.Status,
		incident.Location.Lng,
		incident.Location.Lat,
		incident.Location.Address,
		incident.Description,
	).Scan(&incident.Timestamp, &incident.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("incident %s: %w", incident.ID, models.ErrDuplicateID)
		}
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// Create создает новую запись об инциденте в бд
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	return insertIncident(ctx, r.db, incident)
}

// GetByID возвращает инцидент по его id
func (r *IncidentRepository) GetByID(ctx context.Context, id string) (*models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE id = $1;`

	incident, err := scanIncident(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident with id %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

func (r *IncidentRepository) Update(ctx context.Context, incident *models.Incident) error {
	query := `
		UPDATE incidents SET
			type = $1,
			severity = $2,
			confidence = $3,
			status = $4,
			location = ST_SetSRID(ST_MakePoint($5, $6), 4326),
			address = $7,
			description = $8,
			updated_at = NOW()
		WHERE id = $9
		RETURNING updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		incident.Type,
		incident.Severity,
		incident.Confidence,
		incident.Status,
		incident.Location.Lng,
		incident.Location.Lat,
		incident.Location.Address,
		incident.Description,
		incident.ID,
	).Scan(&incident.UpdatedAt)
	if err != nil {
		// RETURNING без строк - инцидента с таким id нет
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("incident with id %s not found for update: %w", incident.ID, models.ErrNotFound)
		}
		return fmt.Errorf("failed to update incident: %w", err)
	}
	return nil
}

// Resolve помечает инцидент решенным вместо удаления
func (r *IncidentRepository) Resolve(ctx context.Context, id string) error {
	query := `
		UPDATE incidents SET
			status = 'resolved',
			updated_at = NOW()
		WHERE id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to resolve incident: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident with id %s not found for resolve: %w", id, models.ErrNotFound)
	}
	return nil
}

// ListIncidents возвращает список инцидентов с пагинацией, пустой status - все
func (r *IncidentRepository) ListIncidents(ctx context.Context, page, pageSize int, status string) ([]*models.Incident, error) {
	// рассчитываем смещение
	offset := (page - 1) * pageSize

	query := `
		SELECT ` + incidentColumns + `
		FROM incidents
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, status, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	return collectIncidents(rows)
}

// ListActive возвращает кандидатов и подтвержденные инциденты
func (r *IncidentRepository) ListActive(ctx context.Context) ([]*models.Incident, error) {
	query := `
		SELECT ` + incidentColumns + `
		FROM incidents
		WHERE status IN ('candidate', 'confirmed')
		ORDER BY created_at DESC, id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active incidents: %w", err)
	}
	return collectIncidents(rows)
}

// GetStats считает инциденты; решенные учитываются только с момента since
func (r *IncidentRepository) GetStats(ctx context.Context, since time.Time) (*models.IncidentStats, error) {
	stats := &models.IncidentStats{BySeverity: make(map[string]int)}

	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status IN ('candidate', 'confirmed')),
			COUNT(*) FILTER (WHERE status = 'resolved' AND updated_at >= $1)
		FROM incidents;
	`
	if err := r.db.QueryRow(ctx, query, since).Scan(&stats.Total, &stats.Active, &stats.ResolvedInWindow); err != nil {
		return nil, fmt.Errorf("failed to get incident stats: %w", err)
	}

	rows, err := r.db.Query(ctx, `SELECT severity, COUNT(*) FROM incidents GROUP BY severity;`)
	if err != nil {
		return nil, fmt.Errorf("failed to get severity stats: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var severity string
		var count int
		if err := rows.Scan(&severity, &count); err != nil {
			return nil, fmt.Errorf("failed to scan severity row: %w", err)
		}
		stats.BySeverity[severity] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error severity iteration: %w", err)
	}
	return stats, nil
}

// GetIncidentFromCache пытается получить инцидент из Redis
func (r *IncidentRepository) GetIncidentFromCache(ctx context.Context, id string) (*models.Incident, error) {
	val, err := r.redisClient.Get(ctx, incidentCacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident from cache: %w", err)
	}

	incident := &models.Incident{}
	if err := json.Unmarshal(val, incident); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incident from cache: %w", err)
	}
	return incident, nil
}

// SetIncidentCache сохраняет инцидент в Redis
func (r *IncidentRepository) SetIncidentCache(ctx context.Context, incident *models.Incident) error {
	val, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal incident for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, incidentCacheKey(incident.ID), val, incidentCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set incident in cache: %w", err)
	}
	return nil
}

// InvalidateIncidentCache удаляет инцидент из Redis кэша
func (r *IncidentRepository) InvalidateIncidentCache(ctx context.Context, id string) error {
	if err := r.redisClient.Del(ctx, incidentCacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate incident cache: %w", err)
	}
	return nil
}

func incidentCacheKey(id string) string {
	return fmt.Sprintf("incident:%s", id)
}
