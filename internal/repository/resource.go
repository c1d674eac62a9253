package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/responder_ai/internal/models"
	"github.com/shenikar/responder_ai/internal/service"
)

type ResourceRepository struct {
	db *pgxpool.Pool
}

func NewResourceRepository(db *pgxpool.Pool) service.ResourceRepository {
	return &ResourceRepository{db: db}
}

func (r *ResourceRepository) List(ctx context.Context) ([]*models.Resource, error) {
	query := `
		SELECT
			id,
			type,
			status,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			address,
			COALESCE(assigned_to, ''),
			0::double precision
		FROM resources
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}
	return collectResources(rows)
}

// FindNearby находит ресурсы в радиусе от точки, ближайшие первыми
func (r *ResourceRepository) FindNearby(ctx context.Context, lat, lon float64, radiusMeters int) ([]*models.Resource, error) {
	query := `
		SELECT
			id,
			type,
			status,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			address,
			COALESCE(assigned_to, ''),
			ST_Distance(location, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography) as distance
		FROM resources
		WHERE ST_DWithin(
			location,
			ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
			$3
		)
		ORDER BY distance, id;
	`
	rows, err := r.db.Query(ctx, query, lon, lat, float64(radiusMeters))
	if err != nil {
		return nil, fmt.Errorf("failed to find nearby resources: %w", err)
	}
	return collectResources(rows)
}

func collectResources(rows pgx.Rows) ([]*models.Resource, error) {
	defer rows.Close()

	resources := make([]*models.Resource, 0)
	for rows.Next() {
		resource := &models.Resource{}
		err := rows.Scan(
			&resource.ID,
			&resource.Type,
			&resource.Status,
			&resource.Location.Lat,
			&resource.Location.Lng,
			&resource.Location.Address,
			&resource.AssignedTo,
			&resource.DistanceMeters,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan resource row: %w", err)
		}
		resources = append(resources, resource)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return resources, nil
}
