package repository

import (
	"context"

	"github.com/MeronSeyoum/workSycScheduler-sub000/internal/domain"
	"github.com/google/uuid"
)

func (r *Repository) CreateLocation(ctx context.Context, location *domain.Location) error {
	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	if location.ID == "" {
		location.ID = uuid.New().String()
	}

	query := `
		INSERT INTO locations (id, name, address)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`
	if err := r.dbpool.QueryRowContext(ctx, query, location.ID, location.Name, location.Address).Scan(&location.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetLocationByID(ctx context.Context, id string) (*domain.Location, error) {
	query := `
		SELECT name, address, created_at FROM locations WHERE id = $1
	`

	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	location := &domain.Location{
		ID: id,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&location.Name, &location.Address, &location.CreatedAt); err != nil {
		return nil, err
	}

	return location, nil
}

func (r *Repository) GetAllLocations(ctx context.Context) ([]*domain.Location, error) {
	query := `
		SELECT id, name, address, created_at FROM locations ORDER BY name
	`

	ctx, cancel := r.queryCtx(ctx)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	locations := make([]*domain.Location, 0)
	for rows.Next() {
		location := &domain.Location{}
		if err := rows.Scan(&location.ID, &location.Name, &location.Address, &location.CreatedAt); err != nil {
			return nil, err
		}
		locations = append(locations, location)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return locations, nil
}
