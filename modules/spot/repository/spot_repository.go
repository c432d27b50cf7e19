package repository

import (
	"context"
	"database/sql"

	"surfplan-api/core/database"
	"surfplan-api/core/logger"
	"surfplan-api/modules/spot/entity"

	"github.com/google/uuid"
)

// SpotRepository handles surf spot database operations
type SpotRepository struct {
	DB database.Database
}

func NewSpotRepository(db database.Database) *SpotRepository {
	return &SpotRepository{DB: db}
}

// SpotRepositoryInterface defines the repository contract
type SpotRepositoryInterface interface {
	Create(ctx context.Context, spot *entity.Spot) (*entity.Spot, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Spot, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Spot, error)
	List(ctx context.Context, region string) ([]entity.Spot, error)
	ListActive(ctx context.Context) ([]entity.Spot, error)
}

const spotColumns = `id, name, slug, region, latitude, longitude, timezone, active, created_at, updated_at`

func (r *SpotRepository) Create(ctx context.Context, spot *entity.Spot) (*entity.Spot, error) {
	query := `
		INSERT INTO spots (name, slug, region, latitude, longitude, timezone, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + spotColumns

	var created entity.Spot
	err := r.DB.GetContext(ctx, &created, query,
		spot.Name, spot.Slug, spot.Region, spot.Latitude, spot.Longitude, spot.Timezone, spot.Active)
	if err != nil {
		logger.Error("SpotRepository:Create", err)
		return nil, err
	}
	return &created, nil
}

func (r *SpotRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Spot, error) {
	query := `SELECT ` + spotColumns + ` FROM spots WHERE id = $1`

	var spot entity.Spot
	err := r.DB.GetContext(ctx, &spot, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("SpotRepository:GetByID", err)
		return nil, err
	}
	return &spot, nil
}

func (r *SpotRepository) GetBySlug(ctx context.Context, slug string) (*entity.Spot, error) {
	query := `SELECT ` + spotColumns + ` FROM spots WHERE slug = $1`

	var spot entity.Spot
	err := r.DB.GetContext(ctx, &spot, query, slug)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("SpotRepository:GetBySlug", err)
		return nil, err
	}
	return &spot, nil
}

func (r *SpotRepository) List(ctx context.Context, region string) ([]entity.Spot, error) {
	query := `SELECT ` + spotColumns + ` FROM spots WHERE active = TRUE`
	args := []any{}
	if region != "" {
		query += ` AND region = $1`
		args = append(args, region)
	}
	query += ` ORDER BY region, name`

	var spots []entity.Spot
	err := r.DB.SelectContext(ctx, &spots, query, args...)
	if err != nil {
		logger.Error("SpotRepository:List", err)
		return nil, err
	}
	return spots, nil
}

func (r *SpotRepository) ListActive(ctx context.Context) ([]entity.Spot, error) {
	return r.List(ctx, "")
}
