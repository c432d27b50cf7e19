package repository

import (
	"context"
	"database/sql"

	"surfplan-api/core/database"
	"surfplan-api/core/logger"
	"surfplan-api/modules/preference/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// PreferenceRepository handles spot preference database operations
type PreferenceRepository struct {
	DB database.Database
}

func NewPreferenceRepository(db database.Database) *PreferenceRepository {
	return &PreferenceRepository{DB: db}
}

// PreferenceRepositoryInterface defines the repository contract
type PreferenceRepositoryInterface interface {
	Upsert(ctx context.Context, pref *entity.SpotPreference) (*entity.SpotPreference, error)
	GetByUserAndSpot(ctx context.Context, userID, spotID uuid.UUID) (*entity.SpotPreference, error)
	DeleteByUserAndSpot(ctx context.Context, userID, spotID uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID, region string) ([]entity.SpotPreferenceView, error)
	ListBySpot(ctx context.Context, spotID uuid.UUID) ([]entity.SpotPreferenceView, error)
}

const prefColumns = `id, user_id, spot_id, min_wave_height_m, max_wave_height_m,
	min_swell_period_s, max_swell_period_s, swell_directions, max_wind_speed_kt,
	wind_directions, min_tide_m, max_tide_m, alert_min_score, created_at, updated_at`

func (r *PreferenceRepository) Upsert(ctx context.Context, pref *entity.SpotPreference) (*entity.SpotPreference, error) {
	query := `
		INSERT INTO spot_preferences (user_id, spot_id, min_wave_height_m, max_wave_height_m,
			min_swell_period_s, max_swell_period_s, swell_directions, max_wind_speed_kt,
			wind_directions, min_tide_m, max_tide_m, alert_min_score)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (user_id, spot_id) DO UPDATE SET
			min_wave_height_m = EXCLUDED.min_wave_height_m,
			max_wave_height_m = EXCLUDED.max_wave_height_m,
			min_swell_period_s = EXCLUDED.min_swell_period_s,
			max_swell_period_s = EXCLUDED.max_swell_period_s,
			swell_directions = EXCLUDED.swell_directions,
			max_wind_speed_kt = EXCLUDED.max_wind_speed_kt,
			wind_directions = EXCLUDED.wind_directions,
			min_tide_m = EXCLUDED.min_tide_m,
			max_tide_m = EXCLUDED.max_tide_m,
			alert_min_score = EXCLUDED.alert_min_score,
			updated_at = NOW()
		RETURNING ` + prefColumns

	var created entity.SpotPreference
	err := r.DB.GetContext(ctx, &created, query,
		pref.UserID, pref.SpotID, pref.MinWaveHeightM, pref.MaxWaveHeightM,
		pref.MinSwellPeriodS, pref.MaxSwellPeriodS, pq.Array([]string(pref.SwellDirections)),
		pref.MaxWindSpeedKt, pq.Array([]string(pref.WindDirections)),
		pref.MinTideM, pref.MaxTideM, pref.AlertMinScore)
	if err != nil {
		logger.Error("PreferenceRepository:Upsert", err)
		return nil, err
	}
	return &created, nil
}

func (r *PreferenceRepository) GetByUserAndSpot(ctx context.Context, userID, spotID uuid.UUID) (*entity.SpotPreference, error) {
	query := `SELECT ` + prefColumns + ` FROM spot_preferences WHERE user_id = $1 AND spot_id = $2`

	var pref entity.SpotPreference
	err := r.DB.GetContext(ctx, &pref, query, userID, spotID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("PreferenceRepository:GetByUserAndSpot", err)
		return nil, err
	}
	return &pref, nil
}

func (r *PreferenceRepository) DeleteByUserAndSpot(ctx context.Context, userID, spotID uuid.UUID) error {
	err := r.DB.ExecContext(ctx, `DELETE FROM spot_preferences WHERE user_id = $1 AND spot_id = $2`, userID, spotID)
	if err != nil {
		logger.Error("PreferenceRepository:DeleteByUserAndSpot", err)
	}
	return err
}

const prefViewQuery = `
	SELECT p.id, p.user_id, p.spot_id, p.min_wave_height_m, p.max_wave_height_m,
	       p.min_swell_period_s, p.max_swell_period_s, p.swell_directions, p.max_wind_speed_kt,
	       p.wind_directions, p.min_tide_m, p.max_tide_m, p.alert_min_score, p.created_at, p.updated_at,
	       s.name AS spot_name, s.region AS spot_region, s.timezone AS spot_timezone
	FROM spot_preferences p
	JOIN spots s ON s.id = p.spot_id
	WHERE s.active = TRUE`

func (r *PreferenceRepository) ListByUser(ctx context.Context, userID uuid.UUID, region string) ([]entity.SpotPreferenceView, error) {
	query := prefViewQuery + ` AND p.user_id = $1`
	args := []any{userID}
	if region != "" {
		query += ` AND s.region = $2`
		args = append(args, region)
	}
	query += ` ORDER BY s.region, s.name`

	var prefs []entity.SpotPreferenceView
	err := r.DB.SelectContext(ctx, &prefs, query, args...)
	if err != nil {
		logger.Error("PreferenceRepository:ListByUser", err)
		return nil, err
	}
	return prefs, nil
}

func (r *PreferenceRepository) ListBySpot(ctx context.Context, spotID uuid.UUID) ([]entity.SpotPreferenceView, error) {
	query := prefViewQuery + ` AND p.spot_id = $1`

	var prefs []entity.SpotPreferenceView
	err := r.DB.SelectContext(ctx, &prefs, query, spotID)
	if err != nil {
		logger.Error("PreferenceRepository:ListBySpot", err)
		return nil, err
	}
	return prefs, nil
}
