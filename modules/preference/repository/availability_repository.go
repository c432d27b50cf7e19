package repository

import (
	"context"

	"surfplan-api/core/database"
	"surfplan-api/core/logger"
	"surfplan-api/modules/preference/entity"

	"github.com/google/uuid"
)

// AvailabilityRepository handles weekly availability database operations
type AvailabilityRepository struct {
	DB database.Database
}

func NewAvailabilityRepository(db database.Database) *AvailabilityRepository {
	return &AvailabilityRepository{DB: db}
}

// AvailabilityRepositoryInterface defines the repository contract
type AvailabilityRepositoryInterface interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.AvailabilitySlot, error)
	ReplaceForUser(ctx context.Context, userID uuid.UUID, slots []entity.AvailabilitySlot) ([]entity.AvailabilitySlot, error)
}

func (r *AvailabilityRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.AvailabilitySlot, error) {
	query := `
		SELECT id, user_id, day_of_week, hour_local, created_at
		FROM availability_slots
		WHERE user_id = $1
		ORDER BY day_of_week, hour_local
	`

	var slots []entity.AvailabilitySlot
	err := r.DB.SelectContext(ctx, &slots, query, userID)
	if err != nil {
		logger.Error("AvailabilityRepository:ListByUser", err)
		return nil, err
	}
	return slots, nil
}

// ReplaceForUser swaps the user's whole weekly grid in one transaction.
func (r *AvailabilityRepository) ReplaceForUser(ctx context.Context, userID uuid.UUID, slots []entity.AvailabilitySlot) ([]entity.AvailabilitySlot, error) {
	tx, err := r.DB.SQLx().BeginTxx(ctx, nil)
	if err != nil {
		logger.Error("AvailabilityRepository:ReplaceForUser:Begin", err)
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM availability_slots WHERE user_id = $1`, userID); err != nil {
		logger.Error("AvailabilityRepository:ReplaceForUser:Delete", err)
		return nil, err
	}

	for _, slot := range slots {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO availability_slots (user_id, day_of_week, hour_local)
			VALUES ($1, $2, $3)
			ON CONFLICT (user_id, day_of_week, hour_local) DO NOTHING
		`, userID, slot.DayOfWeek, slot.HourLocal)
		if err != nil {
			logger.Error("AvailabilityRepository:ReplaceForUser:Insert", err)
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		logger.Error("AvailabilityRepository:ReplaceForUser:Commit", err)
		return nil, err
	}

	return r.ListByUser(ctx, userID)
}
