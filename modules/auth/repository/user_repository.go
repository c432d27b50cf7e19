package repository

import (
	"context"
	"database/sql"

	"surfplan-api/core/database"
	"surfplan-api/core/logger"
	"surfplan-api/modules/auth/entity"

	"github.com/google/uuid"
)

type UserRepository struct {
	DB database.Database
}

func NewUserRepository(db database.Database) *UserRepository {
	return &UserRepository{DB: db}
}

type UserRepositoryInterface interface {
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByGoogleID(ctx context.Context, googleID string) (*entity.User, error)
	LinkGoogleID(ctx context.Context, userID uuid.UUID, googleID string) error
}

const userColumns = `id, email, password, name, google_id, created_at, updated_at`

func (r *UserRepository) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	query := `
		INSERT INTO users (email, password, name, google_id)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + userColumns

	var created entity.User
	err := r.DB.GetContext(ctx, &created, query, user.Email, user.Password, user.Name, user.GoogleID)
	if err != nil {
		logger.Error("UserRepository:Create", err)
		return nil, err
	}
	return &created, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user entity.User
	err := r.DB.GetContext(ctx, &user, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("UserRepository:GetByID", err)
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	var user entity.User
	err := r.DB.GetContext(ctx, &user, query, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("UserRepository:GetByEmail", err)
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByGoogleID(ctx context.Context, googleID string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE google_id = $1`

	var user entity.User
	err := r.DB.GetContext(ctx, &user, query, googleID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("UserRepository:GetByGoogleID", err)
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) LinkGoogleID(ctx context.Context, userID uuid.UUID, googleID string) error {
	query := `UPDATE users SET google_id = $1, updated_at = NOW() WHERE id = $2`
	if err := r.DB.ExecContext(ctx, query, googleID, userID); err != nil {
		logger.Error("UserRepository:LinkGoogleID", err)
		return err
	}
	return nil
}
