package repository

import (
	"context"

	"golfclub-backend/internal/infra"
	"golfclub-backend/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE users SET last_login_at = now() WHERE id = $1`,
		pgconv.UUIDToPgtype(id))
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
