package readstore

import (
	"context"

	"golfclub-backend/internal/infra"
	"golfclub-backend/internal/pkg/pgconv"
	"golfclub-backend/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserReadStore struct {
	pool *pgxpool.Pool
}

func NewUserReadStore(pool *pgxpool.Pool) *UserReadStore {
	return &UserReadStore{pool: pool}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var (
		userID   pgtype.UUID
		email    string
		role     string
		isActive bool
	)
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, role, is_active FROM users WHERE id = $1`,
		pgconv.UUIDToPgtype(id)).Scan(&userID, &email, &role, &isActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by id", err)
	}
	return &queries.AuthorizedUserView{
		ID:       uuid.UUID(userID.Bytes),
		Email:    email,
		Role:     role,
		IsActive: isActive,
	}, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	var (
		userID       pgtype.UUID
		storedEmail  string
		role         string
		isActive     bool
		passwordHash string
	)
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, role, is_active, password_hash FROM users WHERE email = $1`,
		email).Scan(&userID, &storedEmail, &role, &isActive, &passwordHash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &queries.AuthorizedUserView{
		ID:       uuid.UUID(userID.Bytes),
		Email:    storedEmail,
		Role:     role,
		IsActive: isActive,
	}, passwordHash, nil
}
