package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/application/ports"
	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/domain"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO users (id, name, email, password_hash, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
`, u.ID.UUID, u.Name, u.Email, u.PasswordHash, u.CreatedAt, u.UpdatedAt)
	return err
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT id, name, email, password_hash, created_at, updated_at FROM users WHERE email = $1`, email)
}

func (r *UserRepository) GetByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	return r.getOne(ctx, `SELECT id, name, email, password_hash, created_at, updated_at FROM users WHERE id = $1`, id.UUID)
}

func (r *UserRepository) getOne(ctx context.Context, sql string, arg interface{}) (*domain.User, error) {
	var (
		u  domain.User
		id pgtype.UUID
	)
	err := r.pool.QueryRow(ctx, sql, arg).Scan(&id, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	u.ID = domain.NewUserID(uuid.UUID(id.Bytes))
	return &u, nil
}

var _ ports.UserRepository = (*UserRepository)(nil)
