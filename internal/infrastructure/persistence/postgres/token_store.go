package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/application/ports"
	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/domain"
	domerrors "github.com/pedrogiampietro/smart-legal-contracts-now/internal/domain/errors"
)

// TokenStore keeps refresh tokens keyed by their hash. Raw tokens are
// never written to the database.
type TokenStore struct {
	pool *pgxpool.Pool
}

func NewTokenStore(pool *pgxpool.Pool) *TokenStore {
	return &TokenStore{pool: pool}
}

func (s *TokenStore) StoreRefreshToken(ctx context.Context, userID domain.UserID, tokenHash string, expiresAt int64) error {
	_, err := s.pool.Exec(ctx, `
INSERT INTO refresh_tokens (token_hash, user_id, expires_at, created_at)
VALUES ($1, $2, $3, $4)
`, tokenHash, userID.UUID, time.Unix(expiresAt, 0).UTC(), time.Now().UTC())
	return err
}

// GetRefreshToken resolves a token hash to its user. Expired and revoked
// tokens are treated as absent.
func (s *TokenStore) GetRefreshToken(ctx context.Context, tokenHash string) (domain.UserID, error) {
	var id pgtype.UUID
	err := s.pool.QueryRow(ctx, `
SELECT user_id FROM refresh_tokens
WHERE token_hash = $1 AND revoked_at IS NULL AND expires_at > NOW()
`, tokenHash).Scan(&id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.UserID{}, domerrors.ErrInvalidToken
		}
		return domain.UserID{}, err
	}
	return domain.NewUserID(uuid.UUID(id.Bytes)), nil
}

func (s *TokenStore) RevokeRefreshToken(ctx context.Context, tokenHash string) error {
	_, err := s.pool.Exec(ctx, `
UPDATE refresh_tokens SET revoked_at = NOW() WHERE token_hash = $1 AND revoked_at IS NULL
`, tokenHash)
	return err
}

var _ ports.TokenStore = (*TokenStore)(nil)
