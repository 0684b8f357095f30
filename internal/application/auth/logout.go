package auth

import (
	"context"

	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/application/ports"
)

type Logout struct {
	tokenStore ports.TokenStore
}

func NewLogout(tokenStore ports.TokenStore) *Logout {
	return &Logout{tokenStore: tokenStore}
}

// Execute revokes the refresh token. Unknown tokens are ignored so logout
// is idempotent.
func (uc *Logout) Execute(ctx context.Context, refreshToken string) error {
	return uc.tokenStore.RevokeRefreshToken(ctx, hashForStorage(refreshToken))
}
