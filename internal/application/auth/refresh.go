package auth

import (
	"context"
	"time"

	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/application/ports"
	domerrors "github.com/pedrogiampietro/smart-legal-contracts-now/internal/domain/errors"
)

type RefreshInput struct {
	RefreshToken string
}

type RefreshResult struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type Refresh struct {
	users      ports.UserRepository
	issuer     ports.TokenIssuer
	tokenStore ports.TokenStore
	accessExp  int64
	refreshExp int64
}

func NewRefresh(users ports.UserRepository, issuer ports.TokenIssuer, tokenStore ports.TokenStore, accessExp, refreshExp int64) *Refresh {
	if accessExp <= 0 {
		accessExp = DefaultAccessTokenExpiry
	}
	if refreshExp <= 0 {
		refreshExp = DefaultRefreshTokenExpiry
	}
	return &Refresh{
		users:      users,
		issuer:     issuer,
		tokenStore: tokenStore,
		accessExp:  accessExp,
		refreshExp: refreshExp,
	}
}

// Execute rotates the refresh token: the presented token is revoked and a
// fresh pair is issued.
func (uc *Refresh) Execute(ctx context.Context, input RefreshInput) (*RefreshResult, error) {
	oldHash := hashForStorage(input.RefreshToken)
	userID, err := uc.tokenStore.GetRefreshToken(ctx, oldHash)
	if err != nil {
		return nil, domerrors.ErrInvalidToken
	}
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domerrors.ErrInvalidToken
	}
	if err := uc.tokenStore.RevokeRefreshToken(ctx, oldHash); err != nil {
		return nil, err
	}
	accessToken, err := uc.issuer.IssueAccessToken(user.ID.String(), user.Email, uc.accessExp)
	if err != nil {
		return nil, err
	}
	refreshToken, err := newRefreshToken()
	if err != nil {
		return nil, err
	}
	expiresAt := time.Now().Add(time.Duration(uc.refreshExp) * time.Second).Unix()
	if err := uc.tokenStore.StoreRefreshToken(ctx, user.ID, hashForStorage(refreshToken), expiresAt); err != nil {
		return nil, err
	}
	return &RefreshResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    uc.accessExp,
	}, nil
}
