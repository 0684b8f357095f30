package middleware

import (
	"context"

	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/domain"
)

type contextKey string

const userContextKey contextKey = "user"

// AuthUser is the authenticated caller as resolved from the access token.
type AuthUser struct {
	ID    domain.UserID
	Email string
}

// WithUser injects the authenticated user into the context.
func WithUser(ctx context.Context, user *AuthUser) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// UserFromContext returns the authenticated user from the context, or nil.
func UserFromContext(ctx context.Context) *AuthUser {
	v := ctx.Value(userContextKey)
	if v == nil {
		return nil
	}
	u, _ := v.(*AuthUser)
	return u
}
