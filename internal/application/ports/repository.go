package ports

import (
	"context"
	"time"

	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/domain"
)

// ContractFilter narrows contract listings. Zero values mean "no filter".
type ContractFilter struct {
	Status domain.Status
	Type   string
	// Search matches against the title, case-insensitively.
	Search string
}

// StatusCount is one bucket of the stats aggregation.
type StatusCount struct {
	Status domain.Status
	Count  int64
}

// TypeCount is one bucket of the stats aggregation.
type TypeCount struct {
	Type  string
	Count int64
}

// ContractStats is the owner's dashboard aggregation.
type ContractStats struct {
	Total              int64
	UpcomingExpiration int64
	ByStatus           []StatusCount
	ByType             []TypeCount
}

// ContractRepository defines persistence for contracts. Load and save
// operate on whole documents; Update must apply the full aggregate in a
// single atomic write so a signature and the resulting transition commit
// together.
type ContractRepository interface {
	Create(ctx context.Context, contract *domain.Contract) error
	// GetByID returns (nil, nil) when the contract does not exist.
	GetByID(ctx context.Context, id domain.ContractID) (*domain.Contract, error)
	Update(ctx context.Context, contract *domain.Contract) error
	Delete(ctx context.Context, id domain.ContractID) error
	List(ctx context.Context, owner domain.UserID, filter ContractFilter) ([]*domain.Contract, error)
	// Stats aggregates the owner's contracts; upcoming expirations are
	// those ending within 30 days of now.
	Stats(ctx context.Context, owner domain.UserID, now time.Time) (*ContractStats, error)
}

// TemplateFilter narrows public template listings.
type TemplateFilter struct {
	Category string
	Type     string
	// Search matches title or description, case-insensitively.
	Search string
}

// TemplateRepository defines read access to contract templates.
type TemplateRepository interface {
	// GetByID returns (nil, nil) when the template does not exist.
	GetByID(ctx context.Context, id domain.TemplateID) (*domain.ContractTemplate, error)
	ListPublic(ctx context.Context, filter TemplateFilter) ([]*domain.ContractTemplate, error)
}

// UserRepository defines persistence for contract owners.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	// GetByEmail returns (nil, nil) when no user has that email.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id domain.UserID) (*domain.User, error)
}

// TokenStore defines storage for refresh tokens, keyed by token hash.
type TokenStore interface {
	StoreRefreshToken(ctx context.Context, userID domain.UserID, tokenHash string, expiresAt int64) error
	GetRefreshToken(ctx context.Context, tokenHash string) (domain.UserID, error)
	RevokeRefreshToken(ctx context.Context, tokenHash string) error
}
