package contract

import (
	"context"
	"time"

	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/application/ports"
	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/domain"
	domerrors "github.com/pedrogiampietro/smart-legal-contracts-now/internal/domain/errors"
)

// UpdateContractInput applies only its non-nil fields. Parties can only
// be replaced while the contract is still a draft; party identities are
// fixed once it goes out for signature.
type UpdateContractInput struct {
	Owner       domain.UserID
	ContractID  domain.ContractID
	Title       *string
	Description *string
	Type        *string
	Parties     []PartyInput
	Clauses     []ClauseInput
	Value       *float64
	StartDate   *time.Time
	EndDate     *time.Time
}

type UpdateContract struct {
	contracts ports.ContractRepository
	clock     ports.Clock
}

func NewUpdateContract(contracts ports.ContractRepository, clock ports.Clock) *UpdateContract {
	return &UpdateContract{contracts: contracts, clock: clock}
}

func (uc *UpdateContract) Execute(ctx context.Context, input UpdateContractInput) (*domain.Contract, error) {
	c, err := loadOwned(ctx, uc.contracts, input.ContractID, input.Owner)
	if err != nil {
		return nil, err
	}
	if !c.Editable() {
		return nil, domerrors.ErrInvalidState
	}
	if input.Parties != nil {
		if c.Status != domain.StatusDraft {
			return nil, domerrors.ErrInvalidState
		}
		parties, err := toParties(input.Parties)
		if err != nil {
			return nil, err
		}
		c.Parties = parties
	}
	if input.Title != nil {
		c.Title = *input.Title
	}
	if input.Description != nil {
		c.Description = *input.Description
	}
	if input.Type != nil {
		c.Type = *input.Type
	}
	if input.Clauses != nil {
		c.Clauses = toClauses(input.Clauses)
	}
	if input.Value != nil {
		c.Value = input.Value
	}
	if input.StartDate != nil {
		c.StartDate = input.StartDate
	}
	if input.EndDate != nil {
		c.EndDate = input.EndDate
	}
	c.UpdatedAt = uc.clock.Now()
	if err := uc.contracts.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
