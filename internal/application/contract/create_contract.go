package contract

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/application/ports"
	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/domain"
)

type CreateContractInput struct {
	Owner       domain.UserID
	Title       string
	Description string
	Type        string
	Parties     []PartyInput
	Clauses     []ClauseInput
	Value       *float64
	StartDate   *time.Time
	EndDate     *time.Time
}

type CreateContract struct {
	contracts ports.ContractRepository
	clock     ports.Clock
}

func NewCreateContract(contracts ports.ContractRepository, clock ports.Clock) *CreateContract {
	return &CreateContract{contracts: contracts, clock: clock}
}

// Execute creates a new contract in draft for the owner.
func (uc *CreateContract) Execute(ctx context.Context, input CreateContractInput) (*domain.Contract, error) {
	parties, err := toParties(input.Parties)
	if err != nil {
		return nil, err
	}
	now := uc.clock.Now()
	c := &domain.Contract{
		ID:          domain.NewContractID(uuid.New()),
		Title:       input.Title,
		Description: input.Description,
		Type:        input.Type,
		Status:      domain.StatusDraft,
		Parties:     parties,
		Clauses:     toClauses(input.Clauses),
		Value:       input.Value,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		CreatedBy:   input.Owner,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.contracts.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
