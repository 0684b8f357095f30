package contract

import (
	"context"

	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/application/ports"
	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/domain"
)

type ListContracts struct {
	contracts ports.ContractRepository
}

func NewListContracts(contracts ports.ContractRepository) *ListContracts {
	return &ListContracts{contracts: contracts}
}

// Execute lists the owner's contracts, newest first.
func (uc *ListContracts) Execute(ctx context.Context, owner domain.UserID, filter ports.ContractFilter) ([]*domain.Contract, error) {
	return uc.contracts.List(ctx, owner, filter)
}
