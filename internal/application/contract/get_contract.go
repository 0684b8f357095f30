package contract

import (
	"context"

	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/application/ports"
	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/domain"
)

type GetContract struct {
	contracts ports.ContractRepository
}

func NewGetContract(contracts ports.ContractRepository) *GetContract {
	return &GetContract{contracts: contracts}
}

func (uc *GetContract) Execute(ctx context.Context, owner domain.UserID, id domain.ContractID) (*domain.Contract, error) {
	return loadOwned(ctx, uc.contracts, id, owner)
}
