package contract

import (
	"context"

	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/application/ports"
	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/domain"
)

type DeleteContract struct {
	contracts ports.ContractRepository
}

func NewDeleteContract(contracts ports.ContractRepository) *DeleteContract {
	return &DeleteContract{contracts: contracts}
}

func (uc *DeleteContract) Execute(ctx context.Context, owner domain.UserID, id domain.ContractID) error {
	c, err := loadOwned(ctx, uc.contracts, id, owner)
	if err != nil {
		return err
	}
	return uc.contracts.Delete(ctx, c.ID)
}
