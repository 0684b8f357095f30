package contract

import (
	"context"

	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/application/ports"
	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/domain"
)

type ContractStats struct {
	contracts ports.ContractRepository
	clock     ports.Clock
}

func NewContractStats(contracts ports.ContractRepository, clock ports.Clock) *ContractStats {
	return &ContractStats{contracts: contracts, clock: clock}
}

// Execute aggregates the owner's dashboard numbers: totals, counts per
// status and type, and contracts expiring within the next 30 days.
func (uc *ContractStats) Execute(ctx context.Context, owner domain.UserID) (*ports.ContractStats, error) {
	return uc.contracts.Stats(ctx, owner, uc.clock.Now())
}
