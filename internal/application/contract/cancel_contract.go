package contract

import (
	"context"

	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/application/ports"
	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/domain"
)

type CancelContract struct {
	contracts ports.ContractRepository
	tasks     ports.TaskEnqueuer
	clock     ports.Clock
}

func NewCancelContract(contracts ports.ContractRepository, tasks ports.TaskEnqueuer, clock ports.Clock) *CancelContract {
	return &CancelContract{contracts: contracts, tasks: tasks, clock: clock}
}

// Execute cancels the contract unless it is fully executed.
func (uc *CancelContract) Execute(ctx context.Context, owner domain.UserID, id domain.ContractID) (*domain.Contract, error) {
	c, err := loadOwned(ctx, uc.contracts, id, owner)
	if err != nil {
		return nil, err
	}
	if err := c.Cancel(); err != nil {
		return nil, err
	}
	c.UpdatedAt = uc.clock.Now()
	if err := uc.contracts.Update(ctx, c); err != nil {
		return nil, err
	}
	_ = uc.tasks.EnqueueContractEvent(ctx, ports.EventContractCancelled, ports.ContractEvent{
		Event:      ports.EventContractCancelled,
		ContractID: c.ID.String(),
		Title:      c.Title,
		Status:     string(c.Status),
	})
	return c, nil
}
