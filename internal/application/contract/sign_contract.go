package contract

import (
	"context"

	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/application/ports"
	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/domain"
	domerrors "github.com/pedrogiampietro/smart-legal-contracts-now/internal/domain/errors"
)

type SignContractResult struct {
	Contract *domain.Contract
	// Activated reports that this signature was the last one and the
	// contract became active (fingerprint set) in the same write.
	Activated bool
}

type SignContract struct {
	contracts ports.ContractRepository
	tasks     ports.TaskEnqueuer
	clock     ports.Clock
}

func NewSignContract(contracts ports.ContractRepository, tasks ports.TaskEnqueuer, clock ports.Clock) *SignContract {
	return &SignContract{contracts: contracts, tasks: tasks, clock: clock}
}

// Execute records one party's signature. The signature, and on the last
// signature the transition to active plus the fingerprint, are persisted
// in a single repository write.
func (uc *SignContract) Execute(ctx context.Context, id domain.ContractID, email string) (*SignContractResult, error) {
	c, err := uc.contracts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domerrors.ErrContractNotFound
	}
	activated, err := c.Sign(email, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	c.UpdatedAt = uc.clock.Now()
	if err := uc.contracts.Update(ctx, c); err != nil {
		return nil, err
	}
	_ = uc.tasks.EnqueueContractEvent(ctx, ports.EventContractSigned, ports.ContractEvent{
		Event:      ports.EventContractSigned,
		ContractID: c.ID.String(),
		Title:      c.Title,
		Status:     string(c.Status),
		PartyEmail: email,
	})
	if activated {
		_ = uc.tasks.EnqueueContractEvent(ctx, ports.EventContractActivated, ports.ContractEvent{
			Event:       ports.EventContractActivated,
			ContractID:  c.ID.String(),
			Title:       c.Title,
			Status:      string(c.Status),
			Fingerprint: c.Fingerprint,
		})
	}
	return &SignContractResult{Contract: c, Activated: activated}, nil
}
