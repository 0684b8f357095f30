package contract

import (
	"context"

	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/application/ports"
	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/domain"
)

type SendForSignature struct {
	contracts ports.ContractRepository
	renderer  ports.ContentRenderer
	tasks     ports.TaskEnqueuer
	clock     ports.Clock
}

func NewSendForSignature(contracts ports.ContractRepository, renderer ports.ContentRenderer, tasks ports.TaskEnqueuer, clock ports.Clock) *SendForSignature {
	return &SendForSignature{contracts: contracts, renderer: renderer, tasks: tasks, clock: clock}
}

// Execute gates on completeness, regenerates the content and moves the
// contract to pending, then asks every party to sign. Allowed from draft
// and, idempotently, from pending.
func (uc *SendForSignature) Execute(ctx context.Context, owner domain.UserID, id domain.ContractID) (*domain.Contract, error) {
	c, err := loadOwned(ctx, uc.contracts, id, owner)
	if err != nil {
		return nil, err
	}
	// State and completeness are checked before rendering so a renderer
	// failure cannot shadow ErrIncomplete or ErrInvalidState.
	if err := c.CanSendForSignature(); err != nil {
		return nil, err
	}
	content, err := uc.renderer.Render(c)
	if err != nil {
		return nil, err
	}
	if err := c.SendForSignature(content); err != nil {
		return nil, err
	}
	c.UpdatedAt = uc.clock.Now()
	if err := uc.contracts.Update(ctx, c); err != nil {
		return nil, err
	}
	// Delivery is best effort; the enqueuer logs its own failures.
	for _, p := range c.Parties {
		_ = uc.tasks.EnqueueSignatureRequest(ctx, c.ID.String(), c.Title, p.Name, p.Email)
	}
	_ = uc.tasks.EnqueueContractEvent(ctx, ports.EventContractSent, ports.ContractEvent{
		Event:      ports.EventContractSent,
		ContractID: c.ID.String(),
		Title:      c.Title,
		Status:     string(c.Status),
	})
	return c, nil
}
