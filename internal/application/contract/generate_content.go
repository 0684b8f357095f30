package contract

import (
	"context"

	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/application/ports"
	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/domain"
)

type GenerateContent struct {
	contracts ports.ContractRepository
	renderer  ports.ContentRenderer
	clock     ports.Clock
}

func NewGenerateContent(contracts ports.ContractRepository, renderer ports.ContentRenderer, clock ports.Clock) *GenerateContent {
	return &GenerateContent{contracts: contracts, renderer: renderer, clock: clock}
}

// Execute refreshes the contract's cached rendering. The status is never
// touched; rendering is idempotent and may run any number of times.
func (uc *GenerateContent) Execute(ctx context.Context, owner domain.UserID, id domain.ContractID) (*domain.Contract, error) {
	c, err := loadOwned(ctx, uc.contracts, id, owner)
	if err != nil {
		return nil, err
	}
	content, err := uc.renderer.Render(c)
	if err != nil {
		return nil, err
	}
	c.Content = content
	c.UpdatedAt = uc.clock.Now()
	if err := uc.contracts.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
