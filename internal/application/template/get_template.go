package template

import (
	"context"

	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/application/ports"
	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/domain"
	domerrors "github.com/pedrogiampietro/smart-legal-contracts-now/internal/domain/errors"
)

type GetTemplate struct {
	templates ports.TemplateRepository
}

func NewGetTemplate(templates ports.TemplateRepository) *GetTemplate {
	return &GetTemplate{templates: templates}
}

// Execute returns one template; private templates are not served.
func (uc *GetTemplate) Execute(ctx context.Context, id domain.TemplateID) (*domain.ContractTemplate, error) {
	tpl, err := uc.templates.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tpl == nil {
		return nil, domerrors.ErrTemplateNotFound
	}
	if !tpl.IsPublic {
		return nil, domerrors.ErrTemplatePrivate
	}
	return tpl, nil
}
