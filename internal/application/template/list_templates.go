package template

import (
	"context"

	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/application/ports"
	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/domain"
)

type ListTemplates struct {
	templates ports.TemplateRepository
}

func NewListTemplates(templates ports.TemplateRepository) *ListTemplates {
	return &ListTemplates{templates: templates}
}

// Execute lists public templates, alphabetically by title.
func (uc *ListTemplates) Execute(ctx context.Context, filter ports.TemplateFilter) ([]*domain.ContractTemplate, error) {
	return uc.templates.ListPublic(ctx, filter)
}
