package render

import (
	"errors"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/application/ports"
	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/domain"
)

// HTMLRenderer renders a contract into its signature document. The
// service-agreement layout is used when the contract type mentions
// "serviço"; everything else gets the detailed layout.
type HTMLRenderer struct {
	service  *template.Template
	detailed *template.Template
}

func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{
		service:  template.Must(template.New("service").Parse(serviceContractHTML)),
		detailed: template.Must(template.New("detailed").Parse(detailedContractHTML)),
	}
}

type partyView struct {
	Name           string
	Email          string
	DocumentLabel  string
	DocumentNumber string
}

type clauseView struct {
	Number  int
	Title   string
	Content string
}

type contractView struct {
	Title       string
	Type        string
	Description string
	Value       string
	StartDate   string
	EndDate     string
	Contratante *partyView
	Contratado  *partyView
	Parties     []partyView
	Clauses     []clauseView
}

// Render implements ports.ContentRenderer.
func (r *HTMLRenderer) Render(c *domain.Contract) (string, error) {
	view := buildView(c)
	tpl := r.detailed
	if isServiceContract(c.Type) {
		if view.Contratante == nil || view.Contratado == nil {
			return "", errors.New("service contract requires a natural-person (CPF) and a legal-entity (CNPJ) party")
		}
		tpl = r.service
	}
	var b strings.Builder
	if err := tpl.Execute(&b, view); err != nil {
		return "", err
	}
	return b.String(), nil
}

func isServiceContract(contractType string) bool {
	t := strings.ToLower(contractType)
	return strings.Contains(t, "serviço") || strings.Contains(t, "servico")
}

func buildView(c *domain.Contract) *contractView {
	view := &contractView{
		Title:       c.Title,
		Type:        c.Type,
		Description: c.Description,
	}
	if c.Value != nil {
		view.Value = fmt.Sprintf("R$ %.2f", *c.Value)
	}
	view.StartDate = formatDate(c.StartDate)
	view.EndDate = formatDate(c.EndDate)

	for _, p := range c.Parties {
		pv := partyView{
			Name:           p.Name,
			Email:          p.Email,
			DocumentNumber: p.DocumentNumber,
		}
		switch p.DocumentType {
		case domain.DocumentTypeCPF:
			pv.DocumentLabel = "CPF"
			if view.Contratante == nil {
				v := pv
				view.Contratante = &v
			}
		case domain.DocumentTypeCNPJ:
			pv.DocumentLabel = "CNPJ"
			if view.Contratado == nil {
				v := pv
				view.Contratado = &v
			}
		}
		view.Parties = append(view.Parties, pv)
	}
	for i, cl := range c.SortedClauses() {
		view.Clauses = append(view.Clauses, clauseView{
			Number:  i + 1,
			Title:   cl.Title,
			Content: cl.Content,
		})
	}
	return view
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("02/01/2006")
}

var _ ports.ContentRenderer = (*HTMLRenderer)(nil)
