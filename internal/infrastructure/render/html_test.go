package render

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/domain"
)

func serviceParties() []domain.Party {
	return []domain.Party{
		{Name: "Ana Lima", Email: "ana@example.com", DocumentType: domain.DocumentTypeCPF, DocumentNumber: "123.456.789-00"},
		{Name: "Acme Ltda", Email: "contato@acme.com", DocumentType: domain.DocumentTypeCNPJ, DocumentNumber: "12.345.678/0001-00"},
	}
}

func TestRenderPicksServiceTemplateBySubstring(t *testing.T) {
	r := NewHTMLRenderer()
	c := &domain.Contract{
		ID:      domain.NewContractID(uuid.New()),
		Title:   "Website Build",
		Type:    "Prestação de Serviços",
		Parties: serviceParties(),
		Clauses: []domain.Clause{{Title: "Object", Content: "Build the site.", Order: 1}},
	}
	out, err := r.Render(c)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "Contrato de Prestação de Serviços") {
		t.Fatal("expected service layout")
	}
	if !strings.Contains(out, "CONTRATANTE:") || !strings.Contains(out, "CONTRATADO:") {
		t.Fatal("service layout must name both roles")
	}
}

func TestRenderFallsBackToDetailedTemplate(t *testing.T) {
	r := NewHTMLRenderer()
	c := &domain.Contract{
		Title:   "NDA",
		Type:    "Confidencialidade",
		Parties: serviceParties(),
		Clauses: []domain.Clause{{Title: "Secrecy", Content: "Keep it secret.", Order: 1}},
	}
	out, err := r.Render(c)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(out, "CONTRATANTE:") {
		t.Fatal("detailed layout must not use service roles")
	}
	if !strings.Contains(out, "Confidencialidade") {
		t.Fatal("detailed layout must show the contract type")
	}
}

func TestRenderServiceTemplateRequiresBothRoles(t *testing.T) {
	r := NewHTMLRenderer()
	c := &domain.Contract{
		Title: "Solo",
		Type:  "serviços avulsos",
		Parties: []domain.Party{
			{Name: "Ana", Email: "ana@example.com", DocumentType: domain.DocumentTypeCPF, DocumentNumber: "1"},
		},
		Clauses: []domain.Clause{{Title: "Object", Content: "x", Order: 1}},
	}
	if _, err := r.Render(c); err == nil {
		t.Fatal("expected error without a CNPJ party")
	}
}

func TestRenderClausesAscendingAndNumbered(t *testing.T) {
	r := NewHTMLRenderer()
	c := &domain.Contract{
		Title:   "NDA",
		Type:    "Confidencialidade",
		Parties: serviceParties(),
		Clauses: []domain.Clause{
			{Title: "Later", Content: "b", Order: 20},
			{Title: "First", Content: "a", Order: 3},
		},
	}
	out, err := r.Render(c)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	first := strings.Index(out, "CLÁUSULA 1ª - First")
	second := strings.Index(out, "CLÁUSULA 2ª - Later")
	if first == -1 || second == -1 || first > second {
		t.Fatalf("clauses not numbered in ascending order:\n%s", out)
	}
}

func TestRenderEscapesClauseContent(t *testing.T) {
	r := NewHTMLRenderer()
	c := &domain.Contract{
		Title:   "NDA",
		Type:    "Confidencialidade",
		Parties: serviceParties(),
		Clauses: []domain.Clause{{Title: "Inject", Content: `<script>alert("x")</script>`, Order: 1}},
	}
	out, err := r.Render(c)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(out, "<script>") {
		t.Fatal("clause content must be escaped")
	}
}

func TestRenderDeterministic(t *testing.T) {
	r := NewHTMLRenderer()
	c := &domain.Contract{
		Title:   "NDA",
		Type:    "Confidencialidade",
		Parties: serviceParties(),
		Clauses: []domain.Clause{{Title: "Secrecy", Content: "Keep it secret.", Order: 1}},
	}
	a, err := r.Render(c)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	b, err := r.Render(c)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if a != b {
		t.Fatal("rendering must be deterministic")
	}
}
