package domain

import (
	"time"

	"github.com/google/uuid"
)

// TemplateID is a value object for contract template identity.
type TemplateID struct{ uuid.UUID }

// NewTemplateID creates a new TemplateID from uuid.
func NewTemplateID(id uuid.UUID) TemplateID { return TemplateID{UUID: id} }

// String returns the canonical string form.
func (t TemplateID) String() string { return t.UUID.String() }

// ContractTemplate is a reusable starting point for new contracts: a
// titled set of clauses for a given contract type and category. Only
// public templates are served to clients.
type ContractTemplate struct {
	ID          TemplateID
	Title       string
	Description string
	Type        string
	Category    string
	Clauses     []Clause
	IsPublic    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
