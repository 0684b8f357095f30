package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"time"

	"github.com/google/uuid"

	domerrors "github.com/pedrogiampietro/smart-legal-contracts-now/internal/domain/errors"
)

// ContractID is a value object for contract identity.
type ContractID struct{ uuid.UUID }

// NewContractID creates a new ContractID from uuid.
func NewContractID(id uuid.UUID) ContractID { return ContractID{UUID: id} }

// String returns the canonical string form.
func (c ContractID) String() string { return c.UUID.String() }

// Status is the lifecycle state of a contract.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusExpired   Status = "expired"
	StatusCancelled Status = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusActive, StatusExpired, StatusCancelled:
		return true
	}
	return false
}

// DocumentType identifies a party as a natural person (CPF) or a legal
// entity (CNPJ).
type DocumentType string

const (
	DocumentTypeCPF  DocumentType = "cpf"
	DocumentTypeCNPJ DocumentType = "cnpj"
)

// Party is a signer named in a contract. Email is the lookup key for
// signatures and must be unique within one contract.
type Party struct {
	Name           string
	Email          string
	DocumentType   DocumentType
	DocumentNumber string
	Signed         bool
	SignedAt       *time.Time
}

// Clause is one contractual clause. Order drives rendering sequence; it
// need not be contiguous.
type Clause struct {
	Title   string
	Content string
	Order   int
}

// Contract is the aggregate root. Status is mutated only through the
// lifecycle methods below.
type Contract struct {
	ID          ContractID
	Title       string
	Description string
	Type        string
	Status      Status
	Parties     []Party
	Clauses     []Clause
	Value       *float64
	StartDate   *time.Time
	EndDate     *time.Time
	Content     string
	Fingerprint string
	CreatedBy   UserID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsComplete reports whether the contract has everything required to be
// sent for signature: a title, a type, at least one party with name,
// email and document number, and at least one clause. Field format
// (email shape etc.) is not checked here.
func (c *Contract) IsComplete() bool {
	if c.Title == "" || c.Type == "" {
		return false
	}
	if len(c.Parties) == 0 {
		return false
	}
	for _, p := range c.Parties {
		if p.Name == "" || p.Email == "" || p.DocumentNumber == "" {
			return false
		}
	}
	return len(c.Clauses) > 0
}

// AllPartiesSigned reports whether every listed party has signed.
func (c *Contract) AllPartiesSigned() bool {
	for _, p := range c.Parties {
		if !p.Signed {
			return false
		}
	}
	return true
}

// CanSendForSignature checks the preconditions for going out for
// signature without mutating the contract: allowed from draft and,
// idempotently, from pending; gated on IsComplete. Callers run this
// before rendering so a content error never shadows the gate.
func (c *Contract) CanSendForSignature() error {
	if c.Status != StatusDraft && c.Status != StatusPending {
		return domerrors.ErrInvalidState
	}
	if !c.IsComplete() {
		return domerrors.ErrIncomplete
	}
	return nil
}

// SendForSignature moves the contract to pending with freshly rendered
// content, after re-checking CanSendForSignature.
func (c *Contract) SendForSignature(content string) error {
	if err := c.CanSendForSignature(); err != nil {
		return err
	}
	c.Content = content
	c.Status = StatusPending
	return nil
}

// Sign records the signature of the party matching email (exact,
// case-sensitive). Signing an already-signed party overwrites its
// SignedAt. When the last party signs, the contract becomes active and
// the fingerprint is computed; the returned bool reports that
// activation. Signatures are accepted only while pending.
func (c *Contract) Sign(email string, now time.Time) (bool, error) {
	if c.Status != StatusPending {
		return false, domerrors.ErrInvalidState
	}
	idx := -1
	for i := range c.Parties {
		if c.Parties[i].Email == email {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, domerrors.ErrPartyEmailNotFound
	}
	signedAt := now
	c.Parties[idx].Signed = true
	c.Parties[idx].SignedAt = &signedAt
	if !c.AllPartiesSigned() {
		return false, nil
	}
	c.Status = StatusActive
	c.Fingerprint = c.fingerprint(now)
	return true, nil
}

// Cancel moves the contract to cancelled. A contract that is active and
// signed by all parties is fully executed and cannot be cancelled.
func (c *Contract) Cancel() error {
	if c.Status == StatusActive && c.AllPartiesSigned() {
		return domerrors.ErrCannotCancelExecuted
	}
	c.Status = StatusCancelled
	return nil
}

// Editable reports whether the owner may still mutate the contract's
// content, parties or clauses: only in draft or pending, and never once
// every party has signed.
func (c *Contract) Editable() bool {
	if c.Status != StatusDraft && c.Status != StatusPending {
		return false
	}
	if c.Status == StatusPending && c.AllPartiesSigned() {
		return false
	}
	return true
}

// EffectiveStatus reports the status as seen by readers: an active
// contract past its end date reads as expired. Expiry is a derived
// status, never a stored transition.
func (c *Contract) EffectiveStatus(now time.Time) Status {
	if c.Status == StatusActive && c.EndDate != nil && now.After(*c.EndDate) {
		return StatusExpired
	}
	return c.Status
}

// SortedClauses returns the clauses in ascending Order. Ties keep
// insertion order.
func (c *Contract) SortedClauses() []Clause {
	out := make([]Clause, len(c.Clauses))
	copy(out, c.Clauses)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

type fingerprintParty struct {
	Name     string     `json:"name"`
	Document string     `json:"document"`
	Signed   bool       `json:"signed"`
	SignedAt *time.Time `json:"signedAt"`
}

type fingerprintClause struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type fingerprintPayload struct {
	ID        string              `json:"id"`
	Title     string              `json:"title"`
	Parties   []fingerprintParty  `json:"parties"`
	Clauses   []fingerprintClause `json:"clauses"`
	Timestamp string              `json:"timestamp"`
}

// fingerprint computes the tamper-evidence digest stored when the
// contract becomes fully executed: SHA-256 over a canonical JSON
// serialization of the immutable content plus the activation instant.
func (c *Contract) fingerprint(now time.Time) string {
	payload := fingerprintPayload{
		ID:        c.ID.String(),
		Title:     c.Title,
		Timestamp: now.UTC().Format(time.RFC3339Nano),
	}
	for _, p := range c.Parties {
		payload.Parties = append(payload.Parties, fingerprintParty{
			Name:     p.Name,
			Document: p.DocumentNumber,
			Signed:   p.Signed,
			SignedAt: p.SignedAt,
		})
	}
	for _, cl := range c.Clauses {
		payload.Clauses = append(payload.Clauses, fingerprintClause{
			Title:   cl.Title,
			Content: cl.Content,
		})
	}
	data, _ := json.Marshal(payload)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
