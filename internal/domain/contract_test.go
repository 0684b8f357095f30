package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"

	domerrors "github.com/pedrogiampietro/smart-legal-contracts-now/internal/domain/errors"
)

func draftContract(parties ...Party) *Contract {
	return &Contract{
		ID:     NewContractID(uuid.New()),
		Title:  "Service Agreement",
		Type:   "Prestação de Serviços",
		Status: StatusDraft,
		Parties: append([]Party(nil), parties...),
		Clauses: []Clause{
			{Title: "Object", Content: "The provider will render the services.", Order: 1},
		},
		CreatedBy: NewUserID(uuid.New()),
	}
}

func party(name, email string) Party {
	return Party{
		Name:           name,
		Email:          email,
		DocumentType:   DocumentTypeCPF,
		DocumentNumber: "123.456.789-00",
	}
}

func TestIsComplete(t *testing.T) {
	c := draftContract(party("Ana", "ana@example.com"))
	if !c.IsComplete() {
		t.Fatal("expected contract to be complete")
	}

	cases := map[string]func(*Contract){
		"empty title":        func(c *Contract) { c.Title = "" },
		"empty type":         func(c *Contract) { c.Type = "" },
		"no parties":         func(c *Contract) { c.Parties = nil },
		"no clauses":         func(c *Contract) { c.Clauses = nil },
		"party without name": func(c *Contract) { c.Parties[0].Name = "" },
		"party without email": func(c *Contract) {
			c.Parties[0].Email = ""
		},
		"party without document": func(c *Contract) {
			c.Parties[0].DocumentNumber = ""
		},
	}
	for name, mutate := range cases {
		c := draftContract(party("Ana", "ana@example.com"))
		mutate(c)
		if c.IsComplete() {
			t.Errorf("%s: expected incomplete", name)
		}
	}
}

func TestSendForSignature(t *testing.T) {
	c := draftContract(party("Ana", "ana@example.com"))
	if err := c.SendForSignature("<html>rendered</html>"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if c.Status != StatusPending {
		t.Fatalf("status = %s, want pending", c.Status)
	}
	if c.Content != "<html>rendered</html>" {
		t.Fatalf("content not stored")
	}

	// Idempotent re-send from pending regenerates content.
	if err := c.SendForSignature("<html>v2</html>"); err != nil {
		t.Fatalf("re-send: %v", err)
	}
	if c.Status != StatusPending || c.Content != "<html>v2</html>" {
		t.Fatalf("re-send did not refresh content")
	}
}

func TestCanSendForSignatureDoesNotMutate(t *testing.T) {
	c := draftContract(party("Ana", "ana@example.com"))
	if err := c.CanSendForSignature(); err != nil {
		t.Fatalf("check: %v", err)
	}
	if c.Status != StatusDraft || c.Content != "" {
		t.Fatalf("precondition check mutated the contract")
	}

	incomplete := draftContract()
	if err := incomplete.CanSendForSignature(); err != domerrors.ErrIncomplete {
		t.Fatalf("err = %v, want ErrIncomplete", err)
	}
}

func TestSendForSignatureIncomplete(t *testing.T) {
	c := draftContract()
	err := c.SendForSignature("x")
	if err != domerrors.ErrIncomplete {
		t.Fatalf("err = %v, want ErrIncomplete", err)
	}
	if c.Status != StatusDraft {
		t.Fatalf("incomplete contract must stay draft, got %s", c.Status)
	}
}

func TestSendForSignatureFromTerminalState(t *testing.T) {
	for _, status := range []Status{StatusActive, StatusCancelled, StatusExpired} {
		c := draftContract(party("Ana", "ana@example.com"))
		c.Status = status
		if err := c.SendForSignature("x"); err != domerrors.ErrInvalidState {
			t.Errorf("from %s: err = %v, want ErrInvalidState", status, err)
		}
	}
}

func TestSignLastPartyActivates(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	c := draftContract(party("Ana", "ana@example.com"), party("Bruno", "bruno@example.com"))
	if err := c.SendForSignature("<html/>"); err != nil {
		t.Fatalf("send: %v", err)
	}

	activated, err := c.Sign("ana@example.com", now)
	if err != nil {
		t.Fatalf("sign ana: %v", err)
	}
	if activated {
		t.Fatal("first signature must not activate")
	}
	if c.Status != StatusPending {
		t.Fatalf("status = %s, want pending", c.Status)
	}
	if !c.Parties[0].Signed || c.Parties[0].SignedAt == nil {
		t.Fatal("ana not recorded as signed")
	}
	if c.Parties[1].Signed || c.Parties[1].SignedAt != nil {
		t.Fatal("bruno must remain unsigned")
	}
	if c.Fingerprint != "" {
		t.Fatal("fingerprint must be empty before activation")
	}

	activated, err = c.Sign("bruno@example.com", now.Add(time.Hour))
	if err != nil {
		t.Fatalf("sign bruno: %v", err)
	}
	if !activated {
		t.Fatal("last signature must activate")
	}
	if c.Status != StatusActive {
		t.Fatalf("status = %s, want active", c.Status)
	}
	if c.Fingerprint == "" {
		t.Fatal("fingerprint must be set on activation")
	}
	if !c.AllPartiesSigned() {
		t.Fatal("all parties must be signed after activation")
	}
}

func TestSignUnknownEmail(t *testing.T) {
	c := draftContract(party("Ana", "ana@example.com"))
	_ = c.SendForSignature("<html/>")
	_, err := c.Sign("nobody@x.com", time.Now())
	if err != domerrors.ErrPartyEmailNotFound {
		t.Fatalf("err = %v, want ErrPartyEmailNotFound", err)
	}
	if c.Parties[0].Signed {
		t.Fatal("unknown email must not change any party")
	}
}

func TestSignEmailIsCaseSensitive(t *testing.T) {
	c := draftContract(party("Ana", "ana@example.com"))
	_ = c.SendForSignature("<html/>")
	if _, err := c.Sign("Ana@Example.com", time.Now()); err != domerrors.ErrPartyEmailNotFound {
		t.Fatalf("err = %v, want ErrPartyEmailNotFound", err)
	}
}

func TestSignOutsidePending(t *testing.T) {
	for _, status := range []Status{StatusDraft, StatusActive, StatusCancelled, StatusExpired} {
		c := draftContract(party("Ana", "ana@example.com"))
		c.Status = status
		if _, err := c.Sign("ana@example.com", time.Now()); err != domerrors.ErrInvalidState {
			t.Errorf("from %s: err = %v, want ErrInvalidState", status, err)
		}
	}
}

func TestReSignOverwritesSignedAt(t *testing.T) {
	c := draftContract(party("Ana", "ana@example.com"), party("Bruno", "bruno@example.com"))
	_ = c.SendForSignature("<html/>")
	first := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	second := first.Add(2 * time.Hour)

	if _, err := c.Sign("ana@example.com", first); err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := c.Sign("ana@example.com", second); err != nil {
		t.Fatalf("re-sign: %v", err)
	}
	if !c.Parties[0].SignedAt.Equal(second) {
		t.Fatalf("signedAt = %v, want %v", c.Parties[0].SignedAt, second)
	}
	if c.Status != StatusPending {
		t.Fatal("re-signing one of two parties must not activate")
	}
}

func TestCancelGuard(t *testing.T) {
	// Pending with partial signatures can be cancelled.
	c := draftContract(party("Ana", "ana@example.com"), party("Bruno", "bruno@example.com"))
	_ = c.SendForSignature("<html/>")
	_, _ = c.Sign("ana@example.com", time.Now())
	if err := c.Cancel(); err != nil {
		t.Fatalf("cancel pending: %v", err)
	}
	if c.Status != StatusCancelled {
		t.Fatalf("status = %s, want cancelled", c.Status)
	}

	// Fully executed contracts are immutable with respect to cancellation.
	c = draftContract(party("Ana", "ana@example.com"))
	_ = c.SendForSignature("<html/>")
	_, _ = c.Sign("ana@example.com", time.Now())
	if err := c.Cancel(); err != domerrors.ErrCannotCancelExecuted {
		t.Fatalf("err = %v, want ErrCannotCancelExecuted", err)
	}
	if c.Status != StatusActive {
		t.Fatalf("status = %s, want active", c.Status)
	}
}

func TestCancelDraft(t *testing.T) {
	c := draftContract()
	if err := c.Cancel(); err != nil {
		t.Fatalf("cancel draft: %v", err)
	}
	if c.Status != StatusCancelled {
		t.Fatalf("status = %s, want cancelled", c.Status)
	}
}

func TestFingerprintIncludesActivationInstant(t *testing.T) {
	build := func() *Contract {
		c := &Contract{
			ID:      NewContractID(uuid.MustParse("7f9c24e5-2f31-4a1e-9c1a-111111111111")),
			Title:   "NDA",
			Type:    "Confidencialidade",
			Status:  StatusPending,
			Parties: []Party{party("Ana", "ana@example.com")},
			Clauses: []Clause{{Title: "Secrecy", Content: "Keep it secret.", Order: 1}},
		}
		return c
	}
	t0 := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	a, b := build(), build()
	_, _ = a.Sign("ana@example.com", t0)
	_, _ = b.Sign("ana@example.com", t0)
	if a.Fingerprint != b.Fingerprint {
		t.Fatal("same content and instant must yield the same fingerprint")
	}

	c := build()
	_, _ = c.Sign("ana@example.com", t0.Add(time.Second))
	if c.Fingerprint == a.Fingerprint {
		t.Fatal("different activation instants must yield different fingerprints")
	}
}

func TestEffectiveStatus(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	c := draftContract(party("Ana", "ana@example.com"))
	c.Status = StatusActive
	c.EndDate = &past
	if got := c.EffectiveStatus(now); got != StatusExpired {
		t.Fatalf("EffectiveStatus = %s, want expired", got)
	}
	if c.Status != StatusActive {
		t.Fatal("expiry is derived, stored status must not change")
	}

	c.EndDate = &future
	if got := c.EffectiveStatus(now); got != StatusActive {
		t.Fatalf("EffectiveStatus = %s, want active", got)
	}

	c.Status = StatusPending
	c.EndDate = &past
	if got := c.EffectiveStatus(now); got != StatusPending {
		t.Fatalf("only active contracts expire, got %s", got)
	}
}

func TestSortedClausesStable(t *testing.T) {
	c := &Contract{
		Clauses: []Clause{
			{Title: "third", Order: 10},
			{Title: "first", Order: 1},
			{Title: "tie-a", Order: 5},
			{Title: "tie-b", Order: 5},
		},
	}
	sorted := c.SortedClauses()
	want := []string{"first", "tie-a", "tie-b", "third"}
	for i, title := range want {
		if sorted[i].Title != title {
			t.Fatalf("clause %d = %s, want %s", i, sorted[i].Title, title)
		}
	}
	// Original slice untouched.
	if c.Clauses[0].Title != "third" {
		t.Fatal("SortedClauses must not mutate the contract")
	}
}

func TestEditable(t *testing.T) {
	c := draftContract(party("Ana", "ana@example.com"))
	if !c.Editable() {
		t.Fatal("draft must be editable")
	}
	_ = c.SendForSignature("<html/>")
	if !c.Editable() {
		t.Fatal("pending without signatures must be editable")
	}
	_, _ = c.Sign("ana@example.com", time.Now())
	if c.Editable() {
		t.Fatal("fully signed contract must not be editable")
	}
}
