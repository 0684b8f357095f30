package contract

import (
	"context"
	"errors"
	"time"

	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/application/ports"
	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/domain"
)

type memContractRepo struct {
	contracts   map[domain.ContractID]*domain.Contract
	updateCalls int
}

func newMemContractRepo(contracts ...*domain.Contract) *memContractRepo {
	r := &memContractRepo{contracts: make(map[domain.ContractID]*domain.Contract)}
	for _, c := range contracts {
		r.contracts[c.ID] = cloneContract(c)
	}
	return r
}

func cloneContract(c *domain.Contract) *domain.Contract {
	out := *c
	out.Parties = append([]domain.Party(nil), c.Parties...)
	out.Clauses = append([]domain.Clause(nil), c.Clauses...)
	return &out
}

func (r *memContractRepo) Create(_ context.Context, c *domain.Contract) error {
	r.contracts[c.ID] = cloneContract(c)
	return nil
}

func (r *memContractRepo) GetByID(_ context.Context, id domain.ContractID) (*domain.Contract, error) {
	c, ok := r.contracts[id]
	if !ok {
		return nil, nil
	}
	return cloneContract(c), nil
}

func (r *memContractRepo) Update(_ context.Context, c *domain.Contract) error {
	if _, ok := r.contracts[c.ID]; !ok {
		return errors.New("update of missing contract")
	}
	r.updateCalls++
	r.contracts[c.ID] = cloneContract(c)
	return nil
}

func (r *memContractRepo) Delete(_ context.Context, id domain.ContractID) error {
	delete(r.contracts, id)
	return nil
}

func (r *memContractRepo) List(_ context.Context, owner domain.UserID, _ ports.ContractFilter) ([]*domain.Contract, error) {
	var out []*domain.Contract
	for _, c := range r.contracts {
		if c.CreatedBy == owner {
			out = append(out, cloneContract(c))
		}
	}
	return out, nil
}

func (r *memContractRepo) Stats(_ context.Context, owner domain.UserID, _ time.Time) (*ports.ContractStats, error) {
	stats := &ports.ContractStats{}
	for _, c := range r.contracts {
		if c.CreatedBy == owner {
			stats.Total++
		}
	}
	return stats, nil
}

type stubRenderer struct {
	content string
	err     error
	calls   int
}

func (s *stubRenderer) Render(_ *domain.Contract) (string, error) {
	s.calls++
	return s.content, s.err
}

type fakeClock struct{ now time.Time }

func (f *fakeClock) Now() time.Time { return f.now }

type signatureRequest struct {
	ContractID string
	Title      string
	Name       string
	Email      string
}

type recordEnqueuer struct {
	requests []signatureRequest
	events   []string
	payloads []interface{}
}

func (r *recordEnqueuer) EnqueueSignatureRequest(_ context.Context, contractID, title, name, email string) error {
	r.requests = append(r.requests, signatureRequest{ContractID: contractID, Title: title, Name: name, Email: email})
	return nil
}

func (r *recordEnqueuer) EnqueueContractEvent(_ context.Context, event string, payload interface{}) error {
	r.events = append(r.events, event)
	r.payloads = append(r.payloads, payload)
	return nil
}
