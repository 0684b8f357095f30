package contract

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/application/ports"
	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/domain"
	domerrors "github.com/pedrogiampietro/smart-legal-contracts-now/internal/domain/errors"
	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/infrastructure/render"
)

func newDraft(owner domain.UserID, parties ...domain.Party) *domain.Contract {
	return &domain.Contract{
		ID:     domain.NewContractID(uuid.New()),
		Title:  "Service Agreement",
		Type:   "Prestação de Serviços",
		Status: domain.StatusDraft,
		Parties: append([]domain.Party(nil), parties...),
		Clauses: []domain.Clause{
			{Title: "Object", Content: "Scope of work.", Order: 1},
		},
		CreatedBy: owner,
	}
}

func namedParty(name, email string) domain.Party {
	return domain.Party{
		Name:           name,
		Email:          email,
		DocumentType:   domain.DocumentTypeCPF,
		DocumentNumber: "123.456.789-00",
	}
}

func TestSendForSignature_MovesToPendingAndNotifiesParties(t *testing.T) {
	owner := domain.NewUserID(uuid.New())
	draft := newDraft(owner, namedParty("Ana", "ana@example.com"), namedParty("Bruno", "bruno@example.com"))
	repo := newMemContractRepo(draft)
	renderer := &stubRenderer{content: "<html>contract</html>"}
	tasks := &recordEnqueuer{}
	clock := &fakeClock{now: time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)}

	uc := NewSendForSignature(repo, renderer, tasks, clock)
	got, err := uc.Execute(context.Background(), owner, draft.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusPending, got.Status)
	require.Equal(t, "<html>contract</html>", got.Content)
	require.Len(t, tasks.requests, 2)
	require.Equal(t, "ana@example.com", tasks.requests[0].Email)
	require.Contains(t, tasks.events, ports.EventContractSent)

	stored, err := repo.GetByID(context.Background(), draft.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusPending, stored.Status)
}

func TestSendForSignature_IncompleteContractIsRejected(t *testing.T) {
	owner := domain.NewUserID(uuid.New())
	draft := newDraft(owner) // no parties
	repo := newMemContractRepo(draft)
	tasks := &recordEnqueuer{}

	uc := NewSendForSignature(repo, &stubRenderer{content: "x"}, tasks, &fakeClock{now: time.Now()})
	_, err := uc.Execute(context.Background(), owner, draft.ID)
	require.ErrorIs(t, err, domerrors.ErrIncomplete)
	require.Empty(t, tasks.requests)

	stored, _ := repo.GetByID(context.Background(), draft.ID)
	require.Equal(t, domain.StatusDraft, stored.Status, "a contract with zero parties can never reach pending")
}

func TestSendForSignature_IncompleteGateRunsBeforeRendering(t *testing.T) {
	// The HTML renderer rejects a service contract without a CPF and a
	// CNPJ party; the completeness gate must answer first.
	owner := domain.NewUserID(uuid.New())
	draft := newDraft(owner) // no parties
	repo := newMemContractRepo(draft)

	uc := NewSendForSignature(repo, render.NewHTMLRenderer(), &recordEnqueuer{}, &fakeClock{now: time.Now()})
	_, err := uc.Execute(context.Background(), owner, draft.ID)
	require.ErrorIs(t, err, domerrors.ErrIncomplete)

	stored, _ := repo.GetByID(context.Background(), draft.ID)
	require.Equal(t, domain.StatusDraft, stored.Status)
}

func TestSendForSignature_RendererFailureDoesNotMaskStateCheck(t *testing.T) {
	owner := domain.NewUserID(uuid.New())
	cancelled := newDraft(owner, namedParty("Ana", "ana@example.com"))
	cancelled.Status = domain.StatusCancelled
	repo := newMemContractRepo(cancelled)
	renderer := &stubRenderer{err: errors.New("template exploded")}

	uc := NewSendForSignature(repo, renderer, &recordEnqueuer{}, &fakeClock{now: time.Now()})
	_, err := uc.Execute(context.Background(), owner, cancelled.ID)
	require.ErrorIs(t, err, domerrors.ErrInvalidState)
	require.Zero(t, renderer.calls, "rendering must not start when the transition is forbidden")
}

func TestSendForSignature_OnlyOwnerMaySend(t *testing.T) {
	owner := domain.NewUserID(uuid.New())
	draft := newDraft(owner, namedParty("Ana", "ana@example.com"))
	repo := newMemContractRepo(draft)

	uc := NewSendForSignature(repo, &stubRenderer{content: "x"}, &recordEnqueuer{}, &fakeClock{now: time.Now()})
	_, err := uc.Execute(context.Background(), domain.NewUserID(uuid.New()), draft.ID)
	require.ErrorIs(t, err, domerrors.ErrNotOwner)
}

func TestSendForSignature_UnknownContract(t *testing.T) {
	uc := NewSendForSignature(newMemContractRepo(), &stubRenderer{content: "x"}, &recordEnqueuer{}, &fakeClock{now: time.Now()})
	_, err := uc.Execute(context.Background(), domain.NewUserID(uuid.New()), domain.NewContractID(uuid.New()))
	require.ErrorIs(t, err, domerrors.ErrContractNotFound)
}

func TestGenerateContent_DoesNotChangeStatus(t *testing.T) {
	owner := domain.NewUserID(uuid.New())
	draft := newDraft(owner, namedParty("Ana", "ana@example.com"))
	repo := newMemContractRepo(draft)
	renderer := &stubRenderer{content: "<html>v1</html>"}

	uc := NewGenerateContent(repo, renderer, &fakeClock{now: time.Now()})
	first, err := uc.Execute(context.Background(), owner, draft.ID)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), owner, draft.ID)
	require.NoError(t, err)

	require.Equal(t, first.Status, second.Status)
	require.Equal(t, domain.StatusDraft, second.Status)
	require.Equal(t, "<html>v1</html>", second.Content)
	require.Equal(t, 2, renderer.calls)
}
