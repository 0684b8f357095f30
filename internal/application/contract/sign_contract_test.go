package contract

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/application/ports"
	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/domain"
	domerrors "github.com/pedrogiampietro/smart-legal-contracts-now/internal/domain/errors"
)

func pendingContract(t *testing.T, owner domain.UserID, parties ...domain.Party) *domain.Contract {
	t.Helper()
	c := newDraft(owner, parties...)
	require.NoError(t, c.SendForSignature("<html/>"))
	return c
}

func TestSignContract_TwoPartyScenario(t *testing.T) {
	owner := domain.NewUserID(uuid.New())
	c := pendingContract(t, owner, namedParty("Ana", "ana@example.com"), namedParty("Bruno", "bruno@example.com"))
	repo := newMemContractRepo(c)
	tasks := &recordEnqueuer{}
	clock := &fakeClock{now: time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC)}
	uc := NewSignContract(repo, tasks, clock)

	// Sign A: stays pending, one write.
	res, err := uc.Execute(context.Background(), c.ID, "ana@example.com")
	require.NoError(t, err)
	require.False(t, res.Activated)
	require.Equal(t, domain.StatusPending, res.Contract.Status)
	require.True(t, res.Contract.Parties[0].Signed)
	require.False(t, res.Contract.Parties[1].Signed)
	require.Empty(t, res.Contract.Fingerprint)
	require.Equal(t, 1, repo.updateCalls)

	// Sign B: activates and fingerprints in the same write.
	res, err = uc.Execute(context.Background(), c.ID, "bruno@example.com")
	require.NoError(t, err)
	require.True(t, res.Activated)
	require.Equal(t, domain.StatusActive, res.Contract.Status)
	require.NotEmpty(t, res.Contract.Fingerprint)
	require.True(t, res.Contract.AllPartiesSigned())
	require.Equal(t, 2, repo.updateCalls, "signature, transition and fingerprint must share one write")

	require.Contains(t, tasks.events, ports.EventContractSigned)
	require.Contains(t, tasks.events, ports.EventContractActivated)

	stored, _ := repo.GetByID(context.Background(), c.ID)
	require.Equal(t, domain.StatusActive, stored.Status)
	require.NotEmpty(t, stored.Fingerprint)
}

func TestSignContract_UnknownEmailLeavesPartiesUntouched(t *testing.T) {
	owner := domain.NewUserID(uuid.New())
	c := pendingContract(t, owner, namedParty("Ana", "ana@example.com"))
	repo := newMemContractRepo(c)
	uc := NewSignContract(repo, &recordEnqueuer{}, &fakeClock{now: time.Now()})

	_, err := uc.Execute(context.Background(), c.ID, "nobody@x.com")
	require.ErrorIs(t, err, domerrors.ErrPartyEmailNotFound)
	require.Zero(t, repo.updateCalls)

	stored, _ := repo.GetByID(context.Background(), c.ID)
	require.False(t, stored.Parties[0].Signed)
}

func TestSignContract_RejectedOutsidePending(t *testing.T) {
	owner := domain.NewUserID(uuid.New())
	c := newDraft(owner, namedParty("Ana", "ana@example.com"))
	repo := newMemContractRepo(c)
	uc := NewSignContract(repo, &recordEnqueuer{}, &fakeClock{now: time.Now()})

	_, err := uc.Execute(context.Background(), c.ID, "ana@example.com")
	require.ErrorIs(t, err, domerrors.ErrInvalidState)
}

func TestSignContract_UnknownContract(t *testing.T) {
	uc := NewSignContract(newMemContractRepo(), &recordEnqueuer{}, &fakeClock{now: time.Now()})
	_, err := uc.Execute(context.Background(), domain.NewContractID(uuid.New()), "ana@example.com")
	require.ErrorIs(t, err, domerrors.ErrContractNotFound)
}

func TestCancelContract_Guard(t *testing.T) {
	owner := domain.NewUserID(uuid.New())
	clock := &fakeClock{now: time.Now()}

	// Pending with partial signatures: cancellable.
	partial := pendingContract(t, owner, namedParty("Ana", "ana@example.com"), namedParty("Bruno", "bruno@example.com"))
	_, err := partial.Sign("ana@example.com", clock.Now())
	require.NoError(t, err)
	repo := newMemContractRepo(partial)
	tasks := &recordEnqueuer{}
	uc := NewCancelContract(repo, tasks, clock)
	got, err := uc.Execute(context.Background(), owner, partial.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusCancelled, got.Status)
	require.Contains(t, tasks.events, ports.EventContractCancelled)

	// Fully executed: rejected.
	executed := pendingContract(t, owner, namedParty("Ana", "ana@example.com"))
	_, err = executed.Sign("ana@example.com", clock.Now())
	require.NoError(t, err)
	repo = newMemContractRepo(executed)
	uc = NewCancelContract(repo, &recordEnqueuer{}, clock)
	_, err = uc.Execute(context.Background(), owner, executed.ID)
	require.ErrorIs(t, err, domerrors.ErrCannotCancelExecuted)
	stored, _ := repo.GetByID(context.Background(), executed.ID)
	require.Equal(t, domain.StatusActive, stored.Status)
}

func TestUpdateContract_PartiesFixedOncePending(t *testing.T) {
	owner := domain.NewUserID(uuid.New())
	c := pendingContract(t, owner, namedParty("Ana", "ana@example.com"))
	repo := newMemContractRepo(c)
	uc := NewUpdateContract(repo, &fakeClock{now: time.Now()})

	_, err := uc.Execute(context.Background(), UpdateContractInput{
		Owner:      owner,
		ContractID: c.ID,
		Parties:    []PartyInput{{Name: "Zoe", Email: "zoe@example.com", DocumentType: domain.DocumentTypeCPF, DocumentNumber: "1"}},
	})
	require.ErrorIs(t, err, domerrors.ErrInvalidState)

	// Non-party fields remain editable while pending.
	title := "Renamed"
	got, err := uc.Execute(context.Background(), UpdateContractInput{Owner: owner, ContractID: c.ID, Title: &title})
	require.NoError(t, err)
	require.Equal(t, "Renamed", got.Title)
}

func TestCreateContract_RejectsDuplicatePartyEmails(t *testing.T) {
	repo := newMemContractRepo()
	uc := NewCreateContract(repo, &fakeClock{now: time.Now()})

	_, err := uc.Execute(context.Background(), CreateContractInput{
		Owner: domain.NewUserID(uuid.New()),
		Title: "NDA",
		Type:  "Confidencialidade",
		Parties: []PartyInput{
			{Name: "Ana", Email: "ana@example.com", DocumentType: domain.DocumentTypeCPF, DocumentNumber: "1"},
			{Name: "Ana 2", Email: "ana@example.com", DocumentType: domain.DocumentTypeCPF, DocumentNumber: "2"},
		},
	})
	require.ErrorIs(t, err, domerrors.ErrDuplicatePartyEmail)
}

func TestCreateContract_StartsAsDraft(t *testing.T) {
	repo := newMemContractRepo()
	now := time.Date(2025, 4, 3, 8, 0, 0, 0, time.UTC)
	uc := NewCreateContract(repo, &fakeClock{now: now})

	c, err := uc.Execute(context.Background(), CreateContractInput{
		Owner:   domain.NewUserID(uuid.New()),
		Title:   "NDA",
		Type:    "Confidencialidade",
		Parties: []PartyInput{{Name: "Ana", Email: "ana@example.com", DocumentType: domain.DocumentTypeCPF, DocumentNumber: "1"}},
		Clauses: []ClauseInput{{Title: "Secrecy", Content: "Keep it secret.", Order: 1}},
	})
	require.NoError(t, err)
	require.Equal(t, domain.StatusDraft, c.Status)
	require.Empty(t, c.Fingerprint)
	require.Equal(t, now, c.CreatedAt)

	stored, err := repo.GetByID(context.Background(), c.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
}
