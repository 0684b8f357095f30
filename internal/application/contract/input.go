package contract

import (
	"context"

	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/application/ports"
	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/domain"
	domerrors "github.com/pedrogiampietro/smart-legal-contracts-now/internal/domain/errors"
)

// PartyInput carries one party as submitted by the owner.
type PartyInput struct {
	Name           string
	Email          string
	DocumentType   domain.DocumentType
	DocumentNumber string
}

// ClauseInput carries one clause as submitted by the owner.
type ClauseInput struct {
	Title   string
	Content string
	Order   int
}

func toParties(inputs []PartyInput) ([]domain.Party, error) {
	seen := make(map[string]bool, len(inputs))
	parties := make([]domain.Party, 0, len(inputs))
	for _, in := range inputs {
		if seen[in.Email] {
			return nil, domerrors.ErrDuplicatePartyEmail
		}
		seen[in.Email] = true
		parties = append(parties, domain.Party{
			Name:           in.Name,
			Email:          in.Email,
			DocumentType:   in.DocumentType,
			DocumentNumber: in.DocumentNumber,
		})
	}
	return parties, nil
}

func toClauses(inputs []ClauseInput) []domain.Clause {
	clauses := make([]domain.Clause, 0, len(inputs))
	for _, in := range inputs {
		clauses = append(clauses, domain.Clause{
			Title:   in.Title,
			Content: in.Content,
			Order:   in.Order,
		})
	}
	return clauses
}

// loadOwned fetches a contract and checks the caller owns it.
func loadOwned(ctx context.Context, repo ports.ContractRepository, id domain.ContractID, owner domain.UserID) (*domain.Contract, error) {
	c, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domerrors.ErrContractNotFound
	}
	if c.CreatedBy != owner {
		return nil, domerrors.ErrNotOwner
	}
	return c, nil
}
