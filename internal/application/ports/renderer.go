package ports

import "github.com/pedrogiampietro/smart-legal-contracts-now/internal/domain"

// ContentRenderer turns a contract into its human-readable signature
// document. Pure; invoked whenever the lifecycle moves toward pending
// and on explicit content regeneration.
type ContentRenderer interface {
	Render(contract *domain.Contract) (string, error)
}
