package queue

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/application/ports"
)

// NoopEnqueuer is used when Redis is not configured. Tasks are logged
// and dropped.
type NoopEnqueuer struct {
	log zerolog.Logger
}

func NewNoopEnqueuer(log zerolog.Logger) *NoopEnqueuer {
	return &NoopEnqueuer{log: log}
}

func (q *NoopEnqueuer) EnqueueSignatureRequest(_ context.Context, contractID, _, _, partyEmail string) error {
	q.log.Debug().Str("contract_id", contractID).Str("party_email", partyEmail).Msg("signature request dropped (no queue configured)")
	return nil
}

func (q *NoopEnqueuer) EnqueueContractEvent(_ context.Context, event string, _ interface{}) error {
	q.log.Debug().Str("event", event).Msg("contract event dropped (no queue configured)")
	return nil
}

var _ ports.TaskEnqueuer = (*NoopEnqueuer)(nil)
