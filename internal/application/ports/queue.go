package ports

import "context"

// TaskEnqueuer enqueues async tasks (signature request emails, contract
// event webhooks).
type TaskEnqueuer interface {
	// EnqueueSignatureRequest asks one party to sign a pending contract.
	EnqueueSignatureRequest(ctx context.Context, contractID, title, partyName, partyEmail string) error
	EnqueueContractEvent(ctx context.Context, event string, payload interface{}) error
}
