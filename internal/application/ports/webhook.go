package ports

import "context"

// Contract event types delivered to webhook endpoints.
const (
	EventContractSent      = "contract.sent_for_signature"
	EventContractSigned    = "contract.party_signed"
	EventContractActivated = "contract.activated"
	EventContractCancelled = "contract.cancelled"
)

// ContractEvent is the payload delivered for lifecycle events.
type ContractEvent struct {
	Event       string `json:"event"`
	ContractID  string `json:"contract_id"`
	Title       string `json:"title"`
	Status      string `json:"status"`
	PartyEmail  string `json:"party_email,omitempty"`
	Fingerprint string `json:"fingerprint,omitempty"`
}

// WebhookEmitter delivers contract events to an external endpoint.
type WebhookEmitter interface {
	Emit(ctx context.Context, event ContractEvent) error
}
