package queue

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/application/ports"
)

// signatureRequestPayload matches the JSON enqueued by TaskEnqueuer.EnqueueSignatureRequest.
type signatureRequestPayload struct {
	ContractID string `json:"contract_id"`
	Title      string `json:"title"`
	PartyName  string `json:"party_name"`
	PartyEmail string `json:"party_email"`
}

// Worker runs Asynq task handlers: signature request emails and contract
// event webhook delivery.
type Worker struct {
	srv      *asynq.Server
	mux      *asynq.ServeMux
	webhooks ports.WebhookEmitter
	log      zerolog.Logger
}

// NewWorker creates an Asynq server and registers handlers. Call Run() to start.
func NewWorker(redisOpt asynq.RedisClientOpt, webhooks ports.WebhookEmitter, log zerolog.Logger) *Worker {
	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 2,
		LogLevel:    asynq.InfoLevel,
	})
	mux := asynq.NewServeMux()
	w := &Worker{srv: srv, mux: mux, webhooks: webhooks, log: log}
	mux.HandleFunc(TypeSignatureRequest, w.handleSignatureRequest)
	mux.HandleFunc(TypeContractEvent, w.handleContractEvent)
	return w
}

func (w *Worker) handleSignatureRequest(ctx context.Context, t *asynq.Task) error {
	var p signatureRequestPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		w.log.Error().Err(err).Msg("signature request task payload invalid")
		return err
	}
	// Dev: log the request; production would send email via SMTP/sendgrid etc.
	w.log.Info().
		Str("contract_id", p.ContractID).
		Str("title", p.Title).
		Str("party_email", p.PartyEmail).
		Msg("signature request email (log only; configure SMTP for real email)")
	return nil
}

func (w *Worker) handleContractEvent(ctx context.Context, t *asynq.Task) error {
	var event ports.ContractEvent
	if err := json.Unmarshal(t.Payload(), &event); err != nil {
		w.log.Error().Err(err).Msg("contract event task payload invalid")
		return err
	}
	if err := w.webhooks.Emit(ctx, event); err != nil {
		w.log.Warn().Err(err).Str("event", event.Event).Str("contract_id", event.ContractID).Msg("webhook delivery failed")
		return err
	}
	return nil
}

// Run blocks until shutdown. Use Shutdown for graceful stop.
func (w *Worker) Run() error {
	return w.srv.Run(w.mux)
}

// Shutdown stops the worker.
func (w *Worker) Shutdown() {
	w.srv.Shutdown()
}
