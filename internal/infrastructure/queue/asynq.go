package queue

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/pedrogiampietro/smart-legal-contracts-now/internal/application/ports"
)

const (
	TypeSignatureRequest = "email:signature_request"
	TypeContractEvent    = "webhook:contract_event"
)

type TaskEnqueuer struct {
	client *asynq.Client
	log    zerolog.Logger
}

func NewAsynqEnqueuer(redisOpt asynq.RedisClientOpt, log zerolog.Logger) (*TaskEnqueuer, error) {
	client := asynq.NewClient(redisOpt)
	return &TaskEnqueuer{client: client, log: log}, nil
}

func (q *TaskEnqueuer) Close() error {
	return q.client.Close()
}

func (q *TaskEnqueuer) EnqueueSignatureRequest(ctx context.Context, contractID, title, partyName, partyEmail string) error {
	payload, _ := json.Marshal(map[string]string{
		"contract_id": contractID,
		"title":       title,
		"party_name":  partyName,
		"party_email": partyEmail,
	})
	task := asynq.NewTask(TypeSignatureRequest, payload)
	_, err := q.client.EnqueueContext(ctx, task)
	if err != nil {
		q.log.Warn().Err(err).Str("email", partyEmail).Msg("enqueue signature request failed")
		return err
	}
	return nil
}

func (q *TaskEnqueuer) EnqueueContractEvent(ctx context.Context, event string, payload interface{}) error {
	body, _ := json.Marshal(payload)
	task := asynq.NewTask(TypeContractEvent, body)
	_, err := q.client.EnqueueContext(ctx, task)
	if err != nil {
		q.log.Warn().Err(err).Str("event", event).Msg("enqueue contract event failed")
		return err
	}
	return nil
}

var _ ports.TaskEnqueuer = (*TaskEnqueuer)(nil)
