package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const (
	TaskDeliver = "notification:deliver"
	QueueName   = "notifications"

	maxRetry = 5
)

// DeliverTask is the asynq payload of TaskDeliver. ID is fixed at enqueue time
// so that retries persist the notification once.
type DeliverTask struct {
	ID          string    `json:"id"`
	Namespace   string    `json:"namespace"`
	RecipientID string    `json:"recipient_id"`
	Payload     Payload   `json:"payload"`
	CreatedAt   time.Time `json:"created_at"`
}

type enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Queue hands payloads to the asynq worker for persistence and email.
type Queue struct {
	client enqueuer
}

func NewQueue(client *asynq.Client) *Queue {
	return &Queue{client: client}
}

func (q *Queue) Emit(ctx context.Context, namespace, recipientID string, payload Payload) error {
	b, err := json.Marshal(DeliverTask{
		ID:          uuid.NewString(),
		Namespace:   namespace,
		RecipientID: recipientID,
		Payload:     payload,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal notification task: %w", err)
	}

	task := asynq.NewTask(TaskDeliver, b)
	if _, err := q.client.EnqueueContext(ctx, task, asynq.Queue(QueueName), asynq.MaxRetry(maxRetry)); err != nil {
		return fmt.Errorf("failed to enqueue notification: %w", err)
	}
	return nil
}
