package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/booking-service/internal/entities"

	"github.com/hibiken/asynq"
)

type NotificationStore interface {
	SaveNotification(ctx context.Context, n entities.Notification) error
	GetUserEmail(ctx context.Context, id string) (string, error)
}

type Mailer interface {
	Send(ctx context.Context, to, subject, text string) error
}

// Worker consumes TaskDeliver: it stores the notification and, when a mailer
// is configured, emails the recipient.
type Worker struct {
	logger *slog.Logger
	server *asynq.Server
	store  NotificationStore
	mailer Mailer
}

// NewWorker accepts a nil mailer, in which case notifications are only stored.
func NewWorker(logger *slog.Logger, redis asynq.RedisClientOpt, concurrency int, store NotificationStore, mailer Mailer) *Worker {
	return &Worker{
		logger: logger.With(slog.String("component", "notify_worker")),
		server: asynq.NewServer(redis, asynq.Config{
			Concurrency: concurrency,
			Queues:      map[string]int{QueueName: 1},
		}),
		store:  store,
		mailer: mailer,
	}
}

func (w *Worker) Start(_ context.Context) error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskDeliver, w.HandleDeliver)
	return w.server.Start(mux)
}

func (w *Worker) Close() error {
	w.server.Shutdown()
	return nil
}

func (w *Worker) HandleDeliver(ctx context.Context, t *asynq.Task) error {
	var task DeliverTask
	if err := json.Unmarshal(t.Payload(), &task); err != nil {
		return fmt.Errorf("invalid notification task: %v: %w", err, asynq.SkipRetry)
	}

	n := entities.Notification{
		ID:          task.ID,
		RecipientID: task.RecipientID,
		Event:       task.Namespace,
		Title:       task.Payload.Title,
		Message:     task.Payload.Message,
		Type:        task.Payload.Type,
		OrderID:     task.Payload.OrderID,
		CreatedAt:   task.CreatedAt,
	}
	if err := w.store.SaveNotification(ctx, n); err != nil {
		return err
	}

	if w.mailer == nil {
		return nil
	}

	email, err := w.store.GetUserEmail(ctx, task.RecipientID)
	if entities.IsKind(err, entities.KindNotFound) || (err == nil && email == "") {
		w.logger.Debug("recipient has no email", slog.String("recipient", task.RecipientID))
		return nil
	}
	if err != nil {
		return err
	}

	if err := w.mailer.Send(ctx, email, task.Payload.Title, task.Payload.Message); err != nil {
		w.logger.Error("failed to send notification email", slog.String("recipient", task.RecipientID), slog.Any("error", err))
		return err
	}
	return nil
}
