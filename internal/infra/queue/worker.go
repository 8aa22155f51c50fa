package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/liv8solar/solar-leads/internal/entity"
	"github.com/liv8solar/solar-leads/internal/infra/logger"
)

// Processor runs one notification job.
type Processor interface {
	Process(ctx context.Context, job entity.NotificationJob) error
}

// Consumer is the part of *amqp.Channel the worker uses.
type Consumer interface {
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
}

type Worker struct {
	Channel   Consumer
	Processor Processor
	Logger    *logger.Logger
}

func NewWorker(ch Consumer, processor Processor, log *logger.Logger) *Worker {
	return &Worker{
		Channel:   ch,
		Processor: processor,
		Logger:    log,
	}
}

// Start consumes queueName until ctx is cancelled or the channel closes.
func (w *Worker) Start(ctx context.Context, queueName string) error {
	msgs, err := w.Channel.Consume(queueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to register consumer on %s: %w", queueName, err)
	}

	w.Logger.Info("queue worker started", "queue", queueName)
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return fmt.Errorf("delivery channel for %s closed", queueName)
			}
			w.handle(ctx, d)
		}
	}
}

// handle acks processed jobs. Malformed bodies and failed jobs are nacked
// without requeue so they land in the dead-letter queue.
func (w *Worker) handle(ctx context.Context, d amqp.Delivery) {
	var job entity.NotificationJob
	if err := json.Unmarshal(d.Body, &job); err != nil {
		w.Logger.Error("invalid notification job", "error", err, "message_id", d.MessageId)
		d.Nack(false, false)
		return
	}

	if err := w.Processor.Process(ctx, job); err != nil {
		w.Logger.Error("notification job failed", "error", err, "job_id", job.ID, "kind", job.Kind)
		d.Nack(false, false)
		return
	}

	d.Ack(false)
}
