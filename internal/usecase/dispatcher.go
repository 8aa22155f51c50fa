package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/liv8solar/solar-leads/internal/entity"
	"github.com/liv8solar/solar-leads/internal/infra/logger"
)

// Dispatcher hands notification jobs to the queue when one is wired, and
// otherwise runs them inline. A failed publish falls back to inline.
type Dispatcher struct {
	Runner *Notifications
	Queue  NotificationPublisher
	Logger *logger.Logger
	newID  func() string
}

// NewDispatcher builds a dispatcher. queue may be nil.
func NewDispatcher(runner *Notifications, queue NotificationPublisher, log *logger.Logger) *Dispatcher {
	if log == nil {
		log = logger.Nop()
	}
	return &Dispatcher{
		Runner: runner,
		Queue:  queue,
		Logger: log,
		newID:  uuid.NewString,
	}
}

// Dispatch returns the report when the job ran inline, or nil when it was
// queued.
func (d *Dispatcher) Dispatch(ctx context.Context, job entity.NotificationJob) *FanOutReport {
	if job.ID == "" {
		job.ID = d.newID()
	}

	if d.Queue != nil {
		err := d.Queue.PublishNotification(ctx, job)
		if err == nil {
			return nil
		}
		d.Logger.WithContext(ctx).Warn("publish failed, running notifications inline",
			"job_id", job.ID, "kind", job.Kind, "error", err)
	}

	report := d.Runner.Run(ctx, job)
	return &report
}
