package queue

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/liv8solar/solar-leads/internal/entity"
	"github.com/liv8solar/solar-leads/internal/infra/logger"
)

type publisherMock struct {
	mock.Mock
}

func (m *publisherMock) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	args := m.Called(ctx, exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

type processorMock struct {
	mock.Mock
}

func (m *processorMock) Process(ctx context.Context, job entity.NotificationJob) error {
	return m.Called(ctx, job).Error(0)
}

type acker struct {
	acked, nacked, requeued bool
}

func (a *acker) Ack(tag uint64, multiple bool) error { a.acked = true; return nil }
func (a *acker) Nack(tag uint64, multiple, requeue bool) error {
	a.nacked, a.requeued = true, requeue
	return nil
}
func (a *acker) Reject(tag uint64, requeue bool) error { return nil }

type chanConsumer struct {
	ch chan amqp.Delivery
}

func (c chanConsumer) Consume(string, string, bool, bool, bool, bool, amqp.Table) (<-chan amqp.Delivery, error) {
	return c.ch, nil
}

func TestPublishNotification(t *testing.T) {
	pub := new(publisherMock)
	job := entity.NotificationJob{ID: "job-1", Kind: entity.KindLeadSubmission, Lead: &entity.Lead{ID: 3}}

	pub.On("PublishWithContext", mock.Anything, ExchangeName, RoutingKey, false, false,
		mock.MatchedBy(func(msg amqp.Publishing) bool {
			var decoded entity.NotificationJob
			return json.Unmarshal(msg.Body, &decoded) == nil &&
				decoded.Lead.ID == 3 &&
				msg.MessageId == "job-1" &&
				msg.Type == "lead_submission" &&
				msg.DeliveryMode == amqp.Persistent
		})).Return(nil)

	require.NoError(t, NewProducer(pub).PublishNotification(context.Background(), job))
	pub.AssertExpectations(t)
}

func TestPublishNotificationWrapsError(t *testing.T) {
	pub := new(publisherMock)
	pub.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(amqp.ErrClosed)

	err := NewProducer(pub).PublishNotification(context.Background(), entity.NotificationJob{ID: "x"})
	assert.ErrorIs(t, err, amqp.ErrClosed)
}

func TestWorkerAcksProcessedJob(t *testing.T) {
	proc := new(processorMock)
	proc.On("Process", mock.Anything, mock.MatchedBy(func(j entity.NotificationJob) bool { return j.ID == "ok" })).Return(nil)

	a := &acker{}
	body, _ := json.Marshal(entity.NotificationJob{ID: "ok", Kind: entity.KindSolarCalculation})
	NewWorker(nil, proc, logger.Nop()).handle(context.Background(), amqp.Delivery{Acknowledger: a, Body: body})

	assert.True(t, a.acked)
	assert.False(t, a.nacked)
	proc.AssertExpectations(t)
}

func TestWorkerDeadLettersFailures(t *testing.T) {
	proc := new(processorMock)
	proc.On("Process", mock.Anything, mock.Anything).Return(errors.New("unknown kind"))
	w := NewWorker(nil, proc, logger.Nop())

	failed := &acker{}
	body, _ := json.Marshal(entity.NotificationJob{ID: "bad"})
	w.handle(context.Background(), amqp.Delivery{Acknowledger: failed, Body: body})
	assert.True(t, failed.nacked)
	assert.False(t, failed.requeued)

	malformed := &acker{}
	w.handle(context.Background(), amqp.Delivery{Acknowledger: malformed, Body: []byte("{")})
	assert.True(t, malformed.nacked)
	assert.False(t, malformed.requeued)
	proc.AssertNumberOfCalls(t, "Process", 1)
}

func TestWorkerStartStopsOnContextCancel(t *testing.T) {
	processed := make(chan struct{}, 1)
	proc := new(processorMock)
	proc.On("Process", mock.Anything, mock.Anything).Return(nil).Run(func(mock.Arguments) {
		processed <- struct{}{}
	})

	deliveries := make(chan amqp.Delivery, 1)
	body, _ := json.Marshal(entity.NotificationJob{ID: "a"})
	a := &acker{}
	deliveries <- amqp.Delivery{Acknowledger: a, Body: body}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- NewWorker(chanConsumer{deliveries}, proc, logger.Nop()).Start(ctx, QueueName) }()

	select {
	case <-processed:
	case <-time.After(time.Second):
		t.Fatal("job was not processed")
	}
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestWorkerStartReportsClosedChannel(t *testing.T) {
	deliveries := make(chan amqp.Delivery)
	close(deliveries)

	err := NewWorker(chanConsumer{deliveries}, new(processorMock), logger.Nop()).Start(context.Background(), QueueName)
	assert.Error(t, err)
}
