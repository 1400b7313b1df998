package emergencyqueue

import (
	"context"
	"fmt"
	"sync"

	"onboarding-service/internal/app/contracts"
	"onboarding-service/internal/app/models"
	"onboarding-service/internal/pkg/constvars"
	"onboarding-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Service publishes emergency notifications to a durable RabbitMQ queue
// with publisher confirms. A notification that cannot be confirmed is
// diverted to the dead-letter queue so it is never lost silently.
type Service struct {
	ch        *amqp.Channel
	log       *zap.Logger
	queue     string
	dlq       string
	limiter   *rate.Limiter
	confirms  chan amqp.Confirmation
	mu        sync.Mutex
}

func NewService(conn *amqp.Connection, log *zap.Logger, queue, dlq string, ratePerSec float64) (*Service, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	for _, name := range []string{queue, dlq} {
		_, err = ch.QueueDeclare(
			name,
			true,  // durable
			false, // autoDelete
			false, // exclusive
			false, // noWait
			nil,
		)
		if err != nil {
			return nil, err
		}
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	if ratePerSec <= 0 {
		ratePerSec = 1
	}

	return &Service{
		ch:       ch,
		log:      log,
		queue:    queue,
		dlq:      dlq,
		limiter:  rate.NewLimiter(rate.Limit(ratePerSec), 1),
		confirms: ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}, nil
}

func (s *Service) Publish(ctx context.Context, notification *models.EmergencyNotification) error {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)

	body, err := json.Marshal(notification)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, s.queue)
	}

	if err := s.publish(ctx, s.queue, body); err != nil {
		s.log.Error("emergencyqueue.Publish primary queue failed, diverting to DLQ",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, notification.SessionID),
			zap.Error(err),
		)
		if dlqErr := s.publish(ctx, s.dlq, body); dlqErr != nil {
			s.log.Error("emergencyqueue.Publish DLQ publish failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSessionIDKey, notification.SessionID),
				zap.Error(dlqErr),
			)
		}
		return err
	}

	s.log.Info("emergencyqueue.Publish confirmed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, notification.SessionID),
	)
	return nil
}

func (s *Service) publish(ctx context.Context, queue string, body []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}
	if err := s.ch.PublishWithContext(ctx, "", queue, false, false, msg); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, queue)
	}

	select {
	case confirmed := <-s.confirms:
		if !confirmed.Ack {
			return exceptions.ErrRabbitMQPublishMessage(fmt.Errorf("message not confirmed"), queue)
		}
	case <-ctx.Done():
		return exceptions.ErrRabbitMQPublishMessage(ctx.Err(), queue)
	}
	return nil
}

var _ contracts.EmergencyPublisher = (*Service)(nil)
