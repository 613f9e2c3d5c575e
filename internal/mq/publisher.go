package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/BruksfildServices01/cabin-scheduler/internal/logger"
	"github.com/BruksfildServices01/cabin-scheduler/internal/notify"
)

type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type notificationEvent struct {
	UserID     uint           `json:"user_id"`
	Title      string         `json:"title"`
	Body       string         `json:"body"`
	Severity   string         `json:"severity"`
	Attributes map[string]any `json:"attributes,omitempty"`
	SentAt     time.Time      `json:"sent_at"`
}

// NotificationPublisher é um notify.Sink que publica cada notificação num
// exchange topic, com routing key notification.<severity>.
type NotificationPublisher struct {
	ch       publisher
	exchange string
	now      func() time.Time
}

func NewNotificationPublisher(ch *amqp.Channel, exchange string) (*NotificationPublisher, error) {
	if err := ch.ExchangeDeclare(
		exchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}
	return newNotificationPublisher(ch, exchange), nil
}

func newNotificationPublisher(ch publisher, exchange string) *NotificationPublisher {
	return &NotificationPublisher{ch: ch, exchange: exchange, now: time.Now}
}

func (p *NotificationPublisher) Name() string { return "amqp" }

func (p *NotificationPublisher) Deliver(ctx context.Context, userID uint, msg notify.Message) error {
	now := p.now()

	body, err := json.Marshal(notificationEvent{
		UserID:     userID,
		Title:      msg.Title,
		Body:       msg.Body,
		Severity:   string(msg.Severity),
		Attributes: msg.Attributes,
		SentAt:     now,
	})
	if err != nil {
		return err
	}

	routingKey := "notification." + string(msg.Severity)
	logger.ExternalServiceCall("amqp", "publish", "exchange", p.exchange, "routing_key", routingKey, "user_id", userID)

	err = p.ch.PublishWithContext(
		ctx,
		p.exchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    uuid.NewString(),
			Timestamp:    now,
			Body:         body,
		},
	)

	logger.ExternalServiceResult("amqp", "publish", err, "routing_key", routingKey)
	return err
}

var _ notify.Sink = (*NotificationPublisher)(nil)
