package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/BruksfildServices01/cabin-scheduler/internal/logger"
)

// Consumer escuta a fila de comandos e responde em ReplyTo quando houver.
type Consumer struct {
	ch     *amqp.Channel
	queue  string
	router *CommandRouter
	log    *slog.Logger
}

func NewConsumer(ch *amqp.Channel, queue string, router *CommandRouter) *Consumer {
	return &Consumer{
		ch:     ch,
		queue:  queue,
		router: router,
		log:    logger.WithComponent("mq_consumer").With("queue", queue),
	}
}

// Run bloqueia até ctx ser cancelado ou o canal fechar.
func (c *Consumer) Run(ctx context.Context) error {
	_, err := c.ch.QueueDeclare(
		c.queue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	msgs, err := c.ch.Consume(
		c.queue,
		"",
		false, // ack manual
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	c.log.Info("listening")

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return fmt.Errorf("delivery channel closed")
			}
			c.handle(ctx, d)
		}
	}
}

func (c *Consumer) handle(ctx context.Context, d amqp.Delivery) {
	// sempre dá ack: erro de negócio volta na resposta, não em redelivery
	defer func() {
		if err := d.Ack(false); err != nil {
			c.log.Error("failed to ack message", "message_id", d.MessageId, "error", err)
		}
	}()

	resp := c.router.Handle(ctx, d.Body)

	if d.ReplyTo == "" {
		return
	}

	body, err := json.Marshal(resp)
	if err != nil {
		c.log.Error("failed to marshal response", "error", err)
		return
	}

	if err := c.ch.PublishWithContext(
		ctx,
		"",
		d.ReplyTo,
		false,
		false,
		amqp.Publishing{
			ContentType:   "application/json",
			CorrelationId: d.CorrelationId,
			Body:          body,
		},
	); err != nil {
		c.log.Error("failed to publish response", "reply_to", d.ReplyTo, "error", err)
	}
}
