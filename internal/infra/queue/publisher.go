package queue

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"hotel-booking-api/internal/pkg/config"
	"hotel-booking-api/internal/usecase/commands"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	queueBookingCreated   = "booking.created"
	queueBookingActivated = "booking.activated"
)

// AMQPPublisher emits booking lifecycle events to RabbitMQ. Publishing is
// best-effort: every failure is logged and swallowed so the request flow
// never depends on the broker.
type AMQPPublisher struct {
	url     string
	enabled bool
}

func NewAMQPPublisher(cfg config.QueueConfig) commands.EventPublisher {
	return &AMQPPublisher{url: cfg.URL, enabled: cfg.Enabled && cfg.URL != ""}
}

func (p *AMQPPublisher) BookingCreated(ctx context.Context, event commands.BookingCreatedEvent) {
	p.publish(ctx, queueBookingCreated, event)
}

func (p *AMQPPublisher) BookingActivated(ctx context.Context, event commands.BookingActivatedEvent) {
	p.publish(ctx, queueBookingActivated, event)
}

func (p *AMQPPublisher) publish(ctx context.Context, queueName string, event any) {
	if !p.enabled {
		return
	}

	// Dial per publish keeps the publisher stateless; event volume is a
	// handful per booking, not a firehose.
	conn, err := amqp.Dial(p.url)
	if err != nil {
		slog.Warn("amqp dial failed", "queue", queueName, "error", err.Error())
		return
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		slog.Warn("amqp channel open failed", "queue", queueName, "error", err.Error())
		return
	}
	defer func() { _ = ch.Close() }()

	// Durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		slog.Warn("amqp queue declare failed", "queue", queueName, "error", err.Error())
		return
	}

	body, err := json.Marshal(event)
	if err != nil {
		slog.Warn("amqp event marshal failed", "queue", queueName, "error", err.Error())
		return
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", queueName, false, false, pub); err != nil {
		slog.Warn("amqp publish failed", "queue", queueName, "error", err.Error())
	}
}
