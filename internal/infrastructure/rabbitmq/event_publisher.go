package rabbitmq

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/felipecouto0101/FastFeet-Deliveryman/internal/domain/derrors"
	"github.com/felipecouto0101/FastFeet-Deliveryman/internal/domain/event"
)

const sourceName = "deliveryman-service"

// EventPublisher delivers domain events to a durable queue. One message per
// event; the envelope carries the event kind, the occurrence timestamp and
// the event payload.
type EventPublisher struct {
	conn  *amqp.Connection
	ch    *amqp.Channel
	Queue string
}

func NewEventPublisher(url, queue string) (*EventPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, derrors.Publish("connect", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, derrors.Publish("channel", err)
	}
	_, err = ch.QueueDeclare(
		queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, derrors.Publish("declare queue", err)
	}
	return &EventPublisher{conn: conn, ch: ch, Queue: queue}, nil
}

func (p *EventPublisher) Close() {
	if p == nil {
		return
	}
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}

type envelope struct {
	EventType  string      `json:"eventType"`
	OccurredOn string      `json:"occurredOn"`
	Data       event.Event `json:"data"`
}

func (p *EventPublisher) Publish(ctx context.Context, e event.Event) error {
	return p.send(ctx, e)
}

// PublishBatch publishes the events in order on a single channel. An empty
// input touches no transport at all. Any failed entry fails the whole batch:
// the caller cannot assume which subset was accepted (at-least-once).
func (p *EventPublisher) PublishBatch(ctx context.Context, events []event.Event) error {
	if len(events) == 0 {
		return nil
	}
	for _, e := range events {
		if err := p.send(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (p *EventPublisher) send(ctx context.Context, e event.Event) error {
	body, err := json.Marshal(envelope{
		EventType:  string(e.Kind()),
		OccurredOn: e.OccurredAt().UTC().Format(time.RFC3339Nano),
		Data:       e,
	})
	if err != nil {
		return derrors.Publish(string(e.Kind()), err)
	}
	err = p.ch.PublishWithContext(ctx,
		"",      // default exchange
		p.Queue, // routing key = queue
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    e.OccurredAt(),
			Headers: amqp.Table{
				"eventType": string(e.Kind()),
				"source":    sourceName,
			},
			Body: body,
		},
	)
	if err != nil {
		return derrors.Publish(string(e.Kind()), err)
	}
	return nil
}

var _ event.Publisher = (*EventPublisher)(nil)
