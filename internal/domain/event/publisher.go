package event

import "context"

// Publisher delivers domain events to downstream consumers. Implemented by
// the queue adapter; consumed by the application layer.
//
// Delivery is at-least-once: a partial batch failure is reported as a whole
// failed batch, and callers must treat the batch as not confirmed.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	// PublishBatch publishes an ordered, non-empty set of events as one
	// logical operation. An empty input is a no-op and performs no I/O.
	PublishBatch(ctx context.Context, events []Event) error
}
