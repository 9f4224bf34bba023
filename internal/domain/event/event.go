package event

import "time"

// Kind discriminates the type of a domain event.
type Kind string

const (
	KindCreated     Kind = "deliveryman.created"
	KindActivated   Kind = "deliveryman.activated"
	KindDeactivated Kind = "deliveryman.deactivated"
	KindDeleted     Kind = "deliveryman.deleted"
)

// Event is an immutable fact produced by an aggregate state transition.
// Events are owned by the aggregate that produced them until a use case
// reads and publishes them.
type Event interface {
	Kind() Kind
	AggregateID() string
	OccurredAt() time.Time
}

// Created is emitted exactly once per logical creation of a delivery person.
type Created struct {
	DeliveryManID string `json:"deliveryManId"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Cpf           string `json:"cpf"`
	Phone         string `json:"phone"`

	occurredAt time.Time
}

func NewCreated(id, name, email, cpf, phone string) Created {
	return Created{
		DeliveryManID: id,
		Name:          name,
		Email:         email,
		Cpf:           cpf,
		Phone:         phone,
		occurredAt:    time.Now().UTC(),
	}
}

func (e Created) Kind() Kind            { return KindCreated }
func (e Created) AggregateID() string   { return e.DeliveryManID }
func (e Created) OccurredAt() time.Time { return e.occurredAt }

// Activated is emitted when an inactive delivery person becomes active.
type Activated struct {
	DeliveryManID string `json:"deliveryManId"`
	Name          string `json:"name"`

	occurredAt time.Time
}

func NewActivated(id, name string) Activated {
	return Activated{DeliveryManID: id, Name: name, occurredAt: time.Now().UTC()}
}

func (e Activated) Kind() Kind            { return KindActivated }
func (e Activated) AggregateID() string   { return e.DeliveryManID }
func (e Activated) OccurredAt() time.Time { return e.occurredAt }

// Deactivated is emitted when an active delivery person becomes inactive.
type Deactivated struct {
	DeliveryManID string `json:"deliveryManId"`
	Name          string `json:"name"`

	occurredAt time.Time
}

func NewDeactivated(id, name string) Deactivated {
	return Deactivated{DeliveryManID: id, Name: name, occurredAt: time.Now().UTC()}
}

func (e Deactivated) Kind() Kind            { return KindDeactivated }
func (e Deactivated) AggregateID() string   { return e.DeliveryManID }
func (e Deactivated) OccurredAt() time.Time { return e.occurredAt }

// Deleted is emitted before the destructive persistence step, so a crash in
// between yields a duplicate event downstream rather than a lost one.
type Deleted struct {
	DeliveryManID string `json:"deliveryManId"`
	Name          string `json:"name"`

	occurredAt time.Time
}

func NewDeleted(id, name string) Deleted {
	return Deleted{DeliveryManID: id, Name: name, occurredAt: time.Now().UTC()}
}

func (e Deleted) Kind() Kind            { return KindDeleted }
func (e Deleted) AggregateID() string   { return e.DeliveryManID }
func (e Deleted) OccurredAt() time.Time { return e.occurredAt }
