package entity

import (
	"time"

	"github.com/felipecouto0101/FastFeet-Deliveryman/internal/domain/derrors"
	"github.com/felipecouto0101/FastFeet-Deliveryman/internal/domain/event"
	"github.com/felipecouto0101/FastFeet-Deliveryman/pkg/helpers"
)

// DeliveryMan is the aggregate root for the delivery-personnel domain.
// All state changes go through explicit mutation methods so the updatedAt
// rule and event emission are auditable steps, not side effects of field
// assignment. None of the methods perform I/O.
type DeliveryMan struct {
	id           string
	name         string
	email        string
	cpf          string
	phone        string
	passwordHash string
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time

	// events accumulated since the last clear, in insertion order.
	// Transient: never persisted, cleared by the use case after publication.
	events []event.Event
}

// New builds an active delivery person with an empty event buffer. The id is
// assigned by the caller; format validation belongs to the boundary layer,
// so construction always succeeds.
func New(id, name, email, cpf, phone string) *DeliveryMan {
	now := time.Now().UTC()
	return &DeliveryMan{
		id:        id,
		name:      name,
		email:     email,
		cpf:       cpf,
		phone:     phone,
		isActive:  true,
		createdAt: now,
		updatedAt: now,
	}
}

// Reconstruct rebuilds an aggregate from stored state. No events, no
// timestamp changes.
func Reconstruct(id, name, email, cpf, phone, passwordHash string, isActive bool, createdAt, updatedAt time.Time) *DeliveryMan {
	return &DeliveryMan{
		id:           id,
		name:         name,
		email:        email,
		cpf:          cpf,
		phone:        phone,
		passwordHash: passwordHash,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (d *DeliveryMan) ID() string           { return d.id }
func (d *DeliveryMan) Name() string         { return d.name }
func (d *DeliveryMan) Email() string        { return d.email }
func (d *DeliveryMan) Cpf() string          { return d.cpf }
func (d *DeliveryMan) Phone() string        { return d.phone }
func (d *DeliveryMan) PasswordHash() string { return d.passwordHash }
func (d *DeliveryMan) IsActive() bool       { return d.isActive }
func (d *DeliveryMan) CreatedAt() time.Time { return d.createdAt }
func (d *DeliveryMan) UpdatedAt() time.Time { return d.updatedAt }

func (d *DeliveryMan) touch() { d.updatedAt = time.Now().UTC() }

// SetPassword replaces the stored credential with a salted one-way hash of
// plain. Repeated calls with the same plaintext yield different hashes.
func (d *DeliveryMan) SetPassword(plain string) error {
	if len(plain) < 6 {
		return derrors.InvalidPassword()
	}
	hash, err := helpers.HashPassword(plain)
	if err != nil {
		return err
	}
	d.passwordHash = hash
	d.touch()
	return nil
}

// CheckPassword reports whether plain matches the stored hash. Pure read.
func (d *DeliveryMan) CheckPassword(plain string) bool {
	return helpers.CompareHashAndPassword(d.passwordHash, plain)
}

// Rename and the other Change* methods are administrative corrections, not
// lifecycle facts: they advance updatedAt but emit no event.
func (d *DeliveryMan) Rename(name string) {
	d.name = name
	d.touch()
}

func (d *DeliveryMan) ChangeEmail(email string) {
	d.email = email
	d.touch()
}

func (d *DeliveryMan) ChangeCpf(cpf string) {
	d.cpf = cpf
	d.touch()
}

func (d *DeliveryMan) ChangePhone(phone string) {
	d.phone = phone
	d.touch()
}

// Activate sets the aggregate active. Calling it when already active is a
// no-op: no event, no updatedAt change.
func (d *DeliveryMan) Activate() {
	if d.isActive {
		return
	}
	d.isActive = true
	d.touch()
	d.events = append(d.events, event.NewActivated(d.id, d.name))
}

// Deactivate is symmetric with Activate.
func (d *DeliveryMan) Deactivate() {
	if !d.isActive {
		return
	}
	d.isActive = false
	d.touch()
	d.events = append(d.events, event.NewDeactivated(d.id, d.name))
}

// MarkCreated appends a Created event carrying the current identity fields.
// Invoked exactly once per logical creation, by the creating use case.
func (d *DeliveryMan) MarkCreated() {
	d.events = append(d.events, event.NewCreated(d.id, d.name, d.email, d.cpf, d.phone))
}

// MarkDeleted appends a Deleted event. It does not remove the aggregate from
// storage; the use case persists the deletion after publication.
func (d *DeliveryMan) MarkDeleted() {
	d.events = append(d.events, event.NewDeleted(d.id, d.name))
}

// PendingEvents returns a snapshot of the buffer in insertion order. Callers
// never hold a live alias into the aggregate's internal slice.
func (d *DeliveryMan) PendingEvents() []event.Event {
	out := make([]event.Event, len(d.events))
	copy(out, d.events)
	return out
}

// ClearEvents empties the buffer. Idempotent.
func (d *DeliveryMan) ClearEvents() { d.events = nil }

// Snapshot is the serializable public view of a delivery person. It never
// carries the credential.
type Snapshot struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Cpf       string    `json:"cpf"`
	Phone     string    `json:"phone"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (d *DeliveryMan) Snapshot() Snapshot {
	return Snapshot{
		ID:        d.id,
		Name:      d.name,
		Email:     d.email,
		Cpf:       d.cpf,
		Phone:     d.phone,
		IsActive:  d.isActive,
		CreatedAt: d.createdAt,
		UpdatedAt: d.updatedAt,
	}
}
