package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/felipecouto0101/FastFeet-Deliveryman/internal/domain/derrors"
	"github.com/felipecouto0101/FastFeet-Deliveryman/internal/domain/entity"
	"github.com/felipecouto0101/FastFeet-Deliveryman/internal/domain/event"
	repo "github.com/felipecouto0101/FastFeet-Deliveryman/internal/domain/repository"
)

// Service coordinates aggregate mutation, persistence and event publication
// for the delivery-personnel use cases. Each method is a stateless unit of
// work: mutate, then persist, then publish, then clear. Delete publishes
// before the destructive persistence step.
type Service struct {
	Repo      repo.DeliveryManRepository
	Publisher event.Publisher
	Logger    *logrus.Logger
}

func NewService(r repo.DeliveryManRepository, p event.Publisher, logger *logrus.Logger) *Service {
	return &Service{Repo: r, Publisher: p, Logger: logger}
}

type CreateInput struct {
	ID       string
	Name     string
	Email    string
	Cpf      string
	Phone    string
	Password string
}

// UpdateInput carries a partial update: nil fields are left untouched.
type UpdateInput struct {
	ID       string
	Name     *string
	Email    *string
	Cpf      *string
	Phone    *string
	Password *string
	IsActive *bool
}

// flushEvents publishes the aggregate's pending events as one batch and
// clears the buffer only after confirmed publication. A buffer that is
// already empty causes no publisher call at all.
func (s *Service) flushEvents(ctx context.Context, d *entity.DeliveryMan) error {
	events := d.PendingEvents()
	if len(events) == 0 {
		return nil
	}
	if err := s.Publisher.PublishBatch(ctx, events); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("deliveryman_id", d.ID()).Error("publish events failed")
		}
		return err
	}
	d.ClearEvents()
	return nil
}

// Create builds the aggregate, persists it and publishes its Created event.
// Persistence and publication failures propagate unchanged.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.DeliveryMan, error) {
	d := entity.New(in.ID, in.Name, in.Email, in.Cpf, in.Phone)
	if err := d.SetPassword(in.Password); err != nil {
		return nil, err
	}
	d.MarkCreated()

	if err := s.Repo.Create(ctx, d); err != nil {
		return nil, err
	}
	if err := s.flushEvents(ctx, d); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithField("deliveryman_id", d.ID()).Info("delivery person created")
	}
	return d, nil
}

// Find loads one delivery person by id.
func (s *Service) Find(ctx context.Context, id string) (*entity.DeliveryMan, error) {
	d, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, derrors.NotFound(id)
	}
	return d, nil
}

// List delegates to the repository scan; no domain-level post-processing.
func (s *Service) List(ctx context.Context, params repo.ListParams) (repo.Page, error) {
	return s.Repo.FindAll(ctx, params)
}

// Update applies only the fields present in the input. The isActive
// transition is the sole event-producing path: a no-op transition publishes
// nothing.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.DeliveryMan, error) {
	d, err := s.Repo.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, derrors.NotFound(in.ID)
	}

	if in.Name != nil {
		d.Rename(*in.Name)
	}
	if in.Email != nil {
		d.ChangeEmail(*in.Email)
	}
	if in.Cpf != nil {
		d.ChangeCpf(*in.Cpf)
	}
	if in.Phone != nil {
		d.ChangePhone(*in.Phone)
	}
	if in.Password != nil {
		if err := d.SetPassword(*in.Password); err != nil {
			return nil, err
		}
	}
	if in.IsActive != nil {
		if *in.IsActive {
			d.Activate()
		} else {
			d.Deactivate()
		}
	}

	if err := s.Repo.Update(ctx, d); err != nil {
		return nil, err
	}
	if err := s.flushEvents(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Delete publishes the Deleted event strictly before the destructive
// persistence step: a crash in between leaves a duplicate event downstream,
// never a silent loss of the deletion fact.
func (s *Service) Delete(ctx context.Context, id string) error {
	d, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if d == nil {
		return derrors.NotFound(id)
	}

	d.MarkDeleted()
	if err := s.flushEvents(ctx, d); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	if s.Logger != nil {
		s.Logger.WithField("deliveryman_id", id).Info("delivery person deleted")
	}
	return nil
}
