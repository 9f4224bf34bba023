package repository

import (
	"context"

	"github.com/felipecouto0101/FastFeet-Deliveryman/internal/domain/entity"
)

// ListParams controls the paginated scan. Cursor is the opaque continuation
// token from a previous Page; empty means start from the beginning. The
// boundary layer validates the Limit range.
type ListParams struct {
	Limit  int
	Cursor string
}

// Page is one slice of a scan. HasNext is true iff a continuation cursor
// exists.
type Page struct {
	Items      []*entity.DeliveryMan
	NextCursor string
	HasNext    bool
}

// DeliveryManRepository defines the persistence contract consumed by the use
// cases and implemented by the store adapter. FindByID returns (nil, nil)
// when no record exists; absence is a normal result, not an error.
type DeliveryManRepository interface {
	Create(ctx context.Context, d *entity.DeliveryMan) error
	FindByID(ctx context.Context, id string) (*entity.DeliveryMan, error)
	FindAll(ctx context.Context, params ListParams) (Page, error)
	Update(ctx context.Context, d *entity.DeliveryMan) error
	Delete(ctx context.Context, id string) error
}
