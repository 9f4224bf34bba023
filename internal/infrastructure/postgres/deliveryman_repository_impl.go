package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/felipecouto0101/FastFeet-Deliveryman/internal/domain/derrors"
	"github.com/felipecouto0101/FastFeet-Deliveryman/internal/domain/entity"
	"github.com/felipecouto0101/FastFeet-Deliveryman/internal/domain/repository"
)

const defaultPageSize = 20

// DeliveryManRepository is the pgx-backed store adapter. Pagination is
// keyset-based on the primary key; the continuation token handed to clients
// is opaque.
type DeliveryManRepository struct {
	pool *pgxpool.Pool
}

func NewDeliveryManRepository(pool *pgxpool.Pool) *DeliveryManRepository {
	return &DeliveryManRepository{pool: pool}
}

func (r *DeliveryManRepository) Create(ctx context.Context, d *entity.DeliveryMan) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO deliverymen (id, name, email, cpf, phone, password_hash, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, d.ID(), d.Name(), d.Email(), d.Cpf(), d.Phone(), d.PasswordHash(), d.IsActive(), d.CreatedAt(), d.UpdatedAt())
	if err != nil {
		return derrors.DatabaseQuery("create", err)
	}
	return nil
}

func (r *DeliveryManRepository) FindByID(ctx context.Context, id string) (*entity.DeliveryMan, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, email, cpf, phone, password_hash, is_active, created_at, updated_at
		FROM deliverymen
		WHERE id = $1
	`, id)

	d, err := scanDeliveryMan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, derrors.DatabaseQuery("findById", err)
	}
	return d, nil
}

func (r *DeliveryManRepository) FindAll(ctx context.Context, params repository.ListParams) (repository.Page, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	after, err := decodeCursor(params.Cursor)
	if err != nil {
		return repository.Page{}, err
	}

	// Fetch one extra row to decide whether a continuation cursor exists.
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, email, cpf, phone, password_hash, is_active, created_at, updated_at
		FROM deliverymen
		WHERE $1 = '' OR id > $1
		ORDER BY id
		LIMIT $2
	`, after, limit+1)
	if err != nil {
		return repository.Page{}, derrors.DatabaseQuery("findAll", err)
	}
	defer rows.Close()

	items := make([]*entity.DeliveryMan, 0, limit)
	for rows.Next() {
		d, err := scanDeliveryMan(rows)
		if err != nil {
			return repository.Page{}, derrors.DatabaseQuery("findAll", err)
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return repository.Page{}, derrors.DatabaseQuery("findAll", err)
	}

	page := repository.Page{Items: items}
	if len(items) > limit {
		page.Items = items[:limit]
		page.HasNext = true
		page.NextCursor = encodeCursor(page.Items[limit-1].ID())
	}
	return page, nil
}

func (r *DeliveryManRepository) Update(ctx context.Context, d *entity.DeliveryMan) error {
	// The use case establishes existence via a prior FindByID; concurrent
	// updates to the same id are last-write-wins.
	_, err := r.pool.Exec(ctx, `
		UPDATE deliverymen
		SET name = $2, email = $3, cpf = $4, phone = $5, password_hash = $6, is_active = $7, updated_at = $8
		WHERE id = $1
	`, d.ID(), d.Name(), d.Email(), d.Cpf(), d.Phone(), d.PasswordHash(), d.IsActive(), d.UpdatedAt())
	if err != nil {
		return derrors.DatabaseQuery("update", err)
	}
	return nil
}

func (r *DeliveryManRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM deliverymen WHERE id = $1`, id)
	if err != nil {
		return derrors.DatabaseQuery("delete", err)
	}
	return nil
}

func scanDeliveryMan(row pgx.Row) (*entity.DeliveryMan, error) {
	var (
		id, name, email, cpf, phone, passwordHash string
		isActive                                  bool
		createdAt, updatedAt                      time.Time
	)
	if err := row.Scan(&id, &name, &email, &cpf, &phone, &passwordHash, &isActive, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return entity.Reconstruct(id, name, email, cpf, phone, passwordHash, isActive, createdAt, updatedAt), nil
}

var _ repository.DeliveryManRepository = (*DeliveryManRepository)(nil)
