package repository

import (
	"context"
	"time"

	"venue-booking-engine/internal/domain/resource"
	"venue-booking-engine/internal/infra"
	"venue-booking-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const resourceColumns = `id, name, type, owner_id, is_ac, image, address,
	price_morning, price_evening, price_full_day, price_per_night,
	created_at, updated_at`

type ResourceRepository struct {
	pool *pgxpool.Pool
}

func NewResourceRepository(pool *pgxpool.Pool) *ResourceRepository {
	return &ResourceRepository{pool: pool}
}

func (r *ResourceRepository) Create(ctx context.Context, res *resource.Resource) error {
	if err := insertResource(ctx, r.pool, res); err != nil {
		return infra.ClassifyPgErr("failed to create resource", err)
	}
	return nil
}

func (r *ResourceRepository) FindByID(ctx context.Context, id uuid.UUID) (*resource.Resource, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+resourceColumns+` FROM resources WHERE id = $1`, id)
	res, err := scanResource(row)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to find resource by id", err)
	}
	return res, nil
}

func (r *ResourceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM resources WHERE id = $1`, id)
	if err != nil {
		return infra.ClassifyPgErr("failed to delete resource", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("resource not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ResourceRepository) List(ctx context.Context, filter queries.ResourceFilter) ([]*resource.Resource, error) {
	// Both filter fields are optional; NULL disables the predicate.
	rows, err := r.pool.Query(ctx, `
		SELECT `+resourceColumns+` FROM resources
		WHERE ($1::text IS NULL OR type = $1)
		  AND ($2::uuid IS NULL OR owner_id = $2)
		ORDER BY created_at`,
		filter.Type, filter.OwnerID,
	)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to list resources", err)
	}
	defer rows.Close()

	var result []*resource.Resource
	for rows.Next() {
		res, err := scanResource(rows)
		if err != nil {
			return nil, infra.ClassifyPgErr("failed to scan resource", err)
		}
		result = append(result, res)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.ClassifyPgErr("failed to read resource rows", err)
	}
	return result, nil
}

// dbExecutor is satisfied by both *pgxpool.Pool and pgx.Tx, so the insert is
// shared with the owner-onboarding transaction.
type dbExecutor interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func insertResource(ctx context.Context, db dbExecutor, res *resource.Resource) error {
	p := res.PriceShape()
	_, err := db.Exec(ctx, `
		INSERT INTO resources (id, name, type, owner_id, is_ac, image, address,
			price_morning, price_evening, price_full_day, price_per_night,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		res.ID(), res.Name(), res.Kind().String(), res.OwnerID(),
		res.IsAC(), res.Image(), res.Address(),
		p.Morning, p.Evening, p.FullDay, p.PerNight,
		res.CreatedAt(), res.UpdatedAt(),
	)
	return err
}

func scanResource(row pgx.Row) (*resource.Resource, error) {
	var (
		id, ownerID                         uuid.UUID
		name, kind, image, address          string
		isAC                                bool
		morning, evening, fullDay, perNight *int64
		createdAt, updatedAt                time.Time
	)
	if err := row.Scan(
		&id, &name, &kind, &ownerID, &isAC, &image, &address,
		&morning, &evening, &fullDay, &perNight,
		&createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	return resource.ReconstructResource(
		id, name, resource.Type(kind), ownerID, isAC, image, address,
		resource.PriceShape{
			Morning:  morning,
			Evening:  evening,
			FullDay:  fullDay,
			PerNight: perNight,
		},
		createdAt, updatedAt,
	), nil
}
