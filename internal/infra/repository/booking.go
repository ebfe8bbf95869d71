package repository

import (
	"context"
	"time"

	"venue-booking-engine/internal/domain/booking"
	"venue-booking-engine/internal/domain/resource"
	"venue-booking-engine/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingColumns = `id, resource_id, resource_type, start_at, end_at, is_slot,
	customer_name, customer_phone, customer_email, customer_identity_number,
	total_amount, payment_status, status, created_at`

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

// Create inserts the booking as a single conditional write. The exclusion
// constraint arbitrates commit races across processes; a loser comes back
// as a conflict kind.
func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	iv := b.Interval()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO bookings (`+bookingColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		b.ID(), b.ResourceID(), b.ResourceType().String(),
		iv.Start(), iv.End(), iv.IsSlot(),
		b.Customer().Name, b.Customer().Phone, b.Customer().Email, b.Customer().IdentityNumber,
		b.TotalAmount(), b.PaymentStatus().String(), b.Status().String(), b.CreatedAt(),
	)
	if err != nil {
		return infra.ClassifyPgErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
	b, err := scanBooking(row)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to find booking by id", err)
	}
	return b, nil
}

func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE bookings SET status = $2, payment_status = $3 WHERE id = $1`,
		b.ID(), b.Status().String(), b.PaymentStatus().String(),
	)
	if err != nil {
		return infra.ClassifyPgErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) ConfirmedInWindow(ctx context.Context, resourceID uuid.UUID, from, to time.Time) ([]*booking.Booking, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+bookingColumns+` FROM bookings
		WHERE resource_id = $1 AND status = 'CONFIRMED'
		  AND start_at < $3 AND end_at > $2
		ORDER BY start_at`,
		resourceID, from, to,
	)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to load confirmed bookings in window", err)
	}
	return collectBookings(rows)
}

func (r *BookingRepository) HasConfirmedAfter(ctx context.Context, resourceID uuid.UUID, t time.Time) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE resource_id = $1 AND status = 'CONFIRMED' AND end_at > $2
		)`,
		resourceID, t,
	).Scan(&exists)
	if err != nil {
		return false, infra.ClassifyPgErr("failed to check future bookings", err)
	}
	return exists, nil
}

func (r *BookingRepository) ListAll(ctx context.Context) ([]*booking.Booking, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+bookingColumns+` FROM bookings ORDER BY created_at DESC`)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to list bookings", err)
	}
	return collectBookings(rows)
}

func (r *BookingRepository) ListByResourceIDs(ctx context.Context, resourceIDs []uuid.UUID) ([]*booking.Booking, error) {
	if len(resourceIDs) == 0 {
		return []*booking.Booking{}, nil
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+bookingColumns+` FROM bookings
		WHERE resource_id = ANY($1)
		ORDER BY created_at DESC`,
		resourceIDs,
	)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to list bookings by resources", err)
	}
	return collectBookings(rows)
}

func (r *BookingRepository) ConfirmedOverlapSet(ctx context.Context, resourceIDs []uuid.UUID, from, to time.Time) (map[uuid.UUID]struct{}, error) {
	if len(resourceIDs) == 0 {
		return map[uuid.UUID]struct{}{}, nil
	}
	rows, err := r.pool.Query(ctx, `
		SELECT DISTINCT resource_id FROM bookings
		WHERE resource_id = ANY($1) AND status = 'CONFIRMED'
		  AND start_at < $3 AND end_at > $2`,
		resourceIDs, from, to,
	)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to query overlapping resources", err)
	}
	defer rows.Close()

	taken := make(map[uuid.UUID]struct{})
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.ClassifyPgErr("failed to scan resource id", err)
		}
		taken[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, infra.ClassifyPgErr("failed to read overlap rows", err)
	}
	return taken, nil
}

func collectBookings(rows pgx.Rows) ([]*booking.Booking, error) {
	defer rows.Close()

	var result []*booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, infra.ClassifyPgErr("failed to scan booking", err)
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.ClassifyPgErr("failed to read booking rows", err)
	}
	return result, nil
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id, resourceID                               uuid.UUID
		resourceType, paymentStatus, status          string
		startAt, endAt, createdAt                    time.Time
		isSlot                                       bool
		custName, custPhone, custEmail, custIdentity string
		totalAmount                                  int64
	)
	if err := row.Scan(
		&id, &resourceID, &resourceType, &startAt, &endAt, &isSlot,
		&custName, &custPhone, &custEmail, &custIdentity,
		&totalAmount, &paymentStatus, &status, &createdAt,
	); err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(
		id, resourceID,
		resource.Type(resourceType),
		booking.ReconstructInterval(startAt, endAt, isSlot),
		booking.CustomerDetails{
			Name:           custName,
			Phone:          custPhone,
			Email:          custEmail,
			IdentityNumber: custIdentity,
		},
		totalAmount,
		booking.PaymentStatus(paymentStatus),
		booking.Status(status),
		createdAt,
	), nil
}
