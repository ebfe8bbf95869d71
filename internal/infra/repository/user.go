package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"venue-booking-engine/internal/domain/resource"
	"venue-booking-engine/internal/domain/user"
	"venue-booking-engine/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, username, password_hash, role, name, created_at`

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	if err := insertUser(ctx, r.pool, u); err != nil {
		return infra.ClassifyPgErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	u, err := scanUser(row)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to find user by id", err)
	}
	return u, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	u, err := scanUser(row)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to find user by username", err)
	}
	return u, nil
}

func (r *UserRepository) ListByRole(ctx context.Context, role user.Role) ([]*user.User, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+userColumns+` FROM users WHERE role = $1 ORDER BY name`, role.String())
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to list users by role", err)
	}
	defer rows.Close()

	var result []*user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, infra.ClassifyPgErr("failed to scan user", err)
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.ClassifyPgErr("failed to read user rows", err)
	}
	return result, nil
}

// CreateOwnerWithResource inserts the owner and their first property in one
// transaction. Either both records land or neither does.
func (r *UserRepository) CreateOwnerWithResource(ctx context.Context, owner *user.User, res *resource.Resource) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return infra.ClassifyPgErr("failed to begin onboarding transaction", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback onboarding transaction", "error", rollbackErr)
		}
	}()

	if err := insertUser(ctx, tx, owner); err != nil {
		return infra.ClassifyPgErr("failed to create owner", err)
	}
	if err := insertResource(ctx, tx, res); err != nil {
		return infra.ClassifyPgErr("failed to create owner's resource", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.ClassifyPgErr("failed to commit onboarding transaction", err)
	}
	return nil
}

func insertUser(ctx context.Context, db dbExecutor, u *user.User) error {
	_, err := db.Exec(ctx, `
		INSERT INTO users (id, username, password_hash, role, name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		u.ID(), u.Username(), u.PasswordHash(), u.Role().String(), u.Name(), u.CreatedAt(),
	)
	return err
}

func scanUser(row pgx.Row) (*user.User, error) {
	var (
		id                               uuid.UUID
		username, passwordHash, role, nm string
		createdAt                        time.Time
	)
	if err := row.Scan(&id, &username, &passwordHash, &role, &nm, &createdAt); err != nil {
		return nil, err
	}
	return user.ReconstructUser(id, username, passwordHash, user.Role(role), nm, createdAt), nil
}
