package commands

import (
	"context"

	"venue-booking-engine/internal/domain/user"
	"venue-booking-engine/internal/infra"
	"venue-booking-engine/internal/pkg/clock"
	"venue-booking-engine/internal/pkg/errs"
	"venue-booking-engine/internal/pkg/jwt"
	"venue-booking-engine/internal/pkg/password"
)

type LoginResult struct {
	Token string
	User  *user.User
}

type AuthCommands interface {
	RegisterOwner(ctx context.Context, params RegisterOwnerParams) (*user.User, error)
	Login(ctx context.Context, username, plainPassword string) (*LoginResult, error)
	EnsureAdmin(ctx context.Context, username, plainPassword, name string) error
}

type authCommandsImpl struct {
	users  UserRepository
	tokens *jwt.Service
	clock  clock.Clock
}

func NewAuthCommands(users UserRepository, tokens *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		users:  users,
		tokens: tokens,
		clock:  clk,
	}
}

func (c *authCommandsImpl) RegisterOwner(ctx context.Context, params RegisterOwnerParams) (*user.User, error) {
	hash, err := password.HashPassword(params.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	owner, err := user.NewUser(params.Username, hash, user.RoleOwner, params.Name, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	if err := c.users.Create(ctx, owner); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrUsernameTaken
		}
		return nil, errs.Mark(err, ErrStorage)
	}
	return owner, nil
}

// EnsureAdmin creates the super admin account if it does not exist yet.
// Called once at startup, so a concurrent duplicate insert is treated as
// another instance having won the seed.
func (c *authCommandsImpl) EnsureAdmin(ctx context.Context, username, plainPassword, name string) error {
	_, err := c.users.FindByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, ErrStorage)
	}

	hash, err := password.HashPassword(plainPassword)
	if err != nil {
		return errs.Mark(err, ErrValidation)
	}

	admin, err := user.NewUser(username, hash, user.RoleSuperAdmin, name, c.clock.Now())
	if err != nil {
		return errs.Mark(err, ErrValidation)
	}

	if err := c.users.Create(ctx, admin); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil
		}
		return errs.Mark(err, ErrStorage)
	}
	return nil
}

func (c *authCommandsImpl) Login(ctx context.Context, username, plainPassword string) (*LoginResult, error) {
	account, err := c.users.FindByUsername(ctx, username)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrStorage)
	}

	if err := password.ComparePassword(account.PasswordHash(), plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := c.tokens.GenerateToken(account.ID(), account.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrStorage)
	}

	return &LoginResult{Token: token, User: account}, nil
}
