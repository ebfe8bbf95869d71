package user

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidRole   = errors.New("invalid user role")
	ErrEmptyUsername = errors.New("username cannot be empty")
	ErrEmptyName     = errors.New("display name cannot be empty")
)

// User is an authenticating principal. Owners hold resources; the super
// admin is a platform-wide role that sees and manages everything.
type User struct {
	id           uuid.UUID
	username     string
	passwordHash string
	role         Role
	name         string
	createdAt    time.Time
}

func NewUser(username, passwordHash string, role Role, name string, now time.Time) (*User, error) {
	username = strings.TrimSpace(username)
	name = strings.TrimSpace(name)
	if username == "" {
		return nil, ErrEmptyUsername
	}
	if name == "" {
		return nil, ErrEmptyName
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	return &User{
		id:           uuid.New(),
		username:     username,
		passwordHash: passwordHash,
		role:         role,
		name:         name,
		createdAt:    now,
	}, nil
}

func ReconstructUser(id uuid.UUID, username, passwordHash string, role Role, name string, createdAt time.Time) *User {
	return &User{
		id:           id,
		username:     username,
		passwordHash: passwordHash,
		role:         role,
		name:         name,
		createdAt:    createdAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Username() string     { return u.username }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) Name() string         { return u.name }
func (u *User) CreatedAt() time.Time { return u.createdAt }
