//go:build unit || integration

package builder

import (
	"time"

	"venue-booking-engine/internal/domain/user"
)

type UserBuilder struct {
	Username     string
	PasswordHash string
	Role         string
	Name         string
	Now          time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Username:     "owner1",
		PasswordHash: "hashed_password",
		Role:         "OWNER",
		Name:         "First Owner",
		Now:          time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC),
	}
}

func (b *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(b)
	return b
}

func (b *UserBuilder) AsSuperAdmin() *UserBuilder {
	b.Username = "admin"
	b.Role = "SUPER_ADMIN"
	b.Name = "Platform Admin"
	return b
}

func (b *UserBuilder) BuildDomain() (*user.User, error) {
	role, err := user.NewRole(b.Role)
	if err != nil {
		return nil, err
	}
	return user.NewUser(b.Username, b.PasswordHash, role, b.Name, b.Now)
}
