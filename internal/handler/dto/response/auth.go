package response

import (
	"venue-booking-engine/internal/domain/user"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
	Name     string    `json:"name"`
}

func FromUser(u *user.User) *UserResponse {
	return &UserResponse{
		ID:       u.ID(),
		Username: u.Username(),
		Role:     u.Role().String(),
		Name:     u.Name(),
	}
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	User        *UserResponse `json:"user"`
}
