package response

import (
	"time"

	"ecocollect/internal/infra/backend"
)

type UserResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Avatar  string `json:"avatar,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Points  int64  `json:"points"`
}

type LoginResponse struct {
	User      UserResponse `json:"user"`
	ExpiresAt time.Time    `json:"expires_at"`
}

func FromUser(u *backend.User, expiresAt time.Time) *LoginResponse {
	return &LoginResponse{
		User: UserResponse{
			ID:      u.ID,
			Name:    u.Name,
			Email:   u.Email,
			Role:    u.Role,
			Avatar:  u.Avatar,
			Phone:   u.Phone,
			Address: u.Address,
			Points:  u.Points,
		},
		ExpiresAt: expiresAt,
	}
}
