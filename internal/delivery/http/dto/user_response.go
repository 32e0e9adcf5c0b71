package dto

import (
	"time"

	"mentorlink/internal/domain/user"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      user.Role `json:"role"`
	Skills    []string  `json:"skills"`
	Interests string    `json:"interests"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"created_at"`
}

// UserDetailResponse adds the connection state, mirroring what the profile
// page needs.
type UserDetailResponse struct {
	UserResponse
	SentRequests     []user.RequestEntry `json:"sent_requests"`
	ReceivedRequests []user.RequestEntry `json:"received_requests"`
	Followers        []uuid.UUID         `json:"followers"`
}

func FromUser(u user.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Skills:    u.Skills,
		Interests: u.Interests,
		Bio:       u.Bio,
		CreatedAt: u.CreatedAt,
	}
}

func FromUserDetail(u user.User) UserDetailResponse {
	return UserDetailResponse{
		UserResponse:     FromUser(u),
		SentRequests:     u.SentRequests,
		ReceivedRequests: u.ReceivedRequests,
		Followers:        u.Followers,
	}
}

func FromUsers(users []user.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, FromUser(u))
	}
	return out
}
