package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleMentor Role = "mentor"
	RoleMentee Role = "mentee"
)

func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleMentor:
		return RoleMentor, true
	case RoleMentee:
		return RoleMentee, true
	}
	return "", false
}

func (r Role) Opposite() Role {
	if r == RoleMentor {
		return RoleMentee
	}
	return RoleMentor
}

// RequestEntry is one outstanding connection request as stored on a user
// record: the other party's id plus when the request was made.
type RequestEntry struct {
	UserID    uuid.UUID `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
}

type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Skills       []string
	Interests    string
	Bio          string

	SentRequests     []RequestEntry
	ReceivedRequests []RequestEntry
	Followers        []uuid.UUID

	CreatedAt time.Time
	UpdatedAt time.Time
}

// InterestTags interprets the free-text interests field as a comma-delimited
// set of trimmed, lower-cased tags.
func (u User) InterestTags() []string {
	return ParseTags(u.Interests)
}

func ParseTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(strings.ToLower(s), ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		tags = append(tags, p)
	}
	return tags
}

// HasFollower reports whether id is already an accepted connection.
func (u User) HasFollower(id uuid.UUID) bool {
	for _, f := range u.Followers {
		if f == id {
			return true
		}
	}
	return false
}
