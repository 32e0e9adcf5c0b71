package usecase

import (
	"context"
	"errors"

	"mentorlink/internal/domain/user"

	"github.com/google/uuid"
)

// NotificationStatus labels the other party of a connection relation from
// the viewer's perspective.
type NotificationStatus string

const (
	// Mentor view: accepted connections and incoming requests.
	StatusFollower  NotificationStatus = "Follower"
	StatusRequested NotificationStatus = "Requested"
	// Mentee view: accepted connections and outstanding outgoing requests.
	StatusAccepted NotificationStatus = "Accepted"
	StatusPending  NotificationStatus = "Pending"
)

type Notification struct {
	UserID uuid.UUID          `json:"user_id"`
	Name   string             `json:"name"`
	Email  string             `json:"email"`
	Role   user.Role          `json:"role"`
	Status NotificationStatus `json:"status"`
}

type NotificationUsecase interface {
	ListNotifications(ctx context.Context, userID uuid.UUID) ([]Notification, error)
}

type Notifications struct {
	users user.Repository
}

func NewNotificationUsecase(users user.Repository) *Notifications {
	return &Notifications{users: users}
}

// ListNotifications resolves the viewer's connection state into display
// records. Mentors see followers plus pending received requests; mentees see
// followers plus their outstanding sent requests.
func (n *Notifications) ListNotifications(ctx context.Context, userID uuid.UUID) ([]Notification, error) {
	if userID == uuid.Nil {
		return nil, ErrUserNotFound
	}

	viewer, err := readOnceRetry(ctx, func(ctx context.Context) (user.User, error) {
		return n.users.GetUserByID(ctx, userID)
	})
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, ErrInternal
	}

	var followerStatus, pendingStatus NotificationStatus
	var pendingIDs []uuid.UUID

	if viewer.Role == user.RoleMentor {
		followerStatus, pendingStatus = StatusFollower, StatusRequested
		pendingIDs = entryIDs(viewer.ReceivedRequests)
	} else {
		followerStatus, pendingStatus = StatusAccepted, StatusPending
		pendingIDs = entryIDs(viewer.SentRequests)
	}

	out := make([]Notification, 0, len(viewer.Followers)+len(pendingIDs))

	followers, err := n.resolve(ctx, viewer.Followers)
	if err != nil {
		return nil, ErrInternal
	}
	for _, u := range followers {
		out = append(out, toNotification(u, followerStatus))
	}

	pending, err := n.resolve(ctx, pendingIDs)
	if err != nil {
		return nil, ErrInternal
	}
	for _, u := range pending {
		out = append(out, toNotification(u, pendingStatus))
	}

	return out, nil
}

func (n *Notifications) resolve(ctx context.Context, ids []uuid.UUID) ([]user.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return readOnceRetry(ctx, func(ctx context.Context) ([]user.User, error) {
		return n.users.GetUsersByIDs(ctx, ids)
	})
}

func entryIDs(entries []user.RequestEntry) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.UserID)
	}
	return ids
}

func toNotification(u user.User, status NotificationStatus) Notification {
	return Notification{
		UserID: u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
		Status: status,
	}
}
