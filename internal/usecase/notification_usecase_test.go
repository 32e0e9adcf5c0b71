package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"mentorlink/internal/domain/user"

	"github.com/google/uuid"
)

func TestNotifications_MentorView(t *testing.T) {
	follower := user.User{ID: uuid.New(), Name: "Ada", Email: "ada@example.com", Role: user.RoleMentee}
	requester := user.User{ID: uuid.New(), Name: "Eve", Email: "eve@example.com", Role: user.RoleMentee}
	mentor := user.User{
		ID:        uuid.New(),
		Role:      user.RoleMentor,
		Followers: []uuid.UUID{follower.ID},
		ReceivedRequests: []user.RequestEntry{
			{UserID: requester.ID, Timestamp: time.Now().UTC()},
		},
	}
	repo := newMemRepo(follower, requester, mentor)

	got, err := NewNotificationUsecase(repo).ListNotifications(context.Background(), mentor.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(got))
	}
	if got[0].UserID != follower.ID || got[0].Status != StatusFollower {
		t.Fatalf("expected follower first with status %q, got %+v", StatusFollower, got[0])
	}
	if got[1].UserID != requester.ID || got[1].Status != StatusRequested {
		t.Fatalf("expected requester with status %q, got %+v", StatusRequested, got[1])
	}
	if got[0].Name != "Ada" || got[0].Email != "ada@example.com" {
		t.Fatalf("follower fields not resolved: %+v", got[0])
	}
}

func TestNotifications_MenteeView(t *testing.T) {
	accepted := user.User{ID: uuid.New(), Name: "Grace", Role: user.RoleMentor}
	awaited := user.User{ID: uuid.New(), Name: "Linus", Role: user.RoleMentor}
	mentee := user.User{
		ID:        uuid.New(),
		Role:      user.RoleMentee,
		Followers: []uuid.UUID{accepted.ID},
		SentRequests: []user.RequestEntry{
			{UserID: awaited.ID, Timestamp: time.Now().UTC()},
		},
	}
	repo := newMemRepo(accepted, awaited, mentee)

	got, err := NewNotificationUsecase(repo).ListNotifications(context.Background(), mentee.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(got))
	}
	if got[0].Status != StatusAccepted {
		t.Fatalf("expected status %q, got %q", StatusAccepted, got[0].Status)
	}
	if got[1].Status != StatusPending {
		t.Fatalf("expected status %q, got %q", StatusPending, got[1].Status)
	}
}

func TestNotifications_EmptyState(t *testing.T) {
	mentee := user.User{ID: uuid.New(), Role: user.RoleMentee}
	repo := newMemRepo(mentee)

	got, err := NewNotificationUsecase(repo).ListNotifications(context.Background(), mentee.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no notifications, got %d", len(got))
	}
}

func TestNotifications_UnknownViewer(t *testing.T) {
	_, err := NewNotificationUsecase(newMemRepo()).ListNotifications(context.Background(), uuid.New())
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestNotifications_SkipsVanishedUsers(t *testing.T) {
	ghost := uuid.New()
	mentor := user.User{
		ID:        uuid.New(),
		Role:      user.RoleMentor,
		Followers: []uuid.UUID{ghost},
	}
	repo := newMemRepo(mentor)

	got, err := NewNotificationUsecase(repo).ListNotifications(context.Background(), mentor.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected deleted follower to be skipped, got %d entries", len(got))
	}
}
