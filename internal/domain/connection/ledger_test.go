package connection

import (
	"errors"
	"testing"
	"time"

	"mentorlink/internal/domain/user"

	"github.com/google/uuid"
)

func pair() (mentee, mentor user.User) {
	mentee = user.User{ID: uuid.New(), Role: user.RoleMentee}
	mentor = user.User{ID: uuid.New(), Role: user.RoleMentor}
	return mentee, mentor
}

func countFollower(u user.User, id uuid.UUID) int {
	n := 0
	for _, f := range u.Followers {
		if f == id {
			n++
		}
	}
	return n
}

func TestRequest_CreatesBothEntries(t *testing.T) {
	mentee, mentor := pair()
	now := time.Now().UTC()

	if err := Request(&mentee, &mentor, now); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if len(mentee.SentRequests) != 1 || mentee.SentRequests[0].UserID != mentor.ID {
		t.Fatalf("missing sent entry")
	}
	if len(mentor.ReceivedRequests) != 1 || mentor.ReceivedRequests[0].UserID != mentee.ID {
		t.Fatalf("missing received entry")
	}
	if !mentee.SentRequests[0].Timestamp.Equal(now) {
		t.Fatalf("unexpected timestamp")
	}
	if got := PairStatus(mentee, mentor); got != StatusPending {
		t.Fatalf("expected pending, got %v", got)
	}
}

func TestRequest_DuplicateRejected(t *testing.T) {
	mentee, mentor := pair()

	if err := Request(&mentee, &mentor, time.Now()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := Request(&mentee, &mentor, time.Now()); !errors.Is(err, ErrDuplicateRequest) {
		t.Fatalf("expected ErrDuplicateRequest, got %v", err)
	}
	// Opposite direction is also blocked while the pair is pending.
	if err := Request(&mentor, &mentee, time.Now()); !errors.Is(err, ErrDuplicateRequest) {
		t.Fatalf("expected ErrDuplicateRequest for reverse direction, got %v", err)
	}

	if len(mentee.SentRequests) != 1 || len(mentor.ReceivedRequests) != 1 {
		t.Fatalf("duplicate request mutated state")
	}
}

func TestRequest_ConnectedPairRejected(t *testing.T) {
	mentee, mentor := pair()
	_ = Request(&mentee, &mentor, time.Now())
	if _, err := Accept(&mentor, &mentee); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if err := Request(&mentee, &mentor, time.Now()); !errors.Is(err, ErrDuplicateRequest) {
		t.Fatalf("expected ErrDuplicateRequest for connected pair, got %v", err)
	}
}

func TestAccept_MovesPairToConnected(t *testing.T) {
	mentee, mentor := pair()
	_ = Request(&mentee, &mentor, time.Now())

	already, err := Accept(&mentor, &mentee)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if already {
		t.Fatalf("expected fresh accept")
	}

	if len(mentee.SentRequests) != 0 {
		t.Fatalf("sent entry not removed")
	}
	if len(mentor.ReceivedRequests) != 0 {
		t.Fatalf("received entry not removed")
	}
	if countFollower(mentee, mentor.ID) != 1 {
		t.Fatalf("expected mentor in mentee followers exactly once")
	}
	if countFollower(mentor, mentee.ID) != 1 {
		t.Fatalf("expected mentee in mentor followers exactly once")
	}
	if got := PairStatus(mentee, mentor); got != StatusConnected {
		t.Fatalf("expected connected, got %v", got)
	}
}

func TestAccept_WithoutRequest(t *testing.T) {
	mentee, mentor := pair()

	if _, err := Accept(&mentor, &mentee); !errors.Is(err, ErrRequestNotFound) {
		t.Fatalf("expected ErrRequestNotFound, got %v", err)
	}
}

func TestAccept_RepeatIsNoOp(t *testing.T) {
	mentee, mentor := pair()
	_ = Request(&mentee, &mentor, time.Now())
	if _, err := Accept(&mentor, &mentee); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	already, err := Accept(&mentor, &mentee)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !already {
		t.Fatalf("expected no-op accept")
	}

	if countFollower(mentee, mentor.ID) != 1 || countFollower(mentor, mentee.ID) != 1 {
		t.Fatalf("repeated accept duplicated followers")
	}
}

func TestReject_ClearsPendingOnly(t *testing.T) {
	mentee, mentor := pair()
	_ = Request(&mentee, &mentor, time.Now())

	if err := Reject(&mentor, &mentee); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if len(mentee.SentRequests) != 0 || len(mentor.ReceivedRequests) != 0 {
		t.Fatalf("pending entries not cleared")
	}
	if len(mentee.Followers) != 0 || len(mentor.Followers) != 0 {
		t.Fatalf("reject must not touch followers")
	}
	if got := PairStatus(mentee, mentor); got != StatusNone {
		t.Fatalf("expected none, got %v", got)
	}

	// The pair can request again after a reject.
	if err := Request(&mentee, &mentor, time.Now()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestReject_WithoutRequest(t *testing.T) {
	mentee, mentor := pair()
	if err := Reject(&mentor, &mentee); !errors.Is(err, ErrRequestNotFound) {
		t.Fatalf("expected ErrRequestNotFound, got %v", err)
	}
}

func TestAccept_KeepsUnrelatedEntries(t *testing.T) {
	mentee, mentor := pair()
	other := user.User{ID: uuid.New(), Role: user.RoleMentor}

	_ = Request(&mentee, &mentor, time.Now())
	_ = Request(&mentee, &other, time.Now())

	if _, err := Accept(&mentor, &mentee); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if len(mentee.SentRequests) != 1 || mentee.SentRequests[0].UserID != other.ID {
		t.Fatalf("accept removed an unrelated pending entry")
	}
}
