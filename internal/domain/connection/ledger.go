package connection

import (
	"errors"
	"time"

	"mentorlink/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrDuplicateRequest = errors.New("connection request already exists")
	ErrRequestNotFound  = errors.New("connection request not found")
)

// Status of a (source, target) pair as derived from the two user records.
type Status int

const (
	StatusNone Status = iota
	StatusPending
	StatusConnected
)

// PairStatus inspects source and target and reports where the pair sits in
// the none -> pending -> connected lifecycle. A follower link on either side
// counts as connected; a request entry in either direction counts as pending.
func PairStatus(source, target user.User) Status {
	if source.HasFollower(target.ID) || target.HasFollower(source.ID) {
		return StatusConnected
	}
	if hasEntry(source.SentRequests, target.ID) ||
		hasEntry(target.SentRequests, source.ID) ||
		hasEntry(source.ReceivedRequests, target.ID) ||
		hasEntry(target.ReceivedRequests, source.ID) {
		return StatusPending
	}
	return StatusNone
}

// Request records an outgoing request from source to target: an entry is
// appended to source.SentRequests and the mirror entry to
// target.ReceivedRequests. Only valid from StatusNone; a pending entry in
// either direction or an existing connection yields ErrDuplicateRequest.
func Request(source, target *user.User, now time.Time) error {
	switch PairStatus(*source, *target) {
	case StatusPending, StatusConnected:
		return ErrDuplicateRequest
	}

	source.SentRequests = append(source.SentRequests, user.RequestEntry{
		UserID:    target.ID,
		Timestamp: now,
	})
	target.ReceivedRequests = append(target.ReceivedRequests, user.RequestEntry{
		UserID:    source.ID,
		Timestamp: now,
	})
	return nil
}

// Accept resolves a pending request from requester to responder: the entries
// are dropped from both request lists and each user's id is added to the
// other's followers with set semantics, so repeating Accept on an already
// connected pair changes nothing. It reports whether the pair was already
// connected. A pair with no pending entry and no connection yields
// ErrRequestNotFound.
func Accept(responder, requester *user.User) (already bool, err error) {
	switch PairStatus(*requester, *responder) {
	case StatusConnected:
		return true, nil
	case StatusNone:
		return false, ErrRequestNotFound
	}

	if !hasEntry(responder.ReceivedRequests, requester.ID) {
		return false, ErrRequestNotFound
	}

	responder.ReceivedRequests = removeEntry(responder.ReceivedRequests, requester.ID)
	requester.SentRequests = removeEntry(requester.SentRequests, responder.ID)

	responder.Followers = addFollower(responder.Followers, requester.ID)
	requester.Followers = addFollower(requester.Followers, responder.ID)
	return false, nil
}

// Reject drops a pending request without touching followers, returning the
// pair to StatusNone. ErrRequestNotFound when nothing is pending.
func Reject(responder, requester *user.User) error {
	if !hasEntry(responder.ReceivedRequests, requester.ID) {
		return ErrRequestNotFound
	}

	responder.ReceivedRequests = removeEntry(responder.ReceivedRequests, requester.ID)
	requester.SentRequests = removeEntry(requester.SentRequests, responder.ID)
	return nil
}

func hasEntry(entries []user.RequestEntry, id uuid.UUID) bool {
	for _, e := range entries {
		if e.UserID == id {
			return true
		}
	}
	return false
}

func removeEntry(entries []user.RequestEntry, id uuid.UUID) []user.RequestEntry {
	out := entries[:0]
	for _, e := range entries {
		if e.UserID != id {
			out = append(out, e)
		}
	}
	return out
}

func addFollower(followers []uuid.UUID, id uuid.UUID) []uuid.UUID {
	for _, f := range followers {
		if f == id {
			return followers
		}
	}
	return append(followers, id)
}
