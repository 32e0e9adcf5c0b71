package usecase

import (
	"context"
	"errors"
	"time"

	"mentorlink/internal/domain/connection"
	"mentorlink/internal/domain/user"

	"github.com/google/uuid"
)

// ConnectionNotifier receives the events the ledger produces so they can be
// pushed to connected clients. Implementations must not block.
type ConnectionNotifier interface {
	ConnectionRequested(source, target user.User)
	ConnectionAccepted(responder, requester user.User)
}

type ConnectionUsecase interface {
	Request(ctx context.Context, sourceID, targetID uuid.UUID) error
	Accept(ctx context.Context, responderID, requesterID uuid.UUID) error
	Reject(ctx context.Context, responderID, requesterID uuid.UUID) error
}

type Connection struct {
	users    user.Repository
	cache    MatchCache
	notifier ConnectionNotifier
	now      func() time.Time
}

func NewConnectionUsecase(users user.Repository, cache MatchCache, notifier ConnectionNotifier) *Connection {
	return &Connection{users: users, cache: cache, notifier: notifier, now: time.Now}
}

const pairLockTTL = 10 * time.Second

// Request creates a pending request from source to target. Both records
// mutate inside one transaction; concurrent calls for the same pair are
// serialized by the row locks, so the second caller observes the first
// caller's entry and fails with ErrDuplicateRequest.
func (c *Connection) Request(ctx context.Context, sourceID, targetID uuid.UUID) error {
	if err := validatePair(sourceID, targetID); err != nil {
		return err
	}

	unlock := c.lockPair(ctx, sourceID, targetID)
	defer unlock()

	var src, tgt user.User
	err := c.users.UpdatePair(ctx, sourceID, targetID, func(source, target *user.User) error {
		if source.Role == target.Role {
			return ErrInvalidInput
		}
		if err := connection.Request(source, target, c.now().UTC()); err != nil {
			return err
		}
		src, tgt = *source, *target
		return nil
	})
	if err != nil {
		return mapLedgerError(err)
	}

	if c.notifier != nil {
		c.notifier.ConnectionRequested(src, tgt)
	}
	return nil
}

// Accept resolves a pending request. Re-accepting an already connected pair
// is a no-op and emits no event.
func (c *Connection) Accept(ctx context.Context, responderID, requesterID uuid.UUID) error {
	if err := validatePair(responderID, requesterID); err != nil {
		return err
	}

	unlock := c.lockPair(ctx, responderID, requesterID)
	defer unlock()

	var resp, req user.User
	already := false
	err := c.users.UpdatePair(ctx, responderID, requesterID, func(responder, requester *user.User) error {
		done, err := connection.Accept(responder, requester)
		if err != nil {
			return err
		}
		already = done
		resp, req = *responder, *requester
		return nil
	})
	if err != nil {
		return mapLedgerError(err)
	}

	if !already && c.notifier != nil {
		c.notifier.ConnectionAccepted(resp, req)
	}
	return nil
}

// Reject drops a pending request without touching followers.
func (c *Connection) Reject(ctx context.Context, responderID, requesterID uuid.UUID) error {
	if err := validatePair(responderID, requesterID); err != nil {
		return err
	}

	unlock := c.lockPair(ctx, responderID, requesterID)
	defer unlock()

	err := c.users.UpdatePair(ctx, responderID, requesterID, func(responder, requester *user.User) error {
		return connection.Reject(responder, requester)
	})
	return mapLedgerError(err)
}

// lockPair takes a best-effort advisory lock on the (unordered) pair. When
// redis is down or the lock is contended the database row locks still
// serialize the operation, so the caller proceeds either way.
func (c *Connection) lockPair(ctx context.Context, a, b uuid.UUID) func() {
	if c.cache == nil {
		return func() {}
	}

	lo, hi := a.String(), b.String()
	if hi < lo {
		lo, hi = hi, lo
	}
	key := "connlock:" + lo + ":" + hi

	ok, err := c.cache.SetIfNotExists(ctx, key, "1", pairLockTTL)
	if err != nil || !ok {
		return func() {}
	}
	return func() {
		_ = c.cache.Delete(context.WithoutCancel(ctx), key)
	}
}

func validatePair(a, b uuid.UUID) error {
	if a == uuid.Nil || b == uuid.Nil {
		return ErrUserNotFound
	}
	if a == b {
		return ErrInvalidInput
	}
	return nil
}

func mapLedgerError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, connection.ErrDuplicateRequest),
		errors.Is(err, connection.ErrRequestNotFound),
		errors.Is(err, ErrInvalidInput):
		return err
	case errors.Is(err, user.ErrNotFound):
		return ErrUserNotFound
	default:
		return ErrInternal
	}
}
