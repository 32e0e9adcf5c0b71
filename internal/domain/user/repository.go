package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("user not found")

// ListFilter narrows the discover listing. Zero values mean no filtering.
type ListFilter struct {
	Role  Role
	Skill string
}

type Repository interface {
	CreateUser(ctx context.Context, u User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// UpdateProfile writes the mutable profile fields. ErrNotFound when the
	// record no longer exists.
	UpdateProfile(ctx context.Context, u User) (User, error)

	ListUsers(ctx context.Context, f ListFilter) ([]User, error)
	GetUsersByIDs(ctx context.Context, ids []uuid.UUID) ([]User, error)

	// UpdatePair loads both users inside one transaction with their rows
	// locked in id order, applies mutate to the pair and persists the
	// request/follower collections of both records before committing.
	// The callback's error aborts the transaction untouched.
	UpdatePair(ctx context.Context, aID, bID uuid.UUID, mutate func(a, b *User) error) error
}
