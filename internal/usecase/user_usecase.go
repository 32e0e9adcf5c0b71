package usecase

import (
	"context"
	"errors"
	"strings"

	"mentorlink/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")
)

// UpdateProfileInput carries the mutable profile fields. Nil pointers mean
// "leave unchanged".
type UpdateProfileInput struct {
	Name      *string
	Role      *string
	Skills    []string
	Interests *string
	Bio       *string
}

type UserUsecase interface {
	GetUser(ctx context.Context, id uuid.UUID) (user.User, error)
	UpdateProfile(ctx context.Context, actorID, id uuid.UUID, in UpdateProfileInput) (user.User, error)
	ListUsers(ctx context.Context, roleFilter, skillFilter string) ([]user.User, error)
}

type User struct {
	users user.Repository
	cache MatchCache
}

func NewUserUsecase(users user.Repository, cache MatchCache) *User {
	return &User{users: users, cache: cache}
}

func (u *User) GetUser(ctx context.Context, id uuid.UUID) (user.User, error) {
	if id == uuid.Nil {
		return user.User{}, ErrUserNotFound
	}

	usr, err := readOnceRetry(ctx, func(ctx context.Context) (user.User, error) {
		return u.users.GetUserByID(ctx, id)
	})
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, ErrInternal
	}

	usr.PasswordHash = ""
	return usr, nil
}

func (u *User) UpdateProfile(ctx context.Context, actorID, id uuid.UUID, in UpdateProfileInput) (user.User, error) {
	if id == uuid.Nil {
		return user.User{}, ErrUserNotFound
	}
	if actorID != id {
		return user.User{}, ErrForbidden
	}

	current, err := u.users.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, ErrInternal
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return user.User{}, ErrInvalidInput
		}
		current.Name = name
	}
	if in.Role != nil {
		role, ok := user.ParseRole(*in.Role)
		if !ok {
			return user.User{}, ErrInvalidInput
		}
		current.Role = role
	}
	if in.Skills != nil {
		skills := make([]string, 0, len(in.Skills))
		for _, s := range in.Skills {
			s = strings.TrimSpace(s)
			if s != "" {
				skills = append(skills, s)
			}
		}
		current.Skills = skills
	}
	if in.Interests != nil {
		current.Interests = strings.TrimSpace(*in.Interests)
	}
	if in.Bio != nil {
		current.Bio = strings.TrimSpace(*in.Bio)
	}

	updated, err := u.users.UpdateProfile(ctx, current)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, ErrInternal
	}

	// Any viewer's ranked list may change with this profile.
	invalidateAllMatches(ctx, u.cache)

	updated.PasswordHash = ""
	return updated, nil
}

func (u *User) ListUsers(ctx context.Context, roleFilter, skillFilter string) ([]user.User, error) {
	f := user.ListFilter{Skill: strings.TrimSpace(skillFilter)}
	if raw := strings.TrimSpace(roleFilter); raw != "" {
		role, ok := user.ParseRole(raw)
		if !ok {
			return nil, ErrInvalidInput
		}
		f.Role = role
	}

	users, err := readOnceRetry(ctx, func(ctx context.Context) ([]user.User, error) {
		return u.users.ListUsers(ctx, f)
	})
	if err != nil {
		return nil, ErrInternal
	}

	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

// readOnceRetry retries an idempotent read a single time on failure.
// Mutations never go through this path.
func readOnceRetry[T any](ctx context.Context, read func(context.Context) (T, error)) (T, error) {
	out, err := read(ctx)
	if err == nil || errors.Is(err, user.ErrNotFound) || ctx.Err() != nil {
		return out, err
	}
	return read(ctx)
}
