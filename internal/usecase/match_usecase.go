package usecase

import (
	"context"
	"errors"
	"time"

	"mentorlink/internal/domain/matching"
	"mentorlink/internal/domain/user"

	"github.com/google/uuid"
)

// RankedMatch is one scored candidate in a viewer's match listing.
type RankedMatch struct {
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Role      user.Role `json:"role"`
	Skills    []string  `json:"skills"`
	Interests string    `json:"interests"`
	Bio       string    `json:"bio"`
	Score     int       `json:"score"`
}

type MatchUsecase interface {
	ListMatches(ctx context.Context, viewerID uuid.UUID) ([]RankedMatch, error)
}

type Match struct {
	users   user.Repository
	cache   MatchCache
	weights matching.Weights
	ttl     time.Duration
}

func NewMatchUsecase(users user.Repository, cache MatchCache, weights matching.Weights, ttl time.Duration) *Match {
	if weights.Skill == 0 && weights.Interest == 0 {
		weights = matching.DefaultWeights
	}
	return &Match{users: users, cache: cache, weights: weights, ttl: ttl}
}

// ListMatches ranks every opposite-role user against the viewer. Results are
// cached per viewer; profile updates sweep the whole cache.
func (m *Match) ListMatches(ctx context.Context, viewerID uuid.UUID) ([]RankedMatch, error) {
	if viewerID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	key := matchCacheKey(viewerID.String())
	if m.cache != nil {
		var cached []RankedMatch
		if ok, err := m.cache.GetJSON(ctx, key, &cached); err == nil && ok {
			return cached, nil
		}
	}

	viewer, err := m.users.GetUserByID(ctx, viewerID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, ErrInternal
	}

	pool, err := readOnceRetry(ctx, func(ctx context.Context) ([]user.User, error) {
		return m.users.ListUsers(ctx, user.ListFilter{Role: viewer.Role.Opposite()})
	})
	if err != nil {
		return nil, ErrInternal
	}

	ranked := matching.Rank(viewer, pool, m.weights)

	out := make([]RankedMatch, 0, len(ranked))
	for _, c := range ranked {
		out = append(out, RankedMatch{
			UserID:    c.User.ID,
			Name:      c.User.Name,
			Role:      c.User.Role,
			Skills:    c.User.Skills,
			Interests: c.User.Interests,
			Bio:       c.User.Bio,
			Score:     c.Score,
		})
	}

	if m.cache != nil {
		_ = m.cache.SetJSON(ctx, key, out, m.ttl)
	}
	return out, nil
}
