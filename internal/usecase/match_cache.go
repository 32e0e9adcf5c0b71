package usecase

import (
	"context"
	"time"
)

// MatchCache is the slice of the redis cache the usecases need. The zero
// implementation in tests is a plain nil check away.
type MatchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
	Delete(ctx context.Context, key string) error
}

const matchCacheKeyPrefix = "matches:"

func matchCacheKey(viewerID string) string {
	return matchCacheKeyPrefix + viewerID
}

// invalidateAllMatches drops every cached ranked list.
func invalidateAllMatches(ctx context.Context, c MatchCache) {
	if c == nil {
		return
	}
	_ = c.DeleteByPattern(ctx, matchCacheKeyPrefix+"*")
}
