package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

// CurrentSession resolves the session behind the token.
// Unknown, expired and malformed sessions all result in ErrNotAuthenticated.
func (lc *LoginChecker) CurrentSession(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, ErrNotAuthenticated
	}

	val, err := lc.redisClient.Get(ctx, sessionKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotAuthenticated
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	createdAt, userID, err := parseSessionValue(val)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotAuthenticated, err)
	}

	if time.Since(createdAt) > lc.ttl {
		return nil, ErrNotAuthenticated
	}

	return &Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: createdAt,
	}, nil
}
