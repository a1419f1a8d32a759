package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginTokenStore tracks issued login tokens so each can be redeemed once.
// Key format: logintoken:<token_id>  value: uid
type LoginTokenStore struct {
	client *redis.Client
}

// NewLoginTokenStore creates a LoginTokenStore wrapping the given Redis client.
func NewLoginTokenStore(client *redis.Client) *LoginTokenStore {
	return &LoginTokenStore{client: client}
}

// Remember records an issued token id until ttl elapses.
func (s *LoginTokenStore) Remember(ctx context.Context, tokenID, uid string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(tokenID), uid, ttl).Err(); err != nil {
		return fmt.Errorf("remember login token: %w", err)
	}
	return nil
}

// Consume atomically reads and deletes a token id. ok is false when the id was
// never issued, has expired, or was already consumed.
func (s *LoginTokenStore) Consume(ctx context.Context, tokenID string) (uid string, ok bool, err error) {
	uid, err = s.client.GetDel(ctx, s.key(tokenID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("consume login token: %w", err)
	}
	return uid, true, nil
}

func (s *LoginTokenStore) key(tokenID string) string {
	return "logintoken:" + tokenID
}
