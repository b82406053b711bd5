// Package rolestore is the identity-attribute store: a document-style
// lookup of a role attribute keyed by email, mirroring the admin-email
// collection the frontend reads. The relational users table stays the
// authoritative source for request authorization; this store serves the
// profile role lookup and admin identity management.
package rolestore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

// ErrNoRole is returned when no role document exists for an email.
var ErrNoRole = errors.New("no role recorded for email")

type Store interface {
	Role(ctx context.Context, email string) (string, error)
	SetRole(ctx context.Context, email, role string) error
	DeleteRole(ctx context.Context, email string) error
	// List returns every recorded email with its role.
	List(ctx context.Context) (map[string]string, error)
}

const keyPrefix = "adminemail:"

// RedisStore keeps role documents in Redis under adminemail:<email>.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Role(ctx context.Context, email string) (string, error) {
	role, err := s.client.Get(ctx, keyPrefix+email).Result()
	if errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("%w: %s", ErrNoRole, email)
	}
	if err != nil {
		return "", err
	}
	return role, nil
}

func (s *RedisStore) SetRole(ctx context.Context, email, role string) error {
	return s.client.Set(ctx, keyPrefix+email, role, 0).Err()
}

func (s *RedisStore) DeleteRole(ctx context.Context, email string) error {
	deleted, err := s.client.Del(ctx, keyPrefix+email).Result()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return fmt.Errorf("%w: %s", ErrNoRole, email)
	}
	return nil
}

func (s *RedisStore) List(ctx context.Context) (map[string]string, error) {
	out := make(map[string]string)
	iter := s.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		role, err := s.client.Get(ctx, key).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out[strings.TrimPrefix(key, keyPrefix)] = role
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
