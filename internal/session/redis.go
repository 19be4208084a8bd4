package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the session in Redis so several consoles share one login.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore uses keys <prefix>adminToken and <prefix>adminEmail.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

// NewRedisClient parses a redis:// URL and checks connectivity.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	if url == "" {
		return nil, errors.New("redis url is required")
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

func (r *RedisStore) Load(ctx context.Context) (Session, error) {
	vals, err := r.client.MGet(ctx, r.prefix+KeyToken, r.prefix+KeyEmail).Result()
	if err != nil {
		return Session{}, fmt.Errorf("load session: %w", err)
	}
	token, _ := vals[0].(string)
	if token == "" {
		return Session{}, ErrNoSession
	}
	email, _ := vals[1].(string)
	return Session{Token: token, Email: email}, nil
}

func (r *RedisStore) Save(ctx context.Context, s Session) error {
	_, err := r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, r.prefix+KeyToken, s.Token, 0)
		p.Set(ctx, r.prefix+KeyEmail, s.Email, 0)
		return nil
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *RedisStore) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.prefix+KeyToken, r.prefix+KeyEmail).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
