package storage

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	redis "github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "gitdojo:session:"

// redisStore keeps session state in Redis so several backend instances can
// share it.
type redisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis at addr and verifies the connection.
func NewRedisStore(addr string) (Store, error) {
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &redisStore{client: client}, nil
}

func (s *redisStore) Save(ctx context.Context, id string, data []byte) error {
	return s.client.Set(ctx, sessionKey(id), data, 0).Err()
}

func (s *redisStore) Load(ctx context.Context, id string) ([]byte, error) {
	data, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, err
	}
	return data, nil
}

func (s *redisStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKey(id)).Err()
}

func (s *redisStore) List(ctx context.Context) ([]string, error) {
	var ids []string
	iter := s.client.Scan(ctx, 0, sessionKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		ids = append(ids, strings.TrimPrefix(iter.Val(), sessionKeyPrefix))
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	slices.Sort(ids)
	return ids, nil
}

func (s *redisStore) Close() error {
	return s.client.Close()
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}
