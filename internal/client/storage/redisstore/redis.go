// Package redisstore is the redis-backed session state store, for kiosk
// deployments where several reader processes on one host share a session.
// Keys are namespaced under a fixed prefix so a shared instance can hold
// unrelated data.
package redisstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/tarotvn/tarot-client/internal/client/storage"
)

const keyPrefix = "tarot:session:"

// Store is a storage.Store over a redis instance.
type Store struct {
	client *redis.Client
}

// Open connects to redis at addr and verifies the connection with a ping.
func Open(ctx context.Context, addr, password string) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}
	return &Store{client: client}, nil
}

// NewWithClient wraps an existing client; used by tests with miniredis.
func NewWithClient(client *redis.Client) *Store {
	return &Store{client: client}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session key %s: %w", key, err)
	}
	return val, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, keyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set session key %s: %w", key, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to delete session key %s: %w", key, err)
	}
	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	keys, err := s.client.Keys(ctx, keyPrefix+"*").Result()
	if err != nil {
		return fmt.Errorf("failed to list session keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to clear session keys: %w", err)
	}
	return nil
}

// SetPair writes both session keys in one MULTI/EXEC transaction.
func (s *Store) SetPair(ctx context.Context, token, user []byte) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, keyPrefix+storage.KeyToken, token, 0)
		pipe.Set(ctx, keyPrefix+storage.KeyUser, user, 0)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to set session pair: %w", err)
	}
	return nil
}

func (s *Store) Close() error { return s.client.Close() }

var (
	_ storage.Store      = (*Store)(nil)
	_ storage.PairSetter = (*Store)(nil)
)
