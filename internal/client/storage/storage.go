// Package storage defines the durable key-value store behind session
// persistence and an in-memory implementation.
//
// The store is the client-side equivalent of browser local storage: two
// keys ("token", "user") owned by the persistence layer. Backends live in
// subpackages (sqlite, redisstore) and are selected by config.
package storage

import (
	"context"
	"sync"
)

// Keys owned by the persistence layer.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

// Store is a minimal durable key-value store. Get returns (nil, nil) for an
// absent key; absence is not an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Close() error
}

// PairSetter is an optional Store extension for backends that can write the
// token/user pair atomically. The persistence layer prefers it when present
// so a crash between writes cannot leave a token without its user.
type PairSetter interface {
	SetPair(ctx context.Context, token, user []byte) error
}

// Memory is a process-local Store. Used in tests and for remember-me=false
// sessions, which must not outlive the process.
type Memory struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	m.data[key] = v
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string][]byte)
	return nil
}

func (m *Memory) Close() error { return nil }

var _ Store = (*Memory)(nil)
