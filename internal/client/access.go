// Package client is the data access layer used by the portfolio front end.
// Every operation tries the API first and, when it cannot be reached, serves
// from and mutates an in-memory fallback set.
package client

import (
	"context"
	"sync"
)

// DataAccess is the capability set shared by every entity source.
type DataAccess[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, item T) (T, error)
	Delete(ctx context.Context, id string) error
}

// Record is implemented by entities that carry an id.
type Record[T any] interface {
	Identity() string
	WithIdentity(id string) T
}

// TokenStore holds the session token attached to API calls.
type TokenStore struct {
	mu    sync.RWMutex
	token string
}

func (s *TokenStore) Get() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *TokenStore) Set(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

func (s *TokenStore) Clear() {
	s.Set("")
}
