package client

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// LocalSource is a mutex-guarded in-memory collection standing in for the
// API when it cannot be reached.
type LocalSource[T Record[T]] struct {
	mu      sync.Mutex
	items   []T
	prepend bool
	stamp   func(T) T
}

// LocalOption configures a LocalSource.
type LocalOption[T Record[T]] func(*LocalSource[T])

// WithPrepend stores new records at the front of the collection.
func WithPrepend[T Record[T]]() LocalOption[T] {
	return func(s *LocalSource[T]) { s.prepend = true }
}

// WithStamp runs fn over every record before it is stored.
func WithStamp[T Record[T]](fn func(T) T) LocalOption[T] {
	return func(s *LocalSource[T]) { s.stamp = fn }
}

// NewLocalSource copies seed into a new collection.
func NewLocalSource[T Record[T]](seed []T, opts ...LocalOption[T]) *LocalSource[T] {
	s := &LocalSource[T]{items: append([]T{}, seed...)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *LocalSource[T]) List(_ context.Context) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]T{}, s.items...), nil
}

// Create stores item under a fresh random id.
func (s *LocalSource[T]) Create(_ context.Context, item T) (T, error) {
	item = item.WithIdentity(uuid.NewString())
	if s.stamp != nil {
		item = s.stamp(item)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.prepend {
		s.items = append([]T{item}, s.items...)
	} else {
		s.items = append(s.items, item)
	}
	return item, nil
}

// Delete removes the record with id if present.
func (s *LocalSource[T]) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, item := range s.items {
		if item.Identity() == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	return nil
}
