package client

import (
	"context"
	"errors"

	"portfolio_api/internal/model"

	"github.com/rs/zerolog"
)

// FallbackSource tries remote once per call and serves from local when it
// fails. Validation rejections are returned as is. Successful remote answers
// never touch local.
type FallbackSource[T any] struct {
	remote DataAccess[T]
	local  DataAccess[T]
	entity string
	log    zerolog.Logger
}

// NewFallbackSource composes remote and local for one entity kind.
func NewFallbackSource[T any](entity string, remote, local DataAccess[T], logger zerolog.Logger) *FallbackSource[T] {
	return &FallbackSource[T]{remote: remote, local: local, entity: entity, log: logger}
}

func (s *FallbackSource[T]) List(ctx context.Context) ([]T, error) {
	items, err := s.remote.List(ctx)
	if err == nil {
		return items, nil
	}
	if !shouldFallback(err) {
		return nil, err
	}
	s.warn(err, "list")
	return s.local.List(ctx)
}

func (s *FallbackSource[T]) Create(ctx context.Context, item T) (T, error) {
	created, err := s.remote.Create(ctx, item)
	if err == nil {
		return created, nil
	}
	if !shouldFallback(err) {
		return created, err
	}
	s.warn(err, "create")
	return s.local.Create(ctx, item)
}

func (s *FallbackSource[T]) Delete(ctx context.Context, id string) error {
	err := s.remote.Delete(ctx, id)
	if err == nil {
		return nil
	}
	if !shouldFallback(err) {
		return err
	}
	s.warn(err, "delete")
	return s.local.Delete(ctx, id)
}

func (s *FallbackSource[T]) warn(err error, op string) {
	s.log.Warn().
		Err(err).
		Str("entity", s.entity).
		Str("op", op).
		Msg("Backend API unreachable, using fallback data")
}

// shouldFallback reports whether err is a failure the local set can absorb.
// A rejected request would be rejected again, so it goes back to the caller.
func shouldFallback(err error) bool {
	return !errors.Is(err, model.ErrValidationFailed)
}
