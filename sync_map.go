package go_radix_tree

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/datnguyenzzz/nogodb/lib/go-radix-tree/internal/ctxlock"
)

type Entry[K any, V any] struct {
	Key   K
	Value V
}

// SyncMap guards a Map with a single-writer / multiple-reader lock. Every
// call waits for the lock until ctx is done, in which case it returns an
// error wrapping LockNotAcquired and the context error.
//
// Iteration results are collected while the read lock is held, so no caller
// ever observes the tree in the middle of a mutation.
type SyncMap[K any, C KeyComponent, V any] struct {
	lock *ctxlock.CtxRWLock
	m    *Map[K, C, V]
}

func NewSyncMap[K any, C KeyComponent, V any](codec KeyCodec[K, C], opts ...OptionFn) *SyncMap[K, C, V] {
	return &SyncMap[K, C, V]{
		lock: ctxlock.NewRWLock(),
		m:    NewMap[K, C, V](codec, opts...),
	}
}

func NewSyncStringMap[V any](opts ...OptionFn) *SyncMap[string, byte, V] {
	return NewSyncMap[string, byte, V](StringCodec{}, opts...)
}

func (s *SyncMap[K, C, V]) Insert(ctx context.Context, key K, value V) (V, bool, error) {
	if err := s.writeLock(ctx, "insert"); err != nil {
		return *new(V), false, err
	}
	defer s.lock.ReleaseCtx()

	old, had := s.m.Insert(key, value)
	return old, had, nil
}

func (s *SyncMap[K, C, V]) Remove(ctx context.Context, key K) (V, bool, error) {
	if err := s.writeLock(ctx, "remove"); err != nil {
		return *new(V), false, err
	}
	defer s.lock.ReleaseCtx()

	removed, ok := s.m.Remove(key)
	return removed, ok, nil
}

func (s *SyncMap[K, C, V]) Clear(ctx context.Context) error {
	if err := s.writeLock(ctx, "clear"); err != nil {
		return err
	}
	defer s.lock.ReleaseCtx()

	s.m.Clear()
	return nil
}

func (s *SyncMap[K, C, V]) Get(ctx context.Context, key K) (V, bool, error) {
	if err := s.readLock(ctx, "get"); err != nil {
		return *new(V), false, err
	}
	defer s.lock.RReleaseCtx()

	v, ok := s.m.Get(key)
	return v, ok, nil
}

func (s *SyncMap[K, C, V]) Len(ctx context.Context) (int, error) {
	if err := s.readLock(ctx, "len"); err != nil {
		return 0, err
	}
	defer s.lock.RReleaseCtx()

	return s.m.Len(), nil
}

// Collect returns every entry sorted by key.
func (s *SyncMap[K, C, V]) Collect(ctx context.Context) ([]Entry[K, V], error) {
	if err := s.readLock(ctx, "collect"); err != nil {
		return nil, err
	}
	defer s.lock.RReleaseCtx()

	res := make([]Entry[K, V], 0, s.m.Len())
	for k, v := range s.m.All() {
		res = append(res, Entry[K, V]{Key: k, Value: v})
	}
	return res, nil
}

// CollectPrefix returns, sorted by key, every entry whose key starts with prefix.
func (s *SyncMap[K, C, V]) CollectPrefix(ctx context.Context, prefix K) ([]Entry[K, V], error) {
	if err := s.readLock(ctx, "collect prefix"); err != nil {
		return nil, err
	}
	defer s.lock.RReleaseCtx()

	var res []Entry[K, V]
	for k, v := range s.m.Find(prefix) {
		res = append(res, Entry[K, V]{Key: k, Value: v})
	}
	return res, nil
}

func (s *SyncMap[K, C, V]) GetStats() Stats {
	return s.m.GetStats()
}

func (s *SyncMap[K, C, V]) writeLock(ctx context.Context, op string) error {
	return s.categorise(op, s.lock.AcquireCtx(ctx))
}

func (s *SyncMap[K, C, V]) readLock(ctx context.Context, op string) error {
	return s.categorise(op, s.lock.RAcquireCtx(ctx))
}

func (s *SyncMap[K, C, V]) categorise(op string, err error) error {
	if err == nil {
		return nil
	}

	s.m.tree.opts.logger.Warn("failed to acquire radix tree lock", zap.String("op", op), zap.Error(err))
	return fmt.Errorf("%w: %w", LockNotAcquired, err)
}
