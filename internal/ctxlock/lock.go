package ctxlock

import (
	"context"
	"fmt"

	"golang.org/x/sync/semaphore"
)

const defaultMaxReaders int64 = 1 << 20

// CtxRWLock is a readers-writer lock whose acquisition can be abandoned through
// context.Context cancellation. It is resolved locally and does not require
// network calls.
//
// The lock is a weighted semaphore of maxReaders units: a reader takes one
// unit, a writer takes all of them. The semaphore serves waiters in FIFO order,
// so a pending writer is not starved by a stream of readers.
type CtxRWLock struct {
	sem        *semaphore.Weighted
	maxReaders int64
}

func NewRWLock() *CtxRWLock {
	return NewRWLockWithReaders(defaultMaxReaders)
}

// NewRWLockWithReaders bounds the number of readers holding the lock at once.
func NewRWLockWithReaders(maxReaders int64) *CtxRWLock {
	if maxReaders <= 0 {
		maxReaders = defaultMaxReaders
	}
	return &CtxRWLock{
		sem:        semaphore.NewWeighted(maxReaders),
		maxReaders: maxReaders,
	}
}

// AcquireCtx takes the exclusive (write) side of the lock.
func (l *CtxRWLock) AcquireCtx(ctx context.Context) error {
	return l.acquire(ctx, l.maxReaders)
}

func (l *CtxRWLock) ReleaseCtx() {
	l.sem.Release(l.maxReaders)
}

// RAcquireCtx takes the shared (read) side of the lock.
func (l *CtxRWLock) RAcquireCtx(ctx context.Context) error {
	return l.acquire(ctx, 1)
}

func (l *CtxRWLock) RReleaseCtx() {
	l.sem.Release(1)
}

func (l *CtxRWLock) acquire(ctx context.Context, n int64) error {
	if l.sem == nil {
		return fmt.Errorf("failed to init lock")
	}

	// context is either timeout or cancelled
	return l.sem.Acquire(ctx, n)
}
