package concurrency

import (
	"sync"
)

// LockManager handles named locks, one per garden username
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns a mutex for the given key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// Lock acquires the lock for key and returns its unlock function
func (lm *LockManager) Lock(key string) func() {
	mu := lm.GetLock(key)
	mu.Lock()
	return mu.Unlock
}

// LockPair acquires the locks for two keys in a fixed order so concurrent
// callers with swapped arguments cannot deadlock
func (lm *LockManager) LockPair(a, b string) func() {
	if a == b {
		return lm.Lock(a)
	}
	if b < a {
		a, b = b, a
	}
	unlockA := lm.Lock(a)
	unlockB := lm.Lock(b)
	return func() {
		unlockB()
		unlockA()
	}
}
