package drag

import (
	"sync"

	"github.com/google/uuid"
)

// OwnerToken is an opaque per-gesture identifier for lock ownership.
type OwnerToken string

// NewOwnerToken returns a fresh opaque owner token.
func NewOwnerToken() OwnerToken {
	return OwnerToken(uuid.NewString())
}

// Lock is the single mutual-exclusion gate between the two drag initiation
// paths. Both the native item-provider hook and the low-level pointer
// monitor may observe the same physical pointer-down; whichever acquires
// first starts the session, the other yields.
//
// The lock protects against duplicate logical initiation, not parallelism:
// all callers run on one logical timeline, but the check-and-set is guarded
// anyway so a platform layer that hops threads cannot corrupt it.
type Lock struct {
	mu    sync.Mutex
	owner OwnerToken
}

// NewLock creates an unheld lock.
func NewLock() *Lock {
	return &Lock{}
}

// TryAcquire atomically takes the lock for owner if it is unheld.
// Re-acquisition by the current owner fails; the lock is not reentrant.
func (l *Lock) TryAcquire(owner OwnerToken) bool {
	if owner == "" {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.owner != "" {
		return false
	}
	l.owner = owner
	return true
}

// Release frees the lock if owner currently holds it. A release by a
// non-owner is a no-op, so a stale or duplicate release can never evict a
// legitimately new owner.
func (l *Lock) Release(owner OwnerToken) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.owner == owner {
		l.owner = ""
	}
}

// Held reports whether any owner currently holds the lock.
func (l *Lock) Held() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.owner != ""
}

// Owner returns the current owner token, empty when unheld.
func (l *Lock) Owner() OwnerToken {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.owner
}
