package TreeSet

import (
	"cmp"
	"sync"
)

// SyncTreeSet is a TreeSet guarded by a read-write lock. Range holds the read lock for the whole iteration,
// so f mustn't modify the set.
type SyncTreeSet[E any] struct {
	mu sync.RWMutex
	s  TreeSet[E]
}

func NewSync[E cmp.Ordered](size uint32) *SyncTreeSet[E] {
	return &SyncTreeSet[E]{s: *New[E](size)}
}

func (u *SyncTreeSet[E]) Put(e E) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.s.Put(e)
}

func (u *SyncTreeSet[E]) Has(e E) bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.s.Has(e)
}

func (u *SyncTreeSet[E]) Remove(e E) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.s.Remove(e)
}

func (u *SyncTreeSet[E]) Size() uint {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.s.Size()
}

func (u *SyncTreeSet[E]) Take() E {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.s.Take()
}

func (u *SyncTreeSet[E]) PopMin() (E, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.s.PopMin()
}

func (u *SyncTreeSet[E]) Range(f func(E) bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	u.s.Range(f)
}
