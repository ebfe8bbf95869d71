// Package lockmap provides per-key mutual exclusion. The commit protocol
// holds a resource's lock for the duration of its check-and-insert so two
// in-process booking attempts on the same resource serialize, while attempts
// on different resources proceed fully in parallel.
package lockmap

import (
	"sync"

	"github.com/google/uuid"
)

type LockMap struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

func New() *LockMap {
	return &LockMap{locks: make(map[uuid.UUID]*entry)}
}

// Lock blocks until the key's lock is held. Entries are reference counted
// and removed on final unlock, so the map does not grow with the number of
// resources ever booked.
func (l *LockMap) Lock(key uuid.UUID) {
	l.mu.Lock()
	e, ok := l.locks[key]
	if !ok {
		e = &entry{}
		l.locks[key] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()
}

func (l *LockMap) Unlock(key uuid.UUID) {
	l.mu.Lock()
	e, ok := l.locks[key]
	if !ok {
		l.mu.Unlock()
		panic("lockmap: unlock of unheld key")
	}
	e.refs--
	if e.refs == 0 {
		delete(l.locks, key)
	}
	l.mu.Unlock()

	e.mu.Unlock()
}
