package view

import (
	"sync"
	"time"
)

// latest is the per-endpoint last-known-good snapshot holder. Writes are
// whole-snapshot replacements; a failed refresh marks the held value
// stale instead of dropping it.
type latest[T any] struct {
	mu        sync.RWMutex
	value     *T
	loaded    bool
	stale     bool
	lastErr   string
	fetchedAt time.Time
}

func (l *latest[T]) setOK(v *T, at time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.value = v
	l.loaded = true
	l.stale = false
	l.lastErr = ""
	l.fetchedAt = at
}

func (l *latest[T]) setErr(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lastErr = err.Error()
	if l.loaded {
		l.stale = true
	}
}

func (l *latest[T]) get() (value *T, stale bool, lastErr string, fetchedAt time.Time) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if !l.loaded {
		return nil, false, l.lastErr, time.Time{}
	}
	return l.value, l.stale, l.lastErr, l.fetchedAt
}

func (l *latest[T]) hasValue() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loaded
}
