package locker

import "sync"

// Locker is an in-process reentrancy guard keyed by name. The drain acquires
// its key before touching the pending store so overlapping syncs never
// interleave read-modify-write cycles.
type Locker struct {
	mu   sync.Mutex
	held map[string]bool
}

func New() *Locker {
	return &Locker{
		held: make(map[string]bool),
	}
}

// TryAcquire takes the named guard and reports whether it was free.
func (l *Locker) TryAcquire(name string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held[name] {
		return false
	}
	l.held[name] = true
	return true
}

// IsHeld checks whether the named guard is currently taken.
func (l *Locker) IsHeld(name string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.held[name]
}

func (l *Locker) Release(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.held, name)
}
