// Package revalidate carries the cache-invalidation signal mutation handlers
// emit: after a successful write, the listing route for the entity is marked
// stale so the next render refetches.
package revalidate

import "sync"

// Invalidator receives stale-route notifications.
type Invalidator interface {
	Invalidate(route string)
}

// Notifier fans one Invalidate call out to every subscriber.
type Notifier struct {
	mu   sync.RWMutex
	subs []func(route string)
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

func (n *Notifier) Subscribe(fn func(route string)) {
	n.mu.Lock()
	n.subs = append(n.subs, fn)
	n.mu.Unlock()
}

func (n *Notifier) Invalidate(route string) {
	n.mu.RLock()
	subs := n.subs
	n.mu.RUnlock()

	for _, fn := range subs {
		fn(route)
	}
}
