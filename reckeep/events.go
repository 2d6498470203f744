package reckeep

import (
	"sync"

	"github.com/google/uuid"

	"github.com/reckeep/reckeep/types"
)

// eventBus is the in-process notification channel. Observers receive
// events synchronously after the mutation has been persisted; dispatch
// is decoupled from I/O so tests can subscribe without touching the
// filesystem.
type eventBus struct {
	mu          sync.RWMutex
	subscribers map[string]func(types.Event)
}

func newEventBus() *eventBus {
	return &eventBus{
		subscribers: make(map[string]func(types.Event)),
	}
}

func (b *eventBus) subscribe(fn func(types.Event)) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	token := uuid.New().String()
	b.subscribers[token] = fn
	return token
}

func (b *eventBus) unsubscribe(token string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.subscribers, token)
}

func (b *eventBus) publish(ev types.Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, fn := range b.subscribers {
		fn(ev)
	}
}

// Subscribe registers an observer for mutation events and returns a
// token for Unsubscribe.
func (s *Store) Subscribe(fn func(types.Event)) string {
	return s.events.subscribe(fn)
}

// Unsubscribe removes a previously registered observer.
func (s *Store) Unsubscribe(token string) {
	s.events.unsubscribe(token)
}
