package reckeep

import (
	"sync"
)

// operationType tells the lockManager whether an operation needs a
// shared or an exclusive lock.
type operationType int

const (
	readOperation operationType = iota
	writeOperation
)

// lockManager serializes store operations within one process. Two
// processes racing on the same store file still follow
// last-writer-wins semantics.
type lockManager struct {
	mu *sync.RWMutex
}

func newLockManager() *lockManager {
	return &lockManager{
		mu: &sync.RWMutex{},
	}
}

func (lm *lockManager) execute(opType operationType, fn func() error) error {
	switch opType {
	case readOperation:
		lm.mu.RLock()
		defer lm.mu.RUnlock()
	case writeOperation:
		lm.mu.Lock()
		defer lm.mu.Unlock()
	}
	return fn()
}
