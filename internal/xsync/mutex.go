package xsync

import (
	"sync"
)

type RWMutex struct { //nolint:gocritic
	sync.RWMutex
}

func (l *RWMutex) WithLock(f func()) {
	l.Lock()
	defer l.Unlock()

	f()
}

func (l *RWMutex) WithRLock(f func()) {
	l.RLock()
	defer l.RUnlock()

	f()
}

// Chain locks all non-nil lockers in order and unlocks them in reverse.
type Chain []sync.Locker

func (c Chain) Lock() {
	for _, l := range c {
		if l != nil {
			l.Lock()
		}
	}
}

func (c Chain) Unlock() {
	for i := len(c) - 1; i >= 0; i-- {
		if c[i] != nil {
			c[i].Unlock()
		}
	}
}
