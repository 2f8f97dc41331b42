package xsync

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingLocker struct {
	name  string
	calls *[]string
}

func (l recordingLocker) Lock() {
	*l.calls = append(*l.calls, "lock "+l.name)
}

func (l recordingLocker) Unlock() {
	*l.calls = append(*l.calls, "unlock "+l.name)
}

func TestRWMutex(t *testing.T) {
	var (
		m  RWMutex
		wg sync.WaitGroup
		n  int
	)
	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			m.WithLock(func() {
				n++
			})
		}()
		go func() {
			defer wg.Done()
			m.WithRLock(func() {
				_ = n
			})
		}()
	}
	wg.Wait()
	m.WithRLock(func() {
		require.Equal(t, 100, n)
	})
}

func TestChain(t *testing.T) {
	var calls []string
	c := Chain{
		recordingLocker{name: "external", calls: &calls},
		nil,
		recordingLocker{name: "internal", calls: &calls},
	}
	c.Lock()
	c.Unlock()
	require.Equal(t, []string{
		"lock external",
		"lock internal",
		"unlock internal",
		"unlock external",
	}, calls)
}
