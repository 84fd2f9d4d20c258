// file: internals/helpers/lock/keyed_mutex_test.go
package lock

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	km := NewKeyedMutex()
	key := uuid.New()

	const n = 50
	counter := 0

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			unlock := km.Lock(key)
			defer unlock()
			// critical section tanpa sinkronisasi lain; race detector
			// akan teriak kalau mutex-nya bocor
			c := counter
			time.Sleep(time.Microsecond)
			counter = c + 1
		}()
	}
	wg.Wait()

	assert.Equal(t, n, counter)
}

func TestKeyedMutex_DifferentKeysIndependent(t *testing.T) {
	km := NewKeyedMutex()
	keyA := uuid.New()
	keyB := uuid.New()

	unlockA := km.Lock(keyA)
	defer unlockA()

	// key lain tidak boleh ikut terblokir
	done := make(chan struct{})
	go func() {
		unlockB := km.Lock(keyB)
		unlockB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("lock key berbeda ikut terblokir")
	}
}

func TestKeyedMutex_EntryCleanedUp(t *testing.T) {
	km := NewKeyedMutex()
	key := uuid.New()

	unlock := km.Lock(key)
	unlock()

	km.mu.Lock()
	defer km.mu.Unlock()
	assert.Empty(t, km.locks, "entry dibersihkan saat refcount 0")
}

func TestKeyedMutex_Reentrant_AfterUnlock(t *testing.T) {
	km := NewKeyedMutex()
	key := uuid.New()

	for i := 0; i < 3; i++ {
		unlock := km.Lock(key)
		unlock()
	}
}
