// file: internals/helpers/lock/keyed_mutex.go
package lock

import (
	"sync"

	"github.com/google/uuid"
)

// KeyedMutex: mutual exclusion per key (dipakai utk serialisasi per-shelf).
// Operasi terhadap shelf yang sama dieksekusi bergantian; shelf berbeda
// jalan paralel penuh.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{locks: map[uuid.UUID]*entry{}}
}

// Lock mengunci key; balikannya fungsi unlock.
// Entry dibersihkan saat tidak ada lagi yang menunggu (refcount).
func (k *KeyedMutex) Lock(key uuid.UUID) (unlock func()) {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		e = &entry{}
		k.locks[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()
	return func() {
		e.mu.Unlock()
		k.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
