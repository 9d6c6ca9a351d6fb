// Copyright 2025 NetApp, Inc. All Rights Reserved.

package locks

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGCNamedMutex_ReleasesNames(t *testing.T) {
	m := NewGCNamedMutex()

	m.Lock("a")
	m.Lock("b")
	assert.Equal(t, 2, m.Len())

	m.Unlock("a")
	assert.Equal(t, 1, m.Len())
	m.Unlock("b")
	assert.Equal(t, 0, m.Len())

	// Unlocking an unknown name is a no-op.
	m.Unlock("c")
	assert.Equal(t, 0, m.Len())
}

func TestGCNamedMutex_SerializesSameName(t *testing.T) {
	m := NewGCNamedMutex()

	var active, maxActive int32
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			locked := m.LockWithGuard("/api/svm/svms")
			defer locked.Unlock()

			n := atomic.AddInt32(&active, 1)
			for {
				prev := atomic.LoadInt32(&maxActive)
				if n <= prev || atomic.CompareAndSwapInt32(&maxActive, prev, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&active, -1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxActive)
	assert.Equal(t, 0, m.Len())
}

func TestGCNamedMutex_DistinctNamesDoNotBlock(t *testing.T) {
	m := NewGCNamedMutex()
	m.Lock("a")
	defer m.Unlock("a")

	done := make(chan struct{})
	go func() {
		m.Lock("b")
		m.Unlock("b")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("lock on a different name was blocked")
	}
}

func TestLockedResource_UnlockTwice(t *testing.T) {
	m := NewGCNamedMutex()
	locked := m.LockWithGuard("x")
	assert.Equal(t, "x", locked.Name())

	locked.Unlock()
	locked.Unlock()
	assert.Equal(t, 0, m.Len())
}
