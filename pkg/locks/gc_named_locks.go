// Copyright 2025 NetApp, Inc. All Rights Reserved.

package locks

import "sync"

// LockedResource is a wrapper that holds a named lock and its unlock function.
// It provides idempotent unlock behavior - safe to call Unlock() multiple times.
type LockedResource struct {
	name   string
	unlock func()
}

// Name returns the resource name that is locked.
func (lr *LockedResource) Name() string {
	return lr.name
}

// Unlock releases the lock on this resource.
// Safe to call multiple times (subsequent calls are no-ops).
func (lr *LockedResource) Unlock() {
	if lr.unlock != nil {
		lr.unlock()
		lr.unlock = nil
	}
}

// GCNamedMutex provides named mutexes that are released once nobody holds or waits on them.
type GCNamedMutex struct {
	mutexes map[string]*gcMutex
	m       sync.Mutex
}

type gcMutex struct {
	m sync.Mutex
	c int
}

func NewGCNamedMutex() *GCNamedMutex {
	return &GCNamedMutex{mutexes: make(map[string]*gcMutex)}
}

func (g *GCNamedMutex) Lock(name string) {
	g.m.Lock()
	resourceMutex, ok := g.mutexes[name]
	if !ok {
		resourceMutex = &gcMutex{}
		g.mutexes[name] = resourceMutex
	}
	resourceMutex.c++
	g.m.Unlock()

	resourceMutex.m.Lock()
}

func (g *GCNamedMutex) Unlock(name string) {
	g.m.Lock()
	resourceMutex, ok := g.mutexes[name]
	if !ok {
		g.m.Unlock()
		return
	}
	resourceMutex.c--
	if resourceMutex.c == 0 {
		delete(g.mutexes, name)
	}
	g.m.Unlock()

	resourceMutex.m.Unlock()
}

// LockWithGuard acquires the named lock and returns a wrapper for convenient unlock handling.
// Usage:
//
//	locked := mutex.LockWithGuard("resourceName")
//	defer locked.Unlock()
func (g *GCNamedMutex) LockWithGuard(name string) *LockedResource {
	g.Lock(name)
	return &LockedResource{
		name:   name,
		unlock: func() { g.Unlock(name) },
	}
}

// Len returns the number of names currently held or awaited.
func (g *GCNamedMutex) Len() int {
	g.m.Lock()
	defer g.m.Unlock()
	return len(g.mutexes)
}
