// Copyright 2025 NetApp, Inc. All Rights Reserved.

package ants

import (
	"sync"

	"github.com/panjf2000/ants/v2"
)

// Pool runs submitted tasks on a bounded set of goroutines.
type Pool struct {
	pool *ants.Pool
	wg   sync.WaitGroup
}

// NewPool creates a pool from cfg. A nil cfg uses DefaultConfig.
func NewPool(cfg *Config) (*Pool, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	pool, err := ants.NewPool(cfg.NumWorkers,
		ants.WithPreAlloc(cfg.PreAlloc),
		ants.WithNonblocking(cfg.NonBlocking),
		ants.WithExpiryDuration(cfg.ExpiryDuration),
	)
	if err != nil {
		return nil, err
	}
	return &Pool{pool: pool}, nil
}

// Submit queues task. Wait returns once every submitted task has finished.
func (p *Pool) Submit(task func()) error {
	p.wg.Add(1)
	err := p.pool.Submit(func() {
		defer p.wg.Done()
		task()
	})
	if err != nil {
		p.wg.Done()
	}
	return err
}

// Wait blocks until all submitted tasks are done.
func (p *Pool) Wait() {
	p.wg.Wait()
}

// Running returns the number of live worker goroutines.
func (p *Pool) Running() int {
	return p.pool.Running()
}

// Release closes the pool. Submit fails afterwards.
func (p *Pool) Release() {
	p.pool.Release()
}
