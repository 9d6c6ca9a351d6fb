// Copyright 2025 NetApp, Inc. All Rights Reserved.

package ants

import (
	"time"

	"github.com/brunoga/deep"
)

// Config holds the settings of a worker pool.
type Config struct {
	// NumWorkers is the maximum number of goroutines running tasks at once.
	NumWorkers int

	// PreAlloc allocates the worker queue up front.
	PreAlloc bool

	// NonBlocking makes Submit fail instead of waiting when every worker is busy.
	NonBlocking bool

	// ExpiryDuration is the period after which idle workers are cleaned up.
	ExpiryDuration time.Duration
}

// Copy returns a deep copy of the configuration.
func (c *Config) Copy() *Config {
	if c == nil {
		return nil
	}

	copied, err := deep.Copy(c)
	if err != nil {
		// Fallback to simple struct copy if deep copy fails
		cfgCopy := *c
		return &cfgCopy
	}
	return copied
}

// ConfigOption is a functional option for configuring a pool.
type ConfigOption func(*Config)

// WithNumWorkers sets the number of workers.
func WithNumWorkers(n int) ConfigOption {
	return func(c *Config) {
		c.NumWorkers = n
	}
}

// WithPreAlloc enables pre-allocation of workers on pool creation.
func WithPreAlloc(preAlloc bool) ConfigOption {
	return func(c *Config) {
		c.PreAlloc = preAlloc
	}
}

// WithNonBlocking enables non-blocking mode for Submit.
func WithNonBlocking(nonBlocking bool) ConfigOption {
	return func(c *Config) {
		c.NonBlocking = nonBlocking
	}
}

// WithExpiryDuration sets the period for cleaning up expired workers.
func WithExpiryDuration(d time.Duration) ConfigOption {
	return func(c *Config) {
		c.ExpiryDuration = d
	}
}

// NewConfig creates a new Config with the provided options.
func NewConfig(opts ...ConfigOption) *Config {
	cfg := &Config{
		NumWorkers:     defaultNumWorkers,
		ExpiryDuration: defaultExpiryDuration,
	}

	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.NumWorkers < 1 {
		cfg.NumWorkers = 1
	}
	return cfg
}
