// Copyright 2025 NetApp, Inc. All Rights Reserved.

package ants

import (
	"runtime"
	"time"
)

const (
	// defaultExpiryDuration is the default expiryDuration after which expired workers are cleaned up.
	defaultExpiryDuration = 10 * time.Second
)

var (
	// defaultNumWorkers is the default number of workers (based on CPU count).
	defaultNumWorkers = runtime.NumCPU()
)

// DefaultConfig returns the default configuration for a single Pool.
func DefaultConfig() *Config {
	return NewConfig()
}
