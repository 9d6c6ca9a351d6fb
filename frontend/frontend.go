// Copyright 2025 NetApp, Inc. All Rights Reserved.

package frontend

// Plugin is a network frontend started and stopped with the daemon.
type Plugin interface {
	Activate() error
	Deactivate() error
	GetName() string
	Version() string
}
