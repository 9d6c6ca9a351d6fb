// Copyright 2025 NetApp, Inc. All Rights Reserved.

package events

import (
	"encoding/json"
	"strings"

	"github.com/netapp/multisvm/utils/errors"
)

const (
	EventProjectCreated = "project.created"
	EventProjectUpdated = "project.updated"
	EventProjectDeleted = "project.deleted"

	identityEventPrefix = "identity."
)

type Target struct {
	ID   string   `json:"id"`
	Name string   `json:"name,omitempty"`
	Tags []string `json:"tags,omitempty"`
}

type Payload struct {
	Target *Target `json:"target,omitempty"`
}

// Event is a project lifecycle notification.
type Event struct {
	EventType   string   `json:"event_type"`
	MessageID   string   `json:"message_id,omitempty"`
	PublisherID string   `json:"publisher_id,omitempty"`
	Timestamp   string   `json:"timestamp,omitempty"`
	Payload     *Payload `json:"payload,omitempty"`
}

// Type returns the event type without the identity. prefix.
func (e *Event) Type() string {
	return strings.TrimPrefix(e.EventType, identityEventPrefix)
}

// Handled reports whether the event type has a handler.
func (e *Event) Handled() bool {
	switch e.Type() {
	case EventProjectCreated, EventProjectUpdated, EventProjectDeleted:
		return true
	default:
		return false
	}
}

// ProjectID returns the ID of the project the event is about.
func (e *Event) ProjectID() string {
	if e.Payload == nil || e.Payload.Target == nil {
		return ""
	}
	return e.Payload.Target.ID
}

// Tags returns the project tags carried in the event, and whether the event carried any tag list.
func (e *Event) Tags() ([]string, bool) {
	if e.Payload == nil || e.Payload.Target == nil || e.Payload.Target.Tags == nil {
		return nil, false
	}
	return e.Payload.Target.Tags, true
}

// ParseEvent decodes and validates an event. Validation covers the envelope only; whether the event
// type is handled is decided by the Handler.
func ParseEvent(data []byte) (*Event, error) {
	var event Event
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.InvalidInputError("could not parse event: %v", err)
	}
	if event.EventType == "" {
		return nil, errors.InvalidInputError("event must contain an event_type")
	}
	if event.Payload == nil {
		return nil, errors.InvalidInputError("event %s has no payload", event.EventType)
	}
	if event.Payload.Target == nil {
		return nil, errors.InvalidInputError("event %s has no target in its payload", event.EventType)
	}
	if strings.TrimSpace(event.Payload.Target.ID) == "" {
		return nil, errors.InvalidInputError("event %s has no project ID", event.EventType)
	}
	return &event, nil
}
