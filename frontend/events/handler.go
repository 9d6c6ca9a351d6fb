// Copyright 2025 NetApp, Inc. All Rights Reserved.

package events

import (
	"context"
	"slices"

	"go.uber.org/multierr"

	. "github.com/netapp/multisvm/logging"
	"github.com/netapp/multisvm/provisioning"
	"github.com/netapp/multisvm/utils/errors"
)

// Provisioner runs the tenant storage lifecycle.
type Provisioner interface {
	ProvisionTenant(ctx context.Context, tenantID string) (*provisioning.ProvisionResult, error)
	CleanupTenant(ctx context.Context, tenantID string) (*provisioning.TeardownResult, error)
}

// TagSource looks up the tags of a project when the event does not carry them.
type TagSource interface {
	ProjectTags(ctx context.Context, projectID string) ([]string, error)
}

// StaticTagSource returns the same tags for every project.
type StaticTagSource []string

func (s StaticTagSource) ProjectTags(context.Context, string) ([]string, error) {
	return []string(s), nil
}

// Result is the outcome of handling one event.
type Result struct {
	EventType  string                       `json:"event_type"`
	ProjectID  string                       `json:"project_id"`
	SVMName    string                       `json:"svm_name"`
	SVMEnabled bool                         `json:"svm_enabled"`
	SVMCreated bool                         `json:"svm_created"`
	Tags       []string                     `json:"project_tags,omitempty"`
	Provision  *provisioning.ProvisionResult `json:"provision,omitempty"`
	Teardown   *provisioning.TeardownResult  `json:"teardown,omitempty"`
}

// Handler dispatches project events to the provisioner.
type Handler struct {
	provisioner Provisioner
	tags        TagSource
	projectTag  string
	svmPrefix   string
	outputs     *OutputWriter
}

type HandlerOption func(*Handler)

// WithTagSource sets where project tags are read from when an event carries none.
func WithTagSource(tags TagSource) HandlerOption {
	return func(h *Handler) {
		h.tags = tags
	}
}

// WithOutputWriter makes the handler record its results as output files.
func WithOutputWriter(outputs *OutputWriter) HandlerOption {
	return func(h *Handler) {
		h.outputs = outputs
	}
}

// NewHandler builds a handler. Projects get an SVM only when they carry projectTag.
func NewHandler(provisioner Provisioner, projectTag, svmPrefix string, options ...HandlerOption) *Handler {
	h := &Handler{provisioner: provisioner, projectTag: projectTag, svmPrefix: svmPrefix}
	for _, option := range options {
		option(h)
	}
	return h
}

// Handle processes one event. Unhandled event types return an InvalidInputError.
func (h *Handler) Handle(ctx context.Context, event *Event) (result *Result, err error) {
	ctx = GenerateRequestContext(ctx, event.MessageID, ContextSourceEvent)
	eventType := event.Type()

	defer func() {
		outcome := "success"
		if err != nil {
			outcome = "failure"
		}
		eventsHandledCounter.WithLabelValues(eventType, outcome).Inc()
	}()

	Logc(ctx).WithFields(LogFields{
		"eventType": event.EventType,
		"projectID": event.ProjectID(),
	}).Info("Handling project event.")

	switch eventType {
	case EventProjectCreated, EventProjectUpdated:
		return h.handleProjectUpsert(ctx, event)
	case EventProjectDeleted:
		return h.handleProjectDeleted(ctx, event)
	default:
		eventType = "unknown"
		Logc(ctx).WithField("eventType", event.EventType).Warning("No handler for event type.")
		return nil, errors.InvalidInputError("no handler for event type %s", event.EventType)
	}
}

func (h *Handler) projectTags(ctx context.Context, event *Event) ([]string, error) {
	if tags, ok := event.Tags(); ok {
		return tags, nil
	}
	if h.tags == nil {
		return []string{}, nil
	}
	tags, err := h.tags.ProjectTags(ctx, event.ProjectID())
	if err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}

func (h *Handler) handleProjectUpsert(ctx context.Context, event *Event) (*Result, error) {
	projectID := event.ProjectID()
	result := &Result{
		EventType: event.Type(),
		ProjectID: projectID,
		SVMName:   h.svmPrefix + projectID,
	}

	tags, err := h.projectTags(ctx, event)
	if err != nil {
		return nil, err
	}
	result.Tags = tags
	result.SVMEnabled = slices.Contains(tags, h.projectTag)

	if result.SVMEnabled {
		if result.Provision, err = h.provisioner.ProvisionTenant(ctx, projectID); err != nil {
			return nil, err
		}
		result.SVMName = result.Provision.SVMName
		result.SVMCreated = result.Provision.SVMCreated
	} else {
		Logc(ctx).WithFields(LogFields{
			"projectID": projectID,
			"tag":       h.projectTag,
		}).Info("Project is not tagged for an SVM; nothing to provision.")
	}

	if err = h.writeUpsertOutputs(result); err != nil {
		return result, err
	}
	return result, nil
}

func (h *Handler) handleProjectDeleted(ctx context.Context, event *Event) (*Result, error) {
	projectID := event.ProjectID()
	result := &Result{
		EventType: event.Type(),
		ProjectID: projectID,
		SVMName:   h.svmPrefix + projectID,
	}

	teardown, err := h.provisioner.CleanupTenant(ctx, projectID)
	result.Teardown = teardown

	if h.outputs != nil {
		err = multierr.Append(err, h.outputs.WriteString(OutputSVMName, result.SVMName))
		if teardown != nil {
			err = multierr.Append(err, h.outputs.WriteJSON(OutputTeardownResult, teardown))
		}
	}
	return result, err
}

func (h *Handler) writeUpsertOutputs(result *Result) error {
	if h.outputs == nil {
		return nil
	}
	return multierr.Combine(
		h.outputs.WriteBool(OutputSVMEnabled, result.SVMEnabled),
		h.outputs.WriteBool(OutputSVMCreated, result.SVMCreated),
		h.outputs.WriteString(OutputSVMName, result.SVMName),
		h.outputs.WriteJSON(OutputProjectTags, result.Tags),
	)
}
