// Copyright 2025 NetApp, Inc. All Rights Reserved.

package ontap

import (
	"context"
	"sort"
	"strings"
	"sync"

	. "github.com/netapp/multisvm/logging"
	"github.com/netapp/multisvm/pkg/locks"
	drivers "github.com/netapp/multisvm/storage_drivers"
	"github.com/netapp/multisvm/utils/errors"
)

// SVMRegistry maps managed SVM names to their clients. Entries are fully set up before they become
// visible, and the map lock is never held while talking to the cluster.
type SVMRegistry struct {
	prefix    string
	namespace *drivers.ConfigNamespace
	factory   SVMClientFactory

	mutex   sync.RWMutex
	entries map[string]*SVMEntry

	// per-SVM locks serialize writes to the same name
	pending *locks.GCNamedMutex
}

func NewSVMRegistry(prefix string, namespace *drivers.ConfigNamespace, factory SVMClientFactory) *SVMRegistry {
	return &SVMRegistry{
		prefix:    prefix,
		namespace: namespace,
		factory:   factory,
		entries:   make(map[string]*SVMEntry),
		pending:   locks.NewGCNamedMutex(),
	}
}

// Prefix returns the name prefix of managed SVMs.
func (r *SVMRegistry) Prefix() string {
	return r.prefix
}

func (r *SVMRegistry) backendName() string {
	return r.namespace.Parent().Name
}

// Upsert registers svm if it is not already present. The client is built from the SVM's derived
// group, set up and checked before it is installed; on any failure it is terminated and nothing is
// added.
func (r *SVMRegistry) Upsert(ctx context.Context, svm string) (err error) {
	ctx = WithSVM(ctx, svm)

	if !strings.HasPrefix(svm, r.prefix) || len(svm) == len(r.prefix) {
		return errors.InvalidInputError("SVM %s is not managed under prefix %s", svm, r.prefix)
	}

	r.pending.Lock(svm)
	defer r.pending.Unlock(svm)

	if _, err = r.Get(svm); err == nil {
		Logc(ctx).Trace("SVM already registered.")
		return nil
	}

	defer func() {
		svmUpsertsCounter.WithLabelValues(r.backendName(), resultLabel(err)).Inc()
	}()

	entry, err := r.buildEntry(ctx, svm)
	if err != nil {
		Logc(ctx).WithError(err).Error("Could not register SVM.")
		return err
	}

	r.mutex.Lock()
	r.entries[svm] = entry
	size := len(r.entries)
	r.mutex.Unlock()

	registeredSVMsGauge.WithLabelValues(r.backendName()).Set(float64(size))
	Logc(ctx).WithField("group", entry.Group.Name).Info("Registered SVM.")

	return nil
}

func (r *SVMRegistry) buildEntry(ctx context.Context, svm string) (*SVMEntry, error) {
	group, err := r.namespace.Derive(ctx, svm)
	if err != nil {
		return nil, err
	}

	driverConfig, err := drivers.NewDriverConfig(ctx, group)
	if err != nil {
		r.namespace.Forget(svm)
		return nil, err
	}

	client, err := r.factory(ctx, driverConfig)
	if err != nil {
		r.namespace.Forget(svm)
		return nil, err
	}

	fail := func(err error) (*SVMEntry, error) {
		client.Terminate(ctx)
		r.namespace.Forget(svm)
		return nil, err
	}

	if err = client.Setup(ctx); err != nil {
		return fail(err)
	}
	if err = client.CheckForSetupError(ctx); err != nil {
		return fail(err)
	}
	if client.VServer() != svm {
		return fail(errors.InvalidInputError("client for SVM %s is pinned to %s", svm, client.VServer()))
	}

	return &SVMEntry{SVMName: svm, Client: client, Group: group}, nil
}

// Remove drops svm from the registry and terminates its client. Removing an unknown SVM is a no-op.
func (r *SVMRegistry) Remove(ctx context.Context, svm string) {
	ctx = WithSVM(ctx, svm)

	r.pending.Lock(svm)
	defer r.pending.Unlock(svm)

	r.mutex.Lock()
	entry, ok := r.entries[svm]
	delete(r.entries, svm)
	size := len(r.entries)
	r.mutex.Unlock()

	if !ok {
		return
	}

	registeredSVMsGauge.WithLabelValues(r.backendName()).Set(float64(size))

	entry.Client.Terminate(ctx)
	r.namespace.Forget(svm)

	Logc(ctx).Info("Removed SVM.")
}

// Get returns the entry for svm.
func (r *SVMRegistry) Get(svm string) (*SVMEntry, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	entry, ok := r.entries[svm]
	if !ok {
		return nil, errors.SVMNotFoundError(svm)
	}
	return entry, nil
}

// Names returns the sorted names of all registered SVMs.
func (r *SVMRegistry) Names() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Entries returns a snapshot of all entries, ordered by SVM name.
func (r *SVMRegistry) Entries() []*SVMEntry {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	entries := make([]*SVMEntry, 0, len(r.entries))
	for _, entry := range r.entries {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].SVMName < entries[j].SVMName
	})
	return entries
}

func (r *SVMRegistry) Len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return len(r.entries)
}

// Clear removes every entry, terminating their clients.
func (r *SVMRegistry) Clear(ctx context.Context) {
	for _, svm := range r.Names() {
		r.Remove(ctx, svm)
	}
}
