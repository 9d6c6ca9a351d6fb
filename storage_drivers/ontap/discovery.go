// Copyright 2025 NetApp, Inc. All Rights Reserved.

package ontap

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"code.cloudfoundry.org/clock"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	. "github.com/netapp/multisvm/logging"
	"github.com/netapp/multisvm/pkg/convert"
	"github.com/netapp/multisvm/storage_drivers/ontap/api"
)

const (
	discoveryRequestSource = "Periodic"

	// maximum number of SVMs set up in parallel within one pass
	discoveryUpsertConcurrency = 8
)

// SVMLister is the part of the cluster client discovery depends on.
type SVMLister interface {
	SvmList(ctx context.Context, filter api.SvmFilter) ([]api.Svm, error)
}

// ReconcileResult describes one discovery pass.
type ReconcileResult struct {
	Added   []string
	Removed []string
	// Failed holds the SVMs that could not be registered; they are retried on the next pass.
	Failed []string
	// Err combines the registration failures.
	Err error
}

// Discovery keeps an SVMRegistry in step with the running, NVMe-enabled SVMs on the cluster.
type Discovery struct {
	lister   SVMLister
	registry *SVMRegistry
	interval time.Duration
	clock    clock.Clock

	// one pass at a time
	reconcileMutex sync.Mutex

	mutex   sync.Mutex
	running bool
	stop    chan struct{}
	wg      sync.WaitGroup
}

func NewDiscovery(lister SVMLister, registry *SVMRegistry, interval time.Duration, clk clock.Clock) *Discovery {
	return &Discovery{
		lister:   lister,
		registry: registry,
		interval: interval,
		clock:    clk,
	}
}

// Enabled reports whether periodic discovery is configured.
func (d *Discovery) Enabled() bool {
	return d.interval > 0
}

// Reconcile runs one discovery pass: SVMs that disappeared are removed, new ones are registered in
// parallel, and entries present on both sides are left alone. Registration failures are reported in
// the result but do not fail the pass; only a failure to list SVMs is returned as an error.
func (d *Discovery) Reconcile(ctx context.Context) (*ReconcileResult, error) {
	d.reconcileMutex.Lock()
	defer d.reconcileMutex.Unlock()

	backend := d.registry.backendName()
	prefix := d.registry.Prefix()

	svms, err := d.lister.SvmList(ctx, api.SvmFilter{
		NamePattern: prefix + "*",
		State:       api.SvmStateRunning,
		NVMeEnabled: convert.ToPtr(true),
	})
	if err != nil {
		discoveryTicksCounter.WithLabelValues(backend, resultFailure).Inc()
		Logc(ctx).WithError(err).Error("Could not list SVMs.")
		return nil, err
	}

	current := make(map[string]struct{}, len(svms))
	for _, svm := range svms {
		if strings.HasPrefix(svm.Name, prefix) && len(svm.Name) > len(prefix) {
			current[svm.Name] = struct{}{}
		}
	}
	known := make(map[string]struct{})
	for _, name := range d.registry.Names() {
		known[name] = struct{}{}
	}

	result := &ReconcileResult{}
	for name := range known {
		if _, ok := current[name]; !ok {
			result.Removed = append(result.Removed, name)
		}
	}
	for name := range current {
		if _, ok := known[name]; !ok {
			result.Added = append(result.Added, name)
		}
	}
	sort.Strings(result.Removed)
	sort.Strings(result.Added)

	for _, name := range result.Removed {
		d.registry.Remove(ctx, name)
	}

	var (
		failedMutex sync.Mutex
		failed      = make(map[string]struct{})
		errs        error
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(discoveryUpsertConcurrency)
	for _, name := range result.Added {
		group.Go(func() error {
			if err := d.registry.Upsert(groupCtx, name); err != nil {
				failedMutex.Lock()
				failed[name] = struct{}{}
				errs = multierr.Append(errs, err)
				failedMutex.Unlock()
			}
			// Failures are retried on the next pass and must not cancel the other registrations.
			return nil
		})
	}
	_ = group.Wait()

	added := make([]string, 0, len(result.Added))
	for _, name := range result.Added {
		if _, ok := failed[name]; ok {
			result.Failed = append(result.Failed, name)
			continue
		}
		added = append(added, name)
	}
	result.Added = added
	result.Err = errs

	discoveryTicksCounter.WithLabelValues(backend, resultSuccess).Inc()
	Logc(ctx).WithFields(LogFields{
		"added":   result.Added,
		"removed": result.Removed,
		"failed":  result.Failed,
		"total":   d.registry.Len(),
	}).Debug("SVM discovery complete.")

	return result, nil
}

// Start schedules a discovery pass every interval, the first one a full interval from now. It does
// nothing when discovery is disabled or already running.
func (d *Discovery) Start(ctx context.Context) {
	if !d.Enabled() {
		Logc(ctx).Info("Periodic SVM discovery is disabled.")
		return
	}

	d.mutex.Lock()
	defer d.mutex.Unlock()
	if d.running {
		return
	}
	d.running = true
	d.stop = make(chan struct{})

	timer := d.clock.NewTimer(d.interval)
	stop := d.stop

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer timer.Stop()
		for {
			select {
			case <-stop:
				return
			case <-timer.C():
				tickCtx := GenerateRequestContext(context.Background(), "", discoveryRequestSource)
				result, err := d.Reconcile(tickCtx)
				if err == nil && result.Err != nil {
					Logc(tickCtx).WithError(result.Err).Warning("Some SVMs could not be registered.")
				}
				timer.Reset(d.interval)
			}
		}
	}()

	Logc(ctx).WithField("interval", d.interval).Info("Started periodic SVM discovery.")
}

// Stop cancels the next scheduled pass and waits for any pass in progress to finish.
func (d *Discovery) Stop() {
	d.mutex.Lock()
	if !d.running {
		d.mutex.Unlock()
		return
	}
	d.running = false
	close(d.stop)
	d.mutex.Unlock()

	d.wg.Wait()
}

// Running reports whether periodic discovery is scheduled.
func (d *Discovery) Running() bool {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.running
}
