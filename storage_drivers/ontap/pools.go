// Copyright 2025 NetApp, Inc. All Rights Reserved.

package ontap

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/multierr"

	multisvmconfig "github.com/netapp/multisvm/config"
	. "github.com/netapp/multisvm/logging"
	"github.com/netapp/multisvm/pkg/workerpool/ants"
)

// QualifyPool publishes pool under svm: the name becomes <svm>+<raw>, and the tenant is the SVM name
// without prefix. Every other attribute is kept.
func QualifyPool(pool Pool, svm, prefix string) Pool {
	pool.PoolName = svm + multisvmconfig.PoolSeparator + pool.PoolName
	pool.TenantID = strings.TrimPrefix(svm, prefix)
	return pool
}

// FilterFunction returns the scheduler filter that keeps a tenant on its own pools, ANDed with base
// when one is configured.
func FilterFunction(base string) string {
	base = strings.TrimSpace(base)
	if base == "" {
		return multisvmconfig.TenantFilterPredicate
	}
	return fmt.Sprintf("(%s) and (%s)", base, multisvmconfig.TenantFilterPredicate)
}

// PoolAggregator merges the pools reported by every registered SVM into one report.
type PoolAggregator struct {
	registry *SVMRegistry
	backend  string
	filter   string
	goodness string
	workers  int

	mutex  sync.Mutex
	cached *VolumeStats
}

func NewPoolAggregator(registry *SVMRegistry, backend, baseFilter, goodness string, workers int) *PoolAggregator {
	return &PoolAggregator{
		registry: registry,
		backend:  backend,
		filter:   FilterFunction(baseFilter),
		goodness: goodness,
		workers:  workers,
	}
}

func (a *PoolAggregator) FilterFunction() string {
	return a.filter
}

func (a *PoolAggregator) GoodnessFunction() string {
	return a.goodness
}

// GetStats returns the aggregate report. Without refresh the previous report is returned if there
// is one. An SVM whose stats cannot be read is left out of the report.
func (a *PoolAggregator) GetStats(ctx context.Context, refresh bool) (*VolumeStats, error) {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	if !refresh && a.cached != nil {
		return a.cached, nil
	}

	entries := a.registry.Entries()
	reports := make([]*VolumeStats, len(entries))
	errs := make([]error, len(entries))

	if len(entries) > 0 {
		pool, err := ants.NewPool(ants.NewConfig(ants.WithNumWorkers(a.workers)))
		if err != nil {
			return nil, err
		}
		for i, entry := range entries {
			submitErr := pool.Submit(func() {
				reports[i], errs[i] = entry.Client.GetStats(WithSVM(ctx, entry.SVMName), true)
			})
			if submitErr != nil {
				errs[i] = submitErr
			}
		}
		pool.Wait()
		pool.Release()
	}

	stats := &VolumeStats{
		VolumeBackendName:  a.backend,
		VendorName:         multisvmconfig.VendorName,
		DriverVersion:      multisvmconfig.OrchestratorVersion,
		StorageProtocol:    string(multisvmconfig.NVMe),
		TotalCapacityGB:    multisvmconfig.CapacityUnknown,
		FreeCapacityGB:     multisvmconfig.CapacityUnknown,
		SparseCopyVolume:   true,
		ReplicationEnabled: false,
		FilterFunction:     a.filter,
		GoodnessFunction:   a.goodness,
		Pools:              []Pool{},
	}

	var failures error
	prefix := a.registry.Prefix()
	for i, entry := range entries {
		if errs[i] != nil {
			failures = multierr.Append(failures, fmt.Errorf("SVM %s: %w", entry.SVMName, errs[i]))
			continue
		}
		if reports[i] == nil {
			continue
		}
		for _, pool := range reports[i].Pools {
			if strings.Contains(pool.PoolName, multisvmconfig.PoolSeparator) {
				Logc(ctx).WithFields(LogFields{
					"svm":  entry.SVMName,
					"pool": pool.PoolName,
				}).Warning("Skipping pool whose name contains the pool separator.")
				continue
			}
			qualified := QualifyPool(pool, entry.SVMName, prefix)
			qualified.FilterFunction = a.filter
			if qualified.GoodnessFunction == "" {
				qualified.GoodnessFunction = a.goodness
			}
			stats.Pools = append(stats.Pools, qualified)
		}
	}

	if failures != nil {
		Logc(ctx).WithError(failures).Warning("Could not read stats from some SVMs.")
	}

	Logc(ctx).WithFields(LogFields{
		"svms":  len(entries),
		"pools": len(stats.Pools),
	}).Debug("Aggregated pool stats.")

	a.cached = stats
	return stats, nil
}
