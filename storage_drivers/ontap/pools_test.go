// Copyright 2025 NetApp, Inc. All Rights Reserved.

package ontap

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netapp/multisvm/utils/errors"
)

const tenantFilter = "capabilities.tenant_id == volume.project_id"

func TestQualifyPool(t *testing.T) {
	pool := Pool{PoolName: "flex1", FreeCapacityGB: 10, Utilization: 12.5, Multiattach: true}

	qualified := QualifyPool(pool, "os-abc", "os-")

	expected := pool
	expected.PoolName = "os-abc+flex1"
	expected.TenantID = "abc"
	if diff := cmp.Diff(expected, qualified); diff != "" {
		t.Errorf("qualified pool mismatch (-want +got):\n%s", diff)
	}

	parts := strings.SplitN(qualified.PoolName, "+", 2)
	assert.Equal(t, []string{"os-abc", "flex1"}, parts)
	assert.Equal(t, "flex1", pool.PoolName, "input must not be modified")
}

func TestFilterFunction(t *testing.T) {
	assert.Equal(t, tenantFilter, FilterFunction(""))
	assert.Equal(t, tenantFilter, FilterFunction("  "))
	assert.Equal(t, "(capabilities.total_capacity_gb > 10) and ("+tenantFilter+")",
		FilterFunction("capabilities.total_capacity_gb > 10"))
}

func newTestAggregator(t *testing.T, prepare func(*fakeSVMClient), svms ...string) (*PoolAggregator, *fakeFactory) {
	registry, factory := newTestRegistry(prepare)
	for _, svm := range svms {
		require.NoError(t, registry.Upsert(context.Background(), svm))
	}
	return NewPoolAggregator(registry, "nvme", "", "100", 2), factory
}

func TestPoolAggregatorGetStats(t *testing.T) {
	aggregator, _ := newTestAggregator(t, func(c *fakeSVMClient) {
		c.pools = []Pool{{PoolName: "flex1", FreeCapacityGB: 10, TotalCapacityGB: 20}}
	}, "os-b", "os-a")

	stats, err := aggregator.GetStats(context.Background(), true)
	require.NoError(t, err)

	assert.Equal(t, "nvme", stats.VolumeBackendName)
	assert.Equal(t, "NVMe", stats.StorageProtocol)
	assert.Equal(t, "unknown", stats.TotalCapacityGB)
	assert.Equal(t, "unknown", stats.FreeCapacityGB)
	assert.True(t, stats.SparseCopyVolume)
	assert.False(t, stats.ReplicationEnabled)
	assert.Equal(t, tenantFilter, stats.FilterFunction)
	assert.Equal(t, "100", stats.GoodnessFunction)

	expected := []Pool{
		{
			PoolName: "os-a+flex1", TenantID: "a", FreeCapacityGB: 10, TotalCapacityGB: 20,
			FilterFunction: tenantFilter, GoodnessFunction: "100",
		},
		{
			PoolName: "os-b+flex1", TenantID: "b", FreeCapacityGB: 10, TotalCapacityGB: 20,
			FilterFunction: tenantFilter, GoodnessFunction: "100",
		},
	}
	if diff := cmp.Diff(expected, stats.Pools); diff != "" {
		t.Errorf("pools mismatch (-want +got):\n%s", diff)
	}

	for _, pool := range stats.Pools {
		assert.Equal(t, 1, strings.Count(pool.PoolName, "+"))
	}
}

func TestPoolAggregatorGetStats_Cached(t *testing.T) {
	aggregator, factory := newTestAggregator(t, func(c *fakeSVMClient) {
		c.pools = []Pool{{PoolName: "flex1"}}
	}, "os-a")
	ctx := context.Background()

	first, err := aggregator.GetStats(ctx, true)
	require.NoError(t, err)
	second, err := aggregator.GetStats(ctx, false)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, []string{"GetStats"}, factory.Client("os-a").Calls())

	_, err = aggregator.GetStats(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"GetStats", "GetStats"}, factory.Client("os-a").Calls())
}

func TestPoolAggregatorGetStats_FailingSVMSkipped(t *testing.T) {
	aggregator, _ := newTestAggregator(t, func(c *fakeSVMClient) {
		c.pools = []Pool{{PoolName: "flex1"}}
		if c.vserver == "os-bad" {
			c.statsErr = errors.ClusterUnavailableError("down")
		}
	}, "os-a", "os-bad")

	stats, err := aggregator.GetStats(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, stats.Pools, 1)
	assert.Equal(t, "os-a+flex1", stats.Pools[0].PoolName)
}

func TestPoolAggregatorGetStats_SkipsSeparatorInRawName(t *testing.T) {
	aggregator, _ := newTestAggregator(t, func(c *fakeSVMClient) {
		c.pools = []Pool{{PoolName: "flex+1"}, {PoolName: "flex2"}}
	}, "os-a")

	stats, err := aggregator.GetStats(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, stats.Pools, 1)
	assert.Equal(t, "os-a+flex2", stats.Pools[0].PoolName)
}

func TestPoolAggregatorGetStats_Empty(t *testing.T) {
	aggregator, _ := newTestAggregator(t, nil)

	stats, err := aggregator.GetStats(context.Background(), true)
	require.NoError(t, err)
	assert.NotNil(t, stats.Pools)
	assert.Empty(t, stats.Pools)
}
