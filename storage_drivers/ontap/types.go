// Copyright 2021 NetApp, Inc. All Rights Reserved.

package ontap

import (
	"context"

	drivers "github.com/netapp/multisvm/storage_drivers"
)

// Volume is the caller's handle for a block volume. Host is the scheduler's routing string
// "<host>@<group>#<pool>"; every other field is forwarded untouched.
type Volume struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Host      string            `json:"host"`
	ProjectID string            `json:"project_id"`
	Size      int               `json:"size"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// Snapshot is a point-in-time copy of Volume.
type Snapshot struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	VolumeSize int     `json:"volume_size"`
	Volume     *Volume `json:"volume"`
}

// Connector describes the host a volume is attached to.
type Connector map[string]interface{}

// Connector keys
const (
	ConnectorNQN       = "nqn"
	ConnectorInitiator = "initiator"
	ConnectorHost      = "host"
	ConnectorUUID      = "uuid"
)

// Get returns the string value of key, or "".
func (c Connector) Get(key string) string {
	if c == nil {
		return ""
	}
	if value, ok := c[key].(string); ok {
		return value
	}
	return ""
}

// Copy returns a shallow copy of the connector.
func (c Connector) Copy() Connector {
	copied := make(Connector, len(c))
	for k, v := range c {
		copied[k] = v
	}
	return copied
}

// ConnectionInfo is returned by InitializeConnection.
type ConnectionInfo struct {
	DriverVolumeType string                 `json:"driver_volume_type"`
	Data             map[string]interface{} `json:"data"`
}

// Pool is one scheduler-visible pool, backed by a FlexVol.
type Pool struct {
	PoolName                 string  `json:"pool_name"`
	TenantID                 string  `json:"tenant_id,omitempty"`
	TotalCapacityGB          float64 `json:"total_capacity_gb"`
	FreeCapacityGB           float64 `json:"free_capacity_gb"`
	ProvisionedCapacityGB    float64 `json:"provisioned_capacity_gb"`
	AllocatedCapacityGB      float64 `json:"allocated_capacity_gb"`
	ReservedPercentage       int     `json:"reserved_percentage"`
	MaxOverSubscriptionRatio float64 `json:"max_over_subscription_ratio"`
	ThinProvisioningSupport  bool    `json:"thin_provisioning_support"`
	ThickProvisioningSupport bool    `json:"thick_provisioning_support"`
	Multiattach              bool    `json:"multiattach"`
	QoSSupport               bool    `json:"QoS_support"`
	CompressionSupport       bool    `json:"compression_support"`
	Utilization              float64 `json:"utilization"`
	LatencyMicroseconds      float64 `json:"netapp_latency_us,omitempty"`
	IOPS                     float64 `json:"netapp_iops,omitempty"`
	FilterFunction           string  `json:"filter_function,omitempty"`
	GoodnessFunction         string  `json:"goodness_function,omitempty"`
}

// VolumeStats is the capability report of a backend. Capacities are strings because the aggregate
// reports "unknown".
type VolumeStats struct {
	VolumeBackendName  string `json:"volume_backend_name"`
	VendorName         string `json:"vendor_name"`
	DriverVersion      string `json:"driver_version"`
	StorageProtocol    string `json:"storage_protocol"`
	TotalCapacityGB    string `json:"total_capacity_gb"`
	FreeCapacityGB     string `json:"free_capacity_gb"`
	SparseCopyVolume   bool   `json:"sparse_copy_volume"`
	ReplicationEnabled bool   `json:"replication_enabled"`
	FilterFunction     string `json:"filter_function,omitempty"`
	GoodnessFunction   string `json:"goodness_function,omitempty"`
	Pools              []Pool `json:"pools"`
}

// SVMClient is the fixed operation set of a client pinned to one SVM.
type SVMClient interface {
	VServer() string
	Setup(ctx context.Context) error
	CheckForSetupError(ctx context.Context) error
	Terminate(ctx context.Context)

	CreateVolume(ctx context.Context, volume *Volume) error
	DeleteVolume(ctx context.Context, volume *Volume) error
	ExtendVolume(ctx context.Context, volume *Volume, newSize int) error
	CreateSnapshot(ctx context.Context, snapshot *Snapshot) error
	DeleteSnapshot(ctx context.Context, snapshot *Snapshot) error
	CreateVolumeFromSnapshot(ctx context.Context, volume *Volume, snapshot *Snapshot) error
	CreateClonedVolume(ctx context.Context, volume, source *Volume) error

	InitializeConnection(ctx context.Context, volume *Volume, connector Connector) (*ConnectionInfo, error)
	TerminateConnection(ctx context.Context, volume *Volume, connector Connector) error

	CreateExport(ctx context.Context, volume *Volume, connector Connector) error
	EnsureExport(ctx context.Context, volume *Volume) error
	RemoveExport(ctx context.Context, volume *Volume) error

	GetStats(ctx context.Context, refresh bool) (*VolumeStats, error)
}

// SVMClientFactory builds the client for one derived backend configuration.
type SVMClientFactory func(ctx context.Context, config *drivers.DriverConfig) (SVMClient, error)

// SVMEntry is one managed SVM known to the registry.
type SVMEntry struct {
	SVMName string
	Client  SVMClient
	Group   *drivers.BackendGroup
}
