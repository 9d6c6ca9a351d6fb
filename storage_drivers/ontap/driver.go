// Copyright 2025 NetApp, Inc. All Rights Reserved.

package ontap

import (
	"context"

	"code.cloudfoundry.org/clock"

	multisvmconfig "github.com/netapp/multisvm/config"
	. "github.com/netapp/multisvm/logging"
	drivers "github.com/netapp/multisvm/storage_drivers"
	"github.com/netapp/multisvm/storage_drivers/ontap/api"
)

// DynamicSVMDriver serves one parent backend group across every managed SVM on the cluster. SVMs are
// found by name prefix, each gets its own client, and volume operations are routed to the SVM that
// owns the volume's pool.
type DynamicSVMDriver struct {
	Config *drivers.DriverConfig

	cluster    SVMLister
	factory    SVMClientFactory
	clock      clock.Clock
	namespace  *drivers.ConfigNamespace
	registry   *SVMRegistry
	discovery  *Discovery
	router     *Router
	aggregator *PoolAggregator
}

type DriverOption func(*DynamicSVMDriver)

// WithClusterClient sets the client used to list SVMs.
func WithClusterClient(cluster SVMLister) DriverOption {
	return func(d *DynamicSVMDriver) {
		d.cluster = cluster
	}
}

// WithSVMClientFactory sets the constructor of per-SVM clients.
func WithSVMClientFactory(factory SVMClientFactory) DriverOption {
	return func(d *DynamicSVMDriver) {
		d.factory = factory
	}
}

// WithClock sets the clock that schedules discovery.
func WithClock(clk clock.Clock) DriverOption {
	return func(d *DynamicSVMDriver) {
		d.clock = clk
	}
}

// NewDynamicSVMDriver builds a driver for the parent group.
func NewDynamicSVMDriver(
	ctx context.Context, parent *drivers.BackendGroup, options ...DriverOption,
) (*DynamicSVMDriver, error) {
	config, err := drivers.NewDriverConfig(ctx, parent)
	if err != nil {
		return nil, err
	}

	d := &DynamicSVMDriver{Config: config}
	for _, option := range options {
		option(d)
	}

	if d.cluster == nil {
		restClient, err := api.NewRestClientFromDriverConfig(ctx, config)
		if err != nil {
			return nil, err
		}
		d.cluster = restClient
	}
	if d.factory == nil {
		d.factory = NewNVMeSVMClient
	}
	if d.clock == nil {
		d.clock = clock.NewClock()
	}

	d.namespace = drivers.NewConfigNamespace(parent)
	d.registry = NewSVMRegistry(config.SVMPrefix, d.namespace, d.factory)
	d.discovery = NewDiscovery(d.cluster, d.registry, config.DiscoveryInterval, d.clock)
	d.router = NewRouter(d.registry)
	d.aggregator = NewPoolAggregator(d.registry, config.BackendName, config.FilterFunction,
		config.GoodnessFunction, config.StatsWorkers)

	return d, nil
}

// Name is for returning the name of this driver
func (d *DynamicSVMDriver) Name() string {
	return multisvmconfig.DriverName
}

// BackendName returns the name of the parent backend group.
func (d *DynamicSVMDriver) BackendName() string {
	return d.Config.BackendName
}

// Registry returns the driver's SVM registry.
func (d *DynamicSVMDriver) Registry() *SVMRegistry {
	return d.registry
}

// Setup registers every managed SVM currently on the cluster.
func (d *DynamicSVMDriver) Setup(ctx context.Context) error {
	fields := LogFields{"Method": "Setup", "Type": "DynamicSVMDriver"}
	Logd(ctx, d.Name(), d.Config.TraceMethod).WithFields(fields).Trace(">>>> Setup")
	defer Logd(ctx, d.Name(), d.Config.TraceMethod).WithFields(fields).Trace("<<<< Setup")

	result, err := d.discovery.Reconcile(ctx)
	if err != nil {
		return err
	}
	if result.Err != nil {
		Logc(ctx).WithError(result.Err).Warning("Some SVMs could not be registered; they will be retried.")
	}

	Logc(ctx).WithFields(LogFields{
		"backend": d.BackendName(),
		"svms":    d.registry.Names(),
	}).Info("Dynamic SVM driver set up.")
	return nil
}

// CheckForSetupError starts periodic discovery when it is enabled.
func (d *DynamicSVMDriver) CheckForSetupError(ctx context.Context) error {
	d.discovery.Start(ctx)
	return nil
}

// Teardown stops discovery and releases every SVM client.
func (d *DynamicSVMDriver) Teardown(ctx context.Context) {
	fields := LogFields{"Method": "Teardown", "Type": "DynamicSVMDriver"}
	Logd(ctx, d.Name(), d.Config.TraceMethod).WithFields(fields).Trace(">>>> Teardown")
	defer Logd(ctx, d.Name(), d.Config.TraceMethod).WithFields(fields).Trace("<<<< Teardown")

	d.discovery.Stop()
	d.registry.Clear(ctx)
}

func (d *DynamicSVMDriver) CreateVolume(ctx context.Context, volume *Volume) error {
	return d.router.CreateVolume(ctx, volume)
}

func (d *DynamicSVMDriver) DeleteVolume(ctx context.Context, volume *Volume) error {
	return d.router.DeleteVolume(ctx, volume)
}

func (d *DynamicSVMDriver) ExtendVolume(ctx context.Context, volume *Volume, newSize int) error {
	return d.router.ExtendVolume(ctx, volume, newSize)
}

func (d *DynamicSVMDriver) CreateSnapshot(ctx context.Context, snapshot *Snapshot) error {
	return d.router.CreateSnapshot(ctx, snapshot)
}

func (d *DynamicSVMDriver) DeleteSnapshot(ctx context.Context, snapshot *Snapshot) error {
	return d.router.DeleteSnapshot(ctx, snapshot)
}

func (d *DynamicSVMDriver) CreateVolumeFromSnapshot(ctx context.Context, volume *Volume, snapshot *Snapshot) error {
	return d.router.CreateVolumeFromSnapshot(ctx, volume, snapshot)
}

func (d *DynamicSVMDriver) CreateClonedVolume(ctx context.Context, volume, source *Volume) error {
	return d.router.CreateClonedVolume(ctx, volume, source)
}

func (d *DynamicSVMDriver) InitializeConnection(
	ctx context.Context, volume *Volume, connector Connector,
) (*ConnectionInfo, error) {
	return d.router.InitializeConnection(ctx, volume, connector)
}

func (d *DynamicSVMDriver) TerminateConnection(ctx context.Context, volume *Volume, connector Connector) error {
	return d.router.TerminateConnection(ctx, volume, connector)
}

func (d *DynamicSVMDriver) CreateExport(ctx context.Context, volume *Volume, connector Connector) error {
	return d.router.CreateExport(ctx, volume, connector)
}

func (d *DynamicSVMDriver) EnsureExport(ctx context.Context, volume *Volume) error {
	return d.router.EnsureExport(ctx, volume)
}

func (d *DynamicSVMDriver) RemoveExport(ctx context.Context, volume *Volume) error {
	return d.router.RemoveExport(ctx, volume)
}

// GetVolumeStats returns the pools of every registered SVM.
func (d *DynamicSVMDriver) GetVolumeStats(ctx context.Context, refresh bool) (*VolumeStats, error) {
	return d.aggregator.GetStats(ctx, refresh)
}

func (d *DynamicSVMDriver) GetFilterFunction() string {
	return d.aggregator.FilterFunction()
}

func (d *DynamicSVMDriver) GetGoodnessFunction() string {
	return d.aggregator.GoodnessFunction()
}
