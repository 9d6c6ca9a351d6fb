// Copyright 2023 NetApp, Inc. All Rights Reserved.

package ontap

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"code.cloudfoundry.org/clock"
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/google/uuid"

	multisvmconfig "github.com/netapp/multisvm/config"
	. "github.com/netapp/multisvm/logging"
	"github.com/netapp/multisvm/pkg/capacity"
	"github.com/netapp/multisvm/pkg/convert"
	drivers "github.com/netapp/multisvm/storage_drivers"
	"github.com/netapp/multisvm/storage_drivers/ontap/api"
	"github.com/netapp/multisvm/utils/errors"
)

const (
	nvmeDriverVolumeType = "nvmeof"
	nvmeTransportTCP     = "tcp"
	nvmeTCPPort          = 4420

	// maximumSubsystemNameLength represent the max length of subsystem name
	maximumSubsystemNameLength = 96

	// namespaceSizeTolerance absorbs the rounding of namespace sizes to the block size.
	namespaceSizeTolerance = 4096

	nsMaxCommentLength = 254
	nsAttribute        = "nsAttribute"
)

// Features tracked in the capability cache
const (
	FeatureNVMe uint32 = iota
	FeatureNVMeTCP
	FeatureNamespaceClone
	FeatureNamespaceResize
	FeatureVolumeMetrics
)

type clusterVersion struct {
	generation, major, minor int
}

// featureMinimumVersions maps each feature to the first cluster release supporting it over REST.
var featureMinimumVersions = map[uint32]clusterVersion{
	FeatureNVMe:            {9, 8, 0},
	FeatureNVMeTCP:         {9, 10, 1},
	FeatureNamespaceClone:  {9, 10, 1},
	FeatureNamespaceResize: {9, 8, 0},
	FeatureVolumeMetrics:   {9, 7, 0},
}

func (v clusterVersion) atLeast(other clusterVersion) bool {
	if v.generation != other.generation {
		return v.generation > other.generation
	}
	if v.major != other.major {
		return v.major > other.major
	}
	return v.minor >= other.minor
}

var subsystemNameInvalidChars = regexp.MustCompile(`[^a-zA-Z0-9_.\-]`)

// capabilities is the cached feature snapshot of one SVM.
type capabilities struct {
	svm      *api.Svm
	version  *api.ClusterVersion
	features *roaring.Bitmap
}

// NVMeSVMClient serves block volumes as NVMe namespaces on one SVM.
type NVMeSVMClient struct {
	initialized atomic.Bool
	Config      *drivers.DriverConfig
	API         api.RestClientInterface
	clock       clock.Clock

	capMutex     sync.RWMutex
	capabilities *capabilities

	ipsMutex sync.RWMutex
	ips      []string

	perfMutex sync.RWMutex
	perf      map[string]perfSample

	samplerMutex sync.Mutex
	sampler      *perfSampler

	statsMutex sync.Mutex
	stats      *VolumeStats
}

// NewNVMeSVMClient builds a client from a derived backend configuration. It never consults the parent
// group; the configuration must name its SVM.
func NewNVMeSVMClient(ctx context.Context, config *drivers.DriverConfig) (SVMClient, error) {
	if config == nil || config.SVM == "" {
		return nil, errors.ConfigError("SVM client requires a configuration with %s", drivers.OptionVServer)
	}
	restClient, err := api.NewRestClientFromDriverConfig(ctx, config)
	if err != nil {
		return nil, errors.WrapWithConfigError(err, "could not create REST client for SVM %s", config.SVM)
	}
	return NewNVMeSVMClientWithAPI(config, restClient, clock.NewClock()), nil
}

// NewNVMeSVMClientWithAPI builds a client around an existing REST client.
func NewNVMeSVMClientWithAPI(
	config *drivers.DriverConfig, restClient api.RestClientInterface, clk clock.Clock,
) *NVMeSVMClient {
	return &NVMeSVMClient{
		Config: config,
		API:    restClient,
		clock:  clk,
		perf:   make(map[string]perfSample),
	}
}

// VServer returns the SVM this client is pinned to.
func (c *NVMeSVMClient) VServer() string {
	return c.Config.SVM
}

// Setup loads the capability cache and the data LIFs, and starts the performance sampler.
func (c *NVMeSVMClient) Setup(ctx context.Context) error {
	ctx = WithSVM(ctx, c.VServer())
	fields := LogFields{"method": "Setup", "type": "NVMeSVMClient"}
	Logd(ctx, multisvmconfig.DriverName, c.Config.TraceMethod).WithFields(fields).Trace(">>>> Setup")
	defer Logd(ctx, multisvmconfig.DriverName, c.Config.TraceMethod).WithFields(fields).Trace("<<<< Setup")

	if err := c.InvalidateCapabilities(ctx); err != nil {
		return err
	}
	if _, err := c.dataLIFs(ctx, true); err != nil {
		return err
	}

	c.samplerMutex.Lock()
	if c.Config.PerfSampleInterval > 0 && c.sampler == nil {
		c.sampler = newPerfSampler(c, c.clock, c.Config.PerfSampleInterval)
		c.sampler.Start(ctx)
	}
	c.samplerMutex.Unlock()

	c.initialized.Store(true)
	return nil
}

// CheckForSetupError verifies that the SVM can serve NVMe/TCP.
func (c *NVMeSVMClient) CheckForSetupError(ctx context.Context) error {
	if !c.initialized.Load() {
		return errors.DriverNotInitializedError("client for SVM %s is not set up", c.VServer())
	}

	c.capMutex.RLock()
	caps := c.capabilities
	c.capMutex.RUnlock()

	if caps == nil || !caps.svm.NVMeEnabled() {
		return errors.ConfigError("SVM %s does not have NVMe enabled", c.VServer())
	}
	if !c.Supports(FeatureNVMeTCP) {
		return errors.ConfigError("cluster version does not support NVMe/TCP")
	}

	c.ipsMutex.RLock()
	defer c.ipsMutex.RUnlock()
	if len(c.ips) == 0 {
		return errors.ConfigError("no data LIFs with TCP protocol found on SVM %s", c.VServer())
	}
	return nil
}

// Terminate stops the client's background work. It is safe to call more than once.
func (c *NVMeSVMClient) Terminate(ctx context.Context) {
	fields := LogFields{"method": "Terminate", "type": "NVMeSVMClient", "svm": c.VServer()}
	Logd(ctx, multisvmconfig.DriverName, c.Config.TraceMethod).WithFields(fields).Trace(">>>> Terminate")
	defer Logd(ctx, multisvmconfig.DriverName, c.Config.TraceMethod).WithFields(fields).Trace("<<<< Terminate")

	c.samplerMutex.Lock()
	if c.sampler != nil {
		c.sampler.Stop()
		c.sampler = nil
	}
	c.samplerMutex.Unlock()
	c.initialized.Store(false)
}

// InvalidateCapabilities reloads the SVM protocol state and the cluster feature set.
func (c *NVMeSVMClient) InvalidateCapabilities(ctx context.Context) error {
	svm, err := c.API.SvmCapabilities(ctx)
	if err != nil {
		return err
	}
	cluster, err := c.API.ClusterInfo(ctx)
	if err != nil {
		return err
	}

	features := roaring.New()
	if cluster.Version != nil {
		current := clusterVersion{cluster.Version.Generation, cluster.Version.Major, cluster.Version.Minor}
		for feature, minimum := range featureMinimumVersions {
			if current.atLeast(minimum) {
				features.Add(feature)
			}
		}
	}
	if !svm.NVMeEnabled() {
		features.Remove(FeatureNVMe)
		features.Remove(FeatureNVMeTCP)
	}

	c.capMutex.Lock()
	c.capabilities = &capabilities{svm: svm, version: cluster.Version, features: features}
	c.capMutex.Unlock()

	Logc(ctx).WithFields(LogFields{
		"svm":      c.VServer(),
		"features": features.ToArray(),
	}).Debug("Refreshed SVM capabilities.")

	return nil
}

// Supports reports whether the cached capabilities include feature.
func (c *NVMeSVMClient) Supports(feature uint32) bool {
	c.capMutex.RLock()
	defer c.capMutex.RUnlock()
	return c.capabilities != nil && c.capabilities.features.Contains(feature)
}

func (c *NVMeSVMClient) dataLIFs(ctx context.Context, refresh bool) ([]string, error) {
	if !refresh {
		c.ipsMutex.RLock()
		ips := c.ips
		c.ipsMutex.RUnlock()
		if len(ips) > 0 {
			return ips, nil
		}
	}

	ips, err := c.API.NVMeDataLIFs(ctx)
	if err != nil {
		return nil, err
	}
	c.ipsMutex.Lock()
	c.ips = ips
	c.ipsMutex.Unlock()

	Logc(ctx).WithField("dataLIFs", ips).Debug("Found LIFs.")
	return ips, nil
}

// poolName returns the FlexVol named by a host string, without any SVM qualification.
func (c *NVMeSVMClient) poolName(host string) (string, error) {
	idx := strings.LastIndex(host, multisvmconfig.HostPoolSeparator)
	if idx < 0 {
		return "", errors.InvalidInputError("host %q has no pool", host)
	}
	pool := strings.TrimPrefix(host[idx+1:], c.VServer()+multisvmconfig.PoolSeparator)
	if pool == "" {
		return "", errors.InvalidInputError("host %q has no pool", host)
	}
	return pool, nil
}

func (c *NVMeSVMClient) volumePath(volume *Volume) (string, string, error) {
	if volume == nil {
		return "", "", errors.InvalidInputError("missing volume")
	}
	if volume.Name == "" {
		return "", "", errors.InvalidInputError("volume %s has no name", volume.ID)
	}
	pool, err := c.poolName(volume.Host)
	if err != nil {
		return "", "", err
	}
	return pool, createNamespacePath(pool, volume.Name), nil
}

func (c *NVMeSVMClient) snapshotPath(snapshot *Snapshot) (string, string, error) {
	if snapshot == nil || snapshot.Volume == nil {
		return "", "", errors.InvalidInputError("snapshot has no volume")
	}
	if snapshot.Name == "" {
		return "", "", errors.InvalidInputError("snapshot %s has no name", snapshot.ID)
	}
	pool, err := c.poolName(snapshot.Volume.Host)
	if err != nil {
		return "", "", err
	}
	return pool, createNamespacePath(pool, snapshot.Name), nil
}

// CreateVolume creates the namespace backing volume.
func (c *NVMeSVMClient) CreateVolume(ctx context.Context, volume *Volume) error {
	_, nsPath, err := c.volumePath(volume)
	if err != nil {
		return err
	}

	fields := LogFields{"method": "CreateVolume", "type": "NVMeSVMClient", "namespace": nsPath}
	Logd(ctx, multisvmconfig.DriverName, c.Config.TraceMethod).WithFields(fields).Trace(">>>> CreateVolume")
	defer Logd(ctx, multisvmconfig.DriverName, c.Config.TraceMethod).WithFields(fields).Trace("<<<< CreateVolume")

	existing, err := c.API.NVMeNamespaceGetByName(ctx, nsPath)
	if err != nil {
		return err
	}
	if existing != nil {
		Logc(ctx).WithField("namespace", nsPath).Warning("Namespace already exists.")
		return nil
	}

	comment, err := createNamespaceCommentString(map[string]string{
		"volumeID":  volume.ID,
		"projectID": volume.ProjectID,
	})
	if err != nil {
		return err
	}

	_, err = c.API.NVMeNamespaceCreate(ctx, api.NVMeNamespaceSpec{
		Path:    nsPath,
		OsType:  c.Config.NamespaceOSType,
		Size:    capacity.GiBToBytes(volume.Size),
		Comment: comment,
	})
	return err
}

// DeleteVolume deletes the namespace backing volume. A missing namespace is not an error.
func (c *NVMeSVMClient) DeleteVolume(ctx context.Context, volume *Volume) error {
	_, nsPath, err := c.volumePath(volume)
	if err != nil {
		return err
	}

	fields := LogFields{"method": "DeleteVolume", "type": "NVMeSVMClient", "namespace": nsPath}
	Logd(ctx, multisvmconfig.DriverName, c.Config.TraceMethod).WithFields(fields).Trace(">>>> DeleteVolume")
	defer Logd(ctx, multisvmconfig.DriverName, c.Config.TraceMethod).WithFields(fields).Trace("<<<< DeleteVolume")

	deleted, err := c.API.NVMeNamespaceDelete(ctx, nsPath)
	if err != nil {
		return err
	}
	if !deleted {
		Logc(ctx).WithField("namespace", nsPath).Debug("Namespace already deleted.")
	}
	return nil
}

// ExtendVolume grows the namespace backing volume to newSize GiB.
func (c *NVMeSVMClient) ExtendVolume(ctx context.Context, volume *Volume, newSize int) error {
	_, nsPath, err := c.volumePath(volume)
	if err != nil {
		return err
	}

	fields := LogFields{"method": "ExtendVolume", "type": "NVMeSVMClient", "namespace": nsPath, "size": newSize}
	Logd(ctx, multisvmconfig.DriverName, c.Config.TraceMethod).WithFields(fields).Trace(">>>> ExtendVolume")
	defer Logd(ctx, multisvmconfig.DriverName, c.Config.TraceMethod).WithFields(fields).Trace("<<<< ExtendVolume")

	return c.resizeNamespace(ctx, nsPath, capacity.GiBToBytes(newSize))
}

func (c *NVMeSVMClient) resizeNamespace(ctx context.Context, nsPath string, requestedBytes uint64) error {
	ns, err := c.API.NVMeNamespaceGetByName(ctx, nsPath)
	if err != nil {
		return err
	}
	if ns == nil {
		return errors.NotFoundError("namespace %s not found", nsPath)
	}

	var currentBytes int64
	if ns.Space != nil {
		currentBytes = ns.Space.Size
	}
	if capacity.VolumeSizeWithinTolerance(int64(requestedBytes), currentBytes, namespaceSizeTolerance) {
		Logc(ctx).WithField("namespace", nsPath).Debug("Requested size is the current size.")
		return nil
	}
	if int64(requestedBytes) < currentBytes {
		return errors.InvalidInputError("requested size %d is less than current size %d of namespace %s",
			requestedBytes, currentBytes, nsPath)
	}
	if !c.Supports(FeatureNamespaceResize) {
		return errors.ConfigError("cluster version does not support namespace resize")
	}
	return c.API.NVMeNamespaceResize(ctx, nsPath, requestedBytes)
}

// CreateSnapshot clones the volume's namespace into a namespace named after the snapshot.
func (c *NVMeSVMClient) CreateSnapshot(ctx context.Context, snapshot *Snapshot) error {
	_, sourcePath, err := c.volumePath(snapshotVolume(snapshot))
	if err != nil {
		return err
	}
	_, snapPath, err := c.snapshotPath(snapshot)
	if err != nil {
		return err
	}

	fields := LogFields{"method": "CreateSnapshot", "type": "NVMeSVMClient", "source": sourcePath, "snapshot": snapPath}
	Logd(ctx, multisvmconfig.DriverName, c.Config.TraceMethod).WithFields(fields).Trace(">>>> CreateSnapshot")
	defer Logd(ctx, multisvmconfig.DriverName, c.Config.TraceMethod).WithFields(fields).Trace("<<<< CreateSnapshot")

	return c.cloneNamespace(ctx, sourcePath, snapPath)
}

// DeleteSnapshot deletes the snapshot's namespace. A missing namespace is not an error.
func (c *NVMeSVMClient) DeleteSnapshot(ctx context.Context, snapshot *Snapshot) error {
	_, snapPath, err := c.snapshotPath(snapshot)
	if err != nil {
		return err
	}

	fields := LogFields{"method": "DeleteSnapshot", "type": "NVMeSVMClient", "snapshot": snapPath}
	Logd(ctx, multisvmconfig.DriverName, c.Config.TraceMethod).WithFields(fields).Trace(">>>> DeleteSnapshot")
	defer Logd(ctx, multisvmconfig.DriverName, c.Config.TraceMethod).WithFields(fields).Trace("<<<< DeleteSnapshot")

	_, err = c.API.NVMeNamespaceDelete(ctx, snapPath)
	return err
}

// CreateVolumeFromSnapshot creates volume as a clone of the snapshot's namespace, grown to the volume's
// size when larger.
func (c *NVMeSVMClient) CreateVolumeFromSnapshot(ctx context.Context, volume *Volume, snapshot *Snapshot) error {
	pool, nsPath, err := c.volumePath(volume)
	if err != nil {
		return err
	}
	snapPool, snapPath, err := c.snapshotPath(snapshot)
	if err != nil {
		return err
	}
	if pool != snapPool {
		return errors.InvalidInputError("snapshot %s is in pool %s, not %s", snapshot.Name, snapPool, pool)
	}

	fields := LogFields{"method": "CreateVolumeFromSnapshot", "type": "NVMeSVMClient", "namespace": nsPath}
	Logd(ctx, multisvmconfig.DriverName, c.Config.TraceMethod).WithFields(fields).Trace(">>>> CreateVolumeFromSnapshot")
	defer Logd(ctx, multisvmconfig.DriverName, c.Config.TraceMethod).WithFields(fields).Trace("<<<< CreateVolumeFromSnapshot")

	if err = c.cloneNamespace(ctx, snapPath, nsPath); err != nil {
		return err
	}
	if volume.Size > snapshot.VolumeSize {
		return c.resizeNamespace(ctx, nsPath, capacity.GiBToBytes(volume.Size))
	}
	return nil
}

// CreateClonedVolume creates volume as a clone of source, grown to the volume's size when larger.
func (c *NVMeSVMClient) CreateClonedVolume(ctx context.Context, volume, source *Volume) error {
	pool, nsPath, err := c.volumePath(volume)
	if err != nil {
		return err
	}
	sourcePool, sourcePath, err := c.volumePath(source)
	if err != nil {
		return err
	}
	if pool != sourcePool {
		return errors.InvalidInputError("source volume %s is in pool %s, not %s", source.Name, sourcePool, pool)
	}

	fields := LogFields{"method": "CreateClonedVolume", "type": "NVMeSVMClient", "namespace": nsPath}
	Logd(ctx, multisvmconfig.DriverName, c.Config.TraceMethod).WithFields(fields).Trace(">>>> CreateClonedVolume")
	defer Logd(ctx, multisvmconfig.DriverName, c.Config.TraceMethod).WithFields(fields).Trace("<<<< CreateClonedVolume")

	if err = c.cloneNamespace(ctx, sourcePath, nsPath); err != nil {
		return err
	}
	if volume.Size > source.Size {
		return c.resizeNamespace(ctx, nsPath, capacity.GiBToBytes(volume.Size))
	}
	return nil
}

func (c *NVMeSVMClient) cloneNamespace(ctx context.Context, sourcePath, clonePath string) error {
	if !c.Supports(FeatureNamespaceClone) {
		return errors.ConfigError("cluster version does not support namespace clones")
	}

	existing, err := c.API.NVMeNamespaceGetByName(ctx, clonePath)
	if err != nil {
		return err
	}
	if existing != nil {
		Logc(ctx).WithField("namespace", clonePath).Warning("Clone already exists.")
		return nil
	}

	source, err := c.API.NVMeNamespaceGetByName(ctx, sourcePath)
	if err != nil {
		return err
	}
	if source == nil {
		return errors.NotFoundError("namespace %s not found", sourcePath)
	}

	_, err = c.API.NVMeNamespaceClone(ctx, sourcePath, clonePath)
	return err
}

// InitializeConnection grants the connector's host access to the volume and returns the NVMe/TCP
// target details.
func (c *NVMeSVMClient) InitializeConnection(
	ctx context.Context, volume *Volume, connector Connector,
) (*ConnectionInfo, error) {
	_, nsPath, err := c.volumePath(volume)
	if err != nil {
		return nil, err
	}
	hostNQN := connector.Get(ConnectorNQN)

	fields := LogFields{
		"method":    "InitializeConnection",
		"type":      "NVMeSVMClient",
		"namespace": nsPath,
		"hostNQN":   hostNQN,
	}
	Logd(ctx, multisvmconfig.DriverName, c.Config.TraceMethod).WithFields(fields).Trace(">>>> InitializeConnection")
	defer Logd(ctx, multisvmconfig.DriverName, c.Config.TraceMethod).WithFields(fields).Trace("<<<< InitializeConnection")

	if hostNQN == "" {
		return nil, errors.InvalidInputError("connector has no %s", ConnectorNQN)
	}

	ns, err := c.API.NVMeNamespaceGetByName(ctx, nsPath)
	if err != nil {
		return nil, err
	}
	if ns == nil {
		return nil, errors.NotFoundError("namespace %s not found", nsPath)
	}

	subsystem, err := c.API.NVMeSubsystemGetOrCreate(ctx, c.subsystemName(connector), c.Config.HostType)
	if err != nil {
		Logc(ctx).WithError(err).Error("Subsystem create failed.")
		return nil, err
	}
	if err = c.API.NVMeAddHostToSubsystem(ctx, subsystem.UUID, hostNQN); err != nil {
		Logc(ctx).WithError(err).Error("Add host to subsystem failed.")
		return nil, err
	}
	if err = c.API.NVMeEnsureNamespaceMapped(ctx, subsystem.UUID, ns.UUID); err != nil {
		return nil, err
	}

	var nsID string
	maps, err := c.API.NVMeNamespaceMaps(ctx, ns.UUID)
	if err != nil {
		return nil, err
	}
	for _, m := range maps {
		if m.Subsystem != nil && m.Subsystem.UUID == subsystem.UUID {
			nsID = m.NSID
		}
	}

	ips, err := c.dataLIFs(ctx, false)
	if err != nil {
		return nil, err
	}
	if len(ips) == 0 {
		return nil, errors.ConfigError("no data LIFs with TCP protocol found on SVM %s", c.VServer())
	}

	portals := make([][]interface{}, 0, len(ips))
	targetPortals := make([]string, 0, len(ips))
	for _, ip := range ips {
		portals = append(portals, []interface{}{ip, nvmeTCPPort, nvmeTransportTCP})
		targetPortals = append(targetPortals, net.JoinHostPort(ip, strconv.Itoa(nvmeTCPPort)))
	}

	return &ConnectionInfo{
		DriverVolumeType: nvmeDriverVolumeType,
		Data: map[string]interface{}{
			"target_nqn":     subsystem.TargetNQN,
			"target_portal":  targetPortals[0],
			"target_portals": targetPortals,
			"nqn":            subsystem.TargetNQN,
			"host_nqn":       hostNQN,
			"vol_uuid":       ns.UUID,
			"ns_id":          nsID,
			"portals":        portals,
		},
	}, nil
}

// TerminateConnection revokes the connector's access to the volume. Without a host NQN the namespace
// is unmapped from every subsystem.
func (c *NVMeSVMClient) TerminateConnection(ctx context.Context, volume *Volume, connector Connector) error {
	_, nsPath, err := c.volumePath(volume)
	if err != nil {
		return err
	}
	hostNQN := connector.Get(ConnectorNQN)

	fields := LogFields{
		"method":    "TerminateConnection",
		"type":      "NVMeSVMClient",
		"namespace": nsPath,
		"hostNQN":   hostNQN,
	}
	Logd(ctx, multisvmconfig.DriverName, c.Config.TraceMethod).WithFields(fields).Trace(">>>> TerminateConnection")
	defer Logd(ctx, multisvmconfig.DriverName, c.Config.TraceMethod).WithFields(fields).Trace("<<<< TerminateConnection")

	ns, err := c.API.NVMeNamespaceGetByName(ctx, nsPath)
	if err != nil {
		return err
	}
	if ns == nil {
		Logc(ctx).WithField("namespace", nsPath).Debug("Namespace not found, nothing to unmap.")
		return nil
	}

	if hostNQN == "" {
		maps, err := c.API.NVMeNamespaceMaps(ctx, ns.UUID)
		if err != nil {
			return err
		}
		for _, m := range maps {
			if m.Subsystem == nil {
				continue
			}
			if err = c.API.NVMeEnsureNamespaceUnmapped(ctx, m.Subsystem.UUID, ns.UUID); err != nil {
				return err
			}
		}
		return nil
	}

	subsystem, err := c.API.NVMeSubsystemGetByName(ctx, c.subsystemName(connector))
	if err != nil {
		return err
	}
	if subsystem == nil {
		return nil
	}
	if err = c.API.NVMeEnsureNamespaceUnmapped(ctx, subsystem.UUID, ns.UUID); err != nil {
		return err
	}

	// The host's subsystem goes away with its last namespace.
	remaining, err := c.API.NVMeSubsystemMapCount(ctx, subsystem.UUID)
	if err != nil {
		return err
	}
	if remaining > 0 {
		return nil
	}
	if err = c.API.NVMeRemoveHostFromSubsystem(ctx, subsystem.UUID, hostNQN); err != nil {
		return err
	}
	return c.API.NVMeSubsystemDelete(ctx, subsystem.UUID)
}

// CreateExport is a no-op; NVMe access is granted in InitializeConnection.
func (c *NVMeSVMClient) CreateExport(ctx context.Context, volume *Volume, _ Connector) error {
	Logc(ctx).WithField("volume", volume.Name).Trace("CreateExport is a no-op for NVMe.")
	return nil
}

// EnsureExport is a no-op.
func (c *NVMeSVMClient) EnsureExport(ctx context.Context, volume *Volume) error {
	Logc(ctx).WithField("volume", volume.Name).Trace("EnsureExport is a no-op for NVMe.")
	return nil
}

// RemoveExport is a no-op.
func (c *NVMeSVMClient) RemoveExport(ctx context.Context, volume *Volume) error {
	Logc(ctx).WithField("volume", volume.Name).Trace("RemoveExport is a no-op for NVMe.")
	return nil
}

// GetStats reports one pool per FlexVol of the SVM. The previous report is returned unless refresh
// is set.
func (c *NVMeSVMClient) GetStats(ctx context.Context, refresh bool) (*VolumeStats, error) {
	c.statsMutex.Lock()
	defer c.statsMutex.Unlock()

	if !refresh && c.stats != nil {
		return c.stats, nil
	}

	volumes, err := c.API.FlexvolList(ctx)
	if err != nil {
		return nil, err
	}

	var totalGB, freeGB float64
	pools := make([]Pool, 0, len(volumes))
	for _, volume := range volumes {
		pool := c.poolFromVolume(volume)
		totalGB += pool.TotalCapacityGB
		freeGB += pool.FreeCapacityGB
		pools = append(pools, pool)
	}

	c.stats = &VolumeStats{
		VolumeBackendName:  c.Config.BackendName,
		VendorName:         multisvmconfig.VendorName,
		DriverVersion:      multisvmconfig.OrchestratorVersion,
		StorageProtocol:    string(multisvmconfig.NVMe),
		TotalCapacityGB:    strconv.FormatFloat(totalGB, 'f', 2, 64),
		FreeCapacityGB:     strconv.FormatFloat(freeGB, 'f', 2, 64),
		SparseCopyVolume:   true,
		ReplicationEnabled: false,
		FilterFunction:     c.Config.FilterFunction,
		GoodnessFunction:   c.Config.GoodnessFunction,
		Pools:              pools,
	}
	return c.stats, nil
}

func (c *NVMeSVMClient) poolFromVolume(volume api.Volume) Pool {
	pool := Pool{
		PoolName:                 volume.Name,
		ReservedPercentage:       c.Config.ReservedPercentage,
		MaxOverSubscriptionRatio: c.Config.MaxOverSubscriptionRatio,
		ThinProvisioningSupport:  true,
		ThickProvisioningSupport: false,
		Multiattach:              true,
		QoSSupport:               false,
		CompressionSupport:       false,
		FilterFunction:           c.Config.FilterFunction,
		GoodnessFunction:         c.Config.GoodnessFunction,
	}
	if volume.Space != nil {
		pool.TotalCapacityGB = capacity.BytesToGiB(volume.Space.Size)
		pool.FreeCapacityGB = capacity.BytesToGiB(volume.Space.Available)
		pool.ProvisionedCapacityGB = capacity.BytesToGiB(volume.Space.Used)
	}

	sample, ok := c.perfSample(volume.Name)
	if !ok {
		sample = sampleFromVolume(volume)
	}
	pool.Utilization = sample.utilization
	pool.LatencyMicroseconds = sample.latency
	pool.IOPS = sample.iops
	return pool
}

func (c *NVMeSVMClient) perfSample(pool string) (perfSample, bool) {
	c.perfMutex.RLock()
	defer c.perfMutex.RUnlock()
	sample, ok := c.perf[pool]
	return sample, ok
}

// subsystemName returns the per-host subsystem name, <host_type>_<hostname>. A connector without a
// hostname is keyed by a hash of its NQN.
func (c *NVMeSVMClient) subsystemName(connector Connector) string {
	host := connector.Get(ConnectorHost)
	if host == "" {
		host = uuid.NewSHA1(uuid.NameSpaceOID, []byte(connector.Get(ConnectorNQN))).String()
	}
	name := fmt.Sprintf("%s_%s", c.Config.HostType, subsystemNameInvalidChars.ReplaceAllString(host, "_"))
	return convert.TruncateString(name, maximumSubsystemNameLength)
}

func snapshotVolume(snapshot *Snapshot) *Volume {
	if snapshot == nil {
		return nil
	}
	return snapshot.Volume
}

// createNamespacePath returns the namespace path in a FlexVol.
func createNamespacePath(flexvolName, namespaceName string) string {
	return "/vol/" + flexvolName + "/" + namespaceName
}

// createNamespaceCommentString stores attrs in the namespace comment field.
func createNamespaceCommentString(attrs map[string]string) (string, error) {
	nsComment := map[string]map[string]string{nsAttribute: attrs}
	commentBytes, err := json.Marshal(nsComment)
	if err != nil {
		return "", err
	}
	if len(commentBytes) > nsMaxCommentLength {
		return "", errors.InvalidInputError("namespace comment exceeds %d characters", nsMaxCommentLength)
	}
	return string(commentBytes), nil
}
