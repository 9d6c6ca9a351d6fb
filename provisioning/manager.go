// Copyright 2025 NetApp, Inc. All Rights Reserved.

package provisioning

import (
	"context"
	"strings"

	"go.uber.org/multierr"

	. "github.com/netapp/multisvm/logging"
	"github.com/netapp/multisvm/storage_drivers/ontap/api"
	"github.com/netapp/multisvm/utils/errors"
)

// ProvisionResult describes the storage of a provisioned tenant.
type ProvisionResult struct {
	SVMName       string `json:"svm_name" yaml:"svm_name"`
	SVMCreated    bool   `json:"svm_created" yaml:"svm_created"`
	VolumeName    string `json:"volume_name" yaml:"volume_name"`
	VolumeCreated bool   `json:"volume_created" yaml:"volume_created"`
}

// NetworkResult describes the network objects configured for a tenant.
type NetworkResult struct {
	SVMName string       `json:"svm_name" yaml:"svm_name"`
	LIFs    []string     `json:"lifs" yaml:"lifs"`
	Routes  []*RouteSpec `json:"-" yaml:"-"`
}

// Manager runs the tenant lifecycle against one cluster.
type Manager struct {
	SVMs    *SvmService
	Volumes *VolumeService
	LIFs    *LifService
	Routes  *RouteService

	config Config
}

func NewManager(client api.RestClientInterface, config Config) *Manager {
	svms := NewSvmService(client, config)
	return &Manager{
		SVMs:    svms,
		Volumes: NewVolumeService(client, svms, config),
		LIFs:    NewLifService(client, svms, config),
		Routes:  NewRouteService(client, svms),
		config:  config,
	}
}

func (m *Manager) Config() Config {
	return m.config
}

func validateTenantID(tenantID string) error {
	if strings.TrimSpace(tenantID) == "" {
		return errors.InvalidInputError("tenant ID is required")
	}
	return nil
}

// ProvisionTenant creates the tenant's SVM and then its data volume. Both steps are skipped for
// resources that already exist.
func (m *Manager) ProvisionTenant(ctx context.Context, tenantID string) (result *ProvisionResult, err error) {
	defer func() { recordOperation("provision", err) }()

	if err = validateTenantID(tenantID); err != nil {
		return nil, err
	}

	result = &ProvisionResult{
		SVMName:    m.SVMs.SVMName(tenantID),
		VolumeName: m.Volumes.VolumeName(tenantID),
	}
	ctx = WithSVM(ctx, result.SVMName)

	if _, result.SVMCreated, err = m.SVMs.Create(ctx, tenantID); err != nil {
		return nil, err
	}
	if result.VolumeCreated, err = m.Volumes.Create(ctx, tenantID); err != nil {
		return nil, err
	}

	Logc(ctx).WithFields(LogFields{
		"tenant":        tenantID,
		"svmCreated":    result.SVMCreated,
		"volumeCreated": result.VolumeCreated,
	}).Info("Tenant provisioned.")
	return result, nil
}

// ConfigureNetwork creates a LIF for each interface and then the routes through their next-hops.
// The routes are validated before any LIF is created.
func (m *Manager) ConfigureNetwork(
	ctx context.Context, tenantID string, ifaces []*NetworkInterfaceConfig,
) (result *NetworkResult, err error) {
	defer func() { recordOperation("configure_network", err) }()

	if err = validateTenantID(tenantID); err != nil {
		return nil, err
	}
	if len(ifaces) == 0 {
		return nil, errors.InvalidInputError("no network interfaces given for tenant %s", tenantID)
	}
	if _, err = m.Routes.Plan(tenantID, ifaces); err != nil {
		return nil, err
	}

	result = &NetworkResult{SVMName: m.SVMs.SVMName(tenantID)}
	ctx = WithSVM(ctx, result.SVMName)

	for _, iface := range ifaces {
		if _, err = m.LIFs.CreateLIF(ctx, tenantID, iface); err != nil {
			return nil, err
		}
		result.LIFs = append(result.LIFs, iface.Name)
	}

	if result.Routes, err = m.Routes.CreateRoutes(ctx, tenantID, ifaces); err != nil {
		return nil, err
	}
	return result, nil
}

// CleanupTenant removes the tenant's data volume and then its SVM. The SVM is kept when the volume
// could not be removed. A resource that does not exist counts as removed. A partial teardown is
// reported through the result; only invalid input returns an error.
func (m *Manager) CleanupTenant(ctx context.Context, tenantID string) (*TeardownResult, error) {
	if err := validateTenantID(tenantID); err != nil {
		recordOperation("cleanup", err)
		return &TeardownResult{}, err
	}
	ctx = WithSVM(ctx, m.SVMs.SVMName(tenantID))
	result := &TeardownResult{}
	var failures error

	volumeExists, checkErr := m.Volumes.Exists(ctx, tenantID)
	if checkErr != nil {
		Logc(ctx).WithError(checkErr).Warning("Could not check for the volume; assuming it exists.")
		volumeExists = true
	}
	if volumeExists {
		if mapped, listErr := m.Volumes.MappedNamespaces(ctx, tenantID); listErr == nil && len(mapped) > 0 {
			Logc(ctx).WithField("namespaces", len(mapped)).Warning("Deleting volume with mapped namespaces.")
		}
		if _, deleteErr := m.Volumes.Delete(ctx, tenantID, true); deleteErr != nil {
			Logc(ctx).WithError(deleteErr).Error("Could not delete volume; leaving SVM in place.")
			failures = multierr.Append(failures, deleteErr)
		} else {
			result.Volume = true
		}
	} else {
		result.Volume = true
	}

	if !result.Volume {
		m.finishCleanup(ctx, tenantID, result, failures)
		return result, nil
	}

	svmExists, checkErr := m.SVMs.Exists(ctx, tenantID)
	if checkErr != nil {
		Logc(ctx).WithError(checkErr).Warning("Could not check for the SVM; assuming it exists.")
		svmExists = true
	}
	if svmExists {
		if _, deleteErr := m.SVMs.Delete(ctx, tenantID); deleteErr != nil {
			Logc(ctx).WithError(deleteErr).Error("Could not delete SVM.")
			failures = multierr.Append(failures, deleteErr)
		} else {
			result.SVM = true
		}
	} else {
		result.SVM = true
	}

	m.finishCleanup(ctx, tenantID, result, failures)
	return result, nil
}

func (m *Manager) finishCleanup(ctx context.Context, tenantID string, result *TeardownResult, failures error) {
	recordOperation("cleanup", failures)
	logFields := LogFields{
		"tenant": tenantID,
		"volume": result.Volume,
		"svm":    result.SVM,
	}
	if failures != nil {
		Logc(ctx).WithFields(logFields).WithError(failures).Error("Tenant cleanup incomplete.")
		return
	}
	Logc(ctx).WithFields(logFields).Info("Tenant cleanup finished.")
}
