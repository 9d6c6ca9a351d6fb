// Copyright 2025 NetApp, Inc. All Rights Reserved.

package provisioning

import (
	"context"

	"github.com/dustin/go-humanize"

	. "github.com/netapp/multisvm/logging"
	"github.com/netapp/multisvm/storage_drivers/ontap/api"
	"github.com/netapp/multisvm/utils/errors"
)

// VolumeService manages the data volume that holds a tenant's namespaces.
type VolumeService struct {
	client api.RestClientInterface
	svms   *SvmService
	config Config
}

func NewVolumeService(client api.RestClientInterface, svms *SvmService, config Config) *VolumeService {
	return &VolumeService{client: client, svms: svms, config: config}
}

// VolumeName returns the data volume name of a tenant.
func (s *VolumeService) VolumeName(tenantID string) string {
	return volumePrefix + tenantID
}

// Exists reports whether the tenant's data volume is present on its SVM.
func (s *VolumeService) Exists(ctx context.Context, tenantID string) (bool, error) {
	volume, err := s.client.VolumeGetByName(ctx, s.svms.SVMName(tenantID), s.VolumeName(tenantID))
	if err != nil {
		return false, err
	}
	return volume != nil, nil
}

// Create creates the tenant's data volume unless it already exists. It returns whether a volume was
// created.
func (s *VolumeService) Create(ctx context.Context, tenantID string) (bool, error) {
	svm := s.svms.SVMName(tenantID)
	name := s.VolumeName(tenantID)
	ctx = WithSVM(ctx, svm)

	if s.config.VolumeSizeBytes == 0 {
		return false, errors.ConfigError("volume size is not configured")
	}

	exists, err := s.Exists(ctx, tenantID)
	if err != nil {
		return false, err
	}
	if exists {
		Logc(ctx).WithField("volume", name).Info("Volume already exists.")
		return false, nil
	}

	spec := api.VolumeSpec{
		Name:      name,
		SVM:       svm,
		Aggregate: s.config.Aggregate,
		Size:      s.config.VolumeSizeBytes,
	}
	if err = s.client.VolumeCreate(ctx, spec); err != nil {
		return false, err
	}

	Logc(ctx).WithFields(LogFields{
		"volume":    name,
		"aggregate": s.config.Aggregate,
		"size":      humanize.IBytes(s.config.VolumeSizeBytes),
	}).Info("Created volume.")
	return true, nil
}

// Delete deletes the tenant's data volume. It returns false if the volume did not exist.
func (s *VolumeService) Delete(ctx context.Context, tenantID string, force bool) (bool, error) {
	svm := s.svms.SVMName(tenantID)
	name := s.VolumeName(tenantID)
	ctx = WithSVM(ctx, svm)

	deleted, err := s.client.VolumeDelete(ctx, svm, name, force)
	if err != nil {
		return false, err
	}
	if deleted {
		Logc(ctx).WithFields(LogFields{"volume": name, "force": force}).Info("Deleted volume.")
	}
	return deleted, nil
}

// MappedNamespaces returns the namespaces in the tenant's data volume that are mapped to a subsystem.
func (s *VolumeService) MappedNamespaces(ctx context.Context, tenantID string) ([]api.NVMeNamespace, error) {
	namespaces, err := s.client.NVMeNamespaceList(ctx, s.svms.SVMName(tenantID), s.VolumeName(tenantID))
	if err != nil {
		return nil, err
	}

	mapped := make([]api.NVMeNamespace, 0, len(namespaces))
	for i := range namespaces {
		if namespaces[i].Mapped() {
			mapped = append(mapped, namespaces[i])
		}
	}
	return mapped, nil
}
