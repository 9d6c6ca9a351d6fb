// Copyright 2025 NetApp, Inc. All Rights Reserved.

package provisioning

import (
	"context"

	. "github.com/netapp/multisvm/logging"
	"github.com/netapp/multisvm/pkg/convert"
	"github.com/netapp/multisvm/storage_drivers/ontap/api"
	"github.com/netapp/multisvm/utils/errors"
)

const nvmeProtocol = "nvme"

// SvmService creates and removes tenant SVMs.
type SvmService struct {
	client api.RestClientInterface
	config Config
}

func NewSvmService(client api.RestClientInterface, config Config) *SvmService {
	return &SvmService{client: client, config: config}
}

// SVMName returns the managed SVM name of a tenant.
func (s *SvmService) SVMName(tenantID string) string {
	return s.config.SVMPrefix + tenantID
}

// Exists reports whether the tenant's SVM is on the cluster.
func (s *SvmService) Exists(ctx context.Context, tenantID string) (bool, error) {
	svm, err := s.client.SvmGetByName(ctx, s.SVMName(tenantID))
	if err != nil {
		return false, err
	}
	return svm != nil, nil
}

// Create creates the tenant's SVM with NVMe as its only protocol. An existing NVMe-enabled SVM is
// left alone and returned with created=false.
func (s *SvmService) Create(ctx context.Context, tenantID string) (svm *api.Svm, created bool, err error) {
	name := s.SVMName(tenantID)
	ctx = WithSVM(ctx, name)

	existing, err := s.client.SvmGetByName(ctx, name)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		if !existing.NVMeEnabled() {
			return nil, false, errors.ProvisioningConflictError("SVM %s exists but NVMe is not enabled", name)
		}
		Logc(ctx).WithField("svm", name).Info("SVM already exists.")
		return existing, false, nil
	}

	spec := api.SvmSpec{
		Name:             name,
		Language:         s.config.Language,
		AllowedProtocols: []string{nvmeProtocol},
		RootVolume: &api.RootVolumeSpec{
			Name:          name + rootVolumeSuffix,
			SecurityStyle: s.config.SecurityStyle,
		},
		Nvme: &api.ProtocolState{Enabled: convert.ToPtr(true), Allowed: convert.ToPtr(true)},
	}
	if s.config.Aggregate != "" {
		spec.Aggregates = []api.NamedReference{{Name: s.config.Aggregate}}
	}

	if svm, err = s.client.SvmCreate(ctx, spec); err != nil {
		return nil, false, err
	}

	Logc(ctx).WithFields(LogFields{
		"svm":       name,
		"uuid":      svm.UUID,
		"aggregate": s.config.Aggregate,
	}).Info("Created SVM.")
	return svm, true, nil
}

// Delete deletes the tenant's SVM. It returns false if the SVM did not exist.
func (s *SvmService) Delete(ctx context.Context, tenantID string) (bool, error) {
	name := s.SVMName(tenantID)
	deleted, err := s.client.SvmDelete(WithSVM(ctx, name), name)
	if err != nil {
		return false, err
	}
	if deleted {
		Logc(ctx).WithField("svm", name).Info("Deleted SVM.")
	}
	return deleted, nil
}
