// Copyright 2023 NetApp, Inc. All Rights Reserved.

package api

//go:generate mockgen -destination=../../../mocks/mock_storage_drivers/mock_ontap/mock_api.go -package=mock_ontap github.com/netapp/multisvm/storage_drivers/ontap/api RestClientInterface

import (
	"context"
)

// RestClientInterface is the cluster REST surface used by the SVM clients and provisioning services.
type RestClientInterface interface {
	SVMName() string
	ClusterInfo(ctx context.Context) (*Cluster, error)
	JobGet(ctx context.Context, jobUUID string) (*Job, error)
	PollJobStatus(ctx context.Context, jobUUID string) error

	// Cluster scoped
	SvmList(ctx context.Context, filter SvmFilter) ([]Svm, error)
	SvmGetByName(ctx context.Context, name string) (*Svm, error)
	SvmCreate(ctx context.Context, spec SvmSpec) (*Svm, error)
	SvmDelete(ctx context.Context, name string) (bool, error)
	NodeList(ctx context.Context) ([]Node, error)
	NetworkPortGetVLAN(ctx context.Context, node, basePort string, vlanID int) (*Port, error)
	NetworkPortCreateVLAN(ctx context.Context, spec PortSpec) (*Port, error)
	NetworkIPInterfaceGetByName(ctx context.Context, svm, name string) (*IPInterface, error)
	NetworkIPInterfaceList(ctx context.Context, svm string) ([]IPInterface, error)
	NetworkIPInterfaceCreate(ctx context.Context, spec IPInterfaceSpec) (*IPInterface, error)
	NetworkRouteList(ctx context.Context, svm string) ([]Route, error)
	NetworkRouteCreate(ctx context.Context, spec RouteSpec) (*Route, error)
	VolumeGetByName(ctx context.Context, svm, name string) (*Volume, error)
	VolumeCreate(ctx context.Context, spec VolumeSpec) error
	VolumeDelete(ctx context.Context, svm, name string, force bool) (bool, error)
	NVMeNamespaceList(ctx context.Context, svm, volume string) ([]NVMeNamespace, error)

	// SVM scoped
	SvmCapabilities(ctx context.Context) (*Svm, error)
	FlexvolList(ctx context.Context) ([]Volume, error)
	NVMeNamespaceGetByName(ctx context.Context, path string) (*NVMeNamespace, error)
	NVMeNamespaceCreate(ctx context.Context, spec NVMeNamespaceSpec) (*NVMeNamespace, error)
	NVMeNamespaceClone(ctx context.Context, source, path string) (*NVMeNamespace, error)
	NVMeNamespaceResize(ctx context.Context, path string, size uint64) error
	NVMeNamespaceDelete(ctx context.Context, path string) (bool, error)
	NVMeSubsystemGetByName(ctx context.Context, name string) (*NVMeSubsystem, error)
	NVMeSubsystemGetOrCreate(ctx context.Context, name, osType string) (*NVMeSubsystem, error)
	NVMeSubsystemDelete(ctx context.Context, subsystemUUID string) error
	NVMeAddHostToSubsystem(ctx context.Context, subsystemUUID, hostNQN string) error
	NVMeRemoveHostFromSubsystem(ctx context.Context, subsystemUUID, hostNQN string) error
	NVMeNamespaceMaps(ctx context.Context, namespaceUUID string) ([]NVMeSubsystemMap, error)
	NVMeSubsystemMapCount(ctx context.Context, subsystemUUID string) (int, error)
	NVMeEnsureNamespaceMapped(ctx context.Context, subsystemUUID, namespaceUUID string) error
	NVMeEnsureNamespaceUnmapped(ctx context.Context, subsystemUUID, namespaceUUID string) error
	NVMeDataLIFs(ctx context.Context) ([]string, error)
}

var _ RestClientInterface = (*RestClient)(nil)
