// Copyright 2025 NetApp, Inc. All Rights Reserved.

package provisioning

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mockapi "github.com/netapp/multisvm/mocks/mock_storage_drivers/mock_ontap"
	"github.com/netapp/multisvm/pkg/convert"
	"github.com/netapp/multisvm/storage_drivers/ontap/api"
	"github.com/netapp/multisvm/utils/errors"
)

func testConfig() Config {
	return Config{
		SVMPrefix:       "os-",
		Aggregate:       "aggr1",
		VolumeSizeBytes: 1000000000,
		NICSlotPrefix:   "e4",
		ServicePolicy:   "default-data-nvme-tcp",
		IPSpace:         "Default",
		Language:        "c.utf_8",
		SecurityStyle:   "unix",
	}
}

func newManagerAndMockAPI(t *testing.T) (*Manager, *mockapi.MockRestClientInterface) {
	mockCtrl := gomock.NewController(t)
	mockAPI := mockapi.NewMockRestClientInterface(mockCtrl)
	return NewManager(mockAPI, testConfig()), mockAPI
}

func nvmeSVM(name string, enabled bool) *api.Svm {
	return &api.Svm{
		Name:  name,
		UUID:  "uuid-" + name,
		State: api.SvmStateRunning,
		Nvme:  &api.ProtocolState{Enabled: convert.ToPtr(enabled)},
	}
}

func testInterfaces(t *testing.T) []*NetworkInterfaceConfig {
	a, err := NewNetworkInterfaceConfig("N1-lif-A", "100.127.0.21/29", 2002, "e4")
	require.NoError(t, err)
	b, err := NewNetworkInterfaceConfig("N2-lif-B", "100.127.128.22/29", 2003, "e4")
	require.NoError(t, err)
	return []*NetworkInterfaceConfig{a, b}
}

var testNodes = []api.Node{
	{Name: "cluster-01", UUID: "node-1"},
	{Name: "cluster-02", UUID: "node-2"},
}

func TestSvmServiceCreate(t *testing.T) {
	manager, mockAPI := newManagerAndMockAPI(t)
	ctx := context.Background()

	mockAPI.EXPECT().SvmGetByName(gomock.Any(), "os-abc").Return(nil, nil)
	mockAPI.EXPECT().SvmCreate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, spec api.SvmSpec) (*api.Svm, error) {
			assert.Equal(t, "os-abc", spec.Name)
			assert.Equal(t, "c.utf_8", spec.Language)
			assert.Equal(t, []string{"nvme"}, spec.AllowedProtocols)
			assert.Equal(t, &api.RootVolumeSpec{Name: "os-abc_root", SecurityStyle: "unix"}, spec.RootVolume)
			assert.Equal(t, []api.NamedReference{{Name: "aggr1"}}, spec.Aggregates)
			assert.True(t, *spec.Nvme.Enabled)
			return nvmeSVM(spec.Name, true), nil
		})

	svm, created, err := manager.SVMs.Create(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "uuid-os-abc", svm.UUID)
}

func TestSvmServiceCreate_Existing(t *testing.T) {
	manager, mockAPI := newManagerAndMockAPI(t)

	mockAPI.EXPECT().SvmGetByName(gomock.Any(), "os-abc").Return(nvmeSVM("os-abc", true), nil)

	svm, created, err := manager.SVMs.Create(context.Background(), "abc")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "os-abc", svm.Name)
}

func TestSvmServiceCreate_ExistingWithoutNVMe(t *testing.T) {
	manager, mockAPI := newManagerAndMockAPI(t)

	mockAPI.EXPECT().SvmGetByName(gomock.Any(), "os-abc").Return(nvmeSVM("os-abc", false), nil)

	_, _, err := manager.SVMs.Create(context.Background(), "abc")
	assert.True(t, errors.IsProvisioningConflictError(err))
}

func TestSvmServiceExistsAndDelete(t *testing.T) {
	manager, mockAPI := newManagerAndMockAPI(t)
	ctx := context.Background()

	mockAPI.EXPECT().SvmGetByName(gomock.Any(), "os-abc").Return(nil, nil)
	exists, err := manager.SVMs.Exists(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, exists)

	mockAPI.EXPECT().SvmDelete(gomock.Any(), "os-abc").Return(true, nil)
	deleted, err := manager.SVMs.Delete(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestVolumeServiceCreate(t *testing.T) {
	manager, mockAPI := newManagerAndMockAPI(t)

	mockAPI.EXPECT().VolumeGetByName(gomock.Any(), "os-abc", "vol_abc").Return(nil, nil)
	mockAPI.EXPECT().VolumeCreate(gomock.Any(), api.VolumeSpec{
		Name: "vol_abc", SVM: "os-abc", Aggregate: "aggr1", Size: 1000000000,
	}).Return(nil)

	created, err := manager.Volumes.Create(context.Background(), "abc")
	require.NoError(t, err)
	assert.True(t, created)
}

func TestVolumeServiceCreate_Existing(t *testing.T) {
	manager, mockAPI := newManagerAndMockAPI(t)

	mockAPI.EXPECT().VolumeGetByName(gomock.Any(), "os-abc", "vol_abc").Return(&api.Volume{Name: "vol_abc"}, nil)

	created, err := manager.Volumes.Create(context.Background(), "abc")
	require.NoError(t, err)
	assert.False(t, created)
}

func TestVolumeServiceCreate_NoSize(t *testing.T) {
	mockAPI := mockapi.NewMockRestClientInterface(gomock.NewController(t))
	config := testConfig()
	config.VolumeSizeBytes = 0

	_, err := NewManager(mockAPI, config).Volumes.Create(context.Background(), "abc")
	assert.True(t, errors.IsConfigError(err))
}

func TestVolumeServiceMappedNamespaces(t *testing.T) {
	manager, mockAPI := newManagerAndMockAPI(t)

	mockAPI.EXPECT().NVMeNamespaceList(gomock.Any(), "os-abc", "vol_abc").Return([]api.NVMeNamespace{
		{Name: "/vol/vol_abc/ns1", Status: &api.NamespaceStatus{Mapped: true}},
		{Name: "/vol/vol_abc/ns2", Status: &api.NamespaceStatus{Mapped: false}},
		{Name: "/vol/vol_abc/ns3"},
	}, nil)

	mapped, err := manager.Volumes.MappedNamespaces(context.Background(), "abc")
	require.NoError(t, err)
	require.Len(t, mapped, 1)
	assert.Equal(t, "/vol/vol_abc/ns1", mapped[0].Name)
}

func TestLifServiceIdentifyHomeNode(t *testing.T) {
	manager, mockAPI := newManagerAndMockAPI(t)
	ifaces := testInterfaces(t)
	ctx := context.Background()

	mockAPI.EXPECT().NodeList(gomock.Any()).Return(testNodes, nil).Times(2)

	node, err := manager.LIFs.IdentifyHomeNode(ctx, ifaces[0])
	require.NoError(t, err)
	assert.Equal(t, "cluster-01", node.Name)

	node, err = manager.LIFs.IdentifyHomeNode(ctx, ifaces[1])
	require.NoError(t, err)
	assert.Equal(t, "cluster-02", node.Name)
}

func TestLifServiceIdentifyHomeNode_NotFound(t *testing.T) {
	manager, mockAPI := newManagerAndMockAPI(t)
	iface, err := NewNetworkInterfaceConfig("N3-lif-A", "100.127.0.21/29", 2002, "e4")
	require.NoError(t, err)

	mockAPI.EXPECT().NodeList(gomock.Any()).Return(testNodes, nil)

	_, err = manager.LIFs.IdentifyHomeNode(context.Background(), iface)
	assert.True(t, errors.IsNodeNotFoundError(err))
}

func TestLifServiceCreateHomePort(t *testing.T) {
	manager, mockAPI := newManagerAndMockAPI(t)
	iface := testInterfaces(t)[0]

	mockAPI.EXPECT().NetworkPortGetVLAN(gomock.Any(), "cluster-01", "e4a", 2002).Return(nil, nil)
	mockAPI.EXPECT().NetworkPortCreateVLAN(gomock.Any(), api.PortSpec{
		Node: "cluster-01", BasePort: "e4a", VlanID: 2002, BroadcastDomain: "Fabric-A", IPSpace: "Default",
	}).Return(&api.Port{Name: "e4a-2002", UUID: "port-1"}, nil)

	port, err := manager.LIFs.CreateHomePort(context.Background(), iface, &testNodes[0])
	require.NoError(t, err)
	assert.Equal(t, "port-1", port.UUID)
}

func TestLifServiceCreateHomePort_Existing(t *testing.T) {
	manager, mockAPI := newManagerAndMockAPI(t)
	iface := testInterfaces(t)[0]

	mockAPI.EXPECT().NetworkPortGetVLAN(gomock.Any(), "cluster-01", "e4a", 2002).
		Return(&api.Port{Name: "e4a-2002", UUID: "port-1"}, nil)

	port, err := manager.LIFs.CreateHomePort(context.Background(), iface, &testNodes[0])
	require.NoError(t, err)
	assert.Equal(t, "port-1", port.UUID)
}

func TestLifServiceCreateLIF(t *testing.T) {
	manager, mockAPI := newManagerAndMockAPI(t)
	iface := testInterfaces(t)[0]

	gomock.InOrder(
		mockAPI.EXPECT().SvmGetByName(gomock.Any(), "os-abc").Return(nvmeSVM("os-abc", true), nil),
		mockAPI.EXPECT().NetworkIPInterfaceGetByName(gomock.Any(), "os-abc", "N1-lif-A").Return(nil, nil),
		mockAPI.EXPECT().NodeList(gomock.Any()).Return(testNodes, nil),
		mockAPI.EXPECT().NetworkPortGetVLAN(gomock.Any(), "cluster-01", "e4a", 2002).
			Return(&api.Port{UUID: "port-1"}, nil),
		mockAPI.EXPECT().NetworkIPInterfaceCreate(gomock.Any(), api.IPInterfaceSpec{
			Name:            "N1-lif-A",
			SVM:             "os-abc",
			Address:         "100.127.0.21",
			Netmask:         "255.255.255.248",
			HomePortUUID:    "port-1",
			BroadcastDomain: "Fabric-A",
			ServicePolicy:   "default-data-nvme-tcp",
		}).Return(&api.IPInterface{Name: "N1-lif-A", UUID: "lif-1"}, nil),
	)

	lif, err := manager.LIFs.CreateLIF(context.Background(), "abc", iface)
	require.NoError(t, err)
	assert.Equal(t, "lif-1", lif.UUID)
}

func TestLifServiceCreateLIF_Existing(t *testing.T) {
	manager, mockAPI := newManagerAndMockAPI(t)
	iface := testInterfaces(t)[0]

	mockAPI.EXPECT().SvmGetByName(gomock.Any(), "os-abc").Return(nvmeSVM("os-abc", true), nil)
	mockAPI.EXPECT().NetworkIPInterfaceGetByName(gomock.Any(), "os-abc", "N1-lif-A").
		Return(&api.IPInterface{Name: "N1-lif-A", UUID: "lif-1"}, nil)

	lif, err := manager.LIFs.CreateLIF(context.Background(), "abc", iface)
	require.NoError(t, err)
	assert.Equal(t, "lif-1", lif.UUID)
}

func TestLifServiceCreateLIF_NoSVM(t *testing.T) {
	manager, mockAPI := newManagerAndMockAPI(t)

	mockAPI.EXPECT().SvmGetByName(gomock.Any(), "os-abc").Return(nil, nil)

	_, err := manager.LIFs.CreateLIF(context.Background(), "abc", testInterfaces(t)[0])
	assert.True(t, errors.IsSVMNotFoundError(err))
}

func TestNexthops(t *testing.T) {
	ifaces := testInterfaces(t)
	extra, err := NewNetworkInterfaceConfig("N2-lif-A", "100.127.0.22/29", 2002, "e4")
	require.NoError(t, err)

	nexthops := Nexthops(append([]*NetworkInterfaceConfig{ifaces[1]}, ifaces[0], extra))
	require.Len(t, nexthops, 2)
	assert.Equal(t, "100.127.0.17", nexthops[0].String())
	assert.Equal(t, "100.127.128.17", nexthops[1].String())
}

func TestRouteServiceCreateRoutes(t *testing.T) {
	manager, mockAPI := newManagerAndMockAPI(t)

	mockAPI.EXPECT().NetworkRouteList(gomock.Any(), "os-abc").Return(nil, nil)
	mockAPI.EXPECT().NetworkRouteCreate(gomock.Any(), api.RouteSpec{
		SVM: "os-abc", Gateway: "100.127.0.17", Destination: "100.126.0.0/17",
	}).Return(&api.Route{}, nil)
	mockAPI.EXPECT().NetworkRouteCreate(gomock.Any(), api.RouteSpec{
		SVM: "os-abc", Gateway: "100.127.128.17", Destination: "100.126.128.0/17",
	}).Return(&api.Route{}, nil)

	routes, err := manager.Routes.CreateRoutes(context.Background(), "abc", testInterfaces(t))
	require.NoError(t, err)
	assert.Len(t, routes, 2)
}

func TestRouteServiceCreateRoutes_SkipsExisting(t *testing.T) {
	manager, mockAPI := newManagerAndMockAPI(t)

	mockAPI.EXPECT().NetworkRouteList(gomock.Any(), "os-abc").Return([]api.Route{{
		Gateway:     "100.127.0.17",
		Destination: &api.RouteDestination{Address: "100.126.0.0", Netmask: "17"},
	}}, nil)
	mockAPI.EXPECT().NetworkRouteCreate(gomock.Any(), api.RouteSpec{
		SVM: "os-abc", Gateway: "100.127.128.17", Destination: "100.126.128.0/17",
	}).Return(&api.Route{}, nil)

	routes, err := manager.Routes.CreateRoutes(context.Background(), "abc", testInterfaces(t))
	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, "100.127.128.17", routes[0].Gateway.String())
}

func TestRouteServiceCreateRoutes_UnsupportedNexthop(t *testing.T) {
	manager, _ := newManagerAndMockAPI(t)
	bad, err := NewNetworkInterfaceConfig("N1-lif-B", "100.127.64.21/29", 2004, "e4")
	require.NoError(t, err)

	routes, err := manager.Routes.CreateRoutes(context.Background(), "abc", append(testInterfaces(t), bad))
	assert.True(t, errors.IsUnsupportedIPPatternError(err))
	assert.Empty(t, routes)
}
