// Copyright 2025 NetApp, Inc. All Rights Reserved.

package ontap

import (
	"context"
	"sync"

	drivers "github.com/netapp/multisvm/storage_drivers"
)

// fakeSVMClient records calls and the host each volume carried when it arrived.
type fakeSVMClient struct {
	mutex sync.Mutex

	vserver    string
	setupErr   error
	checkErr   error
	statsErr   error
	opErr      error
	pools      []Pool
	terminated int
	calls      []string
	hosts      []string
	connectors []Connector
}

func newFakeSVMClient(svm string) *fakeSVMClient {
	return &fakeSVMClient{vserver: svm}
}

func (f *fakeSVMClient) record(op string, volume *Volume) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.calls = append(f.calls, op)
	if volume != nil {
		f.hosts = append(f.hosts, volume.Host)
	}
	return f.opErr
}

func (f *fakeSVMClient) Calls() []string {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeSVMClient) Terminated() int {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return f.terminated
}

func (f *fakeSVMClient) VServer() string { return f.vserver }

func (f *fakeSVMClient) Setup(context.Context) error { return f.setupErr }

func (f *fakeSVMClient) CheckForSetupError(context.Context) error { return f.checkErr }

func (f *fakeSVMClient) Terminate(context.Context) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.terminated++
}

func (f *fakeSVMClient) CreateVolume(_ context.Context, v *Volume) error {
	return f.record("CreateVolume", v)
}

func (f *fakeSVMClient) DeleteVolume(_ context.Context, v *Volume) error {
	return f.record("DeleteVolume", v)
}

func (f *fakeSVMClient) ExtendVolume(_ context.Context, v *Volume, _ int) error {
	return f.record("ExtendVolume", v)
}

func (f *fakeSVMClient) CreateSnapshot(_ context.Context, s *Snapshot) error {
	return f.record("CreateSnapshot", s.Volume)
}

func (f *fakeSVMClient) DeleteSnapshot(_ context.Context, s *Snapshot) error {
	return f.record("DeleteSnapshot", s.Volume)
}

func (f *fakeSVMClient) CreateVolumeFromSnapshot(_ context.Context, v *Volume, _ *Snapshot) error {
	return f.record("CreateVolumeFromSnapshot", v)
}

func (f *fakeSVMClient) CreateClonedVolume(_ context.Context, v, _ *Volume) error {
	return f.record("CreateClonedVolume", v)
}

func (f *fakeSVMClient) InitializeConnection(_ context.Context, v *Volume, c Connector) (*ConnectionInfo, error) {
	f.mutex.Lock()
	f.connectors = append(f.connectors, c)
	f.mutex.Unlock()
	if err := f.record("InitializeConnection", v); err != nil {
		return nil, err
	}
	return &ConnectionInfo{DriverVolumeType: nvmeDriverVolumeType, Data: map[string]interface{}{"svm": f.vserver}}, nil
}

func (f *fakeSVMClient) TerminateConnection(_ context.Context, v *Volume, _ Connector) error {
	return f.record("TerminateConnection", v)
}

func (f *fakeSVMClient) CreateExport(_ context.Context, v *Volume, _ Connector) error {
	return f.record("CreateExport", v)
}

func (f *fakeSVMClient) EnsureExport(_ context.Context, v *Volume) error {
	return f.record("EnsureExport", v)
}

func (f *fakeSVMClient) RemoveExport(_ context.Context, v *Volume) error {
	return f.record("RemoveExport", v)
}

func (f *fakeSVMClient) GetStats(context.Context, bool) (*VolumeStats, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.calls = append(f.calls, "GetStats")
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	pools := make([]Pool, len(f.pools))
	copy(pools, f.pools)
	return &VolumeStats{Pools: pools}, nil
}

// fakeFactory hands out fake clients and remembers them by SVM.
type fakeFactory struct {
	mutex   sync.Mutex
	clients map[string]*fakeSVMClient
	prepare func(*fakeSVMClient)
	configs []*drivers.DriverConfig
}

func newFakeFactory(prepare func(*fakeSVMClient)) *fakeFactory {
	return &fakeFactory{clients: make(map[string]*fakeSVMClient), prepare: prepare}
}

func (f *fakeFactory) New(_ context.Context, config *drivers.DriverConfig) (SVMClient, error) {
	client := newFakeSVMClient(config.SVM)
	if f.prepare != nil {
		f.prepare(client)
	}
	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.clients[config.SVM] = client
	f.configs = append(f.configs, config)
	return client, nil
}

func (f *fakeFactory) Client(svm string) *fakeSVMClient {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return f.clients[svm]
}

func (f *fakeFactory) Built() int {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return len(f.configs)
}

func testParentGroup() *drivers.BackendGroup {
	return drivers.NewBackendGroup("nvme", map[string]string{
		drivers.OptionSVMPrefix:            "os-",
		drivers.OptionConnectionHost:       "10.0.0.1",
		drivers.OptionUsername:             "admin",
		drivers.OptionPassword:             "password",
		drivers.OptionSVMDiscoveryInterval: "300",
		drivers.OptionPerfSampleInterval:   "0",
	})
}
