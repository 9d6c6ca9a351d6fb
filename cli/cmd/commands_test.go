// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/netapp/multisvm/pkg/convert"
	"github.com/netapp/multisvm/provisioning"
	"github.com/netapp/multisvm/storage_drivers/ontap"
	"github.com/netapp/multisvm/storage_drivers/ontap/api"
	"github.com/netapp/multisvm/utils/errors"
)

func runningSVM(name string) api.Svm {
	return api.Svm{
		Name:       name,
		UUID:       "uuid-" + name,
		State:      api.SvmStateRunning,
		Nvme:       &api.ProtocolState{Enabled: convert.ToPtr(true)},
		Aggregates: []api.NamedReference{{Name: "aggr1"}},
	}
}

func TestGetSVMCmd(t *testing.T) {
	mockAPI, _ := setupTest(t, testBackendsYAML)
	mockAPI.EXPECT().SvmList(gomock.Any(), api.SvmFilter{NamePattern: "os-*"}).
		Return([]api.Svm{runningSVM("os-abc"), runningSVM("os-xyz")}, nil).Times(2)

	out, err := runCommand("get", "svms", "-o", "name")
	require.NoError(t, err)
	assert.Equal(t, "os-abc\nos-xyz\n", out)

	out, err = runCommand("get", "svm", "os-xyz", "-o", "wide")
	require.NoError(t, err)
	assert.Contains(t, out, "uuid-os-xyz")
	assert.Contains(t, out, "xyz")
	assert.NotContains(t, out, "os-abc")
}

func TestGetConfigCmd(t *testing.T) {
	setupTest(t, testBackendsYAML)

	out, err := runCommand("get", "config")
	require.NoError(t, err)
	assert.Contains(t, out, "backends:")
	assert.Contains(t, out, "connection.host: 10.0.0.1")
	assert.Contains(t, out, "<REDACTED>")
	assert.NotContains(t, out, "secret")
}

func TestProvisionTenantCmd(t *testing.T) {
	mockAPI, _ := setupTest(t, testBackendsYAML)
	gomock.InOrder(
		mockAPI.EXPECT().SvmGetByName(gomock.Any(), "os-abc").Return(nil, nil),
		mockAPI.EXPECT().SvmCreate(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, spec api.SvmSpec) (*api.Svm, error) {
				svm := runningSVM(spec.Name)
				return &svm, nil
			}),
		mockAPI.EXPECT().VolumeGetByName(gomock.Any(), "os-abc", "vol_abc").Return(nil, nil),
		mockAPI.EXPECT().VolumeCreate(gomock.Any(), api.VolumeSpec{
			Name: "vol_abc", SVM: "os-abc", Aggregate: "aggr1", Size: 1000000000,
		}).Return(nil),
	)

	out, err := runCommand("provision", "tenant", "abc", "-o", "json")
	require.NoError(t, err)

	var result provisioning.ProvisionResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, provisioning.ProvisionResult{
		SVMName: "os-abc", SVMCreated: true, VolumeName: "vol_abc", VolumeCreated: true,
	}, result)
}

func TestProvisionTenantCmd_NeedsProjectID(t *testing.T) {
	setupTest(t, testBackendsYAML)

	_, err := runCommand("provision", "tenant")
	assert.Error(t, err)
}

func TestConfigureNetCmd(t *testing.T) {
	mockAPI, fs := setupTest(t, testBackendsYAML)
	require.NoError(t, afero.WriteFile(fs, "/tmp/network.yaml", []byte(`
interfaces:
  - name: N1-lif-A
    address: 100.127.0.21/29
    vlan: 2002
`), 0o600))

	mockAPI.EXPECT().SvmGetByName(gomock.Any(), "os-abc").DoAndReturn(
		func(_ any, name string) (*api.Svm, error) {
			svm := runningSVM(name)
			return &svm, nil
		})
	mockAPI.EXPECT().NetworkIPInterfaceGetByName(gomock.Any(), "os-abc", "N1-lif-A").Return(nil, nil)
	mockAPI.EXPECT().NodeList(gomock.Any()).Return([]api.Node{{Name: "cluster-01"}}, nil)
	mockAPI.EXPECT().NetworkPortGetVLAN(gomock.Any(), "cluster-01", "e4a", 2002).Return(nil, nil)
	mockAPI.EXPECT().NetworkPortCreateVLAN(gomock.Any(), gomock.Any()).Return(&api.Port{UUID: "port-1"}, nil)
	mockAPI.EXPECT().NetworkIPInterfaceCreate(gomock.Any(), gomock.Any()).Return(&api.IPInterface{UUID: "lif"}, nil)
	mockAPI.EXPECT().NetworkRouteList(gomock.Any(), "os-abc").Return(nil, nil)
	mockAPI.EXPECT().NetworkRouteCreate(gomock.Any(), api.RouteSpec{
		SVM: "os-abc", Gateway: "100.127.0.17", Destination: "100.126.0.0/17",
	}).Return(&api.Route{}, nil)

	out, err := runCommand("configure-net", "--project-id", "abc", "--network-file", "/tmp/network.yaml",
		"-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, "N1-lif-A")
	assert.Contains(t, out, "100.126.0.0/17 via 100.127.0.17 on os-abc")
}

func TestConfigureNetCmd_MissingFlags(t *testing.T) {
	setupTest(t, testBackendsYAML)

	_, err := runCommand("configure-net", "--project-id", "abc")
	assert.True(t, errors.IsInvalidInputError(err))
}

func TestCleanupTenantCmd_PartialFailure(t *testing.T) {
	mockAPI, _ := setupTest(t, testBackendsYAML)
	mockAPI.EXPECT().VolumeGetByName(gomock.Any(), "os-abc", "vol_abc").Return(&api.Volume{Name: "vol_abc"}, nil)
	mockAPI.EXPECT().NVMeNamespaceList(gomock.Any(), "os-abc", "vol_abc").Return(nil, nil)
	mockAPI.EXPECT().VolumeDelete(gomock.Any(), "os-abc", "vol_abc", true).
		Return(false, errors.ClusterRequestError(409, "1", "", "busy"))

	out, err := runCommand("cleanup", "tenant", "abc", "-o", "json")
	require.NoError(t, err)

	var result provisioning.TeardownResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, provisioning.TeardownResult{Volume: false, SVM: false}, result)
}

func TestEventHandleCmd_Created(t *testing.T) {
	mockAPI, fs := setupTest(t, testBackendsYAML)
	require.NoError(t, afero.WriteFile(fs, "/tmp/event.json", []byte(
		`{"event_type": "identity.project.created", "payload": {"target": {"id": "abc"}}}`), 0o600))

	mockAPI.EXPECT().SvmGetByName(gomock.Any(), "os-abc").Return(nil, nil)
	mockAPI.EXPECT().SvmCreate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, spec api.SvmSpec) (*api.Svm, error) {
			svm := runningSVM(spec.Name)
			return &svm, nil
		})
	mockAPI.EXPECT().VolumeGetByName(gomock.Any(), "os-abc", "vol_abc").Return(nil, nil)
	mockAPI.EXPECT().VolumeCreate(gomock.Any(), gomock.Any()).Return(nil)

	_, err := runCommand("event", "handle", "--file", "/tmp/event.json", "--tags", "UNDERSTACK_SVM")
	require.NoError(t, err)

	for name, expected := range map[string]string{
		"svm_enabled":  "true",
		"svm_created":  "true",
		"svm_name":     "os-abc",
		"project_tags": `["UNDERSTACK_SVM"]`,
	} {
		data, err := afero.ReadFile(fs, "/var/run/multisvm/output."+name)
		require.NoError(t, err, name)
		assert.Equal(t, expected, string(data), name)
	}
}

func TestEventHandleCmd_Stdin(t *testing.T) {
	setupTest(t, testBackendsYAML)

	var out, errOut bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&errOut)
	RootCmd.SetIn(strings.NewReader(`{"event_type": "project.updated", "payload": {"target": {"id": "abc"}}}`))
	RootCmd.SetArgs([]string{"event", "handle", "--output-dir", "/out"})
	require.NoError(t, RootCmd.Execute())

	assert.Contains(t, out.String(), `"svm_enabled": false`)
}

func TestEventHandleCmd_ExitCodes(t *testing.T) {
	tests := []struct {
		name     string
		event    string
		prepare  func(*testing.T)
		expected int
	}{
		{name: "parse error", event: `not json`, expected: ExitCodeParseError},
		{
			name:     "no handler",
			event:    `{"event_type": "identity.user.created", "payload": {"target": {"id": "u1"}}}`,
			expected: ExitCodeNoHandler,
		},
		{
			name:  "handler error",
			event: `{"event_type": "project.created", "payload": {"target": {"id": "abc", "tags": ["UNDERSTACK_SVM"]}}}`,
			prepare: func(t *testing.T) {
				mockAPI, _ := setupTest(t, testBackendsYAML)
				mockAPI.EXPECT().SvmGetByName(gomock.Any(), "os-abc").Return(nil, errors.ClusterUnavailableError("down"))
			},
			expected: ExitCodeHandlerError,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if test.prepare != nil {
				test.prepare(t)
			} else {
				setupTest(t, testBackendsYAML)
			}
			require.NoError(t, afero.WriteFile(AppFs, "/tmp/event.json", []byte(test.event), 0o600))

			_, err := runCommand("event", "handle", "-f", "/tmp/event.json")
			assert.Equal(t, test.expected, GetExitCodeFromError(err))
		})
	}
}

func TestWriteStats(t *testing.T) {
	stats := &ontap.VolumeStats{
		VolumeBackendName: "nvme",
		Pools: []ontap.Pool{{
			PoolName: "os-abc+vol_abc", TenantID: "abc", TotalCapacityGB: 10, FreeCapacityGB: 5, Utilization: 50,
		}},
	}

	var out bytes.Buffer
	OutputFormat = ""
	WriteStats(&out, stats)
	assert.Contains(t, out.String(), "os-abc+vol_abc")
	assert.Contains(t, out.String(), "10 GiB")
	assert.Contains(t, out.String(), "50.00%")

	out.Reset()
	OutputFormat = FormatName
	WriteStats(&out, stats)
	assert.Equal(t, "os-abc+vol_abc\n", out.String())
	OutputFormat = ""
}
